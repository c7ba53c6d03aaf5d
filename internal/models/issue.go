package models

import "time"

// Issue categories (closed enumeration)
const (
	CategoryStructural  = "STRUCTURAL"
	CategoryElectrical  = "ELECTRICAL"
	CategoryPlumbing    = "PLUMBING"
	CategoryHVAC        = "HVAC"
	CategorySafety      = "SAFETY"
	CategoryMaintenance = "MAINTENANCE"
	CategoryCleanliness = "CLEANLINESS"
	CategoryNetwork     = "NETWORK"
	CategoryFurniture   = "FURNITURE"
	CategoryOther       = "OTHER"
)

// Issue priorities
const (
	PriorityLow      = "LOW"
	PriorityMedium   = "MEDIUM"
	PriorityHigh     = "HIGH"
	PriorityCritical = "CRITICAL"
)

// Issue statuses
const (
	StatusOpen       = "OPEN"
	StatusInProgress = "IN_PROGRESS"
	StatusResolved   = "RESOLVED"
	StatusClosed     = "CLOSED"
)

// Issue represents a geotagged facility-issue report. It is owned by the
// issue-management subsystem; the heatmap engine treats it as an immutable
// snapshot for the duration of one computation.
type Issue struct {
	ID             string `json:"id" db:"id"`
	OrganizationID string `json:"organization_id" db:"organization_id"`
	CampusID       string `json:"campus_id,omitempty" db:"campus_id"`
	ZoneID         string `json:"zone_id,omitempty" db:"zone_id"`
	BuildingID     string `json:"building_id,omitempty" db:"building_id"`

	Category string `json:"category" db:"category"`
	Severity int    `json:"severity" db:"severity"` // 0-10
	Priority string `json:"priority" db:"priority"` // LOW, MEDIUM, HIGH, CRITICAL
	Status   string `json:"status" db:"status"`     // OPEN, IN_PROGRESS, RESOLVED, CLOSED

	// Location is optional; issues without one are excluded from heatmaps
	Latitude  *float64 `json:"latitude,omitempty" db:"latitude"`
	Longitude *float64 `json:"longitude,omitempty" db:"longitude"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// HasLocation reports whether the issue carries usable coordinates
func (i *Issue) HasLocation() bool {
	return i.Latitude != nil && i.Longitude != nil
}

package models

import (
	"fmt"
	"strings"
	"time"
)

// HeatmapQuery represents the raw query parameters of the heatmap endpoints.
// List parameters accept repeated keys or comma-separated values.
type HeatmapQuery struct {
	OrganizationID string   `form:"organizationId"`
	CampusID       string   `form:"campusId"`
	ZoneID         string   `form:"zoneId"`
	BuildingIDs    []string `form:"buildingIds"`
	Categories     []string `form:"categories"`
	Priorities     []string `form:"priorities"`
	Statuses       []string `form:"statuses"`
	StartDate      string   `form:"startDate"` // ISO-8601
	EndDate        string   `form:"endDate"`   // ISO-8601
	MinSeverity    *int     `form:"minSeverity"`
	MaxAgeDays     *int     `form:"maxAge"` // Days

	TimeDecayFactor          *float64 `form:"timeDecayFactor"`
	SeverityWeightMultiplier *float64 `form:"severityWeightMultiplier"`
	ClusterRadius            *float64 `form:"clusterRadius"` // Meters
	MinClusterSize           *int     `form:"minClusterSize"`
	GridSize                 *float64 `form:"gridSize"` // Meters
	NormalizeWeights         *bool    `form:"normalizeWeights"`
}

// HeatmapFilter represents the typed filter set passed to the issue source.
// All filters are conjunctive.
type HeatmapFilter struct {
	OrganizationID string
	CampusID       string
	ZoneID         string
	BuildingIDs    []string
	Categories     []string
	Priorities     []string
	Statuses       []string
	StartDate      *time.Time
	EndDate        *time.Time
	MinSeverity    *int
	MaxAgeDays     *int
}

// CacheKey returns a canonical string identifying the filter set,
// used as the lookup key for the façade's fetch cache
func (f HeatmapFilter) CacheKey() string {
	var b strings.Builder
	b.WriteString("org=" + f.OrganizationID)
	b.WriteString("|campus=" + f.CampusID)
	b.WriteString("|zone=" + f.ZoneID)
	b.WriteString("|buildings=" + strings.Join(f.BuildingIDs, ","))
	b.WriteString("|categories=" + strings.Join(f.Categories, ","))
	b.WriteString("|priorities=" + strings.Join(f.Priorities, ","))
	b.WriteString("|statuses=" + strings.Join(f.Statuses, ","))
	if f.StartDate != nil {
		b.WriteString(fmt.Sprintf("|start=%d", f.StartDate.Unix()))
	}
	if f.EndDate != nil {
		b.WriteString(fmt.Sprintf("|end=%d", f.EndDate.Unix()))
	}
	if f.MinSeverity != nil {
		b.WriteString(fmt.Sprintf("|minSeverity=%d", *f.MinSeverity))
	}
	if f.MaxAgeDays != nil {
		b.WriteString(fmt.Sprintf("|maxAge=%d", *f.MaxAgeDays))
	}
	return b.String()
}

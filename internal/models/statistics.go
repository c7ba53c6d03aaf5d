package models

import "time"

// GeoBounds represents the geographic bounding box of a heatmap
type GeoBounds struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLng float64 `json:"max_lng"`
}

// WeightStats summarizes the weight distribution across features
type WeightStats struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Avg    float64 `json:"avg"`
	Median float64 `json:"median"`
}

// HeatmapStatistics represents aggregate statistics derived from a
// formatted heatmap collection
type HeatmapStatistics struct {
	TotalPoints int `json:"total_points"`
	TotalIssues int `json:"total_issues"`

	Weights              WeightStats    `json:"weights"`
	PriorityDistribution PriorityCounts `json:"priority_distribution"`
	Bounds               GeoBounds      `json:"bounds"`

	// Counts each category once per feature that contains it
	CategoryBreakdown map[string]int `json:"category_breakdown"`

	// Hours since each feature's newest issue, averaged across features
	AvgHoursSinceNewest float64   `json:"avg_hours_since_newest"`
	OldestIssue         time.Time `json:"oldest_issue"`
	NewestIssue         time.Time `json:"newest_issue"`
}

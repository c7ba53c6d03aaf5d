package models

import "time"

// GeoJSONGeometry represents a GeoJSON Point geometry.
// Coordinates use GeoJSON axis order: [longitude, latitude].
type GeoJSONGeometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// PriorityCounts holds per-priority-tier issue counts
type PriorityCounts struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// HeatmapFeatureProperties carries the per-point metadata of one feature,
// derived entirely from the point's constituent issues
type HeatmapFeatureProperties struct {
	Weight           float64        `json:"weight"`
	Intensity        int            `json:"intensity"`
	IssueCount       int            `json:"issueCount"`
	AvgSeverity      float64        `json:"avgSeverity"`
	AvgPriorityScore float64        `json:"avgPriorityScore"` // CRITICAL=4 ... LOW=1, averaged
	Categories       []string       `json:"categories"`
	OldestIssue      time.Time      `json:"oldestIssue"`
	NewestIssue      time.Time      `json:"newestIssue"`
	PriorityCounts   PriorityCounts `json:"priorityCounts"`
	IssueIDs         []string       `json:"issueIds"`
}

// HeatmapFeature is a GeoJSON Feature for one heatmap point
type HeatmapFeature struct {
	Type       string                   `json:"type"`
	Geometry   GeoJSONGeometry          `json:"geometry"`
	Properties HeatmapFeatureProperties `json:"properties"`
}

// HeatmapMetadata describes the collection-level context of a heatmap
type HeatmapMetadata struct {
	TotalIssues         int       `json:"totalIssues"`
	StartDate           time.Time `json:"startDate"`
	EndDate             time.Time `json:"endDate"`
	TimeDecayFactor     float64   `json:"timeDecayFactor"`
	SeverityWeighted    bool      `json:"severityWeighted"`
	ClusterRadiusMeters float64   `json:"clusterRadius,omitempty"`
	GeneratedAt         time.Time `json:"generatedAt"`
}

// HeatmapGeoJSON is the final heatmap output: a GeoJSON FeatureCollection
// with collection-level metadata
type HeatmapGeoJSON struct {
	Type     string           `json:"type"`
	Features []HeatmapFeature `json:"features"`
	Metadata HeatmapMetadata  `json:"metadata"`
}

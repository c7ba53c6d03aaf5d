package models

// Heatmap engine defaults
const (
	DefaultGridSizeMeters           = 50.0
	DefaultTimeDecayFactor          = 0.5
	DefaultSeverityWeightMultiplier = 2.0
)

// HeatmapConfig holds the tunable parameters of one heatmap computation
type HeatmapConfig struct {
	TimeDecayFactor          float64 `json:"time_decay_factor"`          // 0-1, higher = faster decay
	SeverityWeightMultiplier float64 `json:"severity_weight_multiplier"` // >= 0, 0 disables severity weighting
	ClusterRadiusMeters      float64 `json:"cluster_radius_meters"`
	MinClusterSize           int     `json:"min_cluster_size"`
	GridSizeMeters           float64 `json:"grid_size_meters"`
	NormalizeWeights         bool    `json:"normalize_weights"`
}

// DefaultHeatmapConfig returns the engine defaults (no clustering)
func DefaultHeatmapConfig() HeatmapConfig {
	return HeatmapConfig{
		TimeDecayFactor:          DefaultTimeDecayFactor,
		SeverityWeightMultiplier: DefaultSeverityWeightMultiplier,
		GridSizeMeters:           DefaultGridSizeMeters,
		NormalizeWeights:         true,
	}
}

// ClusteringEnabled reports whether DBSCAN clustering should run.
// Both the radius and the minimum size must be configured together.
func (c HeatmapConfig) ClusteringEnabled() bool {
	return c.ClusterRadiusMeters > 0 && c.MinClusterSize > 0
}

// HeatmapPoint represents one aggregated, weighted spatial sample.
// Created by the aggregator, rescaled in place by each weighting stage,
// optionally replaced by the clusterer, consumed by the formatter.
// Never persisted.
type HeatmapPoint struct {
	Lat       float64
	Lng       float64
	Issues    []Issue
	Weight    float64 // Starts at 1.0, rescaled by each weighting stage
	Intensity int     // Raw issue count, set once at aggregation
}

// HeatmapCluster groups nearby heatmap points during the DBSCAN stage.
// It exists only while clustering runs and is immediately flattened
// back into a single HeatmapPoint.
type HeatmapCluster struct {
	ID          int
	CenterLat   float64
	CenterLng   float64
	Points      []*HeatmapPoint
	TotalWeight float64
	IssueCount  int
}

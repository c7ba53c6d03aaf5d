package heatmap

import (
	"time"

	"github.com/campuswatch/issues-backend-go/internal/models"
)

// Engine turns a flat list of located issues into a weighted, optionally
// clustered GeoJSON feature collection. One invocation is a pure,
// single-threaded batch computation; concurrent invocations are independent.
type Engine struct{}

// NewEngine creates a new heatmap engine
func NewEngine() *Engine {
	return &Engine{}
}

// Generate runs the full pipeline over a snapshot of issues
func (e *Engine) Generate(issues []models.Issue, cfg models.HeatmapConfig) models.HeatmapGeoJSON {
	return e.GenerateAt(issues, cfg, time.Now().UTC())
}

// GenerateAt runs the pipeline with an explicit reference time.
// Stages run strictly in sequence; each consumes the full output of the
// previous one.
func (e *Engine) GenerateAt(issues []models.Issue, cfg models.HeatmapConfig, now time.Time) models.HeatmapGeoJSON {
	points := AggregateByLocation(issues, cfg.GridSizeMeters)

	ApplyTimeDecay(points, cfg.TimeDecayFactor, now)
	ApplySeverityWeights(points, cfg.SeverityWeightMultiplier)

	if cfg.NormalizeWeights {
		NormalizeWeights(points)
	}

	if cfg.ClusteringEnabled() {
		points = ClusterPoints(points, cfg.ClusterRadiusMeters, cfg.MinClusterSize)
	}

	return FormatGeoJSON(points, cfg, now)
}

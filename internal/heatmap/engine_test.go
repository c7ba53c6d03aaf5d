package heatmap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuswatch/issues-backend-go/internal/models"
)

func TestEngineIntensityPreservation(t *testing.T) {
	now := time.Now().UTC()
	issues := []models.Issue{
		makeIssue("a", 40.0, -74.0, 3, models.PriorityLow, now.AddDate(0, 0, -10)),
		makeIssue("b", 40.0001, -74.0, 7, models.PriorityHigh, now),
		makeIssue("c", 40.0045, -74.0, 9, models.PriorityCritical, now.AddDate(0, 0, -30)),
		makeIssue("d", 40.1, -74.1, 5, models.PriorityMedium, now),
		makeIssue("e", 41.0, -75.0, 1, models.PriorityLow, now.AddDate(0, 0, -200)),
	}

	configs := []models.HeatmapConfig{
		models.DefaultHeatmapConfig(),
		{TimeDecayFactor: 1, SeverityWeightMultiplier: 3, GridSizeMeters: 50, NormalizeWeights: true, ClusterRadiusMeters: 1000, MinClusterSize: 2},
		{TimeDecayFactor: 0, SeverityWeightMultiplier: 0, GridSizeMeters: 100, NormalizeWeights: false},
	}

	for _, cfg := range configs {
		fc := NewEngine().GenerateAt(issues, cfg, now)

		total := 0
		for _, f := range fc.Features {
			total += f.Properties.IssueCount
		}
		assert.Equal(t, len(issues), total)
		assert.Equal(t, len(issues), fc.Metadata.TotalIssues)
	}
}

func TestEngineIssueIDsPartitionInput(t *testing.T) {
	now := time.Now().UTC()
	issues := []models.Issue{
		makeIssue("a", 40.0, -74.0, 3, models.PriorityLow, now),
		makeIssue("b", 40.002, -74.0, 7, models.PriorityHigh, now),
		makeIssue("c", 40.004, -74.0, 9, models.PriorityCritical, now),
		makeIssue("d", 40.5, -74.5, 5, models.PriorityMedium, now),
	}
	cfg := models.DefaultHeatmapConfig()
	cfg.ClusterRadiusMeters = 1000
	cfg.MinClusterSize = 2

	fc := NewEngine().GenerateAt(issues, cfg, now)

	seen := make(map[string]int)
	for _, f := range fc.Features {
		for _, id := range f.Properties.IssueIDs {
			seen[id]++
		}
	}
	require.Len(t, seen, len(issues))
	for id, count := range seen {
		assert.Equal(t, 1, count, "issue %s appears in %d features", id, count)
	}
}

func TestEngineNormalizedWeightsSpanUnitRange(t *testing.T) {
	now := time.Now().UTC()
	// Three well-separated points with different severities: distinct
	// weights before normalization
	issues := []models.Issue{
		makeIssue("a", 40.0, -74.0, 1, models.PriorityLow, now),
		makeIssue("b", 41.0, -74.0, 5, models.PriorityMedium, now),
		makeIssue("c", 42.0, -74.0, 10, models.PriorityCritical, now),
	}

	fc := NewEngine().GenerateAt(issues, models.DefaultHeatmapConfig(), now)

	require.Len(t, fc.Features, 3)
	var min, max = fc.Features[0].Properties.Weight, fc.Features[0].Properties.Weight
	for _, f := range fc.Features {
		if f.Properties.Weight < min {
			min = f.Properties.Weight
		}
		if f.Properties.Weight > max {
			max = f.Properties.Weight
		}
	}
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 1.0, max)
}

func TestEngineNormalizationDisabled(t *testing.T) {
	now := time.Now().UTC()
	issues := []models.Issue{
		makeIssue("a", 40.0, -74.0, 10, models.PriorityCritical, now),
		makeIssue("b", 41.0, -74.0, 10, models.PriorityCritical, now),
	}
	cfg := models.DefaultHeatmapConfig()
	cfg.NormalizeWeights = false

	fc := NewEngine().GenerateAt(issues, cfg, now)

	// Severity weighting pushes raw weights above 1
	for _, f := range fc.Features {
		assert.Greater(t, f.Properties.Weight, 1.0)
	}
}

func TestEngineSameCoordinateScenario(t *testing.T) {
	now := time.Now().UTC()
	issues := []models.Issue{
		makeIssue("a", 40.0, -74.0, 2, models.PriorityLow, now),
		makeIssue("b", 40.0, -74.0, 5, models.PriorityMedium, now),
		makeIssue("c", 40.0, -74.0, 9, models.PriorityCritical, now),
	}

	fc := NewEngine().GenerateAt(issues, models.DefaultHeatmapConfig(), now)

	require.Len(t, fc.Features, 1)
	props := fc.Features[0].Properties
	assert.Equal(t, 3, props.Intensity)
	// Single point: equal-weights fallback pins the weight at 1.0
	assert.Equal(t, 1.0, props.Weight)
}

func TestEngineClusterScenario(t *testing.T) {
	now := time.Now().UTC()
	// Two points ~500 m apart stay separate at grid size 50 but merge
	// under a 1 km cluster radius
	issues := []models.Issue{
		makeIssue("a", 40.0, -74.0, 5, models.PriorityMedium, now),
		makeIssue("b", 40.0045, -74.0, 5, models.PriorityMedium, now),
	}

	cfg := models.DefaultHeatmapConfig()
	fc := NewEngine().GenerateAt(issues, cfg, now)
	assert.Len(t, fc.Features, 2)

	cfg.ClusterRadiusMeters = 1000
	cfg.MinClusterSize = 2
	fc = NewEngine().GenerateAt(issues, cfg, now)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, 2, fc.Features[0].Properties.Intensity)
}

func TestEngineEmptyInput(t *testing.T) {
	now := time.Now().UTC()

	fc := NewEngine().GenerateAt(nil, models.DefaultHeatmapConfig(), now)

	assert.Equal(t, "FeatureCollection", fc.Type)
	assert.Empty(t, fc.Features)
	assert.Equal(t, 0, fc.Metadata.TotalIssues)
}

func TestEngineEqualWeightsFallback(t *testing.T) {
	now := time.Now().UTC()
	// Identical severity, priority and age at well-separated locations:
	// every point carries the same raw weight
	issues := []models.Issue{
		makeIssue("a", 40.0, -74.0, 5, models.PriorityMedium, now),
		makeIssue("b", 41.0, -74.0, 5, models.PriorityMedium, now),
		makeIssue("c", 42.0, -74.0, 5, models.PriorityMedium, now),
	}

	fc := NewEngine().GenerateAt(issues, models.DefaultHeatmapConfig(), now)

	require.Len(t, fc.Features, 3)
	for _, f := range fc.Features {
		assert.Equal(t, 1.0, f.Properties.Weight)
	}
}

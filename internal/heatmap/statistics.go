package heatmap

import (
	"time"

	"github.com/campuswatch/issues-backend-go/internal/models"
	"github.com/campuswatch/issues-backend-go/internal/stats"
)

// Summarize derives aggregate statistics from a formatted heatmap
// collection. An empty collection yields a zeroed structure with empty
// bounds, never an error.
func Summarize(fc models.HeatmapGeoJSON, now time.Time) models.HeatmapStatistics {
	result := models.HeatmapStatistics{
		CategoryBreakdown: make(map[string]int),
	}

	if len(fc.Features) == 0 {
		return result
	}

	weights := make([]float64, 0, len(fc.Features))
	hoursSinceNewest := make([]float64, 0, len(fc.Features))

	bounds := models.GeoBounds{
		MinLat: fc.Features[0].Geometry.Coordinates[1],
		MaxLat: fc.Features[0].Geometry.Coordinates[1],
		MinLng: fc.Features[0].Geometry.Coordinates[0],
		MaxLng: fc.Features[0].Geometry.Coordinates[0],
	}

	for _, f := range fc.Features {
		props := f.Properties
		weights = append(weights, props.Weight)
		result.TotalIssues += props.IssueCount

		result.PriorityDistribution.Critical += props.PriorityCounts.Critical
		result.PriorityDistribution.High += props.PriorityCounts.High
		result.PriorityDistribution.Medium += props.PriorityCounts.Medium
		result.PriorityDistribution.Low += props.PriorityCounts.Low

		// Co-occurrence counting: once per feature, not per issue
		for _, category := range props.Categories {
			result.CategoryBreakdown[category]++
		}

		if !props.NewestIssue.IsZero() {
			hoursSinceNewest = append(hoursSinceNewest, now.Sub(props.NewestIssue).Hours())
		}

		// GeoJSON coordinates are [lng, lat]
		lng, lat := f.Geometry.Coordinates[0], f.Geometry.Coordinates[1]
		if lat < bounds.MinLat {
			bounds.MinLat = lat
		}
		if lat > bounds.MaxLat {
			bounds.MaxLat = lat
		}
		if lng < bounds.MinLng {
			bounds.MinLng = lng
		}
		if lng > bounds.MaxLng {
			bounds.MaxLng = lng
		}
	}

	result.TotalPoints = len(fc.Features)
	result.Bounds = bounds
	result.Weights = models.WeightStats{
		Min:    stats.Min(weights),
		Max:    stats.Max(weights),
		Avg:    stats.Mean(weights),
		Median: stats.Median(weights),
	}
	result.AvgHoursSinceNewest = stats.Mean(hoursSinceNewest)
	result.OldestIssue = fc.Metadata.StartDate
	result.NewestIssue = fc.Metadata.EndDate

	return result
}

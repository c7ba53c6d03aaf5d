package heatmap

import (
	"sort"
	"time"

	"github.com/campuswatch/issues-backend-go/internal/models"
)

// priorityScores feed the average-priority property (CRITICAL=4 ... LOW=1)
var priorityScores = map[string]float64{
	models.PriorityCritical: 4,
	models.PriorityHigh:     3,
	models.PriorityMedium:   2,
	models.PriorityLow:      1,
}

// FormatGeoJSON renders the final points as a GeoJSON FeatureCollection.
// Coordinates use GeoJSON axis order: [longitude, latitude]. A zero-point
// input produces a well-formed empty collection, never an error.
func FormatGeoJSON(points []*models.HeatmapPoint, cfg models.HeatmapConfig, now time.Time) models.HeatmapGeoJSON {
	features := make([]models.HeatmapFeature, 0, len(points))

	var oldest, newest time.Time
	totalIssues := 0

	for _, p := range points {
		props := buildFeatureProperties(p)
		totalIssues += props.IssueCount

		if oldest.IsZero() || props.OldestIssue.Before(oldest) {
			oldest = props.OldestIssue
		}
		if newest.IsZero() || props.NewestIssue.After(newest) {
			newest = props.NewestIssue
		}

		features = append(features, models.HeatmapFeature{
			Type: "Feature",
			Geometry: models.GeoJSONGeometry{
				Type:        "Point",
				Coordinates: []float64{p.Lng, p.Lat},
			},
			Properties: props,
		})
	}

	// Empty collection: fall back to now for both bounds
	if len(features) == 0 {
		oldest, newest = now, now
	}

	return models.HeatmapGeoJSON{
		Type:     "FeatureCollection",
		Features: features,
		Metadata: models.HeatmapMetadata{
			TotalIssues:         totalIssues,
			StartDate:           oldest,
			EndDate:             newest,
			TimeDecayFactor:     cfg.TimeDecayFactor,
			SeverityWeighted:    cfg.SeverityWeightMultiplier > 0,
			ClusterRadiusMeters: cfg.ClusterRadiusMeters,
			GeneratedAt:         now,
		},
	}
}

// buildFeatureProperties derives per-feature metadata purely from the
// point's constituent issue list
func buildFeatureProperties(p *models.HeatmapPoint) models.HeatmapFeatureProperties {
	props := models.HeatmapFeatureProperties{
		Weight:     p.Weight,
		Intensity:  p.Intensity,
		IssueCount: len(p.Issues),
		Categories: []string{},
		IssueIDs:   make([]string, 0, len(p.Issues)),
	}

	seen := make(map[string]bool)
	var severitySum, prioritySum float64

	for _, issue := range p.Issues {
		props.IssueIDs = append(props.IssueIDs, issue.ID)

		if issue.Category != "" && !seen[issue.Category] {
			seen[issue.Category] = true
			props.Categories = append(props.Categories, issue.Category)
		}

		severitySum += float64(issue.Severity)
		if score, ok := priorityScores[issue.Priority]; ok {
			prioritySum += score
		} else {
			prioritySum += 1
		}

		switch issue.Priority {
		case models.PriorityCritical:
			props.PriorityCounts.Critical++
		case models.PriorityHigh:
			props.PriorityCounts.High++
		case models.PriorityMedium:
			props.PriorityCounts.Medium++
		default:
			props.PriorityCounts.Low++
		}

		if props.OldestIssue.IsZero() || issue.CreatedAt.Before(props.OldestIssue) {
			props.OldestIssue = issue.CreatedAt
		}
		if props.NewestIssue.IsZero() || issue.CreatedAt.After(props.NewestIssue) {
			props.NewestIssue = issue.CreatedAt
		}
	}

	if n := float64(len(p.Issues)); n > 0 {
		props.AvgSeverity = severitySum / n
		props.AvgPriorityScore = prioritySum / n
	}

	sort.Strings(props.Categories)
	return props
}

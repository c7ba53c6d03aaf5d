package heatmap

import (
	"github.com/campuswatch/issues-backend-go/internal/models"
	"github.com/campuswatch/issues-backend-go/internal/spatial"
)

// AggregateByLocation groups issues into initial heatmap points by proximity.
//
// Grouping is greedy and single-pass: each not-yet-assigned issue seeds a new
// group, then every remaining unassigned issue within gridSize meters of the
// seed (not of each other) joins it. The centroid is the unweighted mean of
// member coordinates. O(n²) over located issues, bounded by the issue
// source's result cap.
func AggregateByLocation(issues []models.Issue, gridSize float64) []*models.HeatmapPoint {
	if gridSize <= 0 {
		gridSize = models.DefaultGridSizeMeters
	}

	located := make([]models.Issue, 0, len(issues))
	for _, issue := range issues {
		if issue.HasLocation() {
			located = append(located, issue)
		}
	}

	assigned := make([]bool, len(located))
	points := make([]*models.HeatmapPoint, 0)

	for i := range located {
		if assigned[i] {
			continue
		}
		assigned[i] = true

		seed := located[i]
		group := []models.Issue{seed}

		for j := i + 1; j < len(located); j++ {
			if assigned[j] {
				continue
			}
			d := spatial.HaversineDistance(
				*seed.Latitude, *seed.Longitude,
				*located[j].Latitude, *located[j].Longitude,
			)
			if d <= gridSize {
				assigned[j] = true
				group = append(group, located[j])
			}
		}

		points = append(points, newPointFromGroup(group))
	}

	return points
}

// newPointFromGroup builds a heatmap point from one group of issues.
// Intensity is the raw issue count and is never rescaled afterwards.
func newPointFromGroup(group []models.Issue) *models.HeatmapPoint {
	var sumLat, sumLng float64
	for _, issue := range group {
		sumLat += *issue.Latitude
		sumLng += *issue.Longitude
	}
	n := float64(len(group))

	return &models.HeatmapPoint{
		Lat:       sumLat / n,
		Lng:       sumLng / n,
		Issues:    group,
		Weight:    1.0,
		Intensity: len(group),
	}
}

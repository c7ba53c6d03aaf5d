package heatmap

import (
	"github.com/campuswatch/issues-backend-go/internal/models"
	"github.com/campuswatch/issues-backend-go/internal/spatial"
)

// ClusterPoints runs DBSCAN over the weighted heatmap points.
//
// A point whose neighborhood (points within radiusMeters, itself included)
// reaches minClusterSize seeds a cluster; neighborhoods of core members are
// expanded breadth-first. Points that never join a cluster pass through
// unchanged as singletons rather than being discarded. Each cluster is
// flattened back into a single point, so the output count never exceeds the
// input count and total intensity is preserved.
func ClusterPoints(points []*models.HeatmapPoint, radiusMeters float64, minClusterSize int) []*models.HeatmapPoint {
	if len(points) == 0 {
		return points
	}

	visited := make([]bool, len(points))
	clustered := make([]bool, len(points))
	var clusters []*models.HeatmapCluster

	for i := range points {
		if visited[i] {
			continue
		}
		visited[i] = true

		neighbors := regionQuery(points, i, radiusMeters)
		if len(neighbors) < minClusterSize {
			// Noise for now; may still be absorbed by a later expansion
			continue
		}

		cluster := &models.HeatmapCluster{ID: len(clusters) + 1}

		// Breadth-first expansion over the neighborhood work queue.
		// Visited gates re-expansion; clustered gates membership, so a
		// point can never be counted into two clusters.
		queue := append([]int(nil), neighbors...)
		for qi := 0; qi < len(queue); qi++ {
			j := queue[qi]

			if !visited[j] {
				visited[j] = true
				jNeighbors := regionQuery(points, j, radiusMeters)
				if len(jNeighbors) >= minClusterSize {
					queue = append(queue, jNeighbors...)
				}
			}

			if !clustered[j] {
				clustered[j] = true
				cluster.Points = append(cluster.Points, points[j])
			}
		}

		clusters = append(clusters, cluster)
	}

	out := make([]*models.HeatmapPoint, 0, len(points))
	for _, c := range clusters {
		out = append(out, flattenCluster(c))
	}
	for i, p := range points {
		if !clustered[i] {
			out = append(out, p)
		}
	}
	return out
}

// regionQuery returns the indexes of all points within radiusMeters of
// points[i], including i itself
func regionQuery(points []*models.HeatmapPoint, i int, radiusMeters float64) []int {
	var neighbors []int
	for j, p := range points {
		if j == i {
			neighbors = append(neighbors, j)
			continue
		}
		d := spatial.HaversineDistance(points[i].Lat, points[i].Lng, p.Lat, p.Lng)
		if d <= radiusMeters {
			neighbors = append(neighbors, j)
		}
	}
	return neighbors
}

// flattenCluster collapses a cluster into a single heatmap point:
// centroid is the unweighted mean of member centroids, weight the mean of
// member weights, intensity the sum of member intensities
func flattenCluster(c *models.HeatmapCluster) *models.HeatmapPoint {
	var sumLat, sumLng, sumWeight float64
	var issues []models.Issue
	intensity := 0

	for _, p := range c.Points {
		sumLat += p.Lat
		sumLng += p.Lng
		sumWeight += p.Weight
		intensity += p.Intensity
		issues = append(issues, p.Issues...)
	}
	n := float64(len(c.Points))

	c.CenterLat = sumLat / n
	c.CenterLng = sumLng / n
	c.TotalWeight = sumWeight
	c.IssueCount = len(issues)

	return &models.HeatmapPoint{
		Lat:       c.CenterLat,
		Lng:       c.CenterLng,
		Issues:    issues,
		Weight:    sumWeight / n,
		Intensity: intensity,
	}
}

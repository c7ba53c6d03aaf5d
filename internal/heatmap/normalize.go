package heatmap

import (
	"github.com/campuswatch/issues-backend-go/internal/models"
	"github.com/campuswatch/issues-backend-go/internal/stats"
)

// NormalizeWeights rescales all point weights into [0,1] using the observed
// min/max. When all weights are equal (including the single-point case)
// every weight is set to 1.0 instead of dividing by zero.
func NormalizeWeights(points []*models.HeatmapPoint) {
	if len(points) == 0 {
		return
	}

	weights := make([]float64, len(points))
	for i, p := range points {
		weights[i] = p.Weight
	}

	min := stats.Min(weights)
	max := stats.Max(weights)

	if max == min {
		for _, p := range points {
			p.Weight = 1.0
		}
		return
	}

	for _, p := range points {
		p.Weight = (p.Weight - min) / (max - min)
	}
}

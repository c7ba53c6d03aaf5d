package heatmap

import (
	"math"
	"time"

	"github.com/campuswatch/issues-backend-go/internal/models"
)

// maxAgeWindow is the horizon of the exponential time decay: issues older
// than this contribute the floor decay weight e^-decayFactor.
const maxAgeWindow = 90 * 24 * time.Hour

// priorityMultipliers feed the severity weighting stage.
// Unrecognized priorities fall back to the LOW multiplier.
var priorityMultipliers = map[string]float64{
	models.PriorityCritical: 4.0,
	models.PriorityHigh:     2.5,
	models.PriorityMedium:   1.5,
	models.PriorityLow:      1.0,
}

// priorityMultiplier returns the severity multiplier for a priority tier
func priorityMultiplier(priority string) float64 {
	if m, ok := priorityMultipliers[priority]; ok {
		return m
	}
	return 1.0
}

// ApplyTimeDecay rescales each point's weight by the recency of its issues.
// Each issue contributes exp(-decayFactor * min(age/90d, 1)); the point's
// weight is multiplied by the average across its issues. A decay factor of 0
// leaves every weight unchanged.
func ApplyTimeDecay(points []*models.HeatmapPoint, decayFactor float64, now time.Time) {
	for _, p := range points {
		if len(p.Issues) == 0 {
			continue
		}

		var sum float64
		for _, issue := range p.Issues {
			age := now.Sub(issue.CreatedAt)
			if age < 0 {
				age = 0
			}
			normalizedAge := float64(age) / float64(maxAgeWindow)
			if normalizedAge > 1 {
				normalizedAge = 1
			}
			sum += math.Exp(-decayFactor * normalizedAge)
		}

		p.Weight *= sum / float64(len(p.Issues))
	}
}

// ApplySeverityWeights rescales each point's weight by the severity and
// priority of its issues: weight *= 1 + avgSeverityWeight * multiplier,
// where each issue scores (severity/10) * priorityMultiplier.
// A multiplier of 0 disables severity influence entirely.
func ApplySeverityWeights(points []*models.HeatmapPoint, multiplier float64) {
	for _, p := range points {
		if len(p.Issues) == 0 {
			continue
		}

		var sum float64
		for _, issue := range p.Issues {
			sum += float64(issue.Severity) / 10.0 * priorityMultiplier(issue.Priority)
		}
		avgSeverityWeight := sum / float64(len(p.Issues))

		p.Weight *= 1 + avgSeverityWeight*multiplier
	}
}

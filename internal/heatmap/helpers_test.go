package heatmap

import (
	"fmt"
	"time"

	"github.com/campuswatch/issues-backend-go/internal/models"
)

// makeIssue builds a located issue for tests
func makeIssue(id string, lat, lng float64, severity int, priority string, createdAt time.Time) models.Issue {
	return models.Issue{
		ID:             id,
		OrganizationID: "org-1",
		Category:       models.CategoryMaintenance,
		Severity:       severity,
		Priority:       priority,
		Status:         models.StatusOpen,
		Latitude:       &lat,
		Longitude:      &lng,
		CreatedAt:      createdAt,
	}
}

// makeIssuesAt builds n identical-coordinate issues
func makeIssuesAt(lat, lng float64, n int, createdAt time.Time) []models.Issue {
	issues := make([]models.Issue, 0, n)
	for i := 0; i < n; i++ {
		issues = append(issues, makeIssue(fmt.Sprintf("i-%d", i), lat, lng, 5, models.PriorityMedium, createdAt))
	}
	return issues
}

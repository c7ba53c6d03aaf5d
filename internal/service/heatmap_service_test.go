package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuswatch/issues-backend-go/internal/cache"
	"github.com/campuswatch/issues-backend-go/internal/models"
)

type stubSource struct {
	issues     []models.Issue
	err        error
	calls      int
	lastFilter models.HeatmapFilter
}

func (s *stubSource) FetchIssues(filter models.HeatmapFilter) ([]models.Issue, error) {
	s.calls++
	s.lastFilter = filter
	return s.issues, s.err
}

func locatedIssue(id string, lat, lng float64) models.Issue {
	return models.Issue{
		ID:             id,
		OrganizationID: "org-1",
		Category:       models.CategoryMaintenance,
		Severity:       5,
		Priority:       models.PriorityMedium,
		Status:         models.StatusOpen,
		Latitude:       &lat,
		Longitude:      &lng,
		CreatedAt:      time.Now().UTC(),
	}
}

func TestGetHeatmapRunsPipeline(t *testing.T) {
	source := &stubSource{issues: []models.Issue{
		locatedIssue("a", 40.0, -74.0),
		locatedIssue("b", 41.0, -74.0),
	}}
	svc := NewHeatmapService(source, nil)

	fc, err := svc.GetHeatmap(models.HeatmapFilter{OrganizationID: "org-1"}, models.DefaultHeatmapConfig())

	require.NoError(t, err)
	assert.Equal(t, "FeatureCollection", fc.Type)
	assert.Len(t, fc.Features, 2)
	assert.Equal(t, 2, fc.Metadata.TotalIssues)
}

func TestGetHeatmapPropagatesFetchError(t *testing.T) {
	source := &stubSource{err: errors.New("connection refused")}
	svc := NewHeatmapService(source, nil)

	_, err := svc.GetHeatmap(models.HeatmapFilter{OrganizationID: "org-1"}, models.DefaultHeatmapConfig())

	assert.EqualError(t, err, "connection refused")
}

func TestGetHeatmapUsesCache(t *testing.T) {
	source := &stubSource{issues: []models.Issue{locatedIssue("a", 40.0, -74.0)}}
	svc := NewHeatmapService(source, cache.New(time.Minute))
	filter := models.HeatmapFilter{OrganizationID: "org-1"}

	_, err := svc.GetHeatmap(filter, models.DefaultHeatmapConfig())
	require.NoError(t, err)
	_, err = svc.GetHeatmap(filter, models.DefaultHeatmapConfig())
	require.NoError(t, err)

	assert.Equal(t, 1, source.calls)
}

func TestGetHeatmapCacheKeyedByFilter(t *testing.T) {
	source := &stubSource{issues: []models.Issue{locatedIssue("a", 40.0, -74.0)}}
	svc := NewHeatmapService(source, cache.New(time.Minute))

	_, err := svc.GetHeatmap(models.HeatmapFilter{OrganizationID: "org-1"}, models.DefaultHeatmapConfig())
	require.NoError(t, err)
	_, err = svc.GetHeatmap(models.HeatmapFilter{OrganizationID: "org-2"}, models.DefaultHeatmapConfig())
	require.NoError(t, err)

	assert.Equal(t, 2, source.calls)
}

func TestGetHeatmapFetchErrorNotCached(t *testing.T) {
	source := &stubSource{err: errors.New("boom")}
	svc := NewHeatmapService(source, cache.New(time.Minute))
	filter := models.HeatmapFilter{OrganizationID: "org-1"}

	_, err := svc.GetHeatmap(filter, models.DefaultHeatmapConfig())
	require.Error(t, err)

	source.err = nil
	source.issues = []models.Issue{locatedIssue("a", 40.0, -74.0)}
	fc, err := svc.GetHeatmap(filter, models.DefaultHeatmapConfig())
	require.NoError(t, err)
	assert.Len(t, fc.Features, 1)
	assert.Equal(t, 2, source.calls)
}

func TestGetStatistics(t *testing.T) {
	source := &stubSource{issues: []models.Issue{
		locatedIssue("a", 40.0, -74.0),
		locatedIssue("b", 41.0, -74.0),
	}}
	svc := NewHeatmapService(source, nil)

	stats, err := svc.GetStatistics(models.HeatmapFilter{OrganizationID: "org-1"}, models.DefaultHeatmapConfig())

	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalPoints)
	assert.Equal(t, 2, stats.TotalIssues)
}

package service

import (
	"log"
	"time"

	"github.com/campuswatch/issues-backend-go/internal/cache"
	"github.com/campuswatch/issues-backend-go/internal/heatmap"
	"github.com/campuswatch/issues-backend-go/internal/models"
)

// IssueSource returns a bounded list of located issues matching the filter.
// The source owns tenant isolation and all record-level filtering.
type IssueSource interface {
	FetchIssues(filter models.HeatmapFilter) ([]models.Issue, error)
}

// HeatmapService is the façade around the heatmap engine: it fetches
// issues (through an optional TTL cache) and runs the pipeline
type HeatmapService struct {
	source IssueSource
	engine *heatmap.Engine
	cache  *cache.TTLCache
}

// NewHeatmapService creates a new heatmap service. The cache may be nil
// to disable fetch caching.
func NewHeatmapService(source IssueSource, c *cache.TTLCache) *HeatmapService {
	return &HeatmapService{
		source: source,
		engine: heatmap.NewEngine(),
		cache:  c,
	}
}

// GetHeatmap computes a heatmap for the given filter and config
func (s *HeatmapService) GetHeatmap(filter models.HeatmapFilter, cfg models.HeatmapConfig) (models.HeatmapGeoJSON, error) {
	issues, err := s.fetchIssues(filter)
	if err != nil {
		return models.HeatmapGeoJSON{}, err
	}

	log.Printf("[HeatmapService] Generating heatmap over %d issues (org=%s)", len(issues), filter.OrganizationID)
	return s.engine.Generate(issues, cfg), nil
}

// GetStatistics computes a heatmap and summarizes it
func (s *HeatmapService) GetStatistics(filter models.HeatmapFilter, cfg models.HeatmapConfig) (models.HeatmapStatistics, error) {
	fc, err := s.GetHeatmap(filter, cfg)
	if err != nil {
		return models.HeatmapStatistics{}, err
	}
	return heatmap.Summarize(fc, time.Now().UTC()), nil
}

// fetchIssues consults the cache before hitting the issue source.
// Fetch errors propagate unchanged; retries belong to the source.
func (s *HeatmapService) fetchIssues(filter models.HeatmapFilter) ([]models.Issue, error) {
	if s.cache == nil {
		return s.source.FetchIssues(filter)
	}

	key := filter.CacheKey()
	if cached, ok := s.cache.Get(key); ok {
		if issues, ok := cached.([]models.Issue); ok {
			return issues, nil
		}
	}

	issues, err := s.source.FetchIssues(filter)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, issues)
	return issues, nil
}

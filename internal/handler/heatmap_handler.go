package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campuswatch/issues-backend-go/internal/models"
	"github.com/campuswatch/issues-backend-go/internal/service"
	"github.com/campuswatch/issues-backend-go/pkg/response"
)

// HeatmapHandler handles HTTP requests for issue heatmaps
type HeatmapHandler struct {
	service *service.HeatmapService
}

// NewHeatmapHandler creates a new heatmap handler
func NewHeatmapHandler(service *service.HeatmapService) *HeatmapHandler {
	return &HeatmapHandler{service: service}
}

// GetHeatmap handles GET /api/v1/heatmap.
// Responds with a bare GeoJSON FeatureCollection; an empty result is a
// well-formed empty collection, not an error.
func (h *HeatmapHandler) GetHeatmap(c *gin.Context) {
	filter, cfg, ok := h.bindQuery(c)
	if !ok {
		return
	}

	fc, err := h.service.GetHeatmap(filter, cfg)
	if err != nil {
		response.InternalError(c, "Failed to generate heatmap")
		return
	}

	c.JSON(http.StatusOK, fc)
}

// GetStatistics handles GET /api/v1/heatmap/stats
func (h *HeatmapHandler) GetStatistics(c *gin.Context) {
	filter, cfg, ok := h.bindQuery(c)
	if !ok {
		return
	}

	stats, err := h.service.GetStatistics(filter, cfg)
	if err != nil {
		response.InternalError(c, "Failed to compute heatmap statistics")
		return
	}

	response.Success(c, stats)
}

// bindQuery parses and validates the shared query parameters of both
// endpoints. Validation lives here: the engine itself does not police
// its inputs.
func (h *HeatmapHandler) bindQuery(c *gin.Context) (models.HeatmapFilter, models.HeatmapConfig, bool) {
	var query models.HeatmapQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return models.HeatmapFilter{}, models.HeatmapConfig{}, false
	}

	if query.OrganizationID == "" {
		response.BadRequest(c, "organizationId is required")
		return models.HeatmapFilter{}, models.HeatmapConfig{}, false
	}

	filter, err := buildFilter(query)
	if err != nil {
		response.BadRequest(c, err.Error())
		return models.HeatmapFilter{}, models.HeatmapConfig{}, false
	}

	cfg, err := buildConfig(query)
	if err != nil {
		response.BadRequest(c, err.Error())
		return models.HeatmapFilter{}, models.HeatmapConfig{}, false
	}

	if org, exists := c.Get("org_id"); exists && org != filter.OrganizationID {
		response.Forbidden(c, "Token does not grant access to this organization")
		return models.HeatmapFilter{}, models.HeatmapConfig{}, false
	}

	return filter, cfg, true
}

// buildFilter converts raw query parameters into a typed filter
func buildFilter(query models.HeatmapQuery) (models.HeatmapFilter, error) {
	filter := models.HeatmapFilter{
		OrganizationID: query.OrganizationID,
		CampusID:       query.CampusID,
		ZoneID:         query.ZoneID,
		BuildingIDs:    splitList(query.BuildingIDs),
		Categories:     splitList(query.Categories),
		Priorities:     splitList(query.Priorities),
		Statuses:       splitList(query.Statuses),
		MinSeverity:    query.MinSeverity,
		MaxAgeDays:     query.MaxAgeDays,
	}

	if query.StartDate != "" {
		t, err := parseDate(query.StartDate)
		if err != nil {
			return filter, fmt.Errorf("invalid startDate: %s", query.StartDate)
		}
		filter.StartDate = &t
	}
	if query.EndDate != "" {
		t, err := parseDate(query.EndDate)
		if err != nil {
			return filter, fmt.Errorf("invalid endDate: %s", query.EndDate)
		}
		filter.EndDate = &t
	}

	if query.MinSeverity != nil && (*query.MinSeverity < 0 || *query.MinSeverity > 10) {
		return filter, fmt.Errorf("minSeverity must be between 0 and 10")
	}
	if query.MaxAgeDays != nil && *query.MaxAgeDays < 0 {
		return filter, fmt.Errorf("maxAge must not be negative")
	}

	return filter, nil
}

// buildConfig converts raw query parameters into an engine config,
// applying defaults for anything omitted
func buildConfig(query models.HeatmapQuery) (models.HeatmapConfig, error) {
	cfg := models.DefaultHeatmapConfig()

	if query.TimeDecayFactor != nil {
		if *query.TimeDecayFactor < 0 || *query.TimeDecayFactor > 1 {
			return cfg, fmt.Errorf("timeDecayFactor must be between 0 and 1")
		}
		cfg.TimeDecayFactor = *query.TimeDecayFactor
	}
	if query.SeverityWeightMultiplier != nil {
		if *query.SeverityWeightMultiplier < 0 {
			return cfg, fmt.Errorf("severityWeightMultiplier must not be negative")
		}
		cfg.SeverityWeightMultiplier = *query.SeverityWeightMultiplier
	}
	if query.GridSize != nil {
		if *query.GridSize <= 0 {
			return cfg, fmt.Errorf("gridSize must be positive")
		}
		cfg.GridSizeMeters = *query.GridSize
	}
	if query.NormalizeWeights != nil {
		cfg.NormalizeWeights = *query.NormalizeWeights
	}

	// Clustering requires both knobs together
	if (query.ClusterRadius == nil) != (query.MinClusterSize == nil) {
		return cfg, fmt.Errorf("clusterRadius and minClusterSize must be provided together")
	}
	if query.ClusterRadius != nil {
		if *query.ClusterRadius <= 0 || *query.MinClusterSize <= 0 {
			return cfg, fmt.Errorf("clusterRadius and minClusterSize must be positive")
		}
		cfg.ClusterRadiusMeters = *query.ClusterRadius
		cfg.MinClusterSize = *query.MinClusterSize
	}

	return cfg, nil
}

// splitList normalizes list parameters that arrive as repeated keys,
// comma-separated values, or a mix of both
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// parseDate accepts RFC 3339 timestamps or plain dates
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/campuswatch/issues-backend-go/internal/models"
)

// MaxIssueResults caps one fetch; the aggregation and clustering stages
// downstream are O(n²) and rely on this bound
const MaxIssueResults = 10000

// IssueRepository is the issue source backing the heatmap engine.
// It owns tenant isolation, filtering and the exclusion of issues
// without a location.
type IssueRepository struct {
	db *sql.DB
}

// NewIssueRepository creates a new issue repository
func NewIssueRepository(db *sql.DB) *IssueRepository {
	return &IssueRepository{db: db}
}

// FetchIssues returns located issues matching the filter, capped at
// MaxIssueResults, in deterministic creation order
func (r *IssueRepository) FetchIssues(filter models.HeatmapFilter) ([]models.Issue, error) {
	query := `SELECT id, organization_id, campus_id, zone_id, building_id,
		category, severity, priority, status,
		latitude, longitude, created_at
		FROM issues`

	conditions := []string{
		"organization_id = ?",
		"latitude IS NOT NULL",
		"longitude IS NOT NULL",
	}
	args := []interface{}{filter.OrganizationID}

	if filter.CampusID != "" {
		conditions = append(conditions, "campus_id = ?")
		args = append(args, filter.CampusID)
	}
	if filter.ZoneID != "" {
		conditions = append(conditions, "zone_id = ?")
		args = append(args, filter.ZoneID)
	}
	if len(filter.BuildingIDs) > 0 {
		conditions = append(conditions, "building_id IN ("+placeholders(len(filter.BuildingIDs))+")")
		for _, id := range filter.BuildingIDs {
			args = append(args, id)
		}
	}
	if len(filter.Categories) > 0 {
		conditions = append(conditions, "category IN ("+placeholders(len(filter.Categories))+")")
		for _, c := range filter.Categories {
			args = append(args, c)
		}
	}
	if len(filter.Priorities) > 0 {
		conditions = append(conditions, "priority IN ("+placeholders(len(filter.Priorities))+")")
		for _, p := range filter.Priorities {
			args = append(args, p)
		}
	}
	if len(filter.Statuses) > 0 {
		conditions = append(conditions, "status IN ("+placeholders(len(filter.Statuses))+")")
		for _, s := range filter.Statuses {
			args = append(args, s)
		}
	}
	if filter.StartDate != nil {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, filter.StartDate.Unix())
	}
	if filter.EndDate != nil {
		conditions = append(conditions, "created_at <= ?")
		args = append(args, filter.EndDate.Unix())
	}
	if filter.MinSeverity != nil {
		conditions = append(conditions, "severity >= ?")
		args = append(args, *filter.MinSeverity)
	}
	if filter.MaxAgeDays != nil {
		cutoff := time.Now().AddDate(0, 0, -*filter.MaxAgeDays)
		conditions = append(conditions, "created_at >= ?")
		args = append(args, cutoff.Unix())
	}

	query += " WHERE " + strings.Join(conditions, " AND ")
	query += " ORDER BY created_at, id"
	query += fmt.Sprintf(" LIMIT %d", MaxIssueResults)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query issues: %w", err)
	}
	defer rows.Close()

	var issues []models.Issue
	for rows.Next() {
		issue, err := scanIssue(rows)
		if err != nil {
			return nil, err
		}
		issues = append(issues, issue)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating issues: %w", err)
	}

	return issues, nil
}

// scanIssue maps one row onto a typed Issue record
func scanIssue(rows *sql.Rows) (models.Issue, error) {
	var issue models.Issue
	var campusID, zoneID, buildingID sql.NullString
	var lat, lon sql.NullFloat64
	var createdAt int64

	if err := rows.Scan(
		&issue.ID, &issue.OrganizationID, &campusID, &zoneID, &buildingID,
		&issue.Category, &issue.Severity, &issue.Priority, &issue.Status,
		&lat, &lon, &createdAt,
	); err != nil {
		return issue, fmt.Errorf("failed to scan issue: %w", err)
	}

	if campusID.Valid {
		issue.CampusID = campusID.String
	}
	if zoneID.Valid {
		issue.ZoneID = zoneID.String
	}
	if buildingID.Valid {
		issue.BuildingID = buildingID.String
	}
	if lat.Valid && lon.Valid {
		issue.Latitude = &lat.Float64
		issue.Longitude = &lon.Float64
	}
	issue.CreatedAt = time.Unix(createdAt, 0).UTC()

	return issue, nil
}

// placeholders builds a "?, ?, ?" list for IN clauses
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations run in version order; applied versions are tracked in the
// migrations table and skipped on later startups
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_issues",
		SQL: `
			CREATE TABLE IF NOT EXISTS issues (
				id TEXT PRIMARY KEY,
				organization_id TEXT NOT NULL,
				campus_id TEXT,
				zone_id TEXT,
				building_id TEXT,
				category TEXT NOT NULL DEFAULT 'OTHER',
				severity INTEGER NOT NULL DEFAULT 0,
				priority TEXT NOT NULL DEFAULT 'LOW',
				status TEXT NOT NULL DEFAULT 'OPEN',
				latitude REAL,
				longitude REAL,
				created_at INTEGER NOT NULL
			)
		`,
	},
	{
		Version: 2,
		Name:    "issue_indexes",
		SQL: `
			CREATE INDEX IF NOT EXISTS idx_issues_org_created
				ON issues(organization_id, created_at);
			CREATE INDEX IF NOT EXISTS idx_issues_located
				ON issues(organization_id)
				WHERE latitude IS NOT NULL AND longitude IS NOT NULL
		`,
	},
}

// RunMigrations applies all pending migrations
func RunMigrations(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := appliedMigrations(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}

		if _, err := tx.Exec(m.SQL); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
		if _, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
		}
		log.Printf("[Database] Applied migration %d: %s", m.Version, m.Name)
	}

	return nil
}

// appliedMigrations returns the set of already-applied migration versions
func appliedMigrations(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

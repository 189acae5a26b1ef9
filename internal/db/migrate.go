package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations is the ordered list of schema statements. Statements must stay
// idempotent (CREATE IF NOT EXISTS / tolerated ALTER errors) because the
// whole list re-runs on every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS assignees (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		seq INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		seq INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'active'
			CHECK (status IN ('active', 'archived')),
		archived_at TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS work_items (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'todo'
			CHECK (status IN ('todo', 'in_progress', 'review', 'blocked', 'done')),
		priority TEXT NOT NULL DEFAULT 'normal'
			CHECK (priority IN ('low', 'normal', 'high', 'urgent')),
		start_date TEXT,
		due_date TEXT,
		estimate_min INTEGER NOT NULL DEFAULT 0,
		assignee_id TEXT REFERENCES assignees(id) ON DELETE SET NULL,
		project_id TEXT REFERENCES projects(id) ON DELETE SET NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_work_items_assignee ON work_items(assignee_id)`,
	`CREATE INDEX IF NOT EXISTS idx_work_items_project ON work_items(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_work_items_due ON work_items(due_date)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

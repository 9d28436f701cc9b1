package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies every schema statement. All statements are idempotent so
// the full list runs on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS work_sessions (
		id               TEXT PRIMARY KEY,
		start_time       TEXT NOT NULL,
		end_time         TEXT,
		duration_minutes INTEGER CHECK(duration_minutes IS NULL OR duration_minutes >= 0),
		created_at       TEXT NOT NULL,
		CHECK(end_time IS NULL OR end_time > start_time),
		CHECK((end_time IS NULL) = (duration_minutes IS NULL))
	)`,

	`CREATE INDEX IF NOT EXISTS idx_work_sessions_start ON work_sessions(start_time)`,

	// At most one running session, regardless of which process wrote it.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_work_sessions_single_active
		ON work_sessions((end_time IS NULL)) WHERE end_time IS NULL`,
}

package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesSchema(t *testing.T) {
	db := openTestDB(t)

	objects := map[string]string{
		"work_sessions":                   "table",
		"idx_work_sessions_start":         "index",
		"idx_work_sessions_single_active": "index",
	}
	for name, kind := range objects {
		var got string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = ? AND name = ?`, kind, name).Scan(&got)
		require.NoError(t, err, "%s %s should exist", kind, name)
	}
}

func TestMigrate_SingleActiveSessionIndex(t *testing.T) {
	db := openTestDB(t)
	insert := `INSERT INTO work_sessions (id, start_time, end_time, duration_minutes, created_at) VALUES (?, ?, ?, ?, ?)`

	_, err := db.Exec(insert, "open-1", "2026-03-02T09:00:00.000000000Z", nil, nil, "2026-03-02T09:00:00.000000000Z")
	require.NoError(t, err)

	_, err = db.Exec(insert, "open-2", "2026-03-02T10:00:00.000000000Z", nil, nil, "2026-03-02T10:00:00.000000000Z")
	require.Error(t, err, "a second running session must violate the partial unique index")
	assert.Contains(t, err.Error(), "UNIQUE")

	_, err = db.Exec(insert, "done-1", "2026-03-01T09:00:00.000000000Z", "2026-03-01T09:30:00.000000000Z", 30, "2026-03-01T09:00:00.000000000Z")
	require.NoError(t, err, "completed sessions are not limited")
	_, err = db.Exec(insert, "done-2", "2026-03-01T10:00:00.000000000Z", "2026-03-01T11:15:00.000000000Z", 75, "2026-03-01T10:00:00.000000000Z")
	require.NoError(t, err)
}

func TestMigrate_RejectsEndBeforeStart(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO work_sessions (id, start_time, end_time, duration_minutes, created_at) VALUES (?, ?, ?, ?, ?)`,
		"bad", "2026-03-02T09:00:00.000000000Z", "2026-03-02T09:00:00.000000000Z", 0, "2026-03-02T09:00:00.000000000Z")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CHECK")
}

func TestMigrate_RejectsDurationWithoutEnd(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO work_sessions (id, start_time, end_time, duration_minutes, created_at) VALUES (?, ?, ?, ?, ?)`,
		"bad", "2026-03-02T09:00:00.000000000Z", nil, 10, "2026-03-02T09:00:00.000000000Z")
	require.Error(t, err)
}

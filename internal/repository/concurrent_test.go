package repository

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/gktimer/internal/db"
	"github.com/alexanderramin/gktimer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConcurrentTestDB creates a file-backed SQLite database in a temp directory.
// Unlike :memory:, a file-backed DB shares state across all pooled
// connections, which is what two gktimer processes see.
func newConcurrentTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(filepath.Join(t.TempDir(), "concurrent_test.db"))
	require.NoError(t, err, "failed to create concurrent test database")
	t.Cleanup(func() { database.Close() })
	return database
}

// TestConcurrentCreate_SingleActive races independent repos (one per
// simulated process) to start a session. The partial unique index must let
// exactly one through.
func TestConcurrentCreate_SingleActive(t *testing.T) {
	database := newConcurrentTestDB(t)
	ctx := context.Background()
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	const writers = 8
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			repo := NewSQLiteSessionRepo(database)
			_, err := repo.CreateSession(ctx, start.Add(time.Duration(i)*time.Second))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	var ok, conflicts int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ErrActiveSessionExists):
			conflicts++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, writers-1, conflicts)

	var open int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM work_sessions WHERE end_time IS NULL`).Scan(&open))
	assert.Equal(t, 1, open)
}

// TestConcurrentAccess_ReadDuringWrite verifies that range queries keep
// working while sessions are being started and stopped.
func TestConcurrentAccess_ReadDuringWrite(t *testing.T) {
	database := newConcurrentTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteSessionRepo(database)
	base := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			start := base.Add(time.Duration(i) * 10 * time.Minute)
			if _, err := repo.CreateSession(ctx, start); err != nil {
				t.Errorf("create %d: %v", i, err)
				return
			}
			if _, err := repo.FinalizeSession(ctx, start.Add(5*time.Minute)); err != nil {
				t.Errorf("finalize %d: %v", i, err)
				return
			}
		}
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				got, err := repo.QuerySessions(ctx, domain.DayRange(base, time.UTC))
				if err != nil {
					t.Errorf("query: %v", err)
					return
				}
				open := 0
				for _, s := range got {
					if s.IsActive() {
						open++
					}
				}
				if open > 1 {
					t.Errorf("observed %d running sessions", open)
				}
			}
		}()
	}
	wg.Wait()

	got, err := repo.QuerySessions(ctx, domain.DayRange(base, time.UTC))
	require.NoError(t, err)
	assert.Len(t, got, 20)
}

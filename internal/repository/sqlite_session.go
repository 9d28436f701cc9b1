package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/gktimer/internal/db"
	"github.com/alexanderramin/gktimer/internal/domain"
	"github.com/google/uuid"
)

const sessionColumns = `id, start_time, end_time, duration_minutes, created_at`

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a SQLiteSessionRepo over a plain connection
// or a transaction.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

var _ SessionRepo = (*SQLiteSessionRepo)(nil)

func (r *SQLiteSessionRepo) CreateSession(ctx context.Context, start time.Time) (*domain.Session, error) {
	active, err := r.GetActiveSession(ctx)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, fmt.Errorf("creating session: %w", ErrActiveSessionExists)
	}

	s := &domain.Session{
		ID:        uuid.New().String(),
		StartTime: start.UTC(),
		CreatedAt: time.Now().UTC(),
	}
	if err := r.Insert(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SQLiteSessionRepo) FinalizeSession(ctx context.Context, end time.Time) (*domain.Session, error) {
	active, err := r.GetActiveSession(ctx)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, fmt.Errorf("finalizing session: %w", ErrNoActiveSession)
	}
	if err := active.Finalize(end.UTC()); err != nil {
		return nil, err
	}

	query := `UPDATE work_sessions SET end_time = ?, duration_minutes = ?
		WHERE id = ? AND end_time IS NULL`
	res, err := r.db.ExecContext(ctx, query,
		nullableTimeToString(active.EndTime),
		nullableIntToValue(active.DurationMinutes),
		active.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("finalizing session %s: %w", active.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("finalizing session %s: %w", active.ID, err)
	}
	if n == 0 {
		// Stopped by another writer between the read and the update.
		return nil, fmt.Errorf("finalizing session %s: %w", active.ID, ErrNoActiveSession)
	}
	return active, nil
}

func (r *SQLiteSessionRepo) GetActiveSession(ctx context.Context) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM work_sessions
		WHERE end_time IS NULL ORDER BY start_time DESC LIMIT 1`
	s, err := r.scanSession(r.db.QueryRowContext(ctx, query))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading active session: %w", err)
	}
	return s, nil
}

func (r *SQLiteSessionRepo) QuerySessions(ctx context.Context, rng domain.DateRange) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM work_sessions
		WHERE start_time < ?
		  AND (end_time IS NULL OR end_time > ?)
		ORDER BY start_time, id`
	rows, err := r.db.QueryContext(ctx, query, formatTime(rng.End), formatTime(rng.Start))
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM work_sessions WHERE id = ?`
	return r.scanSession(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteSessionRepo) FindByIDPrefix(ctx context.Context, prefix string) (*domain.Session, error) {
	if prefix == "" {
		return nil, fmt.Errorf("empty session id: %w", ErrNotFound)
	}
	query := `SELECT ` + sessionColumns + ` FROM work_sessions
		WHERE substr(id, 1, ?) = ? LIMIT 2`
	rows, err := r.db.QueryContext(ctx, query, len(prefix), prefix)
	if err != nil {
		return nil, fmt.Errorf("finding session %s: %w", prefix, err)
	}
	defer rows.Close()

	matches, err := r.scanSessions(rows)
	if err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("session %s: %w", prefix, ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("session %s: %w", prefix, ErrAmbiguousID)
	}
}

func (r *SQLiteSessionRepo) ListRecent(ctx context.Context, limit int) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM work_sessions
		ORDER BY start_time DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent sessions: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) Insert(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO work_sessions (` + sessionColumns + `) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		formatTime(s.StartTime),
		nullableTimeToString(s.EndTime),
		nullableIntToValue(s.DurationMinutes),
		formatTime(s.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) && strings.Contains(err.Error(), "single_active") {
			return fmt.Errorf("inserting session %s: %w", s.ID, ErrActiveSessionExists)
		}
		return fmt.Errorf("inserting session %s: %w", s.ID, err)
	}
	return nil
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM work_sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	return nil
}

// scanSession scans a single session from a *sql.Row.
func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.Session, error) {
	var s domain.Session
	var startStr, createdStr string
	var endStr sql.NullString
	var minutes sql.NullInt64

	if err := row.Scan(&s.ID, &startStr, &endStr, &minutes, &createdStr); err != nil {
		return nil, wrapScanErr("work session", err)
	}
	return r.populateSession(&s, startStr, endStr, minutes, createdStr)
}

// scanSessions scans multiple sessions from *sql.Rows.
func (r *SQLiteSessionRepo) scanSessions(rows *sql.Rows) ([]*domain.Session, error) {
	var sessions []*domain.Session
	for rows.Next() {
		var s domain.Session
		var startStr, createdStr string
		var endStr sql.NullString
		var minutes sql.NullInt64

		if err := rows.Scan(&s.ID, &startStr, &endStr, &minutes, &createdStr); err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		session, err := r.populateSession(&s, startStr, endStr, minutes, createdStr)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

// populateSession fills in parsed fields after scanning raw strings.
func (r *SQLiteSessionRepo) populateSession(s *domain.Session, startStr string, endStr sql.NullString, minutes sql.NullInt64, createdStr string) (*domain.Session, error) {
	var err error
	if s.StartTime, err = parseTime(startStr); err != nil {
		return nil, fmt.Errorf("parsing start_time of %s: %w", s.ID, err)
	}
	if s.EndTime, err = parseNullableTime(endStr); err != nil {
		return nil, fmt.Errorf("parsing end_time of %s: %w", s.ID, err)
	}
	if s.CreatedAt, err = parseTime(createdStr); err != nil {
		return nil, fmt.Errorf("parsing created_at of %s: %w", s.ID, err)
	}
	s.DurationMinutes = nullIntToPtr(minutes)
	return s, nil
}

package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/gktimer/internal/domain"
)

// SessionStore is the persistence contract the timer engine and the
// aggregator depend on.
type SessionStore interface {
	// CreateSession stores a new running session. Fails with
	// ErrActiveSessionExists if one is already running.
	CreateSession(ctx context.Context, start time.Time) (*domain.Session, error)
	// FinalizeSession closes the running session at end and returns it with
	// its duration fixed. Fails with ErrNoActiveSession if nothing is running.
	FinalizeSession(ctx context.Context, end time.Time) (*domain.Session, error)
	// GetActiveSession returns the running session, or nil if there is none.
	GetActiveSession(ctx context.Context) (*domain.Session, error)
	// QuerySessions returns every session intersecting the half-open range,
	// ordered by start time.
	QuerySessions(ctx context.Context, r domain.DateRange) ([]*domain.Session, error)
}

// SessionRepo adds the record-management operations used by the CLI and
// the legacy importer.
type SessionRepo interface {
	SessionStore
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	// FindByIDPrefix resolves the short IDs printed by session listings.
	FindByIDPrefix(ctx context.Context, prefix string) (*domain.Session, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Session, error)
	Insert(ctx context.Context, s *domain.Session) error
	Delete(ctx context.Context, id string) error
}

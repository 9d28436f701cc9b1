package testutil

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/gktimer/internal/domain"
)

// SessionStore mirrors repository.SessionStore so this package stays
// importable from the repository tests.
type SessionStore interface {
	CreateSession(ctx context.Context, start time.Time) (*domain.Session, error)
	FinalizeSession(ctx context.Context, end time.Time) (*domain.Session, error)
	GetActiveSession(ctx context.Context) (*domain.Session, error)
	QuerySessions(ctx context.Context, r domain.DateRange) ([]*domain.Session, error)
}

// FailingStore wraps a SessionStore and returns the configured error from
// an operation instead of delegating. A nil error passes the call through.
// Calls counts every delegated or failed call so tests can assert that
// local rejections never reach the store.
type FailingStore struct {
	SessionStore

	CreateErr   error
	FinalizeErr error
	ActiveErr   error
	QueryErr    error

	Calls atomic.Int32
}

func (f *FailingStore) CreateSession(ctx context.Context, start time.Time) (*domain.Session, error) {
	f.Calls.Add(1)
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	return f.SessionStore.CreateSession(ctx, start)
}

func (f *FailingStore) FinalizeSession(ctx context.Context, end time.Time) (*domain.Session, error) {
	f.Calls.Add(1)
	if f.FinalizeErr != nil {
		return nil, f.FinalizeErr
	}
	return f.SessionStore.FinalizeSession(ctx, end)
}

func (f *FailingStore) GetActiveSession(ctx context.Context) (*domain.Session, error) {
	f.Calls.Add(1)
	if f.ActiveErr != nil {
		return nil, f.ActiveErr
	}
	return f.SessionStore.GetActiveSession(ctx)
}

func (f *FailingStore) QuerySessions(ctx context.Context, r domain.DateRange) ([]*domain.Session, error) {
	f.Calls.Add(1)
	if f.QueryErr != nil {
		return nil, f.QueryErr
	}
	return f.SessionStore.QuerySessions(ctx, r)
}

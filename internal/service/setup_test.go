package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/gktimer/internal/domain"
	"github.com/alexanderramin/gktimer/internal/repository"
	"github.com/alexanderramin/gktimer/internal/testutil"
)

func setupStore(t *testing.T) (*repository.SQLiteSessionRepo, *sql.DB) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return repository.NewSQLiteSessionRepo(database), database
}

// gatedStore parks CreateSession and FinalizeSession until release is
// closed, signalling on entered once the call is in flight.
type gatedStore struct {
	repository.SessionStore
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func newGatedStore(inner repository.SessionStore) *gatedStore {
	return &gatedStore{
		SessionStore: inner,
		entered:      make(chan struct{}),
		release:      make(chan struct{}),
	}
}

func (g *gatedStore) wait() {
	g.once.Do(func() { close(g.entered) })
	<-g.release
}

func (g *gatedStore) CreateSession(ctx context.Context, start time.Time) (*domain.Session, error) {
	g.wait()
	return g.SessionStore.CreateSession(ctx, start)
}

func (g *gatedStore) FinalizeSession(ctx context.Context, end time.Time) (*domain.Session, error) {
	g.wait()
	return g.SessionStore.FinalizeSession(ctx, end)
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *recordingObserver) names() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, 0, len(o.events))
	for _, e := range o.events {
		out = append(out, e.Name)
	}
	return out
}

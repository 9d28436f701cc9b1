package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/gktimer/internal/app"
	"github.com/alexanderramin/gktimer/internal/domain"
	"github.com/alexanderramin/gktimer/internal/repository"
)

// timerService is the session engine. transition serializes Resume, Start
// and Stop across their store calls; mu guards the snapshot so Elapsed and
// Status never wait on the store and never see a half-applied transition.
// Local state only changes after the store confirms.
type timerService struct {
	store    repository.SessionStore
	clock    domain.Clock
	observer UseCaseObserver

	transition sync.Mutex

	mu     sync.RWMutex
	active *domain.Session // nil while idle
}

func NewTimerService(store repository.SessionStore, clock domain.Clock, observers ...UseCaseObserver) TimerService {
	if clock == nil {
		clock = domain.SystemClock{}
	}
	return &timerService{
		store:    store,
		clock:    clock,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Resume reconciles with the store. A session left running by an earlier
// process is adopted with its stored start time.
func (s *timerService) Resume(ctx context.Context) (status app.TimerStatus, err error) {
	s.transition.Lock()
	defer s.transition.Unlock()

	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "resume-timer", startedAt, err, fields) }()

	active, storeErr := s.store.GetActiveSession(ctx)
	if storeErr != nil {
		return s.Status(), app.PersistenceError("loading active session", storeErr)
	}
	s.setActive(active)

	status = s.Status()
	fields["state"] = string(status.State)
	if active != nil {
		fields["session_id"] = active.ID
	}
	return status, nil
}

func (s *timerService) Start(ctx context.Context) (session *domain.Session, err error) {
	s.transition.Lock()
	defer s.transition.Unlock()

	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "start-timer", startedAt, err, fields) }()

	if running := s.current(); running != nil {
		return nil, app.NewError(app.ErrCodeActiveSessionExists,
			fmt.Sprintf("timer already running since %s", running.StartTime.Format(time.RFC3339)), nil)
	}

	created, storeErr := s.store.CreateSession(ctx, s.clock.Now())
	if storeErr != nil {
		if errors.Is(storeErr, repository.ErrActiveSessionExists) {
			// Adopt the stored session so Status and Elapsed match the record.
			if active, loadErr := s.store.GetActiveSession(ctx); loadErr == nil && active != nil {
				s.setActive(active)
				fields["session_id"] = active.ID
			}
			return nil, app.NewError(app.ErrCodeActiveSessionExists, "a session was started elsewhere", storeErr)
		}
		return nil, app.PersistenceError("creating session", storeErr)
	}

	// Anchor on the stored start, not the instant we asked for.
	s.setActive(created)
	fields["session_id"] = created.ID
	return cloneSession(created), nil
}

func (s *timerService) Stop(ctx context.Context) (session *domain.Session, err error) {
	s.transition.Lock()
	defer s.transition.Unlock()

	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "stop-timer", startedAt, err, fields) }()

	running := s.current()
	if running == nil {
		return nil, app.NewError(app.ErrCodeNoActiveSession, "timer is not running", nil)
	}
	fields["session_id"] = running.ID

	done, storeErr := s.store.FinalizeSession(ctx, s.clock.Now())
	if storeErr != nil {
		if errors.Is(storeErr, repository.ErrNoActiveSession) {
			s.setActive(nil)
			return nil, app.NewError(app.ErrCodeNoActiveSession, "the running session was stopped elsewhere", storeErr)
		}
		return nil, app.PersistenceError("finalizing session", storeErr)
	}

	s.setActive(nil)
	if done != nil && done.DurationMinutes != nil {
		fields["duration_minutes"] = *done.DurationMinutes
	}
	return cloneSession(done), nil
}

// Elapsed is recomputed from the anchor on every call; 0 while idle.
func (s *timerService) Elapsed() time.Duration {
	s.mu.RLock()
	active := s.active
	s.mu.RUnlock()

	if active == nil {
		return 0
	}
	return active.ElapsedAt(s.clock.Now())
}

func (s *timerService) Status() app.TimerStatus {
	s.mu.RLock()
	active := cloneSession(s.active)
	s.mu.RUnlock()

	now := s.clock.Now()
	if active == nil {
		return app.TimerStatus{State: domain.TimerIdle, CheckedAt: now}
	}
	return app.TimerStatus{
		State:     domain.TimerRunning,
		Session:   active,
		Elapsed:   active.ElapsedAt(now),
		CheckedAt: now,
	}
}

func (s *timerService) current() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *timerService) setActive(session *domain.Session) {
	session = cloneSession(session)
	s.mu.Lock()
	s.active = session
	s.mu.Unlock()
}

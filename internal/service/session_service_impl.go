package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/gktimer/internal/domain"
	"github.com/alexanderramin/gktimer/internal/repository"
)

const defaultListLimit = 20

type sessionService struct {
	sessions repository.SessionRepo
}

func NewSessionService(sessions repository.SessionRepo) SessionService {
	return &sessionService{sessions: sessions}
}

func (s *sessionService) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	return s.sessions.GetByID(ctx, id)
}

// Resolve accepts a full session ID or the short prefix shown by listings.
func (s *sessionService) Resolve(ctx context.Context, ref string) (*domain.Session, error) {
	session, err := s.sessions.GetByID(ctx, ref)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	return s.sessions.FindByIDPrefix(ctx, ref)
}

func (s *sessionService) ListRecent(ctx context.Context, limit int) ([]*domain.Session, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.sessions.ListRecent(ctx, limit)
}

// Delete removes a completed session by ID or prefix. The running session
// belongs to the timer and has to be stopped first.
func (s *sessionService) Delete(ctx context.Context, ref string) (*domain.Session, error) {
	session, err := s.Resolve(ctx, ref)
	if err != nil {
		return nil, err
	}
	if session.IsActive() {
		return nil, fmt.Errorf("session %s is still running; stop the timer first", session.ID)
	}
	if err := s.sessions.Delete(ctx, session.ID); err != nil {
		return nil, err
	}
	return session, nil
}

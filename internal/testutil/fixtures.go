package testutil

import (
	"time"

	"github.com/alexanderramin/gktimer/internal/domain"
	"github.com/google/uuid"
)

// SessionOption customizes a fixture session.
type SessionOption func(*domain.Session)

// WithEnd closes the session at end and derives its duration.
func WithEnd(end time.Time) SessionOption {
	return func(s *domain.Session) {
		e := end.UTC()
		minutes := domain.WholeMinutes(e.Sub(s.StartTime))
		s.EndTime = &e
		s.DurationMinutes = &minutes
	}
}

// WithMinutes closes the session the given number of minutes after it started.
func WithMinutes(minutes int) SessionOption {
	return func(s *domain.Session) {
		WithEnd(s.StartTime.Add(time.Duration(minutes) * time.Minute))(s)
	}
}

func WithSessionID(id string) SessionOption {
	return func(s *domain.Session) {
		s.ID = id
	}
}

// NewTestSession returns a running session started at start unless an
// option closes it.
func NewTestSession(start time.Time, opts ...SessionOption) *domain.Session {
	s := &domain.Session{
		ID:        uuid.New().String(),
		StartTime: start.UTC(),
		CreatedAt: start.UTC(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Day returns midnight UTC of the given date.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// At returns the given wall time on day.
func At(day time.Time, hour, min int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}

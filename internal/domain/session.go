package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrEndNotAfterStart is returned when a session would be closed at or before
// its own start instant.
var ErrEndNotAfterStart = errors.New("end time must be after start time")

// Session is one tracked work interval. EndTime and DurationMinutes are nil
// while the session is still running.
type Session struct {
	ID              string
	StartTime       time.Time
	EndTime         *time.Time
	DurationMinutes *int
	CreatedAt       time.Time
}

// IsActive reports whether the session has not been stopped yet.
func (s *Session) IsActive() bool {
	return s.EndTime == nil
}

// Finalize closes a running session at end and fixes its duration.
// A completed session cannot be finalized again.
func (s *Session) Finalize(end time.Time) error {
	if !s.IsActive() {
		return fmt.Errorf("session %s already ended at %s", s.ID, s.EndTime.Format(time.RFC3339))
	}
	if !end.After(s.StartTime) {
		return fmt.Errorf("finalizing session %s: %w", s.ID, ErrEndNotAfterStart)
	}
	minutes := WholeMinutes(end.Sub(s.StartTime))
	s.EndTime = &end
	s.DurationMinutes = &minutes
	return nil
}

// Minutes returns the finalized duration, or 0 for a running session.
func (s *Session) Minutes() int {
	if s.DurationMinutes == nil {
		return 0
	}
	return *s.DurationMinutes
}

// ElapsedAt returns how long the session has been running at now. For a
// completed session it returns the recorded interval.
func (s *Session) ElapsedAt(now time.Time) time.Duration {
	end := now
	if s.EndTime != nil {
		end = *s.EndTime
	}
	d := end.Sub(s.StartTime)
	if d < 0 {
		return 0
	}
	return d
}

// Intersects reports whether the session overlaps the half-open range r.
// A running session is open-ended.
func (s *Session) Intersects(r DateRange) bool {
	if !s.StartTime.Before(r.End) {
		return false
	}
	return s.EndTime == nil || s.EndTime.After(r.Start)
}

// WholeMinutes truncates d to whole minutes, never below zero.
func WholeMinutes(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(d / time.Minute)
}

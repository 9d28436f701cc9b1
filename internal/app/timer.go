package app

import (
	"time"

	"github.com/alexanderramin/gktimer/internal/domain"
)

// TimerStatus is a consistent snapshot of the timer engine.
type TimerStatus struct {
	State     domain.TimerState
	Session   *domain.Session // nil while idle
	Elapsed   time.Duration
	CheckedAt time.Time
}

// Running reports whether the snapshot was taken while a session was active.
func (s TimerStatus) Running() bool {
	return s.State == domain.TimerRunning
}

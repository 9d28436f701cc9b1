package app

import (
	"time"

	"github.com/alexanderramin/gktimer/internal/domain"
)

type SummaryRequest struct {
	Range domain.DateRange
}

// Validate rejects empty and inverted ranges. Endpoints are never swapped.
func (r SummaryRequest) Validate() error {
	if !r.Range.Valid() {
		return NewError(ErrCodeInvalidRange, invalidRangeMessage(r.Range.Start, r.Range.End), nil)
	}
	return nil
}

// DayTotal is the per-calendar-day slice of a summary, keyed on each
// session's start day in the range's location.
type DayTotal struct {
	Date     time.Time
	Sessions int
	Minutes  int
}

type SummaryResponse struct {
	Range                domain.DateRange
	TotalSessions        int
	TotalDurationMinutes int
	// OpenSessions counts matched sessions that are still running. They are
	// included in TotalSessions and contribute nothing to the minute totals.
	OpenSessions int
	Sessions     []*domain.Session
	Days         []DayTotal
}

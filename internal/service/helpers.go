package service

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/gktimer/internal/app"
	"github.com/alexanderramin/gktimer/internal/domain"
)

// cloneSession deep-copies s so callers never share the engine's record.
func cloneSession(s *domain.Session) *domain.Session {
	if s == nil {
		return nil
	}
	c := *s
	if s.EndTime != nil {
		end := *s.EndTime
		c.EndTime = &end
	}
	if s.DurationMinutes != nil {
		minutes := *s.DurationMinutes
		c.DurationMinutes = &minutes
	}
	return &c
}

// buildSummary folds the sessions intersecting rng into a summary.
//
// Running sessions count towards TotalSessions and OpenSessions but add no
// minutes, so the result does not depend on when it is computed. Sessions
// crossing a range boundary contribute their full recorded duration.
func buildSummary(rng domain.DateRange, sessions []*domain.Session) *app.SummaryResponse {
	matched := make([]*domain.Session, 0, len(sessions))
	for _, s := range sessions {
		if s != nil && s.Intersects(rng) {
			matched = append(matched, cloneSession(s))
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].StartTime.Before(matched[j].StartTime)
	})

	resp := &app.SummaryResponse{
		Range:         rng,
		TotalSessions: len(matched),
		Sessions:      matched,
		Days:          []app.DayTotal{},
	}

	loc := rng.Location()
	dayIndex := make(map[string]int)
	for _, s := range matched {
		if s.IsActive() {
			resp.OpenSessions++
		}
		resp.TotalDurationMinutes += s.Minutes()

		day := domain.StartOfDay(s.StartTime, loc)
		key := day.Format("2006-01-02")
		i, ok := dayIndex[key]
		if !ok {
			i = len(resp.Days)
			dayIndex[key] = i
			resp.Days = append(resp.Days, app.DayTotal{Date: day})
		}
		resp.Days[i].Sessions++
		resp.Days[i].Minutes += s.Minutes()
	}
	return resp
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}

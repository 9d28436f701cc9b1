package service

import (
	"context"
	"time"

	"github.com/alexanderramin/gktimer/internal/app"
	"github.com/alexanderramin/gktimer/internal/domain"
	"github.com/alexanderramin/gktimer/internal/repository"
)

type reportService struct {
	store    repository.SessionStore
	clock    domain.Clock
	observer UseCaseObserver
}

func NewReportService(store repository.SessionStore, clock domain.Clock, observers ...UseCaseObserver) ReportService {
	if clock == nil {
		clock = domain.SystemClock{}
	}
	return &reportService{
		store:    store,
		clock:    clock,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *reportService) Summarize(ctx context.Context, req app.SummaryRequest) (resp *app.SummaryResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{
		"range_start": req.Range.Start.Format(time.RFC3339),
		"range_end":   req.Range.End.Format(time.RFC3339),
	}
	defer func() { observe(ctx, s.observer, "summarize", startedAt, err, fields) }()

	if err = req.Validate(); err != nil {
		return nil, err
	}

	sessions, storeErr := s.store.QuerySessions(ctx, req.Range)
	if storeErr != nil {
		return nil, app.PersistenceError("querying sessions", storeErr)
	}

	resp = buildSummary(req.Range, sessions)
	fields["total_sessions"] = resp.TotalSessions
	fields["total_minutes"] = resp.TotalDurationMinutes
	return resp, nil
}

// Today summarizes the calendar day containing now in loc.
func (s *reportService) Today(ctx context.Context, loc *time.Location) (*app.SummaryResponse, error) {
	return s.Summarize(ctx, app.SummaryRequest{Range: domain.DayRange(s.clock.Now(), loc)})
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/gktimer/internal/app"
	"github.com/alexanderramin/gktimer/internal/domain"
	"github.com/alexanderramin/gktimer/internal/repository"
	"github.com/alexanderramin/gktimer/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSessions(t *testing.T, repo *repository.SQLiteSessionRepo, sessions ...*domain.Session) {
	t.Helper()
	for _, s := range sessions {
		require.NoError(t, repo.Insert(context.Background(), s))
	}
}

func TestSummarize_SingleDay(t *testing.T) {
	store, _ := setupStore(t)
	day := testutil.Day(2026, 3, 2)
	a := testutil.NewTestSession(testutil.At(day, 9, 0), testutil.WithEnd(testutil.At(day, 9, 30)))
	b := testutil.NewTestSession(testutil.At(day, 10, 0), testutil.WithEnd(testutil.At(day, 11, 15)))
	seedSessions(t, store, b, a)

	svc := NewReportService(store, testutil.NewFakeClock(testutil.At(day, 12, 0)))
	resp, err := svc.Summarize(context.Background(), app.SummaryRequest{Range: domain.DayRange(day, time.UTC)})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.TotalSessions)
	assert.Equal(t, 105, resp.TotalDurationMinutes)
	assert.Zero(t, resp.OpenSessions)
	require.Len(t, resp.Sessions, 2)
	assert.Equal(t, a.ID, resp.Sessions[0].ID, "ordered by start time")
	assert.Equal(t, b.ID, resp.Sessions[1].ID)
	require.Len(t, resp.Days, 1)
	assert.Equal(t, app.DayTotal{Date: day, Sessions: 2, Minutes: 105}, resp.Days[0])
}

func TestSummarize_EmptyRange(t *testing.T) {
	store, _ := setupStore(t)
	svc := NewReportService(store, nil)

	resp, err := svc.Summarize(context.Background(), app.SummaryRequest{Range: domain.DayRange(base, time.UTC)})
	require.NoError(t, err)
	assert.Zero(t, resp.TotalSessions)
	assert.Zero(t, resp.TotalDurationMinutes)
	assert.NotNil(t, resp.Sessions)
	assert.Empty(t, resp.Sessions)
	assert.Empty(t, resp.Days)
}

func TestSummarize_InvalidRange(t *testing.T) {
	store, _ := setupStore(t)
	failing := &testutil.FailingStore{SessionStore: store}
	svc := NewReportService(failing, nil)

	tests := []struct {
		name string
		rng  domain.DateRange
	}{
		{"empty", domain.DateRange{Start: base, End: base}},
		{"inverted", domain.DateRange{Start: base, End: base.Add(-time.Hour)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Summarize(context.Background(), app.SummaryRequest{Range: tt.rng})
			assert.ErrorIs(t, err, app.ErrInvalidRange)
		})
	}
	assert.Zero(t, failing.Calls.Load(), "invalid ranges never reach the store")
}

func TestSummarize_QueryFailure(t *testing.T) {
	store, _ := setupStore(t)
	failing := &testutil.FailingStore{SessionStore: store, QueryErr: errors.New("no such table")}
	svc := NewReportService(failing, nil)

	_, err := svc.Summarize(context.Background(), app.SummaryRequest{Range: domain.DayRange(base, time.UTC)})
	assert.ErrorIs(t, err, app.ErrPersistence)
}

func TestSummarize_OpenSessionCountedWithoutMinutes(t *testing.T) {
	store, _ := setupStore(t)
	day := testutil.Day(2026, 3, 2)
	seedSessions(t, store,
		testutil.NewTestSession(testutil.At(day, 8, 0), testutil.WithMinutes(45)),
		testutil.NewTestSession(testutil.At(day, 13, 0)),
	)

	clock := testutil.NewFakeClock(testutil.At(day, 14, 0))
	svc := NewReportService(store, clock)
	req := app.SummaryRequest{Range: domain.DayRange(day, time.UTC)}

	first, err := svc.Summarize(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 2, first.TotalSessions)
	assert.Equal(t, 1, first.OpenSessions)
	assert.Equal(t, 45, first.TotalDurationMinutes)

	clock.Advance(2 * time.Hour)
	second, err := svc.Summarize(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first, second, "summaries do not drift while a session runs")
}

func TestSummarize_BoundarySpanningSessionsCountInFull(t *testing.T) {
	store, _ := setupStore(t)
	day := testutil.Day(2026, 3, 2)
	overnight := testutil.NewTestSession(day.Add(-30*time.Minute), testutil.WithMinutes(60))
	endsAtMidnight := testutil.NewTestSession(day.Add(-time.Hour), testutil.WithEnd(day))
	seedSessions(t, store, overnight, endsAtMidnight)

	svc := NewReportService(store, nil)
	resp, err := svc.Summarize(context.Background(), app.SummaryRequest{Range: domain.DayRange(day, time.UTC)})
	require.NoError(t, err)

	require.Len(t, resp.Sessions, 1)
	assert.Equal(t, overnight.ID, resp.Sessions[0].ID)
	assert.Equal(t, 60, resp.TotalDurationMinutes)
	require.Len(t, resp.Days, 1)
	assert.Equal(t, day.AddDate(0, 0, -1), resp.Days[0].Date, "grouped by start day")
}

func TestSummarize_GroupsByDayInRangeLocation(t *testing.T) {
	store, _ := setupStore(t)
	loc := time.FixedZone("UTC-5", -5*60*60)
	// 02:00 UTC on Mar 3 is still Mar 2 in loc.
	late := testutil.NewTestSession(time.Date(2026, 3, 3, 2, 0, 0, 0, time.UTC), testutil.WithMinutes(20))
	morning := testutil.NewTestSession(time.Date(2026, 3, 3, 15, 0, 0, 0, time.UTC), testutil.WithMinutes(40))
	seedSessions(t, store, late, morning)

	rng := domain.CalendarDaysRange(time.Date(2026, 3, 2, 12, 0, 0, 0, loc), time.Date(2026, 3, 3, 12, 0, 0, 0, loc), loc)
	svc := NewReportService(store, nil)
	resp, err := svc.Summarize(context.Background(), app.SummaryRequest{Range: rng})
	require.NoError(t, err)

	require.Len(t, resp.Days, 2)
	assert.True(t, resp.Days[0].Date.Equal(time.Date(2026, 3, 2, 0, 0, 0, 0, loc)))
	assert.Equal(t, 20, resp.Days[0].Minutes)
	assert.True(t, resp.Days[1].Date.Equal(time.Date(2026, 3, 3, 0, 0, 0, 0, loc)))
	assert.Equal(t, 40, resp.Days[1].Minutes)
	assert.Equal(t, 60, resp.TotalDurationMinutes)
}

func TestReportToday_UsesClock(t *testing.T) {
	store, _ := setupStore(t)
	day := testutil.Day(2026, 3, 2)
	seedSessions(t, store,
		testutil.NewTestSession(testutil.At(day, 9, 0), testutil.WithMinutes(25)),
		testutil.NewTestSession(testutil.At(day.AddDate(0, 0, -1), 9, 0), testutil.WithMinutes(90)),
	)

	svc := NewReportService(store, testutil.NewFakeClock(testutil.At(day, 18, 0)))
	resp, err := svc.Today(context.Background(), time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalSessions)
	assert.Equal(t, 25, resp.TotalDurationMinutes)
	assert.Equal(t, day, resp.Range.Start)
}

func TestBuildSummary_FiltersAndClones(t *testing.T) {
	day := testutil.Day(2026, 3, 2)
	inside := testutil.NewTestSession(testutil.At(day, 9, 0), testutil.WithMinutes(10))
	outside := testutil.NewTestSession(testutil.At(day, 9, 0).AddDate(0, 0, 2), testutil.WithMinutes(10))

	resp := buildSummary(domain.DayRange(day, time.UTC), []*domain.Session{outside, nil, inside})
	require.Len(t, resp.Sessions, 1)
	assert.NotSame(t, inside, resp.Sessions[0])
	assert.NotSame(t, inside.DurationMinutes, resp.Sessions[0].DurationMinutes)
	assert.Equal(t, 10, resp.TotalDurationMinutes)
}

package cli

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/gktimer/internal/app"
	"github.com/alexanderramin/gktimer/internal/domain"
	"github.com/alexanderramin/gktimer/internal/export"
	"github.com/alexanderramin/gktimer/internal/repository"
	"github.com/alexanderramin/gktimer/internal/service"
	"github.com/alexanderramin/gktimer/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) (*App, *repository.SQLiteSessionRepo, *testutil.FakeClock) {
	t.Helper()
	db := testutil.NewTestDB(t)
	clock := testutil.NewFakeClock(testNow)
	repo := repository.NewSQLiteSessionRepo(db)

	a := &App{
		Timer:         service.NewTimerService(repo, clock),
		Reports:       service.NewReportService(repo, clock),
		Sessions:      service.NewSessionService(repo),
		Import:        service.NewImportService(testutil.NewTestUoW(db)),
		Clock:         clock,
		Location:      time.UTC,
		IsInteractive: func() bool { return false },
	}
	return a, repo, clock
}

// seedDay stores the 09:00-09:30 and 10:00-11:15 sessions on day.
func seedDay(t *testing.T, repo *repository.SQLiteSessionRepo, day time.Time) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, testutil.NewTestSession(testutil.At(day, 9, 0), testutil.WithMinutes(30))))
	require.NoError(t, repo.Insert(ctx, testutil.NewTestSession(testutil.At(day, 10, 0), testutil.WithMinutes(75))))
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, a *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(a)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// --- Timer commands ---

func TestStartStatusStop(t *testing.T) {
	a, _, clock := testApp(t)

	out, err := executeCmd(t, a, "start")
	require.NoError(t, err)
	assert.Contains(t, out, "Started at 9:00 AM")

	clock.Advance(65 * time.Minute)
	out, err = executeCmd(t, a, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Running")
	assert.Contains(t, out, "01:05:00")

	out, err = executeCmd(t, a, "stop")
	require.NoError(t, err)
	assert.Contains(t, out, "Completed - 1h 5m")
	assert.Contains(t, out, "9:00 AM to 10:05 AM")

	out, err = executeCmd(t, a, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Idle")
	assert.Contains(t, out, "Ready")
}

func TestStart_AlreadyRunning(t *testing.T) {
	a, _, _ := testApp(t)

	_, err := executeCmd(t, a, "start")
	require.NoError(t, err)

	_, err = executeCmd(t, a, "start")
	require.Error(t, err)
	assert.ErrorIs(t, err, app.ErrActiveSessionExists)
	assert.Contains(t, ErrorMessage(err), "already running")
}

func TestStop_NothingRunning(t *testing.T) {
	a, _, _ := testApp(t)

	_, err := executeCmd(t, a, "stop")
	assert.ErrorIs(t, err, app.ErrNoActiveSession)
	assert.Contains(t, ErrorMessage(err), "no timer is running")
}

func TestStart_UsesClock24h(t *testing.T) {
	a, _, _ := testApp(t)
	a.Clock = testutil.NewFakeClock(testNow.Add(6 * time.Hour))
	a.Timer = service.NewTimerService(repository.NewSQLiteSessionRepo(testutil.NewTestDB(t)), a.Clock)
	a.Clock24h = true

	out, err := executeCmd(t, a, "start")
	require.NoError(t, err)
	assert.Contains(t, out, "Started at 15:00")
}

// --- Reports ---

func TestToday(t *testing.T) {
	a, repo, clock := testApp(t)
	seedDay(t, repo, testutil.Day(2026, 3, 2))
	clock.Set(testutil.At(testutil.Day(2026, 3, 2), 18, 0))

	out, err := executeCmd(t, a, "today")
	require.NoError(t, err)
	assert.Contains(t, out, "TODAY")
	assert.Contains(t, out, "2 sessions, 1h 45m")
}

func TestReport_Range(t *testing.T) {
	a, repo, _ := testApp(t)
	seedDay(t, repo, testutil.Day(2026, 2, 27))
	seedDay(t, repo, testutil.Day(2026, 3, 1))

	out, err := executeCmd(t, a, "report", "--from", "2026-02-27", "--to", "2026-03-01")
	require.NoError(t, err)
	assert.Contains(t, out, "4 sessions, 3h 30m")
	assert.Contains(t, out, "Yesterday")
	assert.Contains(t, out, "Feb 27")
}

func TestReport_DayYesterday(t *testing.T) {
	a, repo, _ := testApp(t)
	seedDay(t, repo, testutil.Day(2026, 3, 1))

	out, err := executeCmd(t, a, "report", "--day", "yesterday")
	require.NoError(t, err)
	assert.Contains(t, out, "YESTERDAY")
	assert.Contains(t, out, "1h 45m")
}

func TestReport_InvertedRange(t *testing.T) {
	a, _, _ := testApp(t)

	_, err := executeCmd(t, a, "report", "--from", "2026-03-05", "--to", "2026-03-01")
	assert.ErrorIs(t, err, app.ErrInvalidRange)
	assert.Contains(t, ErrorMessage(err), "invalid range")
}

func TestReport_FlagErrors(t *testing.T) {
	a, _, _ := testApp(t)

	_, err := executeCmd(t, a, "report", "--from", "03/01/2026")
	assert.ErrorContains(t, err, "YYYY-MM-DD")

	_, err = executeCmd(t, a, "report", "--day", "today", "--from", "2026-03-01")
	assert.ErrorContains(t, err, "--day cannot be combined")
}

func TestRangeTitle(t *testing.T) {
	now := testNow
	assert.Equal(t, "Today", rangeTitle(domain.DayRange(now, time.UTC), now))
	assert.Equal(t, "Feb 27 to Yesterday",
		rangeTitle(domain.CalendarDaysRange(testutil.Day(2026, 2, 27), testutil.Day(2026, 3, 1), time.UTC), now))
}

// --- Export ---

func TestExport_JSONToStdout(t *testing.T) {
	a, repo, _ := testApp(t)
	seedDay(t, repo, testutil.Day(2026, 3, 2))

	out, err := executeCmd(t, a, "export", "--day", "2026-03-02")
	require.NoError(t, err)

	var doc export.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 2, doc.TotalSessions)
	assert.Equal(t, 105, doc.TotalDurationMinutes)
}

func TestExport_CSVToFile(t *testing.T) {
	a, repo, _ := testApp(t)
	seedDay(t, repo, testutil.Day(2026, 3, 2))
	path := filepath.Join(t.TempDir(), "out.csv")

	out, err := executeCmd(t, a, "export", "--day", "today", "--format", "CSV", "--output", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 2 sessions")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestWriteExportFile_RemovesPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xml")

	err := writeExportFile(path, domain.ExportFormat("xml"), &app.SummaryResponse{})
	require.ErrorContains(t, err, "unsupported export format")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "failed export leaves no file behind")
}

func TestWriteExportFile_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.json")

	err := writeExportFile(path, domain.ExportJSON, &app.SummaryResponse{})
	assert.ErrorContains(t, err, "creating output file")
}

func TestExport_BadFormat(t *testing.T) {
	a, _, _ := testApp(t)
	_, err := executeCmd(t, a, "export", "--format", "xml")
	assert.ErrorContains(t, err, "invalid --format")
}

// --- Sessions ---

func TestSessionList(t *testing.T) {
	a, repo, _ := testApp(t)

	out, err := executeCmd(t, a, "session", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No sessions found.")

	seedDay(t, repo, testutil.Day(2026, 3, 2))
	out, err = executeCmd(t, a, "session", "list", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "10:00 AM")
	assert.NotContains(t, out, "9:30 AM")
}

func TestSessionRemove_RequiresYesWhenNotInteractive(t *testing.T) {
	a, repo, _ := testApp(t)
	s := testutil.NewTestSession(testNow.Add(-2*time.Hour), testutil.WithMinutes(30))
	require.NoError(t, repo.Insert(context.Background(), s))

	_, err := executeCmd(t, a, "session", "remove", s.ID[:8])
	assert.ErrorContains(t, err, "without --yes")

	out, err := executeCmd(t, a, "session", "remove", s.ID[:8], "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed session "+s.ID)

	_, err = repo.GetByID(context.Background(), s.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSessionRemove_Confirm(t *testing.T) {
	a, repo, _ := testApp(t)
	s := testutil.NewTestSession(testNow.Add(-2*time.Hour), testutil.WithMinutes(30))
	require.NoError(t, repo.Insert(context.Background(), s))

	var asked string
	answer := false
	a.IsInteractive = func() bool { return true }
	a.Confirm = func(title string) (bool, error) {
		asked = title
		return answer, nil
	}

	out, err := executeCmd(t, a, "session", "remove", s.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled.")
	assert.Equal(t, "Remove the 30m session from Today?", asked)

	answer = true
	out, err = executeCmd(t, a, "session", "remove", s.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Removed session")
}

func TestSessionRemove_Unknown(t *testing.T) {
	a, _, _ := testApp(t)
	_, err := executeCmd(t, a, "session", "remove", "nope", "--yes")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Contains(t, ErrorMessage(err), "session list")
}

// --- Import ---

func TestImportLegacy(t *testing.T) {
	a, repo, _ := testApp(t)
	path := filepath.Join(t.TempDir(), "work_sessions.json")
	data := `{"sessions":[
		{"id":"old-1","start_time":"2026-02-10T09:00:00Z","end_time":"2026-02-10T09:45:00Z","duration_minutes":45,"created_at":"2026-02-10T09:00:00Z"},
		{"id":"old-2","start_time":"2026-02-11T09:00:00Z","end_time":null,"duration_minutes":null,"created_at":"2026-02-11T09:00:00Z"}
	]}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	a.LegacyFile = path

	out, err := executeCmd(t, a, "import", "legacy")
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 sessions")
	assert.Contains(t, out, "running session was imported")

	out, err = executeCmd(t, a, "import", "legacy", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 0 sessions")
	assert.Contains(t, out, "(2 already present)")

	active, err := repo.GetActiveSession(context.Background())
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, "old-2", active.ID)
}

func TestImportLegacy_NoFile(t *testing.T) {
	a, _, _ := testApp(t)
	_, err := executeCmd(t, a, "import", "legacy")
	assert.ErrorContains(t, err, "no legacy file")
}

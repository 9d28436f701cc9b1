package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/gktimer/internal/app"
	"github.com/alexanderramin/gktimer/internal/domain"
)

// FormatSummary renders a summary as a session table with a totals footer.
// Day labels are relative to now; times are shown in now's location.
func FormatSummary(title string, resp *app.SummaryResponse, now time.Time, use24h bool) string {
	if resp.TotalSessions == 0 {
		return RenderBox(title, Dim("No sessions in this range."))
	}

	var b strings.Builder
	headers := []string{"DAY", "START", "END", "DURATION"}
	rows := make([][]string, 0, len(resp.Sessions))
	for _, s := range resp.Sessions {
		rows = append(rows, sessionRow(s, now, use24h))
	}

	footer := []string{"TOTAL", "", "", FormatMinutes(resp.TotalDurationMinutes)}
	b.WriteString(RenderTableWithFooter(headers, rows, footer))
	b.WriteString("\n")
	b.WriteString(summaryLine(resp))

	if len(resp.Days) > 1 {
		b.WriteString("\n\n")
		b.WriteString(FormatDayTotals(resp.Days, now))
	}

	return RenderBox(title, b.String())
}

// FormatDayTotals renders the per-day breakdown of a summary.
func FormatDayTotals(days []app.DayTotal, now time.Time) string {
	headers := []string{"DAY", "SESSIONS", "TIME"}
	rows := make([][]string, 0, len(days))
	for _, d := range days {
		rows = append(rows, []string{
			DayLabel(d.Date, now),
			fmt.Sprintf("%d", d.Sessions),
			FormatMinutes(d.Minutes),
		})
	}
	return RenderTable(headers, rows)
}

// FormatSessionList renders sessions newest first with their IDs, for
// picking one to remove.
func FormatSessionList(sessions []*domain.Session, now time.Time, use24h bool) string {
	headers := []string{"ID", "DAY", "START", "END", "DURATION"}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, append([]string{TruncID(s.ID)}, sessionRow(s, now, use24h)...))
	}
	return RenderBox("Sessions", RenderTable(headers, rows))
}

func sessionRow(s *domain.Session, now time.Time, use24h bool) []string {
	loc := now.Location()
	start := s.StartTime.In(loc)
	end := StyleGreen.Render("running")
	duration := Dim("--")
	if s.EndTime != nil {
		end = ClockTime(s.EndTime.In(loc), use24h)
		duration = FormatMinutes(s.Minutes())
	}
	return []string{DayLabel(start, now), ClockTime(start, use24h), end, duration}
}

func summaryLine(resp *app.SummaryResponse) string {
	noun := "sessions"
	if resp.TotalSessions == 1 {
		noun = "session"
	}
	line := fmt.Sprintf("%d %s, %s", resp.TotalSessions, noun, FormatMinutes(resp.TotalDurationMinutes))
	if resp.OpenSessions > 0 {
		line += Dim(fmt.Sprintf(" (%d running, not counted)", resp.OpenSessions))
	}
	return line
}

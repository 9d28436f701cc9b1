package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/gktimer/internal/app"
	"github.com/alexanderramin/gktimer/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// DayLabel names the calendar day of t relative to now: "Today",
// "Yesterday", "Jan 2", or "Jan 2, 2006" outside now's year. Both are
// compared in now's location.
func DayLabel(t, now time.Time) string {
	t = t.In(now.Location())
	if sameDay(t, now) {
		return "Today"
	}
	if sameDay(t, now.AddDate(0, 0, -1)) {
		return "Yesterday"
	}
	if t.Year() != now.Year() {
		return t.Format("Jan 2, 2006")
	}
	return t.Format("Jan 2")
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// ClockTime renders the wall-clock time of t as "3:04 PM" or "15:04".
func ClockTime(t time.Time, use24h bool) string {
	if use24h {
		return t.Format("15:04")
	}
	return t.Format("3:04 PM")
}

// FormatElapsed renders d as HH:MM:SS. Hours are not wrapped at 24 and
// negative durations show as zero.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// TimerLine is the one-line status under the live clock: "Started at
// 3:04 PM" while running, "Ready" otherwise.
func TimerLine(status app.TimerStatus, loc *time.Location, use24h bool) string {
	if !status.Running() || status.Session == nil {
		return "Ready"
	}
	return "Started at " + ClockTime(inLocation(status.Session.StartTime, loc), use24h)
}

// CompletedLine reports a finished session as "Completed - 1h 5m".
func CompletedLine(s *domain.Session) string {
	return "Completed - " + FormatMinutes(s.Minutes())
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

func inLocation(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return t.Local()
	}
	return t.In(loc)
}

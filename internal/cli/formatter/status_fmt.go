package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/gktimer/internal/app"
)

// FormatStatus renders the timer snapshot as a boxed panel.
func FormatStatus(status app.TimerStatus, loc *time.Location, use24h bool) string {
	var b strings.Builder

	b.WriteString(StatePill(status.State))
	b.WriteString("  ")
	b.WriteString(StyleClock.Render(FormatElapsed(status.Elapsed)))
	b.WriteString("\n")
	b.WriteString(Dim(TimerLine(status, loc, use24h)))
	if status.Running() && status.Session != nil {
		b.WriteString("\n")
		b.WriteString(Dim("session " + status.Session.ID))
	}

	return RenderBox("Timer", b.String())
}

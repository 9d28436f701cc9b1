package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/gktimer/internal/app"
	"github.com/alexanderramin/gktimer/internal/cli/formatter"
	"github.com/alexanderramin/gktimer/internal/domain"
	"github.com/spf13/cobra"
)

func newTodayCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's sessions and total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Reports.Today(cmd.Context(), a.location())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSummary("Today", resp, a.now(), a.Clock24h))
			return nil
		},
	}
}

func newReportCmd(a *App) *cobra.Command {
	var flags rangeFlags

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize sessions over a range of days",
		Long: `Summarize sessions over whole calendar days. --to is inclusive.
Running sessions are listed but add nothing to the total until stopped.`,
		Example: `  gktimer report --from 2026-03-01 --to 2026-03-07
  gktimer report --day yesterday`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := a.now()
			resp, err := summarizeFlags(cmd, a, &flags)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSummary(rangeTitle(resp.Range, now), resp, now, a.Clock24h))
			return nil
		},
	}

	flags.register(cmd.Flags())
	return cmd
}

func summarizeFlags(cmd *cobra.Command, a *App, flags *rangeFlags) (*app.SummaryResponse, error) {
	now := a.now()
	from, to, err := flags.resolve(now)
	if err != nil {
		return nil, err
	}
	rng := domain.CalendarDaysRange(from, to, a.location())
	return a.Reports.Summarize(cmd.Context(), app.SummaryRequest{Range: rng})
}

// rangeTitle labels a range of whole days, e.g. "Yesterday" or
// "Mar 1 to Today".
func rangeTitle(rng domain.DateRange, now time.Time) string {
	last := rng.End.AddDate(0, 0, -1)
	if !last.After(rng.Start) {
		return formatter.DayLabel(rng.Start, now)
	}
	return fmt.Sprintf("%s to %s", formatter.DayLabel(rng.Start, now), formatter.DayLabel(last, now))
}

package cli

import (
	"fmt"

	"github.com/alexanderramin/gktimer/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStartCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the timer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := a.Timer.Resume(ctx); err != nil {
				return err
			}
			session, err := a.Timer.Start(ctx)
			if err != nil {
				return err
			}
			start := session.StartTime.In(a.location())
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n",
				formatter.StyleGreen.Render("Started at "+formatter.ClockTime(start, a.Clock24h)),
				formatter.TruncID(session.ID))
			return nil
		},
	}
}

func newStopCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the running timer and record the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := a.Timer.Resume(ctx); err != nil {
				return err
			}
			session, err := a.Timer.Stop(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n",
				formatter.CompletedLine(session),
				formatter.Dim(formatter.ClockTime(session.StartTime.In(a.location()), a.Clock24h)+
					" to "+formatter.ClockTime(session.EndTime.In(a.location()), a.Clock24h)))
			return nil
		},
	}
}

func newStatusCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether the timer is running and for how long",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := a.Timer.Resume(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStatus(status, a.location(), a.Clock24h))
			return nil
		},
	}
}

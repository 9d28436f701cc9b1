package cli

import (
	"fmt"

	"github.com/alexanderramin/gktimer/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSessionCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage recorded sessions",
	}

	cmd.AddCommand(
		newSessionListCmd(a),
		newSessionRemoveCmd(a),
	)

	return cmd
}

func newSessionListCmd(a *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent sessions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := a.Sessions.ListRecent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if len(sessions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sessions found.")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSessionList(sessions, a.now(), a.Clock24h))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Number of sessions to show")

	return cmd
}

func newSessionRemoveCmd(a *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a completed session",
		Long:  "Remove a completed session. ID may be the short prefix shown by `session list`.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			session, err := a.Sessions.Resolve(ctx, args[0])
			if err != nil {
				return err
			}

			if !yes {
				if !a.interactive() {
					return fmt.Errorf("refusing to remove session %s without --yes when not attached to a terminal", session.ID)
				}
				title := fmt.Sprintf("Remove the %s session from %s?",
					formatter.FormatMinutes(session.Minutes()),
					formatter.DayLabel(session.StartTime, a.now()))
				ok, err := a.confirm(title)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			removed, err := a.Sessions.Delete(ctx, session.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed session %s\n", removed.ID)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

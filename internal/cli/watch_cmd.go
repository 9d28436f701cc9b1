package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newWatchCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Show a live timer that can be started and stopped from the keyboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := a.Timer.Resume(ctx); err != nil {
				return err
			}

			p := tea.NewProgram(newWatchModel(ctx, a),
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err := p.Run()
			return err
		},
	}
}

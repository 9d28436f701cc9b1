package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import sessions from other sources",
	}
	cmd.AddCommand(newImportLegacyCmd(a))
	return cmd
}

func newImportLegacyCmd(a *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "legacy",
		Short: "Import the desktop timer's work_sessions.json",
		Long: `Import sessions from the JSON file kept by the desktop timer.
Sessions already present are skipped, so the import can be re-run safely.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := file
			if path == "" {
				path = a.LegacyFile
			}
			if path == "" {
				return fmt.Errorf("no legacy file given; pass --file")
			}

			res, err := a.Import.ImportLegacy(cmd.Context(), path)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d sessions from %s (%d already present)\n", res.Imported, path, res.Skipped)
			if res.Open > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "A running session was imported; `gktimer stop` will finish it.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path to work_sessions.json (defaults to GKTIMER_LEGACY_FILE)")

	return cmd
}

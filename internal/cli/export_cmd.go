package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/gktimer/internal/app"
	"github.com/alexanderramin/gktimer/internal/domain"
	"github.com/alexanderramin/gktimer/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(a *App) *cobra.Command {
	var flags rangeFlags
	var format, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export sessions over a range of days as json, yaml or csv",
		Example: `  gktimer export --from 2026-03-01 --to 2026-03-31 --format csv --output march.csv
  gktimer export --day today --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(format)
			if !domain.ValidExportFormats[format] {
				return fmt.Errorf("invalid --format %q (use json, yaml or csv)", format)
			}

			resp, err := summarizeFlags(cmd, a, &flags)
			if err != nil {
				return err
			}

			if output == "" {
				return export.Write(cmd.OutOrStdout(), domain.ExportFormat(format), resp)
			}
			if err := writeExportFile(output, domain.ExportFormat(format), resp); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d sessions to %s\n", resp.TotalSessions, output)
			return nil
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().StringVar(&format, "format", string(domain.ExportJSON), "Output format: json, yaml or csv")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")
	return cmd
}

// writeExportFile writes resp to path. A failed write or close removes the
// file so no partial export is left behind.
func writeExportFile(path string, format domain.ExportFormat, resp *app.SummaryResponse) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := export.Write(f, format, resp); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("closing output file: %w", err)
	}
	return nil
}

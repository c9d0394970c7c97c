package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/footadmin/footadmin/internal/export"
	"github.com/footadmin/footadmin/internal/logging"
	"github.com/footadmin/footadmin/internal/paths"
	"github.com/footadmin/footadmin/pkg/types"
)

func (a *app) newExportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Copy every table into a SQLite database",
		Long: `Export writes the live records of every table into a fresh SQLite
database, replacing any previous export. The stores never read it back.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.attach()
			if err != nil {
				return err
			}
			defer b.Detach()

			path := out
			if path == "" {
				path = paths.ExportFile(b.Config().DataDir)
			}
			log := logging.WithFields(cmd.Context(), "path", path)

			snap, err := b.Snapshot(cmd.Context())
			if err != nil {
				return err
			}
			counts, err := export.Write(cmd.Context(), path, export.Datasets(snap)...)
			if err != nil {
				return &systemError{err}
			}
			log.Info("export finished", "tables", len(counts))

			if a.flags.jsonMode {
				return a.print(cmd, map[string]any{"path": path, "rows": counts})
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Exported to", path)
			for _, name := range types.StandardTableNames {
				fmt.Fprintf(w, "  %-11s %d\n", name, counts[name])
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "database path (default: <data-dir>/"+paths.ExportName+")")
	return cmd
}

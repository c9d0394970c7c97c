package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize footadmin configuration and data directory",
		Long: `Create the configuration directory with a default config.yaml and the
data directory, then report how many records each table holds. Table files
are created by the first write.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.attach()
			if err != nil {
				return err
			}
			defer b.Detach()

			snap, err := b.Snapshot(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "footadmin initialized successfully")
			fmt.Fprintln(out, "  config:", a.configDir)
			fmt.Fprintln(out, "  data:  ", b.Config().DataDir)
			fmt.Fprintf(out, "  records: %d teams, %d players, %d matches, %d tournaments, %d squad entries\n",
				len(snap.Teams), len(snap.Players), len(snap.Matches), len(snap.Tournaments), len(snap.Squads))
			return nil
		},
	}
}

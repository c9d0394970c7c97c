package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/footadmin/footadmin/pkg/types"
)

func (a *app) newTablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List the tables and how many records each holds",
		Args:  cobra.NoArgs,
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
			counts := map[string]int{
				types.TeamsTable:       len(snap.Teams),
				types.PlayersTable:     len(snap.Players),
				types.MatchesTable:     len(snap.Matches),
				types.TournamentsTable: len(snap.Tournaments),
				types.SquadsTable:      len(snap.Squads),
			}
			if a.flags.jsonMode {
				return a.print(cmd, counts)
			}
			w := cmd.OutOrStdout()
			for _, name := range types.StandardTableNames {
				fmt.Fprintf(w, "%-11s %d\n", name, counts[name])
			}
			return nil
		},
	}
}

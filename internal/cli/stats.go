package cli

import (
	"github.com/spf13/cobra"

	"github.com/footadmin/footadmin/internal/football"
	"github.com/footadmin/footadmin/internal/stats"
)

type statsFlags struct {
	team   string
	torneo string
	year   int
}

func (a *app) newStatsCmd() *cobra.Command {
	var f statsFlags
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Match and scoring statistics for the focus team",
		Long: `Statistics are computed for the focus team: --team, else focus_team
from config.yaml.`,
	}
	cmd.PersistentFlags().StringVar(&f.team, "team", "", "focus team (default: focus_team from config)")
	cmd.PersistentFlags().StringVar(&f.torneo, "torneo", "", "only matches of this tournament id")
	cmd.PersistentFlags().IntVar(&f.year, "year", 0, "only matches (or players) of this year")

	cmd.AddCommand(
		a.statsSubcommand("matches", "Matches played per tournament", func(s *football.Snapshot, flt stats.Filter) any {
			return stats.MatchesByTournament(s.Matches, s.Tournaments, flt)
		}, &f),
		a.statsSubcommand("goals", "Goals scored and conceded per tournament", func(s *football.Snapshot, flt stats.Filter) any {
			return stats.GoalsByTournament(s.Matches, s.Tournaments, flt)
		}, &f),
		a.statsSubcommand("summary", "Results, goals and cards over all matches", func(s *football.Snapshot, flt stats.Filter) any {
			return stats.Summarize(s.Matches, flt)
		}, &f),
		a.statsSubcommand("scorers", "Players ranked by goals", func(s *football.Snapshot, flt stats.Filter) any {
			return stats.TopScorers(s.Players, int64(flt.Year))
		}, &f),
	)
	return cmd
}

func (a *app) statsSubcommand(use, short string, compute func(*football.Snapshot, stats.Filter) any, f *statsFlags) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
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
			team := f.team
			if team == "" {
				team = b.Config().FocusTeam
			}
			return a.print(cmd, compute(snap, stats.Filter{Team: team, TorneoID: f.torneo, Year: f.year}))
		},
	}
}

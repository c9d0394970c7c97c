package cli

import (
	"github.com/spf13/cobra"

	"github.com/footadmin/footadmin/pkg/types"
)

func (a *app) newToggleActiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle-active <player-id>",
		Short: "Flip whether a player is active",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.attach()
			if err != nil {
				return err
			}
			defer b.Detach()

			p, err := b.TogglePlayerActive(types.ID(args[0]))
			if err = warn(cmd, err); err != nil {
				return err
			}
			return a.print(cmd, p)
		},
	}
}

func (a *app) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <player-id>",
		Short: "Show whether a player is active",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.attach()
			if err != nil {
				return err
			}
			defer b.Detach()

			st, err := b.PlayerStatus(types.ID(args[0]))
			if err != nil {
				return err
			}
			return a.print(cmd, st)
		},
	}
}

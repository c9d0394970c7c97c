package cli

import (
	"github.com/spf13/cobra"

	"github.com/footadmin/footadmin/pkg/types"
)

func (a *app) newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <table>",
		Short: "Show the change history of a table, oldest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.attach()
			if err != nil {
				return err
			}
			defer b.Detach()

			t, err := table(b, args[0])
			if err != nil {
				return err
			}
			entries, err := t.History()
			if err != nil {
				return err
			}
			return a.print(cmd, entries)
		},
	}
}

func (a *app) newTrashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trash <table>",
		Short: "Show the deleted records of a table, oldest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.attach()
			if err != nil {
				return err
			}
			defer b.Detach()

			t, err := table(b, args[0])
			if err != nil {
				return err
			}
			entries, err := t.Trash()
			if err != nil {
				return err
			}
			return a.print(cmd, entries)
		},
	}
}

func (a *app) newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <table> <id>",
		Short: "Re-create the most recently deleted record with the given ID",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.attach()
			if err != nil {
				return err
			}
			defer b.Detach()

			if _, err := table(b, args[0]); err != nil {
				return err
			}
			rec, err := b.Restore(args[0], types.ID(args[1]))
			if err = warn(cmd, err); err != nil {
				return err
			}
			return a.print(cmd, rec)
		},
	}
}

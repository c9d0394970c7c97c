package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/footadmin/footadmin/pkg/types"
)

func (a *app) newListCmd() *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "list <table> [column=value...]",
		Short: "List records with optional filters",
		Long: `List returns the records of a table. Filters are column=value pairs and
are ANDed together; values are compared after coercion to the column type.

Valid table names: ` + validTableNamesStr,
		Example: `  footadmin list equipos
  footadmin list jugadores activo=true
  footadmin list partidos --year 2024`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseFilter(args[1:])
			if err != nil {
				return err
			}
			b, err := a.attach()
			if err != nil {
				return err
			}
			defer b.Detach()

			name := args[0]
			yearSet := cmd.Flags().Changed("year")
			if yearSet {
				switch name {
				case types.PlayersTable, types.SquadsTable:
					filter["anio"] = strconv.Itoa(year)
				case types.MatchesTable:
				default:
					return fmt.Errorf("--year is not supported for table %q", name)
				}
			}

			t, err := table(b, name)
			if err != nil {
				return err
			}
			records, err := t.Fetch(filter)
			if err != nil {
				return err
			}
			if yearSet && name == types.MatchesTable {
				kept := records[:0]
				for _, r := range records {
					if r.(*types.Match).Fecha.Year() == year {
						kept = append(kept, r)
					}
				}
				records = kept
			}
			return a.print(cmd, records)
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "only records of this year (jugadores, plantillas, partidos)")
	return cmd
}

func (a *app) newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <table> <id>",
		Short: "Get a record by ID",
		Args:  cobra.ExactArgs(2),
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
			rec, err := t.Get(types.ID(args[1]))
			if err != nil {
				return err
			}
			return a.print(cmd, rec)
		},
	}
}

func (a *app) newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <table> <json|->",
		Short: "Create a record from JSON",
		Long: `Create inserts a record given as a JSON object ("-" reads it from stdin).
When the object has no "id", the next identity is allocated.`,
		Example: `  footadmin create equipos '{"nombre":"Peru","pais":"Peru"}'`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := newRecord(args[0])
			if err != nil {
				return err
			}
			data, err := readInput(cmd, args[1])
			if err != nil {
				return err
			}
			if err := decodeRecord(data, rec); err != nil {
				return err
			}

			b, err := a.attach()
			if err != nil {
				return err
			}
			defer b.Detach()

			t, err := table(b, args[0])
			if err != nil {
				return err
			}
			created, err := t.Create(rec)
			if err = warn(cmd, err); err != nil {
				return err
			}
			return a.print(cmd, created)
		},
	}
}

func (a *app) newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <table> <id> <json|->",
		Short: "Update fields of a record from JSON",
		Long: `Update applies a JSON object ("-" reads it from stdin) onto the stored
record. Fields absent from the object keep their stored values; the id never
changes.`,
		Example: `  footadmin update jugadores 7 '{"Goles":12}'`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[2])
			if err != nil {
				return err
			}

			b, err := a.attach()
			if err != nil {
				return err
			}
			defer b.Detach()

			t, err := table(b, args[0])
			if err != nil {
				return err
			}
			id := types.ID(args[1])
			rec, err := t.Get(id)
			if err != nil {
				return err
			}
			if err := decodeRecord(data, rec); err != nil {
				return err
			}
			updated, err := t.Update(id, rec)
			if err = warn(cmd, err); err != nil {
				return err
			}
			return a.print(cmd, updated)
		},
	}
}

func (a *app) newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <table> <id>",
		Short: "Delete a record and move it to the trash",
		Args:  cobra.ExactArgs(2),
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
			if err = warn(cmd, t.Delete(types.ID(args[1]))); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s/%s\n", args[0], args[1])
			return nil
		},
	}
}

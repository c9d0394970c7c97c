// Package export writes a point-in-time copy of every table into a SQLite
// database for ad-hoc queries. The stores never read it back.
package export

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/footadmin/footadmin/internal/football"
	"github.com/footadmin/footadmin/internal/schema"
)

// Dataset is one table to export.
type Dataset struct {
	Schema *schema.Schema
	Rows   []schema.Values
}

// Datasets converts a backend snapshot into one Dataset per entity kind.
func Datasets(snap *football.Snapshot) []Dataset {
	return []Dataset{
		dataset(football.TeamCodec{}, snap.Teams),
		dataset(football.PlayerCodec{}, snap.Players),
		dataset(football.MatchCodec{}, snap.Matches),
		dataset(football.TournamentCodec{}, snap.Tournaments),
		dataset(football.SquadCodec{}, snap.Squads),
	}
}

type codec[T any] interface {
	Schema() *schema.Schema
	ToValues(T) schema.Values
}

func dataset[T any](c codec[T], recs []T) Dataset {
	rows := make([]schema.Values, len(recs))
	for i, r := range recs {
		rows[i] = c.ToValues(r)
	}
	return Dataset{Schema: c.Schema(), Rows: rows}
}

// Write replaces the database at path with the given datasets and returns
// the number of rows written per table.
func Write(ctx context.Context, path string, sets ...Dataset) (map[string]int, error) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("removing old export: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	counts := make(map[string]int, len(sets))
	for _, set := range sets {
		n, err := writeTable(ctx, tx, set)
		if err != nil {
			return nil, fmt.Errorf("exporting %s: %w", set.Schema.Name(), err)
		}
		counts[set.Schema.Name()] = n
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing export: %w", err)
	}
	return counts, nil
}

func writeTable(ctx context.Context, tx *sql.Tx, set Dataset) (int, error) {
	fields := set.Schema.Fields()
	if _, err := tx.ExecContext(ctx, createTableSQL(set.Schema.Name(), fields)); err != nil {
		return 0, err
	}

	cols := make([]string, len(fields))
	marks := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = quote(f.Name)
		marks[i] = "?"
	}
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quote(set.Schema.Name()), strings.Join(cols, ", "), strings.Join(marks, ", ")))
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, row := range set.Rows {
		args := make([]any, len(fields))
		for i, f := range fields {
			args[i] = sqlValue(row[f.Name])
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return 0, err
		}
	}
	return len(set.Rows), nil
}

func createTableSQL(name string, fields []schema.Field) string {
	defs := make([]string, len(fields))
	for i, f := range fields {
		def := quote(f.Name) + " " + sqlType(f.Type)
		if f.Identity {
			def += " PRIMARY KEY"
		}
		defs[i] = def
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", quote(name), strings.Join(defs, ", "))
}

func sqlType(t schema.FieldType) string {
	switch t {
	case schema.Integer, schema.Boolean:
		return "INTEGER"
	default:
		return "TEXT"
	}
}

func sqlValue(v schema.Value) any {
	if v.Null {
		return nil
	}
	switch v.Type {
	case schema.Integer:
		return v.Int
	case schema.Boolean:
		if v.Bool {
			return int64(1)
		}
		return int64(0)
	default:
		// Dates go in as YYYY-MM-DD so SQLite date functions work on them.
		return schema.Format(v)
	}
}

func quote(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/footadmin/footadmin/internal/football"
	"github.com/footadmin/footadmin/internal/paths"
	"github.com/footadmin/footadmin/pkg/types"
)

// validTableNamesStr is a comma-separated list of valid table names for error output.
var validTableNamesStr = strings.Join(types.StandardTableNames, ", ")

// attach resolves the data directory and attaches a backend to it. The
// caller must defer Detach.
func (a *app) attach() (*football.Backend, error) {
	dataDir, err := paths.ResolveDataDir(a.flags.dataDir, a.cfg.GetString(cfgKeyDataDir))
	if err != nil {
		return nil, &systemError{fmt.Errorf("resolve data dir: %w", err)}
	}
	cfg, err := storeConfig(a.cfg, dataDir)
	if err != nil {
		return nil, err
	}

	b := football.NewBackend(football.WithLogger(a.logger), football.WithMetrics(a.metrics))
	if err := b.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}
	return b, nil
}

// table returns the named table, naming the valid tables when it is unknown.
func table(b *football.Backend, name string) (types.Table, error) {
	t, err := b.GetTable(name)
	if errors.Is(err, types.ErrTableNotFound) {
		return nil, fmt.Errorf("unknown table %q (valid: %s)", name, validTableNamesStr)
	}
	return t, err
}

// print writes v as indented JSON with --json and as YAML otherwise.
func (a *app) print(cmd *cobra.Command, v any) error {
	out := cmd.OutOrStdout()
	if a.flags.jsonMode {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}
	return writeYAML(out, v)
}

// writeYAML renders v through its JSON form so field names and dates match
// the --json output.
func writeYAML(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return fmt.Errorf("marshal YAML: %w", err)
	}
	return enc.Close()
}

// warn prints an aux-write warning and clears it. Other errors pass through.
func warn(cmd *cobra.Command, err error) error {
	if types.IsWarning(err) {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning:", err)
		return nil
	}
	return err
}

// newRecord returns a pointer to the zero entity of the named table.
func newRecord(tableName string) (any, error) {
	switch tableName {
	case types.TeamsTable:
		return &types.Team{}, nil
	case types.PlayersTable:
		return &types.Player{}, nil
	case types.MatchesTable:
		return &types.Match{}, nil
	case types.TournamentsTable:
		return &types.Tournament{}, nil
	case types.SquadsTable:
		return &types.SquadEntry{}, nil
	default:
		return nil, fmt.Errorf("unknown table %q (valid: %s)", tableName, validTableNamesStr)
	}
}

// decodeRecord unmarshals JSON data onto the entity rec points to. Fields
// absent from data keep their current values.
func decodeRecord(data []byte, rec any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(rec); err != nil {
		return fmt.Errorf("%w: %v", types.ErrInvalidData, err)
	}
	return nil
}

// readInput returns arg, or stdin when arg is "-".
func readInput(cmd *cobra.Command, arg string) ([]byte, error) {
	if arg != "-" {
		return []byte(arg), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, &systemError{fmt.Errorf("read stdin: %w", err)}
	}
	return data, nil
}

// parseFilter turns column=value arguments into a Fetch filter.
func parseFilter(args []string) (map[string]string, error) {
	filter := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid filter %q (expected column=value)", arg)
		}
		filter[key] = value
	}
	return filter, nil
}

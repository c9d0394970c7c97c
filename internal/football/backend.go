// Package football wires the record stores of every entity kind under one
// data directory and adds the cross-entity rules that sit on top of them.
package football

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/footadmin/footadmin/internal/paths"
	"github.com/footadmin/footadmin/internal/store"
	"github.com/footadmin/footadmin/pkg/types"
)

// Option configures a Backend.
type Option func(*Backend)

// WithLogger sets the logger handed to every store.
func WithLogger(l *slog.Logger) Option { return func(b *Backend) { b.logger = l } }

// WithMetrics sets the metrics shared by every store.
func WithMetrics(m *store.Metrics) Option { return func(b *Backend) { b.metrics = m } }

// Backend owns the five entity stores of a data directory.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	logger   *slog.Logger
	metrics  *store.Metrics
	watcher  *store.Watcher

	teams       *store.Store[types.Team]
	players     *store.Store[types.Player]
	matches     *store.Store[types.Match]
	tournaments *store.Store[types.Tournament]
	squads      *store.Store[types.SquadEntry]
	tables      map[string]types.Table
}

// NewBackend creates a detached backend; call Attach to open a data
// directory.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	return b
}

// Attach validates config, creates DataDir if needed and opens the stores.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}
	config = config.WithDefaults()

	if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
		return &types.PersistenceError{Op: "mkdir", Path: config.DataDir, Err: err}
	}

	var watcher *store.Watcher
	if config.Watch {
		w, err := store.NewWatcher(b.logger)
		if err != nil {
			return fmt.Errorf("starting file watcher: %w", err)
		}
		watcher = w
	}

	opts := []store.Option{
		store.WithDelimiter(config.Delimiter),
		store.WithSkipPolicy(config.SkipPolicy),
		store.WithHistoryPolicy(config.HistoryPolicy),
		store.WithLogger(b.logger),
		store.WithMetrics(b.metrics),
		store.WithCacheTTL(config.CacheTTL),
	}
	if watcher != nil {
		opts = append(opts, store.WithWatcher(watcher))
	}

	err := b.open(config.DataDir, opts)
	if err != nil {
		if watcher != nil {
			watcher.Close()
		}
		return err
	}

	b.config = config
	b.watcher = watcher
	b.attached = true
	b.logger.Debug("backend attached", "data_dir", config.DataDir)
	return nil
}

func (b *Backend) open(dir string, opts []store.Option) error {
	files := func(name string) (string, []store.Option) {
		return paths.TableFile(dir, name), append(slices.Clip(opts),
			store.WithHistoryPath(paths.HistoryFile(dir, name)),
			store.WithTrashPath(paths.TrashFile(dir, name)),
		)
	}
	var err error
	if b.teams, err = openStore[types.Team](files, types.TeamsTable, TeamCodec{}); err != nil {
		return err
	}
	if b.players, err = openStore[types.Player](files, types.PlayersTable, PlayerCodec{}); err != nil {
		return err
	}
	if b.matches, err = openStore[types.Match](files, types.MatchesTable, MatchCodec{}); err != nil {
		return err
	}
	if b.tournaments, err = openStore[types.Tournament](files, types.TournamentsTable, TournamentCodec{}); err != nil {
		return err
	}
	if b.squads, err = openStore[types.SquadEntry](files, types.SquadsTable, SquadCodec{}); err != nil {
		return err
	}
	b.tables = map[string]types.Table{
		types.TeamsTable:       b.teams.Table(types.TeamsTable),
		types.PlayersTable:     b.players.Table(types.PlayersTable),
		types.MatchesTable:     b.matches.Table(types.MatchesTable),
		types.TournamentsTable: b.tournaments.Table(types.TournamentsTable),
		types.SquadsTable:      &squadTable{Table: b.squads.Table(types.SquadsTable), b: b},
	}
	return nil
}

func openStore[T any](files func(string) (string, []store.Option), name string, codec store.Codec[T]) (*store.Store[T], error) {
	path, opts := files(name)
	return store.New[T](path, codec, opts...)
}

// Detach stops the file watcher and releases the stores. Detaching a
// detached backend is a no-op.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.attached {
		return nil
	}
	var err error
	if b.watcher != nil {
		err = b.watcher.Close()
		b.watcher = nil
	}
	b.attached = false
	b.tables = nil
	b.teams, b.players, b.matches, b.tournaments, b.squads = nil, nil, nil, nil, nil
	return err
}

// Config returns the effective configuration of an attached backend.
func (b *Backend) Config() types.Config {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.config
}

// GetTable returns the untyped table registered under name.
// Returns ErrTableNotFound if the name is not recognized.
// Returns ErrBackendDetached if the backend is not attached.
func (b *Backend) GetTable(name string) (types.Table, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return nil, types.ErrBackendDetached
	}
	t, ok := b.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrTableNotFound, name)
	}
	return t, nil
}

// Teams returns the team store.
func (b *Backend) Teams() (*store.Store[types.Team], error) {
	return attachedStore(b, func() *store.Store[types.Team] { return b.teams })
}

// Players returns the player store.
func (b *Backend) Players() (*store.Store[types.Player], error) {
	return attachedStore(b, func() *store.Store[types.Player] { return b.players })
}

// Matches returns the match store.
func (b *Backend) Matches() (*store.Store[types.Match], error) {
	return attachedStore(b, func() *store.Store[types.Match] { return b.matches })
}

// Tournaments returns the tournament store.
func (b *Backend) Tournaments() (*store.Store[types.Tournament], error) {
	return attachedStore(b, func() *store.Store[types.Tournament] { return b.tournaments })
}

// Squads returns the squad store. Prefer CreateSquadEntry and
// UpdateSquadEntry, which check the team reference.
func (b *Backend) Squads() (*store.Store[types.SquadEntry], error) {
	return attachedStore(b, func() *store.Store[types.SquadEntry] { return b.squads })
}

func attachedStore[T any](b *Backend, get func() *store.Store[T]) (*store.Store[T], error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return nil, types.ErrBackendDetached
	}
	return get(), nil
}

// CreateSquadEntry creates e after checking that its team exists.
func (b *Backend) CreateSquadEntry(e types.SquadEntry) (types.SquadEntry, error) {
	squads, err := b.Squads()
	if err != nil {
		return types.SquadEntry{}, err
	}
	if err := b.requireTeam(e.EquipoID); err != nil {
		return types.SquadEntry{}, err
	}
	return squads.Create(e)
}

// UpdateSquadEntry updates the entry with the given id after checking that
// the new team exists.
func (b *Backend) UpdateSquadEntry(id types.ID, e types.SquadEntry) (types.SquadEntry, error) {
	squads, err := b.Squads()
	if err != nil {
		return types.SquadEntry{}, err
	}
	if err := b.requireTeam(e.EquipoID); err != nil {
		return types.SquadEntry{}, err
	}
	return squads.Update(id, e)
}

func (b *Backend) requireTeam(equipoID int64) error {
	teams, err := b.Teams()
	if err != nil {
		return err
	}
	_, err = teams.GetByID(types.ID(strconv.FormatInt(equipoID, 10)))
	return err
}

// PlayersByYear returns the players registered for year.
func (b *Backend) PlayersByYear(year int64) ([]types.Player, error) {
	players, err := b.Players()
	if err != nil {
		return nil, err
	}
	return players.Select(func(p types.Player) bool { return p.Anio == year })
}

// SquadsByYear returns the squad entries of year.
func (b *Backend) SquadsByYear(year int64) ([]types.SquadEntry, error) {
	squads, err := b.Squads()
	if err != nil {
		return nil, err
	}
	return squads.Select(func(s types.SquadEntry) bool { return s.Anio == year })
}

// MatchesByYear returns the matches played in year.
func (b *Backend) MatchesByYear(year int) ([]types.Match, error) {
	matches, err := b.Matches()
	if err != nil {
		return nil, err
	}
	return matches.Select(func(m types.Match) bool { return m.Fecha.Year() == year })
}

// TogglePlayerActive flips the activo flag of a player and returns the
// updated record.
func (b *Backend) TogglePlayerActive(id types.ID) (types.Player, error) {
	players, err := b.Players()
	if err != nil {
		return types.Player{}, err
	}
	return players.Modify(id, func(p types.Player) (types.Player, error) {
		p.Activo = !p.Activo
		return p, nil
	})
}

// PlayerStatus summarizes whether a player is active.
type PlayerStatus struct {
	ID     types.ID `json:"id"`
	Nombre string   `json:"nombre"`
	Activo bool     `json:"activo"`
	Estado string   `json:"estado"`
}

// PlayerStatus returns the activity status of a player.
func (b *Backend) PlayerStatus(id types.ID) (PlayerStatus, error) {
	players, err := b.Players()
	if err != nil {
		return PlayerStatus{}, err
	}
	p, err := players.GetByID(id)
	if err != nil {
		return PlayerStatus{}, err
	}
	return PlayerStatus{ID: p.ID, Nombre: p.Nombre, Activo: p.Activo, Estado: p.Status()}, nil
}

// Restore re-creates the latest trashed record with id in the named table.
// Restoring a squad entry whose team is gone fails with the team's
// NotFoundError.
func (b *Backend) Restore(name string, id types.ID) (any, error) {
	b.mu.RLock()
	attached := b.attached
	teams, players, matches, tournaments, squads := b.teams, b.players, b.matches, b.tournaments, b.squads
	b.mu.RUnlock()
	if !attached {
		return nil, types.ErrBackendDetached
	}

	switch name {
	case types.TeamsTable:
		return restore(teams, id)
	case types.PlayersTable:
		return restore(players, id)
	case types.MatchesTable:
		return restore(matches, id)
	case types.TournamentsTable:
		return restore(tournaments, id)
	case types.SquadsTable:
		entries, err := squads.Trash()
		if err != nil {
			return nil, err
		}
		for i := len(entries) - 1; i >= 0; i-- {
			if entries[i].Record.ID == id {
				if err := b.requireTeam(entries[i].Record.EquipoID); err != nil {
					return nil, err
				}
				break
			}
		}
		return restore(squads, id)
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrTableNotFound, name)
	}
}

func restore[T any](s *store.Store[T], id types.ID) (any, error) {
	rec, err := s.Restore(id)
	if err != nil && !types.IsWarning(err) {
		return nil, err
	}
	return &rec, err
}

// Snapshot is every live record of a data directory, loaded together.
type Snapshot struct {
	Teams       []types.Team
	Players     []types.Player
	Matches     []types.Match
	Tournaments []types.Tournament
	Squads      []types.SquadEntry
}

// Snapshot loads all five tables concurrently.
func (b *Backend) Snapshot(ctx context.Context) (*Snapshot, error) {
	b.mu.RLock()
	attached := b.attached
	teams, players, matches, tournaments, squads := b.teams, b.players, b.matches, b.tournaments, b.squads
	b.mu.RUnlock()
	if !attached {
		return nil, types.ErrBackendDetached
	}

	var snap Snapshot
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		snap.Teams, err = loadAll(ctx, teams)
		return err
	})
	g.Go(func() (err error) {
		snap.Players, err = loadAll(ctx, players)
		return err
	})
	g.Go(func() (err error) {
		snap.Matches, err = loadAll(ctx, matches)
		return err
	})
	g.Go(func() (err error) {
		snap.Tournaments, err = loadAll(ctx, tournaments)
		return err
	})
	g.Go(func() (err error) {
		snap.Squads, err = loadAll(ctx, squads)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}

func loadAll[T any](ctx context.Context, s *store.Store[T]) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.GetAll()
}

// squadTable routes untyped squad writes through the team check.
type squadTable struct {
	types.Table
	b *Backend
}

func (t *squadTable) Create(data any) (any, error) {
	e, err := squadEntryOf(data)
	if err != nil {
		return nil, err
	}
	if err := t.b.requireTeam(e.EquipoID); err != nil {
		return nil, err
	}
	return t.Table.Create(e)
}

func (t *squadTable) Update(id types.ID, data any) (any, error) {
	e, err := squadEntryOf(data)
	if err != nil {
		return nil, err
	}
	if err := t.b.requireTeam(e.EquipoID); err != nil {
		return nil, err
	}
	return t.Table.Update(id, e)
}

func squadEntryOf(data any) (types.SquadEntry, error) {
	switch v := data.(type) {
	case types.SquadEntry:
		return v, nil
	case *types.SquadEntry:
		if v != nil {
			return *v, nil
		}
	}
	return types.SquadEntry{}, fmt.Errorf("%w: expected squad entry, got %T", types.ErrInvalidData, data)
}

// Package store persists the records of one entity kind in a delimited text
// file and keeps an append-only history log and trash bin beside it.
//
// Every mutation rewrites the whole file through a temp file that is synced
// and renamed over the original. A Store serializes its own mutations; two
// Stores (or two processes) must not share a file.
package store

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/singleflight"

	"github.com/footadmin/footadmin/internal/schema"
	"github.com/footadmin/footadmin/pkg/types"
)

// Codec binds an entity struct to its schema.
type Codec[T any] interface {
	Schema() *schema.Schema
	ToValues(rec T) schema.Values
	FromValues(vals schema.Values) T
	ID(rec T) types.ID
	WithID(rec T, id types.ID) T
}

// HistoryEntry is a decoded history row.
type HistoryEntry[T any] struct {
	Action    string
	Timestamp time.Time
	Record    T
}

// TrashEntry is a decoded trash row.
type TrashEntry[T any] struct {
	DeletedAt time.Time
	Record    T
}

// Store is the record store of one entity kind.
type Store[T any] struct {
	mu      sync.RWMutex
	kind    string
	path    string
	codec   Codec[T]
	schema  *schema.Schema
	opts    options
	logger  *slog.Logger
	alloc   Allocator
	history *History
	trash   *Trash
	cache   *tableCache[T]
	loads   singleflight.Group
}

// New opens the store backed by path. The file need not exist; its
// directory must.
func New[T any](path string, codec Codec[T], opts ...Option) (*Store[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.skipPolicy {
	case types.SkipMalformedRows, types.Strict:
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrSkipPolicyUnknown, o.skipPolicy)
	}
	switch o.historyPolicy {
	case types.HistoryBestEffort, types.HistoryReport:
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrHistoryPolicyUnknown, o.historyPolicy)
	}

	sch := codec.Schema()
	s := &Store[T]{
		kind:   sch.Name(),
		path:   path,
		codec:  codec,
		schema: sch,
		opts:   o,
		logger: orDefault(o.logger).With("kind", sch.Name()),
		alloc:  o.alloc,
	}
	if s.alloc == nil {
		if sch.Identity().Type == schema.Integer {
			s.alloc = Sequential{}
		} else {
			s.alloc = UUIDv7{}
		}
	}
	if !o.noHistory {
		hp := o.historyPath
		if hp == "" {
			hp = sidePath(path, "_historial")
		}
		s.history = NewHistory(hp, o.delim, sch, s.logger)
	}
	if !o.noTrash {
		tp := o.trashPath
		if tp == "" {
			tp = sidePath(path, "_papelera")
		}
		s.trash = NewTrash(tp, o.delim, sch, s.logger)
	}
	if o.cacheTTL > 0 || o.watcher != nil {
		s.cache = newTableCache[T](o.cacheTTL, o.now)
	}
	if o.watcher != nil {
		if err := o.watcher.Watch(path, s.cache.invalidate); err != nil {
			return nil, fmt.Errorf("watching %s: %w", path, err)
		}
	}
	return s, nil
}

// sidePath turns "dir/equipos.csv" into "dir/equipos<suffix>.csv".
func sidePath(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ext
}

// Kind returns the entity kind name.
func (s *Store[T]) Kind() string { return s.kind }

// Path returns the backing file.
func (s *Store[T]) Path() string { return s.path }

// Schema returns the entity schema.
func (s *Store[T]) Schema() *schema.Schema { return s.schema }

// GetAll returns every live record in file order.
func (s *Store[T]) GetAll() (recs []T, err error) {
	defer func() { s.opts.metrics.observe(s.kind, "get_all", err) }()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.load()
}

// GetByID returns the record with the given identity. An identity that is
// not in canonical form for the kind is reported as not found.
func (s *Store[T]) GetByID(id types.ID) (rec T, err error) {
	defer func() { s.opts.metrics.observe(s.kind, "get", err) }()
	var zero T
	cid, ok := s.canonical(id)
	if !ok {
		return zero, s.notFound(id)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, err := s.load()
	if err != nil {
		return zero, err
	}
	i := s.index(rows, cid)
	if i < 0 {
		return zero, s.notFound(cid)
	}
	return rows[i], nil
}

// Fetch returns the records whose columns equal every filter value. Filter
// values are coerced like file cells, so "07" matches an integer 7 and
// "yes" matches true. Unknown columns are rejected.
func (s *Store[T]) Fetch(filter map[string]string) (recs []T, err error) {
	defer func() { s.opts.metrics.observe(s.kind, "fetch", err) }()
	want := make(map[string]string, len(filter))
	for col, raw := range filter {
		f, ok := s.schema.Field(col)
		if !ok {
			return nil, &types.ValidationError{Field: col, Message: "unknown column"}
		}
		v, err := schema.Parse(f, raw)
		if err != nil {
			return nil, err
		}
		want[col] = schema.Format(v)
	}
	return s.Select(func(rec T) bool {
		got := s.schema.Format(s.codec.ToValues(rec))
		for col, v := range want {
			if got[col] != v {
				return false
			}
		}
		return true
	})
}

// Select returns the records for which keep reports true.
func (s *Store[T]) Select(keep func(T) bool) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Create inserts rec. An empty identity is allocated; an explicit one must
// not be present. The returned record is what a later GetByID returns. A
// non-nil error alongside a record means the create was committed but an
// audit append failed (see types.IsWarning).
func (s *Store[T]) Create(rec T) (created T, err error) {
	defer func() { s.opts.metrics.observe(s.kind, "create", err) }()
	var zero T
	if err := s.check(rec); err != nil {
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.load()
	if err != nil {
		return zero, err
	}

	id := s.codec.ID(rec)
	if id == "" {
		id, err = s.alloc.Next(s.ids(rows))
		if err != nil {
			return zero, fmt.Errorf("allocating %s id: %w", s.kind, err)
		}
	} else {
		id, err = s.schema.CanonicalID(string(id))
		if err != nil {
			return zero, err
		}
		if s.index(rows, id) >= 0 {
			return zero, &types.DuplicateError{Kind: s.kind, ID: id}
		}
	}

	created, vals, err := s.normalize(s.codec.WithID(rec, id))
	if err != nil {
		return zero, err
	}
	if err := s.persist(append(rows, created)); err != nil {
		return zero, err
	}
	return created, s.recordHistory(types.ActionCreate, id, vals)
}

// Update replaces every field of the record with the given identity; the
// identity itself is kept. History records the values before the update.
func (s *Store[T]) Update(id types.ID, rec T) (updated T, err error) {
	defer func() { s.opts.metrics.observe(s.kind, "update", err) }()
	var zero T
	cid, ok := s.canonical(id)
	if !ok {
		return zero, s.notFound(id)
	}
	if err := s.check(rec); err != nil {
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replace(cid, func(T) (T, error) { return rec, nil })
}

// Modify updates the record with the given identity to whatever change
// returns for its stored value. The read and the write happen under one
// lock, so no other mutation of the table lands in between. An error from
// change aborts the update and is returned as is.
func (s *Store[T]) Modify(id types.ID, change func(T) (T, error)) (updated T, err error) {
	defer func() { s.opts.metrics.observe(s.kind, "update", err) }()
	var zero T
	cid, ok := s.canonical(id)
	if !ok {
		return zero, s.notFound(id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replace(cid, change)
}

// replace rewrites the record cid with change applied. Callers hold s.mu.
func (s *Store[T]) replace(cid types.ID, change func(T) (T, error)) (T, error) {
	var zero T
	rows, err := s.load()
	if err != nil {
		return zero, err
	}
	i := s.index(rows, cid)
	if i < 0 {
		return zero, s.notFound(cid)
	}

	before := s.codec.ToValues(rows[i])
	next, err := change(rows[i])
	if err != nil {
		return zero, err
	}
	if err := s.check(next); err != nil {
		return zero, err
	}
	updated, _, err := s.normalize(s.codec.WithID(next, cid))
	if err != nil {
		return zero, err
	}
	rows[i] = updated
	if err := s.persist(rows); err != nil {
		return zero, err
	}
	return updated, s.recordHistory(types.ActionUpdate, cid, before)
}

// Delete removes the record and retains it in the trash. Once the table is
// rewritten the delete stands: a failed trash append is returned as an
// *types.AuxWriteError, never rolled back.
func (s *Store[T]) Delete(id types.ID) (err error) {
	defer func() { s.opts.metrics.observe(s.kind, "delete", err) }()
	cid, ok := s.canonical(id)
	if !ok {
		return s.notFound(id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.load()
	if err != nil {
		return err
	}
	i := s.index(rows, cid)
	if i < 0 {
		return s.notFound(cid)
	}

	vals := s.codec.ToValues(rows[i])
	if err := s.persist(slices.Delete(rows, i, i+1)); err != nil {
		return err
	}

	var trashErr error
	if s.trash != nil {
		if err := s.trash.Append(vals, s.opts.now()); err != nil {
			trashErr = s.auxFailure(types.AuxTrash, cid, err)
		}
	}
	return errors.Join(trashErr, s.recordHistory(types.ActionDelete, cid, vals))
}

// Restore re-creates the most recently trashed record with the given
// identity. The trash entry is kept.
func (s *Store[T]) Restore(id types.ID) (restored T, err error) {
	defer func() { s.opts.metrics.observe(s.kind, "restore", err) }()
	var zero T
	cid, ok := s.canonical(id)
	if !ok || s.trash == nil {
		return zero, s.notFound(id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	entries, err := s.trash.Entries()
	if err != nil {
		return zero, err
	}
	var vals schema.Values
	for _, e := range entries {
		if s.codec.ID(s.codec.FromValues(e.Values)) == cid {
			vals = e.Values
		}
	}
	if vals == nil {
		return zero, s.notFound(cid)
	}

	rows, err := s.load()
	if err != nil {
		return zero, err
	}
	if s.index(rows, cid) >= 0 {
		return zero, &types.DuplicateError{Kind: s.kind, ID: cid}
	}
	restored = s.codec.FromValues(vals)
	if err := s.persist(append(rows, restored)); err != nil {
		return zero, err
	}
	return restored, s.recordHistory(types.ActionCreate, cid, vals)
}

// History returns the audit trail, oldest first.
func (s *Store[T]) History() ([]HistoryEntry[T], error) {
	if s.history == nil {
		return nil, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries, err := s.history.Entries()
	if err != nil {
		return nil, err
	}
	out := make([]HistoryEntry[T], 0, len(entries))
	for _, e := range entries {
		out = append(out, HistoryEntry[T]{
			Action:    e.Action,
			Timestamp: e.Timestamp,
			Record:    s.codec.FromValues(e.Values),
		})
	}
	return out, nil
}

// Trash returns the deleted records, oldest first.
func (s *Store[T]) Trash() ([]TrashEntry[T], error) {
	if s.trash == nil {
		return nil, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries, err := s.trash.Entries()
	if err != nil {
		return nil, err
	}
	out := make([]TrashEntry[T], 0, len(entries))
	for _, e := range entries {
		out = append(out, TrashEntry[T]{
			DeletedAt: e.DeletedAt,
			Record:    s.codec.FromValues(e.Values),
		})
	}
	return out, nil
}

// load returns a private copy of the live table. Callers hold s.mu.
func (s *Store[T]) load() ([]T, error) {
	var gen uint64
	if s.cache != nil {
		rows, g, ok := s.cache.get()
		if ok {
			return rows, nil
		}
		gen = g
	}
	v, err, _ := s.loads.Do("load", func() (any, error) {
		rows, err := s.readFile()
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			s.cache.put(gen, rows)
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(v.([]T)), nil
}

// readFile decodes the backing file, applying the skip policy to rows that
// fail coercion or repeat an earlier identity.
func (s *Store[T]) readFile() ([]T, error) {
	header, raws, err := readRows(s.path, s.opts.delim)
	if err != nil {
		return nil, &types.PersistenceError{Op: "read", Path: s.path, Err: err}
	}
	if unknown := s.schema.Unknown(header); len(unknown) > 0 {
		s.logger.Warn("ignoring unknown columns", "path", s.path, "columns", unknown)
	}

	out := make([]T, 0, len(raws))
	seen := make(map[types.ID]bool, len(raws))
	for _, raw := range raws {
		rec, err := s.decodeRow(header, raw)
		if err == nil {
			id := s.codec.ID(rec)
			if seen[id] {
				err = &types.ValidationError{
					Field:   s.schema.Identity().Name,
					Value:   string(id),
					Row:     raw.n,
					Message: "identity repeats an earlier row",
				}
			}
			seen[id] = true
		}
		if err != nil {
			if s.opts.skipPolicy == types.Strict {
				return nil, err
			}
			s.logger.Warn("skipping malformed row", "path", s.path, "row", raw.n, "error", err)
			s.opts.metrics.skipped(s.kind)
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *Store[T]) decodeRow(header []string, raw rawRow) (T, error) {
	var zero T
	if raw.err != nil {
		return zero, &types.ValidationError{Row: raw.n, Message: raw.err.Error()}
	}
	vals, err := s.schema.Decode(header, raw.cells)
	if err != nil {
		var verr *types.ValidationError
		if errors.As(err, &verr) {
			withRow := *verr
			withRow.Row = raw.n
			return zero, &withRow
		}
		return zero, err
	}
	return s.codec.FromValues(vals), nil
}

// persist rewrites the backing file with rows. Callers hold s.mu for writing.
func (s *Store[T]) persist(rows []T) error {
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = s.schema.Encode(s.codec.ToValues(r))
	}
	if err := writeRows(s.path, s.opts.delim, s.schema.Columns(), cells); err != nil {
		if s.cache != nil {
			s.cache.invalidate()
		}
		return &types.PersistenceError{Op: "write", Path: s.path, Err: err}
	}
	if s.cache != nil {
		s.cache.replace(rows)
	}
	return nil
}

// normalize passes rec through the on-disk encoding so the returned record
// equals what a later load produces.
func (s *Store[T]) normalize(rec T) (T, schema.Values, error) {
	var zero T
	vals, err := s.schema.Decode(s.schema.Columns(), s.schema.Encode(s.codec.ToValues(rec)))
	if err != nil {
		return zero, nil, err
	}
	return s.codec.FromValues(vals), vals, nil
}

func (s *Store[T]) recordHistory(action string, id types.ID, vals schema.Values) error {
	if s.history == nil {
		return nil
	}
	err := s.history.Append(action, vals, s.opts.now())
	if err == nil {
		return nil
	}
	aux := s.auxFailure(types.AuxHistory, id, err)
	if s.opts.historyPolicy == types.HistoryReport {
		return aux
	}
	return nil
}

func (s *Store[T]) auxFailure(target string, id types.ID, err error) error {
	s.logger.Warn("audit append failed", "target", target, "id", id, "error", err)
	s.opts.metrics.auxFailed(s.kind, target)
	return &types.AuxWriteError{Target: target, Kind: s.kind, ID: id, Err: err}
}

func (s *Store[T]) canonical(id types.ID) (types.ID, bool) {
	cid, err := s.schema.CanonicalID(string(id))
	return cid, err == nil
}

func (s *Store[T]) notFound(id types.ID) error {
	return &types.NotFoundError{Kind: s.kind, ID: id}
}

func (s *Store[T]) index(rows []T, id types.ID) int {
	return slices.IndexFunc(rows, func(r T) bool { return s.codec.ID(r) == id })
}

func (s *Store[T]) ids(rows []T) []types.ID {
	out := make([]types.ID, len(rows))
	for i, r := range rows {
		out[i] = s.codec.ID(r)
	}
	return out
}

var validate = newValidator()

// newValidator reports struct fields by their json names, which match the
// column names of each kind.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// check applies the record's validate tags.
func (s *Store[T]) check(rec T) error {
	err := validate.Struct(rec)
	if err == nil {
		return nil
	}
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		// Not a struct; nothing to check.
		return nil
	}
	var fields validator.ValidationErrors
	if errors.As(err, &fields) && len(fields) > 0 {
		fe := fields[0]
		return &types.ValidationError{
			Field:   fe.Field(),
			Value:   fmt.Sprint(fe.Value()),
			Message: constraintMessage(fe),
		}
	}
	return err
}

func constraintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return "fails " + fe.Tag() + " constraint"
	}
}

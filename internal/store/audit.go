package store

import (
	"errors"
	"log/slog"
	"time"

	"github.com/footadmin/footadmin/internal/schema"
	"github.com/footadmin/footadmin/pkg/types"
)

// TimestampLayout renders history and trash timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// History trailing columns.
const (
	ColAction    = "action"
	ColTimestamp = "timestamp"
	ColDeletedAt = "deleted_timestamp"
)

// auditLog is an append-only file whose rows are the entity's columns
// followed by extra trailing columns.
type auditLog struct {
	path   string
	delim  rune
	schema *schema.Schema
	extra  []string
	logger *slog.Logger
}

type auditRow struct {
	vals  schema.Values
	extra map[string]string
}

func (l *auditLog) header() []string {
	return append(l.schema.Columns(), l.extra...)
}

func (l *auditLog) append(vals schema.Values, extra map[string]string) error {
	row := l.schema.Format(vals)
	for _, col := range l.extra {
		row[col] = extra[col]
	}
	return appendRows(l.path, l.delim, l.header(), []map[string]string{row})
}

// rows decodes every entry. Rows that no longer coerce are logged and
// skipped: the log may predate the current schema.
func (l *auditLog) rows() ([]auditRow, error) {
	header, raws, err := readRows(l.path, l.delim)
	if err != nil {
		return nil, &types.PersistenceError{Op: "read", Path: l.path, Err: err}
	}
	pos := make(map[string]int, len(header))
	for i, col := range header {
		pos[col] = i
	}
	var out []auditRow
	for _, raw := range raws {
		if raw.err != nil {
			l.logger.Warn("skipping unreadable audit row", "path", l.path, "row", raw.n, "error", raw.err)
			continue
		}
		vals, err := l.schema.Decode(header, raw.cells)
		if err != nil {
			l.logger.Warn("skipping malformed audit row", "path", l.path, "row", raw.n, "error", err)
			continue
		}
		extra := make(map[string]string, len(l.extra))
		for _, col := range l.extra {
			if i, ok := pos[col]; ok && i < len(raw.cells) {
				extra[col] = raw.cells[i]
			}
		}
		out = append(out, auditRow{vals: vals, extra: extra})
	}
	return out, nil
}

// History is the append-only audit trail of one entity kind. It is never
// read by the store itself.
type History struct {
	log auditLog
}

// LogEntry is a decoded history row.
type LogEntry struct {
	Action    string
	Timestamp time.Time
	Values    schema.Values
}

// NewHistory returns the history log stored at path.
func NewHistory(path string, delim rune, s *schema.Schema, logger *slog.Logger) *History {
	return &History{log: auditLog{
		path:   path,
		delim:  delim,
		schema: s,
		extra:  []string{ColAction, ColTimestamp},
		logger: orDefault(logger),
	}}
}

// Path returns the backing file.
func (h *History) Path() string { return h.log.path }

// Append records one action.
func (h *History) Append(action string, vals schema.Values, at time.Time) error {
	switch action {
	case types.ActionCreate, types.ActionUpdate, types.ActionDelete:
	default:
		return errors.New("unknown history action " + action)
	}
	return h.log.append(vals, map[string]string{
		ColAction:    action,
		ColTimestamp: at.Format(TimestampLayout),
	})
}

// Entries returns the decoded log, oldest first.
func (h *History) Entries() ([]LogEntry, error) {
	rows, err := h.log.rows()
	if err != nil {
		return nil, err
	}
	out := make([]LogEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, LogEntry{
			Action:    r.extra[ColAction],
			Timestamp: parseTimestamp(r.extra[ColTimestamp]),
			Values:    r.vals,
		})
	}
	return out, nil
}

// Trash retains deleted records of one entity kind.
type Trash struct {
	log auditLog
}

// TrashedValues is a decoded trash row.
type TrashedValues struct {
	DeletedAt time.Time
	Values    schema.Values
}

// NewTrash returns the trash bin stored at path.
func NewTrash(path string, delim rune, s *schema.Schema, logger *slog.Logger) *Trash {
	return &Trash{log: auditLog{
		path:   path,
		delim:  delim,
		schema: s,
		extra:  []string{ColDeletedAt},
		logger: orDefault(logger),
	}}
}

// Path returns the backing file.
func (t *Trash) Path() string { return t.log.path }

// Append retains one deleted record.
func (t *Trash) Append(vals schema.Values, at time.Time) error {
	return t.log.append(vals, map[string]string{ColDeletedAt: at.Format(TimestampLayout)})
}

// Entries returns the decoded trash, oldest first.
func (t *Trash) Entries() ([]TrashedValues, error) {
	rows, err := t.log.rows()
	if err != nil {
		return nil, err
	}
	out := make([]TrashedValues, 0, len(rows))
	for _, r := range rows {
		out = append(out, TrashedValues{
			DeletedAt: parseTimestamp(r.extra[ColDeletedAt]),
			Values:    r.vals,
		})
	}
	return out, nil
}

// parseTimestamp reads a local timestamp; unparsable text yields zero time.
func parseTimestamp(s string) time.Time {
	t, err := time.ParseInLocation(TimestampLayout, s, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

func orDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}

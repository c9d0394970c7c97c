package store

import (
	"log/slog"
	"time"

	"github.com/footadmin/footadmin/pkg/types"
)

// Option configures a Store.
type Option func(*options)

type options struct {
	delim         rune
	skipPolicy    string
	historyPolicy string
	logger        *slog.Logger
	metrics       *Metrics
	alloc         Allocator
	cacheTTL      time.Duration
	watcher       *Watcher
	now           func() time.Time
	historyPath   string
	trashPath     string
	noHistory     bool
	noTrash       bool
}

func defaultOptions() options {
	return options{
		delim:         ',',
		skipPolicy:    types.SkipMalformedRows,
		historyPolicy: types.HistoryBestEffort,
		now:           time.Now,
	}
}

// WithDelimiter sets the field delimiter of every file the store touches.
func WithDelimiter(r rune) Option {
	return func(o *options) {
		if r != 0 {
			o.delim = r
		}
	}
}

// WithSkipPolicy sets how malformed rows are handled on load
// (types.SkipMalformedRows or types.Strict).
func WithSkipPolicy(policy string) Option {
	return func(o *options) {
		if policy != "" {
			o.skipPolicy = policy
		}
	}
}

// WithHistoryPolicy sets whether history append failures reach the caller
// (types.HistoryReport) or are only logged (types.HistoryBestEffort).
func WithHistoryPolicy(policy string) Option {
	return func(o *options) {
		if policy != "" {
			o.historyPolicy = policy
		}
	}
}

func WithLogger(l *slog.Logger) Option { return func(o *options) { o.logger = l } }

func WithMetrics(m *Metrics) Option { return func(o *options) { o.metrics = m } }

// WithAllocator overrides the identity allocator. The default is Sequential
// for integer identities and UUIDv7 for text identities.
func WithAllocator(a Allocator) Option { return func(o *options) { o.alloc = a } }

// WithCacheTTL keeps the decoded table in memory for ttl.
func WithCacheTTL(ttl time.Duration) Option { return func(o *options) { o.cacheTTL = ttl } }

// WithWatcher caches the decoded table until w reports that the backing
// file changed.
func WithWatcher(w *Watcher) Option { return func(o *options) { o.watcher = w } }

// WithClock sets the time source for history and trash timestamps.
func WithClock(now func() time.Time) Option { return func(o *options) { o.now = now } }

func WithHistoryPath(path string) Option { return func(o *options) { o.historyPath = path } }

func WithTrashPath(path string) Option { return func(o *options) { o.trashPath = path } }

// WithoutHistory disables the history log.
func WithoutHistory() Option { return func(o *options) { o.noHistory = true } }

// WithoutTrash disables the trash bin.
func WithoutTrash() Option { return func(o *options) { o.noTrash = true } }

package types

import (
	"errors"
	"time"
)

// Row skip policies applied when a backing file row cannot be coerced.
const (
	// SkipMalformedRows logs and drops rows that fail coercion so a partly
	// damaged file still loads.
	SkipMalformedRows = "skip"
	// Strict fails the whole load on the first malformed row.
	Strict = "strict"
)

// History write policies. A history failure never rolls back the mutation;
// the policy only decides whether the caller sees it.
const (
	// HistoryBestEffort logs the failure and returns no error.
	HistoryBestEffort = "best_effort"
	// HistoryReport returns an *AuxWriteError next to the successful result.
	HistoryReport = "report"
)

// DefaultFocusTeam is the team statistics are computed for when none is set.
const DefaultFocusTeam = "Colombia"

// Config holds the data directory and store behavior for Backend.Attach.
type Config struct {
	DataDir       string        `json:"data_dir" yaml:"data_dir"`
	Delimiter     rune          `json:"delimiter" yaml:"delimiter"`
	SkipPolicy    string        `json:"skip_policy" yaml:"skip_policy"`
	HistoryPolicy string        `json:"history_policy" yaml:"history_policy"`
	CacheTTL      time.Duration `json:"cache_ttl" yaml:"cache_ttl"`
	Watch         bool          `json:"watch" yaml:"watch"`
	FocusTeam     string        `json:"focus_team" yaml:"focus_team"`
}

// Config validation errors.
var (
	ErrDataDirEmpty         = errors.New("data directory must not be empty")
	ErrDelimiterInvalid     = errors.New("invalid delimiter")
	ErrSkipPolicyUnknown    = errors.New("unknown skip policy")
	ErrHistoryPolicyUnknown = errors.New("unknown history policy")
	ErrCacheTTLNegative     = errors.New("cache ttl must not be negative")
)

// Validate checks that the Config is well-formed. Zero values for the
// delimiter and policies are accepted and mean the defaults.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	switch c.Delimiter {
	case 0, ',', ';', '\t', '|':
	default:
		return ErrDelimiterInvalid
	}
	switch c.SkipPolicy {
	case "", SkipMalformedRows, Strict:
	default:
		return ErrSkipPolicyUnknown
	}
	switch c.HistoryPolicy {
	case "", HistoryBestEffort, HistoryReport:
	default:
		return ErrHistoryPolicyUnknown
	}
	if c.CacheTTL < 0 {
		return ErrCacheTTLNegative
	}
	return nil
}

// WithDefaults returns a copy of c with zero-valued fields filled in.
func (c Config) WithDefaults() Config {
	if c.Delimiter == 0 {
		c.Delimiter = ','
	}
	if c.SkipPolicy == "" {
		c.SkipPolicy = SkipMalformedRows
	}
	if c.HistoryPolicy == "" {
		c.HistoryPolicy = HistoryBestEffort
	}
	if c.FocusTeam == "" {
		c.FocusTeam = DefaultFocusTeam
	}
	return c
}

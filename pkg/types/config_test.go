package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty data dir returns ErrDataDirEmpty",
			config:  Config{},
			wantErr: ErrDataDirEmpty,
		},
		{
			name:    "unsupported delimiter returns ErrDelimiterInvalid",
			config:  Config{DataDir: "/tmp/data", Delimiter: 'x'},
			wantErr: ErrDelimiterInvalid,
		},
		{
			name:    "unknown skip policy returns ErrSkipPolicyUnknown",
			config:  Config{DataDir: "/tmp/data", SkipPolicy: "lenient"},
			wantErr: ErrSkipPolicyUnknown,
		},
		{
			name:    "unknown history policy returns ErrHistoryPolicyUnknown",
			config:  Config{DataDir: "/tmp/data", HistoryPolicy: "never"},
			wantErr: ErrHistoryPolicyUnknown,
		},
		{
			name:    "negative ttl returns ErrCacheTTLNegative",
			config:  Config{DataDir: "/tmp/data", CacheTTL: -time.Second},
			wantErr: ErrCacheTTLNegative,
		},
		{
			name:   "zero values are valid",
			config: Config{DataDir: "/tmp/data"},
		},
		{
			name: "explicit values are valid",
			config: Config{
				DataDir:       "/tmp/data",
				Delimiter:     ';',
				SkipPolicy:    Strict,
				HistoryPolicy: HistoryReport,
				CacheTTL:      time.Second,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConfigWithDefaults(t *testing.T) {
	c := Config{DataDir: "/tmp/data"}.WithDefaults()
	assert.Equal(t, ',', c.Delimiter)
	assert.Equal(t, SkipMalformedRows, c.SkipPolicy)
	assert.Equal(t, HistoryBestEffort, c.HistoryPolicy)
	assert.Equal(t, DefaultFocusTeam, c.FocusTeam)

	kept := Config{DataDir: "/tmp/data", Delimiter: ';', SkipPolicy: Strict}.WithDefaults()
	assert.Equal(t, ';', kept.Delimiter)
	assert.Equal(t, Strict, kept.SkipPolicy)
}

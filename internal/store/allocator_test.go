package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/footadmin/footadmin/pkg/types"
)

func TestSequentialNext(t *testing.T) {
	tests := []struct {
		name     string
		existing []types.ID
		want     types.ID
	}{
		{"empty table starts at 1", nil, "1"},
		{"max plus one", []types.ID{"1", "7", "3"}, "8"},
		{"gaps are not reused", []types.ID{"10"}, "11"},
		{"non-integer ids ignored", []types.ID{"abc", "2"}, "3"},
		{"negative ids ignored by max", []types.ID{"-5"}, "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sequential{}.Next(tt.existing)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUUIDv7Next(t *testing.T) {
	a, err := UUIDv7{}.Next(nil)
	require.NoError(t, err)
	b, err := UUIDv7{}.Next([]types.ID{a})
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	parsed, err := uuid.Parse(string(a))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

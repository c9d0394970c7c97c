package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, time.July, 14)
	data, err := json.Marshal(struct {
		Fecha Date `json:"fecha"`
	}{d})
	require.NoError(t, err)
	assert.JSONEq(t, `{"fecha":"2024-07-14"}`, string(data))

	var got struct {
		Fecha Date `json:"fecha"`
	}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.True(t, d.Equal(got.Fecha.Time))
}

func TestDateUnmarshalRejects(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`20240714`), &d))
	assert.Error(t, json.Unmarshal([]byte(`"14/07/2024"`), &d))
}

func TestParseDateBoundary(t *testing.T) {
	d, err := ParseDate("0001-01-01")
	require.NoError(t, err)
	assert.Equal(t, "0001-01-01", d.String())

	_, err = ParseDate("2023-02-29")
	assert.Error(t, err)
}

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayerStatus(t *testing.T) {
	assert.Equal(t, PlayerActive, Player{Activo: true}.Status())
	assert.Equal(t, PlayerInactive, Player{}.Status())
}

func TestMatchInvolves(t *testing.T) {
	m := Match{EquipoLocal: "Colombia", EquipoVisitante: "Brasil"}
	assert.True(t, m.Involves("Colombia"))
	assert.True(t, m.Involves("Brasil"))
	assert.False(t, m.Involves("colombia"))
	assert.False(t, m.Involves("Peru"))
}

package store

import (
	"strconv"

	"github.com/footadmin/footadmin/internal/schema"
	"github.com/footadmin/footadmin/pkg/types"
)

// team is a reduced team record used by the store tests.
type team struct {
	ID      types.ID
	Nombre  string     `json:"nombre" validate:"required"`
	Pais    string     `json:"pais"`
	Enfr    int64      `json:"enfrentamientos" validate:"min=0"`
	Activo  bool       `json:"activo"`
	Fundado types.Date `json:"fundado"`
	Nota    *string    `json:"nota"`
}

var teamSchema = schema.MustNew("equipos",
	schema.Field{Name: "id", Type: schema.Integer, Identity: true},
	schema.Field{Name: "nombre", Type: schema.Text},
	schema.Field{Name: "pais", Type: schema.Text},
	schema.Field{Name: "enfrentamientos", Type: schema.Integer},
	schema.Field{Name: "activo", Type: schema.Boolean, Default: "true"},
	schema.Field{Name: "fundado", Type: schema.Date, Default: "1900-01-01"},
	schema.Field{Name: "nota", Type: schema.Text, Optional: true},
)

type teamCodec struct{}

func (teamCodec) Schema() *schema.Schema { return teamSchema }

func (teamCodec) ToValues(t team) schema.Values {
	id, _ := strconv.ParseInt(string(t.ID), 10, 64)
	return schema.Values{
		"id":              schema.IntValue(id),
		"nombre":          schema.TextValue(t.Nombre),
		"pais":            schema.TextValue(t.Pais),
		"enfrentamientos": schema.IntValue(t.Enfr),
		"activo":          schema.BoolValue(t.Activo),
		"fundado":         schema.DateValue(t.Fundado),
		"nota":            schema.OptionalText(t.Nota),
	}
}

func (teamCodec) FromValues(v schema.Values) team {
	return team{
		ID:      types.ID(strconv.FormatInt(v.Int("id"), 10)),
		Nombre:  v.Text("nombre"),
		Pais:    v.Text("pais"),
		Enfr:    v.Int("enfrentamientos"),
		Activo:  v.Bool("activo"),
		Fundado: v.Date("fundado"),
		Nota:    v.OptionalText("nota"),
	}
}

func (teamCodec) ID(t team) types.ID { return t.ID }

func (teamCodec) WithID(t team, id types.ID) team {
	t.ID = id
	return t
}

// match has a text identity so the UUID allocator is exercised.
type match struct {
	ID    types.ID
	Local string `json:"local" validate:"required"`
}

var matchSchema = schema.MustNew("partidos",
	schema.Field{Name: "id", Type: schema.Text, Identity: true},
	schema.Field{Name: "local", Type: schema.Text},
)

type matchCodec struct{}

func (matchCodec) Schema() *schema.Schema { return matchSchema }

func (matchCodec) ToValues(m match) schema.Values {
	return schema.Values{"id": schema.TextValue(string(m.ID)), "local": schema.TextValue(m.Local)}
}

func (matchCodec) FromValues(v schema.Values) match {
	return match{ID: types.ID(v.Text("id")), Local: v.Text("local")}
}

func (matchCodec) ID(m match) types.ID { return m.ID }

func (matchCodec) WithID(m match, id types.ID) match {
	m.ID = id
	return m
}

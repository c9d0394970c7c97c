package football

import (
	"strconv"

	"github.com/footadmin/footadmin/internal/schema"
	"github.com/footadmin/footadmin/pkg/types"
)

// Column schemas of each entity kind. Header names match the files the
// application has always written.
var (
	TeamSchema = schema.MustNew(types.TeamsTable,
		schema.Field{Name: "id", Type: schema.Integer, Identity: true},
		schema.Field{Name: "nombre", Type: schema.Text},
		schema.Field{Name: "pais", Type: schema.Text},
		schema.Field{Name: "enfrentamientos_con_colombia", Type: schema.Integer},
	)

	PlayerSchema = schema.MustNew(types.PlayersTable,
		schema.Field{Name: "id", Type: schema.Integer, Identity: true},
		schema.Field{Name: "Jugadores", Type: schema.Text},
		schema.Field{Name: "F_Nacim_Edad", Type: schema.Text},
		schema.Field{Name: "Club", Type: schema.Text},
		schema.Field{Name: "Altura", Type: schema.Text},
		schema.Field{Name: "Pie", Type: schema.Text},
		schema.Field{Name: "Partidos_con_la_seleccion", Type: schema.Integer},
		schema.Field{Name: "Goles", Type: schema.Integer},
		schema.Field{Name: "Numero_de_camisa", Type: schema.Integer},
		schema.Field{Name: "anio", Type: schema.Integer},
		schema.Field{Name: "posicion", Type: schema.Text},
		schema.Field{Name: "activo", Type: schema.Boolean},
		schema.Field{Name: "imagen", Type: schema.Text, Optional: true},
	)

	MatchSchema = schema.MustNew(types.MatchesTable,
		schema.Field{Name: "id", Type: schema.Text, Identity: true},
		schema.Field{Name: "fecha", Type: schema.Date},
		schema.Field{Name: "equipo_local", Type: schema.Text},
		schema.Field{Name: "equipo_visitante", Type: schema.Text},
		schema.Field{Name: "goles_local", Type: schema.Integer},
		schema.Field{Name: "goles_visitante", Type: schema.Integer},
		schema.Field{Name: "torneo_id", Type: schema.Text},
		schema.Field{Name: "eliminado", Type: schema.Text, Optional: true},
		schema.Field{Name: "tarjetas_amarillas_local", Type: schema.Integer},
		schema.Field{Name: "tarjetas_amarillas_visitante", Type: schema.Integer},
		schema.Field{Name: "tarjetas_rojas_local", Type: schema.Integer},
		schema.Field{Name: "tarjetas_rojas_visitante", Type: schema.Integer},
	)

	TournamentSchema = schema.MustNew(types.TournamentsTable,
		schema.Field{Name: "id", Type: schema.Integer, Identity: true},
		schema.Field{Name: "nombre", Type: schema.Text},
		schema.Field{Name: "anio", Type: schema.Integer},
		schema.Field{Name: "pais_anfitrion", Type: schema.Text, Optional: true},
		schema.Field{Name: "estado", Type: schema.Text},
		schema.Field{Name: "eliminado", Type: schema.Text, Optional: true},
	)

	SquadSchema = schema.MustNew(types.SquadsTable,
		schema.Field{Name: "id", Type: schema.Integer, Identity: true},
		schema.Field{Name: "equipo_id", Type: schema.Integer},
		schema.Field{Name: "nombre", Type: schema.Text, Optional: true},
		schema.Field{Name: "posicion", Type: schema.Text, Optional: true},
		schema.Field{Name: "anio", Type: schema.Integer},
		schema.Field{Name: "torneo_id", Type: schema.Integer, Optional: true},
		schema.Field{Name: "jugador_id", Type: schema.Integer, Optional: true},
	)
)

// intID reads an integer identity; anything else reads as 0, which no
// allocated record carries.
func intID(id types.ID) schema.Value {
	n, _ := strconv.ParseInt(string(id), 10, 64)
	return schema.IntValue(n)
}

func idOf(v schema.Values) types.ID {
	return types.ID(strconv.FormatInt(v.Int("id"), 10))
}

// TeamCodec maps types.Team to TeamSchema.
type TeamCodec struct{}

func (TeamCodec) Schema() *schema.Schema { return TeamSchema }

func (TeamCodec) ToValues(t types.Team) schema.Values {
	return schema.Values{
		"id":                           intID(t.ID),
		"nombre":                       schema.TextValue(t.Nombre),
		"pais":                         schema.TextValue(t.Pais),
		"enfrentamientos_con_colombia": schema.IntValue(t.Enfrentamientos),
	}
}

func (TeamCodec) FromValues(v schema.Values) types.Team {
	return types.Team{
		ID:              idOf(v),
		Nombre:          v.Text("nombre"),
		Pais:            v.Text("pais"),
		Enfrentamientos: v.Int("enfrentamientos_con_colombia"),
	}
}

func (TeamCodec) ID(t types.Team) types.ID { return t.ID }

func (TeamCodec) WithID(t types.Team, id types.ID) types.Team {
	t.ID = id
	return t
}

// PlayerCodec maps types.Player to PlayerSchema.
type PlayerCodec struct{}

func (PlayerCodec) Schema() *schema.Schema { return PlayerSchema }

func (PlayerCodec) ToValues(p types.Player) schema.Values {
	return schema.Values{
		"id":                        intID(p.ID),
		"Jugadores":                 schema.TextValue(p.Nombre),
		"F_Nacim_Edad":              schema.TextValue(p.FechaNacimientoEdad),
		"Club":                      schema.TextValue(p.Club),
		"Altura":                    schema.TextValue(p.Altura),
		"Pie":                       schema.TextValue(p.Pie),
		"Partidos_con_la_seleccion": schema.IntValue(p.PartidosSeleccion),
		"Goles":                     schema.IntValue(p.Goles),
		"Numero_de_camisa":          schema.IntValue(p.NumeroCamisa),
		"anio":                      schema.IntValue(p.Anio),
		"posicion":                  schema.TextValue(p.Posicion),
		"activo":                    schema.BoolValue(p.Activo),
		"imagen":                    schema.OptionalText(p.Imagen),
	}
}

func (PlayerCodec) FromValues(v schema.Values) types.Player {
	return types.Player{
		ID:                  idOf(v),
		Nombre:              v.Text("Jugadores"),
		FechaNacimientoEdad: v.Text("F_Nacim_Edad"),
		Club:                v.Text("Club"),
		Altura:              v.Text("Altura"),
		Pie:                 v.Text("Pie"),
		PartidosSeleccion:   v.Int("Partidos_con_la_seleccion"),
		Goles:               v.Int("Goles"),
		NumeroCamisa:        v.Int("Numero_de_camisa"),
		Anio:                v.Int("anio"),
		Posicion:            v.Text("posicion"),
		Activo:              v.Bool("activo"),
		Imagen:              v.OptionalText("imagen"),
	}
}

func (PlayerCodec) ID(p types.Player) types.ID { return p.ID }

func (PlayerCodec) WithID(p types.Player, id types.ID) types.Player {
	p.ID = id
	return p
}

// MatchCodec maps types.Match to MatchSchema. Match identities are opaque
// text.
type MatchCodec struct{}

func (MatchCodec) Schema() *schema.Schema { return MatchSchema }

func (MatchCodec) ToValues(m types.Match) schema.Values {
	return schema.Values{
		"id":                           schema.TextValue(string(m.ID)),
		"fecha":                        schema.DateValue(m.Fecha),
		"equipo_local":                 schema.TextValue(m.EquipoLocal),
		"equipo_visitante":             schema.TextValue(m.EquipoVisitante),
		"goles_local":                  schema.IntValue(m.GolesLocal),
		"goles_visitante":              schema.IntValue(m.GolesVisitante),
		"torneo_id":                    schema.TextValue(m.TorneoID),
		"eliminado":                    schema.OptionalText(m.Eliminado),
		"tarjetas_amarillas_local":     schema.IntValue(m.TarjetasAmarillasLocal),
		"tarjetas_amarillas_visitante": schema.IntValue(m.TarjetasAmarillasVisitante),
		"tarjetas_rojas_local":         schema.IntValue(m.TarjetasRojasLocal),
		"tarjetas_rojas_visitante":     schema.IntValue(m.TarjetasRojasVisitante),
	}
}

func (MatchCodec) FromValues(v schema.Values) types.Match {
	return types.Match{
		ID:                         types.ID(v.Text("id")),
		Fecha:                      v.Date("fecha"),
		EquipoLocal:                v.Text("equipo_local"),
		EquipoVisitante:            v.Text("equipo_visitante"),
		GolesLocal:                 v.Int("goles_local"),
		GolesVisitante:             v.Int("goles_visitante"),
		TorneoID:                   v.Text("torneo_id"),
		Eliminado:                  v.OptionalText("eliminado"),
		TarjetasAmarillasLocal:     v.Int("tarjetas_amarillas_local"),
		TarjetasAmarillasVisitante: v.Int("tarjetas_amarillas_visitante"),
		TarjetasRojasLocal:         v.Int("tarjetas_rojas_local"),
		TarjetasRojasVisitante:     v.Int("tarjetas_rojas_visitante"),
	}
}

func (MatchCodec) ID(m types.Match) types.ID { return m.ID }

func (MatchCodec) WithID(m types.Match, id types.ID) types.Match {
	m.ID = id
	return m
}

// TournamentCodec maps types.Tournament to TournamentSchema.
type TournamentCodec struct{}

func (TournamentCodec) Schema() *schema.Schema { return TournamentSchema }

func (TournamentCodec) ToValues(t types.Tournament) schema.Values {
	return schema.Values{
		"id":             intID(t.ID),
		"nombre":         schema.TextValue(t.Nombre),
		"anio":           schema.IntValue(t.Anio),
		"pais_anfitrion": schema.OptionalText(t.PaisAnfitrion),
		"estado":         schema.TextValue(t.Estado),
		"eliminado":      schema.OptionalText(t.Eliminado),
	}
}

func (TournamentCodec) FromValues(v schema.Values) types.Tournament {
	return types.Tournament{
		ID:            idOf(v),
		Nombre:        v.Text("nombre"),
		Anio:          v.Int("anio"),
		PaisAnfitrion: v.OptionalText("pais_anfitrion"),
		Estado:        v.Text("estado"),
		Eliminado:     v.OptionalText("eliminado"),
	}
}

func (TournamentCodec) ID(t types.Tournament) types.ID { return t.ID }

func (TournamentCodec) WithID(t types.Tournament, id types.ID) types.Tournament {
	t.ID = id
	return t
}

// SquadCodec maps types.SquadEntry to SquadSchema.
type SquadCodec struct{}

func (SquadCodec) Schema() *schema.Schema { return SquadSchema }

func (SquadCodec) ToValues(s types.SquadEntry) schema.Values {
	return schema.Values{
		"id":         intID(s.ID),
		"equipo_id":  schema.IntValue(s.EquipoID),
		"nombre":     schema.OptionalText(s.Nombre),
		"posicion":   schema.OptionalText(s.Posicion),
		"anio":       schema.IntValue(s.Anio),
		"torneo_id":  schema.OptionalInt(s.TorneoID),
		"jugador_id": schema.OptionalInt(s.JugadorID),
	}
}

func (SquadCodec) FromValues(v schema.Values) types.SquadEntry {
	return types.SquadEntry{
		ID:        idOf(v),
		EquipoID:  v.Int("equipo_id"),
		Nombre:    v.OptionalText("nombre"),
		Posicion:  v.OptionalText("posicion"),
		Anio:      v.Int("anio"),
		TorneoID:  v.OptionalInt("torneo_id"),
		JugadorID: v.OptionalInt("jugador_id"),
	}
}

func (SquadCodec) ID(s types.SquadEntry) types.ID { return s.ID }

func (SquadCodec) WithID(s types.SquadEntry, id types.ID) types.SquadEntry {
	s.ID = id
	return s
}

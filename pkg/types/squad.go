package types

// SquadEntry places a team (and optionally a player) in a tournament year.
// EquipoID must name an existing team; that check is made by the caller on
// top of two store lookups.
type SquadEntry struct {
	ID        ID      `json:"id"`
	EquipoID  int64   `json:"equipo_id" validate:"required"`
	Nombre    *string `json:"nombre,omitempty"`
	Posicion  *string `json:"posicion,omitempty"`
	Anio      int64   `json:"anio"`
	TorneoID  *int64  `json:"torneo_id,omitempty"`
	JugadorID *int64  `json:"jugador_id,omitempty"`
}

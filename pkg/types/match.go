package types

// Match is a single game between two teams within a tournament.
// TorneoID references Tournament.ID by its text form; the store does not
// enforce the reference.
type Match struct {
	ID                         ID      `json:"id"`
	Fecha                      Date    `json:"fecha" validate:"required"`
	EquipoLocal                string  `json:"equipo_local" validate:"required"`
	EquipoVisitante            string  `json:"equipo_visitante" validate:"required"`
	GolesLocal                 int64   `json:"goles_local" validate:"min=0"`
	GolesVisitante             int64   `json:"goles_visitante" validate:"min=0"`
	TorneoID                   string  `json:"torneo_id"`
	Eliminado                  *string `json:"eliminado,omitempty"`
	TarjetasAmarillasLocal     int64   `json:"tarjetas_amarillas_local" validate:"min=0"`
	TarjetasAmarillasVisitante int64   `json:"tarjetas_amarillas_visitante" validate:"min=0"`
	TarjetasRojasLocal         int64   `json:"tarjetas_rojas_local" validate:"min=0"`
	TarjetasRojasVisitante     int64   `json:"tarjetas_rojas_visitante" validate:"min=0"`
}

// Involves reports whether team played in the match.
func (m Match) Involves(team string) bool {
	return m.EquipoLocal == team || m.EquipoVisitante == team
}

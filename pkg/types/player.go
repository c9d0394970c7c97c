package types

// Player status labels returned by Status.
const (
	PlayerActive   = "activo"
	PlayerInactive = "inactivo"
)

// Player is a squad member of the national team.
type Player struct {
	ID                  ID      `json:"id"`
	Nombre              string  `json:"Jugadores" validate:"required"`
	FechaNacimientoEdad string  `json:"F_Nacim_Edad"`
	Club                string  `json:"Club"`
	Altura              string  `json:"Altura"`
	Pie                 string  `json:"Pie"`
	PartidosSeleccion   int64   `json:"Partidos_con_la_seleccion" validate:"min=0"`
	Goles               int64   `json:"Goles" validate:"min=0"`
	NumeroCamisa        int64   `json:"Numero_de_camisa" validate:"min=0,max=99"`
	Anio                int64   `json:"anio"`
	Posicion            string  `json:"posicion"`
	Activo              bool    `json:"activo"`
	Imagen              *string `json:"imagen,omitempty"`
}

// Status returns PlayerActive or PlayerInactive.
func (p Player) Status() string {
	if p.Activo {
		return PlayerActive
	}
	return PlayerInactive
}

package types

// Tournament is a competition edition, e.g. a Copa América year.
type Tournament struct {
	ID            ID      `json:"id"`
	Nombre        string  `json:"nombre" validate:"required"`
	Anio          int64   `json:"anio"`
	PaisAnfitrion *string `json:"pais_anfitrion,omitempty"`
	Estado        string  `json:"estado"`
	Eliminado     *string `json:"eliminado,omitempty"`
}

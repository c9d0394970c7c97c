package types

// Team is a national team the focus team has faced.
type Team struct {
	ID              ID     `json:"id"`
	Nombre          string `json:"nombre" validate:"required"`
	Pais            string `json:"pais"`
	Enfrentamientos int64  `json:"enfrentamientos_con_colombia" validate:"min=0"`
}

package types

// Standard table names for Backend.GetTable.
const (
	TeamsTable       = "equipos"
	PlayersTable     = "jugadores"
	MatchesTable     = "partidos"
	TournamentsTable = "torneos"
	SquadsTable      = "plantillas"
)

// StandardTableNames lists all standard table names for enumeration.
var StandardTableNames = []string{
	TeamsTable,
	PlayersTable,
	MatchesTable,
	TournamentsTable,
	SquadsTable,
}

// Package stats computes match statistics for one focus team from the
// live tables.
package stats

import (
	"cmp"
	"math"
	"slices"

	"github.com/footadmin/footadmin/pkg/types"
)

// UnknownTournament labels matches whose tournament id names no tournament.
const UnknownTournament = "Desconocido"

// Filter narrows the matches a statistic looks at. Zero fields match
// everything.
type Filter struct {
	Team     string // focus team; types.DefaultFocusTeam when empty
	TorneoID string
	Year     int
}

func (f Filter) team() string {
	if f.Team == "" {
		return types.DefaultFocusTeam
	}
	return f.Team
}

func (f Filter) keep(m types.Match) bool {
	if !m.Involves(f.team()) {
		return false
	}
	if f.TorneoID != "" && m.TorneoID != f.TorneoID {
		return false
	}
	if f.Year != 0 && m.Fecha.Year() != f.Year {
		return false
	}
	return true
}

// TournamentMatches is the number of focus-team matches in one tournament.
type TournamentMatches struct {
	Torneo   string `json:"torneo"`
	Partidos int    `json:"partidos"`
}

// TournamentGoals is the focus team's goal tally in one tournament.
type TournamentGoals struct {
	Torneo         string `json:"torneo"`
	GolesAnotados  int64  `json:"goles_anotados"`
	GolesRecibidos int64  `json:"goles_recibidos"`
}

// Summary aggregates every focus-team match that passes the filter.
type Summary struct {
	Equipo            string  `json:"equipo"`
	TotalPartidos     int     `json:"total_partidos"`
	GolesAnotados     int64   `json:"goles_anotados"`
	GolesRecibidos    int64   `json:"goles_recibidos"`
	TarjetasAmarillas int64   `json:"tarjetas_amarillas"`
	TarjetasRojas     int64   `json:"tarjetas_rojas"`
	Victorias         int     `json:"victorias"`
	Empates           int     `json:"empates"`
	Derrotas          int     `json:"derrotas"`
	PromedioGoles     float64 `json:"promedio_goles_por_partido"`
}

// PlayerGoals is one row of the scorer table.
type PlayerGoals struct {
	ID       types.ID `json:"id"`
	Nombre   string   `json:"nombre"`
	Goles    int64    `json:"goles"`
	Partidos int64    `json:"partidos"`
}

// side is the focus team's view of one match.
type side struct {
	scored, conceded, yellow, red int64
}

func sideOf(m types.Match, team string) side {
	if m.EquipoLocal == team {
		return side{m.GolesLocal, m.GolesVisitante, m.TarjetasAmarillasLocal, m.TarjetasRojasLocal}
	}
	return side{m.GolesVisitante, m.GolesLocal, m.TarjetasAmarillasVisitante, m.TarjetasRojasVisitante}
}

func tournamentNames(tournaments []types.Tournament) map[string]string {
	names := make(map[string]string, len(tournaments))
	for _, t := range tournaments {
		names[string(t.ID)] = t.Nombre
	}
	return names
}

func nameOf(names map[string]string, id string) string {
	if n, ok := names[id]; ok {
		return n
	}
	return UnknownTournament
}

// MatchesByTournament counts focus-team matches per tournament name, in
// order of first appearance.
func MatchesByTournament(matches []types.Match, tournaments []types.Tournament, f Filter) []TournamentMatches {
	names := tournamentNames(tournaments)
	var out []TournamentMatches
	index := make(map[string]int)
	for _, m := range matches {
		if !f.keep(m) {
			continue
		}
		name := nameOf(names, m.TorneoID)
		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, TournamentMatches{Torneo: name})
		}
		out[i].Partidos++
	}
	return out
}

// GoalsByTournament totals goals scored and conceded by the focus team per
// tournament name, in order of first appearance.
func GoalsByTournament(matches []types.Match, tournaments []types.Tournament, f Filter) []TournamentGoals {
	names := tournamentNames(tournaments)
	var out []TournamentGoals
	index := make(map[string]int)
	for _, m := range matches {
		if !f.keep(m) {
			continue
		}
		name := nameOf(names, m.TorneoID)
		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, TournamentGoals{Torneo: name})
		}
		s := sideOf(m, f.team())
		out[i].GolesAnotados += s.scored
		out[i].GolesRecibidos += s.conceded
	}
	return out
}

// Summarize computes the full record of the focus team.
func Summarize(matches []types.Match, f Filter) Summary {
	sum := Summary{Equipo: f.team()}
	for _, m := range matches {
		if !f.keep(m) {
			continue
		}
		s := sideOf(m, f.team())
		sum.TotalPartidos++
		sum.GolesAnotados += s.scored
		sum.GolesRecibidos += s.conceded
		sum.TarjetasAmarillas += s.yellow
		sum.TarjetasRojas += s.red
		switch {
		case s.scored > s.conceded:
			sum.Victorias++
		case s.scored == s.conceded:
			sum.Empates++
		default:
			sum.Derrotas++
		}
	}
	if sum.TotalPartidos > 0 {
		sum.PromedioGoles = round2(float64(sum.GolesAnotados) / float64(sum.TotalPartidos))
	}
	return sum
}

// TopScorers lists players by goals, most first; ties keep file order.
// year 0 includes every player.
func TopScorers(players []types.Player, year int64) []PlayerGoals {
	out := make([]PlayerGoals, 0, len(players))
	for _, p := range players {
		if year != 0 && p.Anio != year {
			continue
		}
		out = append(out, PlayerGoals{ID: p.ID, Nombre: p.Nombre, Goles: p.Goles, Partidos: p.PartidosSeleccion})
	}
	slices.SortStableFunc(out, func(a, b PlayerGoals) int { return cmp.Compare(b.Goles, a.Goles) })
	return out
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

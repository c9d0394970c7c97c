//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const demoDir = ".demo"

// demoRecords are created in order; squads reference team 1.
var demoRecords = [][2]string{
	{"equipos", `{"nombre":"Argentina","pais":"Argentina","enfrentamientos_con_colombia":42}`},
	{"equipos", `{"nombre":"Brasil","pais":"Brasil","enfrentamientos_con_colombia":38}`},
	{"torneos", `{"nombre":"Copa America","anio":2024,"estado":"finalizado"}`},
	{"partidos", `{"fecha":"2024-07-02","equipo_local":"Brasil","equipo_visitante":"Colombia","goles_local":1,"goles_visitante":1,"torneo_id":"1","tarjetas_amarillas_local":3,"tarjetas_amarillas_visitante":2}`},
	{"partidos", `{"fecha":"2024-07-14","equipo_local":"Argentina","equipo_visitante":"Colombia","goles_local":1,"torneo_id":"1","tarjetas_amarillas_visitante":4}`},
	{"jugadores", `{"Jugadores":"Luis Diaz","Club":"Liverpool","Goles":15,"Numero_de_camisa":7,"anio":2024,"posicion":"Delantero","activo":true}`},
	{"jugadores", `{"Jugadores":"James Rodriguez","Club":"Rayo Vallecano","Goles":28,"Numero_de_camisa":10,"anio":2024,"posicion":"Mediocampista","activo":true}`},
	{"plantillas", `{"equipo_id":1,"anio":2024,"nombre":"Lionel Messi","posicion":"Delantero"}`},
}

// Demo builds footadmin and loads sample records into .demo/.
func Demo() error {
	mg.Deps(Build)
	bin := filepath.Join(binaryDir, binaryName)
	base := []string{"--config-dir", filepath.Join(demoDir, "config"), "--data-dir", filepath.Join(demoDir, "data")}

	if err := sh.RunV(bin, append(base, "init")...); err != nil {
		return err
	}
	for _, r := range demoRecords {
		if err := sh.RunV(bin, append(base, "create", r[0], r[1])...); err != nil {
			return err
		}
	}
	return sh.RunV(bin, append(base, "stats", "summary")...)
}

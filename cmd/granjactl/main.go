// Command granjactl tareas de operación de la granja: migraciones, cuenta administrativa,
// reporte del hato y consulta de números de referencia.
package main

import (
	"os"
)

// Información de build inyectada con -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

package entity

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeLabel limpia espacios y aplica mayúscula inicial por palabra ("  boer  cruzado" -> "Boer Cruzado").
// Se usa para razas y categorías, de modo que los filtros y agrupaciones del tablero no se fragmenten.
func NormalizeLabel(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	return cases.Title(language.Und).String(s)
}

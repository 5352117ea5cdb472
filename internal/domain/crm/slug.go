// Package crm contiene lógica de dominio pura del CRM, sin dependencias de
// infraestructura.
package crm

import (
	"strings"
	"unicode"
)

// DeriveSlug normaliza el nombre visible de un campo personalizado a su clave
// de almacenamiento: minúsculas, secuencias de espacios en blanco colapsadas a
// un guion bajo y todo carácter fuera de [a-z0-9_] eliminado.
//
// Se calcula una sola vez al crear la definición y nunca se recalcula. Un
// resultado vacío (ej. un nombre compuesto solo de puntuación) significa que
// el nombre es inválido y el llamador debe rechazarlo.
func DeriveSlug(fieldName string) string {
	lower := strings.ToLower(fieldName)

	var b strings.Builder
	b.Grow(len(lower))
	inSpace := false
	for _, r := range lower {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteRune('_')
				inSpace = true
			}
			continue
		}
		inSpace = false
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

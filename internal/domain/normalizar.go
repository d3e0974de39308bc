package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var quitarAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizarNombre lleva un nombre de producto a forma canónica para comparar:
// minúsculas, sin acentos y sin espacios sobrantes. "Café  Molido" y
// "cafe molido" normalizan igual.
func NormalizarNombre(s string) string {
	limpio, _, err := transform.String(quitarAcentos, s)
	if err != nil {
		limpio = s
	}
	return strings.Join(strings.Fields(strings.ToLower(limpio)), " ")
}

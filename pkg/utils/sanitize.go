package utils

import (
	"html"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText remove tags HTML e caracteres não imprimíveis de um texto livre
func SanitizeText(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) || r == ' ' {
			return r
		}
		return -1
	}, s)

	// bluemonday escapa entidades; o texto é guardado sem escape
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

// GuardFormula evita que o texto seja interpretado como fórmula em planilhas
func GuardFormula(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return s
	}

	switch trimmed[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}

	return s
}

package services

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var searchNormalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeSearch folds a free-text query for accent-insensitive matching:
// trimmed, lowercased, diacritics stripped. "Zoë" and "zoe" match the same
// rows.
func NormalizeSearch(q string) string {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return ""
	}
	folded, _, err := transform.String(searchNormalizer, q)
	if err != nil {
		return q
	}
	return folded
}

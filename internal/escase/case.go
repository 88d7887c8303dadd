// Package escase provides Spanish-aware case and diacritic helpers shared
// by the syllabification front ends.
//
// Spanish letters have one-to-one Unicode case mappings, so lowercasing is
// plain unicode.ToLower. The interesting work is diacritic handling:
//   - ComposeNFC turns decomposed input ("i" + U+0301) into the precomposed
//     letters the classifier tables recognize.
//   - FoldAccents removes the acute accent and the diaeresis from vowels
//     while keeping ñ intact.
//
// All functions are safe for concurrent use.
package escase

import (
	"strings"
	"unicode"
)

// ToLower returns s with every rune lowercased.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// FoldVowel returns the unaccented lowercase form of a Spanish vowel.
// Other runes are only lowercased.
func FoldVowel(r rune) rune {
	switch unicode.ToLower(r) {
	case 'á':
		return 'a'
	case 'é':
		return 'e'
	case 'í':
		return 'i'
	case 'ó':
		return 'o'
	case 'ú', 'ü':
		return 'u'
	default:
		return unicode.ToLower(r)
	}
}

// FoldAccents lowercases s and strips acute accents and diaereses from
// vowels. "Pingüino" → "pinguino", "Ñandú" → "ñandu".
// Decomposed input is composed first, so "u" + U+0308 folds like "ü".
func FoldAccents(s string) string {
	s = ComposeNFC(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(FoldVowel(r))
	}
	return b.String()
}

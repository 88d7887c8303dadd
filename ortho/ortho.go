// Package ortho classifies Spanish letters by their orthographic role.
//
// The package provides three groups of functions:
//
//   - Rune predicates: IsVowel, IsWeakVowel, IsStrongVowel, IsAccentedVowel
//     and IsSoftCTrigger answer questions about a single rune.
//   - Vowel pairs: Classify decides whether two adjacent vowels form a
//     diphthong, a hiatus, or neither. CanFormHiatus and CanFormTriphthong
//     are the boolean views used during syllabification.
//   - Consonant pairs: IsConsonantGroup reports the inseparable blends and
//     digraphs that always start a syllable together.
//
// All lookups are case-insensitive except IsConsonantGroup, which matches
// the pair exactly as written. Diacritics are significant: "i" and "í"
// belong to different classes.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - "y" is never a vowel here. Its glide behaviour is decided by the
//     syllabifier from context; IsWeakVowel still reports it as weak so that
//     a nucleus ending in a glide classifies like one ending in "i".
//   - Only precomposed (NFC) accented letters are recognized. A base vowel
//     followed by a combining acute accent is two runes to this package.
package ortho

import "unicode"

// vowels contains every Spanish vowel letter (both cases).
var vowels = map[rune]bool{
	'a': true, 'e': true, 'i': true, 'o': true, 'u': true, 'ü': true,
	'A': true, 'E': true, 'I': true, 'O': true, 'U': true, 'Ü': true,
	'á': true, 'é': true, 'í': true, 'ó': true, 'ú': true,
	'Á': true, 'É': true, 'Í': true, 'Ó': true, 'Ú': true,
}

// weakVowels contains the glide-capable letters (both cases).
var weakVowels = map[rune]bool{
	'i': true, 'u': true, 'ü': true, 'y': true,
	'I': true, 'U': true, 'Ü': true, 'Y': true,
}

// strongVowels contains a, e, o with and without an acute accent.
var strongVowels = map[rune]bool{
	'a': true, 'e': true, 'o': true,
	'A': true, 'E': true, 'O': true,
	'á': true, 'é': true, 'ó': true,
	'Á': true, 'É': true, 'Ó': true,
}

// accentedVowels contains the vowels carrying a written acute accent.
var accentedVowels = map[rune]bool{
	'á': true, 'é': true, 'í': true, 'ó': true, 'ú': true,
	'Á': true, 'É': true, 'Í': true, 'Ó': true, 'Ú': true,
}

// softCTriggers contains the letters after which "c" is pronounced /θ/ or /s/.
var softCTriggers = map[rune]bool{
	'e': true, 'i': true, 'y': true, 'é': true, 'í': true,
	'E': true, 'I': true, 'Y': true, 'É': true, 'Í': true,
}

// IsVowel reports whether r is a Spanish vowel letter, with or without
// diacritics. The letter "y" is not a vowel.
func IsVowel(r rune) bool {
	return vowels[r]
}

// IsWeakVowel reports whether r is i, u, ü or y (any case).
// Accented í and ú are not weak: the accent makes them carry stress.
func IsWeakVowel(r rune) bool {
	return weakVowels[r]
}

// IsStrongVowel reports whether r is a, e or o, accented or not (any case).
func IsStrongVowel(r rune) bool {
	return strongVowels[r]
}

// IsAccentedVowel reports whether r carries a written acute accent.
func IsAccentedVowel(r rune) bool {
	return accentedVowels[r]
}

// IsSoftCTrigger reports whether r softens a preceding "c" (ce, ci).
func IsSoftCTrigger(r rune) bool {
	return softCTriggers[r]
}

// CanFormHiatus reports whether vowels a and b, in this order, belong to
// different syllables.
func CanFormHiatus(a, b rune) bool {
	return Classify(a, b).IsHiatus()
}

// CanFormTriphthong reports whether a, b, c form a weak-strong-weak
// sequence that stays within one syllable.
func CanFormTriphthong(a, b, c rune) bool {
	return IsWeakVowel(a) && IsStrongVowel(b) && IsWeakVowel(c)
}

// lower folds r to lowercase. All Spanish letters map one-to-one.
func lower(r rune) rune {
	return unicode.ToLower(r)
}

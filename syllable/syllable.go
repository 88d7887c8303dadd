// Package syllable splits Spanish words into syllables and derives stress,
// rhyme and vowel combinations from the written form alone.
//
// The package provides four groups of operations:
//
//   - Parse turns a word into a Word: its syllables (onset, nucleus, coda)
//     and the index of the stressed syllable. Syllables and Hyphenate are
//     string conveniences over Parse.
//   - Word.StressType, Word.Rhyme, Word.Tonic and Word.VowelCombos are
//     views computed on demand from a parsed word.
//   - Word.RhymesWith and Word.RhymesWithOptions test consonant rhyme
//     between two words; Word.AssonantRhymesWith tests vowel-only rhyme.
//   - LooseMatch compares vowel groups ignoring written accents.
//
// Segmentation is a single left-to-right pass. Vowel pairs are resolved
// with the ortho package; silent "h", the "qu"/"gu" digraphs and "y" as a
// glide are handled by dedicated rules.
//
// Parse does not normalize its input. Decomposed accents are two runes to
// the classifier; callers that accept arbitrary text should compose it to
// NFC first (the tokenizer and the command-line tools do this).
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Prefix boundaries are not morphological: "subrayar" splits as
//     su-bra-yar, not sub-ra-yar.
//   - "qu" and "gu" are only recognized while an onset is being built.
//     After a closed syllable the consonant moves on alone, so "porque"
//     ends in a syllable with onset "q" and nucleus "ue". The surface text
//     (por-que) is unaffected.
//   - Three-consonant clusters always split 1|2, so "transporte" yields
//     tran-spor-te rather than trans-por-te.
//   - A silent "h" after a vowel needs lookahead. Words that end before
//     it completes are ErrInvalidWord: a final "h" ("bah", "oh") and "h"
//     plus a vowel that does not start a hiatus ("ahi").
//   - Consonant blends are matched exactly as written: "PALABRA" splits as
//     PA-LAB-RA. Lowercase the word first when case does not matter.
package syllable

import (
	"strings"

	"github.com/az-ai-labs/silabas/ortho"
)

// Syllable is one syllable of a word.
// Onset+Nucleus+Coda is the exact surface text, with case and diacritics
// preserved.
type Syllable struct {
	Onset   string `json:"onset"`
	Nucleus string `json:"nucleus"`
	Coda    string `json:"coda"`
}

// String returns the surface text of the syllable.
func (s Syllable) String() string {
	return s.Onset + s.Nucleus + s.Coda
}

// HasAccent reports whether the nucleus carries a written accent.
func (s Syllable) HasAccent() bool {
	for _, r := range s.Nucleus {
		if ortho.IsAccentedVowel(r) {
			return true
		}
	}
	return false
}

// VowelsSinceStress returns the nucleus from its stressed vowel onwards.
// A single-rune nucleus is returned whole. Otherwise the stressed vowel is
// the first strong or accented one ("uái" → "ái"); a nucleus without one
// is stressed on its last rune ("ui" → "i").
func (s Syllable) VowelsSinceStress() string {
	n := s.Nucleus
	if n == "" {
		return ""
	}
	last := 0
	for i, r := range n {
		if ortho.IsStrongVowel(r) || ortho.IsAccentedVowel(r) {
			return n[i:]
		}
		last = i
	}
	return n[last:]
}

// join concatenates the surface text of syllables.
func join(syls []Syllable, sep string) string {
	var b strings.Builder
	for i, s := range syls {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(s.Onset)
		b.WriteString(s.Nucleus)
		b.WriteString(s.Coda)
	}
	return b.String()
}

package syllable

import (
	"fmt"

	"github.com/az-ai-labs/silabas/ortho"
)

// Hiatus is a pair of adjacent vowels split across two syllables.
// SyllableIndex is the syllable holding the first vowel.
type Hiatus struct {
	SyllableIndex int              `json:"syllable_index"`
	Composite     string           `json:"composite"`
	Kind          ortho.HiatusKind `json:"kind"`
}

// Diphthong is a two-vowel nucleus.
type Diphthong struct {
	SyllableIndex int                 `json:"syllable_index"`
	Composite     string              `json:"composite"`
	Kind          ortho.DiphthongKind `json:"kind"`
}

// Triphthong is a three-vowel nucleus.
type Triphthong struct {
	SyllableIndex int    `json:"syllable_index"`
	Composite     string `json:"composite"`
}

// VowelCombos lists the vowel combinations of a word in syllable order.
type VowelCombos struct {
	Hiatuses    []Hiatus     `json:"hiatuses"`
	Diphthongs  []Diphthong  `json:"diphthongs"`
	Triphthongs []Triphthong `json:"triphthongs"`
}

// VowelCombos scans the syllables for hiatuses, diphthongs and
// triphthongs. A silent "h" inside a nucleus is ignored when counting its
// vowels but kept in Composite ("buha" records the diphthong "uha").
//
// Returns an error wrapping ErrInconsistentNucleus if a two-vowel nucleus
// is not a diphthong.
func (w Word) VowelCombos() (VowelCombos, error) {
	var vc VowelCombos
	syls := w.Syllables
	for i, s := range syls {
		vowels := nucleusVowels(s.Nucleus)
		switch {
		case s.Coda == "" && len(vowels) == 1 && i+1 < len(syls) &&
			isSilentOnset(syls[i+1].Onset) && len(nucleusVowels(syls[i+1].Nucleus)) == 1:
			kind := ortho.Simple
			if s.HasAccent() || syls[i+1].HasAccent() {
				kind = ortho.Accentual
			}
			vc.Hiatuses = append(vc.Hiatuses, Hiatus{
				SyllableIndex: i,
				Composite:     s.Nucleus + syls[i+1].Nucleus,
				Kind:          kind,
			})
		case len(vowels) == 2:
			kind, ok := ortho.Classify(vowels[0], vowels[1]).Diphthong()
			if !ok {
				return VowelCombos{}, fmt.Errorf("%w: syllable %d of %q has nucleus %q",
					ErrInconsistentNucleus, i, w.Text, s.Nucleus)
			}
			vc.Diphthongs = append(vc.Diphthongs, Diphthong{
				SyllableIndex: i,
				Composite:     s.Nucleus,
				Kind:          kind,
			})
		case len(vowels) == 3:
			vc.Triphthongs = append(vc.Triphthongs, Triphthong{
				SyllableIndex: i,
				Composite:     s.Nucleus,
			})
		}
	}
	return vc, nil
}

// nucleusVowels returns the runes of a nucleus without any silent h.
func nucleusVowels(nucleus string) []rune {
	out := make([]rune, 0, len(nucleus))
	for _, r := range nucleus {
		if !isH(r) {
			out = append(out, r)
		}
	}
	return out
}

// isSilentOnset reports whether onset lets two vowels meet: empty or "h".
func isSilentOnset(onset string) bool {
	return onset == "" || onset == "h" || onset == "H"
}

package syllable

import (
	"strings"
	"unicode/utf8"

	"github.com/az-ai-labs/silabas/internal/escase"
	"github.com/az-ai-labs/silabas/ortho"
)

// RhymeOptions enables dialectal mergers when comparing onsets and codas.
type RhymeOptions struct {
	// Seseo makes s, z and soft c equivalent.
	Seseo bool `json:"seseo" yaml:"seseo"`
	// Yeismo makes y and ll equivalent.
	Yeismo bool `json:"yeismo" yaml:"yeismo"`
	// BEqualsV makes b and v equivalent.
	BEqualsV bool `json:"b_equals_v" yaml:"b_equals_v"`
}

// DefaultRhymeOptions returns the options used by Word.RhymesWith:
// yeísmo and b/v merger on, seseo off.
func DefaultRhymeOptions() RhymeOptions {
	return RhymeOptions{Yeismo: true, BEqualsV: true}
}

// RhymesWith reports whether w and other rhyme in consonance under
// DefaultRhymeOptions.
func (w Word) RhymesWith(other Word) bool {
	return w.RhymesWithOptions(other, DefaultRhymeOptions())
}

// RhymesWithOptions reports whether w and other rhyme in consonance: both
// must have the same number of syllables from the stressed one to the end,
// the stressed vowels must match ignoring accents, and every following
// syllable must match, with the mergers enabled in opts. The coda of the
// stressed syllable only counts when it is the last one, so "carta"
// rhymes with "casta" but "mar" does not rhyme with "mal".
//
// Nuclei, codas and onsets are compared ignoring case.
// Words without syllables never rhyme.
func (w Word) RhymesWithOptions(other Word, opts RhymeOptions) bool {
	a, b := w.tail(), other.tail()
	if len(a) == 0 || len(a) != len(b) {
		return false
	}
	if !LooseMatch(a[0].VowelsSinceStress(), b[0].VowelsSinceStress()) {
		return false
	}
	if len(a) == 1 && !equalCoda(a[0].Coda, b[0].Coda, opts.Seseo) {
		return false
	}
	for i := 1; i < len(a); i++ {
		if !strings.EqualFold(a[i].Nucleus, b[i].Nucleus) ||
			!equalCoda(a[i].Coda, b[i].Coda, opts.Seseo) ||
			!equalOnset(a[i], b[i], opts) {
			return false
		}
	}
	return true
}

// AssonantRhymesWith reports whether w and other rhyme in assonance: the
// same number of syllables from the stressed one to the end and the same
// vowels, ignoring accents, onsets and codas. The stressed syllable is
// compared from its stressed vowel on; every following syllable by its
// whole nucleus, so "gracia" (a-ia) does not assonate with "casa" (a-a).
func (w Word) AssonantRhymesWith(other Word) bool {
	a, b := w.tail(), other.tail()
	if len(a) == 0 || len(a) != len(b) {
		return false
	}
	if !LooseMatch(a[0].VowelsSinceStress(), b[0].VowelsSinceStress()) {
		return false
	}
	for i := 1; i < len(a); i++ {
		if !LooseMatch(a[i].Nucleus, b[i].Nucleus) {
			return false
		}
	}
	return true
}

// LooseMatch reports whether two vowel groups sound alike for rhyme:
// written accents are ignored, ü equals u, and a final glide y equals i
// ("ay" matches "ai"). Case is ignored. A diphthong never matches a single
// vowel: LooseMatch("ey", "é") is false.
func LooseMatch(a, b string) bool {
	if a == "" || b == "" {
		return a == b
	}
	return looseKey(a) == looseKey(b)
}

// looseKey folds a vowel group for LooseMatch.
func looseKey(s string) string {
	s = escase.FoldAccents(s)
	if n := len(s); n > 1 && s[n-1] == 'y' {
		s = s[:n-1] + "i"
	}
	return s
}

// AssonanceKey returns the folded vowels compared by AssonantRhymesWith,
// one part per syllable joined by "-": "palabra" → "a-a", "gracia" →
// "a-ia", "huir" → "i". Words with the same key assonate.
func (w Word) AssonanceKey() string {
	tail := w.tail()
	parts := make([]string, len(tail))
	for i, s := range tail {
		if i == 0 {
			parts[i] = looseKey(s.VowelsSinceStress())
		} else {
			parts[i] = looseKey(s.Nucleus)
		}
	}
	return strings.Join(parts, "-")
}

// equalCoda compares codas ignoring case; under seseo z counts as s.
func equalCoda(a, b string, seseo bool) bool {
	if strings.EqualFold(a, b) {
		return true
	}
	if !seseo {
		return false
	}
	return strings.EqualFold(zToS(a), zToS(b))
}

var seseoReplacer = strings.NewReplacer("z", "s", "Z", "S")

func zToS(s string) string {
	return seseoReplacer.Replace(s)
}

// equalOnset compares the onsets of two syllables with the mergers in
// opts. The nucleus matters for seseo: "c" only merges with s and z when
// it is soft (ce, ci).
func equalOnset(a, b Syllable, opts RhymeOptions) bool {
	oa, ob := strings.ToLower(a.Onset), strings.ToLower(b.Onset)
	if oa == ob {
		return true
	}
	if opts.Seseo {
		if isSibilant(oa, a.Nucleus) && isSibilant(ob, b.Nucleus) {
			return true
		}
	}
	if opts.Yeismo && isPair(oa, ob, "y", "ll") {
		return true
	}
	if opts.BEqualsV && isPair(oa, ob, "b", "v") {
		return true
	}
	return false
}

// isSibilant reports whether onset sounds /s/ under seseo: s, z, or a c
// softened by the first vowel of nucleus.
func isSibilant(onset, nucleus string) bool {
	switch onset {
	case "s", "z":
		return true
	case "c":
		r, _ := utf8.DecodeRuneInString(nucleus)
		return ortho.IsSoftCTrigger(r)
	}
	return false
}

func isPair(a, b, x, y string) bool {
	return (a == x && b == y) || (a == y && b == x)
}

// Package analysis runs the syllable analyzer over single words and over
// running text. It is shared by the command-line tool and the HTTP API.
package analysis

import (
	"github.com/az-ai-labs/silabas/internal/escase"
	"github.com/az-ai-labs/silabas/syllable"
	"github.com/az-ai-labs/silabas/tokenizer"
)

// Result is the analysis of one word. Start and End are byte offsets into
// the text the word came from; for Analyze they span the whole input.
// When Error is set only Word, Start and End are meaningful. CombosError
// reports a word that segmented but whose vowel combinations could not be
// derived (syllable.ErrInconsistentNucleus); Combos is nil then.
type Result struct {
	Word        string                `json:"word"`
	Start       int                   `json:"start"`
	End         int                   `json:"end"`
	Syllables   []string              `json:"syllables,omitempty"`
	StressIndex int                   `json:"stress_index"`
	StressType  syllable.StressType   `json:"stress_type"`
	Stress      string                `json:"stress,omitempty"`
	Rhyme       string                `json:"rhyme,omitempty"`
	Assonance   string                `json:"assonance,omitempty"`
	Combos      *syllable.VowelCombos `json:"combos,omitempty"`
	Error       string                `json:"error,omitempty"`
	CombosError string                `json:"combos_error,omitempty"`
}

// OK reports whether the word was analyzed without error.
func (r Result) OK() bool { return r.Error == "" && r.CombosError == "" }

// Analyze composes word to NFC and analyzes it.
func Analyze(word string) Result {
	r := analyze(escase.ComposeNFC(word))
	r.End = len(word)
	return r
}

// Text tokenizes s and analyzes every word. Hyphenated compounds are
// analyzed part by part. Offsets refer to s after NFC composition, which
// is also returned so callers can slice it.
func Text(s string) (composed string, results []Result) {
	composed = escase.ComposeNFC(s)
	for _, tok := range tokenizer.WordTokens(composed) {
		if tok.Type != tokenizer.Word {
			continue
		}
		for _, part := range tokenizer.SplitHyphenated(tok) {
			if part.Text == "" {
				continue
			}
			r := analyze(part.Text)
			r.Start, r.End = part.Start, part.End
			results = append(results, r)
		}
	}
	return composed, results
}

func analyze(word string) Result {
	r := Result{Word: word}
	w, err := syllable.Parse(word)
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.Syllables = w.Strings()
	r.StressIndex = w.StressIndex
	r.StressType = w.StressType()
	r.Stress = r.StressType.Spanish()
	r.Rhyme = w.Rhyme()
	r.Assonance = w.AssonanceKey()
	combos, err := w.VowelCombos()
	if err != nil {
		r.CombosError = err.Error()
		return r
	}
	r.Combos = &combos
	return r
}

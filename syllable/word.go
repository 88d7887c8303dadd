package syllable

import (
	"strings"
)

// Word is a parsed word. It is immutable after Parse; every view is
// computed from Syllables and StressIndex on demand.
type Word struct {
	Text        string     `json:"text"`
	Syllables   []Syllable `json:"syllables"`
	StressIndex int        `json:"stress_index"`
}

// Parse splits word into syllables and resolves its stress.
// The input should be a single word without spaces or punctuation.
// Empty input yields a Word with no syllables and a nil error.
//
// Returns an error wrapping ErrInvalidWord for invalid UTF-8, words longer
// than 256 bytes, or a "qu"/"gu" digraph that ends the word. The returned
// Word then carries only Text.
func Parse(word string) (Word, error) {
	syls, err := syllabify(word)
	if err != nil {
		return Word{Text: word}, err
	}
	return Word{
		Text:        word,
		Syllables:   syls,
		StressIndex: stressIndex(syls),
	}, nil
}

// Syllables returns the surface text of each syllable of word.
// Returns nil for empty or invalid input.
func Syllables(word string) []string {
	w, err := Parse(word)
	if err != nil {
		return nil
	}
	return w.Strings()
}

// Hyphenate returns word with sep between syllables: Hyphenate("palabra",
// "-") is "pa-la-bra". Invalid input is returned unchanged.
func Hyphenate(word, sep string) string {
	w, err := Parse(word)
	if err != nil {
		return word
	}
	return w.Join(sep)
}

// Len returns the number of syllables.
func (w Word) Len() int {
	return len(w.Syllables)
}

// Strings returns the surface text of each syllable.
func (w Word) Strings() []string {
	if len(w.Syllables) == 0 {
		return nil
	}
	out := make([]string, len(w.Syllables))
	for i, s := range w.Syllables {
		out[i] = s.String()
	}
	return out
}

// Join returns the syllables joined by sep.
func (w Word) Join(sep string) string {
	return join(w.Syllables, sep)
}

// String returns the syllables joined by "-".
func (w Word) String() string {
	return w.Join("-")
}

// StressType classifies the word by the position of its stressed syllable.
// Words with zero or one syllable are Oxytone.
func (w Word) StressType() StressType {
	return stressTypeOf(len(w.Syllables) - 1 - w.StressIndex)
}

// Tonic returns the stressed syllable, or the zero Syllable when the word
// has none.
func (w Word) Tonic() Syllable {
	if w.StressIndex < 0 || w.StressIndex >= len(w.Syllables) {
		return Syllable{}
	}
	return w.Syllables[w.StressIndex]
}

// tail returns the syllables from the stressed one to the end.
func (w Word) tail() []Syllable {
	if w.StressIndex < 0 || w.StressIndex >= len(w.Syllables) {
		return nil
	}
	return w.Syllables[w.StressIndex:]
}

// Rhyme returns the part of the word that must match for a consonant
// rhyme: the stressed syllable from its stressed vowel onwards, followed by
// every later syllable. "palabra" → "abra", "ciento" → "ento",
// "huir" → "ir". A word without syllables has an empty rhyme.
func (w Word) Rhyme() string {
	tail := w.tail()
	if len(tail) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(tail[0].VowelsSinceStress())
	b.WriteString(tail[0].Coda)
	b.WriteString(join(tail[1:], ""))
	return b.String()
}

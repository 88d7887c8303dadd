package rhymeindex

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/az-ai-labs/silabas/internal/escase"
	"github.com/az-ai-labs/silabas/syllable"
)

// Entry is one indexed word with the keys used to find its rhymes.
type Entry struct {
	ID           int64               `json:"id"`
	Word         string              `json:"word"`
	Syllables    []string            `json:"syllables"`
	StressIndex  int                 `json:"stress_index"`
	StressType   syllable.StressType `json:"stress_type"`
	TailLen      int                 `json:"tail_len"`
	Rhyme        string              `json:"rhyme"`
	AssonanceKey string              `json:"assonance_key"`
	RhymeKey     string              `json:"rhyme_key"`
	TonicVowel   string              `json:"tonic_vowel"`
	CreatedAt    time.Time           `json:"created_at"`
}

// Scored is an entry ranked by similarity to a query word.
type Scored struct {
	Entry
	Score float64 `json:"score"`
}

// Normalize returns the form under which word is stored: NFC, lowercase,
// surrounding space removed.
func Normalize(word string) string {
	return escase.ToLower(escase.ComposeNFC(strings.TrimSpace(word)))
}

// NewEntry analyzes word and builds its index entry. The word is
// normalized first.
func NewEntry(word string) (Entry, error) {
	w, err := syllable.Parse(Normalize(word))
	if err != nil {
		return Entry{}, err
	}
	return entryOf(w)
}

func entryOf(w syllable.Word) (Entry, error) {
	key := w.AssonanceKey()
	first, _, _ := strings.Cut(key, "-")
	tonic, size := utf8.DecodeRuneInString(first)
	if tonic == 'y' {
		tonic = 'i'
	}
	if size == 0 || !isPlainVowel(tonic) {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnindexable, w.Text)
	}
	return Entry{
		Word:         w.Text,
		Syllables:    w.Strings(),
		StressIndex:  w.StressIndex,
		StressType:   w.StressType(),
		TailLen:      w.Len() - w.StressIndex,
		Rhyme:        w.Rhyme(),
		AssonanceKey: key,
		RhymeKey:     escase.FoldAccents(w.Rhyme()),
		TonicVowel:   string(tonic),
	}, nil
}

func isPlainVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

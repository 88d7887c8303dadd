package syllable

import (
	"fmt"
	"unicode/utf8"

	"github.com/az-ai-labs/silabas/ortho"
)

// maxWordBytes bounds the input accepted by Parse.
const maxWordBytes = 256

// position is the part of the syllable currently being built.
type position uint8

const (
	posNone position = iota
	posOnset
	posNucleus
	posCoda
)

// segmenter holds the state of one syllabification pass.
type segmenter struct {
	runes   []rune
	pos     position
	onset   []rune
	nucleus []rune
	coda    []rune
	out     []Syllable
}

// syllabify splits word into syllables.
// Empty input returns nil. A single rune becomes the nucleus of a single
// syllable, whatever it is.
func syllabify(word string) ([]Syllable, error) {
	if word == "" {
		return nil, nil
	}
	if len(word) > maxWordBytes {
		return nil, fmt.Errorf("%w: %d bytes exceeds %d", ErrInvalidWord, len(word), maxWordBytes)
	}
	if !utf8.ValidString(word) {
		return nil, fmt.Errorf("%w: invalid UTF-8", ErrInvalidWord)
	}

	runes := []rune(word)
	if len(runes) == 1 {
		return []Syllable{{Nucleus: word}}, nil
	}

	s := &segmenter{runes: runes, out: make([]Syllable, 0, len(runes)/2+1)}
	for i := 0; i < len(runes); i++ {
		var err error
		if ortho.IsVowel(runes[i]) {
			s.vowel(i)
		} else if i, err = s.consonant(i); err != nil {
			return nil, fmt.Errorf("%w: %q ends before a lookahead completes", err, word)
		}
	}
	s.push()
	return s.out, nil
}

// push appends the syllable under construction to the output and resets it.
func (s *segmenter) push() {
	s.out = append(s.out, Syllable{
		Onset:   string(s.onset),
		Nucleus: string(s.nucleus),
		Coda:    string(s.coda),
	})
	s.onset, s.nucleus, s.coda = nil, nil, nil
}

// next returns the rune after i, or 0 at the end of the word.
func (s *segmenter) next(i int) rune {
	if i+1 < len(s.runes) {
		return s.runes[i+1]
	}
	return 0
}

func (s *segmenter) last(i int) bool {
	return i == len(s.runes)-1
}

// consonant handles the non-vowel at index i and returns the index of the
// last rune it consumed.
func (s *segmenter) consonant(i int) (int, error) {
	c := s.runes[i]
	switch s.pos {
	case posNone, posOnset:
		return s.onsetConsonant(i)
	case posNucleus:
		switch {
		case isY(c) && (s.last(i) || !ortho.IsVowel(s.next(i))):
			// glide: hoy, muy, Guaymas
			s.nucleus = append(s.nucleus, c)
		case isH(c):
			return s.silentH(i)
		default:
			s.coda = append(s.coda, c)
			s.pos = posCoda
		}
	case posCoda:
		switch {
		case isY(c) && len(s.coda) == 1 && !s.last(i) && ortho.IsVowel(s.next(i)):
			// Ab-yec-ción
			s.push()
			s.onset = append(s.onset, c)
			s.pos = posOnset
		case isY(c) && !s.last(i) && !ortho.IsVowel(s.next(i)):
			s.push()
			s.nucleus = append(s.nucleus, c)
			s.pos = posNucleus
		default:
			s.coda = append(s.coda, c)
		}
	}
	return i, nil
}

// onsetConsonant handles a consonant before any vowel of the syllable.
func (s *segmenter) onsetConsonant(i int) (int, error) {
	c := s.runes[i]
	switch {
	case isY(c) && len(s.onset) > 0:
		s.nucleus = append(s.nucleus, c)
		s.pos = posNucleus
		return i, nil
	case isQG(c) && isU(s.next(i)):
		if i+2 >= len(s.runes) {
			return i, ErrInvalidWord
		}
		if isFrontVowel(s.runes[i+2]) {
			// guitarra, queso: the u is silent and joins the onset
			s.onset = append(s.onset, c, s.runes[i+1])
			s.pos = posOnset
			return i + 1, nil
		}
	}
	s.onset = append(s.onset, c)
	s.pos = posOnset
	return i, nil
}

// silentH handles an "h" that follows a nucleus and returns the index of
// the last rune it consumed. The lookahead needs one rune after the "h",
// and two when the following vowel does not start a hiatus; running out
// of input first is ErrInvalidWord.
func (s *segmenter) silentH(i int) (int, error) {
	h := s.runes[i]
	if s.last(i) {
		return i, ErrInvalidWord
	}

	next := s.runes[i+1]
	if !ortho.IsVowel(next) {
		// ah-re
		s.coda = append(s.coda, h)
		s.push()
		s.onset = append(s.onset, next)
		s.pos = posOnset
		return i + 1, nil
	}

	if len(s.nucleus) == 1 && ortho.CanFormHiatus(s.nucleus[0], next) {
		// a-za-har, a-hí
		s.push()
		s.onset = append(s.onset, h)
		s.nucleus = append(s.nucleus, next)
		s.pos = posNucleus
		return i + 1, nil
	}

	if i+2 >= len(s.runes) {
		return i + 1, ErrInvalidWord
	}

	after := s.runes[i+2]
	if ortho.IsVowel(after) {
		if ortho.CanFormTriphthong(s.nucleus[0], next, after) {
			s.nucleus = append(s.nucleus, h, next, after)
		} else {
			// ma-ri-hua-na, A-huau-tle
			s.push()
			s.onset = append(s.onset, h)
			s.nucleus = append(s.nucleus, next, after)
		}
		s.pos = posNucleus
		return i + 2, nil
	}

	// a-buha-do
	s.nucleus = append(s.nucleus, h, next)
	s.coda = append(s.coda, after)
	s.pos = posCoda
	return i + 2, nil
}

// vowel handles the vowel at index i.
func (s *segmenter) vowel(i int) {
	c := s.runes[i]
	switch s.pos {
	case posNone, posOnset:
		s.nucleus = append(s.nucleus, c)
	case posNucleus:
		switch len(s.nucleus) {
		case 1:
			if ortho.CanFormHiatus(s.nucleus[0], c) {
				s.push()
			}
			s.nucleus = append(s.nucleus, c)
		case 2:
			first, second := s.nucleus[0], s.nucleus[1]
			if ortho.CanFormTriphthong(first, second, c) {
				s.nucleus = append(s.nucleus, c)
			} else if ortho.IsWeakVowel(second) {
				// ple-io-tro-pí-a: the glide starts the next nucleus
				s.nucleus = s.nucleus[:1]
				s.push()
				s.nucleus = append(s.nucleus, second, c)
			} else {
				s.push()
				s.nucleus = append(s.nucleus, c)
			}
		default:
			s.push()
			s.nucleus = append(s.nucleus, c)
		}
	case posCoda:
		s.splitCoda()
		s.nucleus = append(s.nucleus, c)
	}
	s.pos = posNucleus
}

// splitCoda closes the current syllable before a vowel, moving the tail of
// the coda into the onset of the next syllable.
func (s *segmenter) splitCoda() {
	coda := s.coda
	keep := 0
	switch n := len(coda); {
	case n == 2 && !ortho.IsConsonantGroup(string(coda)):
		keep = 1
	case n == 3:
		keep = 1
	case n >= 4:
		keep = n - 2
	}
	onset := append([]rune(nil), coda[keep:]...)
	s.coda = coda[:keep]
	s.push()
	s.onset = onset
}

func isY(r rune) bool { return r == 'y' || r == 'Y' }
func isH(r rune) bool { return r == 'h' || r == 'H' }
func isU(r rune) bool { return r == 'u' || r == 'U' }

func isQG(r rune) bool {
	return r == 'q' || r == 'Q' || r == 'g' || r == 'G'
}

// isFrontVowel reports whether r is e or i, accented or not.
func isFrontVowel(r rune) bool {
	switch r {
	case 'e', 'i', 'é', 'í', 'E', 'I', 'É', 'Í':
		return true
	}
	return false
}

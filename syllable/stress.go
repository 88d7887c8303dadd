package syllable

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// StressType classifies a word by the position of its stressed syllable,
// counted from the end.
type StressType uint8

const (
	Oxytone            StressType = iota // aguda: last syllable
	Paroxytone                           // llana: second to last
	Proparoxytone                        // esdrújula: third to last
	Superproparoxytone                   // sobresdrújula: fourth to last or earlier
)

var stressNames = [...]string{
	Oxytone:            "Oxytone",
	Paroxytone:         "Paroxytone",
	Proparoxytone:      "Proparoxytone",
	Superproparoxytone: "Superproparoxytone",
}

var stressSpanish = [...]string{
	Oxytone:            "aguda",
	Paroxytone:         "llana",
	Proparoxytone:      "esdrújula",
	Superproparoxytone: "sobresdrújula",
}

// String returns the English name of the stress type.
func (t StressType) String() string {
	if int(t) < len(stressNames) {
		return stressNames[t]
	}
	return fmt.Sprintf("StressType(%d)", int(t))
}

// Spanish returns the traditional Spanish grammar term: aguda, llana,
// esdrújula or sobresdrújula.
func (t StressType) Spanish() string {
	if int(t) < len(stressSpanish) {
		return stressSpanish[t]
	}
	return t.String()
}

// MarshalText encodes the stress type as its English name.
func (t StressType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a stress type from its English name.
func (t *StressType) UnmarshalText(b []byte) error {
	for i, name := range stressNames {
		if name == string(b) {
			*t = StressType(i)
			return nil
		}
	}
	return fmt.Errorf("syllable: unknown stress type %q", b)
}

// stressTypeOf maps the distance of the stressed syllable from the end of
// the word to its StressType.
func stressTypeOf(fromEnd int) StressType {
	switch {
	case fromEnd <= 0:
		return Oxytone
	case fromEnd == 1:
		return Paroxytone
	case fromEnd == 2:
		return Proparoxytone
	default:
		return Superproparoxytone
	}
}

// stressIndex returns the index of the stressed syllable.
//
// A written accent decides: the last syllable, then the second and third to
// last, then any earlier one scanning towards the start. Without an accent
// the regular rules apply: a final triphthong or a final consonant other
// than n or s stresses the last syllable, anything else the second to last.
func stressIndex(syls []Syllable) int {
	n := len(syls)
	if n <= 1 {
		return 0
	}

	for i := n - 1; i >= 0; i-- {
		if syls[i].HasAccent() {
			return i
		}
	}

	last := syls[n-1]
	if last.Coda == "" && utf8.RuneCountInString(last.Nucleus) == 3 {
		return n - 1
	}
	if last.Coda != "" && !strings.EqualFold(last.Coda, "n") && !strings.EqualFold(last.Coda, "s") {
		return n - 1
	}
	return n - 2
}

package ortho

import "fmt"

// Combo classifies a pair of adjacent vowels.
type Combo uint8

const (
	Other               Combo = iota // not a vowel pair
	RisingDiphthong                  // weak then strong: ie, ua, uó
	FallingDiphthong                 // strong then weak: ai, eu, óy
	HomogenousDiphthong              // weak then weak of another family: iu, ui
	SimpleHiatus                     // two syllables, no written accent involved
	AccentualHiatus                  // two syllables forced by a written accent
)

var comboNames = [...]string{
	Other:               "Other",
	RisingDiphthong:     "RisingDiphthong",
	FallingDiphthong:    "FallingDiphthong",
	HomogenousDiphthong: "HomogenousDiphthong",
	SimpleHiatus:        "SimpleHiatus",
	AccentualHiatus:     "AccentualHiatus",
}

// String returns the name of the combo.
func (c Combo) String() string {
	if int(c) < len(comboNames) {
		return comboNames[c]
	}
	return fmt.Sprintf("Combo(%d)", int(c))
}

// IsDiphthong reports whether c keeps both vowels in one nucleus.
func (c Combo) IsDiphthong() bool {
	return c == RisingDiphthong || c == FallingDiphthong || c == HomogenousDiphthong
}

// IsHiatus reports whether c splits the vowels into two syllables.
func (c Combo) IsHiatus() bool {
	return c == SimpleHiatus || c == AccentualHiatus
}

// Diphthong returns the diphthong subtype of c.
// ok is false when c is not a diphthong.
func (c Combo) Diphthong() (kind DiphthongKind, ok bool) {
	switch c {
	case RisingDiphthong:
		return Rising, true
	case FallingDiphthong:
		return Falling, true
	case HomogenousDiphthong:
		return Homogenous, true
	default:
		return 0, false
	}
}

// Hiatus returns the hiatus subtype of c.
// ok is false when c is not a hiatus.
func (c Combo) Hiatus() (kind HiatusKind, ok bool) {
	switch c {
	case SimpleHiatus:
		return Simple, true
	case AccentualHiatus:
		return Accentual, true
	default:
		return 0, false
	}
}

// DiphthongKind is the subtype of a diphthong.
type DiphthongKind uint8

const (
	Rising     DiphthongKind = iota // creciente
	Falling                         // decreciente
	Homogenous                      // homogéneo
)

// String returns the name of the diphthong kind.
func (k DiphthongKind) String() string {
	switch k {
	case Rising:
		return "Rising"
	case Falling:
		return "Falling"
	case Homogenous:
		return "Homogenous"
	default:
		return fmt.Sprintf("DiphthongKind(%d)", int(k))
	}
}

// MarshalText encodes the kind as its name.
func (k DiphthongKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind from its name.
func (k *DiphthongKind) UnmarshalText(b []byte) error {
	for kk := Rising; kk <= Homogenous; kk++ {
		if kk.String() == string(b) {
			*k = kk
			return nil
		}
	}
	return fmt.Errorf("ortho: unknown diphthong kind %q", b)
}

// HiatusKind is the subtype of a hiatus.
type HiatusKind uint8

const (
	Simple    HiatusKind = iota // simple
	Accentual                   // acentual
)

// String returns the name of the hiatus kind.
func (k HiatusKind) String() string {
	switch k {
	case Simple:
		return "Simple"
	case Accentual:
		return "Accentual"
	default:
		return fmt.Sprintf("HiatusKind(%d)", int(k))
	}
}

// MarshalText encodes the kind as its name.
func (k HiatusKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind from its name.
func (k *HiatusKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "Simple":
		*k = Simple
	case "Accentual":
		*k = Accentual
	default:
		return fmt.Errorf("ortho: unknown hiatus kind %q", b)
	}
	return nil
}

// vowelClass groups vowels that behave identically in Classify.
type vowelClass uint8

const (
	vcNone        vowelClass = iota
	vcStrong                 // a e o
	vcAccentedAE             // á é
	vcAccentedO              // ó
	vcWeakI                  // i, and y as a glide
	vcWeakU                  // u
	vcDiaeresis              // ü
	vcAccentedI              // í
	vcAccentedU              // ú
	numVowelClasses
)

// classOf maps r to its vowel class, ignoring case.
func classOf(r rune) vowelClass {
	switch lower(r) {
	case 'a', 'e', 'o':
		return vcStrong
	case 'á', 'é':
		return vcAccentedAE
	case 'ó':
		return vcAccentedO
	case 'i', 'y':
		return vcWeakI
	case 'u':
		return vcWeakU
	case 'ü':
		return vcDiaeresis
	case 'í':
		return vcAccentedI
	case 'ú':
		return vcAccentedU
	default:
		return vcNone
	}
}

// comboTable[first][second] is the classification of the pair.
// Rows and columns for vcNone stay Other.
var comboTable = [numVowelClasses][numVowelClasses]Combo{
	vcStrong: {
		vcStrong:     SimpleHiatus,
		vcAccentedAE: AccentualHiatus,
		vcAccentedO:  AccentualHiatus,
		vcWeakI:      FallingDiphthong,
		vcWeakU:      FallingDiphthong,
		vcDiaeresis:  SimpleHiatus,
		vcAccentedI:  AccentualHiatus,
		vcAccentedU:  AccentualHiatus,
	},
	vcAccentedAE: {
		vcStrong:     SimpleHiatus,
		vcAccentedAE: AccentualHiatus,
		vcAccentedO:  AccentualHiatus,
		vcWeakI:      FallingDiphthong,
		vcWeakU:      FallingDiphthong,
		vcDiaeresis:  SimpleHiatus,
		vcAccentedI:  AccentualHiatus,
		vcAccentedU:  AccentualHiatus,
	},
	vcAccentedO: {
		vcStrong:     AccentualHiatus,
		vcAccentedAE: AccentualHiatus,
		vcAccentedO:  AccentualHiatus,
		vcWeakI:      FallingDiphthong,
		vcWeakU:      FallingDiphthong,
		vcDiaeresis:  AccentualHiatus,
		vcAccentedI:  AccentualHiatus,
		vcAccentedU:  AccentualHiatus,
	},
	vcWeakI: {
		vcStrong:     RisingDiphthong,
		vcAccentedAE: RisingDiphthong,
		vcAccentedO:  RisingDiphthong,
		vcWeakI:      SimpleHiatus,
		vcWeakU:      HomogenousDiphthong,
		vcDiaeresis:  HomogenousDiphthong,
		vcAccentedI:  AccentualHiatus,
		vcAccentedU:  HomogenousDiphthong,
	},
	vcWeakU: {
		vcStrong:     RisingDiphthong,
		vcAccentedAE: RisingDiphthong,
		vcAccentedO:  RisingDiphthong,
		vcWeakI:      HomogenousDiphthong,
		vcWeakU:      SimpleHiatus,
		vcDiaeresis:  SimpleHiatus,
		vcAccentedI:  HomogenousDiphthong,
		vcAccentedU:  AccentualHiatus,
	},
	vcDiaeresis: {
		vcStrong:     RisingDiphthong,
		vcAccentedAE: RisingDiphthong,
		vcAccentedO:  RisingDiphthong,
		vcWeakI:      HomogenousDiphthong,
		vcWeakU:      SimpleHiatus,
		vcDiaeresis:  SimpleHiatus,
		vcAccentedI:  HomogenousDiphthong,
		vcAccentedU:  AccentualHiatus,
	},
	vcAccentedI: {
		vcStrong:     SimpleHiatus,
		vcAccentedAE: AccentualHiatus,
		vcAccentedO:  AccentualHiatus,
		vcWeakI:      SimpleHiatus,
		vcWeakU:      SimpleHiatus,
		vcDiaeresis:  SimpleHiatus,
		vcAccentedI:  AccentualHiatus,
		vcAccentedU:  AccentualHiatus,
	},
	vcAccentedU: {
		vcStrong:     SimpleHiatus,
		vcAccentedAE: AccentualHiatus,
		vcAccentedO:  AccentualHiatus,
		vcWeakI:      SimpleHiatus,
		vcWeakU:      SimpleHiatus,
		vcDiaeresis:  SimpleHiatus,
		vcAccentedI:  AccentualHiatus,
		vcAccentedU:  AccentualHiatus,
	},
}

// Classify returns how vowels a and b combine when b directly follows a.
// "y" is treated as an unaccented i so that glide endings (hoy, muy)
// classify as diphthongs. Any other non-vowel yields Other.
func Classify(a, b rune) Combo {
	return comboTable[classOf(a)][classOf(b)]
}

package ortho

import (
	"testing"
)

// ---------------------------------------------------------------------------
// Rune predicates
// ---------------------------------------------------------------------------

func TestRunePredicates(t *testing.T) {
	t.Parallel()
	tests := []struct {
		r                                     rune
		vowel, weak, strong, accented, softC bool
	}{
		{'a', true, false, true, false, false},
		{'A', true, false, true, false, false},
		{'á', true, false, true, true, false},
		{'É', true, false, true, true, true},
		{'e', true, false, true, false, true},
		{'o', true, false, true, false, false},
		{'ó', true, false, true, true, false},
		{'i', true, true, false, false, true},
		{'í', true, false, false, true, true},
		{'u', true, true, false, false, false},
		{'ú', true, false, false, true, false},
		{'ü', true, true, false, false, false},
		{'Ü', true, true, false, false, false},
		{'y', false, true, false, false, true},
		{'Y', false, true, false, false, true},
		{'b', false, false, false, false, false},
		{'ñ', false, false, false, false, false},
		{'h', false, false, false, false, false},
		{'1', false, false, false, false, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			t.Parallel()
			if got := IsVowel(tt.r); got != tt.vowel {
				t.Errorf("IsVowel(%q) = %v, want %v", tt.r, got, tt.vowel)
			}
			if got := IsWeakVowel(tt.r); got != tt.weak {
				t.Errorf("IsWeakVowel(%q) = %v, want %v", tt.r, got, tt.weak)
			}
			if got := IsStrongVowel(tt.r); got != tt.strong {
				t.Errorf("IsStrongVowel(%q) = %v, want %v", tt.r, got, tt.strong)
			}
			if got := IsAccentedVowel(tt.r); got != tt.accented {
				t.Errorf("IsAccentedVowel(%q) = %v, want %v", tt.r, got, tt.accented)
			}
			if got := IsSoftCTrigger(tt.r); got != tt.softC {
				t.Errorf("IsSoftCTrigger(%q) = %v, want %v", tt.r, got, tt.softC)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Classify
// ---------------------------------------------------------------------------

func TestClassify(t *testing.T) {
	t.Parallel()
	tests := []struct {
		pair string
		want Combo
	}{
		// falling
		{"ai", FallingDiphthong},
		{"eu", FallingDiphthong},
		{"oi", FallingDiphthong},
		{"óu", FallingDiphthong},
		{"éi", FallingDiphthong},
		{"ay", FallingDiphthong},
		{"oy", FallingDiphthong},
		// rising
		{"ia", RisingDiphthong},
		{"ié", RisingDiphthong},
		{"uo", RisingDiphthong},
		{"üe", RisingDiphthong},
		{"uó", RisingDiphthong},
		// homogenous
		{"iu", HomogenousDiphthong},
		{"ui", HomogenousDiphthong},
		{"uy", HomogenousDiphthong},
		{"uí", HomogenousDiphthong},
		{"iú", HomogenousDiphthong},
		// simple hiatus
		{"ee", SimpleHiatus},
		{"ea", SimpleHiatus},
		{"oa", SimpleHiatus},
		{"ii", SimpleHiatus},
		{"uu", SimpleHiatus},
		{"ía", SimpleHiatus},
		{"úo", SimpleHiatus},
		{"ée", SimpleHiatus},
		// accentual hiatus
		{"aí", AccentualHiatus},
		{"aú", AccentualHiatus},
		{"eó", AccentualHiatus},
		{"oé", AccentualHiatus},
		{"óo", AccentualHiatus},
		{"óa", AccentualHiatus},
		{"ií", AccentualHiatus},
		{"uú", AccentualHiatus},
		{"íó", AccentualHiatus},
		// other
		{"ab", Other},
		{"ba", Other},
		{"hh", Other},
	}
	for _, tt := range tests {
		t.Run(tt.pair, func(t *testing.T) {
			t.Parallel()
			r := []rune(tt.pair)
			if got := Classify(r[0], r[1]); got != tt.want {
				t.Errorf("Classify(%q, %q) = %v, want %v", r[0], r[1], got, tt.want)
			}
		})
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	t.Parallel()
	pairs := [][2]rune{{'a', 'i'}, {'i', 'a'}, {'í', 'o'}, {'u', 'ú'}, {'ü', 'e'}}
	for _, p := range pairs {
		lower := Classify(p[0], p[1])
		upper := Classify(upperRune(p[0]), upperRune(p[1]))
		if lower != upper {
			t.Errorf("Classify case mismatch for %q%q: %v vs %v", p[0], p[1], lower, upper)
		}
	}
}

func TestClassifyExhaustive(t *testing.T) {
	t.Parallel()
	for a := range vowels {
		for b := range vowels {
			c := Classify(a, b)
			if c == Other {
				t.Errorf("Classify(%q, %q) = Other, want a diphthong or hiatus", a, b)
			}
			if c.IsDiphthong() == c.IsHiatus() {
				t.Errorf("Classify(%q, %q) = %v is both or neither", a, b, c)
			}
		}
	}
}

func TestComboKinds(t *testing.T) {
	t.Parallel()
	if k, ok := RisingDiphthong.Diphthong(); !ok || k != Rising {
		t.Errorf("RisingDiphthong.Diphthong() = %v, %v", k, ok)
	}
	if k, ok := HomogenousDiphthong.Diphthong(); !ok || k != Homogenous {
		t.Errorf("HomogenousDiphthong.Diphthong() = %v, %v", k, ok)
	}
	if _, ok := SimpleHiatus.Diphthong(); ok {
		t.Error("SimpleHiatus.Diphthong() ok = true")
	}
	if k, ok := AccentualHiatus.Hiatus(); !ok || k != Accentual {
		t.Errorf("AccentualHiatus.Hiatus() = %v, %v", k, ok)
	}
	if _, ok := FallingDiphthong.Hiatus(); ok {
		t.Error("FallingDiphthong.Hiatus() ok = true")
	}
	if Other.String() != "Other" || Combo(99).String() != "Combo(99)" {
		t.Errorf("Combo.String() unexpected: %q %q", Other.String(), Combo(99).String())
	}
	if Falling.String() != "Falling" || Simple.String() != "Simple" {
		t.Errorf("kind String() unexpected: %q %q", Falling.String(), Simple.String())
	}
}

func TestCanFormHiatus(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b rune
		want bool
	}{
		{'e', 'e', true},
		{'a', 'í', true},
		{'a', 'i', false},
		{'i', 'e', false},
		{'u', 'i', false},
		{'b', 'a', false},
	}
	for _, tt := range tests {
		if got := CanFormHiatus(tt.a, tt.b); got != tt.want {
			t.Errorf("CanFormHiatus(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCanFormTriphthong(t *testing.T) {
	t.Parallel()
	tests := []struct {
		s    string
		want bool
	}{
		{"iai", true},
		{"uéi", true},
		{"uey", true},
		{"üey", true},
		{"uau", true},
		{"aia", false},
		{"iíi", false},
		{"íai", false},
	}
	for _, tt := range tests {
		r := []rune(tt.s)
		if got := CanFormTriphthong(r[0], r[1], r[2]); got != tt.want {
			t.Errorf("CanFormTriphthong(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// IsConsonantGroup
// ---------------------------------------------------------------------------

func TestIsConsonantGroup(t *testing.T) {
	t.Parallel()
	for _, g := range []string{"bl", "fl", "cl", "gl", "pl", "cr", "br", "tr", "gr", "fr", "pr", "dr", "tl", "ch", "ll", "rr"} {
		if !IsConsonantGroup(g) {
			t.Errorf("IsConsonantGroup(%q) = false, want true", g)
		}
	}
	for _, g := range []string{"", "b", "bs", "ns", "st", "Bl", "CH", "rl", "lr", "bla"} {
		if IsConsonantGroup(g) {
			t.Errorf("IsConsonantGroup(%q) = true, want false", g)
		}
	}
}

func upperRune(r rune) rune {
	switch r {
	case 'á':
		return 'Á'
	case 'é':
		return 'É'
	case 'í':
		return 'Í'
	case 'ó':
		return 'Ó'
	case 'ú':
		return 'Ú'
	case 'ü':
		return 'Ü'
	}
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}

package syllable

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// checkSplit parses the unhyphenated form of want and compares the
// hyphenated result.
func checkSplit(t *testing.T, want string) {
	t.Helper()
	word := strings.ReplaceAll(want, "-", "")
	w, err := Parse(word)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", word, err)
	}
	if got := w.Join("-"); got != want {
		t.Errorf("Parse(%q).Join(\"-\") = %q, want %q", word, got, want)
	}
}

func runSplits(t *testing.T, cases []string) {
	t.Helper()
	for _, want := range cases {
		t.Run(want, func(t *testing.T) {
			t.Parallel()
			checkSplit(t, want)
		})
	}
}

// ---------------------------------------------------------------------------
// Segmentation
// ---------------------------------------------------------------------------

func TestDiphthongs(t *testing.T) {
	t.Parallel()
	runSplits(t, []string{
		"pai-sa-je", "pei-ne", "an-droi-de", "pau-sa", "feu-do",
		"es-ta-dou-ni-den-se", "su-cia", "tie-rra", "pio-jo", "re-cua",
		"puer-ta", "re-si-duo", "ciu-dad", "bui-tre", "muy", "viu-da", "pié",
	})
}

func TestHiatuses(t *testing.T) {
	t.Parallel()
	runSplits(t, []string{
		// e
		"le-e", "pa-se-é", "se-a", "te-a-tro", "cre-ó", "fe-o", "re-í", "re-ú-ne",
		// a
		"ca-e", "a-é-re-o", "a-za-har", "na-o", "ca-o-ba", "pa-ís", "ba-úl",
		// o
		"ro-e", "No-é", "bo-a-to", "Sa-mo-a", "lo-ó", "zo-o", "o-ír", "No-ú-me-no",
		// i
		"rí-e", "fi-lo-so-fí-a", "rí-o", "chi-i-ta",
		// u
		"li-cú-e", "pú-a", "a-cen-tú-o", "du-un-vi-ro",
	})
}

func TestTriphthongs(t *testing.T) {
	t.Parallel()
	runSplits(t, []string{
		"A-bre-viáis", "A-bre-viéis", "Ac-tuáis", "A-huau-tle", "Buey",
		"Ca-ma-güey", "Ciais", "Crieis", "Cuai-mas", "Dioi-co", "Guay-mas",
		"Huey-pox-tla", "Miau",
		// not triphthongs
		"lim-pia-ú-ñas", "vi-ví-ais",
	})
}

func TestAdHoc(t *testing.T) {
	t.Parallel()
	runSplits(t, []string{
		"a", "va-te", "su-yo", "ár-bol", "pa-la-bra", "es-to-cól-mo",
		"i-dí-li-co", "i-rru-ma-ción", "i-ne-fa-ble", "hi-po-pó-ta-mo",
		"ay", "hay", "ma-guey", "a-buha-do", "ac-mé", "hai-ga",
		"mam-po-rre-ro", "mur-cié-la-go", "ple-io-tro-pí-a", "Ab-yec-ción",
		"A-he-rro-jar", "güe-ro", "a-ve-ri-guáis", "U-ru-guay", "huí-a",
		"az-ca-pot-zal-co", "va-he-e", "pte-ra-sau-rio", "por-que",
		"abs-tra-er", "cons-truir", "ads-cri-bir", "ads-trin-gir", "ah-re",
		"e-lec-tro-en-ce-fa-lo-gra-fis-ta", "gui-ta-rra", "que-so",
	})
}

func TestSilentH(t *testing.T) {
	t.Parallel()
	runSplits(t, []string{
		"a-ni-hi-lar", "ma-ri-hua-na", "a-hí", "ahu-ma-do", "prohi-bir", "a-ho-ra",
	})
}

func TestStructure(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  []Syllable
	}{
		{"la", []Syllable{{Onset: "l", Nucleus: "a"}}},
		{"al", []Syllable{{Nucleus: "a", Coda: "l"}}},
		{"doy", []Syllable{{Onset: "d", Nucleus: "oy"}}},
		{"duo", []Syllable{{Onset: "d", Nucleus: "uo"}}},
		{"buey", []Syllable{{Onset: "b", Nucleus: "uey"}}},
		{"güey", []Syllable{{Onset: "g", Nucleus: "üey"}}},
		{"guitarra", []Syllable{
			{Onset: "gu", Nucleus: "i"},
			{Onset: "t", Nucleus: "a"},
			{Onset: "rr", Nucleus: "a"},
		}},
		{"porque", []Syllable{
			{Onset: "p", Nucleus: "o", Coda: "r"},
			{Onset: "q", Nucleus: "ue"},
		}},
		{"abstraer", []Syllable{
			{Nucleus: "a", Coda: "bs"},
			{Onset: "tr", Nucleus: "a"},
			{Nucleus: "e", Coda: "r"},
		}},
		{"abuhado", []Syllable{
			{Nucleus: "a"},
			{Onset: "b", Nucleus: "uha", Coda: ""},
			{Onset: "d", Nucleus: "o"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			w, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(w.Syllables, tt.want) {
				t.Errorf("Parse(%q).Syllables = %#v, want %#v", tt.input, w.Syllables, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Degenerate and invalid input
// ---------------------------------------------------------------------------

func TestDegenerate(t *testing.T) {
	t.Parallel()

	w, err := Parse("")
	if err != nil {
		t.Fatalf("Parse(\"\") error: %v", err)
	}
	if w.Syllables != nil || w.StressIndex != 0 || w.Rhyme() != "" {
		t.Errorf("Parse(\"\") = %+v, want empty word", w)
	}

	tests := []struct {
		input string
		want  []Syllable
	}{
		{"a", []Syllable{{Nucleus: "a"}}},
		{"b", []Syllable{{Nucleus: "b"}}},
		{"y", []Syllable{{Nucleus: "y"}}},
		{"brr", []Syllable{{Onset: "brr"}}},
	}
	for _, tt := range tests {
		w, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.input, err)
			continue
		}
		if !reflect.DeepEqual(w.Syllables, tt.want) {
			t.Errorf("Parse(%q).Syllables = %#v, want %#v", tt.input, w.Syllables, tt.want)
		}
		if w.StressIndex != 0 {
			t.Errorf("Parse(%q).StressIndex = %d, want 0", tt.input, w.StressIndex)
		}
	}
}

func TestInvalidWord(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
	}{
		{"qu cut off", "qu"},
		{"gu cut off", "gu"},
		{"upper QU cut off", "QU"},
		{"final h", "bah"},
		{"final h after single vowel", "oh"},
		{"upper final H", "OH"},
		{"final h after i", "vih"},
		{"h and diphthong vowel cut off", "ahi"},
		{"h and vowel cut off after diphthong", "aihu"},
		{"invalid utf8", "\xff"},
		{"invalid utf8 inside", "ca\xfesa"},
		{"too long", strings.Repeat("a", maxWordBytes+1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w, err := Parse(tt.input)
			if !errors.Is(err, ErrInvalidWord) {
				t.Fatalf("Parse(%q) error = %v, want ErrInvalidWord", tt.input, err)
			}
			if w.Syllables != nil || w.Text != tt.input {
				t.Errorf("Parse(%q) = %+v, want Text only", tt.input, w)
			}
		})
	}
}

func TestQUInsideWordIsNotAnError(t *testing.T) {
	t.Parallel()
	// The digraph lookahead only runs while an onset is being built.
	w, err := Parse("aqu")
	if err != nil {
		t.Fatalf("Parse(\"aqu\") error: %v", err)
	}
	if got := w.Join("-"); got != "a-qu" {
		t.Errorf("Parse(\"aqu\").Join = %q, want %q", got, "a-qu")
	}
}

func TestMaxWordBytesBoundary(t *testing.T) {
	t.Parallel()
	word := strings.Repeat("pa", maxWordBytes/2)
	w, err := Parse(word)
	if err != nil {
		t.Fatalf("Parse(%d bytes) error: %v", len(word), err)
	}
	if got := w.Len(); got != maxWordBytes/2 {
		t.Errorf("Len() = %d, want %d", got, maxWordBytes/2)
	}
}

// ---------------------------------------------------------------------------
// Convenience wrappers
// ---------------------------------------------------------------------------

func TestSyllablesAndHyphenate(t *testing.T) {
	t.Parallel()
	if got := Syllables("palabra"); !reflect.DeepEqual(got, []string{"pa", "la", "bra"}) {
		t.Errorf("Syllables(\"palabra\") = %q", got)
	}
	if got := Syllables("qu"); got != nil {
		t.Errorf("Syllables(\"qu\") = %q, want nil", got)
	}
	if got := Syllables(""); got != nil {
		t.Errorf("Syllables(\"\") = %q, want nil", got)
	}
	if got := Hyphenate("murciélago", "·"); got != "mur·cié·la·go" {
		t.Errorf("Hyphenate = %q", got)
	}
	if got := Hyphenate("qu", "-"); got != "qu" {
		t.Errorf("Hyphenate(\"qu\") = %q, want input unchanged", got)
	}
}

func TestSyllableMethods(t *testing.T) {
	t.Parallel()
	tests := []struct {
		s         Syllable
		text      string
		accent    bool
		since string
	}{
		{Syllable{"t", "uái", "s"}, "tuáis", true, "ái"},
		{Syllable{"h", "ui", "r"}, "huir", false, "i"},
		{Syllable{"p", "ai", ""}, "pai", false, "ai"},
		{Syllable{"c", "ie", "n"}, "cien", false, "e"},
		{Syllable{"", "a", "l"}, "al", false, "a"},
		{Syllable{"brr", "", ""}, "brr", false, ""},
		{Syllable{"G", "UAY", ""}, "GUAY", false, "AY"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.text {
			t.Errorf("%#v.String() = %q, want %q", tt.s, got, tt.text)
		}
		if got := tt.s.HasAccent(); got != tt.accent {
			t.Errorf("%#v.HasAccent() = %v, want %v", tt.s, got, tt.accent)
		}
		if got := tt.s.VowelsSinceStress(); got != tt.since {
			t.Errorf("%#v.VowelsSinceStress() = %q, want %q", tt.s, got, tt.since)
		}
	}
}

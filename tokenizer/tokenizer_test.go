package tokenizer

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

// verifyInvariants checks two invariants that must hold for every tokenization:
//   - Byte offset invariant: input[t.Start:t.End] == t.Text for every token.
//   - Reconstruction invariant: concatenating all token texts reproduces the input.
func verifyInvariants(t *testing.T, input string, tokens []Token) {
	t.Helper()
	for i, tok := range tokens {
		if got := input[tok.Start:tok.End]; got != tok.Text {
			t.Errorf("token %d offset invariant broken: input[%d:%d]=%q, Text=%q",
				i, tok.Start, tok.End, got, tok.Text)
		}
	}
	var buf strings.Builder
	for _, tok := range tokens {
		buf.WriteString(tok.Text)
	}
	if buf.String() != input {
		t.Errorf("reconstruction invariant broken:\ngot:  %q\nwant: %q", buf.String(), input)
	}
}

// ---------------------------------------------------------------------------
// WordTokens table tests
// ---------------------------------------------------------------------------

func TestWordTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		// -- Basic word tokens --

		{"simple ASCII word", "hola", []Token{
			{Text: "hola", Start: 0, End: 4, Type: Word},
		}},
		{"two words", "la casa", []Token{
			{Text: "la", Start: 0, End: 2, Type: Word},
			{Text: " ", Start: 2, End: 3, Type: Space},
			{Text: "casa", Start: 3, End: 7, Type: Word},
		}},
		{"Spanish letters", "ñandú pingüino", []Token{
			{Text: "ñandú", Start: 0, End: 7, Type: Word},
			{Text: " ", Start: 7, End: 8, Type: Space},
			{Text: "pingüino", Start: 8, End: 17, Type: Word},
		}},
		{"decomposed accent stays in word", "canción", []Token{
			{Text: "canción", Start: 0, End: 9, Type: Word},
		}},

		// -- Number tokens --

		{"plain digits", "42", []Token{
			{Text: "42", Start: 0, End: 2, Type: Number},
		}},
		{"thousand separator", "1.000.000", []Token{
			{Text: "1.000.000", Start: 0, End: 9, Type: Number},
		}},
		{"decimal comma", "3,14", []Token{
			{Text: "3,14", Start: 0, End: 4, Type: Number},
		}},
		{"dot not decimal (two digits after dot)", "3.14", []Token{
			{Text: "3", Start: 0, End: 1, Type: Number},
			{Text: ".", Start: 1, End: 2, Type: Punctuation},
			{Text: "14", Start: 2, End: 4, Type: Number},
		}},
		{"trailing comma not decimal", "3,", []Token{
			{Text: "3", Start: 0, End: 1, Type: Number},
			{Text: ",", Start: 1, End: 2, Type: Punctuation},
		}},
		{"number-unit split", "5km", []Token{
			{Text: "5", Start: 0, End: 1, Type: Number},
			{Text: "km", Start: 1, End: 3, Type: Word},
		}},

		// -- Punctuation --

		{"inverted question", "¿Qué?", []Token{
			{Text: "¿", Start: 0, End: 2, Type: Punctuation},
			{Text: "Qué", Start: 2, End: 6, Type: Word},
			{Text: "?", Start: 6, End: 7, Type: Punctuation},
		}},
		{"inverted exclamation", "¡Ay!", []Token{
			{Text: "¡", Start: 0, End: 2, Type: Punctuation},
			{Text: "Ay", Start: 2, End: 4, Type: Word},
			{Text: "!", Start: 4, End: 5, Type: Punctuation},
		}},
		{"guillemets", "«sí»", []Token{
			{Text: "«", Start: 0, End: 2, Type: Punctuation},
			{Text: "sí", Start: 2, End: 5, Type: Word},
			{Text: "»", Start: 5, End: 7, Type: Punctuation},
		}},

		// -- Whitespace merging --

		{"multiple spaces merge", "a  \t\n b", []Token{
			{Text: "a", Start: 0, End: 1, Type: Word},
			{Text: "  \t\n ", Start: 1, End: 6, Type: Space},
			{Text: "b", Start: 6, End: 7, Type: Word},
		}},

		// -- Symbol tokens --

		{"emoji produces symbol tokens", "\U0001F3D9️", []Token{
			{Text: "\U0001F3D9", Start: 0, End: 4, Type: Symbol},
			{Text: "️", Start: 4, End: 7, Type: Symbol},
		}},
		{"dollar sign is symbol", "$", []Token{
			{Text: "$", Start: 0, End: 1, Type: Symbol},
		}},

		// -- Hyphen joining --

		{"hyphen between letters", "franco-alemán", []Token{
			{Text: "franco-alemán", Start: 0, End: 14, Type: Word},
		}},
		{"hyphen digit-letter", "COVID-19", []Token{
			{Text: "COVID-19", Start: 0, End: 8, Type: Word},
		}},
		{"leading hyphen", "-casa", []Token{
			{Text: "-", Start: 0, End: 1, Type: Punctuation},
			{Text: "casa", Start: 1, End: 5, Type: Word},
		}},
		{"trailing hyphen", "casa-", []Token{
			{Text: "casa", Start: 0, End: 4, Type: Word},
			{Text: "-", Start: 4, End: 5, Type: Punctuation},
		}},
		{"double hyphen splits", "casa--perro", []Token{
			{Text: "casa", Start: 0, End: 4, Type: Word},
			{Text: "--", Start: 4, End: 6, Type: Punctuation},
			{Text: "perro", Start: 6, End: 11, Type: Word},
		}},
		{"em-dash dialogue", "—Hola", []Token{
			{Text: "—", Start: 0, End: 3, Type: Punctuation},
			{Text: "Hola", Start: 3, End: 7, Type: Word},
		}},

		// -- Apostrophes do not join --

		{"apostrophe splits", "d'Ors", []Token{
			{Text: "d", Start: 0, End: 1, Type: Word},
			{Text: "'", Start: 1, End: 2, Type: Punctuation},
			{Text: "Ors", Start: 2, End: 5, Type: Word},
		}},

		// -- Edge cases --

		{"empty string", "", nil},
		{"whitespace only", "   ", []Token{
			{Text: "   ", Start: 0, End: 3, Type: Space},
		}},
		{"Arabic-Indic digit U+0660 is symbol", "٠", []Token{
			{Text: "٠", Start: 0, End: 2, Type: Symbol},
		}},
		{"malformed UTF-8 produces symbol tokens", "\xff\xfe", []Token{
			{Text: "\xff", Start: 0, End: 1, Type: Symbol},
			{Text: "\xfe", Start: 1, End: 2, Type: Symbol},
		}},

		// -- Mixed content --

		{"verse line", "Verde que te quiero verde.", []Token{
			{Text: "Verde", Start: 0, End: 5, Type: Word},
			{Text: " ", Start: 5, End: 6, Type: Space},
			{Text: "que", Start: 6, End: 9, Type: Word},
			{Text: " ", Start: 9, End: 10, Type: Space},
			{Text: "te", Start: 10, End: 12, Type: Word},
			{Text: " ", Start: 12, End: 13, Type: Space},
			{Text: "quiero", Start: 13, End: 19, Type: Word},
			{Text: " ", Start: 19, End: 20, Type: Space},
			{Text: "verde", Start: 20, End: 25, Type: Word},
			{Text: ".", Start: 25, End: 26, Type: Punctuation},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WordTokens(tt.input)
			if tt.want == nil {
				if got != nil {
					t.Errorf("WordTokens(%q) = %v, want nil", tt.input, got)
				}
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("WordTokens(%q): got %d tokens, want %d\ngot:  %v\nwant: %v",
					tt.input, len(got), len(tt.want), got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
			verifyInvariants(t, tt.input, got)
		})
	}
}

// TestWordTokensLargeInput verifies that a large input does not panic
// and produces a non-empty result.
func TestWordTokensLargeInput(t *testing.T) {
	chunk := "Verde que te quiero verde. ¿Verde viento? "
	input := strings.Repeat(chunk, 30000) // > 1MB
	tokens := WordTokens(input)
	if len(tokens) == 0 {
		t.Error("expected non-empty token list for large input")
	}
	verifyInvariants(t, input, tokens)
}

// ---------------------------------------------------------------------------
// Words
// ---------------------------------------------------------------------------

func TestWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"punctuation only", "¿?¡!", []string{}},
		{"drops numbers", "Tengo 3 gatos", []string{"Tengo", "gatos"}},
		{"keeps hyphenated", "el tratado franco-alemán", []string{"el", "tratado", "franco-alemán"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Words(tt.input)
			if tt.want == nil {
				if got != nil {
					t.Errorf("Words(%q) = %q, want nil", tt.input, got)
				}
				return
			}
			if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
				t.Errorf("Words(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// SplitHyphenated
// ---------------------------------------------------------------------------

func TestSplitHyphenated(t *testing.T) {
	input := "el franco-alemán"
	tokens := WordTokens(input)
	last := tokens[len(tokens)-1]
	parts := SplitHyphenated(last)
	want := []Token{
		{Text: "franco", Start: 3, End: 9, Type: Word},
		{Text: "alemán", Start: 10, End: 17, Type: Word},
	}
	if len(parts) != len(want) {
		t.Fatalf("SplitHyphenated(%v) = %v, want %v", last, parts, want)
	}
	for i := range parts {
		if parts[i] != want[i] {
			t.Errorf("part %d: got %v, want %v", i, parts[i], want[i])
		}
		if got := input[parts[i].Start:parts[i].End]; got != parts[i].Text {
			t.Errorf("part %d offset invariant broken: %q vs %q", i, got, parts[i].Text)
		}
	}

	single := Token{Text: "casa", Start: 2, End: 6, Type: Word}
	if got := SplitHyphenated(single); len(got) != 1 || got[0] != single {
		t.Errorf("SplitHyphenated(%v) = %v, want the token itself", single, got)
	}
}

// ---------------------------------------------------------------------------
// TokenType.String / Token.String
// ---------------------------------------------------------------------------

func TestTokenTypeString(t *testing.T) {
	tests := []struct {
		tt   TokenType
		want string
	}{
		{Word, "Word"},
		{Number, "Number"},
		{Punctuation, "Punctuation"},
		{Space, "Space"},
		{Symbol, "Symbol"},
		{TokenType(99), "TokenType(99)"},
	}
	for _, tc := range tests {
		if got := tc.tt.String(); got != tc.want {
			t.Errorf("TokenType(%d).String() = %q, want %q", int(tc.tt), got, tc.want)
		}
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Text: "hola", Start: 0, End: 4, Type: Word}
	want := `Word("hola")[0:4]`
	if got := tok.String(); got != want {
		t.Errorf("Token.String() = %q, want %q", got, want)
	}
}

// ---------------------------------------------------------------------------
// Benchmarks
// ---------------------------------------------------------------------------

func BenchmarkWordTokens(b *testing.B) {
	input := strings.Repeat("Verde que te quiero verde. ¿Verde viento? 1.000 ramas. ", 1000)
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for b.Loop() {
		WordTokens(input)
	}
}

func BenchmarkWords(b *testing.B) {
	input := strings.Repeat("Verde que te quiero verde. ¿Verde viento? 1.000 ramas. ", 1000)
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for b.Loop() {
		Words(input)
	}
}

// ---------------------------------------------------------------------------
// Examples
// ---------------------------------------------------------------------------

func ExampleWordTokens() {
	tokens := WordTokens("¡Hola, mundo!")
	for _, t := range tokens {
		fmt.Printf("%s: %q\n", t.Type, t.Text)
	}
	// Output:
	// Punctuation: "¡"
	// Word: "Hola"
	// Punctuation: ","
	// Space: " "
	// Word: "mundo"
	// Punctuation: "!"
}

func ExampleWords() {
	fmt.Println(Words("Verde que te quiero verde."))
	// Output:
	// [Verde que te quiero verde]
}

// ---------------------------------------------------------------------------
// Fuzz tests
// ---------------------------------------------------------------------------

func FuzzWordTokens(f *testing.F) {
	f.Add("¡Hola, mundo!")
	f.Add("1.000.000,50")
	f.Add("franco-alemán")
	f.Add("canción")
	f.Add("")
	f.Add("\xff\xfe")
	f.Add("- - -- ---")
	f.Fuzz(func(t *testing.T, s string) {
		tokens := WordTokens(s)
		verifyInvariants(t, s, tokens)
		for _, tok := range tokens {
			if tok.Type == Word {
				verifyInvariants(t, tok.Text, shift(SplitHyphenated(tok), tok.Start))
			}
		}
	})
}

// shift rebases token offsets so they index into the token's own text.
func shift(tokens []Token, by int) []Token {
	out := make([]Token, 0, len(tokens)*2)
	for i, tok := range tokens {
		if i > 0 {
			prev := out[len(out)-1]
			out = append(out, Token{Text: "-", Start: prev.End, End: prev.End + 1, Type: Punctuation})
		}
		out = append(out, Token{Text: tok.Text, Start: tok.Start - by, End: tok.End - by, Type: tok.Type})
	}
	return out
}

// ---------------------------------------------------------------------------
// Concurrent safety
// ---------------------------------------------------------------------------

func TestConcurrentSafety(t *testing.T) {
	input := "Verde que te quiero verde. ¿Verde viento? 1.000 ramas franco-alemán"
	var wg sync.WaitGroup
	for range 100 {
		wg.Go(func() {
			WordTokens(input)
			Words(input)
		})
	}
	wg.Wait()
}

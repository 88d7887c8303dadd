// Package tokenizer splits Spanish text into words and structured tokens
// with byte offsets, so that every word of a line can be syllabified on
// its own.
//
// The package provides two API layers:
//
//   - Structured: WordTokens returns []Token with byte offsets and type
//     metadata. The invariant s[t.Start:t.End] == t.Text holds for every
//     token, and concatenating all token texts reconstructs the original
//     string.
//
//   - Convenience: Words returns []string for the common case where offsets
//     and types are not needed.
//
// Inverted marks (¿ ¡), guillemets and dashes used in dialogue are
// Punctuation. Numbers follow Spanish conventions: dots group thousands and
// a comma marks the decimal part ("1.000.000", "3,14").
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Text is not normalized. Decomposed accents stay inside the word token
//     (combining marks count as part of a word) but are not composed;
//     compose to NFC before tokenizing if the words are going to be
//     syllabified.
//   - URLs and e-mail addresses are split into ordinary tokens.
package tokenizer

import "fmt"

// wordsPerTokenEstimate is the estimated ratio of total tokens to word tokens,
// used to pre-allocate the words slice in the Words convenience function.
const wordsPerTokenEstimate = 2

// TokenType classifies a token.
type TokenType int

const (
	Word        TokenType = iota // Letters, including single inner hyphens (franco-alemán)
	Number                       // Digits, with decimal comma or thousand-separator dots
	Punctuation                  // Punctuation marks: . , ¿ ? ¡ ! : ; ( ) « » — etc.
	Space                        // Contiguous whitespace (spaces, tabs, newlines)
	Symbol                       // Everything else: emoji, mathematical symbols, etc.
)

// String returns the name of the token type.
func (t TokenType) String() string {
	switch t {
	case Word:
		return "Word"
	case Number:
		return "Number"
	case Punctuation:
		return "Punctuation"
	case Space:
		return "Space"
	case Symbol:
		return "Symbol"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// MarshalText encodes the token type as its name.
func (t TokenType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a token type from its name.
func (t *TokenType) UnmarshalText(b []byte) error {
	for tt := Word; tt <= Symbol; tt++ {
		if tt.String() == string(b) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("tokenizer: unknown token type %q", b)
}

// Token represents a unit of text with its position and classification.
type Token struct {
	Text  string    `json:"text"`  // The token text
	Start int       `json:"start"` // Byte offset in the original string (inclusive)
	End   int       `json:"end"`   // Byte offset in the original string (exclusive)
	Type  TokenType `json:"type"`  // Classification of the token
}

// String returns a debug representation, e.g. Word("hola")[0:4].
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", t.Type, t.Text, t.Start, t.End)
}

// WordTokens splits text into all tokens with metadata.
// The byte offset invariant s[t.Start:t.End] == t.Text holds for every token.
// Concatenating all token texts reconstructs the original string.
func WordTokens(s string) []Token {
	if s == "" {
		return nil
	}
	return wordTokens(s)
}

// Words returns only Word-type token texts from the text.
// For full control, use WordTokens and filter by Type.
func Words(s string) []string {
	if s == "" {
		return nil
	}
	tokens := wordTokens(s)
	words := make([]string, 0, len(tokens)/wordsPerTokenEstimate)
	for _, t := range tokens {
		if t.Type == Word {
			words = append(words, t.Text)
		}
	}
	return words
}

// SplitHyphenated splits a Word token on its inner hyphens, returning the
// parts as tokens with offsets in the original string.
// A token without hyphens is returned as a single-element slice.
func SplitHyphenated(t Token) []Token {
	parts := make([]Token, 0, 2)
	start := 0
	for i := 0; i < len(t.Text); i++ {
		if t.Text[i] != '-' {
			continue
		}
		parts = append(parts, Token{Text: t.Text[start:i], Start: t.Start + start, End: t.Start + i, Type: t.Type})
		start = i + 1
	}
	return append(parts, Token{Text: t.Text[start:], Start: t.Start + start, End: t.End, Type: t.Type})
}

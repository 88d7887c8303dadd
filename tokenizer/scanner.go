package tokenizer

import (
	"unicode"
	"unicode/utf8"
)

// wordTokens splits s into tokens using a rune-by-rune state machine.
// The caller guarantees s is non-empty.
//
// Rule priority (highest first):
//   - Whitespace runs
//   - Number grouping (dot as thousand separator, comma as decimal)
//   - Words, with hyphen joining (single U+002D between letter/digit)
//   - Punctuation, merging runs of "-"
//   - Default: Symbol
func wordTokens(s string) []Token {
	tokens := make([]Token, 0, len(s)/4+1)

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		// Whitespace: merge contiguous into one Space token
		if unicode.IsSpace(r) {
			start := i
			i += size
			for i < len(s) {
				nr, ns := utf8.DecodeRuneInString(s[i:])
				if !unicode.IsSpace(nr) {
					break
				}
				i += ns
			}
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Space})
			continue
		}

		// ASCII digits: scan a number token with possible thousand-separator
		// dots and decimal comma. Other Unicode digits fall through to Symbol.
		if r < utf8.RuneSelf && isDigitByte(byte(r)) {
			tok := scanNumber(s, i)
			tokens = append(tokens, tok)
			i = tok.End
			continue
		}

		// Letters: scan a word token with possible hyphens
		if unicode.IsLetter(r) {
			tok := scanWord(s, i)
			tokens = append(tokens, tok)
			i = tok.End
			continue
		}

		// Punctuation: consecutive hyphens are merged ("--" as a dash)
		if unicode.IsPunct(r) {
			start := i
			i += size
			if r == '-' {
				for i < len(s) {
					nr, ns := utf8.DecodeRuneInString(s[i:])
					if nr != '-' {
						break
					}
					i += ns
				}
			}
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Punctuation})
			continue
		}

		// Fallback: treat unclassified runes as Symbol
		tokens = append(tokens, Token{Text: s[i : i+size], Start: i, End: i + size, Type: Symbol})
		i += size
	}

	return tokens
}

// scanNumber reads a number token starting at position pos.
// Handles thousand-separator dots (groups of exactly 3) and decimal commas.
func scanNumber(s string, pos int) Token {
	i := pos

	// Consume initial digits
	for i < len(s) && isDigitByte(s[i]) {
		i++
	}

	// Try thousand-separator dots: \d{1,3}(\.\d{3})+
	for i < len(s) && s[i] == '.' {
		// Peek ahead: must be exactly 3 digits followed by non-digit or end
		if i+4 <= len(s) && isDigitByte(s[i+1]) && isDigitByte(s[i+2]) && isDigitByte(s[i+3]) {
			if i+4 >= len(s) || !isDigitByte(s[i+4]) {
				i += 4
				continue
			}
		}
		break
	}

	// Try decimal comma: must be followed by at least one digit
	if i < len(s) && s[i] == ',' {
		if i+1 < len(s) && isDigitByte(s[i+1]) {
			i++ // skip comma
			for i < len(s) && isDigitByte(s[i]) {
				i++
			}
		}
	}

	return Token{Text: s[pos:i], Start: pos, End: i, Type: Number}
}

// scanWord reads a word token starting at position pos.
// A word begins with a letter and may contain digits (e.g. "A4"), combining
// marks (decomposed accents) and single hyphens (U+002D) between
// letters/digits.
func scanWord(s string, pos int) Token {
	i := consumeWordRun(s, pos)

	// Try to extend with hyphens
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r != '-' {
			break
		}
		next := i + size
		if next >= len(s) {
			break
		}
		nr, _ := utf8.DecodeRuneInString(s[next:])
		// Must not be a double hyphen, and next char must be letter/digit
		if !unicode.IsLetter(nr) && !unicode.IsDigit(nr) {
			break
		}
		i = consumeWordRun(s, next)
	}

	return Token{Text: s[pos:i], Start: pos, End: i, Type: Word}
}

// consumeWordRun consumes a contiguous run of letters, digits and
// combining marks.
func consumeWordRun(s string, pos int) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.Is(unicode.Mn, r) {
			break
		}
		pos += size
	}
	return pos
}

// isDigitByte returns true for ASCII digit bytes.
func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}

package escase

import "golang.org/x/text/unicode/norm"

// ComposeNFC returns the Unicode NFC form of s.
// Input that is already composed is returned unchanged without allocating.
func ComposeNFC(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}

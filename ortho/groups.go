package ortho

// consonantGroups lists the blends and digraphs that never split across
// a syllable boundary. Matching is exact: "Bl" is not a group.
var consonantGroups = map[string]bool{
	"bl": true, "fl": true, "cl": true, "gl": true, "pl": true,
	"cr": true, "br": true, "tr": true, "gr": true, "fr": true,
	"pr": true, "dr": true, "tl": true,
	// digraphs
	"ch": true, "ll": true, "rr": true,
}

// IsConsonantGroup reports whether pair is an inseparable two-letter
// consonant blend (bl, tr, ...) or digraph (ch, ll, rr).
func IsConsonantGroup(pair string) bool {
	return consonantGroups[pair]
}

// Package data embeds the seed word list for the rhyme index.
package data

import _ "embed"

// Palabras is a newline-separated list of common Spanish words used to seed
// an empty rhyme index. Lines starting with "#" are comments.
//
//go:embed palabras.txt
var Palabras string

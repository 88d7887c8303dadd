package rhymeindex

import "errors"

var (
	// ErrNotFound is returned when a word is not in the index.
	ErrNotFound = errors.New("rhymeindex: word not found")

	// ErrUnindexable is returned for words with no vowel to rhyme on.
	ErrUnindexable = errors.New("rhymeindex: word has no rhyme")

	// ErrPoolClosed is returned if a Submit is attempted after Close.
	ErrPoolClosed = errors.New("rhymeindex: worker pool closed")
)

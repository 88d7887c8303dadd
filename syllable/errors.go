package syllable

import "errors"

var (
	// ErrInvalidWord is returned for input that cannot be segmented: invalid
	// UTF-8, words longer than maxWordBytes, or a "qu"/"gu" digraph cut off
	// by the end of the word.
	ErrInvalidWord = errors.New("syllable: invalid word")

	// ErrInconsistentNucleus is returned by Word.VowelCombos when a
	// two-vowel nucleus is not a diphthong. It indicates a segmentation bug,
	// not bad input.
	ErrInconsistentNucleus = errors.New("syllable: nucleus is not a diphthong")
)

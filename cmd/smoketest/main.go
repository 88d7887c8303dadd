// Command smoketest runs the tokenizer and the syllable analyzer over every
// .txt file under a directory and reports invariant violations.
//
// For each file it checks that tokens reconstruct the text, and for each
// word that the syllables join back to the word, the stress index is in
// range, a written accent marks the stressed syllable, and the rhyme is a
// suffix of the word.
//
// Usage:
//
//	smoketest <directory>
package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/az-ai-labs/silabas/internal/escase"
	"github.com/az-ai-labs/silabas/syllable"
	"github.com/az-ai-labs/silabas/tokenizer"
)

const (
	chunkSize      = 4 << 20 // 4 MB per read chunk
	maxWorkers     = 4
	expectedArgs   = 2
	bytesToMBShift = 20
	maxLoggedWords = 5
)

type fileRatio struct {
	path    string
	invalid int
	words   int
	ratio   float64
}

type Stats struct {
	mu               sync.Mutex
	filesScanned     int
	totalBytes       int64
	reconOK          int
	reconFail        int
	words            int
	invalidWords     int
	invariantFails   int
	comboFails       int
	invalidOutliers  int
	tokenTypeCounts  map[tokenizer.TokenType]int
	stressTypeCounts map[syllable.StressType]int
	fileRatios       []fileRatio
}

type fileState struct {
	path            string
	tokenCounts     map[tokenizer.TokenType]int
	stressCounts    map[syllable.StressType]int
	totalBytes      int64
	reconFailed     bool
	reconFailLogged bool
	words           int
	invalid         int
	invariantFails  int
	comboFails      int
	logged          int
}

func main() {
	if len(os.Args) != expectedArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s <directory>\n", os.Args[0])
		os.Exit(1)
	}

	dirPath := os.Args[1]
	stats := &Stats{
		tokenTypeCounts:  make(map[tokenizer.TokenType]int),
		stressTypeCounts: make(map[syllable.StressType]int),
	}

	var filePaths []string
	err := filepath.WalkDir(dirPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".txt") {
			return nil
		}
		filePaths = append(filePaths, path)
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error walking directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Found %d files to process\n", len(filePaths))
	start := time.Now()

	semaphore := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup
	for _, path := range filePaths {
		semaphore <- struct{}{}
		wg.Go(func() {
			defer func() { <-semaphore }()
			processFile(path, stats)
		})
	}
	wg.Wait()

	flagInvalidOutliers(stats)

	fmt.Fprintf(os.Stderr, "\nCompleted in %s\n\n", time.Since(start).Round(time.Millisecond))
	printStats(stats)

	if stats.reconFail > 0 || stats.invariantFails > 0 {
		os.Exit(1)
	}
}

func processFile(path string, stats *Stats) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", path, err)
		return
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error stat %s: %v\n", path, err)
		return
	}
	fmt.Fprintf(os.Stderr, "START %s (%d MB)\n", path, info.Size()>>bytesToMBShift)
	fileStart := time.Now()

	state := &fileState{
		path:         path,
		tokenCounts:  make(map[tokenizer.TokenType]int),
		stressCounts: make(map[syllable.StressType]int),
	}

	buf := make([]byte, chunkSize)
	var leftover []byte

	for {
		n, err := f.Read(buf)
		if n > 0 {
			leftover = append(leftover, buf[:n]...)
			chunk := leftover

			if err == nil {
				if idx := bytes.LastIndexByte(chunk, '\n'); idx > 0 {
					leftover = make([]byte, len(chunk)-idx-1)
					copy(leftover, chunk[idx+1:])
					chunk = chunk[:idx+1]
				} else {
					leftover = chunk
					continue
				}
			} else {
				leftover = nil
			}

			state.processChunk(chunk)
		}

		if err != nil {
			break
		}
	}

	if len(leftover) > 0 {
		state.processChunk(leftover)
	}

	fmt.Fprintf(os.Stderr, "DONE  %s in %s (%d MB processed)\n",
		filepath.Base(path), time.Since(fileStart).Round(time.Millisecond), state.totalBytes>>bytesToMBShift)

	mergeFileState(state, stats)
}

func (fs *fileState) processChunk(chunk []byte) {
	text := escase.ComposeNFC(string(chunk))
	fs.totalBytes += int64(len(chunk))

	tokens := tokenizer.WordTokens(text)

	var sb strings.Builder
	if !fs.reconFailed {
		sb.Grow(len(text))
	}
	for _, token := range tokens {
		fs.tokenCounts[token.Type]++
		if !fs.reconFailed {
			sb.WriteString(token.Text)
		}
		if token.Type != tokenizer.Word {
			continue
		}
		for _, part := range tokenizer.SplitHyphenated(token) {
			if part.Text != "" {
				fs.checkWord(part.Text)
			}
		}
	}
	if !fs.reconFailed && sb.String() != text {
		fs.reconFailed = true
		if !fs.reconFailLogged {
			logReconstructionFailure(fs.path, text, sb.String())
			fs.reconFailLogged = true
		}
	}
}

// checkWord parses word and verifies the analyzer invariants.
func (fs *fileState) checkWord(word string) {
	fs.words++
	w, err := syllable.Parse(word)
	if err != nil {
		fs.invalid++
		return
	}
	fs.stressCounts[w.StressType()]++

	if msg := violation(w); msg != "" {
		fs.invariantFails++
		if fs.logged < maxLoggedWords {
			fmt.Fprintf(os.Stderr, "INVARIANT_FAIL: %s: %q: %s\n", fs.path, word, msg)
			fs.logged++
		}
	}
	if _, err := w.VowelCombos(); errors.Is(err, syllable.ErrInconsistentNucleus) {
		fs.comboFails++
	}
}

// violation returns a description of the first broken invariant of w, or "".
func violation(w syllable.Word) string {
	if got := w.Join(""); got != w.Text {
		return fmt.Sprintf("syllables join to %q", got)
	}
	if w.Len() > 0 && (w.StressIndex < 0 || w.StressIndex >= w.Len()) {
		return fmt.Sprintf("stress index %d out of range", w.StressIndex)
	}
	for i := w.Len() - 1; i >= 0; i-- {
		if w.Syllables[i].HasAccent() {
			if i != w.StressIndex {
				return fmt.Sprintf("accent on syllable %d but stress on %d", i, w.StressIndex)
			}
			break
		}
	}
	if !strings.HasSuffix(w.Text, w.Rhyme()) {
		return fmt.Sprintf("rhyme %q is not a suffix", w.Rhyme())
	}
	return ""
}

func mergeFileState(fs *fileState, stats *Stats) {
	stats.mu.Lock()
	defer stats.mu.Unlock()

	stats.filesScanned++
	stats.totalBytes += fs.totalBytes

	if fs.reconFailed {
		stats.reconFail++
	} else {
		stats.reconOK++
	}

	for tokenType, count := range fs.tokenCounts {
		stats.tokenTypeCounts[tokenType] += count
	}
	for stressType, count := range fs.stressCounts {
		stats.stressTypeCounts[stressType] += count
	}
	stats.words += fs.words
	stats.invalidWords += fs.invalid
	stats.invariantFails += fs.invariantFails
	stats.comboFails += fs.comboFails

	if fs.words > 0 {
		stats.fileRatios = append(stats.fileRatios, fileRatio{
			path:    fs.path,
			invalid: fs.invalid,
			words:   fs.words,
			ratio:   float64(fs.invalid) / float64(fs.words),
		})
	}
}

func logReconstructionFailure(path, original, reconstructed string) {
	pos, got, want := firstDivergence(original, reconstructed)
	fmt.Fprintf(os.Stderr, "RECON_FAIL: %s: first divergence at byte %d (got 0x%02x, want 0x%02x)\n",
		path, pos, got, want)
}

// flagInvalidOutliers computes the median invalid-word ratio across all
// files and flags any file whose ratio exceeds 3x the median. Such files
// are usually not Spanish.
func flagInvalidOutliers(stats *Stats) {
	if len(stats.fileRatios) == 0 {
		return
	}

	ratios := make([]float64, len(stats.fileRatios))
	for i, fr := range stats.fileRatios {
		ratios[i] = fr.ratio
	}
	med := computeMedian(ratios)

	for _, fr := range stats.fileRatios {
		if med > 0 && fr.ratio > 3*med {
			stats.invalidOutliers++
			fmt.Fprintf(os.Stderr, "INVALID_OUTLIER: %s: %d invalid / %d words (ratio %.4f, median %.4f)\n",
				fr.path, fr.invalid, fr.words, fr.ratio, med)
		}
	}
}

// firstDivergence finds the byte position where two strings first differ.
// Returns the position and the differing bytes from each string.
func firstDivergence(original, reconstructed string) (pos int, got, want byte) {
	n := min(len(original), len(reconstructed))
	for i := range n {
		if original[i] != reconstructed[i] {
			return i, reconstructed[i], original[i]
		}
	}
	pos = n
	if pos < len(reconstructed) {
		got = reconstructed[pos]
	}
	if pos < len(original) {
		want = original[pos]
	}
	return pos, got, want
}

func computeMedian(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2 //nolint:mnd // arithmetic mean of two middle values
	}
	return sorted[mid]
}

func printStats(stats *Stats) {
	fmt.Printf("Files scanned:           %d\n", stats.filesScanned)
	fmt.Printf("Total bytes:             %d\n", stats.totalBytes)
	fmt.Printf("Reconstruction OK:       %d\n", stats.reconOK)
	fmt.Printf("Reconstruction FAIL:     %d\n", stats.reconFail)
	fmt.Printf("Words analyzed:          %d\n", stats.words)
	fmt.Printf("Invalid words:           %d\n", stats.invalidWords)
	fmt.Printf("Invariant failures:      %d\n", stats.invariantFails)
	fmt.Printf("Non-diphthong nuclei:    %d\n", stats.comboFails)
	fmt.Printf("Invalid-word outliers:   %d\n", stats.invalidOutliers)
	fmt.Println()

	totalTokens := 0
	for _, count := range stats.tokenTypeCounts {
		totalTokens += count
	}
	fmt.Println("Token type distribution:")
	for tt := tokenizer.Word; tt <= tokenizer.Symbol; tt++ {
		printShare(tt.String(), stats.tokenTypeCounts[tt], totalTokens)
	}
	fmt.Println()

	analyzed := stats.words - stats.invalidWords
	fmt.Println("Stress type distribution:")
	for st := syllable.Oxytone; st <= syllable.Superproparoxytone; st++ {
		printShare(st.Spanish(), stats.stressTypeCounts[st], analyzed)
	}
}

func printShare(label string, count, total int) {
	percentage := 0.0
	if total > 0 {
		percentage = float64(count) / float64(total) * 100
	}
	fmt.Printf("  %-15s %d  (%.1f%%)\n", label+":", count, percentage)
}

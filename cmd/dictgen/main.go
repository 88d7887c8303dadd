// Command dictgen generates data/palabras.txt from a kaikki.org Spanish
// dictionary dump (JSONL format).
//
// Download the dump from https://kaikki.org/dictionary/Spanish/
// then run:
//
//	go run ./cmd/dictgen -input kaikki.org-dictionary-Spanish.jsonl
//
// Only single words that syllabify and have an indexable rhyme are kept.
// Output: data/palabras.txt (commit this file).
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"unicode"

	"github.com/az-ai-labs/silabas/rhymeindex"
	"github.com/az-ai-labs/silabas/syllable"
)

const (
	defaultInput   = "data/dictionary/kaikki.org-dictionary-Spanish.jsonl"
	defaultOutput  = "data/palabras.txt"
	scannerBufSize = 1 << 20 // 1 MB
	minWordRunes   = 2
	header         = "# Palabras comunes del español para sembrar el índice de rimas."
)

// kaikkiEntry holds only the fields needed from each JSONL line.
type kaikkiEntry struct {
	Word string `json:"word"`
	POS  string `json:"pos"`
}

type stats struct {
	entries  int
	skipped  int
	rejected int
	byStress [4]int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("dictgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	inputPath := fs.String("input", defaultInput, "path to kaikki.org JSONL dump")
	outputPath := fs.String("output", defaultOutput, "output path for palabras.txt")
	limit := fs.Int("limit", 0, "keep at most N words (0 = all)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *inputPath == "" {
		fmt.Fprintf(stderr, "Usage: dictgen -input <file> [-output <file>] [-limit N]\n")
		return 2
	}

	f, err := os.Open(*inputPath)
	if err != nil {
		fmt.Fprintf(stderr, "dictgen: open input: %v\n", err)
		return 1
	}
	words, st, err := collect(f)
	_ = f.Close()
	if err != nil {
		fmt.Fprintf(stderr, "dictgen: scan error: %v\n", err)
		return 1
	}
	if *limit > 0 && len(words) > *limit {
		words = words[:*limit]
	}

	if err := write(*outputPath, words); err != nil {
		fmt.Fprintf(stderr, "dictgen: %v\n", err)
		return 1
	}

	fmt.Fprintf(stderr, "Entries read: %d (skipped by POS: %d, rejected: %d)\n", st.entries, st.skipped, st.rejected)
	fmt.Fprintf(stderr, "Words written: %d\n", len(words))
	for t := syllable.Oxytone; t <= syllable.Superproparoxytone; t++ {
		fmt.Fprintf(stderr, "  %-14s %d\n", t.Spanish()+":", st.byStress[t])
	}
	fmt.Fprintf(stderr, "Output file: %s\n", *outputPath)
	return 0
}

// collect reads kaikki JSONL lines and returns the sorted, deduplicated
// set of acceptable words.
func collect(r io.Reader) ([]string, stats, error) {
	var st stats
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, scannerBufSize), scannerBufSize)

	seen := make(map[string]struct{})
	for scanner.Scan() {
		var entry kaikkiEntry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			continue
		}
		st.entries++
		if !keepPOS(entry.POS) {
			st.skipped++
			continue
		}

		word := rhymeindex.Normalize(entry.Word)
		if _, dup := seen[word]; dup {
			continue
		}
		if !isAcceptable(word) {
			st.rejected++
			continue
		}
		e, err := rhymeindex.NewEntry(word)
		if err != nil {
			st.rejected++
			continue
		}
		seen[word] = struct{}{}
		if int(e.StressType) < len(st.byStress) {
			st.byStress[e.StressType]++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, st, err
	}

	words := make([]string, 0, len(seen))
	for w := range seen {
		words = append(words, w)
	}
	slices.Sort(words)
	return words, st, nil
}

func write(path string, words []string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	w := bufio.NewWriter(out)
	fmt.Fprintln(w, header)
	for _, word := range words {
		fmt.Fprintln(w, word)
	}
	if err := w.Flush(); err != nil {
		_ = out.Close()
		return fmt.Errorf("flush: %w", err)
	}
	return out.Close()
}

// keepPOS reports whether entries with the kaikki POS tag belong in a
// rhyming word list.
func keepPOS(pos string) bool {
	switch pos {
	case "suffix", "prefix", "infix", "character", "symbol", "abbrev", "phrase", "proverb", "punct", "name":
		return false
	}
	return true
}

// isAcceptable rejects words with spaces, hyphens, digits or non-letter
// runes, and words shorter than minWordRunes.
func isAcceptable(word string) bool {
	n := 0
	for _, r := range word {
		n++
		if !unicode.IsLetter(r) || r > unicode.MaxLatin1 {
			return false
		}
	}
	return n >= minWordRunes && !strings.ContainsAny(word, "ªº")
}

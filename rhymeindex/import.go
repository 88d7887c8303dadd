package rhymeindex

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/az-ai-labs/silabas/tokenizer"
)

const (
	// DefaultWorkers is the analysis concurrency used when none is given.
	DefaultWorkers = 4

	// DefaultBatchSize is the number of words per insert transaction.
	// Ten columns per row keeps a full batch well under SQLite's
	// variable limit.
	DefaultBatchSize = 500

	// MaxBatchSize bounds ImportOptions.BatchSize.
	MaxBatchSize = 3000
)

// ImportOptions tunes a bulk import.
type ImportOptions struct {
	Workers   int
	BatchSize int
	Logger    *slog.Logger
}

// ImportStats summarizes a bulk import.
type ImportStats struct {
	Lines      int `json:"lines"`
	Words      int `json:"words"`
	Indexed    int `json:"indexed"`
	Duplicates int `json:"duplicates"`
	Invalid    int `json:"invalid"`
}

// Add indexes the given words and returns the number newly inserted.
func (s *Store) Add(ctx context.Context, words ...string) (int, error) {
	stats, err := s.Import(ctx, strings.NewReader(strings.Join(words, "\n")), ImportOptions{Workers: 1})
	return stats.Indexed, err
}

// Import reads r line by line and indexes every word it contains. Lines
// starting with "#" are comments. A line may hold several words;
// hyphenated compounds are indexed part by part. Words that cannot be
// analyzed are counted as invalid and skipped.
func (s *Store) Import(ctx context.Context, r io.Reader, opts ImportOptions) (ImportStats, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	batch := min(opts.BatchSize, MaxBatchSize)
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pool := NewWorkerPool(workers, workers*4)
	pool.Start(ctx)

	entries := make(chan Entry, workers*4)
	var (
		stats   ImportStats
		invalid atomic.Int64
		readErr error
		done    = make(chan struct{})
	)

	go func() {
		defer close(done)
		defer close(entries)
		defer pool.Close()
		stats.Lines, stats.Words, readErr = s.feed(ctx, r, pool, entries, &invalid, log)
	}()

	bw := newBatchWriter(s, batch)
	var writeErr error
	for e := range entries {
		if writeErr != nil {
			continue
		}
		if err := bw.add(ctx, e); err != nil {
			writeErr = err
			cancel()
		}
	}
	<-done
	if writeErr == nil {
		writeErr = bw.flush(ctx)
	}

	stats.Indexed = bw.inserted
	stats.Duplicates = bw.duplicates
	stats.Invalid = int(invalid.Load())

	switch {
	case writeErr != nil:
		return stats, writeErr
	case readErr != nil:
		return stats, readErr
	}
	if err := ctx.Err(); err != nil {
		return stats, err
	}
	log.Info("import finished",
		slog.Int("lines", stats.Lines),
		slog.Int("words", stats.Words),
		slog.Int("indexed", stats.Indexed),
		slog.Int("duplicates", stats.Duplicates),
		slog.Int("invalid", stats.Invalid),
	)
	return stats, nil
}

// feed scans r and submits one analysis job per word.
func (s *Store) feed(ctx context.Context, r io.Reader, pool *WorkerPool, out chan<- Entry, invalid *atomic.Int64, log *slog.Logger) (lines, words int, err error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, tok := range tokenizer.WordTokens(line) {
			if tok.Type != tokenizer.Word {
				continue
			}
			for _, part := range tokenizer.SplitHyphenated(tok) {
				if part.Text == "" {
					continue
				}
				words++
				word := part.Text
				err := pool.Submit(ctx, func(ctx context.Context) error {
					e, err := NewEntry(word)
					if err != nil {
						invalid.Add(1)
						log.Debug("skipping word", slog.String("word", word), slog.String("error", err.Error()))
						return err
					}
					select {
					case out <- e:
						return nil
					case <-ctx.Done():
						return ctx.Err()
					}
				})
				if err != nil {
					return lines, words, fmt.Errorf("submit %q: %w", word, err)
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return lines, words, fmt.Errorf("read words: %w", err)
	}
	return lines, words, nil
}

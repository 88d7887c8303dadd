package rhymeindex

import (
	"context"
	"fmt"
	"strings"
)

var wordColumns = []string{
	"word", "syllables", "syllable_count", "stress_index", "stress_type",
	"tail_len", "rhyme", "assonance_key", "rhyme_key", "tonic_vowel",
}

// batchWriter buffers entries and inserts them in one transaction per
// batch. It is used by a single goroutine.
type batchWriter struct {
	store      *Store
	size       int
	buf        []Entry
	inserted   int
	duplicates int
}

func newBatchWriter(s *Store, size int) *batchWriter {
	if size <= 0 {
		size = DefaultBatchSize
	}
	return &batchWriter{store: s, size: size, buf: make([]Entry, 0, size)}
}

// add buffers e and flushes when the buffer is full.
func (bw *batchWriter) add(ctx context.Context, e Entry) error {
	bw.buf = append(bw.buf, e)
	if len(bw.buf) >= bw.size {
		return bw.flush(ctx)
	}
	return nil
}

// flush writes the buffered entries. Words already in the index are
// counted as duplicates and left unchanged.
func (bw *batchWriter) flush(ctx context.Context) error {
	if len(bw.buf) == 0 {
		return nil
	}
	batch := bw.buf
	bw.buf = make([]Entry, 0, bw.size)

	insert := bw.store.sb.Insert("words").Columns(wordColumns...)
	for _, e := range batch {
		insert = insert.Values(
			e.Word, strings.Join(e.Syllables, "-"), len(e.Syllables), e.StressIndex,
			int(e.StressType), e.TailLen, e.Rhyme, e.AssonanceKey, e.RhymeKey, e.TonicVowel,
		)
	}
	query, args, err := insert.Suffix("ON CONFLICT (word) DO NOTHING").ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	tx, err := bw.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin batch tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // ignored if committed
	}()

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("insert batch (%d words): %w", len(batch), err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch (%d words): %w", len(batch), err)
	}
	bw.inserted += int(n)
	bw.duplicates += len(batch) - int(n)
	return nil
}

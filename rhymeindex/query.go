package rhymeindex

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/antzucaro/matchr"

	"github.com/az-ai-labs/silabas/syllable"
)

// maxNearCandidates bounds the rows scored by Near.
const maxNearCandidates = 5000

var selectColumns = []string{
	"id", "word", "syllables", "stress_index", "stress_type", "tail_len",
	"rhyme", "assonance_key", "rhyme_key", "tonic_vowel", "created_at",
}

// Lookup returns the entry for word, or ErrNotFound.
func (s *Store) Lookup(ctx context.Context, word string) (Entry, error) {
	q := s.sb.Select(selectColumns...).From("words").
		Where(sq.Eq{"word": Normalize(word)})
	entries, err := s.query(ctx, q)
	if err != nil {
		return Entry{}, err
	}
	if len(entries) == 0 {
		return Entry{}, fmt.Errorf("%w: %q", ErrNotFound, word)
	}
	return entries[0], nil
}

// Rhymes returns up to limit indexed words that rhyme with word under
// opts, in alphabetical order. The word itself is excluded. word does not
// need to be indexed.
func (s *Store) Rhymes(ctx context.Context, word string, opts syllable.RhymeOptions, limit int) ([]Entry, error) {
	w, key, err := queryWord(word)
	if err != nil {
		return nil, err
	}
	q := s.sb.Select(selectColumns...).From("words").
		Where(sq.Eq{"assonance_key": key.AssonanceKey, "tail_len": key.TailLen}).
		Where(sq.NotEq{"word": key.Word}).
		OrderBy("word")
	candidates, err := s.query(ctx, q)
	if err != nil {
		return nil, err
	}

	out := make([]Entry, 0)
	for _, c := range candidates {
		cw, err := syllable.Parse(c.Word)
		if err != nil {
			continue
		}
		if w.RhymesWithOptions(cw, opts) {
			out = append(out, c)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

// Assonances returns up to limit indexed words that assonate with word,
// in alphabetical order. The word itself is excluded.
func (s *Store) Assonances(ctx context.Context, word string, limit int) ([]Entry, error) {
	_, key, err := queryWord(word)
	if err != nil {
		return nil, err
	}
	q := s.sb.Select(selectColumns...).From("words").
		Where(sq.Eq{"assonance_key": key.AssonanceKey, "tail_len": key.TailLen}).
		Where(sq.NotEq{"word": key.Word}).
		OrderBy("word")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	return s.query(ctx, q)
}

// Near returns up to limit indexed words with the same stressed vowel as
// word, most similar rhyme first. Similarity is the Jaro-Winkler score of
// the accent-folded rhymes; ties are broken alphabetically.
func (s *Store) Near(ctx context.Context, word string, limit int) ([]Scored, error) {
	_, key, err := queryWord(word)
	if err != nil {
		return nil, err
	}
	q := s.sb.Select(selectColumns...).From("words").
		Where(sq.Eq{"tonic_vowel": key.TonicVowel}).
		Where(sq.NotEq{"word": key.Word}).
		Limit(maxNearCandidates)
	candidates, err := s.query(ctx, q)
	if err != nil {
		return nil, err
	}

	scored := make([]Scored, len(candidates))
	for i, c := range candidates {
		scored[i] = Scored{Entry: c, Score: matchr.JaroWinkler(key.RhymeKey, c.RhymeKey, false)}
	}
	slices.SortFunc(scored, func(a, b Scored) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return strings.Compare(a.Word, b.Word)
	})
	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}

// queryWord analyzes a query word the same way Import analyzes indexed ones.
func queryWord(word string) (syllable.Word, Entry, error) {
	w, err := syllable.Parse(Normalize(word))
	if err != nil {
		return syllable.Word{}, Entry{}, err
	}
	e, err := entryOf(w)
	if err != nil {
		return syllable.Word{}, Entry{}, err
	}
	return w, e, nil
}

func (s *Store) query(ctx context.Context, q sq.SelectBuilder) ([]Entry, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select words: %w", err)
	}
	defer rows.Close()

	out := make([]Entry, 0)
	for rows.Next() {
		var (
			e          Entry
			syls       string
			stressType int
		)
		if err := rows.Scan(&e.ID, &e.Word, &syls, &e.StressIndex, &stressType, &e.TailLen,
			&e.Rhyme, &e.AssonanceKey, &e.RhymeKey, &e.TonicVowel, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		e.Syllables = strings.Split(syls, "-")
		e.StressType = syllable.StressType(stressType)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate words: %w", err)
	}
	return out, nil
}

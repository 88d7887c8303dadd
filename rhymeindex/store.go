// Package rhymeindex stores analyzed Spanish words in SQLite and answers
// rhyme queries against them.
//
// Words are imported in bulk: a worker pool analyzes them with the
// syllable package and a single writer inserts them in batched
// transactions. Three lookups are offered:
//
//   - Rhymes: consonant rhymes. Candidates sharing the assonance key are
//     fetched in SQL and each is confirmed with syllable.Word.RhymesWithOptions.
//   - Assonances: words with the same stressed and post-stress vowels.
//   - Near: words with the same stressed vowel ranked by Jaro-Winkler
//     similarity of their rhymes.
//
// A Store is safe for concurrent use by multiple goroutines.
package rhymeindex

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// MemoryPath opens a private in-memory index.
const MemoryPath = ":memory:"

// Store is a rhyme index backed by SQLite.
type Store struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

// Open opens the SQLite database at path and applies pending migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}
	if path == MemoryPath {
		// Each connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping index: %w", err)
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}, nil
}

func dsn(path string) string {
	if path == MemoryPath {
		return path
	}
	return "file:" + path + "?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on"
}

func migrate(ctx context.Context, db *sql.DB) error {
	dir, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, dir)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Count returns the number of indexed words.
func (s *Store) Count(ctx context.Context) (int, error) {
	query, args, err := s.sb.Select("COUNT(*)").From("words").ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}
	var n int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	return n, nil
}

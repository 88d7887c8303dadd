package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/az-ai-labs/silabas/data"
	"github.com/az-ai-labs/silabas/internal/config"
	"github.com/az-ai-labs/silabas/rhymeindex"
	"github.com/az-ai-labs/silabas/syllable"
)

// loadConfig reads the shared configuration. A missing config file is not
// an error for the command-line tool.
func loadConfig() (*config.Config, error) {
	return config.Load()
}

func rhymeDefaults() (syllable.RhymeOptions, error) {
	cfg, err := loadConfig()
	if err != nil {
		return syllable.RhymeOptions{}, err
	}
	return cfg.Rhyme.Options(), nil
}

func (c *cli) index(args []string) int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(c.stderr, "silabas: %v\n", err)
		return exitFail
	}
	fs := c.flagSet("index")
	dbPath := fs.String("db", cfg.Index.Path, "path to the SQLite rhyme index")
	workers := fs.Int("workers", cfg.Index.Workers, "number of analysis workers")
	batch := fs.Int("batch", cfg.Index.BatchSize, "words per insert transaction")
	seed := fs.Bool("seed", false, "import the embedded seed word list")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if *dbPath == "" {
		fmt.Fprintln(c.stderr, "silabas index: -db is required")
		return exitUsage
	}
	if !*seed && fs.NArg() != 1 {
		fmt.Fprintln(c.stderr, "silabas index: a word list file (or - for stdin) or -seed is required")
		return exitUsage
	}

	logger := slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	store, err := rhymeindex.Open(c.ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(c.stderr, "silabas: %v\n", err)
		return exitFail
	}
	defer store.Close()

	var sources []io.Reader
	if *seed {
		sources = append(sources, strings.NewReader(data.Palabras))
	}
	if fs.NArg() == 1 {
		r, closeFn, err := c.openInput(fs.Arg(0))
		if err != nil {
			fmt.Fprintf(c.stderr, "silabas: %v\n", err)
			return exitFail
		}
		defer closeFn()
		sources = append(sources, r)
	}

	stats, err := store.Import(c.ctx, io.MultiReader(sources...), rhymeindex.ImportOptions{
		Workers:   *workers,
		BatchSize: *batch,
		Logger:    logger,
	})
	if err != nil {
		fmt.Fprintf(c.stderr, "silabas: import: %v\n", err)
		return exitFail
	}
	fmt.Fprintf(c.stdout, "words: %d  indexed: %d  duplicates: %d  invalid: %d\n",
		stats.Words, stats.Indexed, stats.Duplicates, stats.Invalid)
	return exitOK
}

func (c *cli) openInput(name string) (io.Reader, func(), error) {
	if name == "-" {
		return c.stdin, func() {}, nil
	}
	f, err := os.Open(filepath.Clean(name))
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func (c *cli) query(args []string) int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(c.stderr, "silabas: %v\n", err)
		return exitFail
	}
	opts := cfg.Rhyme.Options()
	fs := c.flagSet("query")
	dbPath := fs.String("db", cfg.Index.Path, "path to the SQLite rhyme index")
	assonant := fs.Bool("assonant", false, "list assonant rhymes")
	near := fs.Bool("near", false, "list near rhymes ranked by similarity")
	limit := fs.Int("limit", cfg.Index.DefaultLimit, "maximum number of results")
	fs.BoolVar(&opts.Seseo, "seseo", opts.Seseo, "treat s, z and soft c as the same sound")
	fs.BoolVar(&opts.Yeismo, "yeismo", opts.Yeismo, "treat y and ll as the same sound")
	fs.BoolVar(&opts.BEqualsV, "bv", opts.BEqualsV, "treat b and v as the same sound")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if *dbPath == "" || fs.NArg() != 1 || (*assonant && *near) {
		fmt.Fprintln(c.stderr, "silabas query: -db and one word are required; -assonant and -near are exclusive")
		return exitUsage
	}
	if _, err := os.Stat(*dbPath); *dbPath != rhymeindex.MemoryPath && errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(c.stderr, "silabas: index %s does not exist\n", *dbPath)
		return exitFail
	}

	store, err := rhymeindex.Open(c.ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(c.stderr, "silabas: %v\n", err)
		return exitFail
	}
	defer store.Close()

	word := fs.Arg(0)
	switch {
	case *near:
		scored, err := store.Near(c.ctx, word, *limit)
		if err != nil {
			fmt.Fprintf(c.stderr, "silabas: %v\n", err)
			return exitFail
		}
		for _, s := range scored {
			fmt.Fprintf(c.stdout, "%s\t%.3f\n", s.Word, s.Score)
		}
		return exitOK
	case *assonant:
		entries, err := store.Assonances(c.ctx, word, *limit)
		return c.printEntries(entries, err)
	default:
		entries, err := store.Rhymes(c.ctx, word, opts, *limit)
		return c.printEntries(entries, err)
	}
}

func (c *cli) printEntries(entries []rhymeindex.Entry, err error) int {
	if err != nil {
		fmt.Fprintf(c.stderr, "silabas: %v\n", err)
		return exitFail
	}
	for _, e := range entries {
		fmt.Fprintln(c.stdout, e.Word)
	}
	return exitOK
}

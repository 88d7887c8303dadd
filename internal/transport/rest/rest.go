// Package rest serves the syllable analyzer and the rhyme index as a JSON
// HTTP API.
//
// Endpoints:
//
//	GET  /api/syllabize?word=<word>
//	POST /api/syllabize/text              body: {"text":"..."}
//	GET  /api/rhymes?a=<word>&b=<word>[&seseo=&yeismo=&bv=&assonant=]
//	GET  /api/index/rhymes?word=<word>[&mode=consonant|assonant|near][&limit=]
//	GET  /health
//	GET  /ready
//
// Errors are returned as {"error": "..."}.
package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/az-ai-labs/silabas/rhymeindex"
	"github.com/az-ai-labs/silabas/syllable"
)

// RhymeIndex is the subset of *rhymeindex.Store used by the API.
type RhymeIndex interface {
	Ping(ctx context.Context) error
	Rhymes(ctx context.Context, word string, opts syllable.RhymeOptions, limit int) ([]rhymeindex.Entry, error)
	Assonances(ctx context.Context, word string, limit int) ([]rhymeindex.Entry, error)
	Near(ctx context.Context, word string, limit int) ([]rhymeindex.Scored, error)
}

// Options configures a Handler.
type Options struct {
	// Index may be nil, in which case the index endpoints answer 503.
	Index        RhymeIndex
	Rhyme        syllable.RhymeOptions
	DefaultLimit int
	MaxLimit     int
	MaxBodyBytes int64
	Version      string
	Logger       *slog.Logger
}

// Handler serves the API.
type Handler struct {
	opts Options
	log  *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(opts Options) *Handler {
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = 20
	}
	if opts.MaxLimit < opts.DefaultLimit {
		opts.MaxLimit = opts.DefaultLimit
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 1 << 20
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Handler{opts: opts, log: log}
}

// Routes returns the API mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/syllabize", h.Syllabize)
	mux.HandleFunc("POST /api/syllabize/text", h.SyllabizeText)
	mux.HandleFunc("GET /api/rhymes", h.Rhymes)
	mux.HandleFunc("GET /api/index/rhymes", h.IndexRhymes)

	health := NewHealthHandler(h.opts.Index, h.opts.Version)
	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /ready", health.Ready)
	return mux
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/az-ai-labs/silabas/rhymeindex"
	"github.com/az-ai-labs/silabas/syllable"
)

// Lookup modes of /api/index/rhymes.
const (
	modeConsonant = "consonant"
	modeAssonant  = "assonant"
	modeNear      = "near"
)

type indexResponse struct {
	Word    string `json:"word"`
	Mode    string `json:"mode"`
	Results any    `json:"results"`
}

// IndexRhymes looks a word up in the rhyme index.
func (h *Handler) IndexRhymes(w http.ResponseWriter, r *http.Request) {
	if h.opts.Index == nil {
		writeError(w, http.StatusServiceUnavailable, "rhyme index disabled")
		return
	}
	q := r.URL.Query()
	word := q.Get("word")
	if word == "" {
		writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
		return
	}
	limit := h.opts.DefaultLimit
	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid 'limit' parameter")
			return
		}
		limit = min(n, h.opts.MaxLimit)
	}
	mode := q.Get("mode")
	if mode == "" {
		mode = modeConsonant
	}

	var (
		results any
		err     error
	)
	switch mode {
	case modeConsonant:
		results, err = h.opts.Index.Rhymes(r.Context(), word, h.opts.Rhyme, limit)
	case modeAssonant:
		results, err = h.opts.Index.Assonances(r.Context(), word, limit)
	case modeNear:
		results, err = h.opts.Index.Near(r.Context(), word, limit)
	default:
		writeError(w, http.StatusBadRequest, "mode must be consonant, assonant or near")
		return
	}
	switch {
	case errors.Is(err, syllable.ErrInvalidWord), errors.Is(err, rhymeindex.ErrUnindexable):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		h.log.ErrorContext(r.Context(), "index lookup failed",
			"word", word, "mode", mode, "error", err)
		writeError(w, http.StatusInternalServerError, "index lookup failed")
		return
	}
	writeJSON(w, http.StatusOK, indexResponse{Word: word, Mode: mode, Results: results})
}

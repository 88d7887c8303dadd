package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/az-ai-labs/silabas/internal/analysis"
	"github.com/az-ai-labs/silabas/internal/escase"
	"github.com/az-ai-labs/silabas/syllable"
)

type textRequest struct {
	Text string `json:"text"`
}

type textResponse struct {
	Text    string            `json:"text"`
	Results []analysis.Result `json:"results"`
}

type rhymeResponse struct {
	A        analysis.Result       `json:"a"`
	B        analysis.Result       `json:"b"`
	Assonant bool                  `json:"assonant"`
	Options  syllable.RhymeOptions `json:"options"`
	Rhymes   bool                  `json:"rhymes"`
}

// Syllabize analyzes one word.
func (h *Handler) Syllabize(w http.ResponseWriter, r *http.Request) {
	word := r.URL.Query().Get("word")
	if word == "" {
		writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
		return
	}
	res := analysis.Analyze(word)
	switch {
	case res.Error != "":
		writeError(w, http.StatusUnprocessableEntity, res.Error)
		return
	case res.CombosError != "":
		h.log.ErrorContext(r.Context(), "vowel combos failed", "word", word, "error", res.CombosError)
		writeError(w, http.StatusInternalServerError, res.CombosError)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// SyllabizeText analyzes every word of a text. Per-word failures are
// reported in each result, not as an error status.
func (h *Handler) SyllabizeText(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxBodyBytes)
	var req textRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	composed, results := analysis.Text(req.Text)
	if results == nil {
		results = []analysis.Result{}
	}
	writeJSON(w, http.StatusOK, textResponse{Text: composed, Results: results})
}

// Rhymes compares two words.
func (h *Handler) Rhymes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	a, b := q.Get("a"), q.Get("b")
	if a == "" || b == "" {
		writeError(w, http.StatusBadRequest, "missing 'a' or 'b' query parameter")
		return
	}

	opts := h.opts.Rhyme
	var err error
	if opts.Seseo, err = boolParam(q.Get("seseo"), opts.Seseo); err != nil {
		writeError(w, http.StatusBadRequest, "invalid 'seseo' parameter")
		return
	}
	if opts.Yeismo, err = boolParam(q.Get("yeismo"), opts.Yeismo); err != nil {
		writeError(w, http.StatusBadRequest, "invalid 'yeismo' parameter")
		return
	}
	if opts.BEqualsV, err = boolParam(q.Get("bv"), opts.BEqualsV); err != nil {
		writeError(w, http.StatusBadRequest, "invalid 'bv' parameter")
		return
	}
	assonant, err := boolParam(q.Get("assonant"), false)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid 'assonant' parameter")
		return
	}

	wa, err := syllable.Parse(escase.ComposeNFC(a))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	wb, err := syllable.Parse(escase.ComposeNFC(b))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	resp := rhymeResponse{
		A:        analysis.Analyze(a),
		B:        analysis.Analyze(b),
		Assonant: assonant,
		Options:  opts,
	}
	if assonant {
		resp.Rhymes = wa.AssonantRhymesWith(wb)
	} else {
		resp.Rhymes = wa.RhymesWithOptions(wb, opts)
	}
	writeJSON(w, http.StatusOK, resp)
}

func boolParam(s string, def bool) (bool, error) {
	if s == "" {
		return def, nil
	}
	return strconv.ParseBool(s)
}

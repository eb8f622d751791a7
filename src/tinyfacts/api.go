package tinyfacts

import (
	"encoding/json"
	"log"
	"net/http"
	"sort"

	"github.com/rs/cors"

	"github.com/tinyfacts/tinyfacts/src/wordforms"
)

// defaultContextRadius is the context window used when a check request does
// not ask for one.
const defaultContextRadius = 2

type checkRequest struct {
	Text          string `json:"text"`
	ContextRadius *int   `json:"context_radius,omitempty"`
}

type checkResponse struct {
	WordCount    int           `json:"word_count"`
	Valid        bool          `json:"valid"`
	InvalidWords []InvalidWord `json:"invalid_words"`
}

type lookupResponse struct {
	Form string `json:"form"`
	Base string `json:"base"`
	Tag  string `json:"tag,omitempty"`
}

type completeResponse struct {
	Prefix string `json:"prefix"`
	Found  bool   `json:"found"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewAPIHandler serves the word checker over HTTP for the generation
// correction loop and other callers:
//
//	POST /api/check     body: {"text":"...","context_radius":2}
//	GET  /api/lookup?form=<word>
//	GET  /api/allowed
//	GET  /api/complete?prefix=<p>
func NewAPIHandler(words *wordforms.Handle) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/check", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var req checkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "could not parse request body")
			return
		}
		radius := defaultContextRadius
		if req.ContextRadius != nil {
			if *req.ContextRadius < 0 {
				writeError(w, http.StatusBadRequest, "context_radius must be >= 0")
				return
			}
			radius = *req.ContextRadius
		}
		dict := words.Dictionary()
		tokens := SplitWords(req.Text)
		invalid := CheckWordsContext(dict, tokens, radius)
		writeJSON(w, checkResponse{
			WordCount:    len(tokens),
			Valid:        len(invalid) == 0,
			InvalidWords: invalid,
		})
	})

	mux.HandleFunc("/api/lookup", func(w http.ResponseWriter, r *http.Request) {
		form := r.URL.Query().Get("form")
		if form == "" {
			writeError(w, http.StatusBadRequest, "missing form parameter")
			return
		}
		tw, ok := words.Dictionary().Lookup(form)
		if !ok {
			writeError(w, http.StatusNotFound, "unknown surface form")
			return
		}
		resp := lookupResponse{Form: form, Base: tw.Base}
		if tw.Tag != wordforms.TagBase {
			resp.Tag = tw.Tag.String()
		}
		writeJSON(w, resp)
	})

	mux.HandleFunc("/api/allowed", func(w http.ResponseWriter, r *http.Request) {
		allowed := words.Dictionary().AllowedWords()
		list := make([]string, 0, len(allowed))
		for word := range allowed {
			list = append(list, word)
		}
		sort.Strings(list)
		writeJSON(w, list)
	})

	mux.HandleFunc("/api/complete", func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			writeError(w, http.StatusBadRequest, "missing prefix parameter")
			return
		}
		writeJSON(w, completeResponse{
			Prefix: prefix,
			Found:  words.Dictionary().HasPrefix(prefix),
		})
	})

	return cors.Default().Handler(mux)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("could not write response,", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: msg})
}

// Command glost-tagger exposes the built-in tagger as a JSON REST API,
// so the conversion pipeline runs without an external NLP bridge.
//
// Endpoints:
//
//	POST /api/annotate    body: {"text":"...","language":"en"}
//	GET  /api/languages
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"log"
	"net/http"
	"sort"
	"sync"

	"github.com/revelaction/glost/annotate"

	"github.com/rs/cors"
)

// ---- JSON types ---------------------------------------------------------

type annotateRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type annotateResponse struct {
	Tokens []annotate.Token `json:"tokens"`
	Error  string           `json:"error,omitempty"`
}

type languagesResponse struct {
	Languages []string `json:"languages"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// taggers caches one tagger per language code.
type taggers struct {
	mu    sync.Mutex
	cache map[string]*annotate.Tagger
}

func (t *taggers) get(language string) (*annotate.Tagger, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if tagger, ok := t.cache[language]; ok {
		return tagger, nil
	}
	tagger, err := annotate.NewTagger(language)
	if err != nil {
		return nil, err
	}
	t.cache[language] = tagger
	return tagger, nil
}

// ---- handlers -----------------------------------------------------------

func handleAnnotate(t *taggers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}

		var req annotateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Language == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with 'text' and 'language' fields")
			return
		}

		tagger, err := t.get(req.Language)
		if err != nil {
			if errors.Is(err, annotate.ErrUnsupportedLanguage) {
				writeError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		tokens, err := tagger.Annotate(req.Text, req.Language)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, annotateResponse{Tokens: tokens})
	}
}

func handleLanguages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		langs := annotate.Languages()
		sort.Strings(langs)
		writeJSON(w, http.StatusOK, languagesResponse{Languages: langs})
	}
}

// ---- main ---------------------------------------------------------------

func main() {
	addr := flag.String("addr", ":8090", "listen address")
	flag.Parse()

	t := &taggers{cache: map[string]*annotate.Tagger{}}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/annotate", handleAnnotate(t))
	mux.HandleFunc("/api/languages", handleLanguages())

	handler := cors.Default().Handler(mux)

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

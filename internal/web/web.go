// Package web serves dictionary entries and compound decompositions over
// HTTP.
package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"

	"github.com/npillmayer/lujvo"
	"github.com/npillmayer/lujvo/dictionary"
	"github.com/npillmayer/lujvo/etag"
	"github.com/npillmayer/lujvo/linker"
	"github.com/npillmayer/lujvo/texhtml"
)

func tracer() tracing.Trace {
	return tracing.Select("lujvo.web")
}

const (
	defaultMaxDistance = 2
	maxMaxDistance     = 3
	maxCompoundBytes   = 64
)

// Options configure a Server.
type Options struct {
	CacheSize int
	BaseURL   string
	Debug     bool
}

// Server answers entry pages and the JSON API from one dictionary.
type Server struct {
	dict  *dictionary.Dictionary
	links *linker.Linker
	cache *lru.Cache[string, Decomposition]
	debug bool
}

// Decomposition is the JSON answer for a compound.
type Decomposition struct {
	Compound string   `json:"compound"`
	Affixes  []string `json:"affixes"`
	HTML     string   `json:"html"`
}

// New creates a server. CacheSize bounds the number of cached decompositions.
func New(dict *dictionary.Dictionary, opts Options) (*Server, error) {
	cache, err := lru.New[string, Decomposition](opts.CacheSize)
	if err != nil {
		return nil, err
	}
	return &Server{
		dict:  dict,
		links: linker.New(rendered{dict}, opts.BaseURL),
		cache: cache,
		debug: opts.Debug,
	}, nil
}

// rendered hands out definitions as HTML.
type rendered struct {
	dict *dictionary.Dictionary
}

func (r rendered) Definition(word string) (string, bool) {
	def, ok := r.dict.Definition(word)
	if !ok {
		return "", false
	}
	return texhtml.ToHTML(def), true
}

func (r rendered) WordForRafsi(rafsi string) (string, bool) {
	return r.dict.WordForRafsi(rafsi)
}

// Handler returns the routes, tagged with the dictionary version.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /entry/{word}", s.handleEntry)
	mux.HandleFunc("GET /api/decompose", s.handleDecompose)
	mux.HandleFunc("GET /api/suggest", s.handleSuggest)
	return etag.Middleware(s.dict.ETag(), s.debug)(mux)
}

func (s *Server) handleEntry(w http.ResponseWriter, r *http.Request) {
	word := strings.TrimSpace(r.PathValue("word"))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	entry, ok := s.dict.Lookup(word)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprintf(w, "<p class=\"notfound\">%s is not in the dictionary.</p>\n", html.EscapeString(word))
		if suggestions := s.dict.Suggest(word, defaultMaxDistance); len(suggestions) > 0 {
			fmt.Fprint(w, "<p>Did you mean:</p>\n<ul class=\"suggestions\">\n")
			for _, sg := range suggestions {
				fmt.Fprintf(w, "<li><a href=\"%[1]s\">%[1]s</a></li>\n", html.EscapeString(sg.Word))
			}
			fmt.Fprint(w, "</ul>\n")
		}
		return
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "<h1>%s</h1>\n", html.EscapeString(entry.Word))
	if entry.Type != "" {
		fmt.Fprintf(&sb, "<p class=\"type\">%s</p>\n", html.EscapeString(entry.Type))
	}
	if len(entry.Rafsi) > 0 {
		fmt.Fprintf(&sb, "<p class=\"rafsi\">%s</p>\n", html.EscapeString(strings.Join(entry.Rafsi, " ")))
	}
	if affixes := s.links.Compound(entry.Word); affixes != entry.Word {
		fmt.Fprintf(&sb, "<p class=\"affixes\">%s</p>\n", affixes)
	}
	fmt.Fprintf(&sb, "<p class=\"definition\">%s</p>\n", s.links.Braces(texhtml.ToHTML(entry.Definition)))
	if entry.Notes != "" {
		fmt.Fprintf(&sb, "<p class=\"notes\">%s</p>\n", s.links.Braces(texhtml.ToHTML(entry.Notes)))
	}
	_, _ = w.Write([]byte(sb.String()))
}

func (s *Server) handleDecompose(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("compound")
	if len(raw) > maxCompoundBytes {
		writeError(w, http.StatusBadRequest, "compound too long")
		return
	}
	compound, ok := lujvo.Canonical(raw)
	if !ok {
		writeError(w, http.StatusBadRequest, "compound must consist of Lojban letters only")
		return
	}
	writeJSON(w, http.StatusOK, s.Decompose(compound))
}

// Decompose decomposes and links a canonical compound, consulting the cache
// first.
func (s *Server) Decompose(compound string) Decomposition {
	if d, ok := s.cache.Get(compound); ok {
		return d
	}
	affixes := lujvo.Decompose(compound)
	if affixes == nil {
		affixes = []string{}
	}
	d := Decomposition{
		Compound: compound,
		Affixes:  affixes,
		HTML:     s.links.Compound(compound),
	}
	s.cache.Add(compound, d)
	tracer().Debugf("decomposed %q into %v", compound, affixes)
	return d
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeError(w, http.StatusBadRequest, "q is required")
		return
	}
	maxDist := defaultMaxDistance
	if v := r.URL.Query().Get("max"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxMaxDistance {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("max must be between 1 and %d", maxMaxDistance))
			return
		}
		maxDist = n
	}
	type suggestion struct {
		Word     string `json:"word"`
		Distance int    `json:"distance"`
	}
	out := []suggestion{}
	for _, sg := range s.dict.Suggest(q, maxDist) {
		out = append(out, suggestion{Word: sg.Word, Distance: sg.Distance})
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		tracer().Errorf("encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

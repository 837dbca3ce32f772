package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/friendly"
	"github.com/aretw0/friendly/pkg/docs"
)

// Server serves the reference documentation an engine was built with.
type Server struct {
	Engine *friendly.Engine
	// Gatherer backs /metrics. Nil disables the endpoint.
	Gatherer prometheus.Gatherer
}

// ClassSummary is one entry of GET /classes.
type ClassSummary struct {
	Name    string `json:"name"`
	Members int    `json:"members"`
	Proxied bool   `json:"proxied"`
}

// MemberSummary is one entry of GET /classes/{class}.
type MemberSummary struct {
	Name        string `json:"name"`
	ItemType    string `json:"itemtype,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
}

// MemberDetail is the body of GET /classes/{class}/{member}.
type MemberDetail struct {
	Item docs.ClassItem `json:"item"`
	Help string         `json:"help"`
	URL  string         `json:"url"`
}

// NewHandler creates the HTTP handler for the reference server.
func NewHandler(s *Server) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/classes", s.ListClasses)
	r.Get("/classes/{class}", s.GetClass)
	r.Get("/classes/{class}/{member}", s.GetMember)
	r.Get("/lint", s.GetLint)
	r.Get("/report", s.GetReport)
	if s.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"app":       "friendly-http",
		"version":   friendly.Version,
		"namespace": s.Engine.Namespace().Name(),
	})
}

// ListClasses handles the GET /classes request.
func (s *Server) ListClasses(w http.ResponseWriter, r *http.Request) {
	classes := s.Engine.Docs()
	proxied := make(map[string]bool)
	for _, name := range s.Engine.Report().Proxied {
		proxied[name] = true
	}

	out := make([]ClassSummary, 0, len(classes.ClassNames()))
	for _, name := range classes.ClassNames() {
		out = append(out, ClassSummary{
			Name:    name,
			Members: len(memberNames(classes, name)),
			Proxied: proxied[name],
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// GetClass handles the GET /classes/{class} request.
func (s *Server) GetClass(w http.ResponseWriter, r *http.Request) {
	class := chi.URLParam(r, "class")
	classes := s.Engine.Docs()
	if !classes.HasClass(class) {
		http.Error(w, fmt.Sprintf("unknown class %q", class), http.StatusNotFound)
		return
	}

	ref := s.Engine.Reference()
	var out []MemberSummary
	for _, name := range memberNames(classes, class) {
		item, _ := classes.Lookup(class, name)
		out = append(out, MemberSummary{
			Name:        item.Name,
			ItemType:    item.ItemType,
			Description: item.Description,
			URL:         ref.URL(item),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// GetMember handles the GET /classes/{class}/{member} request.
func (s *Server) GetMember(w http.ResponseWriter, r *http.Request) {
	class := chi.URLParam(r, "class")
	member := chi.URLParam(r, "member")

	item, ok := s.Engine.Docs().Lookup(class, member)
	if !ok {
		http.Error(w, fmt.Sprintf("no reference for %s.%s", class, member), http.StatusNotFound)
		return
	}
	ref := s.Engine.Reference()
	writeJSON(w, http.StatusOK, MemberDetail{Item: item, Help: ref.Help(item), URL: ref.URL(item)})
}

// GetLint handles the GET /lint request.
func (s *Server) GetLint(w http.ResponseWriter, r *http.Request) {
	diags := docs.Lint(s.Engine.Docs(), s.Engine.Namespace().Name())
	if diags == nil {
		diags = []docs.Diagnostic{}
	}
	writeJSON(w, http.StatusOK, diags)
}

// GetReport handles the GET /report request.
func (s *Server) GetReport(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Engine.Report())
}

func memberNames(classes *docs.Registry, class string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, item := range classes.Members(class) {
		if !seen[item.Name] {
			seen[item.Name] = true
			names = append(names, item.Name)
		}
	}
	sort.Strings(names)
	return names
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Printf("encode error: %v\n", err)
	}
}

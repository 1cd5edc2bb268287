// Package schedule exposes archived planning runs over a read-only HTTP API.
package schedule

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Abeljo/ECO-SCHEDULER/core/archive"
)

// Options configures the router middleware.
type Options struct {
	AllowedOrigins []string
	// Token, when non-empty, requires "Bearer <token>" authorization.
	Token string
}

// Handler serves scheduling data from the run archive.
type Handler struct {
	store archive.RunStore
}

// NewRouter builds the chi router over the archive store.
func NewRouter(store archive.RunStore, opts Options) *chi.Mux {
	h := &Handler{store: store}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	if opts.Token != "" {
		r.Use(bearerAuth(opts.Token))
	}
	r.Route("/api", func(r chi.Router) {
		r.Get("/runs", h.ListRuns)
		r.Get("/schedule", h.LatestSchedule)
		r.Get("/summary", h.LatestSummary)
		r.Get("/violations", h.LatestViolations)
	})
	return r
}

func bearerAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer "+token {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ListRuns returns archived runs, filterable by start, end, year and month.
func (h *Handler) ListRuns(w http.ResponseWriter, r *http.Request) {
	q := archive.Query{}
	if s := r.URL.Query().Get("start"); s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			q.Start = t
		}
	}
	if s := r.URL.Query().Get("end"); s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			q.End = t
		}
	}
	if s := r.URL.Query().Get("year"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			q.Year = v
		}
	}
	if s := r.URL.Query().Get("month"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			q.Month = time.Month(v)
		}
	}
	runs, err := h.store.Query(r.Context(), q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, runs)
}

func (h *Handler) latest(w http.ResponseWriter, r *http.Request) (archive.RunRecord, bool) {
	runs, err := h.store.Query(r.Context(), archive.Query{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return archive.RunRecord{}, false
	}
	if len(runs) == 0 {
		http.Error(w, "no archived runs", http.StatusNotFound)
		return archive.RunRecord{}, false
	}
	latest := runs[0]
	for _, rec := range runs[1:] {
		if rec.CreatedAt.After(latest.CreatedAt) {
			latest = rec
		}
	}
	return latest, true
}

// LatestSchedule returns the visit list of the most recent run.
func (h *Handler) LatestSchedule(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.latest(w, r)
	if !ok {
		return
	}
	writeJSON(w, map[string]any{
		"id":     rec.ID,
		"year":   rec.Year,
		"month":  rec.Month,
		"visits": rec.Visits,
	})
}

// LatestSummary returns the summary of the most recent run.
func (h *Handler) LatestSummary(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.latest(w, r)
	if !ok {
		return
	}
	writeJSON(w, rec.Summary)
}

// LatestViolations returns the violation list of the most recent run.
func (h *Handler) LatestViolations(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.latest(w, r)
	if !ok {
		return
	}
	writeJSON(w, rec.Violations)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

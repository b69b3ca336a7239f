package server

import (
	"encoding/json"
	"net/http"

	"owlplanner/internal/catalog"
	"owlplanner/internal/logger"
)

// Server exposes the catalog and the schedule planner as a JSON API.
type Server struct {
	store *catalog.Store
	log   logger.Logger
	// Request-level search budgets applied to every planning request;
	// zero values mean unbounded
	maxResults  int
	timeLimitMs int
}

func New(store *catalog.Store, log logger.Logger, maxResults, timeLimitMs int) *Server {
	return &Server{
		store:       store,
		log:         log,
		maxResults:  maxResults,
		timeLimitMs: timeLimitMs,
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/subjects", s.handleSubjects)
	mux.HandleFunc("GET /api/courses", s.handleCourses)
	mux.HandleFunc("POST /api/refresh", s.handleRefresh)
	mux.HandleFunc("POST /api/schedules", s.handleSchedules)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

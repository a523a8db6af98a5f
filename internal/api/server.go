// Package api exposes the repository, importer and auth service over HTTP
// for the web frontend.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ananyadwivedi1010/TUF-Flash/internal/aisync"
	"github.com/ananyadwivedi1010/TUF-Flash/internal/auth"
	"github.com/ananyadwivedi1010/TUF-Flash/internal/logging"
	"github.com/ananyadwivedi1010/TUF-Flash/internal/repository"
)

// Server handles HTTP requests for the flashcard backend.
type Server struct {
	repo     *repository.Repository
	importer *aisync.Importer
	auth     *auth.Service
	log      logging.Logger
	addr     string
}

// New creates an API server. importer and authSvc may be nil, in which case
// the corresponding endpoints report 503.
func New(repo *repository.Repository, importer *aisync.Importer, authSvc *auth.Service, log logging.Logger, addr string) *Server {
	if log == nil {
		log = logging.Nop()
	}
	return &Server{
		repo:     repo,
		importer: importer,
		auth:     authSvc,
		log:      log.With("component", "api"),
		addr:     addr,
	}
}

// Router builds the route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", s.handleHealth).Methods("GET")

	r.HandleFunc("/categories", s.handleListCategories).Methods("GET")
	r.HandleFunc("/categories", s.handleAddCategory).Methods("POST")
	r.HandleFunc("/categories/{id}", s.handleRenameCategory).Methods("PUT")
	r.HandleFunc("/categories/{id}", s.handleDeleteCategory).Methods("DELETE")
	r.HandleFunc("/categories/{id}/cards", s.handleListByCategory).Methods("GET")

	r.HandleFunc("/cards", s.handleListCards).Methods("GET")
	r.HandleFunc("/cards", s.handleAddCard).Methods("POST")
	r.HandleFunc("/cards/{id}", s.handleUpdateCard).Methods("PUT")
	r.HandleFunc("/cards/{id}", s.handleDeleteCard).Methods("DELETE")
	r.HandleFunc("/cards/{id}/flip", s.handleFlipCard).Methods("POST")

	r.HandleFunc("/active", s.handleGetActive).Methods("GET")
	r.HandleFunc("/active", s.handleSetActive).Methods("PUT")

	r.HandleFunc("/sync", s.handleSync).Methods("POST")

	r.HandleFunc("/auth/signup", s.handleSignUp).Methods("POST")
	r.HandleFunc("/auth/signin", s.handleSignIn).Methods("POST")
	r.HandleFunc("/auth/signout", s.handleSignOut).Methods("POST")
	r.HandleFunc("/auth/me", s.handleMe).Methods("GET")

	return r
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	s.log.Info(context.Background(), "starting server", "addr", s.addr)
	return http.ListenAndServe(s.addr, withCORS(s.Router()))
}

// withCORS adds CORS headers for the SPA frontend.
func withCORS(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		h.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

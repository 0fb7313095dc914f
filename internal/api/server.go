// Package api provides the REST API server for difflab.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/RahilKothari9/difflab/internal/snippet"
	"github.com/RahilKothari9/difflab/internal/user"
	"github.com/RahilKothari9/difflab/pkg/notify"
)

// Server holds the dependencies for the API.
type Server struct {
	userStore    *user.Store
	snippetStore *snippet.Store
	notifier     notify.Notifier
	jwtSecret    []byte
	logger       *slog.Logger
}

// NewServer creates a new API Server instance. notifier may be nil when no
// webhook is configured.
func NewServer(uStore *user.Store, sStore *snippet.Store, notifier notify.Notifier, jwtSecret string) *Server {
	return &Server{
		userStore:    uStore,
		snippetStore: sStore,
		notifier:     notifier,
		jwtSecret:    []byte(jwtSecret),
		logger:       slog.Default(),
	}
}

// Routes returns the configured http.Handler for the API.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	// Auth routes (public)
	mux.HandleFunc("POST /api/auth/register", s.handleRegister())
	mux.HandleFunc("POST /api/auth/login", s.handleLogin())

	// Stateless diff utility (public: touches no user data)
	mux.HandleFunc("POST /api/diff", s.handleDiff())

	// Snippets (require JWT)
	mux.Handle("POST /api/snippets", s.requireAuth(http.HandlerFunc(s.handleCreateSnippet())))
	mux.Handle("GET /api/snippets", s.requireAuth(http.HandlerFunc(s.handleListSnippets())))
	mux.Handle("GET /api/snippets/{id}", s.requireAuth(http.HandlerFunc(s.handleGetSnippet())))
	mux.Handle("POST /api/snippets/{id}/versions", s.requireAuth(http.HandlerFunc(s.handleSaveVersion())))
	mux.Handle("GET /api/snippets/{id}/diff", s.requireAuth(http.HandlerFunc(s.handleSnippetDiff())))
	mux.Handle("GET /api/snippets/{id}/diff.png", s.requireAuth(http.HandlerFunc(s.handleSnippetDiffPNG())))

	// Dashboard (require JWT)
	mux.Handle("GET /api/dashboard", s.requireAuth(http.HandlerFunc(s.handleDashboard())))

	return mux
}

// --- Helpers ---

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

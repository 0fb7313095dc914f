package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/RahilKothari9/difflab/internal/snippet"
	"github.com/RahilKothari9/difflab/pkg/differ"
	"github.com/RahilKothari9/difflab/pkg/notify"
	"github.com/RahilKothari9/difflab/pkg/render"
)

type createSnippetRequest struct {
	Title    string `json:"title"`
	Language string `json:"language"`
	Body     string `json:"body"`
}

func (s *Server) handleCreateSnippet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createSnippetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Title == "" {
			respondError(w, http.StatusBadRequest, "Title is required")
			return
		}

		id, err := s.snippetStore.Create(r.Context(), getUserID(r), req.Title, req.Language, req.Body)
		if err != nil {
			s.logger.Error("failed to create snippet", "error", err)
			respondError(w, http.StatusInternalServerError, "Database error")
			return
		}
		respondJSON(w, http.StatusCreated, map[string]int{"id": id, "version": 1})
	}
}

func (s *Server) handleListSnippets() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snippets, err := s.snippetStore.ListByUser(r.Context(), getUserID(r))
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Database error")
			return
		}
		if snippets == nil {
			snippets = []snippet.Snippet{}
		}
		respondJSON(w, http.StatusOK, snippets)
	}
}

func (s *Server) handleGetSnippet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sn, ok := s.ownedSnippet(w, r)
		if !ok {
			return
		}
		latest, err := s.snippetStore.LatestVersion(r.Context(), sn.ID)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Database error")
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"snippet": sn,
			"latest":  latest,
		})
	}
}

type saveVersionRequest struct {
	Body string `json:"body"`
}

func (s *Server) handleSaveVersion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sn, ok := s.ownedSnippet(w, r)
		if !ok {
			return
		}
		var req saveVersionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		prev, err := s.snippetStore.LatestVersion(r.Context(), sn.ID)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Database error")
			return
		}

		num, err := s.snippetStore.SaveVersion(r.Context(), sn.ID, req.Body)
		if err != nil {
			s.logger.Error("failed to save version", "snippet", sn.ID, "error", err)
			respondError(w, http.StatusInternalServerError, "Database error")
			return
		}

		result := differ.Result{}
		if prev != nil {
			result = differ.Compute(prev.Body, req.Body)
		}
		if result.HasChanges() {
			notify.Async(s.notifier, notify.Message{
				Title: fmt.Sprintf("Snippet %q updated to v%d", sn.Title, num),
				Body:  result.Summary(),
			})
		}

		respondJSON(w, http.StatusCreated, map[string]interface{}{
			"version": num,
			"stats":   result.Stats,
		})
	}
}

func (s *Server) handleSnippetDiff() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sn, ok := s.ownedSnippet(w, r)
		if !ok {
			return
		}
		from, to, errMsg := diffRange(r)
		if errMsg != "" {
			respondError(w, http.StatusBadRequest, errMsg)
			return
		}

		result, err := s.snippetStore.DiffVersions(r.Context(), sn.ID, from, to)
		if err != nil {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondJSON(w, http.StatusOK, diffResponse{
			Result:  result,
			Unified: result.Unified(),
		})
	}
}

func (s *Server) handleSnippetDiffPNG() http.HandlerFunc {
	renderer := render.NewRenderer()
	return func(w http.ResponseWriter, r *http.Request) {
		sn, ok := s.ownedSnippet(w, r)
		if !ok {
			return
		}
		from, to, errMsg := diffRange(r)
		if errMsg != "" {
			respondError(w, http.StatusBadRequest, errMsg)
			return
		}

		result, err := s.snippetStore.DiffVersions(r.Context(), sn.ID, from, to)
		if err != nil {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}

		title := fmt.Sprintf("%s: v%d → v%d", sn.Title, from, to)
		w.Header().Set("Content-Type", "image/png")
		if err := renderer.Encode(result, title, w); err != nil {
			s.logger.Error("png render failed", "snippet", sn.ID, "error", err)
		}
	}
}

func (s *Server) handleDashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := s.snippetStore.CountsByUser(r.Context(), getUserID(r))
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Database error")
			return
		}
		respondJSON(w, http.StatusOK, counts)
	}
}

// ownedSnippet loads the {id} snippet and enforces ownership. On failure it
// writes the error response and returns ok=false.
func (s *Server) ownedSnippet(w http.ResponseWriter, r *http.Request) (*snippet.Snippet, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid snippet ID")
		return nil, false
	}
	sn, err := s.snippetStore.Get(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Database error")
		return nil, false
	}
	if sn == nil || sn.UserID != getUserID(r) {
		respondError(w, http.StatusNotFound, "Snippet not found")
		return nil, false
	}
	return sn, true
}

// diffRange parses the from/to version query params.
func diffRange(r *http.Request) (from, to int, errMsg string) {
	var err error
	if from, err = strconv.Atoi(r.URL.Query().Get("from")); err != nil || from < 1 {
		return 0, 0, "Query param 'from' must be a positive version number"
	}
	if to, err = strconv.Atoi(r.URL.Query().Get("to")); err != nil || to < 1 {
		return 0, 0, "Query param 'to' must be a positive version number"
	}
	return from, to, ""
}

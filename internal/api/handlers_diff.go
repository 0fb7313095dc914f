package api

import (
	"encoding/json"
	"net/http"

	"github.com/RahilKothari9/difflab/pkg/differ"
)

type diffRequest struct {
	Original string `json:"original"`
	Modified string `json:"modified"`
}

type diffResponse struct {
	differ.Result
	Unified string `json:"unified"`
}

// handleDiff computes a one-off diff between two texts. Stateless.
func (s *Server) handleDiff() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req diffRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		result := differ.Compute(req.Original, req.Modified)
		respondJSON(w, http.StatusOK, diffResponse{
			Result:  result,
			Unified: result.Unified(),
		})
	}
}

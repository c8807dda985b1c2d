package server

import (
	"encoding/json"
	"net/http"

	"github.com/rustpress/adminterm/internal/diff"
)

// handleHealthz reports liveness. Used by the admin UI to decide whether
// to offer the terminal panel.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// DiffRequest is the editor's change-view request: two full texts.
type DiffRequest struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// DiffResponse carries the classified line sequence and its tallies.
type DiffResponse struct {
	Lines []diff.Line `json:"lines"`
	Stats diff.Stats  `json:"stats"`
}

// handleDiff serves the line diff used by the editor's change view.
func (s *Server) handleDiff(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req DiffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	lines := diff.Compare(req.Left, req.Right)
	resp := DiffResponse{Lines: lines, Stats: diff.Summarize(lines)}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

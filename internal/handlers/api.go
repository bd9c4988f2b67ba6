package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"hobbyhub/internal/board"
)

// APIHandler exposes the board as JSON for scripted clients.
type APIHandler struct{}

func (h *APIHandler) Board(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, snapshot(r, nil))
}

// Actions applies one action and answers with the resulting snapshot.
func (h *APIHandler) Actions(w http.ResponseWriter, r *http.Request) {
	var a board.Action
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		writeError(w, http.StatusBadRequest, "invalid action: "+err.Error())
		return
	}

	var applyErr error
	snap := snapshot(r, func(b *board.Board) { applyErr = b.Apply(a) })
	if applyErr != nil {
		status := http.StatusBadRequest
		if errors.Is(applyErr, board.ErrPostNotFound) {
			status = http.StatusNotFound
		}
		writeError(w, status, applyErr.Error())
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("encode response:", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

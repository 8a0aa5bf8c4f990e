package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/nexusboard/nexus-api/middleware"
)

// POST /api/boards/{boardID}/lists
func (h *Handler) CreateList(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	boardID := r.PathValue("boardID")
	list, err := h.Store.CreateList(user, boardID, req.Name)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	h.Hub.BoardChanged(boardID)
	writeJSON(w, http.StatusCreated, list)
}

// DELETE /api/lists/{listID}
func (h *Handler) DeleteList(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	board, err := h.Store.DeleteList(user, r.PathValue("listID"))
	if err != nil {
		writeStoreError(w, err)
		return
	}

	h.Hub.BoardChanged(board.PublicID)
	writeJSON(w, http.StatusOK, map[string]string{"message": "List deleted"})
}

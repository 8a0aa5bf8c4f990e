package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/nexusboard/nexus-api/middleware"
	"github.com/nexusboard/nexus-api/models"
	"github.com/nexusboard/nexus-api/store"
)

// GET /api/boards?search=
//
// The dashboard: boards the user owns plus boards shared with them.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	boards, err := h.Store.BoardsForUser(user, r.URL.Query().Get("search"))
	if err != nil {
		writeStoreError(w, err)
		return
	}

	if boards == nil {
		boards = []models.Board{}
	}
	writeJSON(w, http.StatusOK, boards)
}

// POST /api/boards
func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
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

	board, err := h.Store.CreateBoard(user, req.Name)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	h.Hub.DashboardChanged()
	writeJSON(w, http.StatusCreated, board)
}

// GET /api/boards/{boardID}
func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	board, err := h.Store.GetBoard(user, r.PathValue("boardID"), time.Now())
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, board)
}

// PUT /api/boards/{boardID} — rename, owner only.
func (h *Handler) UpdateBoard(w http.ResponseWriter, r *http.Request) {
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

	board, err := h.Store.RenameBoard(user, r.PathValue("boardID"), req.Name)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	h.Hub.DashboardChanged()
	writeJSON(w, http.StatusOK, board)
}

// DELETE /api/boards/{boardID} — owner only, cascades.
func (h *Handler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.Store.DeleteBoard(user, r.PathValue("boardID")); err != nil {
		writeStoreError(w, err)
		return
	}

	h.Hub.DashboardChanged()
	writeJSON(w, http.StatusOK, map[string]string{"message": "Board deleted"})
}

// POST /api/boards/{boardID}/collaborators — owner only.
func (h *Handler) AddCollaborator(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Username string `json:"username"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	collaborator, err := h.Store.AddCollaborator(user, r.PathValue("boardID"), req.Username)
	switch {
	case errors.Is(err, store.ErrOwnerCollaborator), errors.Is(err, store.ErrAlreadyCollaborator):
		// No-op, not a failure: report it so the UI can word its feedback
		writeJSON(w, http.StatusOK, map[string]any{"added": false, "message": err.Error()})
		return
	case err != nil:
		writeStoreError(w, err)
		return
	}

	h.Hub.BoardChanged(r.PathValue("boardID"))
	writeJSON(w, http.StatusOK, map[string]any{
		"added":   true,
		"message": fmt.Sprintf("%s added as collaborator", collaborator.Username),
	})
}

// GET /api/boards/{boardID}/stats
func (h *Handler) BoardStats(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	stats, err := h.Store.BoardStats(user, r.PathValue("boardID"), time.Now())
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

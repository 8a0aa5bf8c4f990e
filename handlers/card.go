package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/nexusboard/nexus-api/middleware"
	"github.com/nexusboard/nexus-api/models"
	"github.com/nexusboard/nexus-api/store"
)

// POST /api/lists/{listID}/cards
//
// A malformed due date does not abort the create: the card is saved
// without it and the response carries a warning. Losing a typed title
// and description to a date typo is the worse outcome.
func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		DueDate     string `json:"due_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var due *time.Time
	warning := ""
	if req.DueDate != "" {
		d, err := models.ParseDueDate(req.DueDate)
		if err != nil {
			warning = "Invalid date format for due date. Use YYYY-MM-DD."
		} else {
			due = &d
		}
	}

	card, board, err := h.Store.CreateCard(user, r.PathValue("listID"), req.Title, req.Description, due)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	card.Annotate(time.Now())

	h.Hub.BoardChanged(board.PublicID)

	resp := map[string]any{"card": card}
	if warning != "" {
		resp["warning"] = warning
	}
	writeJSON(w, http.StatusCreated, resp)
}

// PUT /api/cards/{cardID}/due-date
//
// An empty due_date clears the date. Unlike card creation there is
// nothing else at stake here, so a malformed date is rejected outright.
func (h *Handler) UpdateDueDate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		DueDate string `json:"due_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var due *time.Time
	if req.DueDate != "" {
		d, err := models.ParseDueDate(req.DueDate)
		if err != nil {
			writeStoreError(w, fmt.Errorf("%w: invalid date format (use YYYY-MM-DD)", store.ErrValidation))
			return
		}
		due = &d
	}

	card, _, err := h.Store.UpdateDueDate(user, r.PathValue("cardID"), due)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	card.Annotate(time.Now())

	writeJSON(w, http.StatusOK, card)
}

// PUT /api/cards/{cardID}/status
func (h *Handler) UpdateCardStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	card, board, err := h.Store.SetCardStatus(user, r.PathValue("cardID"), req.Status)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	card.Annotate(time.Now())

	h.Hub.BoardChanged(board.PublicID)
	writeJSON(w, http.StatusOK, card)
}

// POST /api/cards/{cardID}/comments
func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	comment, board, err := h.Store.AddComment(user, r.PathValue("cardID"), req.Content)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	h.Hub.BoardChanged(board.PublicID)
	writeJSON(w, http.StatusCreated, comment)
}

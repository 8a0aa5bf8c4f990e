package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/nexusboard/nexus-api/auth"
	"github.com/nexusboard/nexus-api/config"
	"github.com/nexusboard/nexus-api/middleware"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.Store.Register(req.Username, req.Password)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	log.Printf("Register: created user %s", user.Username)
	writeJSON(w, http.StatusCreated, map[string]any{
		"user":    user,
		"message": "Registration successful. Please log in.",
	})
}

// POST /api/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.Store.Authenticate(req.Username, req.Password)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	tokenString, err := auth.CreateToken(user.Username)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		log.Println("Token generation error:", err)
		return
	}

	http.SetCookie(w, config.SessionCookie(tokenString, 86400))
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

// POST /api/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, config.SessionCookie("", -1))
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// DELETE /api/account
//
// Removes the account, every board it owns (with all lists, cards, and
// comments), and its collaborator memberships.
func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.Store.DeleteAccount(user); err != nil {
		writeStoreError(w, err)
		return
	}

	http.SetCookie(w, config.SessionCookie("", -1))
	h.Hub.DashboardChanged()
	writeJSON(w, http.StatusOK, map[string]string{"message": "Account deleted"})
}

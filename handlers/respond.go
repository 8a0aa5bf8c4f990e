package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/nexusboard/nexus-api/store"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("respond: encoding response: %v", err)
	}
}

// writeStoreError maps the store's error taxonomy onto HTTP statuses.
// Authorization failures get a deliberately generic message so callers
// learn nothing about boards they cannot access.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, store.ErrInvalidCredentials):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, store.ErrUnauthorized):
		http.Error(w, "Access denied", http.StatusForbidden)
	case errors.Is(err, store.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, store.ErrDuplicateUsername):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Printf("handlers: unexpected error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

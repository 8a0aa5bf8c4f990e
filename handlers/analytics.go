package handlers

import (
	"net/http"
	"time"

	"github.com/nexusboard/nexus-api/middleware"
)

// GET /api/analytics
//
// Aggregates over boards the user owns. Shared boards show up on the
// dashboard but not here; see store.UserAnalytics.
func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	analytics, err := h.Store.UserAnalytics(user, time.Now())
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, analytics)
}

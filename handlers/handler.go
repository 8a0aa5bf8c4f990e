package handlers

import (
	"github.com/nexusboard/nexus-api/notify"
	"github.com/nexusboard/nexus-api/store"
)

// Handler carries the shared dependencies for every HTTP handler.
type Handler struct {
	Store *store.Store
	Hub   *notify.Hub
}

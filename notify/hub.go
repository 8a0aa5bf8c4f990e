// Package notify is the fire-and-forget refresh broadcast. Connected
// viewers get told a board or dashboard changed; delivery is
// best-effort with no ordering, no backfill, and no effect on the
// mutation that triggered it.
package notify

import "sync"

// Event names understood by clients.
const (
	RefreshDashboard = "refresh_dashboard"
	RefreshBoard     = "refresh_board"
)

type Event struct {
	Name    string `json:"event"`
	BoardID string `json:"board_id,omitempty"`
}

type Hub struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[chan Event]struct{})}
}

// Subscribe registers a listener. The cancel func must be called when
// the listener goes away; the channel is closed by it.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 16)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subs[ch]; ok {
			delete(h.subs, ch)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers to whoever is listening right now. A slow subscriber
// with a full buffer loses the event; Publish never blocks and never
// reports failure to the caller.
func (h *Hub) Publish(e Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

// BoardChanged broadcasts a refresh for one board.
func (h *Hub) BoardChanged(boardID string) {
	h.Publish(Event{Name: RefreshBoard, BoardID: boardID})
}

// DashboardChanged broadcasts a dashboard-level refresh.
func (h *Hub) DashboardChanged() {
	h.Publish(Event{Name: RefreshDashboard})
}

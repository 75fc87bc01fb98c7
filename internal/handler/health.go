package handler

import (
	"log/slog"
	"net/http"
	"time"
)

type healthResponse struct {
	Status         string `json:"status"`
	Message        string `json:"message"`
	Database       string `json:"database"`
	UnreadContacts int    `json:"unreadContacts"`
	Timestamp      string `json:"timestamp"`
}

// Health handles GET /api/health. The endpoint answers 200 whether or not
// the store is reachable; database state is reported in the body so the
// front end and uptime checks can tell a degraded backend from a dead one.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	database := "Connected"
	unread := 0

	if err := h.db.Ping(r.Context()); err != nil {
		database = "Disconnected"
	} else if n, err := h.contactSvc.UnreadCount(r.Context()); err != nil {
		slog.Warn("unread count failed", "error", err)
	} else {
		unread = n
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Status:         "OK",
		Message:        "HS21 Digital Backend is running",
		Database:       database,
		UnreadContacts: unread,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	})
}

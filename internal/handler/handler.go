package handler

import (
	"context"
	"encoding/json"
	"net/http"
)

// DB is the health-check view of the store.
type DB interface {
	Ping(ctx context.Context) error
}

// Handler carries the cross-cutting pieces of the HTTP surface: CORS,
// the health endpoint and the JSON 404.
type Handler struct {
	db         DB
	contactSvc contactCounter
}

// contactCounter is the slice of the contact service the health endpoint needs.
type contactCounter interface {
	UnreadCount(ctx context.Context) (int, error)
}

// New creates a Handler over the given store view and contact service.
func New(db DB, contactSvc contactCounter) *Handler {
	return &Handler{db: db, contactSvc: contactSvc}
}

// CORS applies the site's permissive CORS policy and answers preflight
// requests with an empty 200, matching what the front end expects.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET,OPTIONS,PATCH,DELETE,POST,PUT")
		w.Header().Set("Access-Control-Allow-Headers",
			"X-CSRF-Token, X-Requested-With, Accept, Accept-Version, Content-Length, Content-MD5, Content-Type, Date, X-Api-Version")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// NotFound answers any unrouted path with the API's JSON 404.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]any{
		"success": false,
		"error":   "Endpoint not found",
	})
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

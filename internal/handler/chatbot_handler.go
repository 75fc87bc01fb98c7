package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/hs21digital/backend/internal/model"
	"github.com/hs21digital/backend/internal/repository"
	"github.com/hs21digital/backend/internal/service"
)

// ChatbotHandler handles the canned-response chat endpoint and the admin
// chat-log views.
type ChatbotHandler struct {
	chatbotService service.ChatbotService
	chatLogs       repository.ChatLogRepository
}

// NewChatbotHandler creates a ChatbotHandler.
func NewChatbotHandler(chatbotService service.ChatbotService, chatLogs repository.ChatLogRepository) *ChatbotHandler {
	return &ChatbotHandler{chatbotService: chatbotService, chatLogs: chatLogs}
}

// chatRequest is the expected JSON body for POST /api/chatbot.
type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

const chatFallbackReply = "I'm having trouble right now. Please email us at hello@hs21digital.com"

// Respond handles POST /api/chatbot. The chat widget treats any non-200 as
// an outage, so well-formed requests always get a 200 — on anything
// unexpected the reply degrades to the apologetic fallback instead of an
// error status.
func (h *ChatbotHandler) Respond(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("chatbot handler panic", "panic", rec)
			writeJSON(w, http.StatusOK, map[string]any{
				"success":   true,
				"response":  chatFallbackReply,
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		}
	}()

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	reply := h.chatbotService.Respond(r.Context(), req.Message, req.SessionID, clientIP(r))

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"response":  reply.Response,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// SessionHistory handles GET /api/admin/chatlogs/{sessionId}: all exchanges
// for one chat session, oldest first.
func (h *ChatbotHandler) SessionHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionId")

	entries, err := h.chatLogs.SessionHistory(r.Context(), sessionID)
	if err != nil {
		slog.Error("session history failed", "error", err, "session_id", sessionID)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "Failed to fetch chat history",
		})
		return
	}

	if entries == nil {
		entries = []*model.ChatLogEntry{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"total":   len(entries),
		"entries": entries,
	})
}

// Stats handles GET /api/admin/chatlogs/stats: exchange counts per category,
// most frequent first.
func (h *ChatbotHandler) Stats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.chatLogs.CountByCategory(r.Context())
	if err != nil {
		slog.Error("chat log stats failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "Failed to fetch chat statistics",
		})
		return
	}

	if counts == nil {
		counts = []model.CategoryCount{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"categories": counts,
	})
}

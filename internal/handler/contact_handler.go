package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hs21digital/backend/internal/model"
	"github.com/hs21digital/backend/internal/repository"
	"github.com/hs21digital/backend/internal/service"
)

// ContactHandler handles contact-form submission and the admin endpoints.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact. Validation failures come back as 400
// with the specific constraint message; an email delivery failure is a 500
// even when the submission was persisted. A store failure alone never
// surfaces — the submitter still gets a success with a reference id.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	input := service.SubmitInput{Name: req.Name, Email: req.Email, Message: req.Message}
	meta := service.RequestMeta{IP: clientIP(r), UserAgent: r.UserAgent()}

	result, err := h.contactService.Submit(r.Context(), input, meta)
	if err != nil {
		var vErr *service.ValidationError
		var dErr *service.DeliveryError
		switch {
		case errors.As(err, &vErr):
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"success": false,
				"error":   vErr.Message,
			})
		case errors.As(err, &dErr):
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"success": false,
				"error":   "Failed to send email. Please try again later.",
			})
		default:
			slog.Error("contact submit failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"success": false,
				"error":   "Failed to process your request. Please try again later.",
			})
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"message":      "Thank you! We'll be in touch soon.",
		"submissionId": result.SubmissionID,
	})
}

// AdminList handles GET /api/admin/contacts. Returns all submissions newest
// first; optional query params: status (all/new/read/replied/archived) and
// limit. No authentication — a known gap inherited from the product, not a
// feature.
func (h *ContactHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	opts := model.SubmissionListOptions{
		Status: r.URL.Query().Get("status"),
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 {
			opts.Limit = n
		}
	}

	submissions, err := h.contactService.List(r.Context(), opts)
	if err != nil {
		slog.Error("list submissions failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "Failed to fetch submissions",
		})
		return
	}

	// Return [] not null for empty lists
	if submissions == nil {
		submissions = []*model.Submission{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"total":       len(submissions),
		"submissions": submissions,
	})
}

// updateStatusRequest is the expected JSON body for the status PATCH.
type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /api/admin/contacts/{id}/status, the admin's
// read/replied/archived workflow. No transition is rejected beyond the
// status value itself being known.
func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	id := r.PathValue("id")
	err := h.contactService.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"success": false,
				"error":   vErr.Message,
			})
		case errors.Is(err, repository.ErrNotFound):
			writeJSON(w, http.StatusNotFound, map[string]any{
				"success": false,
				"error":   "Submission not found",
			})
		default:
			slog.Error("update submission status failed", "error", err, "id", id)
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"success": false,
				"error":   "Failed to update submission",
			})
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

package comment

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Glimpse/internal/api/handlers"
	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/comments"
)

// UpdateHandler handles comment edits
type UpdateHandler struct {
	service comments.Service
}

// NewUpdateHandler creates a new comment edit handler
func NewUpdateHandler(service comments.Service) *UpdateHandler {
	return &UpdateHandler{service: service}
}

type updateRequest struct {
	Content string `json:"content"`
}

// HandleUpdate overwrites a comment's content; author only
// PATCH /api/comments/{commentID}
func (h *UpdateHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	commentID := chi.URLParam(r, "commentID")
	if commentID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "comment id is required")
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateComment(r.Context(), commentID, identity.UserID, req.Content)
	if err != nil {
		handleServiceError(w, err, "Something went wrong while updating comment")
		return
	}

	handlers.WriteSuccess(w, http.StatusOK, "Comment updated", map[string]interface{}{
		"comment": updated,
	})
}

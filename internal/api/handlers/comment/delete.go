package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Glimpse/internal/api/handlers"
	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/comments"
)

// DeleteHandler handles comment deletion
type DeleteHandler struct {
	service comments.Service
}

// NewDeleteHandler creates a new comment deletion handler
func NewDeleteHandler(service comments.Service) *DeleteHandler {
	return &DeleteHandler{service: service}
}

// HandleDelete removes a comment by id
// DELETE /api/comments/{commentID}
func (h *DeleteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetIdentity(r.Context()); !ok {
		handlers.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	commentID := chi.URLParam(r, "commentID")
	if commentID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "comment id is required")
		return
	}

	if err := h.service.DeleteComment(r.Context(), commentID); err != nil {
		handleServiceError(w, err, "Something went wrong while deleting comment")
		return
	}

	handlers.WriteSuccess(w, http.StatusOK, "Comment deleted", nil)
}

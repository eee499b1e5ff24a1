package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Glimpse/internal/api/handlers"
	"Glimpse/internal/core/comments"
)

// ListHandler handles reading a post with its comment thread
type ListHandler struct {
	service comments.Service
}

// NewListHandler creates a new comment listing handler
func NewListHandler(service comments.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleList returns the post with comments resolved in insertion order
// GET /api/posts/{postID}/comments
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")
	if postID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "post id is required")
		return
	}

	result, err := h.service.GetPostComments(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err, "Something went wrong while fetching comments")
		return
	}

	handlers.WriteSuccess(w, http.StatusOK, "Comments found", map[string]interface{}{
		"post":     result.Post,
		"comments": result.Comments,
	})
}

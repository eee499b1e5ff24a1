package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Glimpse/internal/api/handlers"
	"Glimpse/internal/core/posts"
)

// GetHandler handles single-post reads
type GetHandler struct {
	service posts.Service
}

// NewGetHandler creates a new post read handler
func NewGetHandler(service posts.Service) *GetHandler {
	return &GetHandler{service: service}
}

// HandleGet retrieves a post and counts the view
// GET /api/posts/{postID}
func (h *GetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")
	if postID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "post id is required")
		return
	}

	found, err := h.service.GetPost(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err, "Something went wrong while fetching post")
		return
	}

	handlers.WriteSuccess(w, http.StatusOK, "Post found", map[string]interface{}{
		"post": found,
	})
}

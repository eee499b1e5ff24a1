package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Glimpse/internal/api/handlers"
	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/posts"
)

// DeleteHandler handles post deletion
type DeleteHandler struct {
	service posts.Service
}

// NewDeleteHandler creates a new post deletion handler
func NewDeleteHandler(service posts.Service) *DeleteHandler {
	return &DeleteHandler{service: service}
}

// HandleDelete removes a post owned by the acting user
// DELETE /api/posts/{postID}
func (h *DeleteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	postID := chi.URLParam(r, "postID")
	if postID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "post id is required")
		return
	}

	if err := h.service.DeletePost(r.Context(), postID, identity.UserID); err != nil {
		handleServiceError(w, err, "Something went wrong while deleting post")
		return
	}

	handlers.WriteSuccess(w, http.StatusOK, "Post deleted", nil)
}

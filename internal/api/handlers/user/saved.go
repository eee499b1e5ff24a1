package user

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Glimpse/internal/api/handlers"
	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/users"
)

// SavedHandler handles saving and unsaving posts
type SavedHandler struct {
	service users.Service
}

// NewSavedHandler creates a new saved-posts handler
func NewSavedHandler(service users.Service) *SavedHandler {
	return &SavedHandler{service: service}
}

// HandleSave adds a post to the acting user's saved set
// POST /api/posts/{postID}/save
func (h *SavedHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "Post saved", h.service.SavePost)
}

// HandleUnsave removes a post from the saved set
// POST /api/posts/{postID}/unsave
func (h *SavedHandler) HandleUnsave(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "Post unsaved", h.service.UnsavePost)
}

type savedOp func(ctx context.Context, actorID, postID string) (*users.User, error)

func (h *SavedHandler) mutate(w http.ResponseWriter, r *http.Request, message string, op savedOp) {
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

	updated, err := op(r.Context(), identity.UserID, postID)
	if err != nil {
		handleServiceError(w, err, "Something went wrong while updating saved posts")
		return
	}

	handlers.WriteSuccess(w, http.StatusOK, message, map[string]interface{}{
		"user": updated,
	})
}

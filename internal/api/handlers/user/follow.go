package user

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Glimpse/internal/api/handlers"
	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/users"
)

// FollowHandler handles follow/unfollow mutations
type FollowHandler struct {
	service users.Service
}

// NewFollowHandler creates a new follow handler
func NewFollowHandler(service users.Service) *FollowHandler {
	return &FollowHandler{service: service}
}

// HandleFollow makes the acting user follow the target
// POST /api/users/{userID}/follow
func (h *FollowHandler) HandleFollow(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "User followed", h.service.Follow)
}

// HandleUnfollow removes the relationship
// POST /api/users/{userID}/unfollow
func (h *FollowHandler) HandleUnfollow(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "Unfollowed", h.service.Unfollow)
}

type followOp func(ctx context.Context, actorID, targetID string) (*users.FollowResult, error)

func (h *FollowHandler) mutate(w http.ResponseWriter, r *http.Request, message string, op followOp) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	targetID := chi.URLParam(r, "userID")
	if targetID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "user id is required")
		return
	}

	result, err := op(r.Context(), identity.UserID, targetID)
	if err != nil {
		handleServiceError(w, err, "Something went wrong while updating follow state")
		return
	}

	handlers.WriteSuccess(w, http.StatusOK, message, map[string]interface{}{
		"user":        result.Target,
		"currentUser": result.Actor,
	})
}

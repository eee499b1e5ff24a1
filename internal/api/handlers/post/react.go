package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Glimpse/internal/api/handlers"
	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/posts"
)

// ReactHandler handles like/dislike toggles
type ReactHandler struct {
	service posts.Service
}

// NewReactHandler creates a new reaction handler
func NewReactHandler(service posts.Service) *ReactHandler {
	return &ReactHandler{service: service}
}

// HandleLike toggles the acting user's like on a post
// POST /api/posts/{postID}/like
func (h *ReactHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	h.react(w, r, posts.ReactionLike)
}

// HandleDislike toggles the acting user's dislike on a post
// POST /api/posts/{postID}/dislike
func (h *ReactHandler) HandleDislike(w http.ResponseWriter, r *http.Request) {
	h.react(w, r, posts.ReactionDislike)
}

func (h *ReactHandler) react(w http.ResponseWriter, r *http.Request, kind posts.ReactionKind) {
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

	result, err := h.service.React(r.Context(), postID, identity.UserID, kind)
	if err != nil {
		handleServiceError(w, err, "Something went wrong while updating reaction")
		return
	}

	message := string(kind) + " removed"
	if result.Added {
		message = string(kind) + " added"
	}

	handlers.WriteSuccess(w, http.StatusOK, message, map[string]interface{}{
		"post":         result.Post,
		"likeCount":    result.LikeCount,
		"dislikeCount": result.DislikeCount,
	})
}

package post

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Glimpse/internal/api/handlers"
	"Glimpse/internal/core/posts"
)

// ListHandler handles listing a user's posts
type ListHandler struct {
	service posts.Service
}

// NewListHandler creates a new post listing handler
func NewListHandler(service posts.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleListByUser returns a user's posts, newest first.
// Query params: limit, offset.
// GET /api/users/{userID}/posts
func (h *ListHandler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "user id is required")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	list, err := h.service.ListUserPosts(r.Context(), userID, limit, offset)
	if err != nil {
		handleServiceError(w, err, "Something went wrong while listing posts")
		return
	}

	handlers.WriteSuccess(w, http.StatusOK, "Posts found", map[string]interface{}{
		"posts": list,
	})
}

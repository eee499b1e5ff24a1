package comment

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Glimpse/internal/api/handlers"
	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/comments"
)

// CreateHandler handles comment creation
type CreateHandler struct {
	service comments.Service
}

// NewCreateHandler creates a new comment creation handler
func NewCreateHandler(service comments.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

type createRequest struct {
	Content string `json:"content"`
}

// HandleCreate adds a comment to a post
// POST /api/posts/{postID}/comments
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
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

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.CreateComment(r.Context(), postID, identity.UserID, req.Content)
	if err != nil {
		handleServiceError(w, err, "Something went wrong while creating comment")
		return
	}

	handlers.WriteSuccess(w, http.StatusCreated, "Comment added", map[string]interface{}{
		"comment": result.Comment,
		"user":    result.Author,
	})
}

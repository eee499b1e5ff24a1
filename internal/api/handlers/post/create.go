package post

import (
	"io"
	"net/http"

	"Glimpse/internal/api/handlers"
	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/posts"
)

// maxUploadBytes caps the in-memory media buffer at 32MB
const maxUploadBytes = 32 << 20

// CreateHandler handles post creation
type CreateHandler struct {
	service posts.Service
}

// NewCreateHandler creates a new post creation handler
func NewCreateHandler(service posts.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// HandleCreate creates a post from a multipart form
// POST /api/posts
//
// Form fields: type (required), title, caption, tags (comma-separated);
// file field "media" required for image/video posts.
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	req := posts.CreatePostRequest{
		UserID:  identity.UserID,
		Type:    posts.PostType(r.FormValue("type")),
		Title:   r.FormValue("title"),
		Caption: r.FormValue("caption"),
		Tags:    r.FormValue("tags"),
	}

	if file, _, err := r.FormFile("media"); err == nil {
		defer file.Close()
		data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		if err != nil {
			handlers.WriteError(w, http.StatusBadRequest, "Failed to read media file")
			return
		}
		req.Media = data
	}

	created, err := h.service.CreatePost(r.Context(), req)
	if err != nil {
		handleServiceError(w, err, "Something went wrong while creating post")
		return
	}

	handlers.WriteSuccess(w, http.StatusCreated, "Post created successfully", map[string]interface{}{
		"post": created,
	})
}

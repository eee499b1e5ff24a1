package post

import (
	"errors"
	"net/http"

	"Glimpse/internal/api/handlers"
	"Glimpse/internal/core/posts"
)

// handleServiceError converts post service errors to envelope responses
func handleServiceError(w http.ResponseWriter, err error, serverMessage string) {
	switch {
	case errors.Is(err, posts.ErrPostNotFound):
		handlers.WriteError(w, http.StatusNotFound, "Post not found")
	case errors.Is(err, posts.ErrNotAuthorized):
		handlers.WriteError(w, http.StatusForbidden, "Not authorized")
	case posts.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		handlers.WriteServerError(w, serverMessage, err)
	}
}

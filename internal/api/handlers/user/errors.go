package user

import (
	"errors"
	"net/http"

	"Glimpse/internal/api/handlers"
	"Glimpse/internal/core/posts"
	"Glimpse/internal/core/users"
)

// handleServiceError converts user service errors to envelope responses
func handleServiceError(w http.ResponseWriter, err error, serverMessage string) {
	switch {
	case errors.Is(err, users.ErrUserNotFound):
		handlers.WriteError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, posts.ErrPostNotFound):
		handlers.WriteError(w, http.StatusNotFound, "Post not found")
	case errors.Is(err, users.ErrSelfFollow):
		handlers.WriteError(w, http.StatusBadRequest, "You cannot follow yourself")
	case errors.Is(err, users.ErrUsernameTaken):
		handlers.WriteError(w, http.StatusConflict, "Username already taken")
	default:
		handlers.WriteServerError(w, serverMessage, err)
	}
}

package comment

import (
	"errors"
	"net/http"

	"Glimpse/internal/api/handlers"
	"Glimpse/internal/core/comments"
	"Glimpse/internal/core/posts"
)

// handleServiceError converts comment service errors to envelope responses
func handleServiceError(w http.ResponseWriter, err error, serverMessage string) {
	switch {
	case errors.Is(err, comments.ErrCommentNotFound):
		handlers.WriteError(w, http.StatusNotFound, "Comment not found")
	case errors.Is(err, posts.ErrPostNotFound):
		handlers.WriteError(w, http.StatusNotFound, "Post not found")
	case errors.Is(err, comments.ErrNotAuthorized):
		handlers.WriteError(w, http.StatusForbidden, "You can only edit your own comments")
	case errors.Is(err, comments.ErrContentEmpty), errors.Is(err, comments.ErrNoAuthor):
		handlers.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		handlers.WriteServerError(w, serverMessage, err)
	}
}

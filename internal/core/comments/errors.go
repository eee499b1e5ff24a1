package comments

import "errors"

var (
	// ErrCommentNotFound indicates the requested comment doesn't exist
	ErrCommentNotFound = errors.New("comment not found")

	// ErrContentEmpty indicates comment content is required
	ErrContentEmpty = errors.New("comment content is required")

	// ErrNoAuthor indicates the comment has no linked author to check
	// ownership against
	ErrNoAuthor = errors.New("comment has no linked author")

	// ErrNotAuthorized indicates the acting user is not the comment's author
	ErrNotAuthorized = errors.New("not authorized to modify this comment")
)

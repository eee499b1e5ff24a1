package comments

import "context"

// Repository defines the data access interface for comments.
// Comments are keyed independently of their post; the post side of the
// relation is the foreign key, so deleting a comment can never leave a
// dangling reference on the post.
type Repository interface {
	// Create inserts a new comment. Returns posts.ErrPostNotFound when
	// the referenced post doesn't exist.
	Create(ctx context.Context, comment *Comment) (*Comment, error)

	// GetByID retrieves a comment by its identifier
	GetByID(ctx context.Context, id string) (*Comment, error)

	// UpdateContent overwrites the comment's content
	UpdateContent(ctx context.Context, id, content string) (*Comment, error)

	// Delete removes a comment by id
	Delete(ctx context.Context, id string) error

	// ListByPost retrieves a post's comments in insertion order with
	// author projections hydrated
	ListByPost(ctx context.Context, postID string) ([]*Comment, error)
}

// Service defines the business logic interface for the comment lifecycle
type Service interface {
	// CreateComment adds a comment to a post on behalf of the acting user
	CreateComment(ctx context.Context, postID, actorID, content string) (*CreateCommentResult, error)

	// GetPostComments returns the post with its comments resolved
	GetPostComments(ctx context.Context, postID string) (*PostWithComments, error)

	// UpdateComment overwrites a comment's content; only the author may edit
	UpdateComment(ctx context.Context, commentID, actorID, content string) (*Comment, error)

	// DeleteComment removes a comment by id
	DeleteComment(ctx context.Context, commentID string) error
}

package posts

import "context"

// Repository defines the data access interface for posts and reactions
type Repository interface {
	// Create inserts a new post and returns it with generated timestamps
	Create(ctx context.Context, post *Post) (*Post, error)

	// GetByID retrieves a post with tags, reaction sets and counts hydrated
	GetByID(ctx context.Context, id string) (*Post, error)

	// ListByUser retrieves a user's posts, newest first
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*Post, error)

	// ToggleReaction atomically moves the user between the like/dislike
	// partitions of a post:
	//   - user has no reaction of the given kind → reaction added (any
	//     opposite reaction is cleared in the same transaction)
	//   - user already has the given kind → reaction removed
	// Returns whether the reaction was added (false means toggled off).
	ToggleReaction(ctx context.Context, postID, userID string, kind ReactionKind) (bool, error)

	// IncrementViews bumps the view counter. Unknown ids are a no-op.
	IncrementViews(ctx context.Context, postID string) error

	// Delete removes a post and its engagement rows
	Delete(ctx context.Context, id string) error
}

// Service defines the business logic interface for post operations
type Service interface {
	// CreatePost validates the request, uploads media for non-text types
	// and persists the post. Upload failure aborts creation entirely.
	CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error)

	// GetPost retrieves a post and bumps its view counter
	GetPost(ctx context.Context, id string) (*Post, error)

	// ListUserPosts retrieves a user's posts, newest first. Listing does
	// not count views.
	ListUserPosts(ctx context.Context, userID string, limit, offset int) ([]*Post, error)

	// React flips the acting user's like/dislike state on a post and
	// returns the resulting counts along with the populated post.
	React(ctx context.Context, postID, userID string, kind ReactionKind) (*ReactionResult, error)

	// DeletePost removes a post; only the owner may delete it
	DeletePost(ctx context.Context, postID, actorID string) error
}

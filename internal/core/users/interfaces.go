package users

import (
	"context"

	"Glimpse/internal/core/posts"
)

// Repository defines the data access interface for users and their
// relationship sets. The follow graph is stored as one row per edge, so
// the follower/following symmetry holds by construction rather than by
// paired updates.
type Repository interface {
	// Create inserts a new user
	Create(ctx context.Context, user *User) (*User, error)

	// GetByID retrieves a user with follower/following/saved sets hydrated
	GetByID(ctx context.Context, id string) (*User, error)

	// GetByUsername retrieves a user by their unique username
	GetByUsername(ctx context.Context, username string) (*User, error)

	// UpdateProfile changes the non-nil fields of input
	UpdateProfile(ctx context.Context, id string, input UpdateProfileInput) (*User, error)

	// Follow records the actor→target edge. Duplicate edges are a no-op.
	// Returns ErrUserNotFound if either side doesn't exist.
	Follow(ctx context.Context, actorID, targetID string) error

	// Unfollow removes the actor→target edge; removing a missing edge is a no-op
	Unfollow(ctx context.Context, actorID, targetID string) error

	// SavePost adds a post to the user's saved set. Duplicate saves are a
	// no-op. Returns posts.ErrPostNotFound if the post doesn't exist.
	SavePost(ctx context.Context, userID, postID string) error

	// UnsavePost removes a post from the saved set; no-op when not saved
	UnsavePost(ctx context.Context, userID, postID string) error

	// ListSavedPosts resolves the user's saved set to full post records,
	// most recently saved first
	ListSavedPosts(ctx context.Context, userID string) ([]*posts.Post, error)
}

// Service defines the business logic interface for user operations
type Service interface {
	// CreateUser registers a new account
	CreateUser(ctx context.Context, req CreateUserRequest) (*User, error)

	// GetProfile retrieves a user's profile with relationship sets
	GetProfile(ctx context.Context, id string) (*User, error)

	// GetProfileByUsername retrieves a profile by its unique username
	GetProfileByUsername(ctx context.Context, username string) (*User, error)

	// UpdateProfile changes profile fields and returns the updated user
	UpdateProfile(ctx context.Context, id string, input UpdateProfileInput) (*User, error)

	// Follow makes actor follow target and returns both updated users.
	// Self-follow is rejected.
	Follow(ctx context.Context, actorID, targetID string) (*FollowResult, error)

	// Unfollow removes the relationship and returns both updated users
	Unfollow(ctx context.Context, actorID, targetID string) (*FollowResult, error)

	// SavePost idempotently saves a post and returns the user with the
	// saved set resolved to full records
	SavePost(ctx context.Context, actorID, postID string) (*User, error)

	// UnsavePost idempotently removes a saved post and returns the user
	// with the saved set resolved
	UnsavePost(ctx context.Context, actorID, postID string) (*User, error)
}

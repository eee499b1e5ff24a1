package users

import (
	"time"

	"Glimpse/internal/core/posts"
)

// User represents an account with its relationship sets.
// Followers, Following and SavedPostIDs hold identifiers only; SavedPosts
// is populated with full records where an operation returns them resolved.
// The password hash never leaves the server.
type User struct {
	CreatedAt    time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time     `json:"updatedAt" db:"updated_at"`
	ID           string        `json:"id" db:"id"`
	Username     string        `json:"username" db:"username"`
	Email        string        `json:"email" db:"email"`
	PasswordHash string        `json:"-" db:"password_hash"`
	Bio          string        `json:"bio,omitempty" db:"bio"`
	AvatarURL    string        `json:"avatar,omitempty" db:"avatar_url"`
	Followers    []string      `json:"followers" db:"-"`
	Following    []string      `json:"following" db:"-"`
	SavedPostIDs []string      `json:"savedPosts" db:"-"`
	SavedPosts   []*posts.Post `json:"savedPostRecords,omitempty" db:"-"`
}

// Summary is the trimmed projection of a user attached to content they
// authored (comments, engagement listings).
type Summary struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar,omitempty"`
}

// Summarize returns the trimmed projection of u
func (u *User) Summarize() *Summary {
	return &Summary{
		ID:        u.ID,
		Username:  u.Username,
		AvatarURL: u.AvatarURL,
	}
}

// CreateUserRequest is the input for registering a new account.
// PasswordHash is produced upstream; hashing is not this service's job.
type CreateUserRequest struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// UpdateProfileInput carries profile fields to change. Nil means "leave
// this field alone"; an empty string clears it.
type UpdateProfileInput struct {
	Username  *string `json:"username,omitempty"`
	Email     *string `json:"email,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	AvatarURL *string `json:"avatar,omitempty"`
}

// FollowResult returns both sides of a follow/unfollow mutation
type FollowResult struct {
	// Target is the user being followed/unfollowed, with followers updated
	Target *User `json:"user"`
	// Actor is the acting user, with following updated
	Actor *User `json:"currentUser"`
}

package comments

import (
	"time"

	"Glimpse/internal/core/posts"
	"Glimpse/internal/core/users"
)

// Comment represents a comment on a post. AuthorID is empty when the
// authoring account no longer exists.
type Comment struct {
	CreatedAt time.Time      `json:"createdAt" db:"created_at"`
	ID        string         `json:"id" db:"id"`
	PostID    string         `json:"post" db:"post_id"`
	AuthorID  string         `json:"user,omitempty" db:"author_id"`
	Content   string         `json:"content" db:"content"`
	Author    *users.Summary `json:"author,omitempty" db:"-"`
}

// CreateCommentResult returns the created comment with a trimmed
// projection of its author
type CreateCommentResult struct {
	Comment *Comment       `json:"comment"`
	Author  *users.Summary `json:"user,omitempty"`
}

// PostWithComments is a post with its comment references resolved to
// full records, in insertion order
type PostWithComments struct {
	Post     *posts.Post `json:"post"`
	Comments []*Comment  `json:"comments"`
}

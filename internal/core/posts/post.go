package posts

import (
	"strings"
	"time"
)

// PostType identifies what kind of media, if any, a post carries
type PostType string

const (
	PostTypeText  PostType = "text"
	PostTypeImage PostType = "image"
	PostTypeVideo PostType = "video"
)

// IsValid reports whether t is one of the known post types
func (t PostType) IsValid() bool {
	return t == PostTypeText || t == PostTypeImage || t == PostTypeVideo
}

// Field length limits enforced at creation time
const (
	MaxTitleLength   = 150
	MaxCaptionLength = 2000
)

// Post represents a published post owned by a user.
// MediaURL and ThumbnailURL are nil for text posts; ThumbnailURL is set
// only for video posts. MediaStorageID is present iff media was uploaded.
type Post struct {
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
	MediaURL       *string   `json:"mediaUrl" db:"media_url"`
	MediaStorageID *string   `json:"mediaStorageId,omitempty" db:"media_storage_id"`
	ThumbnailURL   *string   `json:"thumbnailUrl" db:"thumbnail_url"`
	ID             string    `json:"id" db:"id"`
	UserID         string    `json:"user" db:"user_id"`
	Type           PostType  `json:"type" db:"type"`
	Title          string    `json:"title,omitempty" db:"title"`
	Caption        string    `json:"caption,omitempty" db:"caption"`
	Tags           []string  `json:"tags" db:"tags"`
	LikedBy        []string  `json:"likes" db:"-"`
	DislikedBy     []string  `json:"dislikes" db:"-"`
	LikeCount      int       `json:"likeCount" db:"-"`
	DislikeCount   int       `json:"dislikeCount" db:"-"`
	Views          int       `json:"views" db:"views"`
	Published      bool      `json:"isPublished" db:"published"`
}

// ReactionKind is the direction of a user's reaction on a post
type ReactionKind string

const (
	ReactionLike    ReactionKind = "like"
	ReactionDislike ReactionKind = "dislike"
)

// Opposite returns the mutually exclusive counterpart of k
func (k ReactionKind) Opposite() ReactionKind {
	if k == ReactionLike {
		return ReactionDislike
	}
	return ReactionLike
}

// CreatePostRequest is the input for creating a new post.
// Tags is the raw comma-separated tag string from the client.
// Media is the raw upload buffer, required for non-text types.
type CreatePostRequest struct {
	UserID  string
	Type    PostType
	Title   string
	Caption string
	Tags    string
	Media   []byte
}

// ReactionResult reports the outcome of a like/dislike toggle
type ReactionResult struct {
	Post         *Post `json:"post"`
	Added        bool  `json:"added"`
	LikeCount    int   `json:"likeCount"`
	DislikeCount int   `json:"dislikeCount"`
}

// ParseTags splits a comma-separated tag string into a trimmed, ordered
// list. Empty entries are dropped; a blank input yields an empty list.
func ParseTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

package posts

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"Glimpse/internal/media"
)

// uploadFolder is the namespace post media is stored under on the host
const uploadFolder = "posts"

type postService struct {
	repo      Repository
	uploader  media.Uploader
	mediaBase string
	logger    *slog.Logger
}

// NewPostService creates a new post service.
// mediaBase is the public base URL video thumbnail locations are derived
// from; it should match the uploader's serving host.
func NewPostService(repo Repository, uploader media.Uploader, mediaBase string, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &postService{
		repo:      repo,
		uploader:  uploader,
		mediaBase: mediaBase,
		logger:    logger,
	}
}

// CreatePost creates a new post
// Flow:
// 1. Validate type, lengths and media presence
// 2. For non-text types, upload the buffer to the media host
// 3. For video, derive the thumbnail URL from the storage identifier
// 4. Persist with views=0, published=true
// Upload failure aborts the whole operation; no partial post is stored.
func (s *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	var mediaURL, storageID, thumbnailURL *string

	if req.Type != PostTypeText {
		kind := media.KindImage
		if req.Type == PostTypeVideo {
			kind = media.KindVideo
		}

		result, err := s.uploader.Upload(ctx, req.Media, kind, uploadFolder)
		if err != nil {
			s.logger.Error("media upload failed",
				"user", req.UserID,
				"type", req.Type,
				"error", err)
			return nil, fmt.Errorf("failed to upload media: %w", err)
		}

		mediaURL = &result.URL
		storageID = &result.StorageID

		if req.Type == PostTypeVideo {
			thumb := media.ThumbnailURL(s.mediaBase, result.StorageID)
			thumbnailURL = &thumb
		}
	}

	post := &Post{
		ID:             uuid.NewString(),
		UserID:         req.UserID,
		Type:           req.Type,
		Title:          req.Title,
		Caption:        req.Caption,
		MediaURL:       mediaURL,
		MediaStorageID: storageID,
		ThumbnailURL:   thumbnailURL,
		Tags:           ParseTags(req.Tags),
		Views:          0,
		Published:      true,
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Info("post created",
		"post", created.ID,
		"user", created.UserID,
		"type", created.Type)

	return created, nil
}

// GetPost retrieves a post and counts the view
func (s *postService) GetPost(ctx context.Context, id string) (*Post, error) {
	if err := s.repo.IncrementViews(ctx, id); err != nil {
		// A lost view is not worth failing the read over
		s.logger.Warn("failed to increment views", "post", id, "error", err)
	}
	return s.repo.GetByID(ctx, id)
}

// Listing defaults and cap
const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListUserPosts retrieves a user's posts, newest first
func (s *postService) ListUserPosts(ctx context.Context, userID string, limit, offset int) ([]*Post, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListByUser(ctx, userID, limit, offset)
}

// React flips the acting user's engagement state on a post.
// Clearing the opposite reaction and toggling the target happen in a
// single repository transaction, so a user is never in both sets.
func (s *postService) React(ctx context.Context, postID, userID string, kind ReactionKind) (*ReactionResult, error) {
	if kind != ReactionLike && kind != ReactionDislike {
		return nil, ErrInvalidReaction
	}

	added, err := s.repo.ToggleReaction(ctx, postID, userID, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle %s: %w", kind, err)
	}

	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("reaction toggled",
		"post", postID,
		"user", userID,
		"kind", kind,
		"added", added)

	return &ReactionResult{
		Post:         post,
		Added:        added,
		LikeCount:    post.LikeCount,
		DislikeCount: post.DislikeCount,
	}, nil
}

// DeletePost removes a post after verifying ownership
func (s *postService) DeletePost(ctx context.Context, postID, actorID string) error {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != actorID {
		return ErrNotAuthorized
	}

	if err := s.repo.Delete(ctx, postID); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	s.logger.Info("post deleted", "post", postID, "user", actorID)
	return nil
}

func validateCreateRequest(req CreatePostRequest) error {
	if req.Type == "" {
		return ErrTypeRequired
	}
	if !req.Type.IsValid() {
		return ErrInvalidType
	}
	if len(req.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if len(req.Caption) > MaxCaptionLength {
		return ErrCaptionTooLong
	}
	if req.Type != PostTypeText && len(req.Media) == 0 {
		return ErrMediaRequired
	}
	return nil
}

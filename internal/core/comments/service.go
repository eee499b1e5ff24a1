package comments

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"Glimpse/internal/core/posts"
	"Glimpse/internal/core/users"
)

type commentService struct {
	repo     Repository
	postRepo posts.Repository
	userRepo users.Repository
	logger   *slog.Logger
}

// NewCommentService creates a new comment service
func NewCommentService(repo Repository, postRepo posts.Repository, userRepo users.Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &commentService{
		repo:     repo,
		postRepo: postRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// CreateComment adds a comment to a post.
// The author lookup is best-effort: a missing account doesn't block the
// comment, it just leaves the projection empty.
func (s *commentService) CreateComment(ctx context.Context, postID, actorID, content string) (*CreateCommentResult, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrContentEmpty
	}

	var author *users.Summary
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		s.logger.Warn("comment author lookup failed",
			"user", actorID,
			"post", postID,
			"error", err)
	} else {
		author = actor.Summarize()
	}

	comment := &Comment{
		ID:       uuid.NewString(),
		PostID:   postID,
		AuthorID: actorID,
		Content:  content,
	}

	created, err := s.repo.Create(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	created.Author = author

	s.logger.Info("comment created",
		"comment", created.ID,
		"post", postID,
		"user", actorID)

	return &CreateCommentResult{Comment: created, Author: author}, nil
}

// GetPostComments returns the post with its comments resolved in
// insertion order
func (s *commentService) GetPostComments(ctx context.Context, postID string) (*PostWithComments, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	list, err := s.repo.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return &PostWithComments{Post: post, Comments: list}, nil
}

// UpdateComment overwrites a comment's content after checking ownership
func (s *commentService) UpdateComment(ctx context.Context, commentID, actorID, content string) (*Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrContentEmpty
	}

	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if comment.AuthorID == "" {
		return nil, ErrNoAuthor
	}
	if comment.AuthorID != actorID {
		return nil, ErrNotAuthorized
	}

	updated, err := s.repo.UpdateContent(ctx, commentID, content)
	if err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	s.logger.Info("comment updated", "comment", commentID, "user", actorID)
	return updated, nil
}

// DeleteComment removes a comment by id
func (s *commentService) DeleteComment(ctx context.Context, commentID string) error {
	if err := s.repo.Delete(ctx, commentID); err != nil {
		return err
	}

	s.logger.Info("comment deleted", "comment", commentID)
	return nil
}

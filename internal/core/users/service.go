package users

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"Glimpse/internal/core/posts"
)

type userService struct {
	repo   Repository
	logger *slog.Logger
}

// NewUserService creates a new user service
func NewUserService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &userService{repo: repo, logger: logger}
}

// CreateUser registers a new account
func (s *userService) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	if req.Username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if req.Email == "" {
		return nil, fmt.Errorf("email is required")
	}

	user := &User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: req.PasswordHash,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user created", "user", created.ID, "username", created.Username)
	return created, nil
}

// GetProfile retrieves a user's profile
func (s *userService) GetProfile(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// GetProfileByUsername retrieves a profile by its unique username
func (s *userService) GetProfileByUsername(ctx context.Context, username string) (*User, error) {
	return s.repo.GetByUsername(ctx, username)
}

// UpdateProfile changes profile fields and returns the updated user
func (s *userService) UpdateProfile(ctx context.Context, id string, input UpdateProfileInput) (*User, error) {
	user, err := s.repo.UpdateProfile(ctx, id, input)
	if err != nil {
		return nil, err
	}

	s.logger.Info("profile updated", "user", id)
	return user, nil
}

// Follow makes actor follow target. The edge is a single row, so the
// follower entry on the target and the following entry on the actor are
// two views of the same write.
func (s *userService) Follow(ctx context.Context, actorID, targetID string) (*FollowResult, error) {
	if actorID == targetID {
		return nil, ErrSelfFollow
	}

	if err := s.repo.Follow(ctx, actorID, targetID); err != nil {
		return nil, err
	}

	s.logger.Info("user followed", "actor", actorID, "target", targetID)
	return s.loadFollowResult(ctx, actorID, targetID)
}

// Unfollow removes the follow relationship. Removing an edge that was
// never there is a harmless no-op.
func (s *userService) Unfollow(ctx context.Context, actorID, targetID string) (*FollowResult, error) {
	if err := s.repo.Unfollow(ctx, actorID, targetID); err != nil {
		return nil, err
	}

	s.logger.Info("user unfollowed", "actor", actorID, "target", targetID)
	return s.loadFollowResult(ctx, actorID, targetID)
}

func (s *userService) loadFollowResult(ctx context.Context, actorID, targetID string) (*FollowResult, error) {
	target, err := s.repo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	actor, err := s.repo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return &FollowResult{Target: target, Actor: actor}, nil
}

// SavePost idempotently adds a post to the acting user's saved set
func (s *userService) SavePost(ctx context.Context, actorID, postID string) (*User, error) {
	if err := s.repo.SavePost(ctx, actorID, postID); err != nil {
		return nil, err
	}

	s.logger.Info("post saved", "user", actorID, "post", postID)
	return s.loadWithSavedPosts(ctx, actorID)
}

// UnsavePost removes a post from the saved set; unsaving a post that was
// never saved still succeeds
func (s *userService) UnsavePost(ctx context.Context, actorID, postID string) (*User, error) {
	if err := s.repo.UnsavePost(ctx, actorID, postID); err != nil {
		return nil, err
	}

	s.logger.Info("post unsaved", "user", actorID, "post", postID)
	return s.loadWithSavedPosts(ctx, actorID)
}

func (s *userService) loadWithSavedPosts(ctx context.Context, userID string) (*User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	saved, err := s.repo.ListSavedPosts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve saved posts: %w", err)
	}

	user.SavedPosts = saved
	user.SavedPostIDs = lo.Map(saved, func(p *posts.Post, _ int) string { return p.ID })
	return user, nil
}

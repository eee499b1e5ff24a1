package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"Glimpse/internal/core/posts"
)

// Mock repository for testing
type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *User) (*User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *mockUserRepository) UpdateProfile(ctx context.Context, id string, input UpdateProfileInput) (*User, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *mockUserRepository) Follow(ctx context.Context, actorID, targetID string) error {
	args := m.Called(ctx, actorID, targetID)
	return args.Error(0)
}

func (m *mockUserRepository) Unfollow(ctx context.Context, actorID, targetID string) error {
	args := m.Called(ctx, actorID, targetID)
	return args.Error(0)
}

func (m *mockUserRepository) SavePost(ctx context.Context, userID, postID string) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *mockUserRepository) UnsavePost(ctx context.Context, userID, postID string) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *mockUserRepository) ListSavedPosts(ctx context.Context, userID string) ([]*posts.Post, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*posts.Post), args.Error(1)
}

func TestUserService_CreateUser(t *testing.T) {
	repo := new(mockUserRepository)
	service := NewUserService(repo, nil)
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*users.User")).Return(&User{
		ID:       "user-1",
		Username: "ada",
		Email:    "ada@example.com",
	}, nil)

	created, err := service.CreateUser(ctx, CreateUserRequest{
		Username:     "ada",
		Email:        "ada@example.com",
		PasswordHash: "$2a$10$stub",
	})
	require.NoError(t, err)
	assert.Equal(t, "ada", created.Username)

	repo.AssertExpectations(t)
}

func TestUserService_CreateUser_Validation(t *testing.T) {
	repo := new(mockUserRepository)
	service := NewUserService(repo, nil)
	ctx := context.Background()

	_, err := service.CreateUser(ctx, CreateUserRequest{Email: "a@b.c"})
	assert.Error(t, err)

	_, err = service.CreateUser(ctx, CreateUserRequest{Username: "ada"})
	assert.Error(t, err)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_GetProfileByUsername(t *testing.T) {
	repo := new(mockUserRepository)
	service := NewUserService(repo, nil)
	ctx := context.Background()

	repo.On("GetByUsername", ctx, "ada").Return(&User{ID: "user-1", Username: "ada"}, nil)
	repo.On("GetByUsername", ctx, "nobody").Return(nil, ErrUserNotFound)

	found, err := service.GetProfileByUsername(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, "user-1", found.ID)

	_, err = service.GetProfileByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_Follow(t *testing.T) {
	repo := new(mockUserRepository)
	service := NewUserService(repo, nil)
	ctx := context.Background()

	repo.On("Follow", ctx, "actor", "target").Return(nil)
	repo.On("GetByID", ctx, "target").Return(&User{
		ID:        "target",
		Followers: []string{"actor"},
	}, nil)
	repo.On("GetByID", ctx, "actor").Return(&User{
		ID:        "actor",
		Following: []string{"target"},
	}, nil)

	result, err := service.Follow(ctx, "actor", "target")
	require.NoError(t, err)

	// Both sides of the edge come back from the same write
	assert.Contains(t, result.Target.Followers, "actor")
	assert.Contains(t, result.Actor.Following, "target")

	repo.AssertExpectations(t)
}

func TestUserService_Follow_Self(t *testing.T) {
	repo := new(mockUserRepository)
	service := NewUserService(repo, nil)

	_, err := service.Follow(context.Background(), "user-1", "user-1")
	assert.ErrorIs(t, err, ErrSelfFollow)

	repo.AssertNotCalled(t, "Follow", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_Follow_TargetMissing(t *testing.T) {
	repo := new(mockUserRepository)
	service := NewUserService(repo, nil)
	ctx := context.Background()

	repo.On("Follow", ctx, "actor", "ghost").Return(ErrUserNotFound)

	_, err := service.Follow(ctx, "actor", "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_Unfollow_SelfAllowed(t *testing.T) {
	// Unfollow carries no self guard: deleting an edge that cannot
	// exist is a no-op.
	repo := new(mockUserRepository)
	service := NewUserService(repo, nil)
	ctx := context.Background()

	repo.On("Unfollow", ctx, "user-1", "user-1").Return(nil)
	repo.On("GetByID", ctx, "user-1").Return(&User{ID: "user-1"}, nil)

	result, err := service.Unfollow(ctx, "user-1", "user-1")
	require.NoError(t, err)
	assert.Empty(t, result.Actor.Following)
}

func TestUserService_Unfollow(t *testing.T) {
	repo := new(mockUserRepository)
	service := NewUserService(repo, nil)
	ctx := context.Background()

	repo.On("Unfollow", ctx, "actor", "target").Return(nil)
	repo.On("GetByID", ctx, "target").Return(&User{ID: "target"}, nil)
	repo.On("GetByID", ctx, "actor").Return(&User{ID: "actor"}, nil)

	result, err := service.Unfollow(ctx, "actor", "target")
	require.NoError(t, err)
	assert.NotContains(t, result.Target.Followers, "actor")
	assert.NotContains(t, result.Actor.Following, "target")
}

func TestUserService_SavePost(t *testing.T) {
	repo := new(mockUserRepository)
	service := NewUserService(repo, nil)
	ctx := context.Background()

	saved := []*posts.Post{
		{ID: "post-2", Title: "newer"},
		{ID: "post-1", Title: "older"},
	}

	repo.On("SavePost", ctx, "user-1", "post-2").Return(nil)
	repo.On("GetByID", ctx, "user-1").Return(&User{ID: "user-1"}, nil)
	repo.On("ListSavedPosts", ctx, "user-1").Return(saved, nil)

	user, err := service.SavePost(ctx, "user-1", "post-2")
	require.NoError(t, err)

	require.Len(t, user.SavedPosts, 2)
	assert.Equal(t, []string{"post-2", "post-1"}, user.SavedPostIDs)

	repo.AssertExpectations(t)
}

func TestUserService_SavePost_PostMissing(t *testing.T) {
	repo := new(mockUserRepository)
	service := NewUserService(repo, nil)
	ctx := context.Background()

	repo.On("SavePost", ctx, "user-1", "ghost").Return(posts.ErrPostNotFound)

	_, err := service.SavePost(ctx, "user-1", "ghost")
	assert.ErrorIs(t, err, posts.ErrPostNotFound)
}

func TestUserService_UnsavePost_NeverSaved(t *testing.T) {
	repo := new(mockUserRepository)
	service := NewUserService(repo, nil)
	ctx := context.Background()

	repo.On("UnsavePost", ctx, "user-1", "post-9").Return(nil)
	repo.On("GetByID", ctx, "user-1").Return(&User{ID: "user-1"}, nil)
	repo.On("ListSavedPosts", ctx, "user-1").Return([]*posts.Post{}, nil)

	user, err := service.UnsavePost(ctx, "user-1", "post-9")
	require.NoError(t, err)
	assert.Empty(t, user.SavedPosts)
	assert.Empty(t, user.SavedPostIDs)
}

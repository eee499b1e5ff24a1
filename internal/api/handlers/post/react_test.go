package post

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/posts"
)

type mockPostService struct {
	mock.Mock
}

func (m *mockPostService) CreatePost(ctx context.Context, req posts.CreatePostRequest) (*posts.Post, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.Post), args.Error(1)
}

func (m *mockPostService) GetPost(ctx context.Context, id string) (*posts.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.Post), args.Error(1)
}

func (m *mockPostService) ListUserPosts(ctx context.Context, userID string, limit, offset int) ([]*posts.Post, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*posts.Post), args.Error(1)
}

func (m *mockPostService) React(ctx context.Context, postID, userID string, kind posts.ReactionKind) (*posts.ReactionResult, error) {
	args := m.Called(ctx, postID, userID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.ReactionResult), args.Error(1)
}

func (m *mockPostService) DeletePost(ctx context.Context, postID, actorID string) error {
	args := m.Called(ctx, postID, actorID)
	return args.Error(0)
}

func newReactRouter(service posts.Service) chi.Router {
	handler := NewReactHandler(service)
	identity := middleware.NewIdentityMiddleware(middleware.HeaderIdentityResolver{})

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(identity.RequireIdentity)
		r.Post("/api/posts/{postID}/like", handler.HandleLike)
		r.Post("/api/posts/{postID}/dislike", handler.HandleDislike)
	})
	return r
}

func TestReactHandler_LikeAdded(t *testing.T) {
	service := new(mockPostService)
	router := newReactRouter(service)

	service.On("React", mock.Anything, "post-1", "user-1", posts.ReactionLike).Return(&posts.ReactionResult{
		Post:      &posts.Post{ID: "post-1", LikedBy: []string{"user-1"}, LikeCount: 1},
		Added:     true,
		LikeCount: 1,
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/posts/post-1/like", nil)
	req.Header.Set("X-User-ID", "user-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "like added", body["message"])
	assert.Equal(t, float64(1), body["likeCount"])
	assert.Equal(t, float64(0), body["dislikeCount"])

	service.AssertExpectations(t)
}

func TestReactHandler_DislikeRemoved(t *testing.T) {
	service := new(mockPostService)
	router := newReactRouter(service)

	service.On("React", mock.Anything, "post-1", "user-1", posts.ReactionDislike).Return(&posts.ReactionResult{
		Post:  &posts.Post{ID: "post-1"},
		Added: false,
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/posts/post-1/dislike", nil)
	req.Header.Set("X-User-ID", "user-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "dislike removed", body["message"])
}

func TestReactHandler_RequiresIdentity(t *testing.T) {
	service := new(mockPostService)
	router := newReactRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/api/posts/post-1/like", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	service.AssertNotCalled(t, "React", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReactHandler_PostNotFound(t *testing.T) {
	service := new(mockPostService)
	router := newReactRouter(service)

	service.On("React", mock.Anything, "ghost", "user-1", posts.ReactionLike).
		Return(nil, posts.ErrPostNotFound)

	req := httptest.NewRequest(http.MethodPost, "/api/posts/ghost/like", nil)
	req.Header.Set("X-User-ID", "user-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
}

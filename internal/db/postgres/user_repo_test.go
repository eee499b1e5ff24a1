package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepo_ListSavedPosts_HydratesSets(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	owner := seedUser(t, db)
	saver := seedUser(t, db)
	post := seedTextPost(t, db, owner.ID)

	repo := NewUserRepository(db)
	require.NoError(t, repo.SavePost(ctx, saver.ID, post.ID))

	saved, err := repo.ListSavedPosts(ctx, saver.ID)
	require.NoError(t, err)
	require.Len(t, saved, 1)

	// Sets come back as empty lists, matching a direct post read
	got := saved[0]
	assert.Equal(t, post.ID, got.ID)
	assert.Equal(t, []string{}, got.Tags)
	assert.Equal(t, []string{}, got.LikedBy)
	assert.Equal(t, []string{}, got.DislikedBy)
}

func TestUserRepo_SavePost_Idempotent(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	owner := seedUser(t, db)
	saver := seedUser(t, db)
	post := seedTextPost(t, db, owner.ID)

	repo := NewUserRepository(db)
	require.NoError(t, repo.SavePost(ctx, saver.ID, post.ID))
	require.NoError(t, repo.SavePost(ctx, saver.ID, post.ID))

	saved, err := repo.ListSavedPosts(ctx, saver.ID)
	require.NoError(t, err)
	assert.Len(t, saved, 1)
}

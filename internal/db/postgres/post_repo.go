package postgres

import (
	"Glimpse/internal/core/posts"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lib/pq"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// postColumns is the hydrated select list shared by post reads.
// Reaction sets are aggregated per kind; array_remove drops the NULL an
// empty aggregate produces.
const postColumns = `
	p.id, p.user_id, p.type, p.title, p.caption,
	p.media_url, p.media_storage_id, p.thumbnail_url,
	p.tags, p.views, p.published, p.created_at, p.updated_at,
	array_remove(array_agg(r.user_id) FILTER (WHERE r.kind = 'like'), NULL) AS liked_by,
	array_remove(array_agg(r.user_id) FILTER (WHERE r.kind = 'dislike'), NULL) AS disliked_by`

const postFrom = `
	FROM posts p
	LEFT JOIN post_reactions r ON r.post_id = p.id`

const postGroup = ` GROUP BY p.id`

// Create inserts a new post
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	query := `
		INSERT INTO posts (id, user_id, type, title, caption, media_url, media_storage_id, thumbnail_url, tags, views, published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		post.ID, post.UserID, post.Type, post.Title, post.Caption,
		post.MediaURL, post.MediaStorageID, post.ThumbnailURL,
		pq.Array(post.Tags), post.Views, post.Published,
	).Scan(&post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "posts_user_id_fkey") {
			return nil, fmt.Errorf("post owner does not exist: %s", post.UserID)
		}
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	post.LikedBy = []string{}
	post.DislikedBy = []string{}
	return post, nil
}

// GetByID retrieves a post with tags and reaction sets hydrated
func (r *postgresPostRepo) GetByID(ctx context.Context, id string) (*posts.Post, error) {
	query := `SELECT` + postColumns + postFrom + ` WHERE p.id = $1` + postGroup

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

// ListByUser retrieves a user's posts, newest first
func (r *postgresPostRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*posts.Post, error) {
	query := `SELECT` + postColumns + postFrom + ` WHERE p.user_id = $1` + postGroup +
		` ORDER BY p.created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer closeRows(rows)

	result := []*posts.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		result = append(result, post)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}
	return result, nil
}

// ToggleReaction atomically moves the user between the like/dislike
// partitions of a post. The opposite-kind delete, the target-kind delete
// and the conditional insert run in one transaction, so the
// one-reaction-per-user invariant holds even across concurrent calls.
func (r *postgresPostRepo) ToggleReaction(ctx context.Context, postID, userID string, kind posts.ReactionKind) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to start reaction transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			slog.Error("failed to rollback reaction transaction",
				slog.String("post", postID),
				slog.String("error", err.Error()))
		}
	}()

	// Clear any opposite reaction unconditionally
	_, err = tx.ExecContext(ctx,
		`DELETE FROM post_reactions WHERE post_id = $1 AND user_id = $2 AND kind = $3`,
		postID, userID, kind.Opposite())
	if err != nil {
		return false, fmt.Errorf("failed to clear opposite reaction: %w", err)
	}

	// Try to toggle off: if the user already reacted with this kind the
	// delete hits a row and the net effect is removal
	result, err := tx.ExecContext(ctx,
		`DELETE FROM post_reactions WHERE post_id = $1 AND user_id = $2 AND kind = $3`,
		postID, userID, kind)
	if err != nil {
		return false, fmt.Errorf("failed to toggle reaction: %w", err)
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check toggled reaction: %w", err)
	}

	added := false
	if removed == 0 {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO post_reactions (post_id, user_id, kind) VALUES ($1, $2, $3)
			 ON CONFLICT (post_id, user_id) DO UPDATE SET kind = EXCLUDED.kind`,
			postID, userID, kind)
		if err != nil {
			if strings.Contains(err.Error(), "post_reactions_post_id_fkey") {
				return false, posts.ErrPostNotFound
			}
			return false, fmt.Errorf("failed to add reaction: %w", err)
		}
		added = true
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit reaction transaction: %w", err)
	}
	return added, nil
}

// IncrementViews bumps the view counter; unknown ids affect no rows
func (r *postgresPostRepo) IncrementViews(ctx context.Context, postID string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE posts SET views = views + 1 WHERE id = $1`, postID)
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	return nil
}

// Delete removes a post; reactions, comments and saves cascade
func (r *postgresPostRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted post: %w", err)
	}
	if affected == 0 {
		return posts.ErrPostNotFound
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanPost(s scanner) (*posts.Post, error) {
	post := &posts.Post{}
	var title, caption sql.NullString
	var tags, likedBy, dislikedBy pq.StringArray

	err := s.Scan(
		&post.ID, &post.UserID, &post.Type, &title, &caption,
		&post.MediaURL, &post.MediaStorageID, &post.ThumbnailURL,
		&tags, &post.Views, &post.Published, &post.CreatedAt, &post.UpdatedAt,
		&likedBy, &dislikedBy,
	)
	if err != nil {
		return nil, err
	}

	post.Title = title.String
	post.Caption = caption.String
	post.Tags = tags
	if post.Tags == nil {
		post.Tags = []string{}
	}
	post.LikedBy = likedBy
	post.DislikedBy = dislikedBy
	if post.LikedBy == nil {
		post.LikedBy = []string{}
	}
	if post.DislikedBy == nil {
		post.DislikedBy = []string{}
	}
	post.LikeCount = len(post.LikedBy)
	post.DislikeCount = len(post.DislikedBy)
	return post, nil
}

func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		slog.Warn("failed to close rows", slog.String("error", err.Error()))
	}
}

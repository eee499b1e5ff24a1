package postgres

import (
	"Glimpse/internal/core/comments"
	"Glimpse/internal/core/posts"
	"Glimpse/internal/core/users"
	"context"
	"database/sql"
	"fmt"
	"strings"
)

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.Repository {
	return &postgresCommentRepo{db: db}
}

// Create inserts a new comment. The post_id foreign key doubles as the
// append onto the post's comment-reference collection.
func (r *postgresCommentRepo) Create(ctx context.Context, comment *comments.Comment) (*comments.Comment, error) {
	query := `
		INSERT INTO comments (id, post_id, author_id, content)
		VALUES ($1, $2, NULLIF($3, ''), $4)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		comment.ID, comment.PostID, comment.AuthorID, comment.Content,
	).Scan(&comment.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "comments_post_id_fkey") {
			return nil, posts.ErrPostNotFound
		}
		if strings.Contains(err.Error(), "comments_author_id_fkey") {
			return nil, users.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}

	return comment, nil
}

// GetByID retrieves a comment by its identifier
func (r *postgresCommentRepo) GetByID(ctx context.Context, id string) (*comments.Comment, error) {
	query := `
		SELECT id, post_id, author_id, content, created_at
		FROM comments
		WHERE id = $1`

	comment := &comments.Comment{}
	var authorID sql.NullString

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID, &comment.PostID, &authorID, &comment.Content, &comment.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, comments.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	comment.AuthorID = authorID.String
	return comment, nil
}

// UpdateContent overwrites a comment's content
func (r *postgresCommentRepo) UpdateContent(ctx context.Context, id, content string) (*comments.Comment, error) {
	query := `
		UPDATE comments
		SET content = $2
		WHERE id = $1
		RETURNING id, post_id, author_id, content, created_at`

	comment := &comments.Comment{}
	var authorID sql.NullString

	err := r.db.QueryRowContext(ctx, query, id, content).Scan(
		&comment.ID, &comment.PostID, &authorID, &comment.Content, &comment.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, comments.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	comment.AuthorID = authorID.String
	return comment, nil
}

// Delete removes a comment by id
func (r *postgresCommentRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted comment: %w", err)
	}
	if affected == 0 {
		return comments.ErrCommentNotFound
	}
	return nil
}

// ListByPost retrieves a post's comments in insertion order with author
// projections hydrated in the same query
func (r *postgresCommentRepo) ListByPost(ctx context.Context, postID string) ([]*comments.Comment, error) {
	query := `
		SELECT c.id, c.post_id, c.author_id, c.content, c.created_at,
		       u.id, u.username, u.avatar_url
		FROM comments c
		LEFT JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC, c.id ASC`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer closeRows(rows)

	result := []*comments.Comment{}
	for rows.Next() {
		comment := &comments.Comment{}
		var authorID, summaryID, username, avatar sql.NullString

		err := rows.Scan(
			&comment.ID, &comment.PostID, &authorID, &comment.Content, &comment.CreatedAt,
			&summaryID, &username, &avatar)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}

		comment.AuthorID = authorID.String
		if summaryID.Valid {
			comment.Author = &users.Summary{
				ID:        summaryID.String,
				Username:  username.String,
				AvatarURL: avatar.String,
			}
		}
		result = append(result, comment)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}
	return result, nil
}

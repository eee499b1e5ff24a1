package postgres

import (
	"Glimpse/internal/core/posts"
	"Glimpse/internal/core/users"
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.Repository {
	return &postgresUserRepo{db: db}
}

// userColumns hydrates the relationship sets with array subqueries so a
// profile read stays a single round trip
const userColumns = `
	u.id, u.username, u.email, u.password_hash, u.bio, u.avatar_url,
	u.created_at, u.updated_at,
	(SELECT COALESCE(array_agg(f.follower_id ORDER BY f.created_at), '{}') FROM follows f WHERE f.followee_id = u.id) AS followers,
	(SELECT COALESCE(array_agg(f.followee_id ORDER BY f.created_at), '{}') FROM follows f WHERE f.follower_id = u.id) AS following,
	(SELECT COALESCE(array_agg(s.post_id ORDER BY s.created_at DESC), '{}') FROM saved_posts s WHERE s.user_id = u.id) AS saved_posts`

// Create inserts a new user
func (r *postgresUserRepo) Create(ctx context.Context, user *users.User) (*users.User, error) {
	query := `
		INSERT INTO users (id, username, email, password_hash, bio, avatar_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.Bio, user.AvatarURL,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "users_username_key") {
			return nil, users.ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user.Followers = []string{}
	user.Following = []string{}
	user.SavedPostIDs = []string{}
	return user, nil
}

// GetByID retrieves a user with relationship sets hydrated
func (r *postgresUserRepo) GetByID(ctx context.Context, id string) (*users.User, error) {
	query := `SELECT` + userColumns + ` FROM users u WHERE u.id = $1`
	return r.getOne(ctx, query, id)
}

// GetByUsername retrieves a user by their unique username
func (r *postgresUserRepo) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	query := `SELECT` + userColumns + ` FROM users u WHERE u.username = $1`
	return r.getOne(ctx, query, username)
}

func (r *postgresUserRepo) getOne(ctx context.Context, query string, arg interface{}) (*users.User, error) {
	user := &users.User{}
	var bio, avatar sql.NullString
	var followers, following, saved pq.StringArray

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &bio, &avatar,
		&user.CreatedAt, &user.UpdatedAt,
		&followers, &following, &saved,
	)
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.Bio = bio.String
	user.AvatarURL = avatar.String
	user.Followers = followers
	user.Following = following
	user.SavedPostIDs = saved
	return user, nil
}

// UpdateProfile changes the non-nil fields of input
func (r *postgresUserRepo) UpdateProfile(ctx context.Context, id string, input users.UpdateProfileInput) (*users.User, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argNum := 1

	if input.Username != nil {
		setClauses = append(setClauses, fmt.Sprintf("username = $%d", argNum))
		args = append(args, *input.Username)
		argNum++
	}
	if input.Email != nil {
		setClauses = append(setClauses, fmt.Sprintf("email = $%d", argNum))
		args = append(args, *input.Email)
		argNum++
	}
	if input.Bio != nil {
		setClauses = append(setClauses, fmt.Sprintf("bio = $%d", argNum))
		args = append(args, *input.Bio)
		argNum++
	}
	if input.AvatarURL != nil {
		setClauses = append(setClauses, fmt.Sprintf("avatar_url = $%d", argNum))
		args = append(args, *input.AvatarURL)
		argNum++
	}

	args = append(args, id)

	query := fmt.Sprintf(`UPDATE users u SET %s WHERE u.id = $%d RETURNING`+userColumns,
		strings.Join(setClauses, ", "), argNum)

	user := &users.User{}
	var bio, avatar sql.NullString
	var followers, following, saved pq.StringArray

	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &bio, &avatar,
		&user.CreatedAt, &user.UpdatedAt,
		&followers, &following, &saved,
	)
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "users_username_key") {
			return nil, users.ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	user.Bio = bio.String
	user.AvatarURL = avatar.String
	user.Followers = followers
	user.Following = following
	user.SavedPostIDs = saved
	return user, nil
}

// Follow records the actor→target edge. The single row carries both the
// "follower of target" and "following of actor" views of the relation.
func (r *postgresUserRepo) Follow(ctx context.Context, actorID, targetID string) error {
	query := `
		INSERT INTO follows (follower_id, followee_id)
		VALUES ($1, $2)
		ON CONFLICT (follower_id, followee_id) DO NOTHING`

	_, err := r.db.ExecContext(ctx, query, actorID, targetID)
	if err != nil {
		if strings.Contains(err.Error(), "follows_followee_id_fkey") ||
			strings.Contains(err.Error(), "follows_follower_id_fkey") {
			return users.ErrUserNotFound
		}
		return fmt.Errorf("failed to record follow: %w", err)
	}
	return nil
}

// Unfollow removes the actor→target edge; a missing edge affects no rows
func (r *postgresUserRepo) Unfollow(ctx context.Context, actorID, targetID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2`,
		actorID, targetID)
	if err != nil {
		return fmt.Errorf("failed to remove follow: %w", err)
	}
	return nil
}

// SavePost adds a post to the user's saved set; duplicates are a no-op
func (r *postgresUserRepo) SavePost(ctx context.Context, userID, postID string) error {
	query := `
		INSERT INTO saved_posts (user_id, post_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, post_id) DO NOTHING`

	_, err := r.db.ExecContext(ctx, query, userID, postID)
	if err != nil {
		if strings.Contains(err.Error(), "saved_posts_post_id_fkey") {
			return posts.ErrPostNotFound
		}
		if strings.Contains(err.Error(), "saved_posts_user_id_fkey") {
			return users.ErrUserNotFound
		}
		return fmt.Errorf("failed to save post: %w", err)
	}
	return nil
}

// UnsavePost removes a post from the saved set; not-saved is a no-op
func (r *postgresUserRepo) UnsavePost(ctx context.Context, userID, postID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM saved_posts WHERE user_id = $1 AND post_id = $2`,
		userID, postID)
	if err != nil {
		return fmt.Errorf("failed to unsave post: %w", err)
	}
	return nil
}

// ListSavedPosts resolves the saved set to full post records, most
// recently saved first
func (r *postgresUserRepo) ListSavedPosts(ctx context.Context, userID string) ([]*posts.Post, error) {
	query := `SELECT` + postColumns + `
		FROM saved_posts s
		JOIN posts p ON p.id = s.post_id
		LEFT JOIN post_reactions r ON r.post_id = p.id
		WHERE s.user_id = $1
		GROUP BY p.id, s.created_at
		ORDER BY s.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved posts: %w", err)
	}
	defer closeRows(rows)

	result := []*posts.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan saved post row: %w", err)
		}
		result = append(result, post)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating saved post rows: %w", err)
	}
	return result, nil
}

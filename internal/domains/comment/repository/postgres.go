package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"blog-backend/internal/domains/comment"
	"blog-backend/internal/domains/comment/model"
)

const commentColumns = `id, post_id, name, email, content, is_approved, created_at`

// DB is the subset of pgxpool.Pool the repository needs. pgxmock
// satisfies it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type postgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) comment.Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, c *model.Comment) error {
	const query = `
		INSERT INTO comments (id, post_id, name, email, content, is_approved, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		c.ID, c.PostID, c.Name, c.Email, c.Content, c.IsApproved, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create comment: %w", err)
	}

	return nil
}

func (r *postgresRepository) ListApproved(ctx context.Context, postID uuid.UUID) ([]model.Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comments
		WHERE post_id = $1 AND is_approved
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("list approved comments: %w", err)
	}

	return scanComments(rows)
}

func (r *postgresRepository) ListAll(ctx context.Context) ([]model.ModerationEntry, error) {
	const query = `
		SELECT c.id, c.post_id, c.name, c.email, c.content, c.is_approved, c.created_at, p.title
		FROM comments c
		JOIN posts p ON p.id = c.post_id
		ORDER BY c.created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return scanModerationEntries(rows)
}

func (r *postgresRepository) Approve(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	// Unconditional write keeps approval idempotent: re-approving just
	// rewrites the same value.
	query := `
		UPDATE comments
		SET is_approved = TRUE
		WHERE id = $1
		RETURNING ` + commentColumns

	return scanComment(r.db.QueryRow(ctx, query, id))
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return comment.ErrCommentNotFound
	}

	return nil
}

func (r *postgresRepository) CountAll(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM comments`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}
	return total, nil
}

func (r *postgresRepository) CountPending(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM comments WHERE NOT is_approved`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count pending comments: %w", err)
	}
	return total, nil
}

func (r *postgresRepository) Recent(ctx context.Context, limit int) ([]model.ModerationEntry, error) {
	const query = `
		SELECT c.id, c.post_id, c.name, c.email, c.content, c.is_approved, c.created_at, p.title
		FROM comments c
		JOIN posts p ON p.id = c.post_id
		ORDER BY c.created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent comments: %w", err)
	}

	return scanModerationEntries(rows)
}

func scanComment(row pgx.Row) (*model.Comment, error) {
	var c model.Comment
	err := row.Scan(&c.ID, &c.PostID, &c.Name, &c.Email, &c.Content, &c.IsApproved, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, comment.ErrCommentNotFound
		}
		return nil, fmt.Errorf("scan comment: %w", err)
	}
	return &c, nil
}

func scanComments(rows pgx.Rows) ([]model.Comment, error) {
	defer rows.Close()

	comments := make([]model.Comment, 0)
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.Name, &c.Email, &c.Content, &c.IsApproved, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("comment rows: %w", err)
	}

	return comments, nil
}

func scanModerationEntries(rows pgx.Rows) ([]model.ModerationEntry, error) {
	defer rows.Close()

	entries := make([]model.ModerationEntry, 0)
	for rows.Next() {
		var e model.ModerationEntry
		err := rows.Scan(
			&e.ID, &e.PostID, &e.Name, &e.Email, &e.Content, &e.IsApproved, &e.CreatedAt,
			&e.PostTitle,
		)
		if err != nil {
			return nil, fmt.Errorf("scan comment entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("comment rows: %w", err)
	}

	return entries, nil
}

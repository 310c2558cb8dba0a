package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"blog-backend/internal/domains/post"
	"blog-backend/internal/domains/post/model"
	"blog-backend/internal/shared/utils"
	"blog-backend/pkg/database"
)

// postColumns is every column of the posts table except the generated
// search vector, in scan order.
const postColumns = `
	id, title, content, author, summary, category, tags,
	featured_image, image_url, excerpt,
	publish_date, is_published, views, created_at, updated_at`

// DB is the subset of pgxpool.Pool the repository needs. pgxmock
// satisfies it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type postgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) post.Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, p *model.Post) error {
	const query = `
		INSERT INTO posts (
			id, title, content, author, summary, category, tags,
			featured_image, image_url, excerpt,
			publish_date, is_published, views, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.db.Exec(ctx, query,
		p.ID,
		p.Title,
		p.Content,
		p.Author,
		p.Summary,
		p.Category,
		pq.Array(p.Tags),
		p.FeaturedImage,
		p.ImageURL,
		p.Excerpt,
		p.PublishDate,
		p.IsPublished,
		p.Views,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create post: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	return scanPost(r.db.QueryRow(ctx, query, id))
}

// IncrementViews reads and bumps the counter in one statement, so
// concurrent fetches cannot lose an increment. The is_published guard
// keeps unpublished posts indistinguishable from absent ones.
func (r *postgresRepository) IncrementViews(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	query := `
		UPDATE posts
		SET views = views + 1
		WHERE id = $1 AND is_published
		RETURNING ` + postColumns

	return scanPost(r.db.QueryRow(ctx, query, id))
}

func (r *postgresRepository) Update(ctx context.Context, p *model.Post) error {
	const query = `
		UPDATE posts
		SET title = $2, content = $3, summary = $4, category = $5, tags = $6,
			featured_image = $7, image_url = $8, excerpt = $9,
			is_published = $10, updated_at = $11
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		p.ID,
		p.Title,
		p.Content,
		p.Summary,
		p.Category,
		pq.Array(p.Tags),
		p.FeaturedImage,
		p.ImageURL,
		p.Excerpt,
		p.IsPublished,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}

	return nil
}

// Delete cascades inside one transaction: comments first, then the post.
// Either both rows sets go or neither does, so readers never observe
// orphaned comments.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return database.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE post_id = $1`, id); err != nil {
			return fmt.Errorf("delete post comments: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete post: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return post.ErrPostNotFound
		}

		return nil
	})
}

func (r *postgresRepository) ListPublished(ctx context.Context, limit, offset int) ([]model.Post, int, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE is_published
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list published posts: %w", err)
	}

	posts, err := scanPosts(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM posts WHERE is_published`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count published posts: %w", err)
	}

	return posts, total, nil
}

func (r *postgresRepository) ListAll(ctx context.Context) ([]model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	return scanPosts(rows)
}

// Search runs both filters in a single statement; an empty query or an
// empty tag list disables the respective predicate.
func (r *postgresRepository) Search(ctx context.Context, query string, tags []string) ([]model.Post, error) {
	sql := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE is_published
			AND ($1 = '' OR search_vector @@ websearch_to_tsquery('simple', $1))
			AND (cardinality($2::text[]) = 0 OR tags && $2::text[])
		ORDER BY created_at DESC
	`

	if tags == nil {
		tags = []string{}
	}

	rows, err := r.db.Query(ctx, sql, query, pq.Array(tags))
	if err != nil {
		return nil, fmt.Errorf("search posts: %w", err)
	}

	return scanPosts(rows)
}

// Categories aggregates in two queries: the counts, then the top three
// newest posts per category via a window function. Ordering by count is
// taken from the first query.
func (r *postgresRepository) Categories(ctx context.Context) ([]post.CategoryGroup, error) {
	const countQuery = `
		SELECT category, COUNT(*)
		FROM posts
		WHERE is_published
		GROUP BY category
		ORDER BY COUNT(*) DESC, category ASC
	`

	rows, err := r.db.Query(ctx, countQuery)
	if err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}

	groups := make([]post.CategoryGroup, 0)
	index := make(map[string]int)
	for rows.Next() {
		var g post.CategoryGroup
		if err := rows.Scan(&g.Name, &g.Count); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan category: %w", err)
		}
		g.Slug = utils.CategorySlug(g.Name)
		g.Posts = make([]model.Post, 0, 3)
		index[g.Name] = len(groups)
		groups = append(groups, g)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("category rows: %w", err)
	}

	previewQuery := `
		SELECT ` + postColumns + `
		FROM (
			SELECT *, ROW_NUMBER() OVER (PARTITION BY category ORDER BY created_at DESC) AS rn
			FROM posts
			WHERE is_published
		) ranked
		WHERE rn <= 3
		ORDER BY created_at DESC
	`

	previewRows, err := r.db.Query(ctx, previewQuery)
	if err != nil {
		return nil, fmt.Errorf("category previews: %w", err)
	}

	previews, err := scanPosts(previewRows)
	if err != nil {
		return nil, err
	}

	for _, p := range previews {
		if i, ok := index[p.Category]; ok {
			groups[i].Posts = append(groups[i].Posts, p)
		}
	}

	return groups, nil
}

func (r *postgresRepository) CountAll(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM posts`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return total, nil
}

func (r *postgresRepository) CountPublished(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM posts WHERE is_published`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count published posts: %w", err)
	}
	return total, nil
}

func (r *postgresRepository) Recent(ctx context.Context, limit int) ([]model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent posts: %w", err)
	}

	return scanPosts(rows)
}

func scanPost(row pgx.Row) (*model.Post, error) {
	var p model.Post
	var tags []string

	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Content,
		&p.Author,
		&p.Summary,
		&p.Category,
		pq.Array(&tags),
		&p.FeaturedImage,
		&p.ImageURL,
		&p.Excerpt,
		&p.PublishDate,
		&p.IsPublished,
		&p.Views,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		return nil, fmt.Errorf("scan post: %w", err)
	}

	p.Tags = tags
	return &p, nil
}

func scanPosts(rows pgx.Rows) ([]model.Post, error) {
	defer rows.Close()

	posts := make([]model.Post, 0)
	for rows.Next() {
		var p model.Post
		var tags []string

		err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Content,
			&p.Author,
			&p.Summary,
			&p.Category,
			pq.Array(&tags),
			&p.FeaturedImage,
			&p.ImageURL,
			&p.Excerpt,
			&p.PublishDate,
			&p.IsPublished,
			&p.Views,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}

		p.Tags = tags
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("post rows: %w", err)
	}

	return posts, nil
}

package post

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/domains/post/model"
)

// Repository is the content store contract for posts.
type Repository interface {
	Create(ctx context.Context, p *model.Post) error

	// GetByID fetches a post in any publish state. Admin paths only.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error)

	// IncrementViews atomically bumps the view counter of a published
	// post and returns the updated row. Unpublished or absent posts both
	// yield ErrPostNotFound.
	IncrementViews(ctx context.Context, id uuid.UUID) (*model.Post, error)

	// Update overwrites the full row. ErrPostNotFound if the id does not
	// resolve.
	Update(ctx context.Context, p *model.Post) error

	// Delete removes the post and every comment referencing it in one
	// transaction, comments first.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListPublished returns a newest-first page of published posts plus
	// the total published count.
	ListPublished(ctx context.Context, limit, offset int) ([]model.Post, int, error)

	// ListAll returns every post regardless of publish state,
	// newest-first. Admin management listing.
	ListAll(ctx context.Context) ([]model.Post, error)

	// Search matches published posts against a full-text query and/or a
	// tag intersection, newest-first. Empty query and empty tags each
	// disable their filter.
	Search(ctx context.Context, query string, tags []string) ([]model.Post, error)

	// Categories aggregates published posts per category: count plus up
	// to three newest posts each, ordered by descending count.
	Categories(ctx context.Context) ([]CategoryGroup, error)

	// CountAll / CountPublished feed the dashboard.
	CountAll(ctx context.Context) (int, error)
	CountPublished(ctx context.Context) (int, error)

	// Recent returns the newest posts regardless of publish state.
	Recent(ctx context.Context, limit int) ([]model.Post, error)
}

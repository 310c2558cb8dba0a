package post

import (
	"context"

	"blog-backend/internal/domains/post/model"
)

// Service is the content lifecycle contract for posts.
type Service interface {
	// ListPublished pages through published posts, newest-first.
	// page and limit fall back to DefaultPage/DefaultLimit when < 1.
	ListPublished(ctx context.Context, page, limit int) (*ListPostsResponse, error)

	// GetByID returns a published post and increments its view counter as
	// a side effect. Unpublished posts are reported as not found.
	GetByID(ctx context.Context, id string) (*model.Post, error)

	// Create stores a new post authored by the verified admin identity.
	Create(ctx context.Context, req CreatePostRequest, author string) (*model.Post, error)

	// Update applies a partial update; see UpdatePostRequest for the
	// presence semantics.
	Update(ctx context.Context, id string, req UpdatePostRequest) (*model.Post, error)

	// Delete removes the post and, first, every comment it owns.
	Delete(ctx context.Context, id string) error

	// Search finds published posts by full-text query and/or tag list.
	Search(ctx context.Context, query string, tags []string) ([]model.Post, error)

	// Categories aggregates published posts per category.
	Categories(ctx context.Context) ([]CategoryGroup, error)

	// ListAll is the admin management listing, all publish states.
	ListAll(ctx context.Context) ([]model.Post, error)
}

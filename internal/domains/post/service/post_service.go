package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"blog-backend/internal/domains/post"
	"blog-backend/internal/domains/post/model"
	"blog-backend/internal/shared/utils"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/logger"
)

const (
	categoriesCacheKey = "posts:categories"
	statsCacheKey      = "dashboard:stats"
	categoriesCacheTTL = 5 * time.Minute
)

type postService struct {
	repo      post.Repository
	cache     cache.Cache
	sanitizer *bluemonday.Policy
}

func NewPostService(repo post.Repository, c cache.Cache) post.Service {
	return &postService{
		repo: repo,
		// UGC policy: posts carry rich text, so formatting tags survive
		// while scripts and event handlers are stripped.
		sanitizer: bluemonday.UGCPolicy(),
		cache:     c,
	}
}

func (s *postService) ListPublished(ctx context.Context, page, limit int) (*post.ListPostsResponse, error) {
	if page < 1 {
		page = post.DefaultPage
	}
	if limit < 1 {
		limit = post.DefaultLimit
	}

	offset := (page - 1) * limit
	posts, total, err := s.repo.ListPublished(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	totalPages := (total + limit - 1) / limit

	return &post.ListPostsResponse{
		Posts:       posts,
		CurrentPage: page,
		TotalPages:  totalPages,
		Total:       total,
	}, nil
}

func (s *postService) GetByID(ctx context.Context, id string) (*model.Post, error) {
	postID, err := uuid.Parse(id)
	if err != nil {
		return nil, post.ErrPostNotFound
	}

	// The fetch is the increment: one UPDATE ... RETURNING keeps the view
	// counter exact under concurrent reads.
	return s.repo.IncrementViews(ctx, postID)
}

func (s *postService) Create(ctx context.Context, req post.CreatePostRequest, author string) (*model.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	category := req.Category
	if category == "" {
		category = model.DefaultCategory
	}

	now := time.Now()
	p := &model.Post{
		ID:          uuid.New(),
		Title:       req.Title,
		Content:     s.sanitizer.Sanitize(req.Content),
		Author:      author,
		Summary:     req.Summary,
		Category:    category,
		Tags:        utils.SplitTags(req.Tags),
		PublishDate: now,
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.FeaturedImage != "" {
		p.FeaturedImage = &req.FeaturedImage
	}
	if req.ImageURL != "" {
		p.ImageURL = &req.ImageURL
	}
	if req.Excerpt != "" {
		p.Excerpt = &req.Excerpt
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return p, nil
}

func (s *postService) Update(ctx context.Context, id string, req post.UpdatePostRequest) (*model.Post, error) {
	postID, err := uuid.Parse(id)
	if err != nil {
		return nil, post.ErrPostNotFound
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	// Presence decides the overwrite: only fields the request carries are
	// touched. An explicit isPublished=false unpublishes.
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Content != nil {
		p.Content = s.sanitizer.Sanitize(*req.Content)
	}
	if req.Summary != nil {
		p.Summary = *req.Summary
	}
	if req.Tags != nil {
		p.Tags = utils.SplitTags(*req.Tags)
	}
	if req.Category != nil {
		p.Category = *req.Category
		if p.Category == "" {
			p.Category = model.DefaultCategory
		}
	}
	if req.FeaturedImage != nil {
		p.FeaturedImage = req.FeaturedImage
	}
	if req.ImageURL != nil {
		p.ImageURL = req.ImageURL
	}
	if req.Excerpt != nil {
		p.Excerpt = req.Excerpt
	}
	if req.IsPublished != nil {
		p.IsPublished = *req.IsPublished
	}
	p.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return p, nil
}

func (s *postService) Delete(ctx context.Context, id string) error {
	postID, err := uuid.Parse(id)
	if err != nil {
		return post.ErrPostNotFound
	}

	if err := s.repo.Delete(ctx, postID); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *postService) Search(ctx context.Context, query string, tags []string) ([]model.Post, error) {
	return s.repo.Search(ctx, query, tags)
}

func (s *postService) Categories(ctx context.Context) ([]post.CategoryGroup, error) {
	var cached []post.CategoryGroup
	if hit, err := s.cache.Get(ctx, categoriesCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	groups, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, categoriesCacheKey, groups, categoriesCacheTTL); err != nil {
		logger.Debug("failed to cache categories", map[string]interface{}{"error": err.Error()})
	}

	return groups, nil
}

func (s *postService) ListAll(ctx context.Context) ([]model.Post, error) {
	return s.repo.ListAll(ctx)
}

// invalidate drops the derived aggregates after any post mutation. Cache
// failures are logged, never surfaced; Redis being down must not block
// writes.
func (s *postService) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, categoriesCacheKey, statsCacheKey); err != nil {
		logger.Debug("failed to invalidate post caches", map[string]interface{}{"error": err.Error()})
	}
}

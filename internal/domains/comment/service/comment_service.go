package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"blog-backend/internal/domains/comment"
	"blog-backend/internal/domains/comment/model"
	"blog-backend/internal/domains/post"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/logger"
)

const statsCacheKey = "dashboard:stats"

type commentService struct {
	repo      comment.Repository
	posts     post.Repository
	cache     cache.Cache
	sanitizer *bluemonday.Policy
}

func NewCommentService(repo comment.Repository, posts post.Repository, c cache.Cache) comment.Service {
	return &commentService{
		repo:  repo,
		posts: posts,
		// Comments are plain text: everything HTML is stripped.
		sanitizer: bluemonday.StrictPolicy(),
		cache:     c,
	}
}

func (s *commentService) ListForPost(ctx context.Context, postID string) ([]model.Comment, error) {
	id, err := s.resolvePublishedPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	return s.repo.ListApproved(ctx, id)
}

func (s *commentService) Create(ctx context.Context, postID string, req comment.CreateCommentRequest) (*model.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id, err := s.resolvePublishedPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	c := &model.Comment{
		ID:         uuid.New(),
		PostID:     id,
		Name:       s.sanitizer.Sanitize(req.Name),
		Email:      req.Email,
		Content:    s.sanitizer.Sanitize(req.Content),
		IsApproved: false,
		CreatedAt:  time.Now(),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return c, nil
}

func (s *commentService) ListAll(ctx context.Context) ([]model.ModerationEntry, error) {
	return s.repo.ListAll(ctx)
}

func (s *commentService) Approve(ctx context.Context, id string) (*model.Comment, error) {
	commentID, err := uuid.Parse(id)
	if err != nil {
		return nil, comment.ErrCommentNotFound
	}

	c, err := s.repo.Approve(ctx, commentID)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return c, nil
}

func (s *commentService) Delete(ctx context.Context, id string) error {
	commentID, err := uuid.Parse(id)
	if err != nil {
		return comment.ErrCommentNotFound
	}

	if err := s.repo.Delete(ctx, commentID); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

// resolvePublishedPost maps the path parameter to a post id, hiding
// unpublished posts the same way public post reads do.
func (s *commentService) resolvePublishedPost(ctx context.Context, postID string) (uuid.UUID, error) {
	id, err := uuid.Parse(postID)
	if err != nil {
		return uuid.Nil, post.ErrPostNotFound
	}

	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return uuid.Nil, err
	}
	if !p.IsPublished {
		return uuid.Nil, post.ErrPostNotFound
	}

	return p.ID, nil
}

func (s *commentService) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, statsCacheKey); err != nil {
		logger.Debug("failed to invalidate dashboard cache", map[string]interface{}{"error": err.Error()})
	}
}

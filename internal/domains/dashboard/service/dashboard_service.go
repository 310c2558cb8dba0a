package service

import (
	"context"
	"time"

	"blog-backend/internal/domains/comment"
	"blog-backend/internal/domains/dashboard"
	"blog-backend/internal/domains/post"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/logger"
)

const (
	statsCacheKey = "dashboard:stats"
	statsCacheTTL = time.Minute

	recentLimit = 5
)

type dashboardService struct {
	posts    post.Repository
	comments comment.Repository
	cache    cache.Cache
}

func NewDashboardService(posts post.Repository, comments comment.Repository, c cache.Cache) dashboard.Service {
	return &dashboardService{
		posts:    posts,
		comments: comments,
		cache:    c,
	}
}

// Stats aggregates counters and recency lists across both stores. The
// result is cached briefly; post and comment writes invalidate it.
func (s *dashboardService) Stats(ctx context.Context) (*dashboard.Stats, error) {
	var cached dashboard.Stats
	if hit, err := s.cache.Get(ctx, statsCacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	totalPosts, err := s.posts.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	publishedPosts, err := s.posts.CountPublished(ctx)
	if err != nil {
		return nil, err
	}
	totalComments, err := s.comments.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	pendingComments, err := s.comments.CountPending(ctx)
	if err != nil {
		return nil, err
	}

	recentPosts, err := s.posts.Recent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	recentComments, err := s.comments.Recent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}

	stats := &dashboard.Stats{
		TotalPosts:      totalPosts,
		PublishedPosts:  publishedPosts,
		DraftPosts:      totalPosts - publishedPosts,
		TotalComments:   totalComments,
		PendingComments: pendingComments,
		RecentPosts:     make([]dashboard.RecentPost, 0, len(recentPosts)),
		RecentComments:  make([]dashboard.RecentComment, 0, len(recentComments)),
	}

	for _, p := range recentPosts {
		stats.RecentPosts = append(stats.RecentPosts, dashboard.RecentPost{
			ID:          p.ID,
			Title:       p.Title,
			IsPublished: p.IsPublished,
			Views:       p.Views,
			CreatedAt:   p.CreatedAt,
		})
	}
	for _, e := range recentComments {
		stats.RecentComments = append(stats.RecentComments, dashboard.RecentComment{
			ID:         e.ID,
			PostID:     e.PostID,
			PostTitle:  e.PostTitle,
			Name:       e.Name,
			Content:    e.Content,
			IsApproved: e.IsApproved,
			CreatedAt:  e.CreatedAt,
		})
	}

	if err := s.cache.Set(ctx, statsCacheKey, stats, statsCacheTTL); err != nil {
		logger.Debug("failed to cache dashboard stats", map[string]interface{}{"error": err.Error()})
	}

	return stats, nil
}

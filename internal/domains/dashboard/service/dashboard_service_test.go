package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commentmodel "blog-backend/internal/domains/comment/model"
	"blog-backend/internal/domains/post"
	postmodel "blog-backend/internal/domains/post/model"
)

type statsPostRepo struct {
	countAll       int
	countPublished int
	recent         []postmodel.Post
	calls          int
}

func (r *statsPostRepo) Create(ctx context.Context, p *postmodel.Post) error { return nil }
func (r *statsPostRepo) GetByID(ctx context.Context, id uuid.UUID) (*postmodel.Post, error) {
	return nil, post.ErrPostNotFound
}
func (r *statsPostRepo) IncrementViews(ctx context.Context, id uuid.UUID) (*postmodel.Post, error) {
	return nil, post.ErrPostNotFound
}
func (r *statsPostRepo) Update(ctx context.Context, p *postmodel.Post) error { return nil }
func (r *statsPostRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }
func (r *statsPostRepo) ListPublished(ctx context.Context, limit, offset int) ([]postmodel.Post, int, error) {
	return nil, 0, nil
}
func (r *statsPostRepo) ListAll(ctx context.Context) ([]postmodel.Post, error) { return nil, nil }
func (r *statsPostRepo) Search(ctx context.Context, query string, tags []string) ([]postmodel.Post, error) {
	return nil, nil
}
func (r *statsPostRepo) Categories(ctx context.Context) ([]post.CategoryGroup, error) {
	return nil, nil
}
func (r *statsPostRepo) CountAll(ctx context.Context) (int, error) {
	r.calls++
	return r.countAll, nil
}
func (r *statsPostRepo) CountPublished(ctx context.Context) (int, error) {
	return r.countPublished, nil
}
func (r *statsPostRepo) Recent(ctx context.Context, limit int) ([]postmodel.Post, error) {
	if limit < len(r.recent) {
		return r.recent[:limit], nil
	}
	return r.recent, nil
}

type statsCommentRepo struct {
	countAll     int
	countPending int
	recent       []commentmodel.ModerationEntry
}

func (r *statsCommentRepo) Create(ctx context.Context, c *commentmodel.Comment) error { return nil }
func (r *statsCommentRepo) ListApproved(ctx context.Context, postID uuid.UUID) ([]commentmodel.Comment, error) {
	return nil, nil
}
func (r *statsCommentRepo) ListAll(ctx context.Context) ([]commentmodel.ModerationEntry, error) {
	return nil, nil
}
func (r *statsCommentRepo) Approve(ctx context.Context, id uuid.UUID) (*commentmodel.Comment, error) {
	return nil, nil
}
func (r *statsCommentRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (r *statsCommentRepo) CountAll(ctx context.Context) (int, error)      { return r.countAll, nil }
func (r *statsCommentRepo) CountPending(ctx context.Context) (int, error) {
	return r.countPending, nil
}
func (r *statsCommentRepo) Recent(ctx context.Context, limit int) ([]commentmodel.ModerationEntry, error) {
	return r.recent, nil
}

type memCache struct {
	data map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string][]byte)}
}

func (c *memCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *memCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func (c *memCache) Ping(context.Context) error { return nil }

func TestStats(t *testing.T) {
	posts := &statsPostRepo{
		countAll:       12,
		countPublished: 9,
		recent: []postmodel.Post{
			{ID: uuid.New(), Title: "Newest", IsPublished: false, Views: 3},
			{ID: uuid.New(), Title: "Older", IsPublished: true, Views: 40},
		},
	}
	comments := &statsCommentRepo{
		countAll:     7,
		countPending: 2,
		recent: []commentmodel.ModerationEntry{
			{
				Comment:   commentmodel.Comment{ID: uuid.New(), Name: "Bob", Content: "Hi"},
				PostTitle: "Newest",
			},
		},
	}
	svc := NewDashboardService(posts, comments, newMemCache())

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12, stats.TotalPosts)
	assert.Equal(t, 9, stats.PublishedPosts)
	assert.Equal(t, 3, stats.DraftPosts)
	assert.Equal(t, 7, stats.TotalComments)
	assert.Equal(t, 2, stats.PendingComments)

	require.Len(t, stats.RecentPosts, 2)
	assert.Equal(t, "Newest", stats.RecentPosts[0].Title)
	assert.False(t, stats.RecentPosts[0].IsPublished)

	require.Len(t, stats.RecentComments, 1)
	assert.Equal(t, "Newest", stats.RecentComments[0].PostTitle)
	assert.Equal(t, "Bob", stats.RecentComments[0].Name)
}

func TestStats_Cached(t *testing.T) {
	posts := &statsPostRepo{countAll: 5, countPublished: 5}
	svc := NewDashboardService(posts, &statsCommentRepo{}, newMemCache())

	_, err := svc.Stats(context.Background())
	require.NoError(t, err)
	_, err = svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, posts.calls, "second read must come from cache")
}

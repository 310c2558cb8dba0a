package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/post"
	"blog-backend/internal/domains/post/model"
)

type mockPostService struct {
	searchFn  func(ctx context.Context, query string, tags []string) ([]model.Post, error)
	listAllFn func(ctx context.Context) ([]model.Post, error)
}

func (m *mockPostService) ListPublished(ctx context.Context, page, limit int) (*post.ListPostsResponse, error) {
	return &post.ListPostsResponse{Posts: []model.Post{}}, nil
}

func (m *mockPostService) GetByID(ctx context.Context, id string) (*model.Post, error) {
	return nil, post.ErrPostNotFound
}

func (m *mockPostService) Create(ctx context.Context, req post.CreatePostRequest, author string) (*model.Post, error) {
	return nil, nil
}

func (m *mockPostService) Update(ctx context.Context, id string, req post.UpdatePostRequest) (*model.Post, error) {
	return nil, post.ErrPostNotFound
}

func (m *mockPostService) Delete(ctx context.Context, id string) error { return nil }

func (m *mockPostService) Search(ctx context.Context, query string, tags []string) ([]model.Post, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, query, tags)
	}
	return []model.Post{}, nil
}

func (m *mockPostService) Categories(ctx context.Context) ([]post.CategoryGroup, error) {
	return []post.CategoryGroup{}, nil
}

func (m *mockPostService) ListAll(ctx context.Context) ([]model.Post, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx)
	}
	return []model.Post{}, nil
}

func setupPostRouter(svc post.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPostHandler(svc)

	router := gin.New()
	router.GET("/api/posts/search", h.Search)
	router.GET("/api/admin/posts", h.ListAll)
	return router
}

// Search responds with the post array itself, not an object wrapping it.
func TestSearch_ReturnsBareArray(t *testing.T) {
	svc := &mockPostService{
		searchFn: func(ctx context.Context, query string, tags []string) ([]model.Post, error) {
			assert.Equal(t, "go", query)
			return []model.Post{{Title: "Found"}}, nil
		},
	}
	router := setupPostRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/posts/search?q=go", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var posts []model.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "Found", posts[0].Title)
}

func TestSearch_EmptyResultIsEmptyArray(t *testing.T) {
	router := setupPostRouter(&mockPostService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/posts/search?q=nothing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestListAll_ReturnsBareArray(t *testing.T) {
	svc := &mockPostService{
		listAllFn: func(ctx context.Context) ([]model.Post, error) {
			return []model.Post{{Title: "Draft", IsPublished: false}, {Title: "Live", IsPublished: true}}, nil
		},
	}
	router := setupPostRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/posts", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var posts []model.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	assert.Len(t, posts, 2)
}

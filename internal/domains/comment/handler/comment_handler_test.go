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

	"blog-backend/internal/domains/comment"
	"blog-backend/internal/domains/comment/model"
)

type mockCommentService struct {
	listForPostFn func(ctx context.Context, postID string) ([]model.Comment, error)
	listAllFn     func(ctx context.Context) ([]model.ModerationEntry, error)
}

func (m *mockCommentService) ListForPost(ctx context.Context, postID string) ([]model.Comment, error) {
	if m.listForPostFn != nil {
		return m.listForPostFn(ctx, postID)
	}
	return []model.Comment{}, nil
}

func (m *mockCommentService) Create(ctx context.Context, postID string, req comment.CreateCommentRequest) (*model.Comment, error) {
	return nil, nil
}

func (m *mockCommentService) ListAll(ctx context.Context) ([]model.ModerationEntry, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx)
	}
	return []model.ModerationEntry{}, nil
}

func (m *mockCommentService) Approve(ctx context.Context, id string) (*model.Comment, error) {
	return nil, comment.ErrCommentNotFound
}

func (m *mockCommentService) Delete(ctx context.Context, id string) error { return nil }

func setupCommentRouter(svc comment.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCommentHandler(svc)

	router := gin.New()
	router.GET("/api/comments/post/:postId", h.ListForPost)
	router.GET("/api/comments", h.ListAll)
	return router
}

// Public comment listing responds with the comment array itself, not an
// object wrapping it.
func TestListForPost_ReturnsBareArray(t *testing.T) {
	svc := &mockCommentService{
		listForPostFn: func(ctx context.Context, postID string) ([]model.Comment, error) {
			return []model.Comment{{Name: "Bob", Content: "Nice post!", IsApproved: true}}, nil
		},
	}
	router := setupCommentRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/comments/post/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var comments []model.Comment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comments))
	require.Len(t, comments, 1)
	assert.Equal(t, "Bob", comments[0].Name)
}

func TestListForPost_EmptyResultIsEmptyArray(t *testing.T) {
	router := setupCommentRouter(&mockCommentService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/comments/post/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestListAll_ReturnsBareArray(t *testing.T) {
	svc := &mockCommentService{
		listAllFn: func(ctx context.Context) ([]model.ModerationEntry, error) {
			return []model.ModerationEntry{
				{Comment: model.Comment{Name: "Bob"}, PostTitle: "Hello"},
			}, nil
		},
	}
	router := setupCommentRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/comments", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var entries []model.ModerationEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "Hello", entries[0].PostTitle)
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-backend/internal/domains/comment"
	"blog-backend/internal/domains/post"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"
)

// CommentHandler serves public comment submission/reading and the admin
// moderation endpoints.
type CommentHandler struct {
	service comment.Service
}

func NewCommentHandler(service comment.Service) *CommentHandler {
	return &CommentHandler{service: service}
}

// ListForPost handles GET /api/comments/post/:postId. Approved comments of
// a published post only.
func (h *CommentHandler) ListForPost(c *gin.Context) {
	comments, err := h.service.ListForPost(c.Request.Context(), c.Param("postId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, comments)
}

// Create handles POST /api/comments/post/:postId. The new comment is
// returned but stays invisible on public reads until approved.
func (h *CommentHandler) Create(c *gin.Context) {
	var req comment.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), c.Param("postId"), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Comment submitted for approval",
		"comment": created,
	})
}

// ListAll handles GET /api/comments (admin): the moderation queue.
func (h *CommentHandler) ListAll(c *gin.Context) {
	entries, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, entries)
}

// Approve handles PUT /api/comments/:id/approve (admin).
func (h *CommentHandler) Approve(c *gin.Context) {
	approved, err := h.service.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, approved)
}

// Delete handles DELETE /api/comments/:id (admin).
func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Comment deleted successfully")
}

func (h *CommentHandler) handleError(c *gin.Context, err error) {
	var verr validation.Errors

	switch {
	case errors.As(err, &verr):
		response.Error(c, http.StatusBadRequest, verr.Error())

	case errors.Is(err, post.ErrPostNotFound):
		response.Error(c, http.StatusNotFound, "Post not found")

	case errors.Is(err, comment.ErrCommentNotFound):
		response.Error(c, http.StatusNotFound, "Comment not found")

	default:
		logger.Error("comment handler error", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong!")
	}
}

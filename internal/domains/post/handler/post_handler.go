package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-backend/internal/domains/post"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/internal/shared/utils"
	"blog-backend/pkg/logger"
)

// PostHandler serves the public browsing endpoints and the admin content
// management endpoints.
type PostHandler struct {
	service post.Service
}

func NewPostHandler(service post.Service) *PostHandler {
	return &PostHandler{service: service}
}

// List handles GET /api/posts. Public, published posts only, paginated.
func (h *PostHandler) List(c *gin.Context) {
	page := queryInt(c, "page", post.DefaultPage)
	limit := queryInt(c, "limit", post.DefaultLimit)

	result, err := h.service.ListPublished(c.Request.Context(), page, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}

// Get handles GET /api/posts/:id. Each successful fetch counts as a view.
func (h *PostHandler) Get(c *gin.Context) {
	p, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, p)
}

// Search handles GET /api/posts/search?q=...&tags=a,b. Either filter may be
// absent; with both absent it degrades to the full published listing.
func (h *PostHandler) Search(c *gin.Context) {
	query := c.Query("q")
	tags := utils.SplitTags(c.Query("tags"))

	posts, err := h.service.Search(c.Request.Context(), query, tags)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, posts)
}

// Categories handles GET /api/posts/categories.
func (h *PostHandler) Categories(c *gin.Context) {
	groups, err := h.service.Categories(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"categories": groups})
}

// ListAll handles GET /api/admin/posts: every post, drafts included.
func (h *PostHandler) ListAll(c *gin.Context) {
	posts, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, posts)
}

// Create handles POST /api/posts (admin). The author is stamped from the
// authenticated identity, never from the body.
func (h *PostHandler) Create(c *gin.Context) {
	var req post.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	author := c.GetString(middleware.ContextUsername)

	p, err := h.service.Create(c.Request.Context(), req, author)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, p)
}

// Update handles PUT /api/posts/:id (admin). Partial: absent fields keep
// their stored values.
func (h *PostHandler) Update(c *gin.Context) {
	var req post.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, p)
}

// Delete handles DELETE /api/posts/:id (admin). Removes the post and its
// comments together.
func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Post deleted successfully")
}

func (h *PostHandler) handleError(c *gin.Context, err error) {
	var verr validation.Errors

	switch {
	case errors.As(err, &verr):
		response.Error(c, http.StatusBadRequest, verr.Error())

	case errors.Is(err, post.ErrPostNotFound):
		response.Error(c, http.StatusNotFound, "Post not found")

	default:
		logger.Error("post handler error", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong!")
	}
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

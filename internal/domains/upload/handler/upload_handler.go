package handler

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blog-backend/internal/infrastructure/storage"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"
)

// maxUploadSize caps featured images at 5 MiB.
const maxUploadSize = 5 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// UploadHandler accepts featured-image uploads for posts and stores them
// in object storage.
type UploadHandler struct {
	storage *storage.MinIOStorage
}

func NewUploadHandler(s *storage.MinIOStorage) *UploadHandler {
	return &UploadHandler{storage: s}
}

// Upload handles POST /api/admin/upload. Multipart field "image"; returns
// the public URL to use as the post's featured image.
func (h *UploadHandler) Upload(c *gin.Context) {
	if h.storage == nil {
		response.Error(c, http.StatusServiceUnavailable, "Image uploads are not configured")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Image file is required")
		return
	}
	if fileHeader.Size > maxUploadSize {
		response.Error(c, http.StatusBadRequest, "Image exceeds the 5MB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("upload open error", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong!")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		logger.Error("upload read error", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong!")
		return
	}
	if len(data) > maxUploadSize {
		response.Error(c, http.StatusBadRequest, "Image exceeds the 5MB limit")
		return
	}

	// Sniff the real content type; the client-declared one is not trusted.
	contentType := http.DetectContentType(data)
	if !allowedImageTypes[contentType] {
		response.Error(c, http.StatusBadRequest, "Only JPEG, PNG, GIF and WebP images are allowed")
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	key := fmt.Sprintf("posts/%d-%s%s", time.Now().UnixNano(), uuid.NewString(), ext)

	url, err := h.storage.Upload(c.Request.Context(), key, data, contentType)
	if err != nil {
		logger.Error("upload store error", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong!")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/domains/dashboard"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"
)

// DashboardHandler serves the admin overview.
type DashboardHandler struct {
	service dashboard.Service
}

func NewDashboardHandler(service dashboard.Service) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Stats handles GET /api/admin/dashboard.
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		logger.Error("dashboard handler error", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong!")
		return
	}

	response.JSON(c, http.StatusOK, stats)
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-backend/internal/domains/admin"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/jwt"
	"blog-backend/pkg/logger"
)

// AdminHandler serves the authentication endpoints.
type AdminHandler struct {
	service admin.Service

	// cookieSecure is true in production: the token cookie is then only
	// sent over HTTPS.
	cookieSecure bool
}

func NewAdminHandler(service admin.Service, cookieSecure bool) *AdminHandler {
	return &AdminHandler{
		service:      service,
		cookieSecure: cookieSecure,
	}
}

// Register handles POST /api/admin/register. Succeeds exactly once for the
// lifetime of the credential store.
func (h *AdminHandler) Register(c *gin.Context) {
	var req admin.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.Register(c.Request.Context(), req); err != nil {
		h.handleError(c, err)
		return
	}

	response.Message(c, http.StatusCreated, "Admin created successfully")
}

// Login handles POST /api/admin/login. The token is delivered both as an
// http-only cookie and in the response body; callers may use either.
func (h *AdminHandler) Login(c *gin.Context) {
	var req admin.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		middleware.TokenCookieName,
		result.Token,
		int(jwt.TokenTTL.Seconds()),
		"/",
		"",
		h.cookieSecure,
		true,
	)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   result.Token,
		"admin":   result.Admin,
	})
}

// Logout handles POST /api/admin/logout. Clearing the cookie is all there
// is to do: tokens are stateless and stay valid until natural expiry if
// captured elsewhere.
func (h *AdminHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookieName, "", -1, "/", "", h.cookieSecure, true)

	response.Message(c, http.StatusOK, "Logout successful")
}

// Verify handles GET /api/admin/verify. The gate has already validated the
// token; this just echoes the identity it resolved.
func (h *AdminHandler) Verify(c *gin.Context) {
	adminID := c.GetString(middleware.ContextAdminID)

	dto, err := h.service.Verify(c.Request.Context(), adminID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": dto})
}

func (h *AdminHandler) handleError(c *gin.Context, err error) {
	var verr validation.Errors

	switch {
	case errors.As(err, &verr):
		response.Error(c, http.StatusBadRequest, verr.Error())

	case errors.Is(err, admin.ErrAdminExists):
		response.Error(c, http.StatusBadRequest, "Admin already exists")

	case errors.Is(err, admin.ErrCredentialsTaken):
		response.Error(c, http.StatusBadRequest, "Username or email already exists")

	case errors.Is(err, admin.ErrInvalidCredentials):
		response.Error(c, http.StatusBadRequest, "Invalid credentials")

	case errors.Is(err, admin.ErrAdminNotFound):
		response.Error(c, http.StatusNotFound, "Admin not found")

	default:
		logger.Error("admin handler error", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong!")
	}
}

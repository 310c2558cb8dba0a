package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/pkg/jwt"
)

func setupAuthRouter(t *testing.T, manager *jwt.Manager) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", Auth(manager), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"adminID":  c.GetString(ContextAdminID),
			"username": c.GetString(ContextUsername),
		})
	})
	return router
}

func TestAuth_NoToken(t *testing.T) {
	router := setupAuthRouter(t, jwt.NewManager("test-secret"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Access denied. No token provided."}`, w.Body.String())
}

func TestAuth_InvalidToken(t *testing.T) {
	router := setupAuthRouter(t, jwt.NewManager("test-secret"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Invalid token."}`, w.Body.String())
}

func TestAuth_TokenFromCookie(t *testing.T) {
	manager := jwt.NewManager("test-secret")
	router := setupAuthRouter(t, manager)

	token, err := manager.Generate("admin-1", "alice")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"adminID":"admin-1"`)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
}

func TestAuth_TokenFromBearerHeader(t *testing.T) {
	manager := jwt.NewManager("test-secret")
	router := setupAuthRouter(t, manager)

	token, err := manager.Generate("admin-1", "alice")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuth_WrongSecretToken(t *testing.T) {
	router := setupAuthRouter(t, jwt.NewManager("server-secret"))

	token, err := jwt.NewManager("other-secret").Generate("admin-1", "alice")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

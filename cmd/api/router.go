package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/container"
)

// SetupRouter registers the full HTTP surface: public browsing, public
// comment submission, and the token-gated admin operations.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())

	auth := middleware.Auth(c.JWTManager)

	router.GET("/api/health", func(ctx *gin.Context) {
		status := http.StatusOK
		overall := "ok"
		dbStatus := "up"
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			overall = "degraded"
			dbStatus = "down"
		}

		// Redis being down only degrades caching; it does not fail the
		// health check.
		redisStatus := "up"
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			redisStatus = "down"
		}

		ctx.JSON(status, gin.H{
			"status":   overall,
			"version":  c.Config.App.Version,
			"database": dbStatus,
			"redis":    redisStatus,
		})
	})

	posts := router.Group("/api/posts")
	{
		posts.GET("", c.PostHandler.List)
		posts.GET("/search", c.PostHandler.Search)
		posts.GET("/categories", c.PostHandler.Categories)
		posts.GET("/:id", c.PostHandler.Get)

		posts.POST("", auth, c.PostHandler.Create)
		posts.PUT("/:id", auth, c.PostHandler.Update)
		posts.DELETE("/:id", auth, c.PostHandler.Delete)
	}

	comments := router.Group("/api/comments")
	{
		comments.GET("/post/:postId", c.CommentHandler.ListForPost)
		comments.POST("/post/:postId", c.CommentHandler.Create)

		comments.GET("", auth, c.CommentHandler.ListAll)
		comments.PUT("/:id/approve", auth, c.CommentHandler.Approve)
		comments.DELETE("/:id", auth, c.CommentHandler.Delete)
	}

	admin := router.Group("/api/admin")
	{
		admin.POST("/register", c.AdminHandler.Register)
		admin.POST("/login", c.AdminHandler.Login)
		admin.POST("/logout", c.AdminHandler.Logout)

		admin.GET("/verify", auth, c.AdminHandler.Verify)
		admin.GET("/dashboard", auth, c.DashboardHandler.Stats)
		admin.GET("/posts", auth, c.PostHandler.ListAll)
		admin.POST("/upload", auth, c.UploadHandler.Upload)
	}

	router.NoRoute(func(ctx *gin.Context) {
		response.Error(ctx, http.StatusNotFound, "Route not found")
	})

	return router
}

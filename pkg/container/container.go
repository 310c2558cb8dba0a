// Package container wires configuration, infrastructure, repositories,
// services and handlers together at startup.
package container

import (
	"context"
	"fmt"

	adminhandler "blog-backend/internal/domains/admin/handler"
	adminrepo "blog-backend/internal/domains/admin/repository"
	adminservice "blog-backend/internal/domains/admin/service"
	commenthandler "blog-backend/internal/domains/comment/handler"
	commentrepo "blog-backend/internal/domains/comment/repository"
	commentservice "blog-backend/internal/domains/comment/service"
	dashboardhandler "blog-backend/internal/domains/dashboard/handler"
	dashboardservice "blog-backend/internal/domains/dashboard/service"
	posthandler "blog-backend/internal/domains/post/handler"
	postrepo "blog-backend/internal/domains/post/repository"
	postservice "blog-backend/internal/domains/post/service"
	uploadhandler "blog-backend/internal/domains/upload/handler"

	"blog-backend/internal/config"
	"blog-backend/internal/database"
	infracache "blog-backend/internal/infrastructure/cache"
	infradb "blog-backend/internal/infrastructure/database"
	"blog-backend/internal/infrastructure/storage"
	"blog-backend/pkg/jwt"
	"blog-backend/pkg/logger"
)

// Container holds every long-lived dependency of the application.
type Container struct {
	Config *config.Config
	DB     *infradb.PostgresDB
	Cache  *infracache.RedisCache

	JWTManager *jwt.Manager

	AdminHandler     *adminhandler.AdminHandler
	PostHandler      *posthandler.PostHandler
	CommentHandler   *commenthandler.CommentHandler
	DashboardHandler *dashboardhandler.DashboardHandler
	UploadHandler    *uploadhandler.UploadHandler
}

// New builds the dependency graph: config, database (with migrations),
// cache, object storage, then repositories, services and handlers.
func New(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.App.Environment)

	dbCfg, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("load database config: %w", err)
	}

	db := infradb.NewPostgresDB(dbCfg)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := database.RunMigrations(cfg.DatabaseURL()); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	// Redis being down degrades caching, nothing else: services fall
	// through to the database on any cache error.
	redisCache := infracache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(ctx); err != nil {
		logger.Error("redis unavailable, caching degraded", err)
	}

	// Object storage is optional; without it the upload endpoint reports
	// itself unconfigured.
	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		logger.Error("minio unavailable, uploads disabled", err)
		minioStorage = nil
	}

	jwtManager := jwt.NewManager(cfg.JWT.Secret)

	adminRepository := adminrepo.NewPostgresRepository(db.Pool)
	postRepository := postrepo.NewPostgresRepository(db.Pool)
	commentRepository := commentrepo.NewPostgresRepository(db.Pool)

	adminService := adminservice.NewAdminService(adminRepository, jwtManager)
	postService := postservice.NewPostService(postRepository, redisCache)
	commentService := commentservice.NewCommentService(commentRepository, postRepository, redisCache)
	dashboardService := dashboardservice.NewDashboardService(postRepository, commentRepository, redisCache)

	return &Container{
		Config:           cfg,
		DB:               db,
		Cache:            redisCache,
		JWTManager:       jwtManager,
		AdminHandler:     adminhandler.NewAdminHandler(adminService, cfg.IsProduction()),
		PostHandler:      posthandler.NewPostHandler(postService),
		CommentHandler:   commenthandler.NewCommentHandler(commentService),
		DashboardHandler: dashboardhandler.NewDashboardHandler(dashboardService),
		UploadHandler:    uploadhandler.NewUploadHandler(minioStorage),
	}, nil
}

// Cleanup releases every connection the container owns.
func (c *Container) Cleanup() {
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			logger.Error("failed to close redis", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}

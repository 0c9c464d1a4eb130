package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/underdogsx/coordination-api/internal/config"
	"github.com/underdogsx/coordination-api/internal/database"
	"github.com/underdogsx/coordination-api/internal/handlers"
	"github.com/underdogsx/coordination-api/internal/logger"
	"github.com/underdogsx/coordination-api/internal/middleware"
	"github.com/underdogsx/coordination-api/internal/repository"
	"github.com/underdogsx/coordination-api/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.GinMode)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		zlog.Fatal("Failed to connect to database", zap.Error(err))
	}
	zlog.Info("Database connection established",
		zap.String("driver", cfg.DBDriver),
		zap.String("host", cfg.DBHost),
	)

	// Run migrations
	if err := database.Migrate(db); err != nil {
		zlog.Fatal("Failed to run migrations", zap.Error(err))
	}
	zlog.Info("Database migrations completed")

	// Repositories
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	fileRepo := repository.NewFileRepository(db)

	// Services
	authService := services.NewAuthService(userRepo)
	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	taskService := services.NewTaskService(taskRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, tokenService)
	taskHandler := handlers.NewTaskHandler(taskService)
	announcementHandler := handlers.NewAnnouncementHandler(announcementRepo)
	commentHandler := handlers.NewCommentHandler(commentRepo, taskRepo)
	fileHandler := handlers.NewFileHandler(fileRepo)
	userHandler := handlers.NewUserHandler(userRepo)

	// Initialize Gin router
	r := gin.Default()
	r.Use(middleware.Metrics())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Coordination API is running",
		})
	})

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	requireAuth := middleware.RequireAuth(tokenService, userRepo)

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public, except /me)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", requireAuth, authHandler.GetCurrentUser)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(requireAuth)
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
		}

		// Announcement routes (protected)
		announcements := api.Group("/announcements")
		announcements.Use(requireAuth)
		{
			announcements.GET("", announcementHandler.ListAnnouncements)
			announcements.POST("", announcementHandler.CreateAnnouncement)
		}

		// Comment routes (protected)
		comments := api.Group("/comments")
		comments.Use(requireAuth)
		{
			comments.GET("/:task_id", commentHandler.ListTaskComments)
			comments.POST("", commentHandler.CreateComment)
		}

		// File routes (protected)
		files := api.Group("/files")
		files.Use(requireAuth)
		{
			files.GET("", fileHandler.ListFiles)
			files.POST("", fileHandler.CreateFile)
		}

		// User directory (protected)
		api.GET("/users", requireAuth, userHandler.ListUsers)
	}

	// Start server
	zlog.Info("Server starting", zap.String("addr", cfg.ServerAddr))
	if err := r.Run(cfg.ServerAddr); err != nil {
		zlog.Fatal("Failed to start server", zap.Error(err))
	}
}

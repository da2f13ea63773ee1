package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"taskman/internal/auth"
	"taskman/internal/config"
	"taskman/internal/handler"
	"taskman/internal/middleware"
	"taskman/internal/model"
	"taskman/internal/repository"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	if !cfg.Development() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup GORM
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}
	log.Println("✅ Connected to database")

	if err := db.AutoMigrate(
		&model.User{},
		&model.Workspace{},
		&model.Board{},
		&model.List{},
		&model.Card{},
		&model.Activity{},
	); err != nil {
		return nil, fmt.Errorf("❌ failed to migrate schema: %w", err)
	}

	// Setup Gin
	r := gin.Default()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	workspaceRepo := repository.NewWorkspaceRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	listRepo := repository.NewListRepository(db)
	cardRepo := repository.NewCardRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	// Initialize services and handlers
	tokenService := auth.NewTokenService(cfg)
	authHandler := handler.NewAuthHandler(userRepo, tokenService)
	userHandler := handler.NewUserHandler(userRepo)
	workspaceHandler := handler.NewWorkspaceHandler(workspaceRepo, boardRepo, activityRepo)
	boardHandler := handler.NewBoardHandler(boardRepo, listRepo, activityRepo)
	listHandler := handler.NewListHandler(listRepo, cardRepo, activityRepo)
	cardHandler := handler.NewCardHandler(cardRepo, activityRepo)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"message":   "Task Manager Backend is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public auth routes
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
	}

	// Protected routes - require authentication
	api := r.Group("/api")
	api.Use(middleware.JWTAuthMiddleware(tokenService))
	{
		api.POST("/auth/logout", authHandler.Logout)

		// User profile routes
		api.GET("/user", userHandler.GetProfile)
		api.PATCH("/user", userHandler.UpdateProfile)

		// Workspace routes
		api.GET("/workspaces", workspaceHandler.GetAll)
		api.POST("/workspaces", workspaceHandler.Create)
		api.GET("/workspaces/:id", workspaceHandler.GetByID)
		api.PATCH("/workspaces/:id", workspaceHandler.Update)
		api.DELETE("/workspaces/:id", workspaceHandler.Delete)
		api.GET("/workspaces/:id/boards", workspaceHandler.GetBoards)
		api.POST("/workspaces/:id/boards", workspaceHandler.CreateBoard)
		api.GET("/workspaces/:id/activities", workspaceHandler.GetActivities)

		// Board routes
		api.GET("/boards/:id", boardHandler.GetByID)
		api.PATCH("/boards/:id", boardHandler.Update)
		api.DELETE("/boards/:id", boardHandler.Delete)
		api.GET("/boards/:id/lists", boardHandler.GetLists)
		api.POST("/boards/:id/lists", boardHandler.CreateList)
		api.GET("/boards/:id/statistics", boardHandler.Statistics)

		// List routes
		api.GET("/lists/:id", listHandler.GetByID)
		api.PATCH("/lists/:id", listHandler.Update)
		api.DELETE("/lists/:id", listHandler.Delete)
		api.GET("/lists/:id/cards", listHandler.GetCards)
		api.POST("/lists/:id/cards", listHandler.CreateCard)

		// Card routes
		api.GET("/cards/:id", cardHandler.GetByID)
		api.PATCH("/cards/:id", cardHandler.Update)
		api.DELETE("/cards/:id", cardHandler.Delete)
	}

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"message": "API endpoint not found"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	})

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
	}, nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	log.Println("✅ Server exited properly")
}

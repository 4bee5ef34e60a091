package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	httphandlers "github.com/rafabene/folio-backend/internal/handlers/http"
	"github.com/rafabene/folio-backend/internal/handlers/middleware"
	"github.com/rafabene/folio-backend/internal/infrastructure/config"
	"github.com/rafabene/folio-backend/internal/infrastructure/i18n"
	"github.com/rafabene/folio-backend/internal/infrastructure/logging"
	"github.com/rafabene/folio-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/folio-backend/internal/infrastructure/security"
	"github.com/rafabene/folio-backend/internal/services"
)

// @title           Folio Blog API
// @version         1.0
// @description     Backend de blogging: usuários, posts com slugs únicos, grafo de seguidores e feed personalizado
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting folio backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n (locales embutidos no binário)
	i18nService, err := i18n.NewEmbeddedService("en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	postRepo := postgres.NewPostRepository(db)
	followRepo := postgres.NewFollowRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar infraestrutura de segurança
	hasher := security.NewBcryptHasher()
	tokens := security.NewJWTIssuer(&cfg.JWT)

	// Inicializar services
	authService := services.NewAuthService(userRepo, uow, hasher, tokens, logger)
	userService := services.NewUserService(userRepo, uow, logger)
	postService := services.NewPostService(postRepo, userRepo, uow, logger)
	followService := services.NewFollowService(followRepo, userRepo, uow, logger)
	feedService := services.NewFeedService(postRepo, followRepo, userRepo, logger)

	// Inicializar handlers
	authHandler := httphandlers.NewAuthHandler(authService, logger)
	userHandler := httphandlers.NewUserHandler(userService, postService, followService, logger)
	postHandler := httphandlers.NewPostHandler(postService, logger)
	feedHandler := httphandlers.NewFeedHandler(feedService, logger)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.CORS.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Middleware de autenticação
	authMiddleware := middleware.NewAuthMiddleware(tokens, userRepo)

	// Root
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Folio Blog API",
			"docs":    "/swagger/index.html",
		})
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
		}

		// Users
		users := v1.Group("/users")
		{
			users.GET("/me", authMiddleware.RequireAuth(), userHandler.GetMe)
			users.PATCH("/me", authMiddleware.RequireAuth(), userHandler.UpdateMe)
			users.GET("/me/following", authMiddleware.RequireAuth(), userHandler.ListFollowing)
			users.POST("/me/follow/:id", authMiddleware.RequireAuth(), userHandler.Follow)
			users.DELETE("/me/follow/:id", authMiddleware.RequireAuth(), userHandler.Unfollow)
			users.GET("/me/follow/:id", authMiddleware.RequireAuth(), userHandler.IsFollowing)
			users.GET("/by-username/:username", userHandler.GetUserByUsername)
			users.GET("/:id", userHandler.GetUser)
			users.GET("/:id/posts", userHandler.ListUserPosts)
		}

		// Posts
		posts := v1.Group("/posts")
		{
			posts.POST("", authMiddleware.RequireAuth(), postHandler.CreatePost)
			posts.GET("", postHandler.ListPosts)
			posts.GET("/slug/:slug", authMiddleware.OptionalAuth(), postHandler.GetPostBySlug)
			posts.GET("/:id", authMiddleware.OptionalAuth(), postHandler.GetPost)
			posts.PATCH("/:id", authMiddleware.RequireAuth(), postHandler.UpdatePost)
			posts.DELETE("/:id", authMiddleware.RequireAuth(), postHandler.DeletePost)
		}

		// Feed
		v1.GET("/feed", authMiddleware.OptionalAuth(), feedHandler.GetFeed)
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

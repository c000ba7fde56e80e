// @title           Portfolio CMS API
// @version         1.0.0
// @description     Content API for the portfolio site. Public reads for blog posts, projects and featured works, plus authenticated admin actions, image uploads and page revalidation.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the Supabase access token.

package main

import (
	"context"
	"log"
	"net/http"
	"net/url"

	"portfolio-backend/docs"
	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/cache"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/content"
	"portfolio-backend/internal/database"
	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/revalidate"
	"portfolio-backend/internal/services"
	"portfolio-backend/internal/supabase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Point Swagger at the public host
	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(cfg.BaseURL)
		if err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	// Supabase clients
	supabaseClient, err := supabase.NewClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Supabase client: %v", err)
	}

	storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.StorageKey(), cfg.Buckets)
	if err != nil {
		log.Fatalf("Failed to initialize storage client: %v", err)
	}

	dbClient, err := supabase.NewDatabaseClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize database client: %v", err)
	}
	defer dbClient.Close()

	// Run migrations
	if err := database.NewMigrator(dbClient.DB()).Run(context.Background()); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migrations completed successfully")

	// Auth: verify tokens locally when the JWT secret is known, otherwise ask
	// the hosted auth service.
	var resolver auth.Resolver
	if cfg.SupabaseJWTSecret != "" {
		resolver = auth.NewJWTResolver(cfg.SupabaseJWTSecret)
	} else {
		log.Println("Warning: SUPABASE_JWT_SECRET not set. Tokens will be verified against Supabase Auth.")
		resolver = supabaseClient
	}
	policy := auth.PolicyFor(cfg.AdminRoles)
	if len(cfg.AdminRoles) > 0 {
		log.Printf("Admin actions restricted to roles: %v", cfg.AdminRoles)
	}

	revalidateClient := revalidate.NewClient(cfg.RevalidateURL, cfg.RevalidateSecret)
	if !revalidateClient.Enabled() {
		log.Println("Warning: REVALIDATE_URL not set. Page revalidation is disabled.")
	}

	// Services
	validator := content.NewFormValidator()
	blogService := services.NewBlogService(dbClient, storageClient, cache.New[[]models.BlogPost](), validator, revalidateClient)
	projectService := services.NewProjectService(dbClient, cache.New[[]models.Project](), validator, revalidateClient)
	workService := services.NewWorkService(dbClient, storageClient, cache.New[[]models.Work](), validator, revalidateClient)
	blogService.SetRevalidateTimeout(cfg.RevalidateTimeout)
	projectService.SetRevalidateTimeout(cfg.RevalidateTimeout)
	workService.SetRevalidateTimeout(cfg.RevalidateTimeout)

	// Handlers
	guard := handlers.NewGuard(resolver, policy)
	blogsHandler := handlers.NewBlogsHandler(blogService, guard)
	projectsHandler := handlers.NewProjectsHandler(projectService, guard)
	worksHandler := handlers.NewWorksHandler(workService, guard)
	uploadHandler := handlers.NewUploadHandler(storageClient, cfg.Buckets, cfg.MaxUploadSize, policy)
	revalidateHandler := handlers.NewRevalidateHandler(revalidateClient, policy, blogService, projectService, workService)

	// Setup router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.MaxMultipartMemory = cfg.MaxUploadSize

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health checks (no auth)
	router.GET("/health", handlers.HealthHandler)
	router.GET("/ready", handlers.ReadyHandler(dbClient.DB()))

	api := router.Group("/api/v1")

	// Content: public reads, actions authorize per request
	api.GET("/blogs", blogsHandler.List)
	api.GET("/blogs/:slug", blogsHandler.Get)
	api.POST("/blogs", blogsHandler.Handle)

	api.GET("/projects", projectsHandler.List)
	api.GET("/projects/:slug", projectsHandler.Get)
	api.POST("/projects", projectsHandler.Handle)

	api.GET("/works", worksHandler.List)
	api.POST("/works", worksHandler.Handle)

	// Admin only
	admin := api.Group("")
	admin.Use(middleware.AuthMiddleware(resolver))
	admin.POST("/uploads/:bucket", uploadHandler.Upload)
	admin.POST("/revalidate", revalidateHandler.Revalidate)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

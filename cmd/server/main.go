package main

import (
	"log"
	"net/http"
	"os"

	"jobboard/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"jobboard/internal/auth"
	"jobboard/internal/cache"
	"jobboard/internal/config"
	"jobboard/internal/db"
	"jobboard/internal/handler"
	"jobboard/internal/model"
	"jobboard/internal/repository"
	"jobboard/internal/router"
	"jobboard/internal/service"
)

// @title Job Board API
// @version 1.0
// @description Job board API with employer job postings, applications, saved jobs, and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Application{},
			&model.SavedJob{},
			&model.Job{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Job{},
		&model.SavedJob{},
		&model.Application{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("create upload dir: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	jobRepo := repository.NewJobRepository(gormDB)
	appRepo := repository.NewApplicationRepository(gormDB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, jwtService)
	jobService := service.NewJobService(jobRepo, cacheClient)
	applicationService := service.NewApplicationService(appRepo, jobRepo, cacheClient)
	bookmarkService := service.NewBookmarkService(jobRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	jobHandler := handler.NewJobHandler(jobService)
	applicationHandler := handler.NewApplicationHandler(applicationService)
	bookmarkHandler := handler.NewBookmarkHandler(bookmarkService)
	uploadHandler := handler.NewUploadHandler(cfg.UploadDir, cfg.PublicBaseURL)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		jobHandler,
		applicationHandler,
		bookmarkHandler,
		uploadHandler,
	)

	log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

package main

import (
	"log"
	"net/http"
	"os"

	_ "prodcat/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"prodcat/internal/auth"
	"prodcat/internal/cache"
	"prodcat/internal/config"
	"prodcat/internal/db"
	"prodcat/internal/handler"
	"prodcat/internal/model"
	"prodcat/internal/repository"
	"prodcat/internal/router"
	"prodcat/internal/service"
)

// @title Product Catalog API
// @version 1.0
// @description Product catalog API with JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

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
			&model.Product{},
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
		&model.Product{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	productService := service.NewProductService(productRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)

	// Register routes
	router.Register(e, cfg, authHandler, productHandler)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

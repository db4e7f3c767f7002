package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	_ "github.com/farmart-ke/farmart-backend/docs"
	"github.com/farmart-ke/farmart-backend/internal/api/middleware"
	"github.com/farmart-ke/farmart-backend/internal/api/routes"
	"github.com/farmart-ke/farmart-backend/internal/config"
	"github.com/farmart-ke/farmart-backend/internal/config/db"
	"github.com/farmart-ke/farmart-backend/internal/migrate"
	"github.com/farmart-ke/farmart-backend/internal/storage"
)

// @title Farmart API
// @version 1.0
// @description Backend API for the Farmart livestock marketplace.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @BasePath /api
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	db.Init()

	// Apply pending migrations before serving traffic
	sqlDB, err := db.SQLDB()
	if err != nil {
		log.Fatalf("Failed to access database handle: %v", err)
	}
	runner, err := migrate.NewRunner(sqlDB)
	if err != nil {
		log.Fatalf("Failed to prepare migrations: %v", err)
	}
	if err := runner.Up(context.Background()); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Object storage for listing photos
	storage.InitMinio()

	if config.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}

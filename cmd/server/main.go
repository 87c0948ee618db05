// cmd/server/main.go
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	_ "github.com/Taha-HB/sit-council-system/docs" // Required for Swagger
	"github.com/Taha-HB/sit-council-system/internal/api"
	"github.com/Taha-HB/sit-council-system/internal/config"
	"github.com/Taha-HB/sit-council-system/internal/store"
)

// @title           SIT Council API
// @version         1.0
// @description     REST backend for the student-council management tool: auth, meetings, minutes, announcements, uploads, dashboard

// @BasePath  /

// @securityDefinitions.apikey  BearerAuth
// @in                         header
// @name                       Authorization
func main() {

	gin.SetMode(gin.ReleaseMode)

	f, _ := os.Create("gin.log")
	gin.DefaultWriter = io.MultiWriter(f, os.Stdout)

	// Load configuration from .env
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using system environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create the upload directory if it doesn't exist
	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	// All collections live in process memory; nothing survives a restart.
	s := store.New()

	// Set up and start the server
	router := api.SetupRouter(s, cfg)

	serverAddr := fmt.Sprintf(":%s", cfg.Server.Port)
	if cfg.Env == "development" {
		log.Printf("Server starting on http://localhost%s", serverAddr)
		log.Printf("Swagger UI available at http://localhost%s/swagger/index.html", serverAddr)
	}

	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

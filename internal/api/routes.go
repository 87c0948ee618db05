// internal/api/routes.go
package api

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Taha-HB/sit-council-system/internal/api/handlers"
	"github.com/Taha-HB/sit-council-system/internal/auth"
	"github.com/Taha-HB/sit-council-system/internal/config"
	"github.com/Taha-HB/sit-council-system/internal/models"
	"github.com/Taha-HB/sit-council-system/internal/store"
)

func SetupRouter(s *store.Store, cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())

	// The council frontend runs on a different origin.
	router.Use(cors.Default())

	// Catch-all boundary: log the fault, never leak it to the caller.
	router.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		log.Printf("panic recovered: %v", err)
		c.JSON(500, gin.H{"error": "Something went wrong!"})
	}))

	issuer := auth.FromConfig(cfg)
	h := handlers.NewHandler(s, issuer, auth.PlainVerifier{}, cfg.Upload.Dir)

	//Swagger Route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded files are served back as raw bytes
	router.Static("/uploads", cfg.Upload.Dir)

	api := router.Group("/api")
	api.GET("/health", h.Health)

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/google", h.GoogleLogin)
	}

	// Protected routes
	protected := api.Group("")
	protected.Use(AuthMiddleware(issuer, s))
	{
		protected.GET("/meetings", h.ListMeetings)
		protected.POST("/meetings", h.CreateMeeting)
		protected.GET("/minutes", h.ListMinutes)
		protected.GET("/announcements", h.ListAnnouncements)
		protected.POST("/announcements", h.CreateAnnouncement)
		protected.POST("/upload", h.Upload)
		protected.POST("/generate-pdf", h.GeneratePDF)
		protected.GET("/dashboard/stats", h.DashboardStats)
		protected.GET("/leaderboard", h.Leaderboard)

		// Secretary only
		protected.POST("/minutes", RequireCapability(models.CapManageMinutes), h.CreateMinutes)
		protected.PUT("/meetings/:id/archive", RequireCapability(models.CapArchiveMeetings), h.ArchiveMeeting)
	}

	return router
}

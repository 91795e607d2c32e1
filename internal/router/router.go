package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devraj/portfolio-v2/backend/config"
	"github.com/devraj/portfolio-v2/backend/internal/api"
	"github.com/devraj/portfolio-v2/backend/internal/middleware"
)

// SetupRouter configures the application routes.
func SetupRouter(
	cfg *config.Config,
	db *gorm.DB,
	authHandler *api.AuthHandler,
	projectHandler *api.ProjectHandler,
	messageHandler *api.MessageHandler,
	profileHandler *api.ProfileHandler,
	validator middleware.TokenValidator,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS(cfg.AllowedOrigins))

	// Diagnostic endpoints, no auth
	router.GET("/", api.Root)
	router.GET("/test", api.TestEndpoint)
	router.GET("/api/health", api.HealthCheck(db))

	// Uploaded files are served directly from disk
	router.Static("/uploads", cfg.UploadDir)

	authMW := middleware.AuthMiddleware(validator)

	apiGroup := router.Group("/api")
	authHandler.RegisterRoutes(apiGroup, authMW)
	projectHandler.RegisterRoutes(apiGroup, authMW)
	messageHandler.RegisterRoutes(apiGroup, authMW)
	profileHandler.RegisterRoutes(apiGroup, authMW)

	return router
}

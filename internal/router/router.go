package router

import (
	"github.com/gin-gonic/gin"
	"github.com/noshheaven/backend/config"
	"github.com/noshheaven/backend/internal/api"
	"github.com/noshheaven/backend/internal/middleware"
	"github.com/noshheaven/backend/internal/service"
	"gorm.io/gorm"
)

// New builds the gin engine with global middleware and all API routes
func New(db *gorm.DB, authService service.IAuthService, cfg *config.Config) *gin.Engine {
	engine := gin.Default()

	// CORS middleware
	engine.Use(middleware.CORS())
	engine.Use(middleware.ErrorHandler())

	api.RegisterRoutes(engine, db, authService, cfg)

	return engine
}

package api

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/noshheaven/backend/config"
	"github.com/noshheaven/backend/internal/database"
	"github.com/noshheaven/backend/internal/middleware"
	"github.com/noshheaven/backend/internal/service"
	"gorm.io/gorm"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Nosh Heaven API is running",
		"version": "v1.0.0",
	})
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, db *gorm.DB, authService service.IAuthService, cfg *config.Config) {
	// Health check endpoint (no auth required)
	router.GET("/health", HealthCheck)
	router.GET("/api/health", HealthCheck)

	// Redis backs the preference cache and rate limiting; both are
	// optional at runtime.
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v", err)
		redisClient = nil
	}

	var mealCreationLimiter, reviewLimiter *middleware.RateLimiter
	if redisClient != nil {
		mealCreationLimiter = middleware.NewMealCreationRateLimiter(redisClient)
		reviewLimiter = middleware.NewReviewRateLimiter(redisClient)
	}

	// Create services
	preferenceService := service.NewPreferenceService(db, redisClient)
	reviewService := service.NewReviewService(db)
	mealService := service.NewMealService(db)
	chefService := service.NewChefService(db)
	discoveryService := service.NewDiscoveryService(db, preferenceService, reviewService)

	var imageService *service.ImageService
	if s3Config, err := config.NewS3Config(context.Background()); err == nil {
		imageService = service.NewImageService(s3Config)
	} else {
		log.Printf("Warning: image storage unavailable: %v", err)
	}

	// Create handlers
	authHandler := NewAuthHandler(authService)
	mealHandler := NewMealHandler(mealService, imageService, authService, mealCreationLimiter)
	discoveryHandler := NewDiscoveryHandler(discoveryService, authService)
	preferenceHandler := NewPreferenceHandler(preferenceService, authService)
	chefHandler := NewChefHandler(chefService, authService)
	reviewHandler := NewReviewHandler(reviewService, authService, reviewLimiter)

	// Register routes
	v1 := router.Group("/api/v1")
	authHandler.RegisterRoutes(v1)
	mealHandler.RegisterRoutes(v1)
	discoveryHandler.RegisterRoutes(v1)
	preferenceHandler.RegisterRoutes(v1)
	chefHandler.RegisterRoutes(v1)
	reviewHandler.RegisterRoutes(v1)

	// Rate limit status endpoint
	if mealCreationLimiter != nil {
		RegisterRateLimitRoutes(v1, authService, mealCreationLimiter)
	}
}

// RegisterRateLimitRoutes registers endpoints for checking rate limit status
func RegisterRateLimitRoutes(router *gin.RouterGroup, authService service.IAuthService, creationLimiter *middleware.RateLimiter) {
	rateLimits := router.Group("/rate-limits")
	rateLimits.Use(middleware.AuthMiddleware(authService))
	{
		rateLimits.GET("/meal-creation", func(c *gin.Context) {
			userID, exists := c.Get("user_id")
			if !exists {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
				return
			}

			userIDStr := fmt.Sprintf("%v", userID)
			remaining, resetTime, err := creationLimiter.GetRemainingRequests(c.Request.Context(), userIDStr)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check rate limit"})
				return
			}

			c.JSON(http.StatusOK, gin.H{
				"limit":      middleware.MealCreationLimit,
				"remaining":  remaining,
				"reset_time": resetTime.Unix(),
				"window":     "1h",
			})
		})
	}
}

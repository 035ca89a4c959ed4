package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/noshheaven/backend/internal/middleware"
	"github.com/noshheaven/backend/internal/service"
)

// defaultFeedLimit caps discovery responses when the client does not ask
// for a specific page size.
const defaultFeedLimit = 50

// DiscoveryHandler exposes the ranked meal feeds
type DiscoveryHandler struct {
	discoveryService service.IDiscoveryService
	authService      service.IAuthService
}

func NewDiscoveryHandler(discoveryService service.IDiscoveryService, authService service.IAuthService) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoveryService: discoveryService,
		authService:      authService,
	}
}

func (h *DiscoveryHandler) RegisterRoutes(router *gin.RouterGroup) {
	meals := router.Group("/meals")
	{
		// Similar meals work for anonymous users too; a token upgrades
		// the ordering to preference-aware.
		meals.GET("/:id/similar", OptionalAuth(h.authService), h.SimilarMeals)

		protected := meals.Group("", middleware.AuthMiddleware(h.authService))
		{
			protected.GET("/feed", h.PersonalizedFeed)
			protected.GET("/recommended", h.RecommendedMeals)
			protected.GET("/for-you", h.ForYouMeals)
		}
	}
}

func feedLimit(c *gin.Context) int {
	limit := defaultFeedLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	return limit
}

// PersonalizedFeed ranks the available catalog against the caller's
// preferences
func (h *DiscoveryHandler) PersonalizedFeed(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	meals, err := h.discoveryService.GetPersonalizedMeals(c.Request.Context(), userID, feedLimit(c))
	if err != nil {
		log.Printf("personalized feed failed for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build feed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

// RecommendedMeals ranks meals from followed chefs and previously liked
// meals
func (h *DiscoveryHandler) RecommendedMeals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	meals, err := h.discoveryService.GetRecommendedMeals(c.Request.Context(), userID, feedLimit(c))
	if err != nil {
		log.Printf("recommendations failed for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build recommendations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

// SimilarMeals returns meals sharing tags with the given meal
func (h *DiscoveryHandler) SimilarMeals(c *gin.Context) {
	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	var userID *uuid.UUID
	if id, ok := currentUserID(c); ok {
		userID = &id
	}

	meals, err := h.discoveryService.GetSimilarMeals(c.Request.Context(), mealID, userID, feedLimit(c))
	if err != nil {
		log.Printf("similar meals failed for meal %s: %v", mealID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to find similar meals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

// ForYouMeals ranks the catalog with taste-profile boosts layered over
// preference scoring
func (h *DiscoveryHandler) ForYouMeals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	meals, err := h.discoveryService.GetForYouMeals(c.Request.Context(), userID, feedLimit(c))
	if err != nil {
		log.Printf("for-you feed failed for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build feed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

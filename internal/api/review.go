package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/noshheaven/backend/internal/middleware"
	"github.com/noshheaven/backend/internal/models"
	"github.com/noshheaven/backend/internal/service"
	"github.com/noshheaven/backend/internal/types"
)

// ReviewHandler handles meal review endpoints
type ReviewHandler struct {
	reviewService service.IReviewService
	authService   service.IAuthService
	reviewLimiter *middleware.RateLimiter
}

func NewReviewHandler(reviewService service.IReviewService, authService service.IAuthService, reviewLimiter *middleware.RateLimiter) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		authService:   authService,
		reviewLimiter: reviewLimiter,
	}
}

func (h *ReviewHandler) RegisterRoutes(router *gin.RouterGroup) {
	meals := router.Group("/meals")
	{
		meals.GET("/:id/reviews", h.ListReviews)

		create := meals.Group("", middleware.AuthMiddleware(h.authService))
		if h.reviewLimiter != nil {
			create.Use(h.reviewLimiter.PerMealRateLimitMiddleware())
		}
		create.POST("/:id/reviews", h.CreateReview)
	}
}

func (h *ReviewHandler) ListReviews(c *gin.Context) {
	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	reviews, err := h.reviewService.ListMealReviews(c.Request.Context(), mealID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch reviews"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review := &models.Review{
		UserID:  userID,
		MealID:  mealID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	created, err := h.reviewService.CreateReview(c.Request.Context(), review)
	if err != nil {
		log.Printf("review creation failed for meal %s: %v", mealID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create review"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

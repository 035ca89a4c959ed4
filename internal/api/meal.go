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
	"gorm.io/gorm"
)

// MealHandler handles catalog CRUD, search and favorites
type MealHandler struct {
	mealService     service.IMealService
	imageService    *service.ImageService
	authService     service.IAuthService
	creationLimiter *middleware.RateLimiter
}

func NewMealHandler(mealService service.IMealService, imageService *service.ImageService, authService service.IAuthService, creationLimiter *middleware.RateLimiter) *MealHandler {
	return &MealHandler{
		mealService:     mealService,
		imageService:    imageService,
		authService:     authService,
		creationLimiter: creationLimiter,
	}
}

func (h *MealHandler) RegisterRoutes(router *gin.RouterGroup) {
	meals := router.Group("/meals")
	{
		meals.GET("", h.ListMeals)
		meals.GET("/:id", h.GetMeal)

		protected := meals.Group("")
		protected.Use(middleware.AuthMiddleware(h.authService))
		{
			create := protected.Group("")
			if h.creationLimiter != nil {
				create.Use(h.creationLimiter.RateLimitMiddleware())
			}
			create.POST("", h.CreateMeal)

			protected.PUT("/:id", h.UpdateMeal)
			protected.DELETE("/:id", h.DeleteMeal)
			protected.POST("/:id/image", h.UploadImage)
			protected.POST("/:id/favorite", h.FavoriteMeal)
			protected.DELETE("/:id/favorite", h.UnfavoriteMeal)
		}
	}

	favorites := router.Group("/favorites", middleware.AuthMiddleware(h.authService))
	{
		favorites.GET("/meals", h.GetFavoriteMeals)
	}
}

// ListMeals returns available meals, optionally filtered by a search query
func (h *MealHandler) ListMeals(c *gin.Context) {
	var (
		meals []*models.Meal
		err   error
	)
	if q := c.Query("q"); q != "" {
		meals, err = h.mealService.SearchMeals(c.Request.Context(), q)
	} else {
		meals, err = h.mealService.ListAvailableMeals(c.Request.Context())
	}
	if err != nil {
		log.Printf("meal listing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch meals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

func (h *MealHandler) GetMeal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	meal, err := h.mealService.GetMeal(c.Request.Context(), id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch meal"})
		return
	}

	c.JSON(http.StatusOK, meal)
}

func (h *MealHandler) CreateMeal(c *gin.Context) {
	var req types.CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chefID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	status := req.Status
	if status == "" {
		status = models.MealStatusAvailable
	}

	meal := &models.Meal{
		ChefID:      chefID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Cuisine:     models.JSONBStringArray(req.Cuisine),
		Dietary:     models.JSONBStringArray(req.Dietary),
		Allergens:   models.JSONBStringArray(req.Allergens),
		Images:      models.JSONBStringArray(req.Images),
		Status:      status,
		Calories:    req.Calories,
	}

	created, err := h.mealService.CreateMeal(c.Request.Context(), meal)
	if err != nil {
		log.Printf("meal creation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create meal"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *MealHandler) UpdateMeal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	var req types.UpdateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal := &models.Meal{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Cuisine:     models.JSONBStringArray(req.Cuisine),
		Dietary:     models.JSONBStringArray(req.Dietary),
		Allergens:   models.JSONBStringArray(req.Allergens),
		Images:      models.JSONBStringArray(req.Images),
		Status:      req.Status,
		Calories:    req.Calories,
	}

	updated, err := h.mealService.UpdateMeal(c.Request.Context(), id, meal)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update meal"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *MealHandler) DeleteMeal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	if err := h.mealService.DeleteMeal(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete meal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "meal deleted successfully", "id": id.String()})
}

// UploadImage attaches an uploaded photo to a meal
func (h *MealHandler) UploadImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	if h.imageService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage is not configured"})
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	defer file.Close()

	url, err := h.imageService.UploadMealImage(c.Request.Context(), id, file, header.Header.Get("Content-Type"))
	if err != nil {
		log.Printf("image upload failed for meal %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image"})
		return
	}

	meal, err := h.mealService.GetMeal(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return
	}
	meal.Images = append(meal.Images, url)
	if _, err := h.mealService.UpdateMeal(c.Request.Context(), id, meal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (h *MealHandler) FavoriteMeal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.mealService.FavoriteMeal(c.Request.Context(), userID, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to favorite meal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "meal favorited successfully", "id": id.String()})
}

func (h *MealHandler) UnfavoriteMeal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.mealService.UnfavoriteMeal(c.Request.Context(), userID, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to unfavorite meal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "meal unfavorited successfully", "id": id.String()})
}

func (h *MealHandler) GetFavoriteMeals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	meals, err := h.mealService.GetFavoriteMeals(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch favorite meals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

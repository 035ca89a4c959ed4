package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/noshheaven/backend/internal/middleware"
	"github.com/noshheaven/backend/internal/service"
	"gorm.io/gorm"
)

// ChefHandler handles chef lookup and follow endpoints
type ChefHandler struct {
	chefService service.IChefService
	authService service.IAuthService
}

func NewChefHandler(chefService service.IChefService, authService service.IAuthService) *ChefHandler {
	return &ChefHandler{
		chefService: chefService,
		authService: authService,
	}
}

func (h *ChefHandler) RegisterRoutes(router *gin.RouterGroup) {
	chefs := router.Group("/chefs")
	{
		chefs.GET("/:id", h.GetChef)

		protected := chefs.Group("", middleware.AuthMiddleware(h.authService))
		{
			protected.POST("/:id/follow", h.FollowChef)
			protected.DELETE("/:id/follow", h.UnfollowChef)
			protected.GET("/following", h.ListFollowedChefs)
		}
	}
}

func (h *ChefHandler) GetChef(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chef id"})
		return
	}

	chef, err := h.chefService.GetChef(c.Request.Context(), id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "chef not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch chef"})
		return
	}

	c.JSON(http.StatusOK, chef)
}

func (h *ChefHandler) FollowChef(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chef id"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.chefService.FollowChef(c.Request.Context(), userID, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to follow chef"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "chef followed successfully", "id": id.String()})
}

func (h *ChefHandler) UnfollowChef(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chef id"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.chefService.UnfollowChef(c.Request.Context(), userID, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to unfollow chef"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "chef unfollowed successfully", "id": id.String()})
}

func (h *ChefHandler) ListFollowedChefs(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	chefs, err := h.chefService.ListFollowedChefs(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch followed chefs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"chefs": chefs})
}

package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/noshheaven/backend/internal/middleware"
	"github.com/noshheaven/backend/internal/service"
	"github.com/noshheaven/backend/internal/types"
)

// PreferenceHandler handles allergy, dietary and food safety endpoints
type PreferenceHandler struct {
	preferenceService service.IPreferenceService
	authService       service.IAuthService
}

func NewPreferenceHandler(preferenceService service.IPreferenceService, authService service.IAuthService) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceService: preferenceService,
		authService:       authService,
	}
}

func (h *PreferenceHandler) RegisterRoutes(router *gin.RouterGroup) {
	prefs := router.Group("/preferences", middleware.AuthMiddleware(h.authService))
	{
		prefs.GET("", h.GetPreferences)
		prefs.GET("/allergies", h.ListAllergies)
		prefs.POST("/allergies", h.AddAllergy)
		prefs.DELETE("/allergies/:id", h.RemoveAllergy)
		prefs.PUT("/dietary", h.UpdateDietary)
		prefs.PUT("/food-safety", h.UpdateFoodSafety)
	}
}

// GetPreferences returns the assembled preference snapshot used by the
// ranking pipelines
func (h *PreferenceHandler) GetPreferences(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	prefs, err := h.preferenceService.LoadPreferences(c.Request.Context(), userID)
	if err != nil {
		log.Printf("preference load failed for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load preferences"})
		return
	}

	c.JSON(http.StatusOK, prefs)
}

func (h *PreferenceHandler) ListAllergies(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	allergies, err := h.preferenceService.ListAllergies(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch allergies"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"allergies": allergies})
}

func (h *PreferenceHandler) AddAllergy(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.AddAllergyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	allergy, err := h.preferenceService.AddAllergy(c.Request.Context(), userID, req.Name, req.Type, req.Severity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add allergy"})
		return
	}

	c.JSON(http.StatusCreated, allergy)
}

func (h *PreferenceHandler) RemoveAllergy(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	allergyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid allergy id"})
		return
	}

	if err := h.preferenceService.RemoveAllergy(c.Request.Context(), userID, allergyID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove allergy"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "allergy removed successfully", "id": allergyID.String()})
}

func (h *PreferenceHandler) UpdateDietary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.UpdateDietaryPreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prefs, err := h.preferenceService.UpsertDietaryPreferences(c.Request.Context(), userID, req.Preferences, req.ReligiousRequirements, req.HealthDriven)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update dietary preferences"})
		return
	}

	c.JSON(http.StatusOK, prefs)
}

func (h *PreferenceHandler) UpdateFoodSafety(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.UpdateFoodSafetyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	setting, err := h.preferenceService.SetFoodSafety(c.Request.Context(), userID, req.AvoidCrossContamination)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update food safety settings"})
		return
	}

	c.JSON(http.StatusOK, setting)
}

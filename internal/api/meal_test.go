package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/noshheaven/backend/internal/mocks"
	"github.com/noshheaven/backend/internal/models"
	"github.com/noshheaven/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupMealRouter(mealService *mocks.MockMealService, authService *mocks.MockAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewMealHandler(mealService, nil, authService, nil)
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func TestListMeals(t *testing.T) {
	mealService := new(mocks.MockMealService)
	authService := new(mocks.MockAuthService)
	router := setupMealRouter(mealService, authService)

	mealService.On("ListAvailableMeals", mock.Anything).
		Return([]*models.Meal{{ID: uuid.New(), Name: "Green Curry"}}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/meals", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Green Curry")
	mealService.AssertNotCalled(t, "SearchMeals")
}

func TestListMealsWithQuery(t *testing.T) {
	mealService := new(mocks.MockMealService)
	authService := new(mocks.MockAuthService)
	router := setupMealRouter(mealService, authService)

	mealService.On("SearchMeals", mock.Anything, "curry").
		Return([]*models.Meal{{ID: uuid.New(), Name: "Green Curry"}}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/meals?q=curry", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mealService.AssertExpectations(t)
}

func TestGetMealNotFound(t *testing.T) {
	mealService := new(mocks.MockMealService)
	authService := new(mocks.MockAuthService)
	router := setupMealRouter(mealService, authService)

	mealID := uuid.New()
	mealService.On("GetMeal", mock.Anything, mealID).Return(nil, gorm.ErrRecordNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/meals/"+mealID.String(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateMealRequiresAuth(t *testing.T) {
	mealService := new(mocks.MockMealService)
	authService := new(mocks.MockAuthService)
	router := setupMealRouter(mealService, authService)

	w := postJSON(t, router, "/api/v1/meals", gin.H{"name": "Green Curry"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mealService.AssertNotCalled(t, "CreateMeal")
}

func TestCreateMeal(t *testing.T) {
	mealService := new(mocks.MockMealService)
	authService := new(mocks.MockAuthService)
	router := setupMealRouter(mealService, authService)

	chefID := uuid.New()
	authService.On("ValidateToken", "good-token").
		Return(&types.TokenClaims{UserID: chefID, Username: "chef"}, nil)
	mealService.On("CreateMeal", mock.Anything, mock.MatchedBy(func(m *models.Meal) bool {
		return m.ChefID == chefID && m.Name == "Green Curry" && m.Status == models.MealStatusAvailable
	})).Return(&models.Meal{ID: uuid.New(), ChefID: chefID, Name: "Green Curry"}, nil)

	payload, err := json.Marshal(gin.H{
		"name":    "Green Curry",
		"price":   14.5,
		"cuisine": []string{"thai"},
	})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/meals", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mealService.AssertExpectations(t)
}

func TestFavoriteMeal(t *testing.T) {
	mealService := new(mocks.MockMealService)
	authService := new(mocks.MockAuthService)
	router := setupMealRouter(mealService, authService)

	userID := uuid.New()
	mealID := uuid.New()
	authService.On("ValidateToken", "good-token").
		Return(&types.TokenClaims{UserID: userID, Username: "diner"}, nil)
	mealService.On("FavoriteMeal", mock.Anything, userID, mealID).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/meals/"+mealID.String()+"/favorite", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mealService.AssertExpectations(t)
}

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/noshheaven/backend/config"
	"github.com/noshheaven/backend/internal/models"
	"github.com/noshheaven/backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) http.Handler {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Chef{},
		&models.Meal{},
		&models.Review{},
		&models.Allergy{},
		&models.DietaryPreference{},
		&models.FoodSafetySetting{},
		&models.UserFollow{},
		&models.UserFavorite{},
	))

	cfg := &config.Config{JWTSecret: "test-secret"}
	authService := service.NewAuthService(db, cfg.JWTSecret)
	return New(db, authService, cfg)
}

func TestHealthEndpoint(t *testing.T) {
	router := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := setupRouter(t)

	for _, path := range []string{
		"/api/v1/meals/feed",
		"/api/v1/preferences",
		"/api/v1/chefs/following",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestPublicCatalogRoute(t *testing.T) {
	router := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/meals", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/noshheaven/backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupServiceDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
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
	)
	require.NoError(t, err)
	return db
}

func createTestChef(t *testing.T, db *gorm.DB, name string, verified bool) *models.Chef {
	t.Helper()
	chef := &models.Chef{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Name:        name,
		Specialties: models.JSONBStringArray{},
	}
	if verified {
		chef.VerificationStatus = models.ChefVerificationVerified
		chef.HealthPermit = true
	}
	require.NoError(t, db.Create(chef).Error)
	return chef
}

func createTestMeal(t *testing.T, db *gorm.DB, chefID uuid.UUID, name string, mutate func(*models.Meal)) *models.Meal {
	t.Helper()
	meal := &models.Meal{
		ID:        uuid.New(),
		ChefID:    chefID,
		Name:      name,
		Status:    models.MealStatusAvailable,
		Cuisine:   models.JSONBStringArray{},
		Dietary:   models.JSONBStringArray{},
		Allergens: models.JSONBStringArray{},
		Images:    models.JSONBStringArray{},
		Embedding: GenerateEmbedding(name),
	}
	if mutate != nil {
		mutate(meal)
	}
	require.NoError(t, db.Create(meal).Error)
	return meal
}

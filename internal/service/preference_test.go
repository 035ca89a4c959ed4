package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/noshheaven/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestLoadPreferencesDefaults(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewPreferenceService(db, nil)

	prefs, err := svc.LoadPreferences(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Empty(t, prefs.Allergies)
	assert.Empty(t, prefs.DietaryPreferences)
	assert.Empty(t, prefs.ReligiousRequirements)
	assert.Empty(t, prefs.HealthDriven)
	assert.Empty(t, prefs.FollowedChefIDs)
	assert.Empty(t, prefs.LikedMealIDs)
	assert.Empty(t, prefs.LikedChefIDs)
	assert.False(t, prefs.FoodSafety.AvoidCrossContamination)
}

func TestLoadPreferencesAssemblesAllSources(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewPreferenceService(db, nil)
	userID := uuid.New()

	_, err := svc.AddAllergy(context.Background(), userID, "Peanuts", "", "")
	require.NoError(t, err)

	_, err = svc.UpsertDietaryPreferences(context.Background(), userID,
		[]string{"vegan"}, []string{"halal"}, []string{"low-sodium"})
	require.NoError(t, err)

	_, err = svc.SetFoodSafety(context.Background(), userID, true)
	require.NoError(t, err)

	chef := createTestChef(t, db, "Chef A", true)
	require.NoError(t, db.Create(&models.UserFollow{
		ID:         uuid.New(),
		FollowerID: userID,
		ChefID:     chef.ID,
	}).Error)

	likedMeal := createTestMeal(t, db, chef.ID, "Liked Meal", nil)
	require.NoError(t, db.Create(&models.UserFavorite{
		ID:           uuid.New(),
		UserID:       userID,
		FavoriteType: models.FavoriteTypeMeal,
		FavoriteID:   likedMeal.ID,
	}).Error)
	require.NoError(t, db.Create(&models.UserFavorite{
		ID:           uuid.New(),
		UserID:       userID,
		FavoriteType: models.FavoriteTypeChef,
		FavoriteID:   chef.ID,
	}).Error)

	prefs, err := svc.LoadPreferences(context.Background(), userID)
	require.NoError(t, err)

	// Allergy names are lowercased on load
	require.Len(t, prefs.Allergies, 1)
	assert.Equal(t, "peanuts", prefs.Allergies[0].Name)
	assert.Equal(t, models.AllergyTypeAllergy, prefs.Allergies[0].Type)
	assert.Equal(t, models.AllergySeverityModerate, prefs.Allergies[0].Severity)

	assert.Equal(t, []string{"vegan"}, prefs.DietaryPreferences)
	assert.Equal(t, []string{"halal"}, prefs.ReligiousRequirements)
	assert.Equal(t, []string{"low-sodium"}, prefs.HealthDriven)
	assert.True(t, prefs.FoodSafety.AvoidCrossContamination)

	assert.Contains(t, prefs.FollowedChefIDs, chef.ID)
	assert.Contains(t, prefs.LikedMealIDs, likedMeal.ID)
	assert.Contains(t, prefs.LikedChefIDs, chef.ID)
}

func TestAddAndRemoveAllergy(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewPreferenceService(db, nil)
	userID := uuid.New()

	allergy, err := svc.AddAllergy(context.Background(), userID, "shellfish", models.AllergyTypeIntolerance, models.AllergySeveritySevere)
	require.NoError(t, err)
	assert.Equal(t, models.AllergyTypeIntolerance, allergy.Type)
	assert.Equal(t, models.AllergySeveritySevere, allergy.Severity)

	allergies, err := svc.ListAllergies(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, allergies, 1)

	require.NoError(t, svc.RemoveAllergy(context.Background(), userID, allergy.ID))

	allergies, err = svc.ListAllergies(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, allergies)

	err = svc.RemoveAllergy(context.Background(), userID, allergy.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRemoveAllergyOwnership(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewPreferenceService(db, nil)

	owner := uuid.New()
	allergy, err := svc.AddAllergy(context.Background(), owner, "dairy", "", "")
	require.NoError(t, err)

	// A different user cannot delete someone else's entry
	err = svc.RemoveAllergy(context.Background(), uuid.New(), allergy.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	allergies, err := svc.ListAllergies(context.Background(), owner)
	require.NoError(t, err)
	assert.Len(t, allergies, 1)
}

func TestUpsertDietaryPreferencesReplacesDocument(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewPreferenceService(db, nil)
	userID := uuid.New()

	first, err := svc.UpsertDietaryPreferences(context.Background(), userID,
		[]string{"vegetarian"}, nil, nil)
	require.NoError(t, err)

	second, err := svc.UpsertDietaryPreferences(context.Background(), userID,
		[]string{"vegan", "gluten-free"}, []string{"kosher"}, nil)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.DietaryPreference{}).Where("user_id = ?", userID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	prefs, err := svc.LoadPreferences(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"vegan", "gluten-free"}, prefs.DietaryPreferences)
	assert.Equal(t, []string{"kosher"}, prefs.ReligiousRequirements)
}

func TestSetFoodSafetyToggle(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewPreferenceService(db, nil)
	userID := uuid.New()

	setting, err := svc.SetFoodSafety(context.Background(), userID, true)
	require.NoError(t, err)
	assert.True(t, setting.AvoidCrossContamination)

	setting, err = svc.SetFoodSafety(context.Background(), userID, false)
	require.NoError(t, err)
	assert.False(t, setting.AvoidCrossContamination)

	var count int64
	require.NoError(t, db.Model(&models.FoodSafetySetting{}).Where("user_id = ?", userID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestExtractTasteProfile(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewPreferenceService(db, nil)
	userID := uuid.New()

	// No likes yields an empty profile, not nil
	profile, err := svc.ExtractTasteProfile(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Empty(t, profile.LikedMeals)
	assert.Empty(t, profile.PreferredCuisines)

	chef := createTestChef(t, db, "Chef B", true)
	liked := createTestMeal(t, db, chef.ID, "Pad Thai", func(m *models.Meal) {
		m.Cuisine = models.JSONBStringArray{"thai"}
		m.Dietary = models.JSONBStringArray{"vegetarian"}
		m.Price = 12
	})
	require.NoError(t, db.Create(&models.UserFavorite{
		ID:           uuid.New(),
		UserID:       userID,
		FavoriteType: models.FavoriteTypeMeal,
		FavoriteID:   liked.ID,
	}).Error)

	profile, err = svc.ExtractTasteProfile(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, profile.LikedMeals, 1)
	assert.Equal(t, 1, profile.PreferredCuisines["thai"])
	assert.Equal(t, 1, profile.PreferredDietaryTags["vegetarian"])
	assert.Contains(t, profile.PreferredChefIDs, chef.ID)
	require.NotNil(t, profile.PreferredPriceRange)
	assert.Equal(t, 12.0, profile.PreferredPriceRange.Min)
	assert.Equal(t, 12.0, profile.AveragePrice)
}

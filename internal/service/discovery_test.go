package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/noshheaven/backend/internal/mocks"
	"github.com/noshheaven/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDiscoveryService(db *gorm.DB) *DiscoveryService {
	return NewDiscoveryService(db, NewPreferenceService(db, nil), NewReviewService(db))
}

func addAllergyRow(t *testing.T, db *gorm.DB, userID uuid.UUID, name string) {
	t.Helper()
	require.NoError(t, db.Create(&models.Allergy{
		ID:       uuid.New(),
		UserID:   userID,
		Name:     name,
		Type:     models.AllergyTypeAllergy,
		Severity: models.AllergySeveritySevere,
	}).Error)
}

func TestGetPersonalizedMealsFiltersAndRanks(t *testing.T) {
	db := setupServiceDB(t)
	svc := newDiscoveryService(db)
	chef := createTestChef(t, db, "Chef N", true)
	userID := uuid.New()

	addAllergyRow(t, db, userID, "peanuts")
	require.NoError(t, db.Create(&models.DietaryPreference{
		ID:          uuid.New(),
		UserID:      userID,
		Preferences: models.JSONBStringArray{"vegan"},
	}).Error)

	safe := createTestMeal(t, db, chef.ID, "Vegan Bowl", func(m *models.Meal) {
		m.Dietary = models.JSONBStringArray{"vegan"}
		m.Rating = 4
	})
	createTestMeal(t, db, chef.ID, "Peanut Noodles", func(m *models.Meal) {
		m.Allergens = models.JSONBStringArray{"peanut"}
		m.Rating = 5
	})

	meals, err := svc.GetPersonalizedMeals(context.Background(), userID, 0)
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, safe.ID, meals[0].Meal.ID)
	// Stored rating fallback (4*10) plus the dietary bonus
	assert.Equal(t, 90.0, meals[0].Score)
	assert.Contains(t, meals[0].Reasons, "Matches dietary preferences")
	assert.Equal(t, "Chef N", meals[0].Chef.Name)
}

func TestGetPersonalizedMealsUsesReviewAggregates(t *testing.T) {
	db := setupServiceDB(t)
	svc := newDiscoveryService(db)
	chef := createTestChef(t, db, "Chef O", true)
	userID := uuid.New()

	meal := createTestMeal(t, db, chef.ID, "Reviewed Meal", func(m *models.Meal) {
		m.Rating = 1
	})
	reviews := NewReviewService(db)
	for _, rating := range []float64{4, 5} {
		_, err := reviews.CreateReview(context.Background(), &models.Review{
			UserID: uuid.New(),
			MealID: meal.ID,
			Rating: rating,
		})
		require.NoError(t, err)
	}

	meals, err := svc.GetPersonalizedMeals(context.Background(), userID, 0)
	require.NoError(t, err)
	require.Len(t, meals, 1)
	// avg 4.5 * 10 + 2 reviews, not the stored rating
	assert.Equal(t, 47.0, meals[0].Score)
}

func TestGetPersonalizedMealsLimit(t *testing.T) {
	db := setupServiceDB(t)
	svc := newDiscoveryService(db)
	chef := createTestChef(t, db, "Chef P", false)

	for _, name := range []string{"Meal 1", "Meal 2", "Meal 3"} {
		createTestMeal(t, db, chef.ID, name, nil)
	}

	meals, err := svc.GetPersonalizedMeals(context.Background(), uuid.New(), 2)
	require.NoError(t, err)
	assert.Len(t, meals, 2)
}

func TestGetRecommendedMealsCandidateSet(t *testing.T) {
	db := setupServiceDB(t)
	svc := newDiscoveryService(db)
	userID := uuid.New()

	followed := createTestChef(t, db, "Followed Chef", true)
	other := createTestChef(t, db, "Other Chef", true)

	fromFollowed := createTestMeal(t, db, followed.ID, "From Followed", nil)
	// Liked meals are candidates even when unavailable
	liked := createTestMeal(t, db, other.ID, "Liked Meal", func(m *models.Meal) {
		m.Status = models.MealStatusUnavailable
	})
	createTestMeal(t, db, other.ID, "Unrelated Meal", nil)

	require.NoError(t, db.Create(&models.UserFollow{
		ID:         uuid.New(),
		FollowerID: userID,
		ChefID:     followed.ID,
	}).Error)
	require.NoError(t, db.Create(&models.UserFavorite{
		ID:           uuid.New(),
		UserID:       userID,
		FavoriteType: models.FavoriteTypeMeal,
		FavoriteID:   liked.ID,
	}).Error)

	meals, err := svc.GetRecommendedMeals(context.Background(), userID, 0)
	require.NoError(t, err)
	require.Len(t, meals, 2)

	byID := make(map[uuid.UUID]float64)
	for _, m := range meals {
		byID[m.Meal.ID] = m.Score
	}
	// Followed-chef meals: +40 in-engine plus the +50 candidate bonus
	assert.Equal(t, 90.0, byID[fromFollowed.ID])
	// Liked meals: +60 in-engine plus the +60 candidate bonus
	assert.Equal(t, 120.0, byID[liked.ID])
	assert.Equal(t, liked.ID, meals[0].Meal.ID)
}

func TestGetSimilarMealsUnknownBase(t *testing.T) {
	db := setupServiceDB(t)
	svc := newDiscoveryService(db)

	meals, err := svc.GetSimilarMeals(context.Background(), uuid.New(), nil, 0)
	require.NoError(t, err)
	assert.Empty(t, meals)
}

func TestGetSimilarMealsAnonymous(t *testing.T) {
	db := setupServiceDB(t)
	svc := newDiscoveryService(db)
	chef := createTestChef(t, db, "Chef Q", false)

	base := createTestMeal(t, db, chef.ID, "Green Curry", func(m *models.Meal) {
		m.Cuisine = models.JSONBStringArray{"thai"}
		m.Dietary = models.JSONBStringArray{"vegan"}
	})
	both := createTestMeal(t, db, chef.ID, "Pad See Ew", func(m *models.Meal) {
		m.Cuisine = models.JSONBStringArray{"thai"}
		m.Dietary = models.JSONBStringArray{"vegan"}
	})
	cuisineOnly := createTestMeal(t, db, chef.ID, "Tom Yum", func(m *models.Meal) {
		m.Cuisine = models.JSONBStringArray{"thai"}
	})
	createTestMeal(t, db, chef.ID, "Tacos", func(m *models.Meal) {
		m.Cuisine = models.JSONBStringArray{"mexican"}
	})

	meals, err := svc.GetSimilarMeals(context.Background(), base.ID, nil, 0)
	require.NoError(t, err)
	require.Len(t, meals, 2)

	// Shared cuisine and dietary tags outrank cuisine alone; unrelated
	// meals and the base itself never appear.
	assert.Equal(t, both.ID, meals[0].Meal.ID)
	assert.Equal(t, 15.0, meals[0].Score)
	assert.Equal(t, cuisineOnly.ID, meals[1].Meal.ID)
	assert.Equal(t, 10.0, meals[1].Score)
}

func TestGetSimilarMealsWithUserFiltersAllergens(t *testing.T) {
	db := setupServiceDB(t)
	svc := newDiscoveryService(db)
	chef := createTestChef(t, db, "Chef R", false)
	userID := uuid.New()
	addAllergyRow(t, db, userID, "shrimp")

	base := createTestMeal(t, db, chef.ID, "Veggie Rolls", func(m *models.Meal) {
		m.Cuisine = models.JSONBStringArray{"vietnamese"}
	})
	safe := createTestMeal(t, db, chef.ID, "Tofu Rolls", func(m *models.Meal) {
		m.Cuisine = models.JSONBStringArray{"vietnamese"}
	})
	createTestMeal(t, db, chef.ID, "Shrimp Rolls", func(m *models.Meal) {
		m.Cuisine = models.JSONBStringArray{"vietnamese"}
		m.Allergens = models.JSONBStringArray{"shrimp"}
	})

	meals, err := svc.GetSimilarMeals(context.Background(), base.ID, &userID, 0)
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, safe.ID, meals[0].Meal.ID)
	// Similarity scaled into the base score
	assert.Equal(t, 100.0, meals[0].Score)
}

func TestGetPersonalizedMealsFailSoft(t *testing.T) {
	db := setupServiceDB(t)
	chef := createTestChef(t, db, "Chef T", true)
	createTestMeal(t, db, chef.ID, "Fallback Meal", nil)

	prefs := new(mocks.MockPreferenceLoader)
	prefs.On("LoadPreferences", mock.Anything, mock.Anything).
		Return(nil, errors.New("cache down"))

	svc := NewDiscoveryService(db, prefs, NewReviewService(db))
	meals, err := svc.GetPersonalizedMeals(context.Background(), uuid.New(), 0)
	require.NoError(t, err)

	// Preference failure degrades to the unranked catalog
	require.Len(t, meals, 1)
	assert.Equal(t, "Fallback Meal", meals[0].Meal.Name)
	assert.Zero(t, meals[0].Score)
	assert.Empty(t, meals[0].Reasons)
}

func TestRatingBaseFallsBackOnAggregationFailure(t *testing.T) {
	db := setupServiceDB(t)
	chef := createTestChef(t, db, "Chef U", true)
	createTestMeal(t, db, chef.ID, "Stored Rating Meal", func(m *models.Meal) {
		m.Rating = 3
	})

	reviews := new(mocks.MockReviewAggregator)
	reviews.On("RatingSummaries", mock.Anything, mock.Anything).
		Return(nil, errors.New("aggregation failed"))

	svc := NewDiscoveryService(db, NewPreferenceService(db, nil), reviews)
	meals, err := svc.GetPersonalizedMeals(context.Background(), uuid.New(), 0)
	require.NoError(t, err)

	require.Len(t, meals, 1)
	assert.Equal(t, 30.0, meals[0].Score)
	reviews.AssertExpectations(t)
}

func TestGetForYouMealsAppliesTasteBoosts(t *testing.T) {
	db := setupServiceDB(t)
	svc := newDiscoveryService(db)
	chef := createTestChef(t, db, "Chef S", true)
	userID := uuid.New()

	liked := createTestMeal(t, db, chef.ID, "Liked Thai", func(m *models.Meal) {
		m.Cuisine = models.JSONBStringArray{"thai"}
		m.Price = 12
	})
	require.NoError(t, db.Create(&models.UserFavorite{
		ID:           uuid.New(),
		UserID:       userID,
		FavoriteType: models.FavoriteTypeMeal,
		FavoriteID:   liked.ID,
	}).Error)

	similar := createTestMeal(t, db, chef.ID, "Another Thai", func(m *models.Meal) {
		m.Cuisine = models.JSONBStringArray{"thai"}
		m.Price = 12
	})

	meals, err := svc.GetForYouMeals(context.Background(), userID, 0)
	require.NoError(t, err)
	require.Len(t, meals, 2)

	var similarRanked *float64
	for _, m := range meals {
		if m.Meal.ID == similar.ID {
			score := m.Score
			similarRanked = &score
			assert.Contains(t, m.Reasons, "Similar to a meal you liked")
		}
	}
	require.NotNil(t, similarRanked)
	assert.Greater(t, *similarRanked, 0.0)
}

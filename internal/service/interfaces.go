package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/noshheaven/backend/internal/models"
	"github.com/noshheaven/backend/internal/ranking"
	"github.com/noshheaven/backend/internal/types"
)

// PreferenceLoader is the slice of PreferenceService the discovery
// pipelines depend on.
type PreferenceLoader interface {
	LoadPreferences(ctx context.Context, userID uuid.UUID) (*ranking.UserPreferences, error)
	ExtractTasteProfile(ctx context.Context, userID uuid.UUID) (*ranking.TasteProfile, error)
}

// ReviewAggregator is the slice of ReviewService the discovery pipelines
// depend on.
type ReviewAggregator interface {
	RatingSummaries(ctx context.Context, mealIDs []uuid.UUID) (map[uuid.UUID]types.RatingSummary, error)
}

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, name, email, password, username string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	GenerateToken(userID uuid.UUID, username string) (string, error)
}

// IMealService defines the interface for meal catalog operations
type IMealService interface {
	CreateMeal(ctx context.Context, meal *models.Meal) (*models.Meal, error)
	GetMeal(ctx context.Context, id uuid.UUID) (*models.Meal, error)
	UpdateMeal(ctx context.Context, id uuid.UUID, meal *models.Meal) (*models.Meal, error)
	DeleteMeal(ctx context.Context, id uuid.UUID) error
	ListAvailableMeals(ctx context.Context) ([]*models.Meal, error)
	SearchMeals(ctx context.Context, query string) ([]*models.Meal, error)
	FavoriteMeal(ctx context.Context, userID, mealID uuid.UUID) error
	UnfavoriteMeal(ctx context.Context, userID, mealID uuid.UUID) error
	GetFavoriteMeals(ctx context.Context, userID uuid.UUID) ([]*models.Meal, error)
}

// IDiscoveryService defines the interface for the ranking pipelines
type IDiscoveryService interface {
	GetPersonalizedMeals(ctx context.Context, userID uuid.UUID, limit int) ([]*types.RankedMeal, error)
	GetRecommendedMeals(ctx context.Context, userID uuid.UUID, limit int) ([]*types.RankedMeal, error)
	GetSimilarMeals(ctx context.Context, mealID uuid.UUID, userID *uuid.UUID, limit int) ([]*types.RankedMeal, error)
	GetForYouMeals(ctx context.Context, userID uuid.UUID, limit int) ([]*types.RankedMeal, error)
}

// IPreferenceService defines the interface for preference management
type IPreferenceService interface {
	PreferenceLoader
	AddAllergy(ctx context.Context, userID uuid.UUID, name, allergyType, severity string) (*models.Allergy, error)
	RemoveAllergy(ctx context.Context, userID, allergyID uuid.UUID) error
	ListAllergies(ctx context.Context, userID uuid.UUID) ([]*models.Allergy, error)
	UpsertDietaryPreferences(ctx context.Context, userID uuid.UUID, preferences, religious, health []string) (*models.DietaryPreference, error)
	SetFoodSafety(ctx context.Context, userID uuid.UUID, avoidCrossContamination bool) (*models.FoodSafetySetting, error)
}

// IChefService defines the interface for chef and follow operations
type IChefService interface {
	GetChef(ctx context.Context, id uuid.UUID) (*models.Chef, error)
	FollowChef(ctx context.Context, userID, chefID uuid.UUID) error
	UnfollowChef(ctx context.Context, userID, chefID uuid.UUID) error
	ListFollowedChefs(ctx context.Context, userID uuid.UUID) ([]*models.Chef, error)
}

// IReviewService defines the interface for review operations
type IReviewService interface {
	ReviewAggregator
	CreateReview(ctx context.Context, review *models.Review) (*models.Review, error)
	ListMealReviews(ctx context.Context, mealID uuid.UUID) ([]*models.Review, error)
}

package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/noshheaven/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MealService handles meal catalog operations
type MealService struct {
	db *gorm.DB
}

// NewMealService creates a new MealService instance
func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

// CreateMeal creates a new meal and generates its search embedding
func (s *MealService) CreateMeal(ctx context.Context, meal *models.Meal) (*models.Meal, error) {
	if meal.ID == uuid.Nil {
		meal.ID = uuid.New()
	}
	meal.Embedding = GenerateEmbedding(meal.Name + " " + meal.Description)
	if err := s.db.WithContext(ctx).Create(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

// GetMeal retrieves a meal by ID with its chef attached
func (s *MealService) GetMeal(ctx context.Context, id uuid.UUID) (*models.Meal, error) {
	var meal models.Meal
	if err := s.db.WithContext(ctx).Preload("Chef").First(&meal, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

// UpdateMeal updates a meal
func (s *MealService) UpdateMeal(ctx context.Context, id uuid.UUID, meal *models.Meal) (*models.Meal, error) {
	meal.Embedding = GenerateEmbedding(meal.Name + " " + meal.Description)
	if err := s.db.WithContext(ctx).Model(&models.Meal{}).Where("id = ?", id).Updates(meal).Error; err != nil {
		return nil, err
	}
	return s.GetMeal(ctx, id)
}

// DeleteMeal deletes a meal
func (s *MealService) DeleteMeal(ctx context.Context, id uuid.UUID) error {
	var meal models.Meal
	if err := s.db.WithContext(ctx).First(&meal, "id = ?", id).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&models.Meal{}, "id = ?", id).Error
}

// ListAvailableMeals lists all meals currently marked available, with
// their chefs attached.
func (s *MealService) ListAvailableMeals(ctx context.Context) ([]*models.Meal, error) {
	var meals []models.Meal
	if err := s.db.WithContext(ctx).
		Preload("Chef").
		Where("status = ?", models.MealStatusAvailable).
		Find(&meals).Error; err != nil {
		return nil, err
	}
	result := make([]*models.Meal, len(meals))
	for i := range meals {
		result[i] = &meals[i]
	}
	return result, nil
}

// SearchMeals searches the catalog. On PostgreSQL the query embedding is
// combined with keyword matching; other dialects fall back to keywords.
func (s *MealService) SearchMeals(ctx context.Context, query string) ([]*models.Meal, error) {
	var meals []models.Meal

	dbQuery := s.db.WithContext(ctx).Where("status = ?", models.MealStatusAvailable)

	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		dbQuery = dbQuery.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)

		if s.db.Dialector.Name() == "postgres" {
			vec := GenerateEmbedding(query)
			dbQuery = dbQuery.Clauses(clause.OrderBy{
				Expression: clause.Expr{SQL: "embedding <-> ?", Vars: []interface{}{vec}},
			})
		}
	}

	if err := dbQuery.Find(&meals).Error; err != nil {
		return nil, err
	}
	result := make([]*models.Meal, len(meals))
	for i := range meals {
		result[i] = &meals[i]
	}
	return result, nil
}

// FavoriteMeal records a meal favorite for the user
func (s *MealService) FavoriteMeal(ctx context.Context, userID, mealID uuid.UUID) error {
	fav := models.UserFavorite{
		ID:           uuid.New(),
		UserID:       userID,
		FavoriteType: models.FavoriteTypeMeal,
		FavoriteID:   mealID,
	}
	return s.db.WithContext(ctx).Create(&fav).Error
}

// UnfavoriteMeal removes a meal favorite for the user
func (s *MealService) UnfavoriteMeal(ctx context.Context, userID, mealID uuid.UUID) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND favorite_type = ? AND favorite_id = ?", userID, models.FavoriteTypeMeal, mealID).
		Delete(&models.UserFavorite{}).Error
}

// GetFavoriteMeals returns the meals a user has favorited, regardless of
// their current availability.
func (s *MealService) GetFavoriteMeals(ctx context.Context, userID uuid.UUID) ([]*models.Meal, error) {
	var favorites []models.UserFavorite
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND favorite_type = ?", userID, models.FavoriteTypeMeal).
		Find(&favorites).Error; err != nil {
		return nil, err
	}
	if len(favorites) == 0 {
		return []*models.Meal{}, nil
	}

	ids := make([]uuid.UUID, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.FavoriteID)
	}

	var meals []models.Meal
	if err := s.db.WithContext(ctx).Preload("Chef").Where("id IN ?", ids).Find(&meals).Error; err != nil {
		return nil, err
	}
	result := make([]*models.Meal, len(meals))
	for i := range meals {
		result[i] = &meals[i]
	}
	return result, nil
}

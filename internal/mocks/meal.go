package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/noshheaven/backend/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockMealService is a mock implementation of the meal service
type MockMealService struct {
	mock.Mock
}

func (m *MockMealService) CreateMeal(ctx context.Context, meal *models.Meal) (*models.Meal, error) {
	args := m.Called(ctx, meal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meal), args.Error(1)
}

func (m *MockMealService) GetMeal(ctx context.Context, id uuid.UUID) (*models.Meal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meal), args.Error(1)
}

func (m *MockMealService) UpdateMeal(ctx context.Context, id uuid.UUID, meal *models.Meal) (*models.Meal, error) {
	args := m.Called(ctx, id, meal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meal), args.Error(1)
}

func (m *MockMealService) DeleteMeal(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMealService) ListAvailableMeals(ctx context.Context) ([]*models.Meal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Meal), args.Error(1)
}

func (m *MockMealService) SearchMeals(ctx context.Context, query string) ([]*models.Meal, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Meal), args.Error(1)
}

func (m *MockMealService) FavoriteMeal(ctx context.Context, userID, mealID uuid.UUID) error {
	args := m.Called(ctx, userID, mealID)
	return args.Error(0)
}

func (m *MockMealService) UnfavoriteMeal(ctx context.Context, userID, mealID uuid.UUID) error {
	args := m.Called(ctx, userID, mealID)
	return args.Error(0)
}

func (m *MockMealService) GetFavoriteMeals(ctx context.Context, userID uuid.UUID) ([]*models.Meal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Meal), args.Error(1)
}

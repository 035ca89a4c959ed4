package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/noshheaven/backend/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockDiscoveryService is a mock implementation of the discovery service
type MockDiscoveryService struct {
	mock.Mock
}

func (m *MockDiscoveryService) GetPersonalizedMeals(ctx context.Context, userID uuid.UUID, limit int) ([]*types.RankedMeal, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.RankedMeal), args.Error(1)
}

func (m *MockDiscoveryService) GetRecommendedMeals(ctx context.Context, userID uuid.UUID, limit int) ([]*types.RankedMeal, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.RankedMeal), args.Error(1)
}

func (m *MockDiscoveryService) GetSimilarMeals(ctx context.Context, mealID uuid.UUID, userID *uuid.UUID, limit int) ([]*types.RankedMeal, error) {
	args := m.Called(ctx, mealID, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.RankedMeal), args.Error(1)
}

func (m *MockDiscoveryService) GetForYouMeals(ctx context.Context, userID uuid.UUID, limit int) ([]*types.RankedMeal, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.RankedMeal), args.Error(1)
}

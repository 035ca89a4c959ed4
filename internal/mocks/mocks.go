package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/noshheaven/backend/internal/ranking"
	"github.com/noshheaven/backend/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockPreferenceLoader is a mock implementation of the preference loader
// used by the discovery pipelines
type MockPreferenceLoader struct {
	mock.Mock
}

func (m *MockPreferenceLoader) LoadPreferences(ctx context.Context, userID uuid.UUID) (*ranking.UserPreferences, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ranking.UserPreferences), args.Error(1)
}

func (m *MockPreferenceLoader) ExtractTasteProfile(ctx context.Context, userID uuid.UUID) (*ranking.TasteProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ranking.TasteProfile), args.Error(1)
}

// MockReviewAggregator is a mock implementation of the review aggregator
type MockReviewAggregator struct {
	mock.Mock
}

func (m *MockReviewAggregator) RatingSummaries(ctx context.Context, mealIDs []uuid.UUID) (map[uuid.UUID]types.RatingSummary, error) {
	args := m.Called(ctx, mealIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]types.RatingSummary), args.Error(1)
}

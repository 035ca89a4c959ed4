package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/noshheaven/backend/internal/models"
	"github.com/noshheaven/backend/internal/types"
	"gorm.io/gorm"
)

// ReviewService handles meal review operations and rating aggregation.
type ReviewService struct {
	db *gorm.DB
}

// NewReviewService creates a new ReviewService instance
func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// CreateReview records a review for a meal.
func (s *ReviewService) CreateReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	if review.Status == "" {
		review.Status = "published"
	}
	if err := s.db.WithContext(ctx).Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

// ListMealReviews returns all published reviews for a meal.
func (s *ReviewService) ListMealReviews(ctx context.Context, mealID uuid.UUID) ([]*models.Review, error) {
	var reviews []models.Review
	if err := s.db.WithContext(ctx).
		Where("meal_id = ? AND status = ?", mealID, "published").
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	result := make([]*models.Review, len(reviews))
	for i := range reviews {
		result[i] = &reviews[i]
	}
	return result, nil
}

// RatingSummaries aggregates published reviews for the given meals in a
// single query. Meals with no reviews simply have no entry in the result.
func (s *ReviewService) RatingSummaries(ctx context.Context, mealIDs []uuid.UUID) (map[uuid.UUID]types.RatingSummary, error) {
	summaries := make(map[uuid.UUID]types.RatingSummary, len(mealIDs))
	if len(mealIDs) == 0 {
		return summaries, nil
	}

	var rows []struct {
		MealID  uuid.UUID
		Average float64
		Count   int64
	}
	if err := s.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("meal_id, AVG(rating) AS average, COUNT(*) AS count").
		Where("meal_id IN ? AND status = ?", mealIDs, "published").
		Group("meal_id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("aggregate reviews: %w", err)
	}

	for _, row := range rows {
		summaries[row.MealID] = types.RatingSummary{Average: row.Average, Count: row.Count}
	}
	return summaries, nil
}

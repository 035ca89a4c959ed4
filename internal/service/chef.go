package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/noshheaven/backend/internal/models"
	"github.com/noshheaven/backend/internal/types"
	"gorm.io/gorm"
)

// ChefService handles chef profiles and follow edges
type ChefService struct {
	db *gorm.DB
}

// NewChefService creates a new ChefService instance
func NewChefService(db *gorm.DB) *ChefService {
	return &ChefService{db: db}
}

// GetChef retrieves a chef by ID
func (s *ChefService) GetChef(ctx context.Context, id uuid.UUID) (*models.Chef, error) {
	var chef models.Chef
	if err := s.db.WithContext(ctx).First(&chef, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &chef, nil
}

// FollowChef records a follow edge from the user to the chef
func (s *ChefService) FollowChef(ctx context.Context, userID, chefID uuid.UUID) error {
	var chef models.Chef
	if err := s.db.WithContext(ctx).First(&chef, "id = ?", chefID).Error; err != nil {
		return err
	}

	var existing models.UserFollow
	err := s.db.WithContext(ctx).
		Where("follower_id = ? AND chef_id = ?", userID, chefID).
		First(&existing).Error
	if err == nil {
		return nil // already following
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	follow := models.UserFollow{ID: uuid.New(), FollowerID: userID, ChefID: chefID}
	return s.db.WithContext(ctx).Create(&follow).Error
}

// UnfollowChef removes a follow edge
func (s *ChefService) UnfollowChef(ctx context.Context, userID, chefID uuid.UUID) error {
	return s.db.WithContext(ctx).
		Where("follower_id = ? AND chef_id = ?", userID, chefID).
		Delete(&models.UserFollow{}).Error
}

// ListFollowedChefs returns the chefs a user follows
func (s *ChefService) ListFollowedChefs(ctx context.Context, userID uuid.UUID) ([]*models.Chef, error) {
	var follows []models.UserFollow
	if err := s.db.WithContext(ctx).Where("follower_id = ?", userID).Find(&follows).Error; err != nil {
		return nil, err
	}
	if len(follows) == 0 {
		return []*models.Chef{}, nil
	}

	ids := make([]uuid.UUID, 0, len(follows))
	for _, f := range follows {
		ids = append(ids, f.ChefID)
	}

	var chefs []models.Chef
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&chefs).Error; err != nil {
		return nil, err
	}
	result := make([]*models.Chef, len(chefs))
	for i := range chefs {
		result[i] = &chefs[i]
	}
	return result, nil
}

// ChefSummaryFor builds the display summary for a meal's chef, falling
// back to placeholder values when the chef record is missing.
func ChefSummaryFor(chef *models.Chef) types.ChefSummary {
	if chef == nil {
		return types.ChefSummary{
			Name:        "Unknown Chef",
			Bio:         "",
			Specialties: []string{},
		}
	}
	return types.ChefSummary{
		Name:         chef.Name,
		Bio:          chef.Bio,
		Specialties:  []string(chef.Specialties),
		Rating:       chef.Rating,
		ProfileImage: chef.ProfileImage,
	}
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Favorite types
const (
	FavoriteTypeMeal = "meal"
	FavoriteTypeChef = "chef"
)

// UserFollow is a follow edge from a user to a chef.
type UserFollow struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	FollowerID uuid.UUID `gorm:"type:uuid;not null;index" json:"follower_id"`
	ChefID     uuid.UUID `gorm:"type:uuid;not null;index" json:"chef_id"`
}

func (UserFollow) TableName() string {
	return "user_follows"
}

// UserFavorite is a favorite edge from a user to a meal or a chef.
type UserFavorite struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index:idx_user_favorite_type" json:"user_id"`
	FavoriteType string    `gorm:"size:10;not null;index:idx_user_favorite_type" json:"favorite_type"`
	FavoriteID   uuid.UUID `gorm:"type:uuid;not null;index" json:"favorite_id"`
}

func (UserFavorite) TableName() string {
	return "user_favorites"
}

package models

import (
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// Meal availability statuses
const (
	MealStatusAvailable   = "available"
	MealStatusUnavailable = "unavailable"
)

type Meal struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`
	ChefID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"chef_id"`
	Name        string           `gorm:"size:255;not null" json:"name"`
	Description string           `gorm:"type:text" json:"description"`
	Price       float64          `gorm:"type:float" json:"price"`
	Cuisine     JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"cuisine"`
	Dietary     JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"dietary"`
	Allergens   JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"allergens"`
	Status      string           `gorm:"size:20;not null;default:'available';index" json:"status"`
	Rating      float64          `gorm:"type:float" json:"rating"`
	Images      JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"images"`
	Calories    float64          `gorm:"type:float" json:"calories"`
	Embedding   pgvector.Vector  `gorm:"type:vector(3)" json:"-"`

	Chef *Chef `gorm:"foreignKey:ChefID" json:"chef,omitempty"`
}

func (Meal) TableName() string {
	return "meals"
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Chef verification statuses
const (
	ChefVerificationPending  = "pending"
	ChefVerificationVerified = "verified"
	ChefVerificationRejected = "rejected"
)

type Chef struct {
	ID                 uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
	DeletedAt          gorm.DeletedAt   `gorm:"index" json:"-"`
	UserID             uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	Name               string           `gorm:"size:255;not null" json:"name"`
	Bio                string           `gorm:"type:text" json:"bio"`
	Specialties        JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"specialties"`
	Rating             float64          `gorm:"type:float" json:"rating"`
	Status             string           `gorm:"size:30;not null;default:'active'" json:"status"`
	City               string           `gorm:"size:100" json:"city"`
	ProfileImage       string           `gorm:"size:255" json:"profile_image"`
	VerificationStatus string           `gorm:"size:20;default:'pending'" json:"verification_status"`
	HealthPermit       bool             `gorm:"default:false" json:"health_permit"`
	Insurance          bool             `gorm:"default:false" json:"insurance"`
	BackgroundCheck    bool             `gorm:"default:false" json:"background_check"`
}

func (Chef) TableName() string {
	return "chefs"
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Allergy types and severities
const (
	AllergyTypeAllergy     = "allergy"
	AllergyTypeIntolerance = "intolerance"

	AllergySeverityMild     = "mild"
	AllergySeverityModerate = "moderate"
	AllergySeveritySevere   = "severe"
)

// Allergy represents a single allergy or intolerance entry for a user.
type Allergy struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string         `gorm:"size:50;not null" json:"name"`
	Type      string         `gorm:"size:20;not null;default:'allergy'" json:"type"`
	Severity  string         `gorm:"size:20;not null;default:'moderate'" json:"severity"`
}

func (Allergy) TableName() string {
	return "allergies"
}

// DietaryPreference is the single per-user document holding dietary,
// religious and health-driven tags.
type DietaryPreference struct {
	ID                    uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
	DeletedAt             gorm.DeletedAt   `gorm:"index" json:"-"`
	UserID                uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Preferences           JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"preferences"`
	ReligiousRequirements JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"religious_requirements"`
	HealthDriven          JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"health_driven"`
}

func (DietaryPreference) TableName() string {
	return "dietary_preferences"
}

// FoodSafetySetting holds per-user food safety switches.
type FoodSafetySetting struct {
	ID                      uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CreatedAt               time.Time      `json:"created_at"`
	UpdatedAt               time.Time      `json:"updated_at"`
	DeletedAt               gorm.DeletedAt `gorm:"index" json:"-"`
	UserID                  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	AvoidCrossContamination bool           `gorm:"default:false" json:"avoid_cross_contamination"`
}

func (FoodSafetySetting) TableName() string {
	return "food_safety_settings"
}

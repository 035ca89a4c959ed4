// Package ranking implements preference-aware meal filtering and scoring.
// Everything in this package is a pure function over a meal and a
// point-in-time snapshot of a user's preferences; nothing here touches
// the database.
package ranking

import (
	"github.com/google/uuid"
	"github.com/noshheaven/backend/internal/models"
)

// Scoring weights. AllergenPenalty is the hard-exclusion penalty;
// ExclusionThreshold is derived from it so the two cannot drift apart
// if the penalty is ever retuned.
const (
	AllergenPenalty    = -1000.0
	ExclusionThreshold = AllergenPenalty / 2

	BonusSafetyStandards = 25.0
	BonusDietaryMatch    = 50.0
	BonusReligiousMatch  = 30.0
	BonusHealthMatch     = 20.0
	BonusFollowedChef    = 40.0
	BonusLikedChef       = 30.0
	BonusLikedMeal       = 60.0
)

// Allergy is a single allergy or intolerance from a user's profile.
// Name is expected to be lower-cased by the preference loader.
type Allergy struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Severity string `json:"severity"`
}

// FoodSafetySettings holds the user's food safety switches.
type FoodSafetySettings struct {
	AvoidCrossContamination bool `json:"avoid_cross_contamination"`
}

// UserPreferences is the snapshot the preference loader assembles for a
// single user. All collections default to empty; a zero value is a valid
// "no preferences" profile.
type UserPreferences struct {
	Allergies             []Allergy               `json:"allergies"`
	DietaryPreferences    []string                `json:"dietary_preferences"`
	ReligiousRequirements []string                `json:"religious_requirements"`
	HealthDriven          []string                `json:"health_driven"`
	FollowedChefIDs       map[uuid.UUID]struct{}  `json:"followed_chef_ids"`
	LikedMealIDs          map[uuid.UUID]struct{}  `json:"liked_meal_ids"`
	LikedChefIDs          map[uuid.UUID]struct{}  `json:"liked_chef_ids"`
	FoodSafety            FoodSafetySettings      `json:"food_safety"`
}

// MealRelevanceScore is the per-candidate output of the scoring core.
// It lives for the duration of one ranking call.
type MealRelevanceScore struct {
	Meal    *models.Meal `json:"meal"`
	Score   float64      `json:"score"`
	Reasons []string     `json:"reasons"`
}

package types

import (
	"github.com/noshheaven/backend/internal/models"
)

// ChefSummary is the display-oriented slice of a chef record attached to
// ranked meals. Placeholder values are used when the chef record is
// missing.
type ChefSummary struct {
	Name         string   `json:"name"`
	Bio          string   `json:"bio"`
	Specialties  []string `json:"specialties"`
	Rating       float64  `json:"rating"`
	ProfileImage string   `json:"profile_image"`
}

// RankedMeal is a meal paired with its chef summary and the relevance
// score the discovery pipelines computed for it.
type RankedMeal struct {
	Meal    *models.Meal `json:"meal"`
	Chef    ChefSummary  `json:"chef"`
	Score   float64      `json:"score"`
	Reasons []string     `json:"reasons"`
}

// RatingSummary aggregates the published reviews of one meal.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

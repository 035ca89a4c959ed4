package ranking

import (
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/noshheaven/backend/internal/models"
)

// Similarity weights for the similar-items candidate scoring.
const (
	SimilarityCuisineWeight = 10.0
	SimilarityDietaryWeight = 5.0
)

// Weights for meal-to-meal similarity used by taste profiling. These are
// heavier than the similar-items weights because a single liked meal is a
// stronger signal than catalog adjacency.
const (
	mealSimilarityCuisineWeight = 15.0
	mealSimilarityDietaryWeight = 10.0
	mealSimilarityPriceBonus    = 8.0
	mealSimilaritySameChefBonus = 20.0
)

func lowerSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[strings.ToLower(t)] = struct{}{}
	}
	return set
}

func sharedTagCount(a, b []string) int {
	set := lowerSet(b)
	count := 0
	for _, t := range a {
		if _, ok := set[strings.ToLower(t)]; ok {
			count++
		}
	}
	return count
}

// SharedTagSimilarity scores how alike two meals are by cuisine and
// dietary tag overlap. Zero means the meals share nothing.
func SharedTagSimilarity(a, b *models.Meal) float64 {
	return SimilarityCuisineWeight*float64(sharedTagCount(a.Cuisine, b.Cuisine)) +
		SimilarityDietaryWeight*float64(sharedTagCount(a.Dietary, b.Dietary))
}

// MealSimilarity is the richer meal-to-meal score used when comparing a
// candidate against a user's liked meals: tag overlap plus a bonus for
// prices within 20% of each other and for sharing a chef.
func MealSimilarity(a, b *models.Meal) float64 {
	score := mealSimilarityCuisineWeight*float64(sharedTagCount(a.Cuisine, b.Cuisine)) +
		mealSimilarityDietaryWeight*float64(sharedTagCount(a.Dietary, b.Dietary))

	if a.Price > 0 && b.Price > 0 {
		avg := (a.Price + b.Price) / 2
		if math.Abs(a.Price-b.Price) < avg*0.2 {
			score += mealSimilarityPriceBonus
		}
	}

	if a.ChefID != uuid.Nil && a.ChefID == b.ChefID {
		score += mealSimilaritySameChefBonus
	}

	return score
}

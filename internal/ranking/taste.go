package ranking

import (
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/noshheaven/backend/internal/models"
)

// Taste boost tuning.
const (
	tasteIndividualScale    = 0.5
	tasteIndividualCap      = 40.0
	tasteCuisineCountWeight = 5.0
	tasteDietaryCountWeight = 3.0
	tastePriceRangeBonus    = 10.0
	tastePriceNearAvgBonus  = 5.0
	tastePreferredChefBonus = 15.0
)

// PriceRange is the min/max price observed over a user's liked meals.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// TasteProfile captures patterns extracted from the meals a user has
// liked: tag frequencies, price habits and the chefs behind them. The
// liked meals themselves are kept for individual similarity checks.
type TasteProfile struct {
	PreferredCuisines    map[string]int         `json:"preferred_cuisines"`
	PreferredDietaryTags map[string]int         `json:"preferred_dietary_tags"`
	PreferredPriceRange  *PriceRange            `json:"preferred_price_range,omitempty"`
	AveragePrice         float64                `json:"average_price,omitempty"`
	PreferredChefIDs     map[uuid.UUID]struct{} `json:"preferred_chef_ids"`
	LikedMeals           []*models.Meal         `json:"-"`
}

// BuildTasteProfile aggregates a user's liked meals into a taste profile.
// An empty input yields an empty profile, never nil.
func BuildTasteProfile(likedMeals []*models.Meal) *TasteProfile {
	profile := &TasteProfile{
		PreferredCuisines:    make(map[string]int),
		PreferredDietaryTags: make(map[string]int),
		PreferredChefIDs:     make(map[uuid.UUID]struct{}),
	}

	var prices []float64
	for _, meal := range likedMeals {
		if meal == nil {
			continue
		}
		profile.LikedMeals = append(profile.LikedMeals, meal)

		for _, cuisine := range meal.Cuisine {
			profile.PreferredCuisines[strings.ToLower(cuisine)]++
		}
		for _, tag := range meal.Dietary {
			profile.PreferredDietaryTags[strings.ToLower(tag)]++
		}
		if meal.ChefID != uuid.Nil {
			profile.PreferredChefIDs[meal.ChefID] = struct{}{}
		}
		if meal.Price > 0 {
			prices = append(prices, meal.Price)
		}
	}

	if len(prices) > 0 {
		min, max, sum := prices[0], prices[0], 0.0
		for _, p := range prices {
			if p < min {
				min = p
			}
			if p > max {
				max = p
			}
			sum += p
		}
		profile.PreferredPriceRange = &PriceRange{Min: min, Max: max}
		profile.AveragePrice = sum / float64(len(prices))
	}

	return profile
}

// maxLikedSimilarity returns the highest MealSimilarity between the
// candidate and any liked meal, skipping the candidate itself: an exact
// liked meal already collects its own bonus in Score.
func maxLikedSimilarity(meal *models.Meal, profile *TasteProfile) float64 {
	max := 0.0
	for _, liked := range profile.LikedMeals {
		if liked.ID == meal.ID {
			return 0
		}
		if s := MealSimilarity(meal, liked); s > max {
			max = s
		}
	}
	return max
}

// TasteSimilarity scores a candidate against the user's taste profile:
// likeness to individual liked meals (scaled and capped to avoid double
// counting), aggregate cuisine/dietary patterns, price habits and
// preferred chefs.
func TasteSimilarity(meal *models.Meal, profile *TasteProfile) float64 {
	score := 0.0

	if individual := maxLikedSimilarity(meal, profile); individual > 0 {
		score += math.Min(individual*tasteIndividualScale, tasteIndividualCap)
	}

	for _, cuisine := range meal.Cuisine {
		if count := profile.PreferredCuisines[strings.ToLower(cuisine)]; count > 0 {
			score += float64(count) * tasteCuisineCountWeight
		}
	}

	for _, tag := range meal.Dietary {
		if count := profile.PreferredDietaryTags[strings.ToLower(tag)]; count > 0 {
			score += float64(count) * tasteDietaryCountWeight
		}
	}

	if meal.Price > 0 && profile.PreferredPriceRange != nil {
		if meal.Price >= profile.PreferredPriceRange.Min && meal.Price <= profile.PreferredPriceRange.Max {
			score += tastePriceRangeBonus
		} else if profile.AveragePrice > 0 &&
			math.Abs(meal.Price-profile.AveragePrice) < profile.AveragePrice*0.2 {
			score += tastePriceNearAvgBonus
		}
	}

	if _, ok := profile.PreferredChefIDs[meal.ChefID]; ok {
		score += tastePreferredChefBonus
	}

	return score
}

// ScoreWithTasteProfile layers taste-profile boosts over Score. Excluded
// meals return unchanged; the taste boost never resurrects an allergen
// match.
func ScoreWithTasteProfile(meal *models.Meal, prefs *UserPreferences, profile *TasteProfile, baseScore float64) MealRelevanceScore {
	result := Score(meal, prefs, baseScore)
	if result.Score < ExclusionThreshold || profile == nil {
		return result
	}

	tasteScore := TasteSimilarity(meal, profile)
	if tasteScore <= 0 {
		return result
	}

	result.Score += tasteScore
	switch individual := maxLikedSimilarity(meal, profile); {
	case individual > 20:
		result.Reasons = append(result.Reasons, "Similar to a meal you liked")
	case individual > 0:
		result.Reasons = append(result.Reasons, "Similar to your liked meals")
	default:
		result.Reasons = append(result.Reasons, "Matches your taste preferences")
	}

	return result
}

// FilterAndRankWithTasteProfile is FilterAndRank with taste-profile
// boosts applied to every surviving candidate.
func FilterAndRankWithTasteProfile(meals []*models.Meal, prefs *UserPreferences, profile *TasteProfile, baseScoreFn func(*models.Meal) float64) []MealRelevanceScore {
	scored := make([]MealRelevanceScore, 0, len(meals))
	for _, meal := range meals {
		base := meal.Rating * 10
		if baseScoreFn != nil {
			base = baseScoreFn(meal)
		}
		s := ScoreWithTasteProfile(meal, prefs, profile, base)
		if s.Score < ExclusionThreshold {
			continue
		}
		scored = append(scored, s)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

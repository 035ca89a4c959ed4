package ranking

import (
	"sort"

	"github.com/noshheaven/backend/internal/models"
)

// chefMeetsSafetyStandards reports whether a meal's chef follows proper
// cross-contamination protocols: verified with a health permit on file.
func chefMeetsSafetyStandards(chef *models.Chef) bool {
	if chef == nil {
		return false
	}
	return chef.VerificationStatus == models.ChefVerificationVerified && chef.HealthPermit
}

// IsEligible is the hard inclusion gate, independent of ranking score.
// Allergen and religious constraints are compliance-level; dietary and
// health tags never gate eligibility, they only affect score.
func IsEligible(meal *models.Meal, prefs *UserPreferences) bool {
	if hasAllergen(meal.Allergens, prefs.Allergies) {
		return false
	}

	// A user with religious requirements only sees meals carrying at
	// least one matching dietary tag. An empty set is vacuously satisfied.
	if len(prefs.ReligiousRequirements) > 0 {
		if !matchesExactTag(meal.Dietary, prefs.ReligiousRequirements) {
			return false
		}
	}

	if prefs.FoodSafety.AvoidCrossContamination {
		if !chefMeetsSafetyStandards(meal.Chef) {
			return false
		}
	}

	return true
}

// Score computes the relevance of a meal for a user starting from a
// caller-supplied base score. Allergen matches short-circuit with a heavy
// penalty, which makes Score a self-sufficient safety net even when the
// caller skips IsEligible. All bonuses are additive and independent.
func Score(meal *models.Meal, prefs *UserPreferences, baseScore float64) MealRelevanceScore {
	score := baseScore
	reasons := []string{}

	if hasAllergen(meal.Allergens, prefs.Allergies) {
		score += AllergenPenalty
		reasons = append(reasons, "Contains allergens")
		return MealRelevanceScore{Meal: meal, Score: score, Reasons: reasons}
	}

	if prefs.FoodSafety.AvoidCrossContamination {
		if !chefMeetsSafetyStandards(meal.Chef) {
			score += AllergenPenalty
			reasons = append(reasons, "Does not meet cross-contamination safety standards")
			return MealRelevanceScore{Meal: meal, Score: score, Reasons: reasons}
		}
		score += BonusSafetyStandards
		reasons = append(reasons, "Meets cross-contamination safety standards")
	}

	if matchesAnyTag(meal.Dietary, prefs.DietaryPreferences) {
		score += BonusDietaryMatch
		reasons = append(reasons, "Matches dietary preferences")
	}

	if matchesExactTag(meal.Dietary, prefs.ReligiousRequirements) {
		score += BonusReligiousMatch
		reasons = append(reasons, "Matches religious requirements")
	}

	if matchesAnyTag(meal.Dietary, prefs.HealthDriven) {
		score += BonusHealthMatch
		reasons = append(reasons, "Matches health preferences")
	}

	if _, ok := prefs.FollowedChefIDs[meal.ChefID]; ok {
		score += BonusFollowedChef
		reasons = append(reasons, "From followed chef")
	}

	if _, ok := prefs.LikedChefIDs[meal.ChefID]; ok {
		score += BonusLikedChef
		reasons = append(reasons, "From liked kitchen")
	}

	if _, ok := prefs.LikedMealIDs[meal.ID]; ok {
		score += BonusLikedMeal
		reasons = append(reasons, "Previously liked")
	}

	return MealRelevanceScore{Meal: meal, Score: score, Reasons: reasons}
}

// FilterAndRank scores every candidate, drops everything below the
// exclusion threshold and returns the rest ordered by score descending.
// The sort is stable, so equal scores keep their input order. Callers
// apply their own limit downstream.
func FilterAndRank(meals []*models.Meal, prefs *UserPreferences, baseScoreFn func(*models.Meal) float64) []MealRelevanceScore {
	scored := make([]MealRelevanceScore, 0, len(meals))
	for _, meal := range meals {
		base := meal.Rating * 10
		if baseScoreFn != nil {
			base = baseScoreFn(meal)
		}
		s := Score(meal, prefs, base)
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

package service

import (
	"context"
	"errors"
	"log"
	"sort"

	"github.com/google/uuid"
	"github.com/noshheaven/backend/internal/models"
	"github.com/noshheaven/backend/internal/ranking"
	"github.com/noshheaven/backend/internal/types"
	"gorm.io/gorm"
)

// Recommendation candidate bonuses, applied on top of the identical
// in-engine bonuses: followed/liked meals are double-weighted in that
// pipeline by design, since the affinity is why they are candidates at
// all.
const (
	recommendFollowedBonus = 50.0
	recommendLikedBonus    = 60.0
)

// similarityBaseScale converts a raw tag-similarity score into a base
// score for preference ranking.
const similarityBaseScale = 10.0

// DiscoveryService assembles candidate meal sets and ranks them with the
// preference engine. All entry points are fail-soft: when preference
// loading or review aggregation fails, the caller still gets an unranked
// list rather than an error.
type DiscoveryService struct {
	db          *gorm.DB
	preferences PreferenceLoader
	reviews     ReviewAggregator
}

// NewDiscoveryService creates a new DiscoveryService instance
func NewDiscoveryService(db *gorm.DB, preferences PreferenceLoader, reviews ReviewAggregator) *DiscoveryService {
	return &DiscoveryService{
		db:          db,
		preferences: preferences,
		reviews:     reviews,
	}
}

// availableMeals fetches every available meal with its chef attached.
func (s *DiscoveryService) availableMeals(ctx context.Context) ([]*models.Meal, error) {
	var meals []models.Meal
	if err := s.db.WithContext(ctx).
		Preload("Chef").
		Where("status = ?", models.MealStatusAvailable).
		Find(&meals).Error; err != nil {
		return nil, err
	}
	result := make([]*models.Meal, len(meals))
	for i := range meals {
		result[i] = &meals[i]
	}
	return result, nil
}

// ratingBaseFn builds the standard base-score function: average review
// rating times ten plus the review count, falling back to the meal's own
// stored rating when it has no reviews. Aggregation failure degrades to
// the stored rating for every meal.
func (s *DiscoveryService) ratingBaseFn(ctx context.Context, meals []*models.Meal) func(*models.Meal) float64 {
	ids := make([]uuid.UUID, 0, len(meals))
	for _, m := range meals {
		ids = append(ids, m.ID)
	}

	summaries, err := s.reviews.RatingSummaries(ctx, ids)
	if err != nil {
		log.Printf("review aggregation failed, falling back to stored ratings: %v", err)
		summaries = nil
	}

	return func(m *models.Meal) float64 {
		if summary, ok := summaries[m.ID]; ok && summary.Count > 0 {
			return summary.Average*10 + float64(summary.Count)
		}
		return m.Rating * 10
	}
}

func toRankedMeals(scored []ranking.MealRelevanceScore, limit int) []*types.RankedMeal {
	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	result := make([]*types.RankedMeal, 0, len(scored))
	for _, s := range scored {
		result = append(result, &types.RankedMeal{
			Meal:    s.Meal,
			Chef:    ChefSummaryFor(s.Meal.Chef),
			Score:   s.Score,
			Reasons: s.Reasons,
		})
	}
	return result
}

// unrankedMeals is the fail-soft shape: the candidate set as-is, capped
// at limit, with no scores or reasons.
func unrankedMeals(meals []*models.Meal, limit int) []*types.RankedMeal {
	if limit > 0 && len(meals) > limit {
		meals = meals[:limit]
	}
	result := make([]*types.RankedMeal, 0, len(meals))
	for _, m := range meals {
		result = append(result, &types.RankedMeal{
			Meal:    m,
			Chef:    ChefSummaryFor(m.Chef),
			Reasons: []string{},
		})
	}
	return result
}

// GetPersonalizedMeals ranks every available meal against the user's
// preferences. On preference-load failure it degrades to the unranked,
// unfiltered candidate set.
func (s *DiscoveryService) GetPersonalizedMeals(ctx context.Context, userID uuid.UUID, limit int) ([]*types.RankedMeal, error) {
	meals, err := s.availableMeals(ctx)
	if err != nil {
		return nil, err
	}

	baseFn := s.ratingBaseFn(ctx, meals)

	prefs, err := s.preferences.LoadPreferences(ctx, userID)
	if err != nil {
		log.Printf("preference load failed for user %s, returning unranked feed: %v", userID, err)
		return unrankedMeals(meals, limit), nil
	}

	ranked := ranking.FilterAndRank(meals, prefs, baseFn)
	return toRankedMeals(ranked, limit), nil
}

// GetRecommendedMeals ranks the union of available meals from followed
// chefs and the user's liked meals (regardless of availability),
// deduplicated by meal ID. Followed and liked candidates carry extra base
// bonuses on top of the engine's own.
func (s *DiscoveryService) GetRecommendedMeals(ctx context.Context, userID uuid.UUID, limit int) ([]*types.RankedMeal, error) {
	prefs, err := s.preferences.LoadPreferences(ctx, userID)
	if err != nil {
		// Without preferences there is no affinity candidate set; fall
		// back to the plain available catalog.
		log.Printf("preference load failed for user %s, returning unranked catalog: %v", userID, err)
		meals, ferr := s.availableMeals(ctx)
		if ferr != nil {
			return nil, ferr
		}
		return unrankedMeals(meals, limit), nil
	}

	candidates := make(map[uuid.UUID]*models.Meal)

	if len(prefs.FollowedChefIDs) > 0 {
		chefIDs := make([]uuid.UUID, 0, len(prefs.FollowedChefIDs))
		for id := range prefs.FollowedChefIDs {
			chefIDs = append(chefIDs, id)
		}
		var meals []models.Meal
		if err := s.db.WithContext(ctx).
			Preload("Chef").
			Where("chef_id IN ? AND status = ?", chefIDs, models.MealStatusAvailable).
			Find(&meals).Error; err != nil {
			return nil, err
		}
		for i := range meals {
			candidates[meals[i].ID] = &meals[i]
		}
	}

	if len(prefs.LikedMealIDs) > 0 {
		mealIDs := make([]uuid.UUID, 0, len(prefs.LikedMealIDs))
		for id := range prefs.LikedMealIDs {
			mealIDs = append(mealIDs, id)
		}
		var meals []models.Meal
		if err := s.db.WithContext(ctx).
			Preload("Chef").
			Where("id IN ?", mealIDs).
			Find(&meals).Error; err != nil {
			return nil, err
		}
		for i := range meals {
			candidates[meals[i].ID] = &meals[i]
		}
	}

	meals := make([]*models.Meal, 0, len(candidates))
	for _, m := range candidates {
		meals = append(meals, m)
	}
	// Map iteration order is random; fix the pre-rank order so ties and
	// degraded output are reproducible.
	sort.Slice(meals, func(i, j int) bool {
		return meals[i].ID.String() < meals[j].ID.String()
	})

	ratingBase := s.ratingBaseFn(ctx, meals)
	baseFn := func(m *models.Meal) float64 {
		base := ratingBase(m)
		if _, ok := prefs.FollowedChefIDs[m.ChefID]; ok {
			base += recommendFollowedBonus
		}
		if _, ok := prefs.LikedMealIDs[m.ID]; ok {
			base += recommendLikedBonus
		}
		return base
	}

	ranked := ranking.FilterAndRank(meals, prefs, baseFn)
	return toRankedMeals(ranked, limit), nil
}

// GetSimilarMeals finds available meals sharing cuisine or dietary tags
// with the base meal. Anonymous callers get pure similarity order with no
// preference gating; a known user gets the shared candidates ranked by
// the preference engine with similarity as the base score. A missing base
// meal yields an empty list, not an error.
func (s *DiscoveryService) GetSimilarMeals(ctx context.Context, mealID uuid.UUID, userID *uuid.UUID, limit int) ([]*types.RankedMeal, error) {
	var base models.Meal
	if err := s.db.WithContext(ctx).First(&base, "id = ?", mealID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("similar meals requested for unknown meal %s", mealID)
			return []*types.RankedMeal{}, nil
		}
		return nil, err
	}

	available, err := s.availableMeals(ctx)
	if err != nil {
		return nil, err
	}

	similarity := make(map[uuid.UUID]float64)
	candidates := make([]*models.Meal, 0, len(available))
	for _, m := range available {
		if m.ID == base.ID {
			continue
		}
		score := ranking.SharedTagSimilarity(m, &base)
		if score == 0 {
			continue
		}
		similarity[m.ID] = score
		candidates = append(candidates, m)
	}

	if userID == nil {
		// Anonymous lookups order purely by similarity; preference
		// filtering does not apply.
		sort.SliceStable(candidates, func(i, j int) bool {
			return similarity[candidates[i].ID] > similarity[candidates[j].ID]
		})
		if limit > 0 && len(candidates) > limit {
			candidates = candidates[:limit]
		}
		result := make([]*types.RankedMeal, 0, len(candidates))
		for _, m := range candidates {
			result = append(result, &types.RankedMeal{
				Meal:    m,
				Chef:    ChefSummaryFor(m.Chef),
				Score:   similarity[m.ID],
				Reasons: []string{},
			})
		}
		return result, nil
	}

	prefs, err := s.preferences.LoadPreferences(ctx, *userID)
	if err != nil {
		log.Printf("preference load failed for user %s, returning similarity order: %v", *userID, err)
		sort.SliceStable(candidates, func(i, j int) bool {
			return similarity[candidates[i].ID] > similarity[candidates[j].ID]
		})
		return unrankedMeals(candidates, limit), nil
	}

	ranked := ranking.FilterAndRank(candidates, prefs, func(m *models.Meal) float64 {
		return similarity[m.ID] * similarityBaseScale
	})
	return toRankedMeals(ranked, limit), nil
}

// GetForYouMeals ranks the available catalog with taste-profile boosts
// layered over the standard preference scoring.
func (s *DiscoveryService) GetForYouMeals(ctx context.Context, userID uuid.UUID, limit int) ([]*types.RankedMeal, error) {
	meals, err := s.availableMeals(ctx)
	if err != nil {
		return nil, err
	}

	baseFn := s.ratingBaseFn(ctx, meals)

	prefs, err := s.preferences.LoadPreferences(ctx, userID)
	if err != nil {
		log.Printf("preference load failed for user %s, returning unranked feed: %v", userID, err)
		return unrankedMeals(meals, limit), nil
	}

	profile, err := s.preferences.ExtractTasteProfile(ctx, userID)
	if err != nil {
		log.Printf("taste profile extraction failed for user %s, ranking without it: %v", userID, err)
		profile = nil
	}

	ranked := ranking.FilterAndRankWithTasteProfile(meals, prefs, profile, baseFn)
	return toRankedMeals(ranked, limit), nil
}

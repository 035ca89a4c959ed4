package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/noshheaven/backend/internal/models"
	"github.com/noshheaven/backend/internal/ranking"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// preferenceCacheTTL bounds how stale a cached preference snapshot can be.
// Ranking is a heuristic, so a stale-by-one-write snapshot is tolerable.
const preferenceCacheTTL = 5 * time.Minute

// PreferenceService assembles per-user preference snapshots from their
// independent sources and manages preference writes.
type PreferenceService struct {
	db    *gorm.DB
	cache *redis.Client
}

// NewPreferenceService creates a new PreferenceService instance. The Redis
// client is optional; without it every load hits the database.
func NewPreferenceService(db *gorm.DB, cache *redis.Client) *PreferenceService {
	return &PreferenceService{
		db:    db,
		cache: cache,
	}
}

func preferenceCacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("prefs:%s", userID)
}

// LoadPreferences builds a UserPreferences snapshot for the user. Each of
// the sources is read independently; a user with no rows anywhere gets a
// snapshot of empty collections, never an error. Only a real database
// failure is reported, and all sources are still attempted first.
func (s *PreferenceService) LoadPreferences(ctx context.Context, userID uuid.UUID) (*ranking.UserPreferences, error) {
	if cached := s.cachedPreferences(ctx, userID); cached != nil {
		return cached, nil
	}

	prefs := &ranking.UserPreferences{
		DietaryPreferences:    []string{},
		ReligiousRequirements: []string{},
		HealthDriven:          []string{},
		FollowedChefIDs:       make(map[uuid.UUID]struct{}),
		LikedMealIDs:          make(map[uuid.UUID]struct{}),
		LikedChefIDs:          make(map[uuid.UUID]struct{}),
	}

	var loadErrs []error

	var allergies []models.Allergy
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&allergies).Error; err != nil {
		loadErrs = append(loadErrs, fmt.Errorf("load allergies: %w", err))
	}
	for _, a := range allergies {
		prefs.Allergies = append(prefs.Allergies, ranking.Allergy{
			Name:     strings.ToLower(a.Name),
			Type:     a.Type,
			Severity: a.Severity,
		})
	}

	var dietary models.DietaryPreference
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&dietary).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			loadErrs = append(loadErrs, fmt.Errorf("load dietary preferences: %w", err))
		}
		// absent document keeps the empty defaults
	} else {
		prefs.DietaryPreferences = []string(dietary.Preferences)
		prefs.ReligiousRequirements = []string(dietary.ReligiousRequirements)
		prefs.HealthDriven = []string(dietary.HealthDriven)
	}

	var follows []models.UserFollow
	if err := s.db.WithContext(ctx).Where("follower_id = ?", userID).Find(&follows).Error; err != nil {
		loadErrs = append(loadErrs, fmt.Errorf("load follows: %w", err))
	}
	for _, f := range follows {
		prefs.FollowedChefIDs[f.ChefID] = struct{}{}
	}

	var favorites []models.UserFavorite
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&favorites).Error; err != nil {
		loadErrs = append(loadErrs, fmt.Errorf("load favorites: %w", err))
	}
	for _, f := range favorites {
		switch f.FavoriteType {
		case models.FavoriteTypeMeal:
			prefs.LikedMealIDs[f.FavoriteID] = struct{}{}
		case models.FavoriteTypeChef:
			prefs.LikedChefIDs[f.FavoriteID] = struct{}{}
		}
	}

	var safety models.FoodSafetySetting
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&safety).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			loadErrs = append(loadErrs, fmt.Errorf("load food safety settings: %w", err))
		}
	} else {
		prefs.FoodSafety.AvoidCrossContamination = safety.AvoidCrossContamination
	}

	if len(loadErrs) > 0 {
		return nil, errors.Join(loadErrs...)
	}

	s.storePreferences(ctx, userID, prefs)
	return prefs, nil
}

// cachedPreferences returns a cached snapshot or nil. Cache failures are
// ignored; the database is the source of truth.
func (s *PreferenceService) cachedPreferences(ctx context.Context, userID uuid.UUID) *ranking.UserPreferences {
	if s.cache == nil {
		return nil
	}
	data, err := s.cache.Get(ctx, preferenceCacheKey(userID)).Bytes()
	if err != nil {
		return nil
	}
	var prefs ranking.UserPreferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil
	}
	return &prefs
}

func (s *PreferenceService) storePreferences(ctx context.Context, userID uuid.UUID, prefs *ranking.UserPreferences) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(prefs)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, preferenceCacheKey(userID), data, preferenceCacheTTL).Err(); err != nil {
		log.Printf("failed to cache preferences for user %s: %v", userID, err)
	}
}

func (s *PreferenceService) invalidateCache(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, preferenceCacheKey(userID)).Err(); err != nil {
		log.Printf("failed to invalidate preference cache for user %s: %v", userID, err)
	}
}

// ExtractTasteProfile loads the user's liked meals and aggregates them
// into a taste profile. Users with no likes get an empty profile.
func (s *PreferenceService) ExtractTasteProfile(ctx context.Context, userID uuid.UUID) (*ranking.TasteProfile, error) {
	var favorites []models.UserFavorite
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND favorite_type = ?", userID, models.FavoriteTypeMeal).
		Find(&favorites).Error; err != nil {
		return nil, fmt.Errorf("load liked meals: %w", err)
	}

	if len(favorites) == 0 {
		return ranking.BuildTasteProfile(nil), nil
	}

	ids := make([]uuid.UUID, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.FavoriteID)
	}

	var meals []models.Meal
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&meals).Error; err != nil {
		return nil, fmt.Errorf("load liked meals: %w", err)
	}

	liked := make([]*models.Meal, len(meals))
	for i := range meals {
		liked[i] = &meals[i]
	}
	return ranking.BuildTasteProfile(liked), nil
}

// AddAllergy records a new allergy for the user.
func (s *PreferenceService) AddAllergy(ctx context.Context, userID uuid.UUID, name, allergyType, severity string) (*models.Allergy, error) {
	if allergyType == "" {
		allergyType = models.AllergyTypeAllergy
	}
	if severity == "" {
		severity = models.AllergySeverityModerate
	}
	allergy := models.Allergy{
		ID:       uuid.New(),
		UserID:   userID,
		Name:     name,
		Type:     allergyType,
		Severity: severity,
	}
	if err := s.db.WithContext(ctx).Create(&allergy).Error; err != nil {
		return nil, err
	}
	s.invalidateCache(ctx, userID)
	return &allergy, nil
}

// RemoveAllergy deletes an allergy entry owned by the user.
func (s *PreferenceService) RemoveAllergy(ctx context.Context, userID, allergyID uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", allergyID, userID).
		Delete(&models.Allergy{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	s.invalidateCache(ctx, userID)
	return nil
}

// ListAllergies returns all allergy entries for the user.
func (s *PreferenceService) ListAllergies(ctx context.Context, userID uuid.UUID) ([]*models.Allergy, error) {
	var allergies []models.Allergy
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&allergies).Error; err != nil {
		return nil, err
	}
	result := make([]*models.Allergy, len(allergies))
	for i := range allergies {
		result[i] = &allergies[i]
	}
	return result, nil
}

// UpsertDietaryPreferences replaces the user's single dietary-preference
// document.
func (s *PreferenceService) UpsertDietaryPreferences(ctx context.Context, userID uuid.UUID, preferences, religious, health []string) (*models.DietaryPreference, error) {
	var doc models.DietaryPreference
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&doc).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		doc = models.DietaryPreference{ID: uuid.New(), UserID: userID}
	case err != nil:
		return nil, err
	}

	doc.Preferences = models.JSONBStringArray(preferences)
	doc.ReligiousRequirements = models.JSONBStringArray(religious)
	doc.HealthDriven = models.JSONBStringArray(health)

	if err := s.db.WithContext(ctx).Save(&doc).Error; err != nil {
		return nil, err
	}
	s.invalidateCache(ctx, userID)
	return &doc, nil
}

// SetFoodSafety updates the user's food safety switches.
func (s *PreferenceService) SetFoodSafety(ctx context.Context, userID uuid.UUID, avoidCrossContamination bool) (*models.FoodSafetySetting, error) {
	var setting models.FoodSafetySetting
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&setting).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		setting = models.FoodSafetySetting{ID: uuid.New(), UserID: userID}
	case err != nil:
		return nil, err
	}

	setting.AvoidCrossContamination = avoidCrossContamination
	if err := s.db.WithContext(ctx).Save(&setting).Error; err != nil {
		return nil, err
	}
	s.invalidateCache(ctx, userID)
	return &setting, nil
}

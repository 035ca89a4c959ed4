package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFollowChefIsIdempotent(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewChefService(db)
	chef := createTestChef(t, db, "Chef I", true)
	userID := uuid.New()

	require.NoError(t, svc.FollowChef(context.Background(), userID, chef.ID))
	require.NoError(t, svc.FollowChef(context.Background(), userID, chef.ID))

	chefs, err := svc.ListFollowedChefs(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, chefs, 1)
	assert.Equal(t, chef.ID, chefs[0].ID)
}

func TestFollowUnknownChef(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewChefService(db)

	err := svc.FollowChef(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUnfollowChef(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewChefService(db)
	chef := createTestChef(t, db, "Chef J", false)
	userID := uuid.New()

	require.NoError(t, svc.FollowChef(context.Background(), userID, chef.ID))
	require.NoError(t, svc.UnfollowChef(context.Background(), userID, chef.ID))

	chefs, err := svc.ListFollowedChefs(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, chefs)
}

func TestChefSummaryForMissingChef(t *testing.T) {
	summary := ChefSummaryFor(nil)
	assert.Equal(t, "Unknown Chef", summary.Name)
	assert.Empty(t, summary.Bio)
	assert.Empty(t, summary.Specialties)
}

func TestChefSummaryFor(t *testing.T) {
	db := setupServiceDB(t)
	chef := createTestChef(t, db, "Chef K", true)
	chef.Bio = "Bio"
	chef.Rating = 4.2

	summary := ChefSummaryFor(chef)
	assert.Equal(t, "Chef K", summary.Name)
	assert.Equal(t, "Bio", summary.Bio)
	assert.Equal(t, 4.2, summary.Rating)
}

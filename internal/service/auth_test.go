package service

import (
	"context"
	"testing"

	"github.com/noshheaven/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterCreatesUserAndProfile(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewAuthService(db, "test-secret")

	user, err := svc.Register(context.Background(), "Test User", "test@example.com", "password123", "testuser")
	require.NoError(t, err)
	assert.Equal(t, "Test User", user.Name)

	// Password is stored hashed, never in the clear
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))

	var profile models.UserProfile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
	assert.Equal(t, "testuser", profile.Username)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.Register(context.Background(), "First", "dup@example.com", "password123", "first")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Second", "dup@example.com", "password456", "second")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLoginIssuesValidToken(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewAuthService(db, "test-secret")

	registered, err := svc.Register(context.Background(), "Test User", "login@example.com", "password123", "testuser")
	require.NoError(t, err)

	user, token, err := svc.Login(context.Background(), "login@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.UserID)
	assert.Equal(t, "testuser", claims.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.Register(context.Background(), "Test User", "wrong@example.com", "password123", "testuser")
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "wrong@example.com", "badpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewAuthService(db, "test-secret")

	_, _, err := svc.Login(context.Background(), "missing@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	db := setupServiceDB(t)
	issuer := NewAuthService(db, "secret-a")
	verifier := NewAuthService(db, "secret-b")

	user, err := issuer.Register(context.Background(), "Test User", "token@example.com", "password123", "testuser")
	require.NoError(t, err)

	token, err := issuer.GenerateToken(user.ID, "testuser")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = verifier.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

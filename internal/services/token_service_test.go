package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stadtwache/stadtwache-backend/internal/models"
)

func testUser() *models.User {
	return &models.User{
		ID:       uuid.New(),
		Email:    "wache@example.com",
		Username: "wache",
		Role:     models.RolePolice,
	}
}

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc := NewTokenService("test-secret")
	user := testUser()

	raw, err := svc.Issue(user, time.Hour)
	require.NoError(t, err)

	claims, err := svc.Validate(raw)
	require.NoError(t, err)
	assert.Equal(t, user.Email, claims.Subject)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, models.RolePolice, claims.Role)
	assert.Equal(t, SubjectKindEmail, claims.SubjectKind)
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("test-secret")

	raw, err := svc.Issue(testUser(), -time.Minute)
	require.NoError(t, err)

	_, err = svc.Validate(raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenExpired)
	// Expiry is still just an invalid-token failure to callers.
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_WrongSecret(t *testing.T) {
	raw, err := NewTokenService("test-secret").Issue(testUser(), time.Hour)
	require.NoError(t, err)

	_, err = NewTokenService("other-secret").Validate(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("test-secret")

	_, err := svc.Validate("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.Validate("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestClaimsFromMap(t *testing.T) {
	claims := ClaimsFromMap(jwt.MapClaims{
		"sub":      "wache@example.com",
		"user_id":  "8a1d8f3e-9f6b-4a8e-b6a9-3a2f1c0d9e8f",
		"role":     "admin",
		"sub_kind": SubjectKindEmail,
	})

	assert.Equal(t, "wache@example.com", claims.Subject)
	assert.Equal(t, "8a1d8f3e-9f6b-4a8e-b6a9-3a2f1c0d9e8f", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, SubjectKindEmail, claims.SubjectKind)
}

func TestClaimsFromMap_PartialClaims(t *testing.T) {
	claims := ClaimsFromMap(jwt.MapClaims{"sub": "wache@example.com"})

	assert.Equal(t, "wache@example.com", claims.Subject)
	assert.Empty(t, claims.UserID)
	assert.Empty(t, claims.SubjectKind)
}

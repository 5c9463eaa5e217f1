//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"github.com/MAGNO9/SchoolTrack/internal/domain/user"
	"github.com/MAGNO9/SchoolTrack/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, user.RoleDriver)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, string(user.RoleDriver), claims.Role)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	other := jwt.NewService("other-secret", time.Hour)

	token, err := svc.GenerateToken(uuid.New(), user.RoleGuardian)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := jwt.NewService("test-secret", -time.Minute)

	token, err := svc.GenerateToken(uuid.New(), user.RoleAdmin)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

package jwt

import (
	"Savora-Admin/domain"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseUserToken(t *testing.T) {
	service := NewJWTService()
	userID := uuid.NewString()

	token := service.GenerateTokenUser(userID, domain.RoleAdmin)
	require.NotEmpty(t, token)

	gotID, gotRole, err := service.GetUserIDByToken(token)
	require.NoError(t, err)
	require.Equal(t, userID, gotID)
	require.Equal(t, domain.RoleAdmin, gotRole)
}

func TestGetUserIDByToken_Invalid(t *testing.T) {
	service := NewJWTService()

	_, _, err := service.GetUserIDByToken("not.a.token")
	require.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestForgetPasswordToken(t *testing.T) {
	service := NewJWTService()

	token, err := service.GenerateTokenForgetPassword(map[string]any{"email": "demo@savora.com"}, 30*time.Minute)
	require.NoError(t, err)

	claims, err := service.ValidateTokenForgetPassword(token)
	require.NoError(t, err)
	require.Equal(t, "demo@savora.com", claims["email"])
}

func TestForgetPasswordToken_Expired(t *testing.T) {
	service := NewJWTService()

	token, err := service.GenerateTokenForgetPassword(map[string]any{"email": "demo@savora.com"}, -time.Minute)
	require.NoError(t, err)

	_, err = service.ValidateTokenForgetPassword(token)
	require.ErrorIs(t, err, domain.ErrTokenExpired)
}

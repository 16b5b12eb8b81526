package jwt

import (
	"Recipe-Share-Backend/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	service := NewJWTService()

	token := service.GenerateTokenUser("user-123", "ana@example.com")
	require.NotEmpty(t, token)

	userID, email, err := service.GetUserDetailByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
	assert.Equal(t, "ana@example.com", email)
}

func TestValidateGarbageToken(t *testing.T) {
	service := NewJWTService()

	_, _, err := service.GetUserDetailByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestValidateTamperedToken(t *testing.T) {
	service := NewJWTService()

	token := service.GenerateTokenUser("user-123", "ana@example.com")
	_, _, err := service.GetUserDetailByToken(token + "x")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

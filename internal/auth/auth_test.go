package auth

import (
	"testing"

	"recruivo_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig() {
	cfg := &config.Config{}
	cfg.JWT.Secret = "unit_test_secret"
	cfg.JWT.TTL = 5
	config.AppConfig = cfg
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, CheckPasswordHash("password123", hash))
	assert.False(t, CheckPasswordHash("wrong_password", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("long_enough_password"))
}

func TestTokenRoundTrip(t *testing.T) {
	setTestConfig()

	token, err := GenerateToken("user-1", "student", "student@test.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "student", claims.Role)
	assert.Equal(t, "student@test.com", claims.Email)
}

func TestParseToken_Garbage(t *testing.T) {
	setTestConfig()

	_, err := ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseToken_WrongSecret(t *testing.T) {
	setTestConfig()
	token, err := GenerateToken("user-1", "student", "student@test.com")
	require.NoError(t, err)

	config.AppConfig.JWT.Secret = "a_different_secret"
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

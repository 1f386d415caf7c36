package auth

import (
	"testing"
	"time"

	"petmart/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	tokenService, err := NewJWTService(testConfig())
	require.NoError(t, err)
	require.NotNil(t, tokenService)

	adminID := uuid.New()

	tokenString, err := tokenService.GenerateAccessToken(adminID)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	token, err := tokenService.ValidateToken(tokenString)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, adminID.String(), claims["sub"])
	assert.Equal(t, "access", claims["type"])
}

func TestJWTService_MissingSecret(t *testing.T) {
	cfg := &config.Config{}

	tokenService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, tokenService)
}

func TestJWTService_InvalidToken(t *testing.T) {
	tokenService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	_, err = tokenService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	tokenService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Access = "a_completely_different_secret_key_for_testing"
	otherService, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	tokenString, err := otherService.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = tokenService.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	tokenService := &jwtService{
		accessSecret: "test_access_secret_key_very_long_for_testing",
		accessTTL:    -time.Minute,
	}

	tokenString, err := tokenService.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = tokenService.ValidateToken(tokenString)
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

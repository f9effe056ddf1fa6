package utils

import (
	"testing"
	"time"

	"astromarket/config"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtractClaims(t *testing.T) {
	token, err := GenerateToken("user-7", RoleAdmin, time.Hour)
	require.NoError(t, err)

	sub, role, err := ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "user-7", sub)
	assert.Equal(t, RoleAdmin, role)
}

func TestExtractClaimsRejects(t *testing.T) {
	expired, err := GenerateToken("user-7", "", -time.Minute)
	require.NoError(t, err)
	_, _, err = ExtractClaims(expired)
	assert.Error(t, err)

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "user-7"})
	signed, err := foreign.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)
	_, _, err = ExtractClaims(signed)
	assert.Error(t, err)

	key, err := secretKey()
	require.NoError(t, err)
	noSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"role": "user"}).SignedString(key)
	require.NoError(t, err)
	_, _, err = ExtractClaims(noSub)
	assert.Error(t, err)
}

func TestProductionRefusesDevSecret(t *testing.T) {
	saved := config.AppConfig
	t.Cleanup(func() { config.AppConfig = saved })
	config.AppConfig.Env = "production"
	config.AppConfig.JWTSecret = ""

	_, err := GenerateToken("user-7", RoleAdmin, time.Hour)
	assert.ErrorIs(t, err, config.ErrMissingJWTSecret)

	devSigned, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "user-7"}).SignedString([]byte(devSecret))
	require.NoError(t, err)
	_, _, err = ExtractClaims(devSigned)
	assert.Error(t, err)

	config.AppConfig.JWTSecret = "prod-secret"
	token, err := GenerateToken("user-7", RoleAdmin, time.Hour)
	require.NoError(t, err)
	sub, _, err := ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "user-7", sub)
}

package auth

import (
	"testing"
	"time"

	"diary/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret-for-tests"
	cfg.SecretKey.Refresh = "refresh-secret-for-tests"

	return cfg
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	userID := uuid.New()
	accessToken, refreshToken, err := svc.GenerateTokens(userID)
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	accessClaims, err := svc.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)

	refreshClaims, err := svc.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
}

func TestJWTService_RejectsCrossTypeTokens(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	accessToken, refreshToken, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	// A refresh token must not pass access validation, and vice versa.
	_, err = svc.ValidateAccessToken(refreshToken)
	assert.Error(t, err)

	_, err = svc.ValidateRefreshToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	accessToken, _, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	tampered := accessToken[:len(accessToken)-2] + "xx"
	_, err = svc.ValidateAccessToken(tampered)
	assert.Error(t, err)
}

func TestJWTService_RejectsTokenSignedWithOtherSecret(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	otherCfg := newTestJWTConfig()
	otherCfg.SecretKey.Access = "a-different-access-secret"
	otherSvc, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	accessToken, _, err := otherSvc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_HashToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	hash := svc.HashToken("some-refresh-token")
	assert.Len(t, hash, 64) // sha256 hex digest
	assert.Equal(t, hash, svc.HashToken("some-refresh-token"))
	assert.NotEqual(t, hash, svc.HashToken("another-refresh-token"))
	assert.NotContains(t, hash, "some-refresh-token")
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	assert.Equal(t, time.Hour*24*7, svc.GetRefreshTokenDuration())
}

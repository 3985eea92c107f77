// AngelaMos | 2026
// jwt_test.go

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c-jay69/hydraseo/internal/config"
	"github.com/c-jay69/hydraseo/internal/core"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:      "0123456789abcdef0123456789abcdef",
		TokenExpire: time.Hour,
		Issuer:      "hydraseo",
		Audience:    "hydraseo-api",
	}
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	m, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	token, err := m.Issue(
		"2b33e8a4-1111-4222-8333-444455556666",
		"user@example.com",
		"pro",
		false,
	)
	require.NoError(t, err)

	claims, err := m.Verify(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, "2b33e8a4-1111-4222-8333-444455556666", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "pro", claims.Role)
	assert.False(t, claims.IsAdmin)
}

func TestVerifyAdminClaim(t *testing.T) {
	m, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	token, err := m.Issue(
		"7f4a9c10-aaaa-4bbb-8ccc-dddeeefff000",
		"admin@example.com",
		"admin",
		true,
	)
	require.NoError(t, err)

	claims, err := m.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)
}

func TestVerifyLegacyAdminSubject(t *testing.T) {
	m, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	// Older tokens carried sub == "admin" with no is_admin claim.
	token, err := m.Issue("admin", "admin@example.com", "admin", false)
	require.NoError(t, err)

	claims, err := m.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)
}

func TestVerifyExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	cfg.TokenExpire = -time.Minute

	m, err := NewTokenManager(cfg)
	require.NoError(t, err)

	token, err := m.Issue("user-1", "user@example.com", "free", false)
	require.NoError(t, err)

	_, err = m.Verify(context.Background(), token)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrTokenExpired)
}

func TestVerifyWrongKey(t *testing.T) {
	issuer, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	otherCfg := testJWTConfig()
	otherCfg.Secret = "ffffffffffffffffffffffffffffffff"
	verifier, err := NewTokenManager(otherCfg)
	require.NoError(t, err)

	token, err := issuer.Issue("user-1", "user@example.com", "free", false)
	require.NoError(t, err)

	_, err = verifier.Verify(context.Background(), token)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestVerifyGarbageToken(t *testing.T) {
	m, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	_, err = m.Verify(context.Background(), "not.a.token")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestVerifyWrongAudience(t *testing.T) {
	issuerCfg := testJWTConfig()
	issuerCfg.Audience = "some-other-api"

	issuer, err := NewTokenManager(issuerCfg)
	require.NoError(t, err)

	verifier, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	token, err := issuer.Issue("user-1", "user@example.com", "free", false)
	require.NoError(t, err)

	_, err = verifier.Verify(context.Background(), token)
	assert.Error(t, err)
}

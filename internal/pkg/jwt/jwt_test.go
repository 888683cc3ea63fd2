package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/access"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSessionToken_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "1h", false)
	caller := access.Caller{
		AccountID:   42,
		Email:       "staff@example.com",
		DisplayName: "Staff",
		Role:        access.RoleManager,
		Status:      access.StatusApproved,
	}

	token, expiresAt, err := svc.GenerateSessionToken(caller)
	require.NoError(t, err)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), expiresAt, 5)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "staff@example.com", claims["email"])
	assert.Equal(t, "Staff", claims["name"])
	assert.Equal(t, "manager", claims["role"])
	assert.Equal(t, "approved", claims["approval_status"])
	assert.Equal(t, TokenTypeSession, claims["type"])
}

func TestGenerateSessionToken_BadExpiration(t *testing.T) {
	svc := NewJWTService("secret", "forever", false)

	_, _, err := svc.GenerateSessionToken(access.Caller{Email: "a@example.com"})

	assert.Error(t, err)
}

func TestDecode_RejectsForeignSignature(t *testing.T) {
	issuer := NewJWTService("one-secret", "1h", false)
	verifier := NewJWTService("another-secret", "1h", false)

	token, _, err := issuer.GenerateSessionToken(access.Caller{Email: "a@example.com"})
	require.NoError(t, err)

	_, err = verifier.JWTAuth().Decode(token)
	assert.Error(t, err)
}

func TestSessionCookies(t *testing.T) {
	svc := NewJWTService("secret", "1h", true)

	set := svc.SessionCookie("tok", time.Now().Add(time.Hour).Unix())
	assert.Equal(t, SessionCookieName, set.Name)
	assert.True(t, set.HttpOnly)
	assert.True(t, set.Secure)

	cleared := svc.ClearSessionCookie()
	assert.Equal(t, SessionCookieName, cleared.Name)
	assert.Empty(t, cleared.Value)
	assert.Equal(t, -1, cleared.MaxAge)
}

func TestRevokeToken(t *testing.T) {
	svc := NewJWTService("secret", "1h", false)

	assert.False(t, svc.IsTokenRevoked("tok"))
	svc.RevokeToken("tok", time.Now().Add(time.Hour).Unix())
	assert.True(t, svc.IsTokenRevoked("tok"))

	svc.RevokeToken("old", time.Now().Add(-time.Minute).Unix())
	assert.True(t, svc.IsTokenRevoked("old"))
}

func TestPurgeRevoked(t *testing.T) {
	svc := NewJWTService("secret", "1h", false)
	now := time.Now()

	svc.RevokeToken("old", now.Add(-time.Minute).Unix())
	svc.RevokeToken("edge", now.Unix())
	svc.RevokeToken("live", now.Add(time.Hour).Unix())

	assert.Equal(t, 2, svc.PurgeRevoked(now))
	assert.False(t, svc.IsTokenRevoked("old"))
	assert.False(t, svc.IsTokenRevoked("edge"))
	assert.True(t, svc.IsTokenRevoked("live"))
	assert.Zero(t, svc.PurgeRevoked(now))
}

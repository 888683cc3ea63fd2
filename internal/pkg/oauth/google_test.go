package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newTestGoogle(t *testing.T, body string, status int) *GoogleServiceImpl {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	svc := NewGoogleService("client", "secret", "http://localhost/callback", []string{"email"}).(*GoogleServiceImpl)
	svc.userInfoURL = srv.URL
	return svc
}

func TestGenerateState_IsUniqueUUID(t *testing.T) {
	svc := NewGoogleService("client", "secret", "http://localhost/callback", nil)

	a, b := svc.GenerateState(), svc.GenerateState()

	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	assert.NoError(t, err)
}

func TestRedirectURL_CarriesState(t *testing.T) {
	svc := NewGoogleService("client", "secret", "http://localhost/callback", []string{"email", "profile"})

	raw := svc.RedirectURL("nonce-1")

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "nonce-1", u.Query().Get("state"))
	assert.Equal(t, "client", u.Query().Get("client_id"))
	assert.Equal(t, "email profile", u.Query().Get("scope"))
}

func TestVerifyUser(t *testing.T) {
	token := &oauth2.Token{AccessToken: "access-token", TokenType: "Bearer"}

	t.Run("verified email", func(t *testing.T) {
		svc := newTestGoogle(t, `{"id":"1","email":"staff@example.com","verified_email":true,"name":"Staff"}`, http.StatusOK)

		info, err := svc.VerifyUser(context.Background(), token)

		require.NoError(t, err)
		assert.Equal(t, "staff@example.com", info.Email)
		assert.Equal(t, "Staff", info.Name)
	})

	t.Run("unverified email", func(t *testing.T) {
		svc := newTestGoogle(t, `{"id":"1","email":"staff@example.com","verified_email":false}`, http.StatusOK)

		_, err := svc.VerifyUser(context.Background(), token)

		assert.Error(t, err)
	})

	t.Run("provider error", func(t *testing.T) {
		svc := newTestGoogle(t, `{}`, http.StatusUnauthorized)

		_, err := svc.VerifyUser(context.Background(), token)

		assert.Error(t, err)
	})
}

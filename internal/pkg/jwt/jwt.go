package jwt

import (
	"net/http"
	"sync"
	"time"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/access"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const (
	// SessionCookieName is the HttpOnly cookie carrying the session token.
	SessionCookieName = "jwt"

	TokenTypeSession = "session"
)

type Service interface {
	GenerateSessionToken(caller access.Caller) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	SessionCookie(token string, expiresAt int64) *http.Cookie
	ClearSessionCookie() *http.Cookie
	RevokeToken(token string, expiresAt int64)
	IsTokenRevoked(token string) bool
	// PurgeRevoked drops revocations whose token has expired and returns how many were dropped.
	PurgeRevoked(now time.Time) int
}

type JWTService struct {
	secretKey             string
	sessionExpirationTime string
	secureCookie          bool
	tokenAuth             *jwtauth.JWTAuth
	revokedTokens         map[string]int64
	mu                    sync.RWMutex
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, sessionExpirationTime string, secureCookie bool) Service {
	return &JWTService{
		secretKey:             secretKey,
		sessionExpirationTime: sessionExpirationTime,
		secureCookie:          secureCookie,
		tokenAuth:             jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:         make(map[string]int64),
	}
}

// GenerateSessionToken signs the caller's identity. Role and status are a
// snapshot; the gate re-reads them from the account store on every request.
func (j *JWTService) GenerateSessionToken(caller access.Caller) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.sessionExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"account_id":      caller.AccountID,
		"email":           caller.Email,
		"name":            caller.DisplayName,
		"role":            string(caller.Role),
		"approval_status": string(caller.Status),
		"type":            TokenTypeSession,
		"exp":             expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) SessionCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   j.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

func (j *JWTService) ClearSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   j.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

// RevokeToken blocks a token until it would have expired anyway.
func (j *JWTService) RevokeToken(token string, expiresAt int64) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[token] = expiresAt
}

func (j *JWTService) PurgeRevoked(now time.Time) int {
	j.mu.Lock()
	defer j.mu.Unlock()

	purged := 0
	for t, exp := range j.revokedTokens {
		if exp <= now.Unix() {
			delete(j.revokedTokens, t)
			purged++
		}
	}
	return purged
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}

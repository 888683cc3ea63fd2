package middleware

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/access"
	"github.com/cmlabs-hris/manager-portal-go/internal/handler/http/response"
	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

type callerKey struct{}

// CallerFromContext returns the caller resolved by Authenticate. A request
// without a valid session yields the zero Caller, which is unauthenticated.
func CallerFromContext(ctx context.Context) access.Caller {
	caller, _ := ctx.Value(callerKey{}).(access.Caller)
	return caller
}

// WithCaller stores caller in ctx.
func WithCaller(ctx context.Context, caller access.Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

// Authenticate turns the verified session token into an access.Caller.
// It never rejects a request on its own: a missing, expired, revoked or
// foreign token leaves the caller anonymous and the operation decides.
// Only a failing account store aborts the request.
func Authenticate(gate *access.Gate, tokens jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			claims, ok := sessionClaims(r, tokens)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			caller, err := gate.Resolve(r.Context(), claims)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
		}
		return http.HandlerFunc(hfn)
	}
}

func sessionClaims(r *http.Request, tokens jwt.Service) (access.Claims, bool) {
	token, claims, err := jwtauth.FromContext(r.Context())
	if err != nil || token == nil {
		return access.Claims{}, false
	}

	if tokenType, _ := claims["type"].(string); tokenType != jwt.TokenTypeSession {
		return access.Claims{}, false
	}

	if raw := jwtauth.TokenFromCookie(r); raw != "" && tokens.IsTokenRevoked(raw) {
		return access.Claims{}, false
	}
	if raw := jwtauth.TokenFromHeader(r); raw != "" && tokens.IsTokenRevoked(raw) {
		return access.Claims{}, false
	}

	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)
	status, _ := claims["approval_status"].(string)

	return access.Claims{Email: email, Name: name, Role: role, Status: status}, true
}

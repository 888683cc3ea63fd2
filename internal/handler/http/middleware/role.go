package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/access"
	"github.com/cmlabs-hris/manager-portal-go/internal/handler/http/response"
)

// RequireCaller rejects anonymous requests with 401 but lets pending callers through.
func RequireCaller(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if access.Classify(CallerFromContext(r.Context())) == access.ClassUnauthenticated {
			response.HandleError(w, access.ErrUnauthenticated)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole requires an approved caller holding at least role.
func RequireRole(role access.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := access.Authorize(CallerFromContext(r.Context()), role); err != nil {
				response.HandleError(w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/account"
	"github.com/cmlabs-hris/manager-portal-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/manager-portal-go/internal/handler/http/response"
	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/oauth"
	"github.com/go-chi/jwtauth/v5"
)

type AuthHandler interface {
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService     jwt.Service
	accountService account.AccountService
	googleService  oauth.GoogleService
	frontendURL    string
	secureCookies  bool
}

func NewAuthHandler(jwtService jwt.Service, accountService account.AccountService, googleService oauth.GoogleService, frontendURL string, secureCookies bool) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:     jwtService,
		accountService: accountService,
		googleService:  googleService,
		frontendURL:    frontendURL,
		secureCookies:  secureCookies,
	}
}

// LoginWithGoogle implements AuthHandler.
func (a *AuthHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	state := a.googleService.GenerateState()
	http.SetCookie(w, a.googleService.StateCookie(state, a.secureCookies))
	http.Redirect(w, r, a.googleService.RedirectURL(state), http.StatusTemporaryRedirect)
}

// OAuthCallbackGoogle implements AuthHandler.
func (a *AuthHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	// Helper function to redirect to frontend with error
	redirectWithError := func(errorMsg string) {
		redirectURL := fmt.Sprintf("%s/auth/callback?error=%s", a.frontendURL, url.QueryEscape(errorMsg))
		http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
	}

	stateReq, err := r.Cookie(oauth.StateCookieName)
	if err != nil || stateReq.Value == "" {
		slog.Error("State cookie not found", "error", err)
		redirectWithError("state_cookie_not_found")
		return
	}

	// The nonce is single use.
	expired := a.googleService.StateCookie("", a.secureCookies)
	expired.MaxAge = -1
	http.SetCookie(w, expired)

	if errorValue := r.URL.Query().Get("error"); errorValue != "" {
		slog.Error("Error in OAuth callback", "error", errorValue)
		redirectWithError(errorValue)
		return
	}

	stateParam := r.URL.Query().Get("state")
	if stateParam == "" || stateParam != stateReq.Value {
		slog.Error("State mismatch", "has_param", stateParam != "")
		redirectWithError("state_mismatch")
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		slog.Error("Code value is empty")
		redirectWithError("code_empty")
		return
	}

	token, err := a.googleService.VerifyToken(r.Context(), code)
	if err != nil {
		slog.Error("Failed to verify token", "error", err)
		redirectWithError("token_verification_failed")
		return
	}

	userGoogle, err := a.googleService.VerifyUser(r.Context(), token)
	if err != nil {
		slog.Error("Failed to verify user", "error", err)
		redirectWithError("user_verification_failed")
		return
	}

	var displayName *string
	if userGoogle.Name != "" {
		displayName = &userGoogle.Name
	}
	signedIn, err := a.accountService.SignIn(r.Context(), account.IdentityClaim{
		Email:       userGoogle.Email,
		DisplayName: displayName,
	})
	if err != nil {
		slog.Error("Failed to sign in with Google", "error", err)
		redirectWithError("login_failed")
		return
	}

	sessionToken, expiresAt, err := a.jwtService.GenerateSessionToken(signedIn.Caller())
	if err != nil {
		slog.Error("Failed to issue session token", "error", err)
		redirectWithError("login_failed")
		return
	}
	http.SetCookie(w, a.jwtService.SessionCookie(sessionToken, expiresAt))

	slog.Info("User signed in via Google OAuth", "account_id", signedIn.ID, "approval_status", signedIn.Status)

	redirectURL := fmt.Sprintf("%s/auth/callback?status=%s", a.frontendURL, url.QueryEscape(string(signedIn.Status)))
	http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
}

// Logout implements AuthHandler. It succeeds without a session too.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	raw := jwtauth.TokenFromCookie(r)
	if raw == "" {
		raw = jwtauth.TokenFromHeader(r)
	}
	if token, _, err := jwtauth.FromContext(r.Context()); err == nil && token != nil && raw != "" {
		a.jwtService.RevokeToken(raw, token.Expiration().Unix())
	}

	http.SetCookie(w, a.jwtService.ClearSessionCookie())
	response.SuccessWithMessage(w, "Signed out", nil)
}

// Me implements AuthHandler. Pending callers may call it to learn their status.
func (a *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerFromContext(r.Context())

	me, err := a.accountService.Me(r.Context(), caller)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, me)
}

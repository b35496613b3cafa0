package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/worktime/timetrack-backend-go/internal/domain/auth"
	"github.com/worktime/timetrack-backend-go/internal/domain/user"
	"github.com/worktime/timetrack-backend-go/internal/handler/http/response"
	"github.com/worktime/timetrack-backend-go/internal/pkg/oauth"
)

const (
	stateCookieName     = "state"
	googleCallbackPath  = "/api/v1/account/oauth/callback/google"
	frontendCallbackURI = "/auth/callback/google"
	oauthStateTTL       = 5 * time.Minute
)

type AccountHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
	LinkGoogle(w http.ResponseWriter, r *http.Request)
}

type AccountHandlerImpl struct {
	authService   auth.AuthService
	googleService oauth.GoogleService
	frontendURL   string
	pendingLinks  *pendingGoogleLinks
}

// Register implements AccountHandler.
func (a *AccountHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var registerReq auth.RegisterRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		slog.Error("Register decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	registerReq.Normalize()
	if err := registerReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Call service
	tokenResponse, err := a.authService.Register(r.Context(), registerReq)
	if err != nil {
		slog.Error("Register service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User registered successfully", tokenResponse)
}

// Login implements AccountHandler.
func (a *AccountHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := loginReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	tokenResponse, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Info("Login rejected", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User logged in successfully", tokenResponse)
}

// LoginWithGoogle implements AccountHandler.
func (a *AccountHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	if a.googleService == nil {
		response.HandleError(w, auth.ErrOAuthDisabled)
		return
	}

	state, err := a.googleService.GenerateState()
	if err != nil {
		response.HandleError(w, err)
		return
	}

	setStateCookie(w, r, state)
	http.Redirect(w, r, a.googleService.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

// LinkGoogle implements AccountHandler. The caller must be authenticated; the returned
// consent URL finishes at the shared callback, which links instead of logging in.
func (a *AccountHandlerImpl) LinkGoogle(w http.ResponseWriter, r *http.Request) {
	if a.googleService == nil {
		response.HandleError(w, auth.ErrOAuthDisabled)
		return
	}

	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	state, err := a.googleService.GenerateState()
	if err != nil {
		response.HandleError(w, err)
		return
	}

	a.pendingLinks.add(state, identity.UserID)
	setStateCookie(w, r, state)
	response.Success(w, auth.GoogleLinkResponse{URL: a.googleService.AuthCodeURL(state)})
}

func setStateCookie(w http.ResponseWriter, r *http.Request, state string) {
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     googleCallbackPath,
		Expires:  time.Now().Add(oauthStateTTL),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

// OAuthCallbackGoogle implements AccountHandler.
func (a *AccountHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	if a.googleService == nil {
		response.HandleError(w, auth.ErrOAuthDisabled)
		return
	}

	// Helper function to redirect to frontend with error
	redirectWithError := func(errorMsg string) {
		redirectURL := fmt.Sprintf("%s%s?error=%s", a.frontendURL, frontendCallbackURI, url.QueryEscape(errorMsg))
		http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
	}

	stateReq, err := r.Cookie(stateCookieName)
	if err != nil {
		slog.Error("State cookie not found", "error", err)
		redirectWithError("state_cookie_not_found")
		return
	}

	// The state is single use
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    "",
		Path:     googleCallbackPath,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
	})

	errorValue := r.URL.Query().Get("error")
	if errorValue == "access_denied" {
		slog.Error("Google access denied by user", "error", auth.ErrGoogleAccessDeniedByUser)
		redirectWithError("access_denied")
		return
	}
	if errorValue != "" {
		slog.Error("Error in OAuth callback", "error", errorValue)
		redirectWithError(errorValue)
		return
	}

	if stateReq.Value == "" {
		slog.Error("State cookie is empty", "error", auth.ErrStateCookieEmpty)
		redirectWithError("state_cookie_empty")
		return
	}

	stateParam := r.URL.Query().Get("state")
	if stateParam == "" {
		slog.Error("State parameter is empty", "error", auth.ErrStateParamEmpty)
		redirectWithError("state_param_empty")
		return
	}

	if stateParam != stateReq.Value {
		slog.Error("State mismatch", "error", auth.ErrStateMismatch)
		redirectWithError("state_mismatch")
		return
	}

	// A state issued by LinkGoogle turns this callback into a link for that user
	userID, linking := a.pendingLinks.take(stateParam)

	code := r.URL.Query().Get("code")
	if code == "" {
		slog.Error("Code value is empty", "error", auth.ErrCodeValueEmpty)
		redirectWithError("code_empty")
		return
	}

	token, err := a.googleService.Exchange(r.Context(), code)
	if err != nil {
		slog.Error("Failed to exchange code", "error", err)
		redirectWithError("token_verification_failed")
		return
	}

	profile, err := a.googleService.FetchProfile(r.Context(), token)
	if err != nil || profile.GoogleID == "" {
		slog.Error("Failed to fetch Google profile", "error", err)
		redirectWithError("user_verification_failed")
		return
	}

	if linking {
		err := a.authService.LinkGoogle(r.Context(), user.Identity{UserID: userID}, profile.GoogleID)
		if err != nil {
			slog.Error("Failed to link Google account", "error", err)
			if errors.Is(err, user.ErrGoogleAccountInUse) {
				redirectWithError("google_account_in_use")
				return
			}
			redirectWithError("link_failed")
			return
		}

		http.Redirect(w, r, fmt.Sprintf("%s%s?linked=true", a.frontendURL, frontendCallbackURI), http.StatusTemporaryRedirect)
		return
	}

	tokenResponse, err := a.authService.LoginWithGoogle(r.Context(), profile.GoogleID)
	if err != nil {
		slog.Error("Failed to login with Google", "error", err)
		if errors.Is(err, auth.ErrGoogleAccountNotLinked) {
			redirectWithError("account_not_linked")
			return
		}
		redirectWithError("login_failed")
		return
	}

	slog.Info("User logged in via Google OAuth")

	// Redirect to frontend with access token
	redirectURL := fmt.Sprintf("%s%s?token=%s&expires_at=%d",
		a.frontendURL,
		frontendCallbackURI,
		url.QueryEscape(tokenResponse.AccessToken),
		tokenResponse.AccessTokenExpiresAt,
	)
	http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
}

// NewAccountHandler wires registration and login. googleService may be nil when Google login is not configured.
func NewAccountHandler(authService auth.AuthService, googleService oauth.GoogleService, frontendURL string) AccountHandler {
	return &AccountHandlerImpl{
		authService:   authService,
		googleService: googleService,
		frontendURL:   frontendURL,
		pendingLinks:  newPendingGoogleLinks(oauthStateTTL),
	}
}

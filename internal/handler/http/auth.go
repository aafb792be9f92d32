package http

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/massimocristi1970/hr-dashboard/internal/domain/auth"
	"github.com/massimocristi1970/hr-dashboard/internal/domain/employee"
	"github.com/massimocristi1970/hr-dashboard/internal/handler/http/middleware"
	"github.com/massimocristi1970/hr-dashboard/internal/handler/http/response"
	authservice "github.com/massimocristi1970/hr-dashboard/internal/service/auth"
	employeeservice "github.com/massimocristi1970/hr-dashboard/internal/service/employee"
)

type AuthHandler interface {
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService     *authservice.Service
	employeeService *employeeservice.Service
	frontendURL     string
}

func NewAuthHandler(authService *authservice.Service, employeeService *employeeservice.Service, frontendURL string) AuthHandler {
	return &AuthHandlerImpl{
		authService:     authService,
		employeeService: employeeService,
		frontendURL:     frontendURL,
	}
}

// LoginWithGoogle implements AuthHandler.
func (a *AuthHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	state, redirectURL := a.authService.BeginLogin()

	http.SetCookie(w, &http.Cookie{
		Name:     "state",
		Value:    state,
		Path:     "/",
		MaxAge:   600,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
}

// OAuthCallbackGoogle implements AuthHandler.
func (a *AuthHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	redirectWithError := func(code string) {
		http.Redirect(w, r, a.frontendURL+"/login?error="+url.QueryEscape(code), http.StatusTemporaryRedirect)
	}

	if errorValue := r.URL.Query().Get("error"); errorValue != "" {
		slog.Error("Error in OAuth callback", "error", errorValue)
		redirectWithError("oauth_denied")
		return
	}

	stateCookie, err := r.Cookie("state")
	if err != nil || stateCookie.Value == "" {
		slog.Error("State cookie missing", "error", auth.ErrInvalidState)
		redirectWithError("state_missing")
		return
	}
	if r.URL.Query().Get("state") != stateCookie.Value {
		slog.Error("State mismatch", "error", auth.ErrInvalidState)
		redirectWithError("state_mismatch")
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		redirectWithError("code_missing")
		return
	}

	session, err := a.authService.CompleteLogin(r.Context(), code)
	if err != nil {
		slog.Error("Google login failed", "error", err)
		switch {
		case errors.Is(err, auth.ErrEmailNotVerified):
			redirectWithError("email_not_verified")
		case errors.Is(err, auth.ErrUnknownUser):
			redirectWithError("unknown_user")
		default:
			redirectWithError("login_failed")
		}
		return
	}

	slog.Info("User logged in via Google", "email", session.Email)
	http.Redirect(w, r, a.frontendURL+"/auth/callback#token="+url.QueryEscape(session.AccessToken), http.StatusTemporaryRedirect)
}

type MeResponse struct {
	Email    string                     `json:"email"`
	IsAdmin  bool                       `json:"is_admin"`
	Employee *employee.EmployeeResponse `json:"employee,omitempty"`
}

// Me implements AuthHandler. Admins without a roster entry get a
// profile-less identity.
func (a *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrUnauthorized)
		return
	}

	me := MeResponse{Email: actor.Email, IsAdmin: actor.IsAdmin}

	emp, err := a.employeeService.GetByEmail(r.Context(), actor.Email)
	switch {
	case err == nil:
		resp := employee.NewEmployeeResponse(emp)
		me.Employee = &resp
	case errors.Is(err, employee.ErrEmployeeNotFound):
		if !actor.IsAdmin {
			response.HandleError(w, auth.ErrUnknownUser)
			return
		}
	default:
		response.HandleError(w, err)
		return
	}

	response.Success(w, me)
}

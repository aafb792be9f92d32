package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/massimocristi1970/hr-dashboard/internal/domain/auth"
	"github.com/massimocristi1970/hr-dashboard/internal/domain/employee"
	"github.com/massimocristi1970/hr-dashboard/internal/pkg/jwt"
	"github.com/massimocristi1970/hr-dashboard/internal/pkg/oauth"
)

// Session is the signed-in identity handed back after a successful
// Google callback.
type Session struct {
	Email       string
	IsAdmin     bool
	AccessToken string
	ExpiresAt   int64
}

// Service runs the Google sign-in flow. Anyone with a verified Google
// account can attempt login, but only roster employees and configured
// admins get a session.
type Service struct {
	googleService      oauth.GoogleService
	jwtService         jwt.Service
	employeeRepository employee.EmployeeRepository
	admins             auth.AdminSet
}

func NewService(
	googleService oauth.GoogleService,
	jwtService jwt.Service,
	employeeRepository employee.EmployeeRepository,
	admins auth.AdminSet,
) *Service {
	return &Service{
		googleService:      googleService,
		jwtService:         jwtService,
		employeeRepository: employeeRepository,
		admins:             admins,
	}
}

// BeginLogin returns a fresh state and the Google consent URL bound to
// it. The caller must persist the state (cookie) and check it on the
// callback.
func (s *Service) BeginLogin() (state, redirectURL string) {
	state = s.googleService.GenerateState()
	return state, s.googleService.RedirectURL(state)
}

// CompleteLogin exchanges the callback code, verifies the Google
// account and issues an access token. Unverified emails and emails
// that are neither on the roster nor in the admin list are rejected.
func (s *Service) CompleteLogin(ctx context.Context, code string) (Session, error) {
	token, err := s.googleService.Exchange(ctx, code)
	if err != nil {
		return Session{}, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	user, err := s.googleService.FetchUser(ctx, token)
	if err != nil {
		return Session{}, fmt.Errorf("failed to fetch google user: %w", err)
	}

	if !user.VerifiedEmail {
		return Session{}, auth.ErrEmailNotVerified
	}

	email := strings.ToLower(strings.TrimSpace(user.Email))
	isAdmin := s.admins.Contains(email)

	if _, err := s.employeeRepository.GetByEmail(ctx, email); err != nil {
		if !errors.Is(err, employee.ErrEmployeeNotFound) {
			return Session{}, fmt.Errorf("failed to look up employee: %w", err)
		}
		if !isAdmin {
			return Session{}, auth.ErrUnknownUser
		}
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(email)
	if err != nil {
		return Session{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return Session{
		Email:       email,
		IsAdmin:     isAdmin,
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}, nil
}

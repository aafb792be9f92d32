package auth

import "errors"

var (
	ErrUnauthorized     = errors.New("authentication required")
	ErrForbidden        = errors.New("not authorized to perform this action")
	ErrAdminRequired    = errors.New("admin privilege required")
	ErrEmailNotVerified = errors.New("google account email is not verified")
	ErrUnknownUser      = errors.New("no employee or admin record for this email")
	ErrInvalidState     = errors.New("oauth state mismatch")
)

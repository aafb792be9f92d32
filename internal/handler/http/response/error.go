package response

import (
	"errors"
	"net/http"

	"github.com/massimocristi1970/hr-dashboard/internal/domain/agentfile"
	"github.com/massimocristi1970/hr-dashboard/internal/domain/auth"
	"github.com/massimocristi1970/hr-dashboard/internal/domain/employee"
	"github.com/massimocristi1970/hr-dashboard/internal/domain/leave"
	"github.com/massimocristi1970/hr-dashboard/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Approval across blocked days carries the offending dates so the
	// frontend can render them.
	var blockedErr *leave.BlockedDaysError
	if errors.As(err, &blockedErr) {
		details := make(map[string]string, len(blockedErr.Days))
		for _, d := range blockedErr.Days {
			details[d.Date.Format("2006-01-02")] = d.Reason
		}
		Conflict(w, "Request includes blocked days", details)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrUnauthorized):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, auth.ErrInvalidState):
		Unauthorized(w, "Invalid OAuth state")
	case errors.Is(err, auth.ErrEmailNotVerified):
		Forbidden(w, "Email not verified")
	case errors.Is(err, auth.ErrUnknownUser):
		Forbidden(w, "Not a registered employee")
	case errors.Is(err, auth.ErrAdminRequired):
		Forbidden(w, "Admin access required")
	case errors.Is(err, auth.ErrForbidden):
		Forbidden(w, "Not allowed")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrEntitlementNotFound):
		NotFound(w, "Entitlement not found")
	case errors.Is(err, leave.ErrBlockedDayNotFound):
		NotFound(w, "Blocked day not found")
	case errors.Is(err, leave.ErrBlockedDayExists):
		Conflict(w, "Date is already blocked", nil)
	case errors.Is(err, leave.ErrInvalidTransition):
		Conflict(w, "Request is not in a state that allows this action", nil)

	// File domain errors
	case errors.Is(err, agentfile.ErrFileNotFound):
		NotFound(w, "File not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

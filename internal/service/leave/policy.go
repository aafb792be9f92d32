package leave

import (
	"strings"

	"github.com/massimocristi1970/hr-dashboard/internal/domain/auth"
	"github.com/massimocristi1970/hr-dashboard/internal/domain/employee"
)

// canDecide reports whether the actor may approve or decline a request
// owned by the given employee: the employee's manager of record (exact
// email match, case-insensitive) or an HR admin.
func canDecide(actor auth.Actor, owner employee.Employee) bool {
	if actor.IsAdmin {
		return true
	}
	return owner.ManagerEmail != nil && strings.EqualFold(*owner.ManagerEmail, actor.Email)
}

// canCancel reports whether the actor may cancel a request owned by
// the given employee: the employee themselves or an HR admin. Whether
// the request's state admits cancellation is checked separately.
func canCancel(actor auth.Actor, owner employee.Employee) bool {
	if actor.IsAdmin {
		return true
	}
	return strings.EqualFold(owner.Email, actor.Email)
}

// canViewWarnings reports whether the actor may read the conflict and
// blocked-day annotations for a request: owner, manager of record, or
// admin.
func canViewWarnings(actor auth.Actor, owner employee.Employee) bool {
	return canDecide(actor, owner) || strings.EqualFold(owner.Email, actor.Email)
}

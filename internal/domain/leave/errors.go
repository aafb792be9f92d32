package leave

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrEntitlementNotFound  = errors.New("leave entitlement not found")
	ErrBlockedDayNotFound   = errors.New("blocked day not found")
	ErrBlockedDayExists     = errors.New("date is already blocked")
	ErrInvalidTransition    = errors.New("leave request status does not allow this action")
)

// BlockedDaysError rejects an approval whose range includes blocked
// days without a valid admin override. It carries the offending days
// so callers can render the dates and reasons.
type BlockedDaysError struct {
	Days []BlockedDay
}

func (e *BlockedDaysError) Error() string {
	parts := make([]string, len(e.Days))
	for i, d := range e.Days {
		parts[i] = fmt.Sprintf("%s (%s)", d.Date.Format("2006-01-02"), d.Reason)
	}
	return "request includes blocked days: " + strings.Join(parts, ", ")
}

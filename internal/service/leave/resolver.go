package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/massimocristi1970/hr-dashboard/internal/domain/auth"
	"github.com/massimocristi1970/hr-dashboard/internal/domain/leave"
)

// Warnings holds the annotations for one request: conflicts are
// informational, blocked days block approval unless an admin
// overrides.
type Warnings struct {
	Conflicts   []leave.RequestWithEmployee
	BlockedDays []leave.BlockedDay
}

// RequestWarnings resolves warnings for a single request, for the
// owner, the manager of record, or an admin.
func (s *Service) RequestWarnings(ctx context.Context, actor auth.Actor, requestID string) (Warnings, error) {
	request, owner, err := s.requestWithOwner(ctx, requestID)
	if err != nil {
		return Warnings{}, err
	}

	if !canViewWarnings(actor, owner) {
		return Warnings{}, auth.ErrForbidden
	}

	conflicts, blocked, err := s.resolveWarnings(ctx, request.ID, request.StartDate, request.EndDate)
	if err != nil {
		return Warnings{}, err
	}

	return Warnings{Conflicts: conflicts, BlockedDays: blocked}, nil
}

// resolveWarnings computes, side-effect free, the approved requests of
// other employees overlapping [start, end] and the blocked days inside
// it. It runs against current data on every call; approval never
// trusts a warning set computed for an earlier render.
func (s *Service) resolveWarnings(ctx context.Context, requestID string, start, end time.Time) ([]leave.RequestWithEmployee, []leave.BlockedDay, error) {
	conflicts, err := s.LeaveRequestRepository.ListApprovedOverlapping(ctx, start, end, requestID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve conflicts: %w", err)
	}

	blocked, err := s.BlockedDayRepository.ListInRange(ctx, start, end)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve blocked days: %w", err)
	}

	return conflicts, blocked, nil
}

package leave

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/massimocristi1970/hr-dashboard/internal/domain/auth"
	"github.com/massimocristi1970/hr-dashboard/internal/domain/leave"
)

// BlockedDays lists every blocked day, soonest first.
func (s *Service) BlockedDays(ctx context.Context) ([]leave.BlockedDay, error) {
	return s.BlockedDayRepository.List(ctx)
}

// AddBlockedDay blocks a single date company-wide. Duplicate dates are
// rejected with ErrBlockedDayExists.
func (s *Service) AddBlockedDay(ctx context.Context, actor auth.Actor, req leave.AddBlockedDayRequest) (leave.BlockedDay, error) {
	day := leave.BlockedDay{
		ID:        uuid.NewString(),
		Date:      req.Date(),
		Reason:    req.Reason,
		CreatedBy: actor.Email,
	}

	created, err := s.BlockedDayRepository.Create(ctx, day)
	if err != nil {
		return leave.BlockedDay{}, err
	}

	return created, nil
}

// RemoveBlockedDay deletes a blocked date unconditionally; it only
// affects future warning computations.
func (s *Service) RemoveBlockedDay(ctx context.Context, id string) error {
	if err := s.BlockedDayRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete blocked day: %w", err)
	}
	return nil
}

package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/massimocristi1970/hr-dashboard/internal/domain/leave"
)

// SetEntitlement creates or replaces the (employee, year) allowance
// row. At most one entitlement exists per employee and year.
func (s *Service) SetEntitlement(ctx context.Context, req leave.SetEntitlementRequest) (leave.LeaveEntitlement, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveEntitlement{}, err
	}

	entitlement := leave.LeaveEntitlement{
		ID:                  uuid.NewString(),
		EmployeeID:          req.EmployeeID,
		Year:                req.Year,
		AnnualAllowanceDays: req.AnnualAllowanceDays,
		CarryoverDays:       req.CarryoverDays,
	}

	saved, err := s.LeaveEntitlementRepository.Upsert(ctx, entitlement)
	if err != nil {
		return leave.LeaveEntitlement{}, fmt.Errorf("failed to upsert entitlement: %w", err)
	}

	return saved, nil
}

// EntitlementSummary computes each employee's balance for the target
// year (current year when zero). Employees without an entitlement row
// report zero allowance with entitlement_set=false. Taken days are the
// sum of approved requests starting in that year; remaining may go
// negative and is reported as is.
func (s *Service) EntitlementSummary(ctx context.Context, year int) ([]leave.EntitlementSummary, error) {
	if year == 0 {
		year = time.Now().UTC().Year()
	}

	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	summaries := make([]leave.EntitlementSummary, 0, len(employees))
	for _, emp := range employees {
		summary := leave.EntitlementSummary{
			EmployeeID: emp.ID,
			Email:      emp.Email,
			FullName:   emp.FullName,
			Year:       year,
		}

		entitlement, err := s.LeaveEntitlementRepository.GetByEmployeeAndYear(ctx, emp.ID, year)
		switch {
		case err == nil:
			summary.EntitlementSet = true
			summary.AnnualAllowanceDays = entitlement.AnnualAllowanceDays
			summary.CarryoverDays = entitlement.CarryoverDays
		case errors.Is(err, leave.ErrEntitlementNotFound):
			// Implicit zero allowance.
		default:
			return nil, fmt.Errorf("failed to load entitlement: %w", err)
		}

		taken, err := s.LeaveRequestRepository.SumApprovedDays(ctx, emp.ID, year)
		if err != nil {
			return nil, fmt.Errorf("failed to sum approved days: %w", err)
		}

		summary.TakenDays = taken
		summary.TotalAllowance = summary.AnnualAllowanceDays + summary.CarryoverDays
		summary.RemainingDays = summary.TotalAllowance - taken

		summaries = append(summaries, summary)
	}

	return summaries, nil
}

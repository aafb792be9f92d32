package leave

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/massimocristi1970/hr-dashboard/internal/domain/auth"
	"github.com/massimocristi1970/hr-dashboard/internal/domain/employee"
	"github.com/massimocristi1970/hr-dashboard/internal/domain/leave"
	"github.com/massimocristi1970/hr-dashboard/internal/pkg/dateutil"
)

// Service carries the leave workflow: submission, the approval state
// machine, warning resolution, blocked days and entitlement summaries.
// Every state-changing method reads and writes a single request row;
// there are no multi-record transactions.
type Service struct {
	leave.LeaveRequestRepository
	leave.BlockedDayRepository
	leave.LeaveEntitlementRepository
	employee.EmployeeRepository
}

func NewService(
	requestRepository leave.LeaveRequestRepository,
	blockedDayRepository leave.BlockedDayRepository,
	entitlementRepository leave.LeaveEntitlementRepository,
	employeeRepository employee.EmployeeRepository,
) *Service {
	return &Service{
		LeaveRequestRepository:     requestRepository,
		BlockedDayRepository:       blockedDayRepository,
		LeaveEntitlementRepository: entitlementRepository,
		EmployeeRepository:         employeeRepository,
	}
}

// Submit creates a pending request for the actor's own employee
// record. The stored day quantity is always recomputed here from the
// raw dates and flags.
func (s *Service) Submit(ctx context.Context, actor auth.Actor, req leave.SubmitLeaveRequestRequest) (leave.LeaveRequest, error) {
	emp, err := s.EmployeeRepository.GetByEmail(ctx, actor.Email)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	start, end := req.Dates()

	request := leave.LeaveRequest{
		ID:            uuid.NewString(),
		EmployeeID:    emp.ID,
		StartDate:     start,
		EndDate:       end,
		StartHalfDay:  leave.HalfDay(req.StartHalfDay),
		EndHalfDay:    leave.HalfDay(req.EndHalfDay),
		DaysRequested: CalculateDays(start, end, leave.HalfDay(req.StartHalfDay), leave.HalfDay(req.EndHalfDay)),
		Reason:        req.Reason,
		Status:        leave.LeaveRequestStatusPending,
	}

	created, err := s.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}

// MyRequests lists the actor's own requests, newest first.
func (s *Service) MyRequests(ctx context.Context, actor auth.Actor) ([]leave.LeaveRequest, error) {
	emp, err := s.EmployeeRepository.GetByEmail(ctx, actor.Email)
	if err != nil {
		return nil, err
	}
	return s.LeaveRequestRepository.ListByEmployee(ctx, emp.ID)
}

// PendingForManager returns the actor's approval queue, each item
// annotated with freshly resolved conflicts and blocked days. Nothing
// here is cached: the warnings shown are recomputed on every read.
func (s *Service) PendingForManager(ctx context.Context, actor auth.Actor) ([]leave.PendingRequest, error) {
	pending, err := s.LeaveRequestRepository.ListPendingForManager(ctx, actor.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}

	queue := make([]leave.PendingRequest, 0, len(pending))
	for _, r := range pending {
		conflicts, blocked, err := s.resolveWarnings(ctx, r.ID, r.StartDate, r.EndDate)
		if err != nil {
			return nil, err
		}
		queue = append(queue, leave.PendingRequest{
			RequestWithEmployee: r,
			Conflicts:           conflicts,
			BlockedDays:         blocked,
		})
	}

	return queue, nil
}

// Approve moves a pending request to approved. Blocked days are
// re-checked here regardless of what any earlier listing showed; an
// admin may pass adminOverride to approve across them, a manager may
// not. Conflicts with other approved leave never block.
func (s *Service) Approve(ctx context.Context, actor auth.Actor, requestID, notes string, adminOverride bool) (leave.LeaveRequest, error) {
	request, owner, err := s.requestWithOwner(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	if !canDecide(actor, owner) {
		return leave.LeaveRequest{}, auth.ErrForbidden
	}

	if request.Status != leave.LeaveRequestStatusPending {
		return leave.LeaveRequest{}, leave.ErrInvalidTransition
	}

	blocked, err := s.BlockedDayRepository.ListInRange(ctx, request.StartDate, request.EndDate)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to check blocked days: %w", err)
	}
	if len(blocked) > 0 && !(actor.IsAdmin && adminOverride) {
		return leave.LeaveRequest{}, &leave.BlockedDaysError{Days: blocked}
	}

	if err := s.LeaveRequestRepository.UpdateStatus(ctx, requestID, leave.LeaveRequestStatusApproved, notes); err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	return s.LeaveRequestRepository.GetByID(ctx, requestID)
}

// Decline moves a pending request to declined. Same authorization as
// Approve; blocked days are irrelevant to a decline.
func (s *Service) Decline(ctx context.Context, actor auth.Actor, requestID, notes string) (leave.LeaveRequest, error) {
	request, owner, err := s.requestWithOwner(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	if !canDecide(actor, owner) {
		return leave.LeaveRequest{}, auth.ErrForbidden
	}

	if request.Status != leave.LeaveRequestStatusPending {
		return leave.LeaveRequest{}, leave.ErrInvalidTransition
	}

	if err := s.LeaveRequestRepository.UpdateStatus(ctx, requestID, leave.LeaveRequestStatusDeclined, notes); err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	return s.LeaveRequestRepository.GetByID(ctx, requestID)
}

// Cancel is available to the request's owner or an admin, for pending
// requests at any time and for any request once its end date has
// passed. An approved future request cannot be self-cancelled.
func (s *Service) Cancel(ctx context.Context, actor auth.Actor, requestID string) (leave.LeaveRequest, error) {
	request, owner, err := s.requestWithOwner(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	if !canCancel(actor, owner) {
		return leave.LeaveRequest{}, auth.ErrForbidden
	}

	if request.Status != leave.LeaveRequestStatusPending && !request.EndDate.Before(dateutil.Today()) {
		return leave.LeaveRequest{}, leave.ErrInvalidTransition
	}

	if err := s.LeaveRequestRepository.UpdateStatus(ctx, requestID, leave.LeaveRequestStatusCancelled, request.ManagerNotes); err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	return s.LeaveRequestRepository.GetByID(ctx, requestID)
}

// AllRequests is the admin view of every request with employee info.
func (s *Service) AllRequests(ctx context.Context) ([]leave.RequestWithEmployee, error) {
	return s.LeaveRequestRepository.ListAll(ctx)
}

func (s *Service) requestWithOwner(ctx context.Context, requestID string) (leave.LeaveRequest, employee.Employee, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, employee.Employee{}, err
	}

	owner, err := s.EmployeeRepository.GetByID(ctx, request.EmployeeID)
	if err != nil {
		return leave.LeaveRequest{}, employee.Employee{}, fmt.Errorf("failed to load request owner: %w", err)
	}

	return request, owner, nil
}

package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository - interface for the leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	ListPendingForManager(ctx context.Context, managerEmail string) ([]RequestWithEmployee, error)
	ListAll(ctx context.Context) ([]RequestWithEmployee, error)
	// ListApprovedOverlapping returns approved requests whose range
	// overlaps [start, end], excluding the request with excludeID.
	ListApprovedOverlapping(ctx context.Context, start, end time.Time, excludeID string) ([]RequestWithEmployee, error)
	// SumApprovedDays sums days_requested over the employee's approved
	// requests whose start date falls in the given year.
	SumApprovedDays(ctx context.Context, employeeID string, year int) (float64, error)
	UpdateStatus(ctx context.Context, id string, status LeaveRequestStatus, notes string) error
}

// BlockedDayRepository - interface for the blocked_days table
type BlockedDayRepository interface {
	List(ctx context.Context) ([]BlockedDay, error)
	ListInRange(ctx context.Context, start, end time.Time) ([]BlockedDay, error)
	// Create fails with ErrBlockedDayExists when the date is already
	// blocked.
	Create(ctx context.Context, day BlockedDay) (BlockedDay, error)
	Delete(ctx context.Context, id string) error
}

// LeaveEntitlementRepository - interface for the leave_entitlements table
type LeaveEntitlementRepository interface {
	GetByEmployeeAndYear(ctx context.Context, employeeID string, year int) (LeaveEntitlement, error)
	Upsert(ctx context.Context, entitlement LeaveEntitlement) (LeaveEntitlement, error)
}

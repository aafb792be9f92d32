package leave

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/massimocristi1970/hr-dashboard/internal/domain/employee"
	"github.com/massimocristi1970/hr-dashboard/internal/domain/leave"
	"github.com/massimocristi1970/hr-dashboard/internal/pkg/dateutil"
)

// In-memory repositories backing the service tests. They mirror the
// postgresql implementations' observable behavior, including the
// sentinel errors.

type fakeEmployeeRepository struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepository) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepository) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	for _, e := range f.employees {
		if strings.EqualFold(e.Email, email) {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepository) List(_ context.Context) ([]employee.Employee, error) {
	return append([]employee.Employee(nil), f.employees...), nil
}

func (f *fakeEmployeeRepository) Upsert(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	for i, e := range f.employees {
		if strings.EqualFold(e.Email, emp.Email) {
			emp.ID = e.ID
			emp.CreatedAt = e.CreatedAt
			f.employees[i] = emp
			return emp, nil
		}
	}
	emp.CreatedAt = time.Now().UTC()
	f.employees = append(f.employees, emp)
	return emp, nil
}

type fakeLeaveRequestRepository struct {
	employees *fakeEmployeeRepository
	requests  []leave.LeaveRequest
}

func (f *fakeLeaveRequestRepository) Create(_ context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	now := time.Now().UTC()
	request.CreatedAt = now
	request.UpdatedAt = now
	f.requests = append(f.requests, request)
	return request, nil
}

func (f *fakeLeaveRequestRepository) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	for _, r := range f.requests {
		if r.ID == id {
			return r, nil
		}
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRequestRepository) ListByEmployee(_ context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, r := range f.requests {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeLeaveRequestRepository) ListPendingForManager(ctx context.Context, managerEmail string) ([]leave.RequestWithEmployee, error) {
	var out []leave.RequestWithEmployee
	for _, r := range f.requests {
		if r.Status != leave.LeaveRequestStatusPending {
			continue
		}
		joined, err := f.withEmployee(ctx, r)
		if err != nil {
			return nil, err
		}
		if joined.ManagerEmail != nil && strings.EqualFold(*joined.ManagerEmail, managerEmail) {
			out = append(out, joined)
		}
	}
	return out, nil
}

func (f *fakeLeaveRequestRepository) ListAll(ctx context.Context) ([]leave.RequestWithEmployee, error) {
	var out []leave.RequestWithEmployee
	for _, r := range f.requests {
		joined, err := f.withEmployee(ctx, r)
		if err != nil {
			return nil, err
		}
		out = append(out, joined)
	}
	return out, nil
}

func (f *fakeLeaveRequestRepository) ListApprovedOverlapping(ctx context.Context, start, end time.Time, excludeID string) ([]leave.RequestWithEmployee, error) {
	var out []leave.RequestWithEmployee
	for _, r := range f.requests {
		if r.ID == excludeID || r.Status != leave.LeaveRequestStatusApproved {
			continue
		}
		if !dateutil.RangesOverlap(r.StartDate, r.EndDate, start, end) {
			continue
		}
		joined, err := f.withEmployee(ctx, r)
		if err != nil {
			return nil, err
		}
		out = append(out, joined)
	}
	return out, nil
}

func (f *fakeLeaveRequestRepository) SumApprovedDays(_ context.Context, employeeID string, year int) (float64, error) {
	var sum float64
	for _, r := range f.requests {
		if r.EmployeeID == employeeID && r.Status == leave.LeaveRequestStatusApproved && r.StartDate.Year() == year {
			sum += r.DaysRequested
		}
	}
	return sum, nil
}

func (f *fakeLeaveRequestRepository) UpdateStatus(_ context.Context, id string, status leave.LeaveRequestStatus, notes string) error {
	for i, r := range f.requests {
		if r.ID == id {
			r.Status = status
			r.ManagerNotes = notes
			r.UpdatedAt = time.Now().UTC()
			f.requests[i] = r
			return nil
		}
	}
	return leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRequestRepository) withEmployee(ctx context.Context, r leave.LeaveRequest) (leave.RequestWithEmployee, error) {
	owner, err := f.employees.GetByID(ctx, r.EmployeeID)
	if err != nil {
		return leave.RequestWithEmployee{}, err
	}
	return leave.RequestWithEmployee{
		LeaveRequest: r,
		Email:        owner.Email,
		FullName:     owner.FullName,
		ManagerEmail: owner.ManagerEmail,
	}, nil
}

type fakeBlockedDayRepository struct {
	days []leave.BlockedDay
}

func (f *fakeBlockedDayRepository) List(_ context.Context) ([]leave.BlockedDay, error) {
	return append([]leave.BlockedDay(nil), f.days...), nil
}

func (f *fakeBlockedDayRepository) ListInRange(_ context.Context, start, end time.Time) ([]leave.BlockedDay, error) {
	var out []leave.BlockedDay
	for _, d := range f.days {
		if !d.Date.Before(start) && !d.Date.After(end) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeBlockedDayRepository) Create(_ context.Context, day leave.BlockedDay) (leave.BlockedDay, error) {
	for _, d := range f.days {
		if d.Date.Equal(day.Date) {
			return leave.BlockedDay{}, leave.ErrBlockedDayExists
		}
	}
	day.CreatedAt = time.Now().UTC()
	f.days = append(f.days, day)
	return day, nil
}

func (f *fakeBlockedDayRepository) Delete(_ context.Context, id string) error {
	for i, d := range f.days {
		if d.ID == id {
			f.days = append(f.days[:i], f.days[i+1:]...)
			return nil
		}
	}
	return leave.ErrBlockedDayNotFound
}

type fakeEntitlementRepository struct {
	rows []leave.LeaveEntitlement
}

func (f *fakeEntitlementRepository) GetByEmployeeAndYear(_ context.Context, employeeID string, year int) (leave.LeaveEntitlement, error) {
	for _, row := range f.rows {
		if row.EmployeeID == employeeID && row.Year == year {
			return row, nil
		}
	}
	return leave.LeaveEntitlement{}, leave.ErrEntitlementNotFound
}

func (f *fakeEntitlementRepository) Upsert(_ context.Context, entitlement leave.LeaveEntitlement) (leave.LeaveEntitlement, error) {
	for i, row := range f.rows {
		if row.EmployeeID == entitlement.EmployeeID && row.Year == entitlement.Year {
			entitlement.ID = row.ID
			f.rows[i] = entitlement
			return entitlement, nil
		}
	}
	f.rows = append(f.rows, entitlement)
	return entitlement, nil
}

type fixture struct {
	employees    *fakeEmployeeRepository
	requests     *fakeLeaveRequestRepository
	blockedDays  *fakeBlockedDayRepository
	entitlements *fakeEntitlementRepository
	service      *Service
}

func newFixture() *fixture {
	employees := &fakeEmployeeRepository{}
	requests := &fakeLeaveRequestRepository{employees: employees}
	blockedDays := &fakeBlockedDayRepository{}
	entitlements := &fakeEntitlementRepository{}
	return &fixture{
		employees:    employees,
		requests:     requests,
		blockedDays:  blockedDays,
		entitlements: entitlements,
		service:      NewService(requests, blockedDays, entitlements, employees),
	}
}

func (f *fixture) addEmployee(email, fullName string, managerEmail *string) employee.Employee {
	emp := employee.Employee{
		ID:           uuid.NewString(),
		Email:        email,
		FullName:     fullName,
		ManagerEmail: managerEmail,
		CreatedAt:    time.Now().UTC(),
	}
	f.employees.employees = append(f.employees.employees, emp)
	return emp
}

func (f *fixture) addRequest(emp employee.Employee, start, end string, status leave.LeaveRequestStatus, days float64) leave.LeaveRequest {
	request := leave.LeaveRequest{
		ID:            uuid.NewString(),
		EmployeeID:    emp.ID,
		StartDate:     mustDate(start),
		EndDate:       mustDate(end),
		StartHalfDay:  leave.HalfDayFull,
		EndHalfDay:    leave.HalfDayFull,
		DaysRequested: days,
		Status:        status,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}
	f.requests.requests = append(f.requests.requests, request)
	return request
}

func (f *fixture) addBlockedDay(date, reason string) leave.BlockedDay {
	day := leave.BlockedDay{
		ID:        uuid.NewString(),
		Date:      mustDate(date),
		Reason:    reason,
		CreatedBy: "hr@example.com",
		CreatedAt: time.Now().UTC(),
	}
	f.blockedDays.days = append(f.blockedDays.days, day)
	return day
}

func mustDate(s string) time.Time {
	d, err := dateutil.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func strPtr(s string) *string { return &s }

// Compile-time interface checks for the fakes.
var (
	_ employee.EmployeeRepository      = (*fakeEmployeeRepository)(nil)
	_ leave.LeaveRequestRepository     = (*fakeLeaveRequestRepository)(nil)
	_ leave.BlockedDayRepository       = (*fakeBlockedDayRepository)(nil)
	_ leave.LeaveEntitlementRepository = (*fakeEntitlementRepository)(nil)
)

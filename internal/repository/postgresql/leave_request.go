package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/massimocristi1970/hr-dashboard/internal/domain/leave"
	"github.com/massimocristi1970/hr-dashboard/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `lr.id, lr.employee_id, lr.start_date, lr.end_date, lr.start_half_day, lr.end_half_day,
	lr.days_requested, lr.reason, lr.status, lr.manager_notes, lr.created_at, lr.updated_at`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID,
		&lr.EmployeeID,
		&lr.StartDate,
		&lr.EndDate,
		&lr.StartHalfDay,
		&lr.EndHalfDay,
		&lr.DaysRequested,
		&lr.Reason,
		&lr.Status,
		&lr.ManagerNotes,
		&lr.CreatedAt,
		&lr.UpdatedAt,
	)
	return lr, err
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests AS lr (
			id, employee_id, start_date, end_date, start_half_day, end_half_day,
			days_requested, reason, status, manager_notes, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, '', NOW(), NOW()
		) RETURNING ` + leaveRequestColumns + `
	`

	return scanLeaveRequest(q.QueryRow(ctx, query,
		request.ID, request.EmployeeID, request.StartDate, request.EndDate,
		request.StartHalfDay, request.EndHalfDay,
		request.DaysRequested, request.Reason, request.Status,
	))
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		WHERE lr.id = $1
	`

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return lr, nil
}

func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		WHERE lr.employee_id = $1
		ORDER BY lr.start_date DESC, lr.created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

func (r *leaveRequestRepositoryImpl) ListPendingForManager(ctx context.Context, managerEmail string) ([]leave.RequestWithEmployee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `, e.email, e.full_name, e.manager_email
		FROM leave_requests lr
		INNER JOIN employees e ON lr.employee_id = e.id
		WHERE lr.status = 'pending' AND LOWER(e.manager_email) = LOWER($1)
		ORDER BY lr.start_date ASC, lr.created_at ASC
	`

	return r.queryWithEmployee(ctx, q, query, managerEmail)
}

func (r *leaveRequestRepositoryImpl) ListAll(ctx context.Context) ([]leave.RequestWithEmployee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `, e.email, e.full_name, e.manager_email
		FROM leave_requests lr
		INNER JOIN employees e ON lr.employee_id = e.id
		ORDER BY lr.created_at DESC
	`

	return r.queryWithEmployee(ctx, q, query)
}

func (r *leaveRequestRepositoryImpl) ListApprovedOverlapping(ctx context.Context, start, end time.Time, excludeID string) ([]leave.RequestWithEmployee, error) {
	q := GetQuerier(ctx, r.db)

	// Inclusive range overlap: [a, b] and [c, d] overlap iff a <= d and b >= c.
	query := `
		SELECT ` + leaveRequestColumns + `, e.email, e.full_name, e.manager_email
		FROM leave_requests lr
		INNER JOIN employees e ON lr.employee_id = e.id
		WHERE lr.status = 'approved'
		  AND lr.id <> $3
		  AND lr.start_date <= $2
		  AND lr.end_date >= $1
		ORDER BY lr.start_date ASC
	`

	return r.queryWithEmployee(ctx, q, query, start, end, excludeID)
}

func (r *leaveRequestRepositoryImpl) SumApprovedDays(ctx context.Context, employeeID string, year int) (float64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(days_requested), 0)
		FROM leave_requests
		WHERE employee_id = $1
		  AND status = 'approved'
		  AND EXTRACT(YEAR FROM start_date) = $2
	`

	var sum float64
	if err := q.QueryRow(ctx, query, employeeID, year).Scan(&sum); err != nil {
		return 0, err
	}
	return sum, nil
}

func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.LeaveRequestStatus, notes string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, manager_notes = $3, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id, status, notes)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) queryWithEmployee(ctx context.Context, q database.Querier, query string, args ...any) ([]leave.RequestWithEmployee, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.RequestWithEmployee
	for rows.Next() {
		var rwe leave.RequestWithEmployee
		if err := rows.Scan(
			&rwe.ID,
			&rwe.EmployeeID,
			&rwe.StartDate,
			&rwe.EndDate,
			&rwe.StartHalfDay,
			&rwe.EndHalfDay,
			&rwe.DaysRequested,
			&rwe.Reason,
			&rwe.Status,
			&rwe.ManagerNotes,
			&rwe.CreatedAt,
			&rwe.UpdatedAt,
			&rwe.Email,
			&rwe.FullName,
			&rwe.ManagerEmail,
		); err != nil {
			return nil, err
		}
		requests = append(requests, rwe)
	}
	return requests, rows.Err()
}

package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/massimocristi1970/hr-dashboard/internal/domain/leave"
	"github.com/massimocristi1970/hr-dashboard/internal/pkg/database"
)

type leaveEntitlementRepositoryImpl struct {
	db *database.DB
}

func NewLeaveEntitlementRepository(db *database.DB) leave.LeaveEntitlementRepository {
	return &leaveEntitlementRepositoryImpl{db: db}
}

func (r *leaveEntitlementRepositoryImpl) GetByEmployeeAndYear(ctx context.Context, employeeID string, year int) (leave.LeaveEntitlement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, year, annual_allowance_days, carryover_days
		FROM leave_entitlements
		WHERE employee_id = $1 AND year = $2
	`

	var ent leave.LeaveEntitlement
	err := q.QueryRow(ctx, query, employeeID, year).Scan(
		&ent.ID, &ent.EmployeeID, &ent.Year, &ent.AnnualAllowanceDays, &ent.CarryoverDays,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return leave.LeaveEntitlement{}, leave.ErrEntitlementNotFound
	}
	if err != nil {
		return leave.LeaveEntitlement{}, err
	}
	return ent, nil
}

func (r *leaveEntitlementRepositoryImpl) Upsert(ctx context.Context, entitlement leave.LeaveEntitlement) (leave.LeaveEntitlement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_entitlements (id, employee_id, year, annual_allowance_days, carryover_days)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, year) DO UPDATE SET
			annual_allowance_days = EXCLUDED.annual_allowance_days,
			carryover_days = EXCLUDED.carryover_days
		RETURNING id, employee_id, year, annual_allowance_days, carryover_days
	`

	var saved leave.LeaveEntitlement
	err := q.QueryRow(ctx, query,
		entitlement.ID, entitlement.EmployeeID, entitlement.Year,
		entitlement.AnnualAllowanceDays, entitlement.CarryoverDays,
	).Scan(
		&saved.ID, &saved.EmployeeID, &saved.Year, &saved.AnnualAllowanceDays, &saved.CarryoverDays,
	)
	if err != nil {
		return leave.LeaveEntitlement{}, err
	}
	return saved, nil
}

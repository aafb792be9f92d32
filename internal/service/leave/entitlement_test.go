package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/massimocristi1970/hr-dashboard/internal/domain/employee"
	"github.com/massimocristi1970/hr-dashboard/internal/domain/leave"
)

func TestSetEntitlement(t *testing.T) {
	t.Parallel()

	t.Run("creates and replaces the yearly row", func(t *testing.T) {
		t.Parallel()
		f := newFixture()
		emp := f.addEmployee("alice@example.com", "Alice Archer", nil)

		first, err := f.service.SetEntitlement(context.Background(), leave.SetEntitlementRequest{
			EmployeeID:          emp.ID,
			Year:                2025,
			AnnualAllowanceDays: 20,
			CarryoverDays:       5,
		})
		require.NoError(t, err)
		assert.Equal(t, 20.0, first.AnnualAllowanceDays)

		second, err := f.service.SetEntitlement(context.Background(), leave.SetEntitlementRequest{
			EmployeeID:          emp.ID,
			Year:                2025,
			AnnualAllowanceDays: 22,
			CarryoverDays:       0,
		})
		require.NoError(t, err)
		assert.Equal(t, 22.0, second.AnnualAllowanceDays)

		stored, err := f.entitlements.GetByEmployeeAndYear(context.Background(), emp.ID, 2025)
		require.NoError(t, err)
		assert.Equal(t, 22.0, stored.AnnualAllowanceDays)
		assert.Equal(t, 0.0, stored.CarryoverDays)
	})

	t.Run("unknown employee is rejected", func(t *testing.T) {
		t.Parallel()
		f := newFixture()

		_, err := f.service.SetEntitlement(context.Background(), leave.SetEntitlementRequest{
			EmployeeID:          "missing",
			Year:                2025,
			AnnualAllowanceDays: 20,
		})
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})
}

func TestEntitlementSummary(t *testing.T) {
	t.Parallel()

	t.Run("balances per employee", func(t *testing.T) {
		t.Parallel()
		f := newFixture()
		alice := f.addEmployee("alice@example.com", "Alice Archer", nil)
		bob := f.addEmployee("bob@example.com", "Bob Builder", nil)

		f.entitlements.rows = append(f.entitlements.rows, leave.LeaveEntitlement{
			ID:                  "ent-1",
			EmployeeID:          alice.ID,
			Year:                2025,
			AnnualAllowanceDays: 20,
			CarryoverDays:       5,
		})

		// 10 approved days in 2025; pending and declined do not count.
		f.addRequest(alice, "2025-03-03", "2025-03-07", leave.LeaveRequestStatusApproved, 5)
		f.addRequest(alice, "2025-06-09", "2025-06-13", leave.LeaveRequestStatusApproved, 5)
		f.addRequest(alice, "2025-09-01", "2025-09-05", leave.LeaveRequestStatusPending, 5)
		f.addRequest(alice, "2025-10-06", "2025-10-10", leave.LeaveRequestStatusDeclined, 5)
		// Approved leave starting in another year is out of scope.
		f.addRequest(alice, "2024-12-23", "2024-12-27", leave.LeaveRequestStatusApproved, 5)

		summaries, err := f.service.EntitlementSummary(context.Background(), 2025)
		require.NoError(t, err)
		require.Len(t, summaries, 2)

		byID := map[string]leave.EntitlementSummary{}
		for _, s := range summaries {
			byID[s.EmployeeID] = s
		}

		aliceSummary := byID[alice.ID]
		assert.True(t, aliceSummary.EntitlementSet)
		assert.Equal(t, 25.0, aliceSummary.TotalAllowance)
		assert.Equal(t, 10.0, aliceSummary.TakenDays)
		assert.Equal(t, 15.0, aliceSummary.RemainingDays)

		bobSummary := byID[bob.ID]
		assert.False(t, bobSummary.EntitlementSet)
		assert.Equal(t, 0.0, bobSummary.TotalAllowance)
		assert.Equal(t, 0.0, bobSummary.RemainingDays)
	})

	t.Run("remaining goes negative without clamping", func(t *testing.T) {
		t.Parallel()
		f := newFixture()
		alice := f.addEmployee("alice@example.com", "Alice Archer", nil)

		f.entitlements.rows = append(f.entitlements.rows, leave.LeaveEntitlement{
			ID:                  "ent-1",
			EmployeeID:          alice.ID,
			Year:                2025,
			AnnualAllowanceDays: 20,
			CarryoverDays:       5,
		})
		f.addRequest(alice, "2025-01-06", "2025-02-14", leave.LeaveRequestStatusApproved, 30)

		summaries, err := f.service.EntitlementSummary(context.Background(), 2025)
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, -5.0, summaries[0].RemainingDays)
	})

	t.Run("zero year defaults to the current year", func(t *testing.T) {
		t.Parallel()
		f := newFixture()
		f.addEmployee("alice@example.com", "Alice Archer", nil)

		summaries, err := f.service.EntitlementSummary(context.Background(), 0)
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, time.Now().UTC().Year(), summaries[0].Year)
	})
}

package leave

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/massimocristi1970/hr-dashboard/internal/domain/auth"
	"github.com/massimocristi1970/hr-dashboard/internal/domain/leave"
)

func TestRequestWarnings(t *testing.T) {
	t.Parallel()

	setup := func() (*fixture, leave.LeaveRequest) {
		f := newFixture()
		alice := f.addEmployee("alice@example.com", "Alice Archer", strPtr("mark@example.com"))
		bob := f.addEmployee("bob@example.com", "Bob Builder", nil)

		request := f.addRequest(alice, "2025-08-04", "2025-08-08", leave.LeaveRequestStatusPending, 5)
		f.addRequest(bob, "2025-08-07", "2025-08-11", leave.LeaveRequestStatusApproved, 3)
		f.addRequest(bob, "2025-08-01", "2025-08-03", leave.LeaveRequestStatusApproved, 1)
		f.addBlockedDay("2025-08-05", "stocktake")
		f.addBlockedDay("2025-08-20", "offsite")
		return f, request
	}

	t.Run("owner sees overlapping approvals and in-range blocked days", func(t *testing.T) {
		t.Parallel()
		f, request := setup()

		warnings, err := f.service.RequestWarnings(context.Background(), auth.Actor{Email: "alice@example.com"}, request.ID)
		require.NoError(t, err)

		require.Len(t, warnings.Conflicts, 1)
		assert.Equal(t, "bob@example.com", warnings.Conflicts[0].Email)

		require.Len(t, warnings.BlockedDays, 1)
		assert.Equal(t, "stocktake", warnings.BlockedDays[0].Reason)
	})

	t.Run("the request never conflicts with itself", func(t *testing.T) {
		t.Parallel()
		f, _ := setup()
		alice, err := f.employees.GetByEmail(context.Background(), "alice@example.com")
		require.NoError(t, err)
		approved := f.addRequest(alice, "2025-11-03", "2025-11-05", leave.LeaveRequestStatusApproved, 3)

		warnings, err := f.service.RequestWarnings(context.Background(), auth.Actor{Email: "alice@example.com"}, approved.ID)
		require.NoError(t, err)
		assert.Empty(t, warnings.Conflicts)
	})

	t.Run("resolution reflects current data, not an earlier render", func(t *testing.T) {
		t.Parallel()
		f, request := setup()
		actor := auth.Actor{Email: "mark@example.com"}

		first, err := f.service.RequestWarnings(context.Background(), actor, request.ID)
		require.NoError(t, err)
		require.Len(t, first.BlockedDays, 1)

		require.NoError(t, f.blockedDays.Delete(context.Background(), first.BlockedDays[0].ID))

		second, err := f.service.RequestWarnings(context.Background(), actor, request.ID)
		require.NoError(t, err)
		assert.Empty(t, second.BlockedDays)
		assert.Equal(t, first.Conflicts, second.Conflicts)
	})

	t.Run("unrelated actor is forbidden", func(t *testing.T) {
		t.Parallel()
		f, request := setup()

		_, err := f.service.RequestWarnings(context.Background(), auth.Actor{Email: "bob@example.com"}, request.ID)
		assert.ErrorIs(t, err, auth.ErrForbidden)
	})

	t.Run("admin may inspect any request", func(t *testing.T) {
		t.Parallel()
		f, request := setup()

		_, err := f.service.RequestWarnings(context.Background(), auth.Actor{Email: "hr@example.com", IsAdmin: true}, request.ID)
		assert.NoError(t, err)
	})
}

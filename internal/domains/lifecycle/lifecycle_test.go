package lifecycle_test

import (
	"agrirent/internal/domains/lifecycle"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		status lifecycle.Status
		want   lifecycle.Bucket
	}{
		{status: lifecycle.Pending, want: lifecycle.BucketRequests},
		{status: lifecycle.Confirmed, want: lifecycle.BucketActive},
		{status: lifecycle.Completed, want: lifecycle.BucketHistory},
		{status: lifecycle.Cancelled, want: lifecycle.BucketHistory},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, lifecycle.Classify(tt.status))
		})
	}
}

func TestStateMachine(t *testing.T) {
	assert.True(t, lifecycle.Pending.CanTransition(lifecycle.Confirmed))
	assert.True(t, lifecycle.Pending.CanTransition(lifecycle.Cancelled))
	assert.True(t, lifecycle.Confirmed.CanTransition(lifecycle.Completed))
	assert.True(t, lifecycle.Confirmed.CanTransition(lifecycle.Cancelled))

	assert.False(t, lifecycle.Pending.CanTransition(lifecycle.Completed))
	assert.False(t, lifecycle.Confirmed.CanTransition(lifecycle.Pending))

	for _, terminal := range []lifecycle.Status{lifecycle.Completed, lifecycle.Cancelled} {
		assert.True(t, terminal.Terminal())

		for _, to := range []lifecycle.Status{lifecycle.Pending, lifecycle.Confirmed, lifecycle.Completed, lifecycle.Cancelled} {
			assert.False(t, terminal.CanTransition(to), "%s -> %s", terminal, to)
		}
	}
}

func TestContactVisible(t *testing.T) {
	assert.False(t, lifecycle.Pending.ContactVisible())
	assert.True(t, lifecycle.Confirmed.ContactVisible())
	assert.True(t, lifecycle.Completed.ContactVisible())
	assert.False(t, lifecycle.Cancelled.ContactVisible())
}

func TestActionTarget(t *testing.T) {
	assert.Equal(t, lifecycle.Confirmed, lifecycle.Approve.Target())
	assert.Equal(t, lifecycle.Cancelled, lifecycle.Reject.Target())
	assert.Equal(t, lifecycle.Completed, lifecycle.Complete.Target())
	assert.Equal(t, lifecycle.Cancelled, lifecycle.Cancel.Target())
	assert.Equal(t, lifecycle.Cancelled, lifecycle.ForceCancel.Target())
	assert.False(t, lifecycle.Action("delete").Valid())
}

func TestOwnerViewFollowsBookingThroughLifecycle(t *testing.T) {
	view := lifecycle.NewOwnerView([]lifecycle.Item{{ID: "b1", Status: lifecycle.Pending}})

	row, ok := view.Row("b1")
	require.True(t, ok)
	assert.Equal(t, lifecycle.BucketRequests, row.Bucket)
	assert.ElementsMatch(t, []lifecycle.Action{lifecycle.Approve, lifecycle.Reject}, row.Actions)

	view = lifecycle.NewOwnerView([]lifecycle.Item{{ID: "b1", Status: lifecycle.Approve.Target()}})

	row, _ = view.Row("b1")
	assert.Equal(t, lifecycle.BucketActive, row.Bucket)
	assert.ElementsMatch(t, []lifecycle.Action{lifecycle.Complete, lifecycle.Cancel}, row.Actions)
	assert.False(t, view.Allows("b1", lifecycle.Approve))

	view = lifecycle.NewOwnerView([]lifecycle.Item{{ID: "b1", Status: lifecycle.Complete.Target()}})

	row, _ = view.Row("b1")
	assert.Equal(t, lifecycle.BucketHistory, row.Bucket)
	assert.Empty(t, row.Actions)

	for _, action := range []lifecycle.Action{lifecycle.Approve, lifecycle.Reject, lifecycle.Complete, lifecycle.Cancel, lifecycle.ForceCancel} {
		assert.False(t, view.Allows("b1", action))
	}
}

func TestOwnerViewGroups(t *testing.T) {
	view := lifecycle.NewOwnerView([]lifecycle.Item{
		{ID: "b1", Status: lifecycle.Pending},
		{ID: "b2", Status: lifecycle.Confirmed},
		{ID: "b3", Status: lifecycle.Cancelled},
		{ID: "b4", Status: lifecycle.Pending},
		{ID: "b5", Status: lifecycle.Completed},
	})

	assert.Equal(t, []lifecycle.Group{
		{Bucket: lifecycle.BucketRequests, IDs: []string{"b1", "b4"}},
		{Bucket: lifecycle.BucketActive, IDs: []string{"b2"}},
		{Bucket: lifecycle.BucketHistory, IDs: []string{"b3", "b5"}},
	}, view.Groups())

	seen := map[string]int{}
	for _, group := range view.Groups() {
		for _, id := range group.IDs {
			seen[id]++
		}
	}

	for id, count := range seen {
		assert.Equal(t, 1, count, "booking %s in more than one bucket", id)
	}

	assert.Len(t, view.Rows(), 5)
}

func TestFarmerViewHasNoActions(t *testing.T) {
	view := lifecycle.NewFarmerView([]lifecycle.Item{
		{ID: "b1", Status: lifecycle.Pending},
		{ID: "b2", Status: lifecycle.Confirmed},
	})

	for _, row := range view.Rows() {
		assert.Empty(t, row.Actions)
	}

	assert.False(t, view.Allows("b1", lifecycle.Cancel))
	assert.Equal(t, lifecycle.RoleFarmer, view.Role())
}

func TestAdminViewForceCancel(t *testing.T) {
	view := lifecycle.NewAdminView([]lifecycle.Item{
		{ID: "pending", Status: lifecycle.Pending},
		{ID: "confirmed", Status: lifecycle.Confirmed},
		{ID: "completed", Status: lifecycle.Completed},
		{ID: "cancelled", Status: lifecycle.Cancelled},
		{ID: "disputed", Status: lifecycle.Status("DISPUTED")},
	})

	assert.True(t, view.Allows("pending", lifecycle.ForceCancel))
	assert.True(t, view.Allows("confirmed", lifecycle.ForceCancel))
	assert.False(t, view.Allows("completed", lifecycle.ForceCancel))
	assert.False(t, view.Allows("cancelled", lifecycle.ForceCancel))
	assert.False(t, view.Allows("disputed", lifecycle.ForceCancel))

	row, ok := view.Row("disputed")
	require.True(t, ok)
	assert.Empty(t, row.Actions)

	assert.False(t, view.Allows("pending", lifecycle.Approve))
	assert.False(t, view.Allows("unknown", lifecycle.ForceCancel))

	groups := view.Groups()
	require.Len(t, groups, 1)
	assert.Equal(t, lifecycle.BucketAll, groups[0].Bucket)
	assert.Len(t, groups[0].IDs, 5)
}

func TestBuild(t *testing.T) {
	tests := []struct {
		role    string
		want    any
		wantErr bool
	}{
		{role: lifecycle.RoleFarmer, want: lifecycle.FarmerView{}},
		{role: lifecycle.RoleOwner, want: lifecycle.OwnerView{}},
		{role: lifecycle.RoleAdmin, want: lifecycle.AdminView{}},
		{role: "GUEST", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			view, err := lifecycle.Build(tt.role, nil)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.IsType(t, tt.want, view)
			assert.Equal(t, tt.role, view.Role())

			for _, group := range view.Groups() {
				assert.NotNil(t, group.IDs)
			}
		})
	}
}

package leavehistory_test

import (
	"math/rand"
	"testing"

	"go-cuti/internal/leavehistory"
	leavehistoryerrors "go-cuti/internal/leavehistory/errors"

	"github.com/stretchr/testify/assert"
)

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name       string
		employeeID string
		status     string
		want       leavehistory.Filter
		wantErr    error
	}{
		{name: "blank status means all", want: leavehistory.Filter{Status: "ALL"}},
		{name: "lower case status", status: " approved ", want: leavehistory.Filter{Status: "APPROVED"}},
		{name: "explicit all", status: "all", employeeID: " " + empAni + " ", want: leavehistory.Filter{EmployeeID: empAni, Status: "ALL"}},
		{name: "unknown status", status: "CANCELLED", wantErr: leavehistoryerrors.ErrInvalidStatusFilter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := leavehistory.ParseFilter(tt.employeeID, tt.status)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveViewer(t *testing.T) {
	assert.Equal(t, leavehistory.Viewer{}, leavehistory.ResolveViewer(nil, nil))

	hrd := &leavehistory.Employee{ID: empHRD, Role: "HRD"}
	assert.True(t, leavehistory.ResolveViewer(hrd, nil).Elevated)

	staff := &leavehistory.Employee{ID: empAni, Role: "STAFF"}
	assert.False(t, leavehistory.ResolveViewer(staff, nil).Elevated)
	assert.True(t, leavehistory.ResolveViewer(staff, leavehistory.RolePrivilege{"STAFF"}).Elevated)
}

func TestRolePrivilege_CaseInsensitive(t *testing.T) {
	p := leavehistory.RolePrivilege{"HRD"}

	assert.True(t, p.HasElevatedAccess("HRD"))
	assert.True(t, p.HasElevatedAccess("hrd"))
	assert.True(t, p.HasElevatedAccess(" Hrd "))
	assert.False(t, p.HasElevatedAccess(""))
	assert.False(t, p.HasElevatedAccess("STAFF"))

	lower := &leavehistory.Employee{ID: empHRD, Name: "Siti Rahma", Role: "hrd"}
	assert.True(t, leavehistory.ResolveViewer(lower, nil).Elevated)
}

func TestDerive(t *testing.T) {
	t.Run("non privileged user sees only own requests regardless of filters", func(t *testing.T) {
		viewer := viewerFor(empAni)

		got := leavehistory.Derive(fixtureRequests(), viewer, leavehistory.Filter{EmployeeID: empBudi, Status: "ALL"})
		assert.Equal(t, []string{"r2", "r1"}, ids(got))

		got = leavehistory.Derive(fixtureRequests(), viewer, leavehistory.Filter{EmployeeID: empBudi, Status: "PENDING"})
		assert.Equal(t, []string{"r2"}, ids(got))
	})

	t.Run("manager is not privileged", func(t *testing.T) {
		got := leavehistory.Derive(fixtureRequests(), viewerFor(empBudi), leavehistory.DefaultFilter())
		assert.Equal(t, []string{"r3"}, ids(got))
	})

	t.Run("privileged user sees everything", func(t *testing.T) {
		got := leavehistory.Derive(fixtureRequests(), viewerFor(empHRD), leavehistory.DefaultFilter())
		assert.Equal(t, []string{"r3", "r2", "r5", "r1", "r4"}, ids(got))
	})

	t.Run("privileged user with employee filter", func(t *testing.T) {
		got := leavehistory.Derive(fixtureRequests(), viewerFor(empHRD), leavehistory.Filter{EmployeeID: empAni, Status: "ALL"})
		assert.Equal(t, []string{"r2", "r1"}, ids(got))
		for _, r := range got {
			assert.Equal(t, empAni, r.EmployeeID)
		}
	})

	t.Run("status filter keeps only matching rows", func(t *testing.T) {
		got := leavehistory.Derive(fixtureRequests(), viewerFor(empHRD), leavehistory.Filter{Status: "APPROVED"})
		assert.Equal(t, []string{"r5", "r1", "r4"}, ids(got))
		for _, r := range got {
			assert.Equal(t, "APPROVED", r.Status)
		}
	})

	t.Run("status all is a no-op", func(t *testing.T) {
		viewer := viewerFor(empHRD)
		all := leavehistory.Derive(fixtureRequests(), viewer, leavehistory.Filter{Status: "ALL"})
		blank := leavehistory.Derive(fixtureRequests(), viewer, leavehistory.Filter{})
		assert.Equal(t, len(fixtureRequests()), len(all))
		assert.Equal(t, ids(all), ids(blank))
	})

	t.Run("absent user sees nothing", func(t *testing.T) {
		got := leavehistory.Derive(fixtureRequests(), leavehistory.Viewer{}, leavehistory.DefaultFilter())
		assert.Empty(t, got)
	})

	t.Run("own requests newest first", func(t *testing.T) {
		reqs := []leavehistory.LeaveRequest{
			{ID: "jan", EmployeeID: "A", StartDate: day(2024, 1, 5), Status: "APPROVED"},
			{ID: "feb", EmployeeID: "A", StartDate: day(2024, 2, 10), Status: "PENDING"},
		}
		viewer := leavehistory.ResolveViewer(&leavehistory.Employee{ID: "A", Role: "STAFF"}, nil)

		got := leavehistory.Derive(reqs, viewer, leavehistory.DefaultFilter())
		assert.Equal(t, []string{"feb", "jan"}, ids(got))
	})

	t.Run("input is not modified", func(t *testing.T) {
		reqs := fixtureRequests()
		before := ids(reqs)
		_ = leavehistory.Derive(reqs, viewerFor(empHRD), leavehistory.DefaultFilter())
		assert.Equal(t, before, ids(reqs))
	})
}

func TestDerive_SortedForAnyPermutation(t *testing.T) {
	viewer := viewerFor(empHRD)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 50; i++ {
		reqs := fixtureRequests()
		rng.Shuffle(len(reqs), func(a, b int) { reqs[a], reqs[b] = reqs[b], reqs[a] })

		got := leavehistory.Derive(reqs, viewer, leavehistory.DefaultFilter())

		assert.Len(t, got, len(reqs))
		for j := 1; j < len(got); j++ {
			assert.False(t, got[j].StartDate.After(got[j-1].StartDate),
				"row %d (%s) is newer than row %d (%s)", j, got[j].ID, j-1, got[j-1].ID)
		}
	}
}

func TestDerive_StableForEqualStartDates(t *testing.T) {
	reqs := []leavehistory.LeaveRequest{
		{ID: "a", EmployeeID: empAni, StartDate: day(2024, 5, 1)},
		{ID: "b", EmployeeID: empAni, StartDate: day(2024, 5, 1)},
		{ID: "c", EmployeeID: empAni, StartDate: day(2024, 6, 1)},
	}
	got := leavehistory.Derive(reqs, viewerFor(empAni), leavehistory.DefaultFilter())
	assert.Equal(t, []string{"c", "a", "b"}, ids(got))
}

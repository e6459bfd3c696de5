package leavehistory

import (
	"sort"
	"strings"

	"go-cuti/internal/employee"
	"go-cuti/internal/leave"
	leavehistoryerrors "go-cuti/internal/leavehistory/errors"
)

// StatusAll disables the status filter.
const StatusAll = "ALL"

// Filter is the transient state of the filter bar.
type Filter struct {
	EmployeeID string `json:"employee_id"`
	Status     string `json:"status"`
}

// DefaultFilter shows every employee and every status.
func DefaultFilter() Filter {
	return Filter{Status: StatusAll}
}

// ParseFilter normalizes raw query values. A blank status means ALL and the
// status is matched case-insensitively.
func ParseFilter(employeeID, status string) (Filter, error) {
	f := Filter{
		EmployeeID: strings.TrimSpace(employeeID),
		Status:     strings.ToUpper(strings.TrimSpace(status)),
	}
	if f.Status == "" {
		f.Status = StatusAll
	}
	if f.Status != StatusAll && !leave.IsKnownStatus(f.Status) {
		return Filter{}, leavehistoryerrors.ErrInvalidStatusFilter
	}
	return f, nil
}

func (f Filter) matchesStatus(status string) bool {
	return f.Status == "" || f.Status == StatusAll || f.Status == status
}

// Privilege tells whether a role may see every employee's requests.
type Privilege interface {
	HasElevatedAccess(role string) bool
}

// RolePrivilege grants elevated access to a fixed set of roles.
type RolePrivilege []string

func (p RolePrivilege) HasElevatedAccess(role string) bool {
	role = strings.TrimSpace(role)
	if role == "" {
		return false
	}
	for _, r := range p {
		if strings.EqualFold(strings.TrimSpace(r), role) {
			return true
		}
	}
	return false
}

// DefaultPrivilege elevates HRD only.
var DefaultPrivilege Privilege = RolePrivilege{employee.RoleHRD}

// Viewer is the current user together with the resolved privilege.
type Viewer struct {
	User     *Employee
	Elevated bool
}

// ResolveViewer resolves the privilege of user. An absent user is never
// elevated. A nil privilege falls back to DefaultPrivilege.
func ResolveViewer(user *Employee, privilege Privilege) Viewer {
	if user == nil {
		return Viewer{}
	}
	if privilege == nil {
		privilege = DefaultPrivilege
	}
	return Viewer{User: user, Elevated: privilege.HasElevatedAccess(user.Role)}
}

func (v Viewer) canSee(r LeaveRequest, f Filter) bool {
	if !v.Elevated {
		return v.User != nil && r.EmployeeID == v.User.ID
	}
	if f.EmployeeID != "" {
		return r.EmployeeID == f.EmployeeID
	}
	return true
}

// Derive applies, in order, role visibility, the employee filter (elevated
// viewers only), the status filter and a newest-first sort on start date.
// Requests with the same start date keep their input order. The input slice
// is not modified.
func Derive(requests []LeaveRequest, viewer Viewer, filter Filter) []LeaveRequest {
	data := make([]LeaveRequest, 0, len(requests))
	for _, r := range requests {
		if !viewer.canSee(r, filter) {
			continue
		}
		if !filter.matchesStatus(r.Status) {
			continue
		}
		data = append(data, r)
	}

	sort.SliceStable(data, func(i, j int) bool {
		return data[i].StartDate.After(data[j].StartDate)
	})
	return data
}

package leavehistory

import (
	"context"

	"go-cuti/internal/employee"
	"go-cuti/internal/leave"

	"golang.org/x/sync/errgroup"
)

// Source loads the inputs of a company's history.
type Source interface {
	Load(ctx context.Context, companyID string) (Snapshot, error)
}

type repositorySource struct {
	employees employee.Repository
	leaves    leave.Repository
}

// NewRepositorySource reads the employee directory and the leave requests of
// a company in parallel.
func NewRepositorySource(employees employee.Repository, leaves leave.Repository) Source {
	return &repositorySource{employees: employees, leaves: leaves}
}

func (s *repositorySource) Load(ctx context.Context, companyID string) (Snapshot, error) {
	var (
		emps   []employee.Employee
		leaves []leave.Leave
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		emps, err = s.employees.FindAllByCompany(gctx, companyID)
		return err
	})
	g.Go(func() error {
		var err error
		leaves, err = s.leaves.FindAllByCompany(gctx, companyID)
		return err
	})
	if err := g.Wait(); err != nil {
		return Snapshot{}, mapSourceError(err)
	}

	return Snapshot{
		Employees: mapEmployees(emps),
		Requests:  mapLeaves(leaves),
	}, nil
}

func mapEmployees(emps []employee.Employee) []Employee {
	out := make([]Employee, len(emps))
	for i, e := range emps {
		out[i] = Employee{
			ID:   e.ID.String(),
			Name: e.FullName,
			Role: e.Role,
		}
	}
	return out
}

func mapLeaves(leaves []leave.Leave) []LeaveRequest {
	out := make([]LeaveRequest, len(leaves))
	for i, l := range leaves {
		out[i] = LeaveRequest{
			ID:              l.ID.String(),
			EmployeeID:      l.EmployeeID.String(),
			StartDate:       l.StartDate,
			EndDate:         l.EndDate,
			LeaveType:       l.LeaveType,
			DurationDays:    l.TotalDays,
			Reason:          l.Reason,
			Status:          l.Status,
			RejectionReason: l.RejectionReason,
		}
	}
	return out
}

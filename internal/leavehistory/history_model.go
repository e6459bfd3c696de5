package leavehistory

import "time"

// Employee is the directory entry a history row refers to.
type Employee struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// LeaveRequest is one leave petition as shown in the history.
type LeaveRequest struct {
	ID              string    `json:"id"`
	EmployeeID      string    `json:"employee_id"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	LeaveType       string    `json:"leave_type"`
	DurationDays    int       `json:"duration_days"`
	Reason          string    `json:"reason"`
	Status          string    `json:"status"`
	RejectionReason *string   `json:"rejection_reason,omitempty"`
}

// Snapshot holds everything a history view is derived from.
type Snapshot struct {
	Employees []Employee     `json:"employees"`
	Requests  []LeaveRequest `json:"requests"`
}

// FindEmployee returns the first employee with id, or nil.
func (s Snapshot) FindEmployee(id string) *Employee {
	if id == "" {
		return nil
	}
	for i := range s.Employees {
		if s.Employees[i].ID == id {
			e := s.Employees[i]
			return &e
		}
	}
	return nil
}

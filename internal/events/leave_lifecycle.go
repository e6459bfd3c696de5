package events

import "time"

const (
	LeaveLifecycleTopic    = "hr.leave.lifecycle.v1"
	EmployeeLifecycleTopic = "hr.employee.lifecycle.v1"
)

// Event types published on the lifecycle topics.
const (
	LeaveRequested   = "leave_requested"
	LeaveApproved    = "leave_approved"
	LeaveRejected    = "leave_rejected"
	LeaveCancelled   = "leave_cancelled"
	EmployeeCreated  = "employee_created"
	EmployeeUpdated  = "employee_updated"
	EmployeeArchived = "employee_archived"
)

var historyEventTypes = map[string]struct{}{
	LeaveRequested:   {},
	LeaveApproved:    {},
	LeaveRejected:    {},
	LeaveCancelled:   {},
	EmployeeCreated:  {},
	EmployeeUpdated:  {},
	EmployeeArchived: {},
}

// CompanyScopedEvent is the common envelope of every lifecycle event that
// changes what a company's leave history shows.
type CompanyScopedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	CompanyID  string    `json:"company_id"`
	EmployeeID string    `json:"employee_id,omitempty"`
	LeaveID    string    `json:"leave_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// AffectsHistory reports whether the event changes leave requests or the
// employee directory shown next to them.
func (e CompanyScopedEvent) AffectsHistory() bool {
	_, ok := historyEventTypes[e.EventType]
	return ok
}

package leavehistory

// HistoryQueryRequest is bound from the query string of every history route.
type HistoryQueryRequest struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,max=16"`
}

// Query is the input of Service.GetHistory. An empty CompanyID means the
// caller is anonymous.
type Query struct {
	CompanyID       string
	ActorEmployeeID string
	Filter          Filter
}

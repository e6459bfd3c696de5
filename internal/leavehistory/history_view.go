package leavehistory

import (
	"go-cuti/internal/leave"
)

const (
	Title             = "Riwayat Pengajuan Cuti"
	SubtitleElevated  = "Pantau semua riwayat pengajuan cuti karyawan."
	SubtitleOwn       = "Pantau status dan riwayat pengajuan cuti Anda."
	EmptyMessage      = "Tidak ada data riwayat cuti ditemukan."
	UnknownEmployee   = "Unknown"
	AllEmployeesLabel = "Semua Karyawan"
	AllStatusesLabel  = "Semua Status"
)

const (
	ColumnDate     = "Tanggal Pengajuan"
	ColumnEmployee = "Nama Karyawan"
	ColumnType     = "Jenis Cuti"
	ColumnDuration = "Durasi"
	ColumnReason   = "Alasan & Catatan"
	ColumnStatus   = "Status"
)

const (
	ToneApproved = "approved"
	ToneRejected = "rejected"
	TonePending  = "pending"
)

type Option struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

type Row struct {
	ID            string `json:"id"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	StartLabel    string `json:"start_label"`
	EndLabel      string `json:"end_label"`
	EmployeeID    string `json:"employee_id"`
	EmployeeName  string `json:"employee_name"`
	EmployeeRole  string `json:"employee_role"`
	LeaveType     string `json:"leave_type"`
	DurationDays  int    `json:"duration_days"`
	DurationLabel string `json:"duration_label"`
	Reason        string `json:"reason"`
	RejectionNote string `json:"rejection_note,omitempty"`
	Status        string `json:"status"`
	StatusTone    string `json:"status_tone"`
}

// HistoryView is the fully derived table, ready to render or serialize.
type HistoryView struct {
	IsHRD           bool     `json:"is_hrd"`
	Title           string   `json:"title"`
	Subtitle        string   `json:"subtitle"`
	Filter          Filter   `json:"filter"`
	EmployeeOptions []Option `json:"employee_options,omitempty"`
	StatusOptions   []Option `json:"status_options"`
	Columns         []string `json:"columns"`
	ColSpan         int      `json:"col_span"`
	Rows            []Row    `json:"rows"`
	Empty           bool     `json:"empty"`
	EmptyMessage    string   `json:"empty_message,omitempty"`
}

// BuildView derives the history table for viewer. It never fails: an absent
// viewer or empty inputs produce an empty view.
func BuildView(employees []Employee, requests []LeaveRequest, viewer Viewer, filter Filter) HistoryView {
	if filter.Status == "" {
		filter.Status = StatusAll
	}

	view := HistoryView{
		IsHRD:         viewer.Elevated,
		Title:         Title,
		Subtitle:      SubtitleOwn,
		Filter:        filter,
		StatusOptions: statusOptions(filter.Status),
		Columns:       columns(viewer.Elevated),
	}
	view.ColSpan = len(view.Columns)
	if viewer.Elevated {
		view.Subtitle = SubtitleElevated
		view.EmployeeOptions = employeeOptions(employees, filter.EmployeeID)
	}

	directory := Snapshot{Employees: employees}
	derived := Derive(requests, viewer, filter)
	view.Rows = make([]Row, 0, len(derived))
	for _, r := range derived {
		view.Rows = append(view.Rows, buildRow(r, directory.FindEmployee(r.EmployeeID)))
	}

	if len(view.Rows) == 0 {
		view.Empty = true
		view.EmptyMessage = EmptyMessage
	}
	return view
}

func columns(elevated bool) []string {
	cols := []string{ColumnDate}
	if elevated {
		cols = append(cols, ColumnEmployee)
	}
	return append(cols, ColumnType, ColumnDuration, ColumnReason, ColumnStatus)
}

func employeeOptions(employees []Employee, selected string) []Option {
	opts := make([]Option, 0, len(employees)+1)
	opts = append(opts, Option{Value: "", Label: AllEmployeesLabel, Selected: selected == ""})
	for _, e := range employees {
		opts = append(opts, Option{
			Value:    e.ID,
			Label:    e.Name + " - " + e.Role,
			Selected: e.ID == selected,
		})
	}
	return opts
}

func statusOptions(selected string) []Option {
	opts := make([]Option, 0, len(leave.Statuses)+1)
	opts = append(opts, Option{Value: StatusAll, Label: AllStatusesLabel, Selected: selected == StatusAll})
	for _, s := range leave.Statuses {
		opts = append(opts, Option{Value: s, Label: s, Selected: s == selected})
	}
	return opts
}

func buildRow(r LeaveRequest, emp *Employee) Row {
	row := Row{
		ID:            r.ID,
		StartDate:     r.StartDate.Format("2006-01-02"),
		EndDate:       r.EndDate.Format("2006-01-02"),
		StartLabel:    formatDate(r.StartDate),
		EndLabel:      formatDate(r.EndDate),
		EmployeeID:    r.EmployeeID,
		EmployeeName:  UnknownEmployee,
		LeaveType:     r.LeaveType,
		DurationDays:  r.DurationDays,
		DurationLabel: formatDuration(r.DurationDays),
		Reason:        r.Reason,
		Status:        r.Status,
		StatusTone:    statusTone(r.Status),
	}
	if emp != nil {
		if emp.Name != "" {
			row.EmployeeName = emp.Name
		}
		row.EmployeeRole = emp.Role
	}
	if r.Status == leave.StatusRejected && r.RejectionReason != nil && *r.RejectionReason != "" {
		row.RejectionNote = "HRD: " + *r.RejectionReason
	}
	return row
}

func statusTone(status string) string {
	switch status {
	case leave.StatusApproved:
		return ToneApproved
	case leave.StatusRejected:
		return ToneRejected
	default:
		return TonePending
	}
}

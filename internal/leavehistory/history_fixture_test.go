package leavehistory_test

import (
	"time"

	"go-cuti/internal/leavehistory"
)

const (
	empHRD   = "11111111-1111-1111-1111-111111111111"
	empAni   = "22222222-2222-2222-2222-222222222222"
	empBudi  = "33333333-3333-3333-3333-333333333333"
	empGhost = "99999999-9999-9999-9999-999999999999"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func fixtureEmployees() []leavehistory.Employee {
	return []leavehistory.Employee{
		{ID: empHRD, Name: "Siti Rahma", Role: "HRD"},
		{ID: empAni, Name: "Ani Lestari", Role: "STAFF"},
		{ID: empBudi, Name: "Budi Santoso", Role: "MANAGER"},
	}
}

func fixtureRequests() []leavehistory.LeaveRequest {
	return []leavehistory.LeaveRequest{
		{ID: "r1", EmployeeID: empAni, StartDate: day(2024, 1, 5), EndDate: day(2024, 1, 6), LeaveType: "ANNUAL", DurationDays: 2, Reason: "Liburan keluarga", Status: "APPROVED"},
		{ID: "r2", EmployeeID: empAni, StartDate: day(2024, 2, 10), EndDate: day(2024, 2, 10), LeaveType: "SICK", DurationDays: 1, Reason: "Demam", Status: "PENDING"},
		{ID: "r3", EmployeeID: empBudi, StartDate: day(2024, 3, 1), EndDate: day(2024, 3, 3), LeaveType: "UNPAID", DurationDays: 3, Reason: "Urusan pribadi", Status: "REJECTED", RejectionReason: strPtr("Periode tutup buku")},
		{ID: "r4", EmployeeID: empGhost, StartDate: day(2023, 12, 24), EndDate: day(2023, 12, 26), LeaveType: "ANNUAL", DurationDays: 3, Reason: "Natal", Status: "APPROVED"},
		{ID: "r5", EmployeeID: empHRD, StartDate: day(2024, 2, 10), EndDate: day(2024, 2, 12), LeaveType: "ANNUAL", DurationDays: 3, Reason: "Cuti tahunan", Status: "APPROVED"},
	}
}

func ids(reqs []leavehistory.LeaveRequest) []string {
	out := make([]string, len(reqs))
	for i, r := range reqs {
		out[i] = r.ID
	}
	return out
}

func rowIDs(rows []leavehistory.Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func viewerFor(id string) leavehistory.Viewer {
	snap := leavehistory.Snapshot{Employees: fixtureEmployees()}
	return leavehistory.ResolveViewer(snap.FindEmployee(id), nil)
}

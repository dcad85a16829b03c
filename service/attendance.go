package service

import (
	"time"

	"github.com/warp/attendance-engine/hr"
	"github.com/warp/attendance-engine/state"
	"github.com/warp/attendance-engine/timesheet"
)

// AttendanceService manages clock events and the derived time queries.
type AttendanceService struct {
	store *state.Store
	now   func() time.Time
}

func NewAttendanceService(store *state.Store) *AttendanceService {
	return &AttendanceService{store: store, now: time.Now}
}

// AddRecord creates a clock event for an existing employee. The employee
// name is snapshotted onto the record at creation time. A zero timestamp
// means "now".
func (s *AttendanceService) AddRecord(employeeID int64, action hr.Action, timestamp time.Time, notes string) (hr.AttendanceRecord, error) {
	if !action.IsValid() {
		return hr.AttendanceRecord{}, &hr.ValidationError{Field: "action", Message: "unknown attendance action"}
	}

	st := s.store.State()
	var employee *hr.Employee
	for i := range st.Employees {
		if st.Employees[i].ID == employeeID {
			employee = &st.Employees[i]
			break
		}
	}
	if employee == nil {
		return hr.AttendanceRecord{}, hr.ErrEmployeeNotFound
	}

	record := hr.NewAttendanceRecord(hr.AttendanceRecord{
		EmployeeID:   employeeID,
		EmployeeName: employee.Name,
		Action:       action,
		Timestamp:    timestamp,
		Notes:        notes,
	}, s.now())

	attendance := append(st.Attendance, record)
	s.store.Apply(state.Update{Attendance: &attendance})
	return record, nil
}

// DeleteRecord removes a clock event by id. Unknown ids are a no-op.
func (s *AttendanceService) DeleteRecord(id int64) {
	current := s.store.State().Attendance
	attendance := make([]hr.AttendanceRecord, 0, len(current))
	for _, r := range current {
		if r.ID != id {
			attendance = append(attendance, r)
		}
	}
	s.store.Apply(state.Update{Attendance: &attendance})
}

// ClearEmployeeRecords drops every clock event belonging to an employee.
// Used when an employee is removed from the roster.
func (s *AttendanceService) ClearEmployeeRecords(employeeID int64) {
	current := s.store.State().Attendance
	attendance := make([]hr.AttendanceRecord, 0, len(current))
	for _, r := range current {
		if r.EmployeeID != employeeID {
			attendance = append(attendance, r)
		}
	}
	s.store.Apply(state.Update{Attendance: &attendance})
}

// TodayRecords returns the clock events whose timestamp falls on the same
// calendar day as now.
func (s *AttendanceService) TodayRecords(now time.Time) []hr.AttendanceRecord {
	y, m, d := now.Date()
	var out []hr.AttendanceRecord
	for _, r := range s.store.State().Attendance {
		ry, rm, rd := r.Timestamp.Date()
		if ry == y && rm == m && rd == d {
			out = append(out, r)
		}
	}
	return out
}

// EmployeeRecords returns every clock event for one employee.
func (s *AttendanceService) EmployeeRecords(employeeID int64) []hr.AttendanceRecord {
	var out []hr.AttendanceRecord
	for _, r := range s.store.State().Attendance {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out
}

// LastAction returns the most recent clock event for an employee, or nil.
func (s *AttendanceService) LastAction(employeeID int64) *hr.AttendanceRecord {
	var last *hr.AttendanceRecord
	for _, r := range s.store.State().Attendance {
		if r.EmployeeID != employeeID {
			continue
		}
		r := r
		if last == nil || r.Timestamp.After(last.Timestamp) {
			last = &r
		}
	}
	return last
}

// SuggestedAction proposes the employee's natural next clock action.
func (s *AttendanceService) SuggestedAction(employeeID int64) hr.Action {
	return timesheet.SuggestedAction(s.LastAction(employeeID))
}

// HoursForEmployee returns the hours worked in one calendar month.
func (s *AttendanceService) HoursForEmployee(employeeID int64, month time.Month, year int) float64 {
	return timesheet.MonthlyWorkHours(s.store.State().Attendance, employeeID, month, year)
}

// TotalHours returns the all-time hours worked by one employee.
func (s *AttendanceService) TotalHours(employeeID int64) float64 {
	return timesheet.WorkHours(s.EmployeeRecords(employeeID))
}

// TotalLateChecks counts the employee's clock-ins that arrived past the
// tolerated start of day.
func (s *AttendanceService) TotalLateChecks(employeeID int64) int {
	settings := s.store.Settings()
	count := 0
	for _, r := range s.EmployeeRecords(employeeID) {
		if r.Action == hr.ActionClockIn &&
			timesheet.IsLate(r.Timestamp, settings.WorkStartTime, settings.LateToleranceMinutes) {
			count++
		}
	}
	return count
}

package service

import (
	"time"

	"github.com/warp/attendance-engine/hr"
	"github.com/warp/attendance-engine/state"
	"github.com/warp/attendance-engine/timesheet"
)

// AbsenceService manages approved time away from work.
type AbsenceService struct {
	store *state.Store
	now   func() time.Time
}

func NewAbsenceService(store *state.Store) *AbsenceService {
	return &AbsenceService{store: store, now: time.Now}
}

// AbsenceInput carries the fields accepted at creation time.
type AbsenceInput struct {
	EmployeeID int64
	DateStart  time.Time
	DateEnd    time.Time
	Type       hr.AbsenceType
	Reason     string
}

// Add validates the range, derives the inclusive day count, and appends the
// absence.
func (s *AbsenceService) Add(in AbsenceInput) (hr.Absence, error) {
	if !in.Type.IsValid() {
		return hr.Absence{}, &hr.ValidationError{Field: "type", Message: "unknown absence type"}
	}
	if in.DateStart.IsZero() || in.DateEnd.IsZero() {
		return hr.Absence{}, &hr.ValidationError{Field: "dateStart", Message: "start and end dates are required"}
	}
	if err := hr.DateRange(in.DateStart, in.DateEnd); err != nil {
		return hr.Absence{}, err
	}

	st := s.store.State()
	var employee *hr.Employee
	for i := range st.Employees {
		if st.Employees[i].ID == in.EmployeeID {
			employee = &st.Employees[i]
			break
		}
	}
	if employee == nil {
		return hr.Absence{}, hr.ErrEmployeeNotFound
	}

	absence := hr.NewAbsence(hr.Absence{
		EmployeeID:   in.EmployeeID,
		EmployeeName: employee.Name,
		DateStart:    in.DateStart,
		DateEnd:      in.DateEnd,
		Days:         timesheet.DaysBetween(in.DateStart, in.DateEnd),
		Type:         in.Type,
		Reason:       in.Reason,
	}, s.now())

	absences := append(st.Absences, absence)
	s.store.Apply(state.Update{Absences: &absences})
	return absence, nil
}

// Delete removes an absence by id. Unknown ids are a no-op.
func (s *AbsenceService) Delete(id int64) {
	current := s.store.State().Absences
	absences := make([]hr.Absence, 0, len(current))
	for _, a := range current {
		if a.ID != id {
			absences = append(absences, a)
		}
	}
	s.store.Apply(state.Update{Absences: &absences})
}

// ClearEmployeeRecords drops every absence belonging to an employee.
func (s *AbsenceService) ClearEmployeeRecords(employeeID int64) {
	current := s.store.State().Absences
	absences := make([]hr.Absence, 0, len(current))
	for _, a := range current {
		if a.EmployeeID != employeeID {
			absences = append(absences, a)
		}
	}
	s.store.Apply(state.Update{Absences: &absences})
}

func (s *AbsenceService) GetAll() []hr.Absence {
	return s.store.State().Absences
}

// TotalDaysOff sums the inclusive day counts of an employee's absences.
func (s *AbsenceService) TotalDaysOff(employeeID int64) int {
	total := 0
	for _, a := range s.store.State().Absences {
		if a.EmployeeID == employeeID {
			total += timesheet.DaysBetween(a.DateStart, a.DateEnd)
		}
	}
	return total
}

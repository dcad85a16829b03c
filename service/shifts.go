package service

import (
	"github.com/warp/attendance-engine/hr"
	"github.com/warp/attendance-engine/state"
)

// ShiftService manages the weekly schedule, one slot per (employee, weekday).
type ShiftService struct {
	store *state.Store
}

func NewShiftService(store *state.Store) *ShiftService {
	return &ShiftService{store: store}
}

// Set creates or replaces the shift slot for an employee on one weekday.
func (s *ShiftService) Set(employeeID int64, day hr.Weekday, startTime, endTime string) (hr.Shift, error) {
	if !day.IsValid() {
		return hr.Shift{}, &hr.ValidationError{Field: "day", Message: "must be a weekday, Monday through Friday"}
	}
	if _, err := hr.ParseClock(startTime); err != nil {
		return hr.Shift{}, err
	}
	if _, err := hr.ParseClock(endTime); err != nil {
		return hr.Shift{}, err
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
		return hr.Shift{}, hr.ErrEmployeeNotFound
	}

	shift := hr.Shift{
		EmployeeID:   employeeID,
		EmployeeName: employee.Name,
		Day:          day,
		StartTime:    startTime,
		EndTime:      endTime,
	}

	shifts := st.Shifts
	if shifts[employeeID] == nil {
		shifts[employeeID] = map[hr.Weekday]hr.Shift{}
	}
	shifts[employeeID][day] = shift
	s.store.Apply(state.Update{Shifts: &shifts})
	return shift, nil
}

// Remove clears the slot for an employee on one weekday. Absent slots are a
// no-op.
func (s *ShiftService) Remove(employeeID int64, day hr.Weekday) {
	shifts := s.store.State().Shifts
	week, ok := shifts[employeeID]
	if !ok {
		return
	}
	delete(week, day)
	if len(week) == 0 {
		delete(shifts, employeeID)
	}
	s.store.Apply(state.Update{Shifts: &shifts})
}

// EmployeeShifts returns one employee's week, keyed by weekday.
func (s *ShiftService) EmployeeShifts(employeeID int64) map[hr.Weekday]hr.Shift {
	week := s.store.State().Shifts[employeeID]
	if week == nil {
		return map[hr.Weekday]hr.Shift{}
	}
	return week
}

// All returns the full schedule.
func (s *ShiftService) All() map[int64]map[hr.Weekday]hr.Shift {
	return s.store.State().Shifts
}

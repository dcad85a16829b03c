package service

import (
	"fmt"
	"time"

	"github.com/warp/attendance-engine/hr"
	"github.com/warp/attendance-engine/payroll"
	"github.com/warp/attendance-engine/state"
	"github.com/warp/attendance-engine/timesheet"
)

// PayrollService runs payroll and manages the pending bonus/deduction
// queues. Pending entries are keyed by employee NAME (the persisted
// contract); a payroll run consumes and clears both queues for the
// employee it pays.
type PayrollService struct {
	store *state.Store
	now   func() time.Time
}

func NewPayrollService(store *state.Store) *PayrollService {
	return &PayrollService{store: store, now: time.Now}
}

// Run computes and records one payroll payment for an employee and month.
// The employee's worked hours come from the timesheet engine; the pay
// formula is payroll.Calculate. Recording the payment and clearing the
// consumed bonus/deduction queues happen in one store mutation, so
// subscribers never observe a paid employee with unconsumed entries.
func (s *PayrollService) Run(employeeID int64, month time.Month, year int) (hr.PayrollPayment, error) {
	st := s.store.State()
	settings := s.store.Settings()

	var employee *hr.Employee
	for i := range st.Employees {
		if st.Employees[i].ID == employeeID {
			employee = &st.Employees[i]
			break
		}
	}
	if employee == nil {
		return hr.PayrollPayment{}, hr.ErrEmployeeNotFound
	}

	hours := timesheet.MonthlyWorkHours(st.Attendance, employeeID, month, year)
	rate := settings.BaseHourlyRate

	result := payroll.Calculate(hours, rate,
		st.Bonuses[employee.Name],
		st.Deductions[employee.Name],
		settings)

	payment := hr.NewPayrollPayment(hr.PayrollPayment{
		EmployeeID:   employeeID,
		EmployeeName: employee.Name,
		Period:       fmt.Sprintf("%d-%d", int(month), year),
		Month:        int(month),
		Year:         year,
		Hours:        hours,
		HourlyRate:   rate,
		BaseSalary:   result.BaseSalary,
		Bonuses:      result.Bonuses,
		Deductions:   result.Deductions,
		Taxes:        result.Taxes,
		GrossSalary:  result.GrossSalary,
		NetSalary:    result.NetSalary,
	}, s.now())

	payments := append(st.Payroll, payment)
	bonuses := st.Bonuses
	deductions := st.Deductions
	delete(bonuses, employee.Name)
	delete(deductions, employee.Name)

	s.store.Apply(state.Update{
		Payroll:    &payments,
		Bonuses:    &bonuses,
		Deductions: &deductions,
	})
	return payment, nil
}

// History returns recorded payments matching the filter, most recent first.
func (s *PayrollService) History(f payroll.Filter) []hr.PayrollPayment {
	return payroll.History(s.store.State().Payroll, f)
}

// GetPayment returns one recorded payment by id.
func (s *PayrollService) GetPayment(id int64) (hr.PayrollPayment, error) {
	for _, p := range s.store.State().Payroll {
		if p.ID == id {
			return p, nil
		}
	}
	return hr.PayrollPayment{}, hr.ErrPaymentNotFound
}

// ClearEmployeePayroll drops every recorded payment for an employee.
func (s *PayrollService) ClearEmployeePayroll(employeeID int64) {
	current := s.store.State().Payroll
	payments := make([]hr.PayrollPayment, 0, len(current))
	for _, p := range current {
		if p.EmployeeID != employeeID {
			payments = append(payments, p)
		}
	}
	s.store.Apply(state.Update{Payroll: &payments})
}

// =============================================================================
// PENDING BONUSES / DEDUCTIONS
// =============================================================================

// AddBonus queues a pending bonus for the named employee.
func (s *PayrollService) AddBonus(employeeName string, amount float64, reason string) error {
	return s.addAdjustment(employeeName, amount, reason, true)
}

// AddDeduction queues a pending deduction for the named employee.
func (s *PayrollService) AddDeduction(employeeName string, amount float64, reason string) error {
	return s.addAdjustment(employeeName, amount, reason, false)
}

func (s *PayrollService) addAdjustment(employeeName string, amount float64, reason string, bonus bool) error {
	if err := hr.Required(employeeName, "employeeName"); err != nil {
		return err
	}
	if err := hr.NonNegative(amount, "amount"); err != nil {
		return err
	}

	entry := hr.Adjustment{Amount: amount, Reason: reason, Date: s.now()}
	st := s.store.State()
	if bonus {
		bonuses := st.Bonuses
		bonuses[employeeName] = append(bonuses[employeeName], entry)
		s.store.Apply(state.Update{Bonuses: &bonuses})
		return nil
	}
	deductions := st.Deductions
	deductions[employeeName] = append(deductions[employeeName], entry)
	s.store.Apply(state.Update{Deductions: &deductions})
	return nil
}

// AllBonuses returns the full pending bonus map, keyed by employee name.
func (s *PayrollService) AllBonuses() map[string][]hr.Adjustment {
	return s.store.State().Bonuses
}

// AllDeductions returns the full pending deduction map.
func (s *PayrollService) AllDeductions() map[string][]hr.Adjustment {
	return s.store.State().Deductions
}

// EmployeeBonuses returns the pending bonuses for one employee, in
// insertion order.
func (s *PayrollService) EmployeeBonuses(employeeName string) []hr.Adjustment {
	return s.store.State().Bonuses[employeeName]
}

// EmployeeDeductions returns the pending deductions for one employee.
func (s *PayrollService) EmployeeDeductions(employeeName string) []hr.Adjustment {
	return s.store.State().Deductions[employeeName]
}

// ClearBonus drops the pending bonus queue for one employee.
func (s *PayrollService) ClearBonus(employeeName string) {
	bonuses := s.store.State().Bonuses
	delete(bonuses, employeeName)
	s.store.Apply(state.Update{Bonuses: &bonuses})
}

// ClearDeduction drops the pending deduction queue for one employee.
func (s *PayrollService) ClearDeduction(employeeName string) {
	deductions := s.store.State().Deductions
	delete(deductions, employeeName)
	s.store.Apply(state.Update{Deductions: &deductions})
}

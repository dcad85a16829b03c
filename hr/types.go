/*
Package hr defines the domain model for the attendance engine.

PURPOSE:
  This package contains the entity types, enumerations, and constructors
  shared by every other package: employees, attendance records, absences,
  shifts, payroll payments, bonus/deduction adjustments, and departments.

KEY CONCEPTS IN THIS FILE (types.go):
  - Employee: Master record for a person on the roster
  - AttendanceRecord: A single immutable clock event
  - Absence: A date range of approved time away, with a derived day count
  - Shift: A weekday schedule slot for one employee
  - PayrollPayment: Immutable result of one payroll run
  - Adjustment: A pending bonus or deduction awaiting the next payroll run

DESIGN PRINCIPLES:
  1. Value semantics: Entities are plain data, copied on read. Nothing in
     this package holds references into live store state.
  2. Deterministic defaults: Constructors fill optional fields explicitly.
     No reflection over arbitrary keys.
  3. Typed enums: Actions, statuses, contract and absence types are typed
     strings with IsValid checks, validated at the service boundary.

SEE ALSO:
  - state.go: The State document aggregating all collections
  - settings.go: The Settings singleton
  - validate.go: Field validators returning typed errors
*/
package hr

import "time"

// =============================================================================
// ENUMERATIONS
// =============================================================================

// Action is the kind of clock event an attendance record carries.
type Action string

const (
	ActionClockIn    Action = "clock_in"
	ActionClockOut   Action = "clock_out"
	ActionBreakStart Action = "break_start"
	ActionBreakEnd   Action = "break_end"
)

func (a Action) IsValid() bool {
	switch a {
	case ActionClockIn, ActionClockOut, ActionBreakStart, ActionBreakEnd:
		return true
	}
	return false
}

// ContractType classifies the employment contract.
type ContractType string

const (
	ContractFullTime  ContractType = "full_time"
	ContractPartTime  ContractType = "part_time"
	ContractTemporary ContractType = "temporary"
	ContractFreelance ContractType = "freelance"
)

func (c ContractType) IsValid() bool {
	switch c {
	case ContractFullTime, ContractPartTime, ContractTemporary, ContractFreelance:
		return true
	}
	return false
}

// Status is the lifecycle state of an employee.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) IsValid() bool { return s == StatusActive || s == StatusInactive }

// AbsenceType classifies time away from work.
type AbsenceType string

const (
	AbsenceVacation    AbsenceType = "vacation"
	AbsenceSick        AbsenceType = "sick"
	AbsencePersonal    AbsenceType = "personal"
	AbsencePaidLeave   AbsenceType = "paid_leave"
	AbsenceUnpaidLeave AbsenceType = "unpaid_leave"
)

func (a AbsenceType) IsValid() bool {
	switch a {
	case AbsenceVacation, AbsenceSick, AbsencePersonal, AbsencePaidLeave, AbsenceUnpaidLeave:
		return true
	}
	return false
}

// Weekday is a scheduling day. Shifts cover the five working days only.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
)

// Weekdays returns the scheduling days in week order.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}
}

func (w Weekday) IsValid() bool {
	switch w {
	case Monday, Tuesday, Wednesday, Thursday, Friday:
		return true
	}
	return false
}

// =============================================================================
// ENTITIES
// =============================================================================

// Employee is the master roster record.
type Employee struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Position     string       `json:"position"`
	Department   string       `json:"department"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	StartDate    string       `json:"startDate"`
	Salary       float64      `json:"salary"`
	ContractType ContractType `json:"contractType"`
	Status       Status       `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    *time.Time   `json:"updatedAt"`
}

// NewEmployee fills defaults for zero-valued optional fields.
// Name, position and department are required and validated by the
// employee service before this is called.
func NewEmployee(e Employee, now time.Time) Employee {
	if e.ID == 0 {
		e.ID = NewID()
	}
	if e.ContractType == "" {
		e.ContractType = ContractFullTime
	}
	if e.Status == "" {
		e.Status = StatusActive
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	return e
}

// AttendanceRecord is a single clock event. Records are immutable once
// created; the only mutation is deletion.
type AttendanceRecord struct {
	ID           int64     `json:"id"`
	EmployeeID   int64     `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	Action       Action    `json:"action"`
	Timestamp    time.Time `json:"timestamp"`
	Notes        string    `json:"notes"`
}

func NewAttendanceRecord(r AttendanceRecord, now time.Time) AttendanceRecord {
	if r.ID == 0 {
		r.ID = NewID()
	}
	if r.Timestamp.IsZero() {
		r.Timestamp = now
	}
	return r
}

// Absence is an approved date range away from work. Days is the inclusive
// day count, derived at creation time by the absence service.
type Absence struct {
	ID           int64       `json:"id"`
	EmployeeID   int64       `json:"employeeId"`
	EmployeeName string      `json:"employeeName"`
	DateStart    time.Time   `json:"dateStart"`
	DateEnd      time.Time   `json:"dateEnd"`
	Days         int         `json:"days"`
	Type         AbsenceType `json:"type"`
	Reason       string      `json:"reason"`
	CreatedAt    time.Time   `json:"createdAt"`
}

func NewAbsence(a Absence, now time.Time) Absence {
	if a.ID == 0 {
		a.ID = NewID()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	return a
}

// Shift is one weekday slot of an employee's weekly schedule.
// Times are "HH:MM" strings, validated at the service boundary.
type Shift struct {
	EmployeeID   int64   `json:"employeeId"`
	EmployeeName string  `json:"employeeName"`
	Day          Weekday `json:"day"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
}

// PayrollPayment is the immutable record of one payroll run.
type PayrollPayment struct {
	ID           int64     `json:"id"`
	EmployeeID   int64     `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	Period       string    `json:"period"`
	Month        int       `json:"month"`
	Year         int       `json:"year"`
	Hours        float64   `json:"hours"`
	HourlyRate   float64   `json:"hourlyRate"`
	BaseSalary   float64   `json:"baseSalary"`
	Bonuses      float64   `json:"bonuses"`
	Deductions   float64   `json:"deductions"`
	Taxes        float64   `json:"taxes"`
	GrossSalary  float64   `json:"grossSalary"`
	NetSalary    float64   `json:"netSalary"`
	CreatedAt    time.Time `json:"createdAt"`
}

func NewPayrollPayment(p PayrollPayment, now time.Time) PayrollPayment {
	if p.ID == 0 {
		p.ID = NewID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	return p
}

// Adjustment is a pending bonus or deduction entry. Entries queue up per
// employee in insertion order and are consumed (cleared) by the next
// payroll run for that employee.
type Adjustment struct {
	Amount float64   `json:"amount"`
	Reason string    `json:"reason"`
	Date   time.Time `json:"date"`
}

// Department groups employees. Employee.Department references it by name,
// not by id; see the state package notes on name keying.
type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func NewDepartment(d Department) Department {
	if d.ID == 0 {
		d.ID = NewID()
	}
	return d
}

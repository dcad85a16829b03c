/*
dto.go - Request/response data structures for the HTTP API

PURPOSE:
  JSON shapes exchanged with UI collaborators. Requests decode into these
  and are translated to service inputs; entities are returned as-is (their
  json tags define the wire contract).
*/
package api

import (
	"time"

	"github.com/warp/attendance-engine/hr"
)

// CreateEmployeeRequest mirrors service.EmployeeInput.
type CreateEmployeeRequest struct {
	Name         string          `json:"name"`
	Position     string          `json:"position"`
	Department   string          `json:"department"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	StartDate    string          `json:"startDate"`
	Salary       float64         `json:"salary"`
	ContractType hr.ContractType `json:"contractType"`
	Status       hr.Status       `json:"status"`
}

// UpdateEmployeeRequest is a partial update; absent fields stay untouched.
type UpdateEmployeeRequest struct {
	Name         *string          `json:"name"`
	Position     *string          `json:"position"`
	Department   *string          `json:"department"`
	Email        *string          `json:"email"`
	Phone        *string          `json:"phone"`
	StartDate    *string          `json:"startDate"`
	Salary       *float64         `json:"salary"`
	ContractType *hr.ContractType `json:"contractType"`
	Status       *hr.Status       `json:"status"`
}

// CreateAttendanceRequest records one clock event. A nil timestamp means
// "now".
type CreateAttendanceRequest struct {
	EmployeeID int64      `json:"employeeId"`
	Action     hr.Action  `json:"action"`
	Timestamp  *time.Time `json:"timestamp"`
	Notes      string     `json:"notes"`
}

// CreateAbsenceRequest records time away. Dates are "YYYY-MM-DD".
type CreateAbsenceRequest struct {
	EmployeeID int64          `json:"employeeId"`
	DateStart  string         `json:"dateStart"`
	DateEnd    string         `json:"dateEnd"`
	Type       hr.AbsenceType `json:"type"`
	Reason     string         `json:"reason"`
}

// SetShiftRequest sets one weekday slot.
type SetShiftRequest struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// DepartmentRequest creates or renames a department.
type DepartmentRequest struct {
	Name string `json:"name"`
}

// RunPayrollRequest triggers one payroll run.
type RunPayrollRequest struct {
	EmployeeID int64 `json:"employeeId"`
	Month      int   `json:"month"`
	Year       int   `json:"year"`
}

// AdjustmentRequest queues a pending bonus or deduction.
type AdjustmentRequest struct {
	EmployeeName string  `json:"employeeName"`
	Amount       float64 `json:"amount"`
	Reason       string  `json:"reason"`
}

// ErrorResponse carries a rejected operation's message.
type ErrorResponse struct {
	Error string `json:"error"`
}

package hr

import "errors"

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrEmployeeNotFound is returned when an operation references an
	// employee id that is not on the roster. Raised at the point of lookup,
	// before any calculation proceeds.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrDepartmentNotFound is returned when a department id does not exist.
	ErrDepartmentNotFound = errors.New("department not found")

	// ErrPaymentNotFound is returned when a payroll payment id does not exist.
	ErrPaymentNotFound = errors.New("payment not found")
)

// IsNotFound reports whether the error indicates a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEmployeeNotFound) ||
		errors.Is(err, ErrDepartmentNotFound) ||
		errors.Is(err, ErrPaymentNotFound)
}

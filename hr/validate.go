/*
validate.go - Field validators returning typed errors

PURPOSE:
  Validation at the service boundary. Validators return a *ValidationError
  carrying the offending field and a human-readable message; they never
  panic. The UI collaborator surfaces the message and the current action
  stops - validation failures are user errors, not system errors.

SEE ALSO:
  - errors.go: Sentinel errors for reference failures
  - service/*: Callers of these validators
*/
package hr

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ValidationError reports a rejected field. Check with errors.As or the
// IsValidation helper.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Required rejects empty or whitespace-only values.
func Required(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	return nil
}

// ValidEmail rejects malformed email addresses. Empty values pass; pair
// with Required when the field is mandatory.
func ValidEmail(value string) error {
	if value == "" {
		return nil
	}
	if !emailPattern.MatchString(value) {
		return &ValidationError{Field: "email", Message: "invalid email format"}
	}
	return nil
}

// NonNegative rejects negative amounts.
func NonNegative(value float64, field string) error {
	if value < 0 {
		return &ValidationError{Field: field, Message: "cannot be negative"}
	}
	return nil
}

// DateRange rejects ranges where the end precedes the start.
func DateRange(start, end time.Time) error {
	if end.Before(start) {
		return &ValidationError{Field: "dateEnd", Message: "end date cannot be before start date"}
	}
	return nil
}

// ParseClock parses an "HH:MM" wall-clock string into minutes of day.
func ParseClock(value string) (int, error) {
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return 0, &ValidationError{Field: "time", Message: "must be in HH:MM format"}
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

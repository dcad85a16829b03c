package payroll

import (
	"sort"
	"time"

	"github.com/warp/attendance-engine/hr"
)

// =============================================================================
// PAYMENT HISTORY
// =============================================================================

// Filter narrows payment history. Nil fields match everything. Month and
// year are numeric (1-12 / four-digit); employee ids compare numerically.
type Filter struct {
	Month      *time.Month
	Year       *int
	EmployeeID *int64
}

// History returns the payments matching the filter, most recent first
// (descending CreatedAt). The input is not modified.
func History(payments []hr.PayrollPayment, f Filter) []hr.PayrollPayment {
	out := make([]hr.PayrollPayment, 0, len(payments))
	for _, p := range payments {
		if f.Month != nil && time.Month(p.Month) != *f.Month {
			continue
		}
		if f.Year != nil && p.Year != *f.Year {
			continue
		}
		if f.EmployeeID != nil && p.EmployeeID != *f.EmployeeID {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

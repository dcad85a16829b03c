package payroll_test

import (
	"testing"
	"time"

	"github.com/warp/attendance-engine/hr"
	"github.com/warp/attendance-engine/payroll"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func testSettings() hr.Settings {
	s := hr.DefaultSettings()
	s.TaxPercentage = 13
	s.OvertimeBonus = 5000
	s.OvertimeThreshold = 160
	return s
}

func adjustments(amounts ...float64) []hr.Adjustment {
	out := make([]hr.Adjustment, 0, len(amounts))
	for _, a := range amounts {
		out = append(out, hr.Adjustment{Amount: a})
	}
	return out
}

// =============================================================================
// FORMULA
// =============================================================================

func TestCalculate_Formula(t *testing.T) {
	// GIVEN: 160 hours at 1500/h, a 500 bonus, a 200 deduction, 13% tax,
	// overtime threshold 160 (not exceeded)
	res := payroll.Calculate(160, 1500, adjustments(500), adjustments(200), testSettings())

	// THEN: every step of the formula holds
	if res.BaseSalary != 240000 {
		t.Errorf("BaseSalary = %v, want 240000", res.BaseSalary)
	}
	if res.Bonuses != 500 {
		t.Errorf("Bonuses = %v, want 500", res.Bonuses)
	}
	if res.Deductions != 200 {
		t.Errorf("Deductions = %v, want 200", res.Deductions)
	}
	if res.GrossSalary != 240500 {
		t.Errorf("GrossSalary = %v, want 240500", res.GrossSalary)
	}
	if res.Taxes != 31265 {
		t.Errorf("Taxes = %v, want 31265", res.Taxes)
	}
	if res.NetSalary != 209035 {
		t.Errorf("NetSalary = %v, want 209035", res.NetSalary)
	}
}

func TestCalculate_OvertimeTrigger(t *testing.T) {
	// GIVEN: one hour past the overtime threshold
	res := payroll.Calculate(161, 1500, adjustments(500), nil, testSettings())

	// THEN: the overtime bonus joins the manual bonuses
	if res.Bonuses != 5500 {
		t.Errorf("Bonuses = %v, want 5500 (manual 500 + overtime 5000)", res.Bonuses)
	}
}

func TestCalculate_AtThreshold_NoOvertime(t *testing.T) {
	// Exactly at the threshold does not trigger; the comparison is strict.
	res := payroll.Calculate(160, 1500, nil, nil, testSettings())
	if res.Bonuses != 0 {
		t.Errorf("Bonuses = %v, want 0", res.Bonuses)
	}
}

func TestCalculate_EmptyInputs(t *testing.T) {
	res := payroll.Calculate(0, 1500, nil, nil, testSettings())
	if res.BaseSalary != 0 || res.GrossSalary != 0 || res.Taxes != 0 || res.NetSalary != 0 {
		t.Errorf("zero hours must yield a zero result, got %+v", res)
	}
}

func TestCalculate_MultipleAdjustments(t *testing.T) {
	// Adjustment lists aggregate by simple summation.
	res := payroll.Calculate(10, 100, adjustments(100, 250, 50), adjustments(30, 20), testSettings())
	if res.Bonuses != 400 {
		t.Errorf("Bonuses = %v, want 400", res.Bonuses)
	}
	if res.Deductions != 50 {
		t.Errorf("Deductions = %v, want 50", res.Deductions)
	}
}

// =============================================================================
// HISTORY
// =============================================================================

func payment(id, employeeID int64, month, year int, created time.Time) hr.PayrollPayment {
	return hr.PayrollPayment{
		ID:         id,
		EmployeeID: employeeID,
		Month:      month,
		Year:       year,
		CreatedAt:  created,
	}
}

func TestHistory_FiltersAndOrder(t *testing.T) {
	base := time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)
	payments := []hr.PayrollPayment{
		payment(1, 10, 3, 2025, base),
		payment(2, 10, 4, 2025, base.Add(time.Hour)),
		payment(3, 20, 3, 2025, base.Add(2*time.Hour)),
		payment(4, 10, 3, 2024, base.Add(3*time.Hour)),
	}

	march := time.March
	year := 2025
	emp := int64(10)

	got := payroll.History(payments, payroll.Filter{Month: &march, Year: &year, EmployeeID: &emp})
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("filtered history = %+v, want only payment 1", got)
	}

	// No filter: everything, most recent first.
	all := payroll.History(payments, payroll.Filter{})
	if len(all) != 4 {
		t.Fatalf("unfiltered history has %d entries, want 4", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].CreatedAt.After(all[i-1].CreatedAt) {
			t.Fatalf("history not sorted descending at index %d", i)
		}
	}
}

func TestHistory_DoesNotMutateInput(t *testing.T) {
	base := time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)
	payments := []hr.PayrollPayment{
		payment(1, 10, 3, 2025, base),
		payment(2, 10, 4, 2025, base.Add(time.Hour)),
	}

	payroll.History(payments, payroll.Filter{})
	if payments[0].ID != 1 || payments[1].ID != 2 {
		t.Fatal("History reordered its input slice")
	}
}

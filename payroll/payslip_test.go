package payroll_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/warp/attendance-engine/hr"
	"github.com/warp/attendance-engine/payroll"
)

func TestPayslip_RendersPDF(t *testing.T) {
	p := hr.PayrollPayment{
		ID:           1,
		EmployeeID:   10,
		EmployeeName: "Jordan Doe",
		Month:        3,
		Year:         2025,
		Hours:        160,
		HourlyRate:   1500,
		BaseSalary:   240000,
		Bonuses:      500,
		Deductions:   200,
		Taxes:        31265,
		GrossSalary:  240500,
		NetSalary:    209035,
		CreatedAt:    time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	if err := payroll.Payslip(&buf, p, hr.DefaultSettings()); err != nil {
		t.Fatalf("Payslip failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output does not look like a PDF document")
	}
}

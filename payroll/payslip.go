package payroll

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/warp/attendance-engine/hr"
)

// =============================================================================
// PAYSLIP PDF
// =============================================================================

// Payslip renders a one-page PDF payslip for a recorded payment and writes
// it to w.
func Payslip(w io.Writer, p hr.PayrollPayment, settings hr.Settings) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, settings.CompanyName)
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", p.EmployeeName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %02d/%d", p.Month, p.Year))
	pdf.Ln(10)

	pdf.Cell(0, 8, fmt.Sprintf("Hours worked: %.2f at %.2f/h", p.Hours, p.HourlyRate))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Base salary: %.2f", p.BaseSalary))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Bonuses: %.2f", p.Bonuses))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Gross: %.2f", p.GrossSalary))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Taxes: %.2f", p.Taxes))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Deductions: %.2f", p.Deductions))
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Net: %.2f", p.NetSalary))

	return pdf.Output(w)
}

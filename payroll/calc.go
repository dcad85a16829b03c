/*
Package payroll computes pay from worked hours and pending adjustments.

PURPOSE:
  Deterministic payroll math: one Result from (hours, rate, pending
  bonuses, pending deductions, settings). Calculate is a pure function;
  consuming the pending adjustment queues afterwards is the payroll
  service's job, not this package's.

FORMULA:
  baseSalary    = hours * hourlyRate
  overtimeBonus = settings.OvertimeBonus when hours > settings.OvertimeThreshold
  bonuses       = sum(pending bonuses) + overtimeBonus
  deductions    = sum(pending deductions)
  grossSalary   = baseSalary + bonuses
  taxes         = grossSalary * taxPercentage / 100
  netSalary     = grossSalary - taxes - deductions

PRECISION:
  Internal arithmetic uses decimal.Decimal so aggregation does not pick up
  binary floating-point drift; results are exposed as float64 currency
  amounts, unrounded. Display rounding is the caller's concern.
*/
package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/warp/attendance-engine/hr"
)

// Result is one computed payroll outcome. All amounts are unrounded.
type Result struct {
	BaseSalary  float64 `json:"baseSalary"`
	Bonuses     float64 `json:"bonuses"`
	Deductions  float64 `json:"deductions"`
	Taxes       float64 `json:"taxes"`
	GrossSalary float64 `json:"grossSalary"`
	NetSalary   float64 `json:"netSalary"`
}

// Calculate computes one payroll result. Pure: it reads nothing and
// mutates nothing outside its arguments.
func Calculate(hours, hourlyRate float64, bonuses, deductions []hr.Adjustment, settings hr.Settings) Result {
	base := decimal.NewFromFloat(hours).Mul(decimal.NewFromFloat(hourlyRate))

	bonusTotal := sumAmounts(bonuses)
	if hours > settings.OvertimeThreshold {
		bonusTotal = bonusTotal.Add(decimal.NewFromFloat(settings.OvertimeBonus))
	}
	deductionTotal := sumAmounts(deductions)

	gross := base.Add(bonusTotal)
	taxes := gross.Mul(decimal.NewFromFloat(settings.TaxPercentage)).Div(decimal.NewFromInt(100))
	net := gross.Sub(taxes).Sub(deductionTotal)

	return Result{
		BaseSalary:  base.InexactFloat64(),
		Bonuses:     bonusTotal.InexactFloat64(),
		Deductions:  deductionTotal.InexactFloat64(),
		Taxes:       taxes.InexactFloat64(),
		GrossSalary: gross.InexactFloat64(),
		NetSalary:   net.InexactFloat64(),
	}
}

func sumAmounts(entries []hr.Adjustment) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(decimal.NewFromFloat(e.Amount))
	}
	return total
}

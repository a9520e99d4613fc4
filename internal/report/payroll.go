package report

import "github.com/shopspring/decimal"

// perDaySalary divides the monthly basic salary by the calendar days in
// the month, rounded to 2 decimal places. The divisor is fixed: week-offs
// and holidays are implicitly paid under a monthly salary model.
func perDaySalary(basicMonthly decimal.Decimal, totalDays int) decimal.Decimal {
	return basicMonthly.DivRound(decimal.NewFromInt(int64(totalDays)), 2)
}

// netSalary pays every day except unmarked absences: week-offs,
// holidays, and recorded leaves all count as paid days.
func netSalary(perDay decimal.Decimal, paidDays int) decimal.Decimal {
	return perDay.Mul(decimal.NewFromInt(int64(paidDays)))
}

// finalPayable applies caller-supplied ad hoc deductions. The result is
// deliberately not clamped at zero: a negative payable is a business
// anomaly for manual review, not a computation failure.
func finalPayable(net, advance, latePenalty decimal.Decimal) decimal.Decimal {
	return net.Sub(advance).Sub(latePenalty)
}

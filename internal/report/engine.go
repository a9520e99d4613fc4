package report

import (
	"sort"
	"time"

	reporterrors "go-attendance/internal/report/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Mode string

const (
	ModeAttendance Mode = "attendance"
	ModeLate       Mode = "late"
	ModeTotals     Mode = "totals"
)

// DeductionInput carries the two caller-supplied ad hoc amounts of
// totals mode. They are transient per-request values, never persisted.
type DeductionInput struct {
	Advance     decimal.Decimal
	LatePenalty decimal.Decimal
}

type Options struct {
	Mode         Mode
	GraceMinutes int
	Deductions   map[uuid.UUID]DeductionInput
	IncludeDays  bool
}

// Result is the full outcome of one reconciliation run. Rows are sorted
// by employee code and anomalies by employee/date/detail, so identical
// snapshots always produce byte-identical output.
type Result struct {
	Rows      []ReportRow
	Anomalies []Anomaly
	Days      map[string][]DayResult
}

// Compute reconciles one month for one company. It is pure: no I/O, no
// shared state, safe to run for many companies or months in parallel.
// Validation failures reject the whole run before anything is computed.
func Compute(snap Snapshot, opts Options) (Result, error) {
	if err := validate(snap, opts); err != nil {
		return Result{}, err
	}

	anomalies := newAnomalySink()
	c := newClassifier(snap, opts.GraceMinutes, anomalies)
	allowances := leaveAllowanceByEmployee(snap.LeavePolicies)

	roster := make([]RosterEntry, len(snap.Roster))
	copy(roster, snap.Roster)
	sort.Slice(roster, func(i, j int) bool { return roster[i].Code < roster[j].Code })

	result := Result{Rows: make([]ReportRow, 0, len(roster))}
	if opts.IncludeDays {
		result.Days = make(map[string][]DayResult, len(roster))
	}

	for _, entry := range roster {
		totals := aggregateMonth(c, entry.EmployeeID, snap.Year, snap.Month, opts.IncludeDays, anomalies)

		paidDays := totals.WeekOffs + totals.Holidays + totals.Leaves + totals.PresentDays
		perDay := perDaySalary(entry.BasicSalary, totals.TotalDays)
		net := netSalary(perDay, paidDays)

		row := ReportRow{
			EmployeeID:      entry.EmployeeID.String(),
			Code:            entry.Code,
			FullName:        entry.FullName,
			Department:      entry.Department,
			TotalDays:       totals.TotalDays,
			WeekOffs:        totals.WeekOffs,
			Holidays:        totals.Holidays,
			Leaves:          totals.Leaves,
			Absences:        totals.Absences,
			PresentDays:     totals.PresentDays,
			WorkingDays:     totals.PresentDays,
			LateDays:        totals.LateDays,
			DoubleDutyCount: countSubstituteDuties(snap.LeaveEntries, entry.EmployeeID),
			LeaveAllowance:  allowances[entry.EmployeeID],
			BasicSalary:     entry.BasicSalary.StringFixed(2),
			PerDaySalary:    perDay.StringFixed(2),
			Salary:          net.StringFixed(2),
		}

		if opts.Mode == ModeTotals {
			d := opts.Deductions[entry.EmployeeID]
			advance := d.Advance.StringFixed(2)
			penalty := d.LatePenalty.StringFixed(2)
			payable := finalPayable(net, d.Advance, d.LatePenalty).StringFixed(2)
			row.AdvanceDeduction = &advance
			row.LatePenalty = &penalty
			row.FinalPayable = &payable
		}

		if opts.Mode == ModeLate && totals.LateDays == 0 {
			continue
		}

		if opts.IncludeDays {
			result.Days[entry.EmployeeID.String()] = totals.Days
		}
		result.Rows = append(result.Rows, row)
	}

	result.Anomalies = anomalies.sorted()
	return result, nil
}

func validate(snap Snapshot, opts Options) error {
	if snap.Year < 1 {
		return reporterrors.ErrInvalidYear
	}
	if snap.Month < time.January || snap.Month > time.December {
		return reporterrors.ErrInvalidMonth
	}
	if opts.GraceMinutes < 0 {
		return reporterrors.ErrInvalidGracePeriod
	}
	switch opts.Mode {
	case ModeAttendance, ModeLate, ModeTotals:
	default:
		return reporterrors.ErrInvalidMode
	}
	if opts.Mode == ModeTotals {
		known := make(map[uuid.UUID]struct{}, len(snap.Roster))
		for _, entry := range snap.Roster {
			known[entry.EmployeeID] = struct{}{}
		}
		for employeeID, d := range opts.Deductions {
			if _, ok := known[employeeID]; !ok {
				return reporterrors.ErrUnknownDeductionEmployee
			}
			if d.Advance.IsNegative() || d.LatePenalty.IsNegative() {
				return reporterrors.ErrInvalidDeduction
			}
		}
	}
	return nil
}

// leaveAllowanceByEmployee unions leave-group memberships: when an
// employee is in several groups the largest allowance is reported.
func leaveAllowanceByEmployee(policies []LeavePolicy) map[uuid.UUID]int {
	out := make(map[uuid.UUID]int)
	for _, policy := range policies {
		for _, member := range policy.Members {
			if policy.MonthlyAllowance > out[member] {
				out[member] = policy.MonthlyAllowance
			}
		}
	}
	return out
}

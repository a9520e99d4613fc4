package report_test

import (
	"testing"
	"time"

	"go-attendance/internal/report"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2026, time.September, d, 0, 0, 0, 0, time.UTC)
}

func punchAt(employeeID uuid.UUID, d, hour, minute int) report.PunchEntry {
	in := time.Date(2026, time.September, d, hour, minute, 0, 0, time.UTC)
	out := in.Add(9 * time.Hour)
	return report.PunchEntry{
		EmployeeID: employeeID,
		Date:       day(d),
		PunchIn:    in,
		PunchOut:   &out,
		Status:     "PRESENT",
	}
}

// baseSnapshot is September 2026 (30 days, Sundays on 6/13/20/27) with
// one employee on a 09:00 shift, Sundays off, one holiday on the 17th.
func baseSnapshot(employeeID uuid.UUID) report.Snapshot {
	shiftGroupID := uuid.New()
	snap := report.Snapshot{
		CompanyID: uuid.New(),
		Year:      2026,
		Month:     time.September,
		Roster: []report.RosterEntry{
			{
				EmployeeID:  employeeID,
				Code:        "EMP-001",
				FullName:    "Asha Verma",
				Department:  "Operations",
				BasicSalary: decimal.NewFromInt(30000),
			},
		},
		WeekOffPolicies: []report.WeekOffPolicy{
			{GroupID: uuid.New(), Weekdays: []int{0}, Members: []uuid.UUID{employeeID}},
		},
		HolidayPolicies: []report.HolidayPolicy{
			{
				GroupID: uuid.New(),
				Dates:   []report.HolidayDate{{Date: day(17), Label: "Founders Day"}},
				Members: []uuid.UUID{employeeID},
			},
		},
		LeavePolicies: []report.LeavePolicy{
			{GroupID: uuid.New(), MonthlyAllowance: 2, Members: []uuid.UUID{employeeID}},
		},
		ShiftPolicies: []report.ShiftPolicy{
			{GroupID: shiftGroupID, StartMinute: 9 * 60, EndMinute: 18 * 60, Members: []uuid.UUID{employeeID}},
		},
	}

	for d := 1; d <= 30; d++ {
		date := day(d)
		if date.Weekday() == time.Sunday || d == 17 {
			continue
		}
		snap.Punches = append(snap.Punches, punchAt(employeeID, d, 8, 55))
	}
	return snap
}

func computeOne(t *testing.T, snap report.Snapshot, opts report.Options) report.ReportRow {
	t.Helper()
	result, err := report.Compute(snap, opts)
	assert.NoError(t, err)
	assert.Len(t, result.Rows, 1)
	return result.Rows[0]
}

var attendanceOpts = report.Options{Mode: report.ModeAttendance, GraceMinutes: 10}

func TestCompute_CountsSumToDaysInMonth(t *testing.T) {
	employeeID := uuid.New()
	snap := baseSnapshot(employeeID)

	// Punch some days away and add leaves so every category is present.
	snap.Punches = snap.Punches[:len(snap.Punches)-3]
	snap.LeaveEntries = []report.LeaveEntry{
		{RecordID: uuid.New(), EmployeeID: employeeID, Date: day(2)},
	}

	row := computeOne(t, snap, attendanceOpts)

	assert.Equal(t, 30, row.TotalDays)
	assert.Equal(t, row.TotalDays,
		row.WeekOffs+row.Holidays+row.Leaves+row.PresentDays+row.Absences)
}

func TestCompute_HolidayOutranksLeave(t *testing.T) {
	employeeID := uuid.New()
	snap := baseSnapshot(employeeID)
	snap.LeaveEntries = []report.LeaveEntry{
		{RecordID: uuid.New(), EmployeeID: employeeID, Date: day(17)},
	}

	row := computeOne(t, snap, attendanceOpts)

	assert.Equal(t, 1, row.Holidays)
	assert.Equal(t, 0, row.Leaves)
}

func TestCompute_HolidayOutranksWeekOff(t *testing.T) {
	employeeID := uuid.New()
	snap := baseSnapshot(employeeID)
	// Move the holiday onto a Sunday.
	snap.HolidayPolicies[0].Dates = []report.HolidayDate{{Date: day(6), Label: "On a Sunday"}}
	// The 17th becomes a plain working day again.
	snap.Punches = append(snap.Punches, punchAt(employeeID, 17, 8, 55))

	row := computeOne(t, snap, attendanceOpts)

	assert.Equal(t, 1, row.Holidays)
	assert.Equal(t, 3, row.WeekOffs)
}

func TestCompute_WeekOffOutranksLeaveAndPunch(t *testing.T) {
	employeeID := uuid.New()
	snap := baseSnapshot(employeeID)
	snap.LeaveEntries = []report.LeaveEntry{
		{RecordID: uuid.New(), EmployeeID: employeeID, Date: day(6)},
	}
	snap.Punches = append(snap.Punches, punchAt(employeeID, 6, 9, 0))

	row := computeOne(t, snap, attendanceOpts)

	assert.Equal(t, 4, row.WeekOffs)
	assert.Equal(t, 0, row.Leaves)
}

func TestCompute_WeekOffIsUnionAcrossGroups(t *testing.T) {
	employeeID := uuid.New()
	snap := baseSnapshot(employeeID)
	// A second group adds Saturdays; the effective set is Sun+Sat.
	snap.WeekOffPolicies = append(snap.WeekOffPolicies, report.WeekOffPolicy{
		GroupID: uuid.New(), Weekdays: []int{6}, Members: []uuid.UUID{employeeID},
	})

	row := computeOne(t, snap, attendanceOpts)

	// September 2026: 4 Sundays + 4 Saturdays.
	assert.Equal(t, 8, row.WeekOffs)
}

func TestCompute_EmployeeInNoGroupsNeverOff(t *testing.T) {
	employeeID := uuid.New()
	snap := baseSnapshot(employeeID)
	snap.WeekOffPolicies = nil
	snap.HolidayPolicies = nil

	row := computeOne(t, snap, attendanceOpts)

	assert.Equal(t, 0, row.WeekOffs)
	assert.Equal(t, 0, row.Holidays)
}

func TestCompute_Deterministic(t *testing.T) {
	employeeID := uuid.New()
	snap := baseSnapshot(employeeID)
	snap.LeaveEntries = []report.LeaveEntry{
		{RecordID: uuid.New(), EmployeeID: employeeID, Date: day(3)},
	}

	opts := report.Options{Mode: report.ModeAttendance, GraceMinutes: 10, IncludeDays: true}
	first, err := report.Compute(snap, opts)
	assert.NoError(t, err)
	second, err := report.Compute(snap, opts)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCompute_GraceBoundary(t *testing.T) {
	employeeID := uuid.New()

	t.Run("exactly at shift start plus grace is not late", func(t *testing.T) {
		snap := baseSnapshot(employeeID)
		snap.Punches[0] = punchAt(employeeID, 1, 9, 10)

		row := computeOne(t, snap, attendanceOpts)
		assert.Equal(t, 0, row.LateDays)
	})

	t.Run("one minute past grace is late", func(t *testing.T) {
		snap := baseSnapshot(employeeID)
		snap.Punches[0] = punchAt(employeeID, 1, 9, 11)

		row := computeOne(t, snap, attendanceOpts)
		assert.Equal(t, 1, row.LateDays)
	})
}

func TestCompute_UndefinedShiftNeverLate(t *testing.T) {
	employeeID := uuid.New()
	snap := baseSnapshot(employeeID)
	snap.ShiftPolicies = nil
	snap.Punches[0] = punchAt(employeeID, 1, 13, 45)

	row := computeOne(t, snap, attendanceOpts)

	assert.Equal(t, 0, row.LateDays)
	assert.Greater(t, row.PresentDays, 0)
}

func TestCompute_RotationOverridesBaseShift(t *testing.T) {
	employeeID := uuid.New()
	snap := baseSnapshot(employeeID)

	nightGroupID := uuid.New()
	snap.ShiftPolicies = append(snap.ShiftPolicies, report.ShiftPolicy{
		GroupID: nightGroupID, StartMinute: 14 * 60, EndMinute: 22 * 60,
	})
	snap.ShiftOverrides = []report.ShiftOverride{
		{
			RotationID:   uuid.New(),
			EmployeeID:   employeeID,
			ShiftGroupID: nightGroupID,
			StartDate:    day(1),
			EndDate:      day(1),
		},
	}
	// 09:30 against a 14:00 rotated start is early, not late.
	snap.Punches[0] = punchAt(employeeID, 1, 9, 30)

	row := computeOne(t, snap, attendanceOpts)
	assert.Equal(t, 0, row.LateDays)
}

func TestCompute_OverlappingRotationsLatestStartWins(t *testing.T) {
	employeeID := uuid.New()
	snap := baseSnapshot(employeeID)

	earlyGroupID := uuid.New()
	lateGroupID := uuid.New()
	snap.ShiftPolicies = append(snap.ShiftPolicies,
		report.ShiftPolicy{GroupID: earlyGroupID, StartMinute: 6 * 60, EndMinute: 14 * 60},
		report.ShiftPolicy{GroupID: lateGroupID, StartMinute: 14 * 60, EndMinute: 22 * 60},
	)
	snap.ShiftOverrides = []report.ShiftOverride{
		{
			RotationID:   uuid.New(),
			EmployeeID:   employeeID,
			ShiftGroupID: earlyGroupID,
			StartDate:    day(1),
			EndDate:      day(10),
		},
		{
			RotationID:   uuid.New(),
			EmployeeID:   employeeID,
			ShiftGroupID: lateGroupID,
			StartDate:    day(2),
			EndDate:      day(5),
		},
	}
	// Day 3 falls inside both windows; the later-starting rotation (the
	// 14:00 shift) must win, so an 08:55 punch is not late.
	result, err := report.Compute(snap, attendanceOpts)
	assert.NoError(t, err)
	assert.Len(t, result.Rows, 1)
	assert.Equal(t, 0, result.Rows[0].LateDays)

	found := false
	for _, a := range result.Anomalies {
		if a.Detail == "overlapping shift rotations" && a.EmployeeID == employeeID.String() {
			found = true
		}
	}
	assert.True(t, found, "overlap must surface as an anomaly")
}

func TestCompute_PayrollFullMonth(t *testing.T) {
	employeeID := uuid.New()
	snap := baseSnapshot(employeeID)

	row := computeOne(t, snap, attendanceOpts)

	assert.Equal(t, 4, row.WeekOffs)
	assert.Equal(t, 1, row.Holidays)
	assert.Equal(t, 0, row.Leaves)
	assert.Equal(t, 0, row.Absences)
	assert.Equal(t, 25, row.PresentDays)
	assert.Equal(t, row.PresentDays, row.WorkingDays)
	assert.Equal(t, "1000.00", row.PerDaySalary)
	assert.Equal(t, "30000.00", row.Salary)
}

func TestCompute_PayrollTwoAbsences(t *testing.T) {
	employeeID := uuid.New()
	snap := baseSnapshot(employeeID)
	snap.Punches = snap.Punches[:len(snap.Punches)-2]

	row := computeOne(t, snap, attendanceOpts)

	assert.Equal(t, 2, row.Absences)
	assert.Equal(t, "28000.00", row.Salary)
}

func TestCompute_SubstituteDutyCount(t *testing.T) {
	employeeID := uuid.New()
	snap := baseSnapshot(employeeID)

	for _, d := range []int{3, 9, 22} {
		colleague := uuid.New()
		sub := employeeID
		snap.LeaveEntries = append(snap.LeaveEntries, report.LeaveEntry{
			RecordID:             uuid.New(),
			EmployeeID:           colleague,
			Date:                 day(d),
			SubstituteEmployeeID: &sub,
		})
	}

	row := computeOne(t, snap, attendanceOpts)
	assert.Equal(t, 3, row.DoubleDutyCount)
}

func TestCompute_DuplicateLeaveRecordsTolerated(t *testing.T) {
	employeeID := uuid.New()
	snap := baseSnapshot(employeeID)
	snap.LeaveEntries = []report.LeaveEntry{
		{RecordID: uuid.New(), EmployeeID: employeeID, Date: day(2)},
		{RecordID: uuid.New(), EmployeeID: employeeID, Date: day(2)},
	}

	result, err := report.Compute(snap, attendanceOpts)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Rows[0].Leaves)

	found := false
	for _, a := range result.Anomalies {
		if a.Detail == "duplicate leave records for one date" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCompute_LateModeFiltersPunctualEmployees(t *testing.T) {
	punctual := uuid.New()
	snap := baseSnapshot(punctual)

	tardy := uuid.New()
	snap.Roster = append(snap.Roster, report.RosterEntry{
		EmployeeID:  tardy,
		Code:        "EMP-002",
		FullName:    "Rohit Pillai",
		Department:  "Operations",
		BasicSalary: decimal.NewFromInt(24000),
	})
	snap.ShiftPolicies[0].Members = append(snap.ShiftPolicies[0].Members, tardy)
	snap.Punches = append(snap.Punches, punchAt(tardy, 1, 10, 30))

	result, err := report.Compute(snap, report.Options{Mode: report.ModeLate, GraceMinutes: 10})
	assert.NoError(t, err)
	assert.Len(t, result.Rows, 1)
	assert.Equal(t, "EMP-002", result.Rows[0].Code)
	assert.Equal(t, 1, result.Rows[0].LateDays)
}

func TestCompute_TotalsModeNegativePayableNotClamped(t *testing.T) {
	employeeID := uuid.New()
	snap := baseSnapshot(employeeID)

	opts := report.Options{
		Mode:         report.ModeTotals,
		GraceMinutes: 10,
		Deductions: map[uuid.UUID]report.DeductionInput{
			employeeID: {
				Advance:     decimal.NewFromInt(29000),
				LatePenalty: decimal.NewFromInt(2500),
			},
		},
	}

	row := computeOne(t, snap, opts)

	assert.NotNil(t, row.FinalPayable)
	assert.Equal(t, "-1500.00", *row.FinalPayable)
	assert.Equal(t, "29000.00", *row.AdvanceDeduction)
	assert.Equal(t, "2500.00", *row.LatePenalty)
}

func TestCompute_AttendanceModeOmitsDeductionFields(t *testing.T) {
	employeeID := uuid.New()
	snap := baseSnapshot(employeeID)

	row := computeOne(t, snap, attendanceOpts)

	assert.Nil(t, row.AdvanceDeduction)
	assert.Nil(t, row.LatePenalty)
	assert.Nil(t, row.FinalPayable)
}

func TestCompute_DayGrid(t *testing.T) {
	employeeID := uuid.New()
	snap := baseSnapshot(employeeID)

	opts := report.Options{Mode: report.ModeAttendance, GraceMinutes: 10, IncludeDays: true}
	result, err := report.Compute(snap, opts)
	assert.NoError(t, err)

	days := result.Days[employeeID.String()]
	assert.Len(t, days, 30)
	assert.Equal(t, report.CategoryHoliday, days[16].Category)
	assert.Equal(t, report.CategoryWeekOff, days[5].Category)
	assert.Equal(t, report.CategoryPresent, days[0].Category)
}

func TestCompute_RowsSortedByEmployeeCode(t *testing.T) {
	first := uuid.New()
	snap := baseSnapshot(first)
	snap.Roster = append(snap.Roster, report.RosterEntry{
		EmployeeID:  uuid.New(),
		Code:        "EMP-000",
		FullName:    "Meera Nair",
		Department:  "Finance",
		BasicSalary: decimal.NewFromInt(40000),
	})

	result, err := report.Compute(snap, attendanceOpts)
	assert.NoError(t, err)
	assert.Equal(t, "EMP-000", result.Rows[0].Code)
	assert.Equal(t, "EMP-001", result.Rows[1].Code)
}

func TestCompute_InvalidInputRejectedUpfront(t *testing.T) {
	employeeID := uuid.New()

	t.Run("bad month", func(t *testing.T) {
		snap := baseSnapshot(employeeID)
		snap.Month = 13
		_, err := report.Compute(snap, attendanceOpts)
		assert.Error(t, err)
	})

	t.Run("bad mode", func(t *testing.T) {
		snap := baseSnapshot(employeeID)
		_, err := report.Compute(snap, report.Options{Mode: "weekly"})
		assert.Error(t, err)
	})

	t.Run("negative grace", func(t *testing.T) {
		snap := baseSnapshot(employeeID)
		_, err := report.Compute(snap, report.Options{Mode: report.ModeAttendance, GraceMinutes: -1})
		assert.Error(t, err)
	})

	t.Run("deduction for unknown employee", func(t *testing.T) {
		snap := baseSnapshot(employeeID)
		_, err := report.Compute(snap, report.Options{
			Mode: report.ModeTotals,
			Deductions: map[uuid.UUID]report.DeductionInput{
				uuid.New(): {Advance: decimal.NewFromInt(100)},
			},
		})
		assert.Error(t, err)
	})
}

func TestCompute_MissedPunchOutStillPresent(t *testing.T) {
	employeeID := uuid.New()
	snap := baseSnapshot(employeeID)
	snap.Punches[0] = report.PunchEntry{
		EmployeeID: employeeID,
		Date:       day(1),
		PunchIn:    time.Date(2026, time.September, 1, 8, 55, 0, 0, time.UTC),
		Status:     "MISSED_PUNCH_OUT",
	}

	row := computeOne(t, snap, attendanceOpts)
	assert.Equal(t, 25, row.PresentDays)
	assert.Equal(t, 0, row.Absences)
}

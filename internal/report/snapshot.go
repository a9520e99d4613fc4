package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Snapshot is the immutable input of one reconciliation run: everything
// the engine needs for one company and one month, loaded up front so the
// computation itself performs no I/O.
type Snapshot struct {
	CompanyID uuid.UUID
	Year      int
	Month     time.Month

	Roster          []RosterEntry
	WeekOffPolicies []WeekOffPolicy
	HolidayPolicies []HolidayPolicy
	LeavePolicies   []LeavePolicy
	ShiftPolicies   []ShiftPolicy
	ShiftOverrides  []ShiftOverride
	LeaveEntries    []LeaveEntry
	Punches         []PunchEntry
}

type RosterEntry struct {
	EmployeeID  uuid.UUID
	Code        string
	FullName    string
	Department  string
	BasicSalary decimal.Decimal
}

// WeekOffPolicy lists the recurring weekly off days (0=Sunday..6=Saturday)
// of one group and the employees it applies to.
type WeekOffPolicy struct {
	GroupID  uuid.UUID
	Weekdays []int
	Members  []uuid.UUID
}

type HolidayDate struct {
	Date  time.Time
	Label string
}

type HolidayPolicy struct {
	GroupID uuid.UUID
	Dates   []HolidayDate
	Members []uuid.UUID
}

// LeavePolicy carries the informational monthly allowance; the engine
// reports it but never enforces it.
type LeavePolicy struct {
	GroupID          uuid.UUID
	MonthlyAllowance int
	Members          []uuid.UUID
}

type ShiftPolicy struct {
	GroupID     uuid.UUID
	StartMinute int
	EndMinute   int
	Members     []uuid.UUID
}

// ShiftOverride replaces the base shift assignment for an inclusive date
// range.
type ShiftOverride struct {
	RotationID   uuid.UUID
	EmployeeID   uuid.UUID
	ShiftGroupID uuid.UUID
	StartDate    time.Time
	EndDate      time.Time
}

type LeaveEntry struct {
	RecordID             uuid.UUID
	EmployeeID           uuid.UUID
	Date                 time.Time
	SubstituteEmployeeID *uuid.UUID
}

type PunchEntry struct {
	EmployeeID uuid.UUID
	Date       time.Time
	PunchIn    time.Time
	PunchOut   *time.Time
	Status     string
}

// dateKey normalizes a timestamp to its calendar date for map lookups.
func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
}

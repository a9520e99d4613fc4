package report

import (
	"time"

	"github.com/google/uuid"
)

type DayCategory string

const (
	CategoryHoliday DayCategory = "HOLIDAY"
	CategoryWeekOff DayCategory = "WEEK_OFF"
	CategoryLeave   DayCategory = "LEAVE"
	CategoryPresent DayCategory = "PRESENT"
	CategoryAbsent  DayCategory = "ABSENT"
)

// DayResult is one cell of the per-day classification grid.
type DayResult struct {
	Date     string      `json:"date"`
	Category DayCategory `json:"category"`
	Late     bool        `json:"late"`
}

// classifier assigns exactly one category per (employee, date). The
// precedence is load-bearing: Holiday beats WeekOff beats Leave beats
// Present beats Absent; the first match is terminal. Late is an overlay
// computed only for Present days and never changes the category.
type classifier struct {
	cal          *calendarResolver
	shifts       *shiftResolver
	leaves       map[string]LeaveEntry
	punches      punchIndex
	graceMinutes int
	anomalies    *anomalySink
}

func newClassifier(snap Snapshot, graceMinutes int, anomalies *anomalySink) *classifier {
	leaves := make(map[string]LeaveEntry, len(snap.LeaveEntries))
	for _, entry := range snap.LeaveEntries {
		key := entry.EmployeeID.String() + "|" + dateKey(entry.Date)
		if _, dup := leaves[key]; dup {
			anomalies.add(entry.EmployeeID.String(), dateKey(entry.Date), "duplicate leave records for one date")
			continue
		}
		leaves[key] = entry
	}

	return &classifier{
		cal:          newCalendarResolver(snap.WeekOffPolicies, snap.HolidayPolicies),
		shifts:       newShiftResolver(snap.ShiftPolicies, snap.ShiftOverrides, anomalies),
		leaves:       leaves,
		punches:      buildPunchIndex(snap.Punches),
		graceMinutes: graceMinutes,
		anomalies:    anomalies,
	}
}

func (c *classifier) classify(employeeID uuid.UUID, date time.Time) DayResult {
	result := DayResult{Date: dateKey(date)}

	switch {
	case c.cal.IsHoliday(employeeID, date):
		result.Category = CategoryHoliday
	case c.cal.IsWeekOff(employeeID, date):
		result.Category = CategoryWeekOff
	case c.hasLeave(employeeID, date):
		result.Category = CategoryLeave
	default:
		punch, punched := c.punches.lookup(employeeID, date)
		if !punched {
			result.Category = CategoryAbsent
			break
		}
		result.Category = CategoryPresent
		if window, ok := c.shifts.Resolve(employeeID, date); ok {
			result.Late = isLate(punch.PunchIn, window.StartMinute, c.graceMinutes)
		}
	}
	return result
}

func (c *classifier) hasLeave(employeeID uuid.UUID, date time.Time) bool {
	_, ok := c.leaves[employeeID.String()+"|"+dateKey(date)]
	return ok
}

package report

import (
	"time"

	"github.com/google/uuid"
)

// monthTotals is the per-employee fold of one month of day
// classifications.
type monthTotals struct {
	TotalDays   int
	WeekOffs    int
	Holidays    int
	Leaves      int
	PresentDays int
	LateDays    int
	Absences    int
	Days        []DayResult
}

// aggregateMonth classifies every calendar day of the month for one
// employee and accumulates the totals. Absences are derived by
// subtraction and clamped at zero; a negative value means the upstream
// data is inconsistent and is surfaced rather than hidden.
func aggregateMonth(c *classifier, employeeID uuid.UUID, year int, month time.Month, includeDays bool, anomalies *anomalySink) monthTotals {
	total := daysInMonth(year, month)
	t := monthTotals{TotalDays: total}
	if includeDays {
		t.Days = make([]DayResult, 0, total)
	}

	for day := 1; day <= total; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		result := c.classify(employeeID, date)

		switch result.Category {
		case CategoryHoliday:
			t.Holidays++
		case CategoryWeekOff:
			t.WeekOffs++
		case CategoryLeave:
			t.Leaves++
		case CategoryPresent:
			t.PresentDays++
			if result.Late {
				t.LateDays++
			}
		}
		if includeDays {
			t.Days = append(t.Days, result)
		}
	}

	t.Absences = t.TotalDays - t.WeekOffs - t.Holidays - t.Leaves - t.PresentDays
	if t.Absences < 0 {
		anomalies.add(employeeID.String(), "", "negative absence count clamped to zero")
		t.Absences = 0
	}
	return t
}

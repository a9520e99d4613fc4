package punch

import (
	"sort"
	"time"
)

// rawScan is one device read after code resolution, keyed to the
// employee it belongs to.
type rawScan struct {
	EmployeeID string
	ScannedAt  time.Time
}

type dayKey struct {
	EmployeeID string
	Date       string // YYYY-MM-DD
}

// reducedDay is the outcome of folding one employee's scans on one
// calendar date. A single distinct timestamp means the employee badged
// in but never badged out.
type reducedDay struct {
	EmployeeID string
	Date       time.Time
	PunchIn    time.Time
	PunchOut   *time.Time
	Status     string
}

// reduceScans collapses raw scans into one row per employee per date:
// the earliest scan becomes the punch-in, the latest distinct scan the
// punch-out. Duplicate reads of the same instant are tolerated; a day
// whose scans all share one instant is flagged MISSED_PUNCH_OUT. Days
// with no scans produce no row at all.
func reduceScans(scans []rawScan) []reducedDay {
	grouped := make(map[dayKey][]time.Time)
	for _, s := range scans {
		key := dayKey{EmployeeID: s.EmployeeID, Date: s.ScannedAt.Format("2006-01-02")}
		grouped[key] = append(grouped[key], s.ScannedAt)
	}

	days := make([]reducedDay, 0, len(grouped))
	for key, stamps := range grouped {
		sort.Slice(stamps, func(i, j int) bool { return stamps[i].Before(stamps[j]) })

		earliest := stamps[0]
		latest := stamps[len(stamps)-1]

		date, _ := time.Parse("2006-01-02", key.Date)
		day := reducedDay{
			EmployeeID: key.EmployeeID,
			Date:       date,
			PunchIn:    earliest,
			Status:     StatusPresent,
		}
		if latest.Equal(earliest) {
			day.Status = StatusMissedPunchOut
		} else {
			out := latest
			day.PunchOut = &out
		}
		days = append(days, day)
	}

	sort.Slice(days, func(i, j int) bool {
		if !days[i].Date.Equal(days[j].Date) {
			return days[i].Date.Before(days[j].Date)
		}
		return days[i].EmployeeID < days[j].EmployeeID
	})
	return days
}

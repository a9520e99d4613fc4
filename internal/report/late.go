package report

import "time"

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// isLate compares minute-of-day only: a punch-in at exactly
// shiftStart+grace is on time, one minute past it is late.
func isLate(punchIn time.Time, shiftStartMinute, graceMinutes int) bool {
	return minuteOfDay(punchIn) > shiftStartMinute+graceMinutes
}

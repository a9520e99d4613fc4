package report

import (
	"time"

	"github.com/google/uuid"
)

// calendarResolver answers "is this date a week-off / a holiday for this
// employee". Both predicates are unions across every group containing
// the employee; zero memberships means the predicate is always false.
type calendarResolver struct {
	weekdaysOff map[uuid.UUID]map[time.Weekday]struct{}
	holidays    map[uuid.UUID]map[string]struct{}
}

func newCalendarResolver(weekOffs []WeekOffPolicy, holidays []HolidayPolicy) *calendarResolver {
	r := &calendarResolver{
		weekdaysOff: make(map[uuid.UUID]map[time.Weekday]struct{}),
		holidays:    make(map[uuid.UUID]map[string]struct{}),
	}
	for _, policy := range weekOffs {
		for _, member := range policy.Members {
			set, ok := r.weekdaysOff[member]
			if !ok {
				set = make(map[time.Weekday]struct{})
				r.weekdaysOff[member] = set
			}
			for _, day := range policy.Weekdays {
				if day >= 0 && day <= 6 {
					set[time.Weekday(day)] = struct{}{}
				}
			}
		}
	}
	for _, policy := range holidays {
		for _, member := range policy.Members {
			set, ok := r.holidays[member]
			if !ok {
				set = make(map[string]struct{})
				r.holidays[member] = set
			}
			for _, entry := range policy.Dates {
				set[dateKey(entry.Date)] = struct{}{}
			}
		}
	}
	return r
}

func (r *calendarResolver) IsWeekOff(employeeID uuid.UUID, date time.Time) bool {
	set, ok := r.weekdaysOff[employeeID]
	if !ok {
		return false
	}
	_, off := set[date.Weekday()]
	return off
}

func (r *calendarResolver) IsHoliday(employeeID uuid.UUID, date time.Time) bool {
	set, ok := r.holidays[employeeID]
	if !ok {
		return false
	}
	_, holiday := set[dateKey(date)]
	return holiday
}

package report

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// shiftWindow is a resolved working-hours window in minutes since
// midnight. End lower than Start means the shift crosses midnight.
type shiftWindow struct {
	StartMinute int
	EndMinute   int
}

// shiftResolver resolves the effective shift for (employee, date):
// rotations whose inclusive date range contains the date override the
// base group assignment. When several rotations overlap on one date, the
// one with the latest start date wins, ties broken by the smallest
// rotation id string; the overlap is surfaced as an anomaly. No rotation
// and no base group means the schedule is undefined for that day.
type shiftResolver struct {
	byGroup   map[uuid.UUID]shiftWindow
	base      map[uuid.UUID]shiftWindow
	overrides map[uuid.UUID][]ShiftOverride
	anomalies *anomalySink
}

func newShiftResolver(policies []ShiftPolicy, overrides []ShiftOverride, anomalies *anomalySink) *shiftResolver {
	r := &shiftResolver{
		byGroup:   make(map[uuid.UUID]shiftWindow),
		base:      make(map[uuid.UUID]shiftWindow),
		overrides: make(map[uuid.UUID][]ShiftOverride),
		anomalies: anomalies,
	}

	for _, policy := range policies {
		r.byGroup[policy.GroupID] = shiftWindow{StartMinute: policy.StartMinute, EndMinute: policy.EndMinute}
	}

	// Base assignment should be a single membership. When an employee
	// sits in several shift groups the smallest group id wins, and the
	// conflict is reported once per employee.
	baseGroup := make(map[uuid.UUID]uuid.UUID)
	for _, policy := range policies {
		for _, member := range policy.Members {
			current, ok := baseGroup[member]
			if !ok {
				baseGroup[member] = policy.GroupID
				continue
			}
			r.anomalies.add(member.String(), "", "employee belongs to multiple shift groups")
			if policy.GroupID.String() < current.String() {
				baseGroup[member] = policy.GroupID
			}
		}
	}
	for member, groupID := range baseGroup {
		r.base[member] = r.byGroup[groupID]
	}

	for _, o := range overrides {
		r.overrides[o.EmployeeID] = append(r.overrides[o.EmployeeID], o)
	}
	return r
}

// Resolve returns the shift window for the employee on the date, or
// false when no schedule is defined.
func (r *shiftResolver) Resolve(employeeID uuid.UUID, date time.Time) (shiftWindow, bool) {
	var matches []ShiftOverride
	for _, o := range r.overrides[employeeID] {
		if !date.Before(o.StartDate) && !date.After(o.EndDate) {
			matches = append(matches, o)
		}
	}

	if len(matches) > 0 {
		if len(matches) > 1 {
			r.anomalies.add(employeeID.String(), dateKey(date), "overlapping shift rotations")
			sort.Slice(matches, func(i, j int) bool {
				if !matches[i].StartDate.Equal(matches[j].StartDate) {
					return matches[i].StartDate.After(matches[j].StartDate)
				}
				return matches[i].RotationID.String() < matches[j].RotationID.String()
			})
		}
		if window, ok := r.byGroup[matches[0].ShiftGroupID]; ok {
			return window, true
		}
		r.anomalies.add(employeeID.String(), dateKey(date), "rotation references unknown shift group")
	}

	window, ok := r.base[employeeID]
	return window, ok
}

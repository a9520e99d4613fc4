package report

import (
	"time"

	"github.com/google/uuid"
)

// punchIndex maps (employee, date) to the day's consolidated punch
// pair. A missing entry is evidence of no attendance, not an error.
type punchIndex map[string]PunchEntry

func buildPunchIndex(punches []PunchEntry) punchIndex {
	idx := make(punchIndex, len(punches))
	for _, p := range punches {
		idx[p.EmployeeID.String()+"|"+dateKey(p.Date)] = p
	}
	return idx
}

func (idx punchIndex) lookup(employeeID uuid.UUID, date time.Time) (PunchEntry, bool) {
	p, ok := idx[employeeID.String()+"|"+dateKey(date)]
	return p, ok
}

package report

import (
	"sort"

	"go-attendance/internal/shared/apperror"
)

// Anomaly flags a data inconsistency the engine resolved with a
// documented deterministic rule. Computation still completes; the
// anomaly travels alongside the result so a consumer can queue it for
// manual review.
type Anomaly struct {
	Code       string `json:"code"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date,omitempty"`
	Detail     string `json:"detail"`
}

// anomalySink collects anomalies with de-duplication: rules that fire
// once per day (overlapping rotations, duplicate leave records) report
// a given conflict only once per employee and date.
type anomalySink struct {
	seen map[string]struct{}
	list []Anomaly
}

func newAnomalySink() *anomalySink {
	return &anomalySink{seen: make(map[string]struct{})}
}

func (s *anomalySink) add(employeeID, date, detail string) {
	key := employeeID + "|" + date + "|" + detail
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}
	s.list = append(s.list, Anomaly{
		Code:       apperror.CodeDataInconsistency,
		EmployeeID: employeeID,
		Date:       date,
		Detail:     detail,
	})
}

func (s *anomalySink) sorted() []Anomaly {
	out := make([]Anomaly, len(s.list))
	copy(out, s.list)
	sort.Slice(out, func(i, j int) bool {
		if out[i].EmployeeID != out[j].EmployeeID {
			return out[i].EmployeeID < out[j].EmployeeID
		}
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Detail < out[j].Detail
	})
	return out
}

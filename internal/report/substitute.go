package report

import "github.com/google/uuid"

// countSubstituteDuties counts the leave records naming the employee as
// substitute. The count is per record, not per distinct colleague, and
// is independent of the employee's own day classification.
func countSubstituteDuties(leaves []LeaveEntry, employeeID uuid.UUID) int {
	count := 0
	for _, entry := range leaves {
		if entry.SubstituteEmployeeID != nil && *entry.SubstituteEmployeeID == employeeID {
			count++
		}
	}
	return count
}

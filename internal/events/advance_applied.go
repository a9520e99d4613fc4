package events

import "time"

const (
	AdvanceCreditedTopic = "hr.ledger.advance.credited.v1"
	AdvanceDeductedTopic = "hr.ledger.advance.deducted.v1"
)

// AdvanceCreditedEvent is emitted after an advance credit commits.
type AdvanceCreditedEvent struct {
	EventType  string    `json:"event_type"`
	CompanyID  string    `json:"company_id"`
	EmployeeID string    `json:"employee_id"`
	Amount     string    `json:"amount"`
	NewBalance string    `json:"new_balance"`
	OccurredAt time.Time `json:"occurred_at"`
}

// AdvanceDeductedEvent carries the applied amount, which may be lower
// than the requested one when the balance ran out.
type AdvanceDeductedEvent struct {
	EventType  string    `json:"event_type"`
	CompanyID  string    `json:"company_id"`
	EmployeeID string    `json:"employee_id"`
	Requested  string    `json:"requested"`
	Applied    string    `json:"applied"`
	NewBalance string    `json:"new_balance"`
	OccurredAt time.Time `json:"occurred_at"`
}

package events

import "time"

const ReportGeneratedTopic = "hr.report.generated.v1"

type ReportGeneratedEvent struct {
	EventType    string    `json:"event_type"`
	CompanyID    string    `json:"company_id"`
	Year         int       `json:"year"`
	Month        int       `json:"month"`
	Mode         string    `json:"mode"`
	RowCount     int       `json:"row_count"`
	AnomalyCount int       `json:"anomaly_count"`
	OccurredAt   time.Time `json:"occurred_at"`
}

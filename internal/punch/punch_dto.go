package punch

type RawScanInput struct {
	EmployeeCode string `json:"employee_code" binding:"required"`
	ScannedAt    string `json:"scanned_at" binding:"required"` // RFC 3339
}

type ImportScansRequest struct {
	Scans []RawScanInput `json:"scans" binding:"required,min=1,dive"`
}

type ImportScansResponse struct {
	DaysProcessed int      `json:"days_processed"`
	SkippedCodes  []string `json:"skipped_codes,omitempty"`
}

type ProcessedPunchResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	PunchIn    string  `json:"punch_in"`
	PunchOut   *string `json:"punch_out,omitempty"`
	Status     string  `json:"status"`
}

package report

// ReportRow is one employee's reconciled month. Deduction fields are
// present only in totals mode.
type ReportRow struct {
	EmployeeID       string  `json:"employee_id"`
	Code             string  `json:"code"`
	FullName         string  `json:"full_name"`
	Department       string  `json:"department"`
	TotalDays        int     `json:"total_days"`
	WeekOffs         int     `json:"week_offs"`
	Holidays         int     `json:"holidays"`
	Leaves           int     `json:"leaves"`
	Absences         int     `json:"absences"`
	PresentDays      int     `json:"present_days"`
	WorkingDays      int     `json:"working_days"`
	LateDays         int     `json:"late_days"`
	DoubleDutyCount  int     `json:"double_duty_count"`
	LeaveAllowance   int     `json:"leave_allowance"`
	BasicSalary      string  `json:"basic_salary"`
	PerDaySalary     string  `json:"per_day_salary"`
	Salary           string  `json:"salary"`
	AdvanceDeduction *string `json:"advance_deduction,omitempty"`
	LatePenalty      *string `json:"late_penalty,omitempty"`
	FinalPayable     *string `json:"final_payable,omitempty"`
}

type ReportResponse struct {
	Year      int                    `json:"year"`
	Month     int                    `json:"month"`
	Mode      string                 `json:"mode"`
	Rows      []ReportRow            `json:"rows"`
	Anomalies []Anomaly              `json:"anomalies"`
	Days      map[string][]DayResult `json:"days,omitempty"`
}

type DeductionRequest struct {
	EmployeeID  string `json:"employee_id" binding:"required,uuid"`
	Advance     string `json:"advance" binding:"required"`
	LatePenalty string `json:"late_penalty" binding:"required"`
}

type TotalsReportRequest struct {
	Year         int                `json:"year" binding:"required"`
	Month        int                `json:"month" binding:"required"`
	GraceMinutes int                `json:"grace_minutes" binding:"gte=0"`
	IncludeDays  bool               `json:"include_days"`
	Deductions   []DeductionRequest `json:"deductions" binding:"dive"`
}

package leaverecord

type CreateLeaveRecordRequest struct {
	EmployeeID           string  `json:"employee_id" binding:"required,uuid"`
	Date                 string  `json:"date" binding:"required"`
	Reason               *string `json:"reason"`
	SubstituteEmployeeID *string `json:"substitute_employee_id" binding:"omitempty,uuid"`
}

type LeaveRecordResponse struct {
	ID                   string  `json:"id"`
	CompanyID            string  `json:"company_id"`
	EmployeeID           string  `json:"employee_id"`
	Date                 string  `json:"date"`
	Reason               *string `json:"reason,omitempty"`
	SubstituteEmployeeID *string `json:"substitute_employee_id,omitempty"`
	CreatedBy            string  `json:"created_by"`
}

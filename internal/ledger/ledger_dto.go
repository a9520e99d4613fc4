package ledger

type MutateAdvanceRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Amount     string `json:"amount" binding:"required"`
}

type CreditAdvanceResponse struct {
	EmployeeID string `json:"employee_id"`
	Credited   string `json:"credited"`
	NewBalance string `json:"new_balance"`
}

type DeductAdvanceResponse struct {
	EmployeeID    string `json:"employee_id"`
	Requested     string `json:"requested"`
	AppliedAmount string `json:"applied_amount"`
	NewBalance    string `json:"new_balance"`
}

type AdvanceBalanceResponse struct {
	EmployeeID string `json:"employee_id"`
	Balance    string `json:"balance"`
}

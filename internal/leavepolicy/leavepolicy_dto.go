package leavepolicy

type CreateGroupRequest struct {
	Name             string `json:"name" binding:"required,max=100"`
	MonthlyAllowance int    `json:"monthly_allowance" binding:"gte=0,lte=31"`
}

type UpdateGroupRequest struct {
	Name             string `json:"name" binding:"required,max=100"`
	MonthlyAllowance int    `json:"monthly_allowance" binding:"gte=0,lte=31"`
}

type SetMembersRequest struct {
	EmployeeIDs []string `json:"employee_ids" binding:"required,dive,uuid"`
}

type GroupResponse struct {
	ID               string   `json:"id"`
	CompanyID        string   `json:"company_id"`
	Name             string   `json:"name"`
	MonthlyAllowance int      `json:"monthly_allowance"`
	EmployeeIDs      []string `json:"employee_ids"`
}

package shift

type CreateGroupRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type UpdateGroupRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type SetMembersRequest struct {
	EmployeeIDs []string `json:"employee_ids" binding:"required,dive,uuid"`
}

type GroupResponse struct {
	ID          string   `json:"id"`
	CompanyID   string   `json:"company_id"`
	Name        string   `json:"name"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	EmployeeIDs []string `json:"employee_ids"`
}

type CreateRotationRequest struct {
	EmployeeID   string `json:"employee_id" binding:"required,uuid"`
	ShiftGroupID string `json:"shift_group_id" binding:"required,uuid"`
	StartDate    string `json:"start_date" binding:"required"`
	EndDate      string `json:"end_date" binding:"required"`
}

type RotationResponse struct {
	ID           string `json:"id"`
	CompanyID    string `json:"company_id"`
	EmployeeID   string `json:"employee_id"`
	ShiftGroupID string `json:"shift_group_id"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
}

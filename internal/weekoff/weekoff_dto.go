package weekoff

type CreateGroupRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	Days []int  `json:"days" binding:"required,min=1,max=7,dive,gte=0,lte=6"`
}

type UpdateGroupRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	Days []int  `json:"days" binding:"required,min=1,max=7,dive,gte=0,lte=6"`
}

type SetMembersRequest struct {
	EmployeeIDs []string `json:"employee_ids" binding:"required,dive,uuid"`
}

type GroupResponse struct {
	ID          string   `json:"id"`
	CompanyID   string   `json:"company_id"`
	Name        string   `json:"name"`
	Days        []int    `json:"days"`
	EmployeeIDs []string `json:"employee_ids"`
}

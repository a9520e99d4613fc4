package holiday

type EntryInput struct {
	Date  string `json:"date" binding:"required"`
	Label string `json:"label" binding:"max=150"`
}

type CreateGroupRequest struct {
	Name    string       `json:"name" binding:"required,max=100"`
	Entries []EntryInput `json:"entries" binding:"dive"`
}

type UpdateGroupRequest struct {
	Name    string       `json:"name" binding:"required,max=100"`
	Entries []EntryInput `json:"entries" binding:"dive"`
}

type SetMembersRequest struct {
	EmployeeIDs []string `json:"employee_ids" binding:"required,dive,uuid"`
}

type EntryResponse struct {
	Date  string `json:"date"`
	Label string `json:"label"`
}

type GroupResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	Name        string          `json:"name"`
	Entries     []EntryResponse `json:"entries"`
	EmployeeIDs []string        `json:"employee_ids"`
}

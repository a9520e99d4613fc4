package employee

type CreateEmployeeRequest struct {
	Code        string `json:"code" binding:"required,max=50"`
	FullName    string `json:"full_name" binding:"required,max=150"`
	Department  string `json:"department" binding:"max=100"`
	BasicSalary string `json:"basic_salary" binding:"required"`
}

type UpdateEmployeeRequest struct {
	FullName    string `json:"full_name" binding:"required,max=150"`
	Department  string `json:"department" binding:"max=100"`
	BasicSalary string `json:"basic_salary" binding:"required"`
}

type EmployeeResponse struct {
	ID          string `json:"id"`
	CompanyID   string `json:"company_id"`
	Code        string `json:"code"`
	FullName    string `json:"full_name"`
	Department  string `json:"department"`
	BasicSalary string `json:"basic_salary"`
}

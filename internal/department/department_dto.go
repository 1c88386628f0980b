package department

type CreateDepartmentRequest struct {
	DepartmentCode string `json:"departmentCode" binding:"required,max=20"`
	DepartmentName string `json:"departmentName" binding:"required,max=100"`
	Description    string `json:"description" binding:"omitempty,max=500"`
	IsActive       bool   `json:"isActive"`
}

type UpdateDepartmentRequest struct {
	DepartmentID   int    `json:"departmentId"`
	DepartmentCode string `json:"departmentCode" binding:"required,max=20"`
	DepartmentName string `json:"departmentName" binding:"required,max=100"`
	Description    string `json:"description" binding:"omitempty,max=500"`
	IsActive       bool   `json:"isActive"`
}

type DepartmentResponse struct {
	DepartmentID   int    `json:"departmentId"`
	DepartmentCode string `json:"departmentCode"`
	DepartmentName string `json:"departmentName"`
	Description    string `json:"description"`
	IsActive       bool   `json:"isActive"`
}

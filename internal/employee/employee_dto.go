package employee

type CreateEmployeeRequest struct {
	FirstName    string  `json:"firstName" binding:"required,max=50"`
	LastName     string  `json:"lastName" binding:"required,max=50"`
	EmailAddress string  `json:"emailAddress" binding:"required,email,max=100"`
	DateOfBirth  string  `json:"dateOfBirth" binding:"required,datetime=2006-01-02"`
	Salary       float64 `json:"salary" binding:"gte=0"`
	DepartmentID int     `json:"departmentId" binding:"required"`
	PhoneNumber  string  `json:"phoneNumber" binding:"omitempty,phone"`
	Address      string  `json:"address" binding:"omitempty,max=200"`
	IsActive     bool    `json:"isActive"`
}

type UpdateEmployeeRequest struct {
	EmployeeID   int     `json:"employeeId"`
	FirstName    string  `json:"firstName" binding:"required,max=50"`
	LastName     string  `json:"lastName" binding:"required,max=50"`
	EmailAddress string  `json:"emailAddress" binding:"required,email,max=100"`
	DateOfBirth  string  `json:"dateOfBirth" binding:"required,datetime=2006-01-02"`
	Salary       float64 `json:"salary" binding:"gte=0"`
	DepartmentID int     `json:"departmentId" binding:"required"`
	PhoneNumber  string  `json:"phoneNumber" binding:"omitempty,phone"`
	Address      string  `json:"address" binding:"omitempty,max=200"`
	IsActive     bool    `json:"isActive"`
}

type EmployeeResponse struct {
	EmployeeID     int     `json:"employeeId"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	EmailAddress   string  `json:"emailAddress"`
	DateOfBirth    string  `json:"dateOfBirth"`
	Age            int     `json:"age"`
	Salary         float64 `json:"salary"`
	DepartmentID   int     `json:"departmentId"`
	DepartmentName string  `json:"departmentName,omitempty"`
	PhoneNumber    string  `json:"phoneNumber,omitempty"`
	Address        string  `json:"address,omitempty"`
	IsActive       bool    `json:"isActive"`
}

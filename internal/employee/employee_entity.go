package employee

import (
	"time"

	"employee-management/internal/department"
)

type Employee struct {
	EmployeeID   int       `gorm:"primaryKey;autoIncrement"`
	FirstName    string    `gorm:"size:50;not null"`
	LastName     string    `gorm:"size:50;not null"`
	EmailAddress string    `gorm:"size:100;not null"`
	DateOfBirth  time.Time `gorm:"not null"`
	Salary       float64   `gorm:"not null"`
	DepartmentID int       `gorm:"not null;index"`
	PhoneNumber  string    `gorm:"size:20"`
	Address      string    `gorm:"size:200"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`

	Department *department.Department `gorm:"foreignKey:DepartmentID;references:DepartmentID"`
}

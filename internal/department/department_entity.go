package department

import "time"

type Department struct {
	DepartmentID   int       `gorm:"primaryKey;autoIncrement"`
	DepartmentCode string    `gorm:"size:20;not null"`
	DepartmentName string    `gorm:"size:100;not null"`
	Description    string    `gorm:"size:500"`
	IsActive       bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

package employee

import (
	"context"

	"employee-management/internal/department"
	"employee-management/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id int) (*Employee, error)
	EmailExists(ctx context.Context, email string, excludeID int) (bool, error)
	DepartmentExists(ctx context.Context, departmentID int) (bool, error)
	Update(ctx context.Context, empl *Employee) (int64, error)
	SoftDelete(ctx context.Context, id int) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Omit("Department").Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Scopes(scope.Active()).
		Preload("Department").
		Order("first_name, last_name").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id int) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Scopes(scope.Active()).
		Preload("Department").
		First(&empl, "employee_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

// EmailExists checks active rows for a duplicate email. excludeID lets the
// update path keep a record's own unchanged address.
func (r *repository) EmailExists(ctx context.Context, email string, excludeID int) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(scope.Active()).
		Where("email_address = ?", email)
	if excludeID != 0 {
		q = q.Where("employee_id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// DepartmentExists reports whether an active department with the given id
// exists; the employee's department reference must point at one.
func (r *repository) DepartmentExists(ctx context.Context, departmentID int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&department.Department{}).
		Scopes(scope.Active()).
		Where("department_id = ?", departmentID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) Update(ctx context.Context, empl *Employee) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(scope.Active()).
		Where("employee_id = ?", empl.EmployeeID).
		Updates(map[string]any{
			"first_name":    empl.FirstName,
			"last_name":     empl.LastName,
			"email_address": empl.EmailAddress,
			"date_of_birth": empl.DateOfBirth,
			"salary":        empl.Salary,
			"department_id": empl.DepartmentID,
			"phone_number":  empl.PhoneNumber,
			"address":       empl.Address,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) SoftDelete(ctx context.Context, id int) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(scope.Active()).
		Where("employee_id = ?", id).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}

package department

import (
	"context"

	"employee-management/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, dept *Department) error
	FindAll(ctx context.Context) ([]Department, error)
	FindByID(ctx context.Context, id int) (*Department, error)
	CodeExists(ctx context.Context, code string, excludeID int) (bool, error)
	Update(ctx context.Context, dept *Department) (int64, error)
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

func (r *repository) Create(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Department, error) {
	var depts []Department
	err := r.db.WithContext(ctx).
		Scopes(scope.Active()).
		Order("department_name").
		Find(&depts).Error
	return depts, err
}

func (r *repository) FindByID(ctx context.Context, id int) (*Department, error) {
	var dept Department
	err := r.db.WithContext(ctx).
		Scopes(scope.Active()).
		First(&dept, "department_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

// CodeExists checks active rows for a duplicate code. excludeID lets the
// update path keep a record's own unchanged code.
func (r *repository) CodeExists(ctx context.Context, code string, excludeID int) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&Department{}).
		Scopes(scope.Active()).
		Where("department_code = ?", code)
	if excludeID != 0 {
		q = q.Where("department_id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) Update(ctx context.Context, dept *Department) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Department{}).
		Scopes(scope.Active()).
		Where("department_id = ?", dept.DepartmentID).
		Updates(map[string]any{
			"department_code": dept.DepartmentCode,
			"department_name": dept.DepartmentName,
			"description":     dept.Description,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) SoftDelete(ctx context.Context, id int) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Department{}).
		Scopes(scope.Active()).
		Where("department_id = ?", id).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}

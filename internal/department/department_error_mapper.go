package department

import (
	"errors"
	"strings"

	departmenterrors "employee-management/internal/department/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError translates storage-level failures into the package's
// app errors. A unique-index violation means the pre-check lost a race; the
// partial index is the authoritative guard.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return departmenterrors.ErrDepartmentNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_departments_code_active" {
			return departmenterrors.ErrDepartmentCodeExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_departments_code_active") {
		return departmenterrors.ErrDepartmentCodeExists
	}

	return err
}

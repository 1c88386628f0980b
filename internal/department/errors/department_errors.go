package departmenterrors

import (
	"net/http"

	"employee-management/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)
	// Conflicts surface as 400 to keep the public contract of the API
	ErrDepartmentCodeExists = apperror.New(
		apperror.CodeConflict,
		"Department code already exists",
		http.StatusBadRequest,
	)
	ErrIDMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"Path ID does not match payload ID",
		http.StatusBadRequest,
	)
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid department ID",
		http.StatusBadRequest,
	)
)

package employeeerrors

import (
	"net/http"

	"employee-management/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	// Conflicts surface as 400 to keep the public contract of the API
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Email address already exists",
		http.StatusBadRequest,
	)
	ErrAgeOutOfRange = apperror.New(
		apperror.CodeInvalidInput,
		"Employee age must be between 18 and 65 years",
		http.StatusBadRequest,
	)
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Department not found or inactive",
		http.StatusBadRequest,
	)
	ErrIDMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"Path ID does not match payload ID",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
)

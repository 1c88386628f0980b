package apperror

import (
	"errors"
	"net/http"
)

// HTTPError is the transport-level view of an error. Anything that is not an
// *AppError collapses to a generic 500 so internal detail never leaks out.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details map[string]string
}

func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		}
	}
	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: ErrInternal.Message,
	}
}

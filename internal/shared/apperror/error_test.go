package apperror_test

import (
	"errors"
	"net/http"
	"testing"

	"employee-management/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error maps through", func(t *testing.T) {
		err := apperror.New(apperror.CodeNotFound, "Employee not found", http.StatusNotFound)

		httpErr := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, apperror.CodeNotFound, httpErr.Code)
		assert.Equal(t, "Employee not found", httpErr.Message)
	})

	t.Run("wrapped app error maps through", func(t *testing.T) {
		inner := apperror.New(apperror.CodeConflict, "Department code already exists", http.StatusBadRequest)
		err := apperror.Wrap(inner, apperror.CodeConflict, "Department code already exists", http.StatusBadRequest)

		httpErr := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, apperror.CodeConflict, httpErr.Code)
	})

	t.Run("unknown error collapses to 500", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
		assert.NotContains(t, httpErr.Message, "connection refused")
	})
}

func TestWithDetails(t *testing.T) {
	sentinel := apperror.New(apperror.CodeInvalidInput, "Validation failed", http.StatusBadRequest)

	clone := sentinel.WithDetails(map[string]string{"emailAddress": "Email Address must be a valid email address"})

	// The sentinel stays shared and untouched
	assert.Nil(t, sentinel.Details)
	require.NotNil(t, clone.Details)

	// Clones still match their sentinel
	assert.True(t, errors.Is(clone, sentinel))

	httpErr := apperror.ToHTTP(clone)
	assert.Contains(t, httpErr.Details, "emailAddress")
}

package employee_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"employee-management/internal/employee"
	employeeerrors "employee-management/internal/employee/errors"
	"employee-management/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEmployeeService struct {
	getAllFn  func(ctx context.Context) ([]employee.EmployeeResponse, error)
	getByIDFn func(ctx context.Context, id int) (employee.EmployeeResponse, error)
	createFn  func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	updateFn  func(ctx context.Context, id int, req employee.UpdateEmployeeRequest) error
	deleteFn  func(ctx context.Context, id int) error
}

func (f *fakeEmployeeService) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.getAllFn(ctx)
}

func (f *fakeEmployeeService) GetByID(ctx context.Context, id int) (employee.EmployeeResponse, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.createFn(ctx, req)
}

func (f *fakeEmployeeService) Update(ctx context.Context, id int, req employee.UpdateEmployeeRequest) error {
	return f.updateFn(ctx, id, req)
}

func (f *fakeEmployeeService) Delete(ctx context.Context, id int) error {
	return f.deleteFn(ctx, id)
}

func newEmployeeRouter(svc employee.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	logger := zap.NewNop()
	r := gin.New()
	employee.RegisterRoutes(r.Group("/"), employee.NewHandler(svc, logger), logger)
	return r
}

func performRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer = bytes.NewBuffer(nil)
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeErrorBody(t *testing.T, w *httptest.ResponseRecorder) (string, map[string]string) {
	t.Helper()
	var body struct {
		Error struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error.Code, body.Error.Details
}

func validCreatePayload() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		EmailAddress: "ada@example.com",
		DateOfBirth:  "1990-12-10",
		Salary:       85000,
		DepartmentID: 3,
		PhoneNumber:  "081-234-5678",
	}
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	svc := &fakeEmployeeService{
		getAllFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
			return []employee.EmployeeResponse{
				{EmployeeID: 1, FirstName: "Ada", DepartmentName: "Engineering", Age: 33, IsActive: true},
			}, nil
		},
	}
	w := performRequest(t, newEmployeeRouter(svc), http.MethodGet, "/employees", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []employee.EmployeeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Engineering", resp[0].DepartmentName)
}

func TestEmployeeHandler_GetById(t *testing.T) {
	t.Run("200", func(t *testing.T) {
		svc := &fakeEmployeeService{
			getByIDFn: func(ctx context.Context, id int) (employee.EmployeeResponse, error) {
				assert.Equal(t, 4, id)
				return employee.EmployeeResponse{EmployeeID: 4, FirstName: "Ada"}, nil
			},
		}
		w := performRequest(t, newEmployeeRouter(svc), http.MethodGet, "/employees/4", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("400 for non-numeric id", func(t *testing.T) {
		w := performRequest(t, newEmployeeRouter(&fakeEmployeeService{}), http.MethodGet, "/employees/abc", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("404 when missing", func(t *testing.T) {
		svc := &fakeEmployeeService{
			getByIDFn: func(ctx context.Context, id int) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}
		w := performRequest(t, newEmployeeRouter(svc), http.MethodGet, "/employees/99", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("201 with created body", func(t *testing.T) {
		svc := &fakeEmployeeService{
			createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{EmployeeID: 10, FirstName: req.FirstName, IsActive: true}, nil
			},
		}
		w := performRequest(t, newEmployeeRouter(svc), http.MethodPost, "/employees", validCreatePayload())

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp employee.EmployeeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 10, resp.EmployeeID)
	})

	t.Run("400 with field details for missing fields", func(t *testing.T) {
		payload := map[string]any{"firstName": "Ada"}
		w := performRequest(t, newEmployeeRouter(&fakeEmployeeService{}), http.MethodPost, "/employees", payload)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		code, details := decodeErrorBody(t, w)
		assert.Equal(t, apperror.CodeInvalidInput, code)
		assert.Contains(t, details, "lastName")
		assert.Contains(t, details, "emailAddress")
		assert.Contains(t, details, "dateOfBirth")
	})

	t.Run("400 for malformed email", func(t *testing.T) {
		payload := validCreatePayload()
		payload.EmailAddress = "not-an-email"
		w := performRequest(t, newEmployeeRouter(&fakeEmployeeService{}), http.MethodPost, "/employees", payload)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		_, details := decodeErrorBody(t, w)
		assert.Contains(t, details, "emailAddress")
	})

	t.Run("400 for malformed phone number", func(t *testing.T) {
		payload := validCreatePayload()
		payload.PhoneNumber = "12ab34"
		w := performRequest(t, newEmployeeRouter(&fakeEmployeeService{}), http.MethodPost, "/employees", payload)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		_, details := decodeErrorBody(t, w)
		assert.Contains(t, details, "phoneNumber")
	})

	t.Run("400 for malformed date of birth", func(t *testing.T) {
		payload := validCreatePayload()
		payload.DateOfBirth = "12/10/1990"
		w := performRequest(t, newEmployeeRouter(&fakeEmployeeService{}), http.MethodPost, "/employees", payload)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		_, details := decodeErrorBody(t, w)
		assert.Contains(t, details, "dateOfBirth")
	})

	t.Run("400 when age rule fails", func(t *testing.T) {
		svc := &fakeEmployeeService{
			createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrAgeOutOfRange
			},
		}
		payload := validCreatePayload()
		payload.DateOfBirth = "2010-01-01"
		w := performRequest(t, newEmployeeRouter(svc), http.MethodPost, "/employees", payload)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		code, _ := decodeErrorBody(t, w)
		assert.Equal(t, apperror.CodeInvalidInput, code)
	})

	t.Run("400 on duplicate email", func(t *testing.T) {
		svc := &fakeEmployeeService{
			createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmailAlreadyExists
			},
		}
		w := performRequest(t, newEmployeeRouter(svc), http.MethodPost, "/employees", validCreatePayload())

		assert.Equal(t, http.StatusBadRequest, w.Code)

		code, _ := decodeErrorBody(t, w)
		assert.Equal(t, apperror.CodeConflict, code)
	})
}

func TestEmployeeHandler_Update(t *testing.T) {
	validUpdate := func() employee.UpdateEmployeeRequest {
		return employee.UpdateEmployeeRequest{
			EmployeeID:   5,
			FirstName:    "Ada",
			LastName:     "Lovelace",
			EmailAddress: "ada@example.com",
			DateOfBirth:  "1990-12-10",
			Salary:       90000,
			DepartmentID: 3,
		}
	}

	t.Run("204 on success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			updateFn: func(ctx context.Context, id int, req employee.UpdateEmployeeRequest) error {
				assert.Equal(t, 5, id)
				return nil
			},
		}
		w := performRequest(t, newEmployeeRouter(svc), http.MethodPut, "/employees/5", validUpdate())

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.Bytes())
	})

	t.Run("400 on id mismatch", func(t *testing.T) {
		svc := &fakeEmployeeService{
			updateFn: func(ctx context.Context, id int, req employee.UpdateEmployeeRequest) error {
				return employeeerrors.ErrIDMismatch
			},
		}
		payload := validUpdate()
		payload.EmployeeID = 6
		w := performRequest(t, newEmployeeRouter(svc), http.MethodPut, "/employees/5", payload)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("400 for inactive department", func(t *testing.T) {
		svc := &fakeEmployeeService{
			updateFn: func(ctx context.Context, id int, req employee.UpdateEmployeeRequest) error {
				return employeeerrors.ErrDepartmentNotFound
			},
		}
		w := performRequest(t, newEmployeeRouter(svc), http.MethodPut, "/employees/5", validUpdate())

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	t.Run("204 on success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			deleteFn: func(ctx context.Context, id int) error { return nil },
		}
		w := performRequest(t, newEmployeeRouter(svc), http.MethodDelete, "/employees/5", nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("404 when already removed", func(t *testing.T) {
		svc := &fakeEmployeeService{
			deleteFn: func(ctx context.Context, id int) error {
				return employeeerrors.ErrEmployeeNotFound
			},
		}
		w := performRequest(t, newEmployeeRouter(svc), http.MethodDelete, "/employees/5", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

package employee

import (
	"context"
	"encoding/json"
	"time"

	employeeerrors "employee-management/internal/employee/errors"
	"employee-management/internal/shared/apperror"
	"employee-management/internal/shared/contextutil"
	"employee-management/internal/shared/validation"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	ListCacheKey = "employees:all"
	listCacheTTL = 30 * time.Minute

	dateLayout = "2006-01-02"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id int) (EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, id int, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, id int) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithClock(db, repo, rdb, time.Now, logger...)
}

// NewServiceWithClock fixes the reference date the age rule is evaluated
// against; tests use it to stay reproducible.
func NewServiceWithClock(
	db *gorm.DB,
	repo Repository,
	rdb *redis.Client,
	now func() time.Time,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		now:    now,
		logger: l,
	}
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, ListCacheKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Coalesce concurrent misses into a single query
	v, err, _ := s.sf.Do(ListCacheKey, func() (interface{}, error) {
		empls, err := s.repo.FindAll(ctx)
		if err != nil {
			s.logger.Error("get all employees failed", zap.Error(err))
			return nil, mapRepositoryError(err)
		}

		resp := s.mapToListResponse(empls)

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, ListCacheKey, data, listCacheTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) GetByID(ctx context.Context, id int) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.Int("employee_id", id))

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return s.mapToResponse(*empl), nil
}

func (s *service) Create(
	ctx context.Context,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.EmailAddress),
		zap.Int("department_id", req.DepartmentID),
	)

	dob, err := s.validDateOfBirth(req.DateOfBirth)
	if err != nil {
		return EmployeeResponse{}, err
	}

	var empl *Employee
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		ok, err := qtx.DepartmentExists(ctx, req.DepartmentID)
		if err != nil {
			s.logger.Error("create employee department check failed", zap.Error(err))
			return err
		}
		if !ok {
			return employeeerrors.ErrDepartmentNotFound
		}

		exists, err := qtx.EmailExists(ctx, req.EmailAddress, 0)
		if err != nil {
			s.logger.Error("create employee uniqueness check failed", zap.Error(err))
			return err
		}
		if exists {
			return employeeerrors.ErrEmailAlreadyExists
		}

		empl = &Employee{
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			EmailAddress: req.EmailAddress,
			DateOfBirth:  dob,
			Salary:       req.Salary,
			DepartmentID: req.DepartmentID,
			PhoneNumber:  req.PhoneNumber,
			Address:      req.Address,
			IsActive:     true,
		}
		if err := qtx.Create(ctx, empl); err != nil {
			s.logger.Error("create employee persist failed", zap.Error(err))
			return mapRepositoryError(err)
		}
		return nil
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	s.invalidateListCache(ctx)
	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Int("employee_id", empl.EmployeeID),
	)

	// Re-read so the response carries the department name
	created, err := s.repo.FindByID(ctx, empl.EmployeeID)
	if err != nil {
		return s.mapToResponse(*empl), nil
	}
	return s.mapToResponse(*created), nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateEmployeeRequest) error {
	s.logger.Debug("update employee requested", zap.Int("employee_id", id))

	// Rejected before any store access
	if req.EmployeeID != id {
		return employeeerrors.ErrIDMismatch
	}

	dob, err := s.validDateOfBirth(req.DateOfBirth)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if _, err := qtx.FindByID(ctx, id); err != nil {
			return mapRepositoryError(err)
		}

		ok, err := qtx.DepartmentExists(ctx, req.DepartmentID)
		if err != nil {
			s.logger.Error("update employee department check failed", zap.Error(err))
			return err
		}
		if !ok {
			return employeeerrors.ErrDepartmentNotFound
		}

		exists, err := qtx.EmailExists(ctx, req.EmailAddress, id)
		if err != nil {
			s.logger.Error("update employee uniqueness check failed", zap.Error(err))
			return err
		}
		if exists {
			return employeeerrors.ErrEmailAlreadyExists
		}

		rows, err := qtx.Update(ctx, &Employee{
			EmployeeID:   id,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			EmailAddress: req.EmailAddress,
			DateOfBirth:  dob,
			Salary:       req.Salary,
			DepartmentID: req.DepartmentID,
			PhoneNumber:  req.PhoneNumber,
			Address:      req.Address,
		})
		if err != nil {
			s.logger.Error("update employee persist failed", zap.Error(err))
			return mapRepositoryError(err)
		}
		if rows == 0 {
			// Row vanished between the existence check and the write
			s.logger.Error("update employee affected zero rows", zap.Int("employee_id", id))
			return apperror.ErrInternal
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidateListCache(ctx)
	s.logger.Info("update employee success", zap.Int("employee_id", id))
	return nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	s.logger.Debug("delete employee requested", zap.Int("employee_id", id))

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if _, err := qtx.FindByID(ctx, id); err != nil {
			return mapRepositoryError(err)
		}

		rows, err := qtx.SoftDelete(ctx, id)
		if err != nil {
			s.logger.Error("delete employee failed", zap.Error(err))
			return mapRepositoryError(err)
		}
		if rows == 0 {
			s.logger.Error("delete employee affected zero rows", zap.Int("employee_id", id))
			return apperror.ErrInternal
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidateListCache(ctx)
	s.logger.Info("delete employee success", zap.Int("employee_id", id))
	return nil
}

// validDateOfBirth parses the bound date and applies the age range rule at
// the service's reference date.
func (s *service) validDateOfBirth(raw string) (time.Time, error) {
	dob, err := time.Parse(dateLayout, raw)
	if err != nil {
		// binding already checked the format; a parse failure here is a bug
		return time.Time{}, apperror.ErrInvalidInput
	}
	if !validation.ValidAge(dob, s.now()) {
		return time.Time{}, employeeerrors.ErrAgeOutOfRange.WithDetails(map[string]string{
			"dateOfBirth": employeeerrors.ErrAgeOutOfRange.Message,
		})
	}
	return dob, nil
}

func (s *service) invalidateListCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, ListCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee list cache",
			zap.Error(err),
			zap.String("key", ListCacheKey),
		)
	}
}

func (s *service) mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		EmployeeID:   empl.EmployeeID,
		FirstName:    empl.FirstName,
		LastName:     empl.LastName,
		EmailAddress: empl.EmailAddress,
		DateOfBirth:  empl.DateOfBirth.Format(dateLayout),
		Age:          validation.AgeAt(empl.DateOfBirth, s.now()),
		Salary:       empl.Salary,
		DepartmentID: empl.DepartmentID,
		PhoneNumber:  empl.PhoneNumber,
		Address:      empl.Address,
		IsActive:     empl.IsActive,
	}
	if empl.Department != nil {
		resp.DepartmentName = empl.Department.DepartmentName
	}
	return resp
}

func (s *service) mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = s.mapToResponse(e)
	}
	return res
}

package department

import (
	"context"
	"encoding/json"
	"time"

	departmenterrors "employee-management/internal/department/errors"
	"employee-management/internal/shared/apperror"
	"employee-management/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	ListCacheKey = "departments:all"
	listCacheTTL = 30 * time.Minute
)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, id int) (DepartmentResponse, error)
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	Update(ctx context.Context, id int, req UpdateDepartmentRequest) error
	Delete(ctx context.Context, id int) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, ListCacheKey).Result(); err == nil {
			var resp []DepartmentResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Coalesce concurrent misses into a single query
	v, err, _ := s.sf.Do(ListCacheKey, func() (interface{}, error) {
		depts, err := s.repo.FindAll(ctx)
		if err != nil {
			s.logger.Error("get all departments failed", zap.Error(err))
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(depts)

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

	return v.([]DepartmentResponse), nil
}

func (s *service) GetByID(ctx context.Context, id int) (DepartmentResponse, error) {
	s.logger.Debug("get department by id requested", zap.Int("department_id", id))

	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*dept), nil
}

func (s *service) Create(
	ctx context.Context,
	req CreateDepartmentRequest,
) (DepartmentResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create department requested",
		zap.String("request_id", rid),
		zap.String("code", req.DepartmentCode),
	)

	var dept *Department
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		exists, err := qtx.CodeExists(ctx, req.DepartmentCode, 0)
		if err != nil {
			s.logger.Error("create department uniqueness check failed", zap.Error(err))
			return err
		}
		if exists {
			return departmenterrors.ErrDepartmentCodeExists
		}

		dept = &Department{
			DepartmentCode: req.DepartmentCode,
			DepartmentName: req.DepartmentName,
			Description:    req.Description,
			IsActive:       true,
		}
		if err := qtx.Create(ctx, dept); err != nil {
			s.logger.Error("create department persist failed", zap.Error(err))
			return mapRepositoryError(err)
		}
		return nil
	})
	if err != nil {
		return DepartmentResponse{}, err
	}

	s.invalidateListCache(ctx)
	s.logger.Info("create department success",
		zap.String("request_id", rid),
		zap.Int("department_id", dept.DepartmentID),
	)

	return mapToResponse(*dept), nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateDepartmentRequest) error {
	s.logger.Debug("update department requested", zap.Int("department_id", id))

	// Rejected before any store access
	if req.DepartmentID != id {
		return departmenterrors.ErrIDMismatch
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if _, err := qtx.FindByID(ctx, id); err != nil {
			return mapRepositoryError(err)
		}

		exists, err := qtx.CodeExists(ctx, req.DepartmentCode, id)
		if err != nil {
			s.logger.Error("update department uniqueness check failed", zap.Error(err))
			return err
		}
		if exists {
			return departmenterrors.ErrDepartmentCodeExists
		}

		rows, err := qtx.Update(ctx, &Department{
			DepartmentID:   id,
			DepartmentCode: req.DepartmentCode,
			DepartmentName: req.DepartmentName,
			Description:    req.Description,
		})
		if err != nil {
			s.logger.Error("update department persist failed", zap.Error(err))
			return mapRepositoryError(err)
		}
		if rows == 0 {
			// Row vanished between the existence check and the write
			s.logger.Error("update department affected zero rows", zap.Int("department_id", id))
			return apperror.ErrInternal
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidateListCache(ctx)
	s.logger.Info("update department success", zap.Int("department_id", id))
	return nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	s.logger.Debug("delete department requested", zap.Int("department_id", id))

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if _, err := qtx.FindByID(ctx, id); err != nil {
			return mapRepositoryError(err)
		}

		rows, err := qtx.SoftDelete(ctx, id)
		if err != nil {
			s.logger.Error("delete department failed", zap.Error(err))
			return mapRepositoryError(err)
		}
		if rows == 0 {
			s.logger.Error("delete department affected zero rows", zap.Int("department_id", id))
			return apperror.ErrInternal
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidateListCache(ctx)
	s.logger.Info("delete department success", zap.Int("department_id", id))
	return nil
}

func (s *service) invalidateListCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, ListCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate department list cache",
			zap.Error(err),
			zap.String("key", ListCacheKey),
		)
	}
}

func mapToResponse(dept Department) DepartmentResponse {
	return DepartmentResponse{
		DepartmentID:   dept.DepartmentID,
		DepartmentCode: dept.DepartmentCode,
		DepartmentName: dept.DepartmentName,
		Description:    dept.Description,
		IsActive:       dept.IsActive,
	}
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res
}

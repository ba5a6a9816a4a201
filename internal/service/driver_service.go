package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/rensongqi/sanic-adminapi/internal/dto"
	"github.com/rensongqi/sanic-adminapi/internal/model"
	"github.com/rensongqi/sanic-adminapi/internal/repository"
)

// DriverService 司机业务接口
type DriverService interface {
	List(ctx context.Context, f *dto.DriverFilter, page dto.PageQuery) ([]dto.DriverItem, int64, error)
	Insert(ctx context.Context, rec *dto.DriverRecord) (*dto.DriverItem, error)
	Update(ctx context.Context, id int64, rec *dto.DriverRecord) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type driverService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDriverService 创建 DriverService 实例
func NewDriverService(repo *repository.Repository, logger *zap.Logger) DriverService {
	return &driverService{repo: repo, logger: logger}
}

func (s *driverService) List(ctx context.Context, f *dto.DriverFilter, page dto.PageQuery) ([]dto.DriverItem, int64, error) {
	drivers, total, err := s.repo.Driver.List(ctx, repository.DriverFilter{
		DeptID:     f.DeptID,
		DriverName: f.DriverName,
	}, page.Offset(), page.Length)
	if err != nil {
		s.logger.Error("查询司机列表失败", zap.Error(err))
		return nil, 0, err
	}
	items := make([]dto.DriverItem, 0, len(drivers))
	for i := range drivers {
		items = append(items, dto.NewDriverItem(&drivers[i]))
	}
	return items, total, nil
}

func (s *driverService) Insert(ctx context.Context, rec *dto.DriverRecord) (*dto.DriverItem, error) {
	d := &model.Driver{UploadState: model.UploadStateLocal}
	if rec.DriverNo != nil {
		d.DriverNo = *rec.DriverNo
	}
	if rec.DriverName != nil {
		d.DriverName = *rec.DriverName
	}
	if rec.DeptID != nil {
		d.DeptID = dto.IDPtr(*rec.DeptID)
	}
	if err := s.repo.Driver.Create(ctx, d); err != nil {
		s.logger.Error("创建司机失败", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.Driver.GetByID(ctx, d.ID)
	if err != nil {
		s.logger.Error("查询新建司机失败", zap.Int64("id", d.ID), zap.Error(err))
		return nil, err
	}
	item := dto.NewDriverItem(created)
	return &item, nil
}

func (s *driverService) Update(ctx context.Context, id int64, rec *dto.DriverRecord) (int64, error) {
	n, err := s.repo.Driver.Update(ctx, id, rec.Updates())
	if err != nil {
		s.logger.Error("更新司机失败", zap.Int64("id", id), zap.Error(err))
		return 0, err
	}
	return n, nil
}

func (s *driverService) Delete(ctx context.Context, id int64) (int64, error) {
	n, err := s.repo.Driver.Delete(ctx, id)
	if err != nil {
		s.logger.Error("删除司机失败", zap.Int64("id", id), zap.Error(err))
		return 0, err
	}
	return n, nil
}

package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/rensongqi/sanic-adminapi/internal/dto"
	"github.com/rensongqi/sanic-adminapi/internal/model"
	"github.com/rensongqi/sanic-adminapi/internal/repository"
)

// RegionService 区域业务接口
type RegionService interface {
	List(ctx context.Context) ([]dto.RegionItem, error)
	Insert(ctx context.Context, rec *dto.RegionRecord) (*dto.RegionItem, error)
	Update(ctx context.Context, id int64, rec *dto.RegionRecord) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type regionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRegionService 创建 RegionService 实例
func NewRegionService(repo *repository.Repository, logger *zap.Logger) RegionService {
	return &regionService{repo: repo, logger: logger}
}

func (s *regionService) List(ctx context.Context) ([]dto.RegionItem, error) {
	regions, err := s.repo.Region.List(ctx)
	if err != nil {
		s.logger.Error("查询区域失败", zap.Error(err))
		return nil, err
	}
	items := make([]dto.RegionItem, 0, len(regions))
	for i := range regions {
		items = append(items, dto.NewRegionItem(&regions[i]))
	}
	return items, nil
}

func (s *regionService) Insert(ctx context.Context, rec *dto.RegionRecord) (*dto.RegionItem, error) {
	region := &model.Region{UploadState: model.UploadStatePending}
	if rec.RegionName != nil {
		region.RegionName = *rec.RegionName
	}
	if rec.OrderNo != nil {
		region.OrderNo = *rec.OrderNo
	}
	if err := s.repo.Region.Create(ctx, region); err != nil {
		s.logger.Error("创建区域失败", zap.Error(err))
		return nil, err
	}
	item := dto.NewRegionItem(region)
	return &item, nil
}

func (s *regionService) Update(ctx context.Context, id int64, rec *dto.RegionRecord) (int64, error) {
	n, err := s.repo.Region.Update(ctx, id, rec.Updates())
	if err != nil {
		s.logger.Error("更新区域失败", zap.Int64("id", id), zap.Error(err))
		return 0, err
	}
	return n, nil
}

func (s *regionService) Delete(ctx context.Context, id int64) (int64, error) {
	n, err := s.repo.Region.Delete(ctx, id)
	if err != nil {
		s.logger.Error("删除区域失败", zap.Int64("id", id), zap.Error(err))
		return 0, err
	}
	return n, nil
}

package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/rensongqi/sanic-adminapi/internal/dto"
	"github.com/rensongqi/sanic-adminapi/internal/model"
	"github.com/rensongqi/sanic-adminapi/internal/repository"
)

// ── 垃圾模块业务错误 ──

var (
	ErrRegionNotFound = errors.New("对应区域不存在")
)

const defaultGarbageTypeNo = "NO"

// GarbageService 垃圾类型与垃圾来源业务接口
type GarbageService interface {
	ListTypes(ctx context.Context) ([]dto.GarbageTypeItem, error)
	InsertType(ctx context.Context, rec *dto.GarbageTypeRecord) (*dto.GarbageTypeItem, error)
	UpdateType(ctx context.Context, id int64, rec *dto.GarbageTypeRecord) (int64, error)
	// DeleteType 软删除
	DeleteType(ctx context.Context, id int64) (int64, error)

	ListSources(ctx context.Context) ([]dto.GarbageSourceItem, error)
	// InsertSource 区域必须存在，否则返回 ErrRegionNotFound
	InsertSource(ctx context.Context, rec *dto.GarbageSourceRecord) (*dto.GarbageSourceItem, error)
	UpdateSource(ctx context.Context, id int64, rec *dto.GarbageSourceRecord) (int64, error)
	DeleteSource(ctx context.Context, id int64) (int64, error)
}

type garbageService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewGarbageService 创建 GarbageService 实例
func NewGarbageService(repo *repository.Repository, logger *zap.Logger) GarbageService {
	return &garbageService{repo: repo, logger: logger}
}

// ────────────────────── 垃圾类型 ──────────────────────

func (s *garbageService) ListTypes(ctx context.Context) ([]dto.GarbageTypeItem, error) {
	types, err := s.repo.GarbageType.ListActive(ctx)
	if err != nil {
		s.logger.Error("查询垃圾类型失败", zap.Error(err))
		return nil, err
	}
	items := make([]dto.GarbageTypeItem, 0, len(types))
	for i := range types {
		items = append(items, dto.NewGarbageTypeItem(&types[i]))
	}
	return items, nil
}

func (s *garbageService) InsertType(ctx context.Context, rec *dto.GarbageTypeRecord) (*dto.GarbageTypeItem, error) {
	now := time.Now()
	g := &model.GarbageType{
		GarbageTypeNo: defaultGarbageTypeNo,
		ModifyState:   model.ModifyStateActive,
		ModifyTime:    &now,
		UploadState:   model.UploadStateUploaded,
	}
	if rec.GarbageTypeName != nil {
		g.GarbageTypeName = *rec.GarbageTypeName
	}
	if rec.GarbagePrice != nil {
		g.GarbagePrice = *rec.GarbagePrice
	}
	if rec.GarbageTypeInfo != nil {
		g.GarbageTypeInfo = *rec.GarbageTypeInfo
	}
	if err := s.repo.GarbageType.Create(ctx, g); err != nil {
		s.logger.Error("创建垃圾类型失败", zap.Error(err))
		return nil, err
	}
	item := dto.NewGarbageTypeItem(g)
	return &item, nil
}

func (s *garbageService) UpdateType(ctx context.Context, id int64, rec *dto.GarbageTypeRecord) (int64, error) {
	updates := rec.Updates()
	updates["modify_time"] = time.Now()
	n, err := s.repo.GarbageType.Update(ctx, id, updates)
	if err != nil {
		s.logger.Error("更新垃圾类型失败", zap.Int64("id", id), zap.Error(err))
		return 0, err
	}
	return n, nil
}

func (s *garbageService) DeleteType(ctx context.Context, id int64) (int64, error) {
	n, err := s.repo.GarbageType.Update(ctx, id, map[string]interface{}{
		"modify_state": model.ModifyStateScrapped,
		"modify_time":  time.Now(),
	})
	if err != nil {
		s.logger.Error("删除垃圾类型失败", zap.Int64("id", id), zap.Error(err))
		return 0, err
	}
	return n, nil
}

// ────────────────────── 垃圾来源 ──────────────────────

func (s *garbageService) ListSources(ctx context.Context) ([]dto.GarbageSourceItem, error) {
	sources, err := s.repo.GarbageSource.List(ctx)
	if err != nil {
		s.logger.Error("查询垃圾来源失败", zap.Error(err))
		return nil, err
	}
	items := make([]dto.GarbageSourceItem, 0, len(sources))
	for i := range sources {
		items = append(items, dto.NewGarbageSourceItem(&sources[i]))
	}
	return items, nil
}

// checkRegion 区域 id 为 0 或不存在时返回 ErrRegionNotFound
func (s *garbageService) checkRegion(ctx context.Context, regionID *int64) (*model.Region, error) {
	if regionID == nil || *regionID == 0 {
		return nil, ErrRegionNotFound
	}
	region, err := s.repo.Region.GetByID(ctx, *regionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRegionNotFound
		}
		s.logger.Error("查询区域失败", zap.Int64("region_id", *regionID), zap.Error(err))
		return nil, err
	}
	return region, nil
}

func (s *garbageService) InsertSource(ctx context.Context, rec *dto.GarbageSourceRecord) (*dto.GarbageSourceItem, error) {
	region, err := s.checkRegion(ctx, rec.RegionID)
	if err != nil {
		return nil, err
	}

	g := &model.GarbageSource{
		UploadState: model.UploadStateUploaded,
		RegionID:    &region.ID,
	}
	if rec.SourceFlag != nil {
		g.SourceFlag = *rec.SourceFlag
	}
	if rec.SourceName != nil {
		g.SourceName = *rec.SourceName
	}
	if rec.VirtualSource != nil {
		g.VirtualSource = *rec.VirtualSource
	}
	if rec.Info != nil {
		g.Info = *rec.Info
	}
	if err := s.repo.GarbageSource.Create(ctx, g); err != nil {
		s.logger.Error("创建垃圾来源失败", zap.Error(err))
		return nil, err
	}
	g.Region = region
	item := dto.NewGarbageSourceItem(g)
	return &item, nil
}

func (s *garbageService) UpdateSource(ctx context.Context, id int64, rec *dto.GarbageSourceRecord) (int64, error) {
	if rec.RegionID != nil {
		if _, err := s.checkRegion(ctx, rec.RegionID); err != nil {
			return 0, err
		}
	}
	n, err := s.repo.GarbageSource.Update(ctx, id, rec.Updates())
	if err != nil {
		s.logger.Error("更新垃圾来源失败", zap.Int64("id", id), zap.Error(err))
		return 0, err
	}
	return n, nil
}

func (s *garbageService) DeleteSource(ctx context.Context, id int64) (int64, error) {
	n, err := s.repo.GarbageSource.Delete(ctx, id)
	if err != nil {
		s.logger.Error("删除垃圾来源失败", zap.Int64("id", id), zap.Error(err))
		return 0, err
	}
	return n, nil
}

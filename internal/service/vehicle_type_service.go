package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/rensongqi/sanic-adminapi/internal/dto"
	"github.com/rensongqi/sanic-adminapi/internal/model"
	"github.com/rensongqi/sanic-adminapi/internal/repository"
)

// VehicleTypeService 车辆型号业务接口
type VehicleTypeService interface {
	List(ctx context.Context) ([]dto.VehicleTypeItem, error)
	Insert(ctx context.Context, rec *dto.VehicleTypeRecord) (*dto.VehicleTypeItem, error)
	Update(ctx context.Context, id int64, rec *dto.VehicleTypeRecord) (int64, error)
	// Delete 软删除，modify_state 置 2
	Delete(ctx context.Context, id int64) (int64, error)
}

type vehicleTypeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewVehicleTypeService 创建 VehicleTypeService 实例
func NewVehicleTypeService(repo *repository.Repository, logger *zap.Logger) VehicleTypeService {
	return &vehicleTypeService{repo: repo, logger: logger}
}

func (s *vehicleTypeService) List(ctx context.Context) ([]dto.VehicleTypeItem, error) {
	types, err := s.repo.VehicleType.ListActive(ctx)
	if err != nil {
		s.logger.Error("查询车辆型号失败", zap.Error(err))
		return nil, err
	}
	items := make([]dto.VehicleTypeItem, 0, len(types))
	for i := range types {
		items = append(items, dto.NewVehicleTypeItem(&types[i]))
	}
	return items, nil
}

func (s *vehicleTypeService) Insert(ctx context.Context, rec *dto.VehicleTypeRecord) (*dto.VehicleTypeItem, error) {
	now := time.Now()
	t := &model.VehicleType{
		ModifyState: model.ModifyStateActive,
		ModifyTime:  &now,
		UploadState: model.UploadStateUploaded,
	}
	if rec.VehicleTypeName != nil {
		t.VehicleTypeName = *rec.VehicleTypeName
	}
	if rec.VehicleTypeInfo != nil {
		t.VehicleTypeInfo = *rec.VehicleTypeInfo
	}

	if err := s.repo.VehicleType.Create(ctx, t); err != nil {
		s.logger.Error("创建车辆型号失败", zap.Error(err))
		return nil, err
	}
	item := dto.NewVehicleTypeItem(t)
	return &item, nil
}

func (s *vehicleTypeService) Update(ctx context.Context, id int64, rec *dto.VehicleTypeRecord) (int64, error) {
	updates := rec.Updates()
	updates["modify_time"] = time.Now()
	n, err := s.repo.VehicleType.Update(ctx, id, updates)
	if err != nil {
		s.logger.Error("更新车辆型号失败", zap.Int64("id", id), zap.Error(err))
		return 0, err
	}
	return n, nil
}

func (s *vehicleTypeService) Delete(ctx context.Context, id int64) (int64, error) {
	n, err := s.repo.VehicleType.Update(ctx, id, map[string]interface{}{
		"modify_state": model.ModifyStateScrapped,
		"modify_time":  time.Now(),
	})
	if err != nil {
		s.logger.Error("删除车辆型号失败", zap.Int64("id", id), zap.Error(err))
		return 0, err
	}
	return n, nil
}

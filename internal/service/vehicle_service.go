package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rensongqi/sanic-adminapi/config"
	"github.com/rensongqi/sanic-adminapi/internal/dto"
	"github.com/rensongqi/sanic-adminapi/internal/model"
	"github.com/rensongqi/sanic-adminapi/internal/repository"
)

// ── 车辆模块业务错误 ──

var (
	ErrVehicleNotFound     = errors.New("数据库中车辆信息有误")
	ErrVehicleIncomplete   = errors.New("此车辆部分信息缺失")
	ErrVehicleDeptNotFound = errors.New("车辆所属单位不存在")
	ErrVehicleTypeNotFound = errors.New("车辆型号不存在")
	ErrVehicleScrapped     = errors.New("车辆已报废")
)

// VehicleService 车辆业务接口
type VehicleService interface {
	QueryDropItems(ctx context.Context) (*dto.VehicleQueryDropItems, error)
	InsertDropItems(ctx context.Context) (*dto.VehicleInsertDropItems, error)
	List(ctx context.Context, f *dto.VehicleFilter, page dto.PageQuery) ([]dto.VehicleItem, int64, error)
	ListScrapped(ctx context.Context, f *dto.ScrappedVehicleFilter, page dto.PageQuery) ([]dto.VehicleItem, int64, error)
	// Get 关联信息缺失时同时返回车辆与 ErrVehicleIncomplete
	Get(ctx context.Context, id int64) (*dto.VehicleItem, error)
	Insert(ctx context.Context, rec *dto.VehicleRecord) (*dto.VehicleItem, error)
	Update(ctx context.Context, id int64, rec *dto.VehicleRecord) (int64, error)
	Scrap(ctx context.Context, id int64) (int64, error)
}

type vehicleService struct {
	cfg    *config.BusinessConfig
	repo   *repository.Repository
	logger *zap.Logger
}

// NewVehicleService 创建 VehicleService 实例
func NewVehicleService(cfg *config.BusinessConfig, repo *repository.Repository, logger *zap.Logger) VehicleService {
	return &vehicleService{cfg: cfg, repo: repo, logger: logger}
}

// ────────────────────── 下拉栏 ──────────────────────

func (s *vehicleService) QueryDropItems(ctx context.Context) (*dto.VehicleQueryDropItems, error) {
	depts, err := s.repo.Department.ListNames(ctx, s.cfg.HiddenDeptID)
	if err != nil {
		s.logger.Error("查询单位名称失败", zap.Error(err))
		return nil, err
	}
	types, err := s.repo.VehicleType.ListActive(ctx)
	if err != nil {
		s.logger.Error("查询车辆型号失败", zap.Error(err))
		return nil, err
	}
	drivers, err := s.repo.Driver.ListAll(ctx)
	if err != nil {
		s.logger.Error("查询司机失败", zap.Error(err))
		return nil, err
	}

	items := &dto.VehicleQueryDropItems{
		Depts:        depts,
		VehicleTypes: make([]string, 0, len(types)),
		Drivers:      make([]string, 0, len(drivers)),
	}
	for _, t := range types {
		items.VehicleTypes = append(items.VehicleTypes, t.VehicleTypeName)
	}
	for _, d := range drivers {
		items.Drivers = append(items.Drivers, d.DriverName)
	}
	return items, nil
}

func (s *vehicleService) InsertDropItems(ctx context.Context) (*dto.VehicleInsertDropItems, error) {
	types, err := s.repo.VehicleType.ListActive(ctx)
	if err != nil {
		s.logger.Error("查询车辆型号失败", zap.Error(err))
		return nil, err
	}
	depts, err := s.repo.Department.List(ctx)
	if err != nil {
		s.logger.Error("查询单位失败", zap.Error(err))
		return nil, err
	}
	sources, err := s.repo.GarbageSource.List(ctx)
	if err != nil {
		s.logger.Error("查询垃圾来源失败", zap.Error(err))
		return nil, err
	}
	garbageTypes, err := s.repo.GarbageType.ListActive(ctx)
	if err != nil {
		s.logger.Error("查询垃圾类型失败", zap.Error(err))
		return nil, err
	}
	drivers, err := s.repo.Driver.ListAll(ctx)
	if err != nil {
		s.logger.Error("查询司机失败", zap.Error(err))
		return nil, err
	}

	items := &dto.VehicleInsertDropItems{
		VehicleTypes: make([]dto.VehicleTypeOption, 0, len(types)),
		Depts:        make([]dto.DepartmentOption, 0, len(depts)),
		Sources:      make([]dto.GarbageSourceOption, 0, len(sources)),
		GarbageTypes: make([]dto.GarbageTypeOption, 0, len(garbageTypes)),
		Drivers:      make([]dto.DriverOption, 0, len(drivers)),
	}
	for _, t := range types {
		items.VehicleTypes = append(items.VehicleTypes, dto.VehicleTypeOption{ID: t.ID, VehicleTypeName: t.VehicleTypeName})
	}
	for _, d := range depts {
		items.Depts = append(items.Depts, dto.DepartmentOption{ID: d.ID, DepartmentName: d.DepartmentName})
	}
	for _, src := range sources {
		opt := dto.GarbageSourceOption{ID: src.ID, SourceName: src.SourceName}
		if src.Region != nil {
			opt.RegionName = src.Region.RegionName
		}
		items.Sources = append(items.Sources, opt)
	}
	for _, g := range garbageTypes {
		items.GarbageTypes = append(items.GarbageTypes, dto.GarbageTypeOption{ID: g.ID, GarbageTypeName: g.GarbageTypeName})
	}
	for _, d := range drivers {
		items.Drivers = append(items.Drivers, dto.DriverOption{ID: d.ID, DriverName: d.DriverName})
	}
	return items, nil
}

// ────────────────────── List ──────────────────────

func (s *vehicleService) List(ctx context.Context, f *dto.VehicleFilter, page dto.PageQuery) ([]dto.VehicleItem, int64, error) {
	return s.list(ctx, repository.VehicleFilter{
		ModifyState:     model.ModifyStateActive,
		VehicleNo:       f.VehicleNoContains,
		VehicleDoorNo:   f.VehicleDoorNoContains,
		VehicleTypeName: f.VehicleTypeName,
		DeptName:        f.DepartmentName,
		Driver:          f.Driver,
	}, page)
}

func (s *vehicleService) ListScrapped(ctx context.Context, f *dto.ScrappedVehicleFilter, page dto.PageQuery) ([]dto.VehicleItem, int64, error) {
	vf := f.ToVehicleFilter()
	return s.list(ctx, repository.VehicleFilter{
		ModifyState:     model.ModifyStateScrapped,
		VehicleNo:       vf.VehicleNoContains,
		VehicleDoorNo:   vf.VehicleDoorNoContains,
		VehicleTypeName: vf.VehicleTypeName,
		DeptName:        vf.DepartmentName,
	}, page)
}

func (s *vehicleService) list(ctx context.Context, f repository.VehicleFilter, page dto.PageQuery) ([]dto.VehicleItem, int64, error) {
	vehicles, total, err := s.repo.Vehicle.List(ctx, f, page.Offset(), page.Length)
	if err != nil {
		s.logger.Error("查询车辆列表失败", zap.Error(err))
		return nil, 0, err
	}
	items := make([]dto.VehicleItem, 0, len(vehicles))
	for i := range vehicles {
		items = append(items, dto.NewVehicleItem(&vehicles[i]))
	}
	return items, total, nil
}

// ────────────────────── Get ──────────────────────

func (s *vehicleService) Get(ctx context.Context, id int64) (*dto.VehicleItem, error) {
	v, err := s.repo.Vehicle.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("查询车辆失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	item := dto.NewVehicleItem(v)
	if v.Dept == nil || v.VehicleType == nil || v.Card == nil || v.GarbageType == nil || v.GarbageSource == nil {
		return &item, ErrVehicleIncomplete
	}
	return &item, nil
}

// ────────────────────── Insert ──────────────────────

func (s *vehicleService) Insert(ctx context.Context, rec *dto.VehicleRecord) (*dto.VehicleItem, error) {
	now := time.Now()
	v := &model.Vehicle{
		ModifyState: model.ModifyStateActive,
		ModifyTime:  &now,
		BuyCost:     decimal.Zero,
		UploadState: model.UploadStateUploaded,
	}
	if rec.VehicleNo != nil {
		v.VehicleNo = *rec.VehicleNo
	}
	if rec.VehicleDoorNo != nil {
		v.VehicleDoorNo = *rec.VehicleDoorNo
	}
	if rec.TareWeight != nil {
		v.TareWeight = *rec.TareWeight
	}
	if rec.MaxNetWeight != nil {
		v.MaxNetWeight = *rec.MaxNetWeight
	}
	if rec.VehicleInfo != nil {
		v.VehicleInfo = *rec.VehicleInfo
	}
	if rec.Driver != nil {
		v.Driver = *rec.Driver
	}

	// 单位与型号必须存在
	if rec.DeptID == nil {
		return nil, ErrVehicleDeptNotFound
	}
	if rec.VehicleTypeID == nil {
		return nil, ErrVehicleTypeNotFound
	}
	if err := s.checkRequiredRefs(ctx, rec); err != nil {
		return nil, err
	}
	v.DeptID = rec.DeptID
	v.VehicleTypeID = rec.VehicleTypeID

	// 垃圾来源与类型找不到时置空
	if rec.GarbageSourceID != nil && *rec.GarbageSourceID != 0 {
		if _, err := s.repo.GarbageSource.GetByID(ctx, *rec.GarbageSourceID); err == nil {
			v.GarbageSourceID = rec.GarbageSourceID
		} else if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Error("查询垃圾来源失败", zap.Error(err))
			return nil, err
		}
	}
	if rec.GarbageTypeID != nil && *rec.GarbageTypeID != 0 {
		if _, err := s.repo.GarbageType.GetByID(ctx, *rec.GarbageTypeID); err == nil {
			v.GarbageTypeID = rec.GarbageTypeID
		} else if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Error("查询垃圾类型失败", zap.Error(err))
			return nil, err
		}
	}

	if err := s.repo.Vehicle.Create(ctx, v); err != nil {
		s.logger.Error("创建车辆失败", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.Vehicle.GetByID(ctx, v.ID)
	if err != nil {
		s.logger.Error("查询新建车辆失败", zap.Int64("id", v.ID), zap.Error(err))
		return nil, err
	}
	item := dto.NewVehicleItem(created)
	return &item, nil
}

// checkRequiredRefs 校验记录中给出的单位与型号，未给出的字段跳过
func (s *vehicleService) checkRequiredRefs(ctx context.Context, rec *dto.VehicleRecord) error {
	if rec.DeptID != nil {
		if *rec.DeptID == 0 {
			return ErrVehicleDeptNotFound
		}
		if _, err := s.repo.Department.GetByID(ctx, *rec.DeptID); err != nil {
			return s.refError(err, ErrVehicleDeptNotFound)
		}
	}
	if rec.VehicleTypeID != nil {
		if *rec.VehicleTypeID == 0 {
			return ErrVehicleTypeNotFound
		}
		if _, err := s.repo.VehicleType.GetByID(ctx, *rec.VehicleTypeID); err != nil {
			return s.refError(err, ErrVehicleTypeNotFound)
		}
	}
	return nil
}

func (s *vehicleService) refError(err, notFound error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound
	}
	s.logger.Error("查询车辆关联信息失败", zap.Error(err))
	return err
}

// ────────────────────── Update / Scrap ──────────────────────

// Update 报废状态不可逆，已报废车辆返回 ErrVehicleScrapped
func (s *vehicleService) Update(ctx context.Context, id int64, rec *dto.VehicleRecord) (int64, error) {
	if err := s.checkRequiredRefs(ctx, rec); err != nil {
		return 0, err
	}

	updates := rec.Updates()
	updates["modify_time"] = time.Now()

	n, err := s.repo.Vehicle.UpdateActive(ctx, id, updates)
	if err != nil {
		s.logger.Error("更新车辆失败", zap.Int64("id", id), zap.Error(err))
		return 0, err
	}
	if n > 0 {
		return n, nil
	}

	// 未命中：区分已报废与不存在
	v, err := s.repo.Vehicle.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, nil
		}
		s.logger.Error("查询车辆失败", zap.Int64("id", id), zap.Error(err))
		return 0, err
	}
	if v.ModifyState == model.ModifyStateScrapped {
		return 0, ErrVehicleScrapped
	}
	return 0, nil
}

func (s *vehicleService) Scrap(ctx context.Context, id int64) (int64, error) {
	n, err := s.repo.Vehicle.Update(ctx, id, map[string]interface{}{
		"modify_state": model.ModifyStateScrapped,
		"modify_time":  time.Now(),
	})
	if err != nil {
		s.logger.Error("报废车辆失败", zap.Int64("id", id), zap.Error(err))
		return 0, err
	}
	return n, nil
}

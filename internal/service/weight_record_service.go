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

// ── 称重记录模块业务错误 ──

var (
	ErrWeightRecordNotFound  = errors.New("称重记录不存在")
	ErrWeightRecordMissing   = errors.New("缺少称重记录")
	ErrWeightTimeFormat      = errors.New("称重时间格式错误")
	ErrGarbageSourceMismatch = errors.New("对应垃圾来源数据有误")
	ErrClassifyField         = errors.New("过滤字段格式有误")
)

// classifyAll 分类值为 all 时不按该字段过滤
const classifyAll = "all"

// exportLimit 单次导出的最大行数
const exportLimit = 10000

// WeightRecordService 称重记录业务接口
type WeightRecordService interface {
	DropItems(ctx context.Context) (*dto.WeightRecordDropItems, error)
	GetFull(ctx context.Context, id int64) (*dto.WeightRecordFull, error)
	List(ctx context.Context, f *dto.WeightRecordFilter, page dto.PageQuery) ([]dto.WeightRecordItem, int64, error)
	// ListAll 导出用，不分页，最多 exportLimit 行
	ListAll(ctx context.Context, f *dto.WeightRecordFilter) ([]dto.WeightRecordItem, error)
	// Insert 手动补录，account 为当前登录账号
	Insert(ctx context.Context, input *dto.WeightRecordInput, account string) (*dto.WeightRecordItem, error)
	// Classify 去掉空字段后必须恰好剩一个分类维度，否则返回 ErrClassifyField
	Classify(ctx context.Context, req *dto.ClassifyRequest) ([]dto.ClassifiedItem, error)
}

type weightRecordService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewWeightRecordService 创建 WeightRecordService 实例
func NewWeightRecordService(repo *repository.Repository, logger *zap.Logger) WeightRecordService {
	return &weightRecordService{repo: repo, logger: logger}
}

// ────────────────────── 下拉栏 ──────────────────────

func (s *weightRecordService) DropItems(ctx context.Context) (*dto.WeightRecordDropItems, error) {
	types, err := s.repo.VehicleType.ListActive(ctx)
	if err != nil {
		s.logger.Error("查询车辆型号失败", zap.Error(err))
		return nil, err
	}
	depts, err := s.repo.Department.ListNames(ctx, 0)
	if err != nil {
		s.logger.Error("查询单位名称失败", zap.Error(err))
		return nil, err
	}
	garbageTypes, err := s.repo.GarbageType.ListActive(ctx)
	if err != nil {
		s.logger.Error("查询垃圾类型失败", zap.Error(err))
		return nil, err
	}
	sources, err := s.repo.GarbageSource.List(ctx)
	if err != nil {
		s.logger.Error("查询垃圾来源失败", zap.Error(err))
		return nil, err
	}
	regions, err := s.repo.Region.List(ctx)
	if err != nil {
		s.logger.Error("查询区域失败", zap.Error(err))
		return nil, err
	}
	drivers, err := s.repo.Driver.ListAll(ctx)
	if err != nil {
		s.logger.Error("查询司机失败", zap.Error(err))
		return nil, err
	}

	items := &dto.WeightRecordDropItems{
		VehicleTypes:   make([]string, 0, len(types)),
		Depts:          depts,
		GarbageTypes:   make([]string, 0, len(garbageTypes)),
		GarbageSources: make([]string, 0, len(sources)),
		Region:         make([]string, 0, len(regions)),
		Drivers:        make([]string, 0, len(drivers)),
	}
	for _, t := range types {
		items.VehicleTypes = append(items.VehicleTypes, t.VehicleTypeName)
	}
	for _, g := range garbageTypes {
		items.GarbageTypes = append(items.GarbageTypes, g.GarbageTypeName)
	}
	for _, src := range sources {
		items.GarbageSources = append(items.GarbageSources, src.SourceName)
	}
	for _, r := range regions {
		items.Region = append(items.Region, r.RegionName)
	}
	for _, d := range drivers {
		items.Drivers = append(items.Drivers, d.DriverName)
	}
	return items, nil
}

// ────────────────────── 查询 ──────────────────────

func (s *weightRecordService) GetFull(ctx context.Context, id int64) (*dto.WeightRecordFull, error) {
	w, err := s.repo.WeightRecord.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWeightRecordNotFound
		}
		s.logger.Error("查询称重记录失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	full := dto.NewWeightRecordFull(w)
	return &full, nil
}

// toWeightFilter 转换查询条件，TimeFiltered 为 false 时忽略起止时间
func toWeightFilter(f *dto.WeightRecordFilter) (repository.WeightFilter, error) {
	wf := repository.WeightFilter{
		VehicleNo:         f.VehicleNoContains,
		VehicleDoorNo:     f.VehicleDoorNoContains,
		VehicleTypeName:   f.VehicleType,
		DeptName:          f.TransDept,
		GarbageTypeName:   f.GarbageType,
		GarbageSourceName: f.GarbageSource,
		RegionName:        f.RegionNameContains,
		DriverName:        f.Driver,
	}
	if !f.TimeFiltered {
		return wf, nil
	}
	start, end, err := parseWindow(f.StartTime, f.EndTime)
	if err != nil {
		return wf, err
	}
	wf.Start, wf.End = start, end
	return wf, nil
}

// parseWindow 解析闭区间时间窗口，空串表示该端不限
func parseWindow(start, end string) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if start != "" {
		t, err := dto.ParseDateTime(start)
		if err != nil {
			return nil, nil, ErrWeightTimeFormat
		}
		from = &t
	}
	if end != "" {
		t, err := dto.ParseDateTime(end)
		if err != nil {
			return nil, nil, ErrWeightTimeFormat
		}
		to = &t
	}
	return from, to, nil
}

func (s *weightRecordService) List(ctx context.Context, f *dto.WeightRecordFilter, page dto.PageQuery) ([]dto.WeightRecordItem, int64, error) {
	wf, err := toWeightFilter(f)
	if err != nil {
		return nil, 0, err
	}
	return s.list(ctx, wf, page.Offset(), page.Length)
}

func (s *weightRecordService) ListAll(ctx context.Context, f *dto.WeightRecordFilter) ([]dto.WeightRecordItem, error) {
	wf, err := toWeightFilter(f)
	if err != nil {
		return nil, err
	}
	items, _, err := s.list(ctx, wf, 0, exportLimit)
	return items, err
}

func (s *weightRecordService) list(ctx context.Context, wf repository.WeightFilter, offset, limit int) ([]dto.WeightRecordItem, int64, error) {
	records, total, err := s.repo.WeightRecord.List(ctx, wf, offset, limit)
	if err != nil {
		s.logger.Error("查询称重记录失败", zap.Error(err))
		return nil, 0, err
	}
	items := make([]dto.WeightRecordItem, 0, len(records))
	for i := range records {
		items = append(items, dto.NewWeightRecordItem(&records[i]))
	}
	return items, total, nil
}

// ────────────────────── Insert ──────────────────────

func (s *weightRecordService) Insert(ctx context.Context, input *dto.WeightRecordInput, account string) (*dto.WeightRecordItem, error) {
	if input == nil {
		return nil, ErrWeightRecordMissing
	}

	// 垃圾来源按名称必须唯一命中
	sources, err := s.repo.GarbageSource.ListByName(ctx, input.GarbageSource, 2)
	if err != nil {
		s.logger.Error("查询垃圾来源失败", zap.Error(err))
		return nil, err
	}
	if len(sources) != 1 {
		return nil, ErrGarbageSourceMismatch
	}

	timeWeight := time.Now()
	if input.TimeWeight != "" {
		t, err := dto.ParseDateTime(input.TimeWeight)
		if err != nil {
			return nil, ErrWeightTimeFormat
		}
		timeWeight = t
	}

	w := &model.WeightRecord{
		GarbageSourceID: &sources[0].ID,
		WeightGross:     input.WeightGross,
		WeightTare:      input.WeightTare,
		TimeWeight:      &timeWeight,
		DataMark:        model.DataMarkManual,
		IDCenter:        0,
		PoundID:         dto.IDPtr(input.PoundID),
		UserID:          account,
		Info:            input.Info,
	}

	if input.VehicleNo != "" {
		v, err := s.repo.Vehicle.GetActiveByNo(ctx, input.VehicleNo)
		if err == nil {
			w.VehicleID = &v.ID
		} else if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Error("查询车辆失败", zap.String("vehicle_no", input.VehicleNo), zap.Error(err))
			return nil, err
		}
	}
	if input.Driver != "" {
		d, err := s.repo.Driver.FindByName(ctx, input.Driver)
		if err == nil {
			w.DriverID = &d.ID
		} else if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Error("查询司机失败", zap.String("driver", input.Driver), zap.Error(err))
			return nil, err
		}
	}
	if input.GarbageType != "" {
		g, err := s.repo.GarbageType.FindByName(ctx, input.GarbageType)
		if err == nil {
			w.GarbageTypeID = &g.ID
		} else if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Error("查询垃圾类型失败", zap.String("garbage_type", input.GarbageType), zap.Error(err))
			return nil, err
		}
	}

	if err := s.repo.WeightRecord.Create(ctx, w); err != nil {
		s.logger.Error("创建称重记录失败", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.WeightRecord.GetByID(ctx, w.ID)
	if err != nil {
		s.logger.Error("查询新建称重记录失败", zap.Int64("id", w.ID), zap.Error(err))
		return nil, err
	}
	item := dto.NewWeightRecordItem(created)
	return &item, nil
}

// ────────────────────── Classify ──────────────────────

// classifyDimension 分类字段到汇总维度
var classifyDimension = map[string]repository.GroupKey{
	"vehicle_type":                        repository.GroupVehicleType,
	"trans_dept":                          repository.GroupDept,
	"garbage_type":                        repository.GroupGarbageType,
	"garbage_source__source_name":         repository.GroupSource,
	"garbage_source__region__region_name": repository.GroupRegion,
}

func (s *weightRecordService) Classify(ctx context.Context, req *dto.ClassifyRequest) ([]dto.ClassifiedItem, error) {
	dims := req.Dimensions()
	if len(dims) != 1 {
		return nil, ErrClassifyField
	}

	var (
		field string
		value string
	)
	for k, v := range dims {
		field, value = k, v.(string)
	}
	key := classifyDimension[field]

	var f repository.WeightFilter
	if value != classifyAll {
		switch key {
		case repository.GroupVehicleType:
			f.VehicleTypeName = value
		case repository.GroupDept:
			f.DeptName = value
		case repository.GroupGarbageType:
			f.GarbageTypeName = value
		case repository.GroupSource:
			f.GarbageSourceName = value
		case repository.GroupRegion:
			f.RegionName = value
		}
	}
	if req.StartTime != "" && req.EndTime != "" {
		start, end, err := parseWindow(req.StartTime, req.EndTime)
		if err != nil {
			return nil, err
		}
		f.Start, f.End = start, end
	}

	rows, err := s.repo.WeightRecord.Group(ctx, repository.GroupQuery{
		Filter:      f,
		By:          []repository.GroupKey{key},
		CountColumn: repository.CountVehicles,
	})
	if err != nil {
		s.logger.Error("称重分类统计失败", zap.String("field", field), zap.Error(err))
		return nil, err
	}

	items := make([]dto.ClassifiedItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.ClassifiedItem{
			ClassifiedName: classifiedName(row, key),
			WeightGrossSum: dto.FormatDecimal(row.WeightGrossSum),
			WeightTareSum:  dto.FormatDecimal(row.WeightTareSum),
			WeightNetSum:   dto.FormatDecimal(row.WeightNetSum()),
			VehicleNoCount: row.VehicleNum,
		})
	}
	return items, nil
}

func classifiedName(row repository.GroupRow, key repository.GroupKey) string {
	switch key {
	case repository.GroupVehicleType:
		return row.VehicleTypeName
	case repository.GroupDept:
		return row.DeptName
	case repository.GroupGarbageType:
		return row.GarbageTypeName
	case repository.GroupSource:
		return row.SourceName
	default:
		return row.RegionName
	}
}

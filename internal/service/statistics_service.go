package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rensongqi/sanic-adminapi/config"
	"github.com/rensongqi/sanic-adminapi/internal/dto"
	"github.com/rensongqi/sanic-adminapi/internal/repository"
)

// ── 统计模块业务错误 ──

var (
	ErrStatTimeFormat  = errors.New("统计时间格式错误")
	ErrStatMonthFormat = errors.New("统计月份格式错误")
)

// 地磅清运统计表类型
const (
	PoundStatAll         = 0
	PoundStatOnlyDept    = 1
	PoundStatExcludeDept = 2
)

// dictDataType 数据字典中数据类型的分类名
const dictDataType = "DataType"

// poundStatisticTypes 地磅清运统计表类型下拉栏
var poundStatisticTypes = []dto.StatisticTypeOption{
	{ID: PoundStatOnlyDept, DriverName: "永康市卫生环卫管理处"},
	{ID: PoundStatExcludeDept, DriverName: "去除永康市环卫管理处"},
}

// StatisticsService 统计报表业务接口
type StatisticsService interface {
	DropItems(ctx context.Context) (*dto.TransQueryDropItems, error)
	TransInfo(ctx context.Context, f *dto.StatFilter, page dto.PageQuery) (*dto.TransInfo, error)
	RegionWeightInfo(ctx context.Context, f *dto.StatFilter) (*dto.RegionWeightInfo, error)
	GarbageSourceTransInfo(ctx context.Context, f *dto.MonthStatFilter) (*dto.GarbageSourceTransInfo, error)
	PoundGarbageInfo(ctx context.Context, f *dto.PoundGarbageFilter) (*dto.PoundGarbageInfo, error)
	TransGroupByDate(ctx context.Context, f *dto.StatFilter) (*dto.TransGroupByDateInfo, error)
}

type statisticsService struct {
	cfg    *config.BusinessConfig
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStatisticsService 创建 StatisticsService 实例
func NewStatisticsService(cfg *config.BusinessConfig, repo *repository.Repository, logger *zap.Logger) StatisticsService {
	return &statisticsService{cfg: cfg, repo: repo, logger: logger}
}

// ────────────────────── 下拉栏 ──────────────────────

func (s *statisticsService) DropItems(ctx context.Context) (*dto.TransQueryDropItems, error) {
	pounds, err := s.repo.Pound.ListAll(ctx)
	if err != nil {
		s.logger.Error("查询地磅站失败", zap.Error(err))
		return nil, err
	}
	depts, err := s.repo.Department.List(ctx)
	if err != nil {
		s.logger.Error("查询单位失败", zap.Error(err))
		return nil, err
	}
	dataTypes, err := s.repo.Dictionary.ListValues(ctx, dictDataType)
	if err != nil {
		s.logger.Error("查询数据类型字典失败", zap.Error(err))
		return nil, err
	}
	regions, err := s.repo.Region.List(ctx)
	if err != nil {
		s.logger.Error("查询区域失败", zap.Error(err))
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

	items := &dto.TransQueryDropItems{
		Pounds:                    make([]dto.PoundOption, 0, len(pounds)),
		Depts:                     make([]dto.DepartmentOption, 0, len(depts)),
		DataTypes:                 dataTypes,
		Regions:                   make([]dto.RegionOption, 0, len(regions)),
		GarbageSources:            make([]dto.GarbageSourceNameOption, 0, len(sources)),
		GarbageTypes:              make([]dto.GarbageTypeOption, 0, len(garbageTypes)),
		Drivers:                   make([]dto.DriverOption, 0, len(drivers)),
		PoundGarbageStatisticType: poundStatisticTypes,
	}
	if items.DataTypes == nil {
		items.DataTypes = []string{}
	}
	for _, p := range pounds {
		items.Pounds = append(items.Pounds, dto.PoundOption{ID: p.ID, CompName: p.CompName})
	}
	for _, d := range depts {
		items.Depts = append(items.Depts, dto.DepartmentOption{ID: d.ID, DepartmentName: d.DepartmentName})
	}
	for _, r := range regions {
		items.Regions = append(items.Regions, dto.RegionOption{ID: r.ID, RegionName: r.RegionName})
	}
	for _, src := range sources {
		items.GarbageSources = append(items.GarbageSources, dto.GarbageSourceNameOption{ID: src.ID, SourceName: src.SourceName})
	}
	for _, g := range garbageTypes {
		items.GarbageTypes = append(items.GarbageTypes, dto.GarbageTypeOption{ID: g.ID, GarbageTypeName: g.GarbageTypeName})
	}
	for _, d := range drivers {
		items.Drivers = append(items.Drivers, dto.DriverOption{ID: d.ID, DriverName: d.DriverName})
	}
	return items, nil
}

// ── 条件转换 ──

func statWeightFilter(f *dto.StatFilter) (repository.WeightFilter, error) {
	wf := repository.WeightFilter{
		PoundID:         f.PoundID,
		DeptID:          f.DeptID,
		RegionID:        f.RegionID,
		GarbageSourceID: f.GarbageSourceID,
		GarbageTypeID:   f.GarbageTypeID,
		DriverID:        f.DriverID,
		VehicleNo:       f.VehicleNoContains,
		VehicleDoorNo:   f.VehicleDoorNoContains,
		Info:            f.Info,
	}
	start, end, err := parseWindow(f.StartTime, f.EndTime)
	if err != nil {
		return wf, ErrStatTimeFormat
	}
	wf.Start, wf.End = start, end
	return wf, nil
}

// monthWindow 返回整月的闭区间
func monthWindow(month string) (*time.Time, *time.Time, error) {
	start, next, err := dto.ParseMonth(month)
	if err != nil {
		return nil, nil, ErrStatMonthFormat
	}
	end := next.Add(-time.Microsecond)
	return &start, &end, nil
}

func (s *statisticsService) group(ctx context.Context, f repository.WeightFilter, countColumn string, by ...repository.GroupKey) ([]repository.GroupRow, error) {
	rows, err := s.repo.WeightRecord.Group(ctx, repository.GroupQuery{Filter: f, By: by, CountColumn: countColumn})
	if err != nil {
		s.logger.Error("称重汇总查询失败", zap.Error(err))
		return nil, err
	}
	return rows, nil
}

// ────────────────────── 清运明细 ──────────────────────

func (s *statisticsService) TransInfo(ctx context.Context, f *dto.StatFilter, page dto.PageQuery) (*dto.TransInfo, error) {
	wf, err := statWeightFilter(f)
	if err != nil {
		return nil, err
	}

	sums, err := s.repo.WeightRecord.Sums(ctx, wf)
	if err != nil {
		s.logger.Error("统计称重合计失败", zap.Error(err))
		return nil, err
	}
	records, _, err := s.repo.WeightRecord.List(ctx, wf, page.Offset(), page.Length)
	if err != nil {
		s.logger.Error("查询清运明细失败", zap.Error(err))
		return nil, err
	}

	info := &dto.TransInfo{
		WeightRecords:  make([]dto.WeightRecordItem, 0, len(records)),
		RecordCount:    sums.RecordCount,
		WeightGrossSum: dto.FormatDecimal(sums.WeightGrossSum),
		WeightTareSum:  dto.FormatDecimal(sums.WeightTareSum),
		WeightNetSum:   dto.FormatDecimal(sums.WeightNetSum()),
	}
	for i := range records {
		info.WeightRecords = append(info.WeightRecords, dto.NewWeightRecordItem(&records[i]))
	}
	return info, nil
}

// ────────────────────── 区域垃圾量 ──────────────────────

func (s *statisticsService) RegionWeightInfo(ctx context.Context, f *dto.StatFilter) (*dto.RegionWeightInfo, error) {
	wf, err := statWeightFilter(f)
	if err != nil {
		return nil, err
	}
	rows, err := s.group(ctx, wf, repository.CountRecords, repository.GroupRegion, repository.GroupDept)
	if err != nil {
		return nil, err
	}

	// 环卫处按单位名称归类，单位不存在时全部计入乡镇
	var sanitationName string
	if dept, err := s.repo.Department.GetByID(ctx, s.cfg.SanitationDeptID); err == nil {
		sanitationName = dept.DepartmentName
	} else if !errors.Is(err, repository.ErrNotFound) {
		s.logger.Error("查询环卫处单位失败", zap.Int64("dept_id", s.cfg.SanitationDeptID), zap.Error(err))
		return nil, err
	} else {
		s.logger.Warn("环卫处单位不存在", zap.Int64("dept_id", s.cfg.SanitationDeptID))
	}

	var (
		total, sanitation, towns          int64
		netTotal, sanitationNet, townsNet = decimal.Zero, decimal.Zero, decimal.Zero
	)
	info := &dto.RegionWeightInfo{GroupWeightRecords: make([]dto.RegionDeptGroup, 0, len(rows))}
	for _, row := range rows {
		net := row.WeightNetSum()
		info.GroupWeightRecords = append(info.GroupWeightRecords, dto.RegionDeptGroup{
			RegionName:     row.RegionName,
			DepartmentName: row.DeptName,
			VehicleNum:     row.VehicleNum,
			WeightGrossSum: dto.FormatDecimal(row.WeightGrossSum),
			WeightTareSum:  dto.FormatDecimal(row.WeightTareSum),
			WeightNetSum:   dto.FormatDecimal(net),
		})
		total += row.VehicleNum
		netTotal = netTotal.Add(net)
		if sanitationName != "" && row.DeptName == sanitationName {
			sanitation += row.VehicleNum
			sanitationNet = sanitationNet.Add(net)
		} else {
			towns += row.VehicleNum
			townsNet = townsNet.Add(net)
		}
	}

	info.VehicleNumTotal = total
	info.WeightNetTotal = dto.FormatDecimal(netTotal)
	info.SanitationTotalVehicleNum = sanitation
	info.SanitationTotalGarbageWeight = dto.FormatDecimal(sanitationNet)
	info.TownsTotalVehicleNum = towns
	info.TownsTotalGarbageWeight = dto.FormatDecimal(townsNet)
	return info, nil
}

// ────────────────────── 垃圾来源月度清运 ──────────────────────

func (s *statisticsService) GarbageSourceTransInfo(ctx context.Context, f *dto.MonthStatFilter) (*dto.GarbageSourceTransInfo, error) {
	start, end, err := monthWindow(f.Month)
	if err != nil {
		return nil, err
	}
	wf := repository.WeightFilter{
		PoundID:         f.PoundID,
		DeptID:          f.DeptID,
		RegionID:        f.RegionID,
		GarbageSourceID: f.GarbageSourceID,
		GarbageTypeID:   f.GarbageTypeID,
		Start:           start,
		End:             end,
	}

	bySourceDate, err := s.group(ctx, wf, repository.CountRecords, repository.GroupSource, repository.GroupDayOfMonth)
	if err != nil {
		return nil, err
	}
	byDate, err := s.group(ctx, wf, repository.CountRecords, repository.GroupDayOfMonth)
	if err != nil {
		return nil, err
	}
	bySource, err := s.group(ctx, wf, repository.CountRecords, repository.GroupSource)
	if err != nil {
		return nil, err
	}

	return &dto.GarbageSourceTransInfo{
		GroupWeightRecords:             toSourceDateGroups(bySourceDate),
		VehicleNumGroupByDate:          toDateGroups(byDate, f.Month),
		VehicleNumGroupByGarbageSource: toSourceGroups(bySource),
	}, nil
}

// ────────────────────── 地磅月度清运 ──────────────────────

func (s *statisticsService) PoundGarbageInfo(ctx context.Context, f *dto.PoundGarbageFilter) (*dto.PoundGarbageInfo, error) {
	start, end, err := monthWindow(f.Month)
	if err != nil {
		return nil, err
	}
	wf := repository.WeightFilter{PoundID: f.PoundID, Start: start, End: end}
	switch f.Type {
	case PoundStatOnlyDept:
		wf.OnlyDeptID = s.cfg.PoundStatDeptID
	case PoundStatExcludeDept:
		wf.ExcludeDeptID = s.cfg.PoundStatDeptID
	}

	byDate, err := s.group(ctx, wf, repository.CountRecords, repository.GroupDayOfMonth)
	if err != nil {
		return nil, err
	}
	sums, err := s.repo.WeightRecord.Sums(ctx, wf)
	if err != nil {
		s.logger.Error("统计地磅月度合计失败", zap.Error(err))
		return nil, err
	}

	return &dto.PoundGarbageInfo{
		WeightRecordsGroupByDate: toDateGroups(byDate, f.Month),
		VehicleNumTotal:          sums.RecordCount,
		WeightNetTotal:           dto.FormatDecimal(sums.WeightNetSum()),
		WeightGrossTotal:         dto.FormatDecimal(sums.WeightGrossSum),
		WeightTareTotal:          dto.FormatDecimal(sums.WeightTareSum),
	}, nil
}

// ────────────────────── 按日期/来源汇总 ──────────────────────

func (s *statisticsService) TransGroupByDate(ctx context.Context, f *dto.StatFilter) (*dto.TransGroupByDateInfo, error) {
	wf, err := statWeightFilter(f)
	if err != nil {
		return nil, err
	}

	byDateSource, err := s.group(ctx, wf, repository.CountRecords, repository.GroupDate, repository.GroupSource)
	if err != nil {
		return nil, err
	}
	byDate, err := s.group(ctx, wf, repository.CountRecords, repository.GroupDate)
	if err != nil {
		return nil, err
	}
	bySource, err := s.group(ctx, wf, repository.CountRecords, repository.GroupSource)
	if err != nil {
		return nil, err
	}

	return &dto.TransGroupByDateInfo{
		WeightRecordsGroupByDateSource: toSourceDateGroups(byDateSource),
		WeightRecordsGroupByDate:       toDateGroups(byDate, ""),
		WeightRecordsGroupBySource:     toSourceGroups(bySource),
	}, nil
}

// ── 结果转换 ──

func toSourceDateGroups(rows []repository.GroupRow) []dto.SourceDateGroup {
	out := make([]dto.SourceDateGroup, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.SourceDateGroup{
			SourceName:     row.SourceName,
			Date:           row.Date,
			VehicleNum:     row.VehicleNum,
			WeightGrossSum: dto.FormatDecimal(row.WeightGrossSum),
			WeightTareSum:  dto.FormatDecimal(row.WeightTareSum),
			WeightNetSum:   dto.FormatDecimal(row.WeightNetSum()),
		})
	}
	return out
}

func toDateGroups(rows []repository.GroupRow, month string) []dto.DateGroup {
	out := make([]dto.DateGroup, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.DateGroup{
			Date:           row.Date,
			Month:          month,
			VehicleNum:     row.VehicleNum,
			WeightGrossSum: dto.FormatDecimal(row.WeightGrossSum),
			WeightTareSum:  dto.FormatDecimal(row.WeightTareSum),
			WeightNetSum:   dto.FormatDecimal(row.WeightNetSum()),
		})
	}
	return out
}

func toSourceGroups(rows []repository.GroupRow) []dto.SourceGroup {
	out := make([]dto.SourceGroup, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.SourceGroup{
			SourceName:     row.SourceName,
			VehicleNum:     row.VehicleNum,
			WeightGrossSum: dto.FormatDecimal(row.WeightGrossSum),
			WeightTareSum:  dto.FormatDecimal(row.WeightTareSum),
			WeightNetSum:   dto.FormatDecimal(row.WeightNetSum()),
		})
	}
	return out
}

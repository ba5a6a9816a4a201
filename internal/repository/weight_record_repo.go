package repository

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rensongqi/sanic-adminapi/internal/model"
	"github.com/rensongqi/sanic-adminapi/pkg/database"
)

// WeightFilter 称重记录查询条件，零值字段不参与过滤
type WeightFilter struct {
	// id 精确匹配
	PoundID         int64
	DeptID          int64
	RegionID        int64
	GarbageSourceID int64
	GarbageTypeID   int64
	DriverID        int64

	// 包含匹配
	VehicleNo     string
	VehicleDoorNo string
	RegionName    string

	// 名称精确匹配
	VehicleTypeName   string
	DeptName          string
	GarbageTypeName   string
	GarbageSourceName string
	DriverName        string

	Info string

	// 称重时间闭区间
	Start *time.Time
	End   *time.Time

	// 车辆所属单位
	OnlyDeptID    int64
	ExcludeDeptID int64
}

// GroupKey 汇总维度
type GroupKey int

const (
	GroupRegion GroupKey = iota
	GroupDept
	GroupSource
	GroupVehicleType
	GroupGarbageType
	GroupDate       // 2006-01-02
	GroupDayOfMonth // 02，结果写入 Date
	GroupMonth      // 2006-01
)

// 计数列
const (
	CountRecords  = "wr.id_center"
	CountVehicles = "wr.vehicle_id"
)

// GroupQuery 汇总查询
type GroupQuery struct {
	Filter      WeightFilter
	By          []GroupKey
	CountColumn string
}

// GroupRow 汇总结果行，未参与分组的维度为空串
type GroupRow struct {
	RegionName      string          `gorm:"column:region_name"`
	DeptName        string          `gorm:"column:dept_name"`
	SourceName      string          `gorm:"column:source_name"`
	VehicleTypeName string          `gorm:"column:vehicle_type_name"`
	GarbageTypeName string          `gorm:"column:garbage_type_name"`
	Date            string          `gorm:"column:date"`
	Month           string          `gorm:"column:month"`
	VehicleNum      int64           `gorm:"column:vehicle_num"`
	WeightGrossSum  decimal.Decimal `gorm:"column:weight_gross_sum"`
	WeightTareSum   decimal.Decimal `gorm:"column:weight_tare_sum"`
}

// WeightNetSum 净重合计
func (g GroupRow) WeightNetSum() decimal.Decimal {
	return g.WeightGrossSum.Sub(g.WeightTareSum)
}

// WeightSums 合计
type WeightSums struct {
	RecordCount    int64           `gorm:"column:record_count"`
	WeightGrossSum decimal.Decimal `gorm:"column:weight_gross_sum"`
	WeightTareSum  decimal.Decimal `gorm:"column:weight_tare_sum"`
}

// WeightNetSum 净重合计
func (s WeightSums) WeightNetSum() decimal.Decimal {
	return s.WeightGrossSum.Sub(s.WeightTareSum)
}

// WeightRecordRepository 称重记录数据访问接口
type WeightRecordRepository interface {
	Create(ctx context.Context, w *model.WeightRecord) error
	// GetByID 预加载全部关联
	GetByID(ctx context.Context, id int64) (*model.WeightRecord, error)
	// List limit <= 0 时不分页
	List(ctx context.Context, f WeightFilter, offset, limit int) ([]model.WeightRecord, int64, error)
	Sums(ctx context.Context, f WeightFilter) (*WeightSums, error)
	Group(ctx context.Context, q GroupQuery) ([]GroupRow, error)
}

type weightRecordRepo struct {
	db *gorm.DB
}

// NewWeightRecordRepo 创建 WeightRecordRepository 实例
func NewWeightRecordRepo(db *gorm.DB) WeightRecordRepository {
	return &weightRecordRepo{db: db}
}

// joined 称重记录与车辆、单位、型号、来源、区域、类型、司机的左连接
func (r *weightRecordRepo) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("weight_record AS wr").
		Joins("LEFT JOIN vehicle v ON v.id = wr.vehicle_id").
		Joins("LEFT JOIN department d ON d.id = v.dept_id").
		Joins("LEFT JOIN vehicle_type vt ON vt.id = v.vehicle_type_id").
		Joins("LEFT JOIN garbage_source gs ON gs.id = wr.garbage_source_id").
		Joins("LEFT JOIN region r ON r.id = gs.region_id").
		Joins("LEFT JOIN garbage_type gt ON gt.id = wr.garbage_type_id").
		Joins("LEFT JOIN driver dr ON dr.id = wr.driver_id")
}

func applyWeightFilter(db *gorm.DB, f WeightFilter) *gorm.DB {
	db = whereEq(db, "wr.pound_id", f.PoundID)
	db = whereEq(db, "v.dept_id", f.DeptID)
	db = whereEq(db, "gs.region_id", f.RegionID)
	db = whereEq(db, "wr.garbage_source_id", f.GarbageSourceID)
	db = whereEq(db, "wr.garbage_type_id", f.GarbageTypeID)
	db = whereEq(db, "wr.driver_id", f.DriverID)

	db = whereContains(db, "v.vehicle_no", f.VehicleNo)
	db = whereContains(db, "v.vehicle_door_no", f.VehicleDoorNo)
	db = whereContains(db, "r.region_name", f.RegionName)

	db = whereEq(db, "vt.vehicle_type_name", f.VehicleTypeName)
	db = whereEq(db, "d.department_name", f.DeptName)
	db = whereEq(db, "gt.garbage_type_name", f.GarbageTypeName)
	db = whereEq(db, "gs.source_name", f.GarbageSourceName)
	db = whereEq(db, "dr.driver_name", f.DriverName)
	db = whereEq(db, "wr.info", f.Info)

	if f.Start != nil {
		db = db.Where("wr.time_weight >= ?", *f.Start)
	}
	if f.End != nil {
		db = db.Where("wr.time_weight <= ?", *f.End)
	}
	db = whereEq(db, "v.dept_id", f.OnlyDeptID)
	if f.ExcludeDeptID != 0 {
		db = db.Where("(v.dept_id IS NULL OR v.dept_id <> ?)", f.ExcludeDeptID)
	}
	return db
}

func preloadWeightRecord(db *gorm.DB) *gorm.DB {
	return db.Preload("Vehicle").
		Preload("Vehicle.Dept").
		Preload("Vehicle.VehicleType").
		Preload("GarbageSource").
		Preload("GarbageSource.Region").
		Preload("GarbageType").
		Preload("Driver").
		Preload("Pound").
		Preload("Operator")
}

func (r *weightRecordRepo) Create(ctx context.Context, w *model.WeightRecord) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *weightRecordRepo) GetByID(ctx context.Context, id int64) (*model.WeightRecord, error) {
	var w model.WeightRecord
	if err := preloadWeightRecord(r.db.WithContext(ctx)).Where("id = ?", id).First(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *weightRecordRepo) List(ctx context.Context, f WeightFilter, offset, limit int) ([]model.WeightRecord, int64, error) {
	var records []model.WeightRecord
	var total int64

	db := applyWeightFilter(r.joined(ctx), f)
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := paginate(preloadWeightRecord(db.Select("wr.*")), offset, limit).
		Order("wr.time_weight DESC, wr.id DESC").
		Find(&records).Error; err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func (r *weightRecordRepo) Sums(ctx context.Context, f WeightFilter) (*WeightSums, error) {
	var sums WeightSums
	err := applyWeightFilter(r.joined(ctx), f).
		Select("COUNT(wr.id) AS record_count, " +
			"COALESCE(SUM(wr.weight_gross), 0) AS weight_gross_sum, " +
			"COALESCE(SUM(wr.weight_tare), 0) AS weight_tare_sum").
		Scan(&sums).Error
	if err != nil {
		return nil, err
	}
	return &sums, nil
}

func (r *weightRecordRepo) Group(ctx context.Context, q GroupQuery) ([]GroupRow, error) {
	var rows []GroupRow

	db := applyWeightFilter(r.joined(ctx), q.Filter)
	countColumn := q.CountColumn
	if countColumn == "" {
		countColumn = CountRecords
	}

	selects := make([]string, 0, len(q.By)+3)
	exprs := make([]string, 0, len(q.By))
	for _, key := range q.By {
		expr, alias := groupExpr(db, key)
		selects = append(selects, expr+" AS "+alias)
		exprs = append(exprs, expr)
	}
	selects = append(selects,
		"COUNT("+countColumn+") AS vehicle_num",
		"COALESCE(SUM(wr.weight_gross), 0) AS weight_gross_sum",
		"COALESCE(SUM(wr.weight_tare), 0) AS weight_tare_sum",
	)

	db = db.Select(strings.Join(selects, ", "))
	if len(exprs) > 0 {
		grouped := strings.Join(exprs, ", ")
		db = db.Group(grouped).Order(grouped)
	}
	if err := db.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// groupExpr 返回维度对应的 SQL 表达式与结果列名
func groupExpr(db *gorm.DB, key GroupKey) (expr, alias string) {
	switch key {
	case GroupRegion:
		return "COALESCE(r.region_name, '')", "region_name"
	case GroupDept:
		return "COALESCE(d.department_name, '')", "dept_name"
	case GroupSource:
		return "COALESCE(gs.source_name, '')", "source_name"
	case GroupVehicleType:
		return "COALESCE(vt.vehicle_type_name, '')", "vehicle_type_name"
	case GroupGarbageType:
		return "COALESCE(gt.garbage_type_name, '')", "garbage_type_name"
	case GroupDayOfMonth:
		return "COALESCE(" + database.DateFormatExpr(db, "wr.time_weight", database.LayoutDayOfMonth) + ", '')", "date"
	case GroupMonth:
		return "COALESCE(" + database.DateFormatExpr(db, "wr.time_weight", database.LayoutMonth) + ", '')", "month"
	default:
		return "COALESCE(" + database.DateFormatExpr(db, "wr.time_weight", database.LayoutDay) + ", '')", "date"
	}
}

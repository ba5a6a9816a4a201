package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/rensongqi/sanic-adminapi/internal/model"
)

// VehicleFilter 车辆查询条件，零值字段不参与过滤
// VehicleNo、VehicleDoorNo 为包含匹配，名称字段为精确匹配
type VehicleFilter struct {
	ModifyState     int
	VehicleNo       string
	VehicleDoorNo   string
	VehicleTypeName string
	DeptName        string
	Driver          string
	VehicleTypeID   int64
	DeptID          int64
}

// VehicleRepository 车辆数据访问接口
type VehicleRepository interface {
	Create(ctx context.Context, v *model.Vehicle) error
	// GetByID 预加载全部关联
	GetByID(ctx context.Context, id int64) (*model.Vehicle, error)
	// GetActiveByNo 按车牌号取第一辆在用车辆
	GetActiveByNo(ctx context.Context, vehicleNo string) (*model.Vehicle, error)
	List(ctx context.Context, f VehicleFilter, offset, limit int) ([]model.Vehicle, int64, error)
	// ListByCardIDs 取绑定了这些卡且满足条件的在用车辆，按 id 升序
	ListByCardIDs(ctx context.Context, cardIDs []int64, f VehicleFilter) ([]model.Vehicle, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) (int64, error)
	// UpdateActive 只更新在用车辆，已报废或不存在时返回 0
	UpdateActive(ctx context.Context, id int64, updates map[string]interface{}) (int64, error)
}

type vehicleRepo struct {
	db *gorm.DB
}

// NewVehicleRepo 创建 VehicleRepository 实例
func NewVehicleRepo(db *gorm.DB) VehicleRepository {
	return &vehicleRepo{db: db}
}

func preloadVehicle(db *gorm.DB) *gorm.DB {
	return db.Preload("Dept").
		Preload("VehicleType").
		Preload("Card").
		Preload("GarbageType").
		Preload("GarbageSource")
}

// applyVehicleFilter 追加车辆过滤条件，列名不带表前缀
func applyVehicleFilter(db *gorm.DB, f VehicleFilter) *gorm.DB {
	db = db.Where("modify_state = ?", f.ModifyState)
	db = whereContains(db, "vehicle_no", f.VehicleNo)
	db = whereContains(db, "vehicle_door_no", f.VehicleDoorNo)
	db = whereEq(db, "driver", f.Driver)
	db = whereEq(db, "vehicle_type_id", f.VehicleTypeID)
	db = whereEq(db, "dept_id", f.DeptID)
	if f.VehicleTypeName != "" {
		db = db.Where("vehicle_type_id IN (?)",
			db.Session(&gorm.Session{NewDB: true}).Model(&model.VehicleType{}).
				Select("id").Where("vehicle_type_name = ?", f.VehicleTypeName))
	}
	if f.DeptName != "" {
		db = db.Where("dept_id IN (?)",
			db.Session(&gorm.Session{NewDB: true}).Model(&model.Department{}).
				Select("id").Where("department_name = ?", f.DeptName))
	}
	return db
}

func (r *vehicleRepo) Create(ctx context.Context, v *model.Vehicle) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vehicleRepo) GetByID(ctx context.Context, id int64) (*model.Vehicle, error) {
	var v model.Vehicle
	if err := preloadVehicle(r.db.WithContext(ctx)).Where("id = ?", id).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *vehicleRepo) GetActiveByNo(ctx context.Context, vehicleNo string) (*model.Vehicle, error) {
	var v model.Vehicle
	err := r.db.WithContext(ctx).
		Where("vehicle_no = ? AND modify_state = ?", vehicleNo, model.ModifyStateActive).
		Order("id ASC").
		First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *vehicleRepo) List(ctx context.Context, f VehicleFilter, offset, limit int) ([]model.Vehicle, int64, error) {
	var vehicles []model.Vehicle
	var total int64

	db := applyVehicleFilter(r.db.WithContext(ctx).Model(&model.Vehicle{}), f)
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := paginate(preloadVehicle(db), offset, limit).
		Order("id ASC").
		Find(&vehicles).Error; err != nil {
		return nil, 0, err
	}
	return vehicles, total, nil
}

func (r *vehicleRepo) ListByCardIDs(ctx context.Context, cardIDs []int64, f VehicleFilter) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	if len(cardIDs) == 0 {
		return vehicles, nil
	}
	db := applyVehicleFilter(r.db.WithContext(ctx).Model(&model.Vehicle{}), f)
	err := db.Where("card_id IN ?", cardIDs).Order("id ASC").Find(&vehicles).Error
	return vehicles, err
}

func (r *vehicleRepo) Update(ctx context.Context, id int64, updates map[string]interface{}) (int64, error) {
	return lockedUpdate(ctx, r.db, &model.Vehicle{}, id, updates)
}

func (r *vehicleRepo) UpdateActive(ctx context.Context, id int64, updates map[string]interface{}) (int64, error) {
	return lockedUpdate(ctx, r.db, &model.Vehicle{}, id, updates, func(db *gorm.DB) *gorm.DB {
		return db.Where("modify_state = ?", model.ModifyStateActive)
	})
}

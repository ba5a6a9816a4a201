package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/rensongqi/sanic-adminapi/internal/model"
)

// DriverFilter 司机查询条件
type DriverFilter struct {
	DeptID     int64
	DriverName string
}

// DriverRepository 司机数据访问接口
type DriverRepository interface {
	Create(ctx context.Context, d *model.Driver) error
	GetByID(ctx context.Context, id int64) (*model.Driver, error)
	// FindByName 按姓名精确匹配，取第一条
	FindByName(ctx context.Context, name string) (*model.Driver, error)
	List(ctx context.Context, f DriverFilter, offset, limit int) ([]model.Driver, int64, error)
	ListAll(ctx context.Context) ([]model.Driver, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type driverRepo struct {
	db *gorm.DB
}

// NewDriverRepo 创建 DriverRepository 实例
func NewDriverRepo(db *gorm.DB) DriverRepository {
	return &driverRepo{db: db}
}

func (r *driverRepo) Create(ctx context.Context, d *model.Driver) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *driverRepo) GetByID(ctx context.Context, id int64) (*model.Driver, error) {
	var d model.Driver
	if err := r.db.WithContext(ctx).Preload("Dept").Where("id = ?", id).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *driverRepo) FindByName(ctx context.Context, name string) (*model.Driver, error) {
	var d model.Driver
	if err := r.db.WithContext(ctx).Where("driver_name = ?", name).Order("id ASC").First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *driverRepo) List(ctx context.Context, f DriverFilter, offset, limit int) ([]model.Driver, int64, error) {
	var drivers []model.Driver
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Driver{})
	db = whereEq(db, "dept_id", f.DeptID)
	db = whereEq(db, "driver_name", f.DriverName)

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := paginate(db.Preload("Dept"), offset, limit).
		Order("id ASC").
		Find(&drivers).Error; err != nil {
		return nil, 0, err
	}
	return drivers, total, nil
}

func (r *driverRepo) ListAll(ctx context.Context) ([]model.Driver, error) {
	var drivers []model.Driver
	err := r.db.WithContext(ctx).Order("id ASC").Find(&drivers).Error
	return drivers, err
}

func (r *driverRepo) Update(ctx context.Context, id int64, updates map[string]interface{}) (int64, error) {
	return lockedUpdate(ctx, r.db, &model.Driver{}, id, updates)
}

func (r *driverRepo) Delete(ctx context.Context, id int64) (int64, error) {
	return hardDelete(ctx, r.db, &model.Driver{}, id)
}

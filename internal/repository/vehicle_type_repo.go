package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/rensongqi/sanic-adminapi/internal/model"
)

// VehicleTypeRepository 车辆型号数据访问接口
type VehicleTypeRepository interface {
	Create(ctx context.Context, t *model.VehicleType) error
	GetByID(ctx context.Context, id int64) (*model.VehicleType, error)
	// ListActive modify_state = 0 的型号
	ListActive(ctx context.Context) ([]model.VehicleType, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) (int64, error)
}

type vehicleTypeRepo struct {
	db *gorm.DB
}

// NewVehicleTypeRepo 创建 VehicleTypeRepository 实例
func NewVehicleTypeRepo(db *gorm.DB) VehicleTypeRepository {
	return &vehicleTypeRepo{db: db}
}

func (r *vehicleTypeRepo) Create(ctx context.Context, t *model.VehicleType) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *vehicleTypeRepo) GetByID(ctx context.Context, id int64) (*model.VehicleType, error) {
	var t model.VehicleType
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *vehicleTypeRepo) ListActive(ctx context.Context) ([]model.VehicleType, error) {
	var types []model.VehicleType
	err := r.db.WithContext(ctx).
		Where("modify_state = ?", model.ModifyStateActive).
		Order("id ASC").
		Find(&types).Error
	return types, err
}

func (r *vehicleTypeRepo) Update(ctx context.Context, id int64, updates map[string]interface{}) (int64, error) {
	return lockedUpdate(ctx, r.db, &model.VehicleType{}, id, updates)
}

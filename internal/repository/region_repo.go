package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/rensongqi/sanic-adminapi/internal/model"
)

// RegionRepository 区域数据访问接口
type RegionRepository interface {
	Create(ctx context.Context, region *model.Region) error
	GetByID(ctx context.Context, id int64) (*model.Region, error)
	List(ctx context.Context) ([]model.Region, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type regionRepo struct {
	db *gorm.DB
}

// NewRegionRepo 创建 RegionRepository 实例
func NewRegionRepo(db *gorm.DB) RegionRepository {
	return &regionRepo{db: db}
}

func (r *regionRepo) Create(ctx context.Context, region *model.Region) error {
	return r.db.WithContext(ctx).Create(region).Error
}

func (r *regionRepo) GetByID(ctx context.Context, id int64) (*model.Region, error) {
	var region model.Region
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&region).Error; err != nil {
		return nil, err
	}
	return &region, nil
}

func (r *regionRepo) List(ctx context.Context) ([]model.Region, error) {
	var regions []model.Region
	err := r.db.WithContext(ctx).Order("order_no ASC, id ASC").Find(&regions).Error
	return regions, err
}

func (r *regionRepo) Update(ctx context.Context, id int64, updates map[string]interface{}) (int64, error) {
	return lockedUpdate(ctx, r.db, &model.Region{}, id, updates)
}

func (r *regionRepo) Delete(ctx context.Context, id int64) (int64, error) {
	return hardDelete(ctx, r.db, &model.Region{}, id)
}

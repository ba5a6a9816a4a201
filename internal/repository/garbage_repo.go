package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/rensongqi/sanic-adminapi/internal/model"
)

// ── 垃圾类型 ──

// GarbageTypeRepository 垃圾类型数据访问接口
type GarbageTypeRepository interface {
	Create(ctx context.Context, g *model.GarbageType) error
	GetByID(ctx context.Context, id int64) (*model.GarbageType, error)
	FindByName(ctx context.Context, name string) (*model.GarbageType, error)
	ListActive(ctx context.Context) ([]model.GarbageType, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) (int64, error)
}

type garbageTypeRepo struct {
	db *gorm.DB
}

// NewGarbageTypeRepo 创建 GarbageTypeRepository 实例
func NewGarbageTypeRepo(db *gorm.DB) GarbageTypeRepository {
	return &garbageTypeRepo{db: db}
}

func (r *garbageTypeRepo) Create(ctx context.Context, g *model.GarbageType) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *garbageTypeRepo) GetByID(ctx context.Context, id int64) (*model.GarbageType, error) {
	var g model.GarbageType
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *garbageTypeRepo) FindByName(ctx context.Context, name string) (*model.GarbageType, error) {
	var g model.GarbageType
	err := r.db.WithContext(ctx).
		Where("garbage_type_name = ? AND modify_state = ?", name, model.ModifyStateActive).
		Order("id ASC").
		First(&g).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *garbageTypeRepo) ListActive(ctx context.Context) ([]model.GarbageType, error) {
	var types []model.GarbageType
	err := r.db.WithContext(ctx).
		Where("modify_state = ?", model.ModifyStateActive).
		Order("id ASC").
		Find(&types).Error
	return types, err
}

func (r *garbageTypeRepo) Update(ctx context.Context, id int64, updates map[string]interface{}) (int64, error) {
	return lockedUpdate(ctx, r.db, &model.GarbageType{}, id, updates)
}

// ── 垃圾来源 ──

// GarbageSourceRepository 垃圾来源数据访问接口
type GarbageSourceRepository interface {
	Create(ctx context.Context, g *model.GarbageSource) error
	// GetByID 预加载区域
	GetByID(ctx context.Context, id int64) (*model.GarbageSource, error)
	// ListByName 按名称精确匹配，最多返回 limit 条
	ListByName(ctx context.Context, name string, limit int) ([]model.GarbageSource, error)
	List(ctx context.Context) ([]model.GarbageSource, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type garbageSourceRepo struct {
	db *gorm.DB
}

// NewGarbageSourceRepo 创建 GarbageSourceRepository 实例
func NewGarbageSourceRepo(db *gorm.DB) GarbageSourceRepository {
	return &garbageSourceRepo{db: db}
}

func (r *garbageSourceRepo) Create(ctx context.Context, g *model.GarbageSource) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *garbageSourceRepo) GetByID(ctx context.Context, id int64) (*model.GarbageSource, error) {
	var g model.GarbageSource
	if err := r.db.WithContext(ctx).Preload("Region").Where("id = ?", id).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *garbageSourceRepo) ListByName(ctx context.Context, name string, limit int) ([]model.GarbageSource, error) {
	var sources []model.GarbageSource
	err := r.db.WithContext(ctx).
		Where("source_name = ?", name).
		Order("id ASC").
		Limit(limit).
		Find(&sources).Error
	return sources, err
}

func (r *garbageSourceRepo) List(ctx context.Context) ([]model.GarbageSource, error) {
	var sources []model.GarbageSource
	err := r.db.WithContext(ctx).Preload("Region").Order("id ASC").Find(&sources).Error
	return sources, err
}

func (r *garbageSourceRepo) Update(ctx context.Context, id int64, updates map[string]interface{}) (int64, error) {
	return lockedUpdate(ctx, r.db, &model.GarbageSource{}, id, updates)
}

func (r *garbageSourceRepo) Delete(ctx context.Context, id int64) (int64, error) {
	return hardDelete(ctx, r.db, &model.GarbageSource{}, id)
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/rensongqi/sanic-adminapi/internal/model"
)

// PoundRepository 地磅站数据访问接口
type PoundRepository interface {
	Create(ctx context.Context, p *model.Pound) error
	List(ctx context.Context, offset, limit int) ([]model.Pound, int64, error)
	ListAll(ctx context.Context) ([]model.Pound, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type poundRepo struct {
	db *gorm.DB
}

// NewPoundRepo 创建 PoundRepository 实例
func NewPoundRepo(db *gorm.DB) PoundRepository {
	return &poundRepo{db: db}
}

func (r *poundRepo) Create(ctx context.Context, p *model.Pound) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *poundRepo) List(ctx context.Context, offset, limit int) ([]model.Pound, int64, error) {
	var pounds []model.Pound
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Pound{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := paginate(db.Preload("Dept"), offset, limit).
		Order("id ASC").
		Find(&pounds).Error; err != nil {
		return nil, 0, err
	}
	return pounds, total, nil
}

func (r *poundRepo) ListAll(ctx context.Context) ([]model.Pound, error) {
	var pounds []model.Pound
	err := r.db.WithContext(ctx).Order("id ASC").Find(&pounds).Error
	return pounds, err
}

func (r *poundRepo) Update(ctx context.Context, id int64, updates map[string]interface{}) (int64, error) {
	return lockedUpdate(ctx, r.db, &model.Pound{}, id, updates)
}

// Delete 同时删除该地磅站的签发记录
func (r *poundRepo) Delete(ctx context.Context, id int64) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pound_id = ?", id).Delete(&model.CardPound{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.Pound{})
		affected = res.RowsAffected
		return res.Error
	})
	return affected, err
}

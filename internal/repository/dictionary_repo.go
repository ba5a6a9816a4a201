package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/rensongqi/sanic-adminapi/internal/model"
)

// DictionaryRepository 数据字典访问接口
type DictionaryRepository interface {
	// ListValues 某分类下的字典值，按 order_no 排序
	ListValues(ctx context.Context, dataType string) ([]string, error)
}

type dictionaryRepo struct {
	db *gorm.DB
}

// NewDictionaryRepo 创建 DictionaryRepository 实例
func NewDictionaryRepo(db *gorm.DB) DictionaryRepository {
	return &dictionaryRepo{db: db}
}

func (r *dictionaryRepo) ListValues(ctx context.Context, dataType string) ([]string, error) {
	var values []string
	err := r.db.WithContext(ctx).
		Model(&model.Dictionary{}).
		Where("data_type = ?", dataType).
		Order("order_no ASC, id ASC").
		Pluck("data_value", &values).Error
	return values, err
}

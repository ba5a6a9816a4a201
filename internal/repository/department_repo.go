package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/rensongqi/sanic-adminapi/internal/model"
)

// DepartmentRepository 单位数据访问接口
type DepartmentRepository interface {
	Create(ctx context.Context, dept *model.Department) error
	GetByID(ctx context.Context, id int64) (*model.Department, error)
	List(ctx context.Context) ([]model.Department, error)
	// ListNames 单位名称列表，excludeID 非 0 时排除该单位
	ListNames(ctx context.Context, excludeID int64) ([]string, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type departmentRepo struct {
	db *gorm.DB
}

// NewDepartmentRepo 创建 DepartmentRepository 实例
func NewDepartmentRepo(db *gorm.DB) DepartmentRepository {
	return &departmentRepo{db: db}
}

func (r *departmentRepo) Create(ctx context.Context, dept *model.Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

func (r *departmentRepo) GetByID(ctx context.Context, id int64) (*model.Department, error) {
	var dept model.Department
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&dept).Error; err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepo) List(ctx context.Context) ([]model.Department, error) {
	var depts []model.Department
	err := r.db.WithContext(ctx).Order("id ASC").Find(&depts).Error
	return depts, err
}

func (r *departmentRepo) ListNames(ctx context.Context, excludeID int64) ([]string, error) {
	var names []string
	db := r.db.WithContext(ctx).Model(&model.Department{})
	if excludeID != 0 {
		db = db.Where("id <> ?", excludeID)
	}
	err := db.Order("id ASC").Pluck("department_name", &names).Error
	return names, err
}

func (r *departmentRepo) Update(ctx context.Context, id int64, updates map[string]interface{}) (int64, error) {
	return lockedUpdate(ctx, r.db, &model.Department{}, id, updates)
}

func (r *departmentRepo) Delete(ctx context.Context, id int64) (int64, error) {
	return hardDelete(ctx, r.db, &model.Department{}, id)
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/rensongqi/sanic-adminapi/internal/model"
)

// UserRepository 后台账号与操作员数据访问接口
type UserRepository interface {
	// FindWebUsers 按 user_id 查账号，最多返回 limit 条，用于识别重复账号
	FindWebUsers(ctx context.Context, userID string, limit int) ([]model.WebUser, error)
	CreateWebUser(ctx context.Context, user *model.WebUser) error
	GetOperatorByUserID(ctx context.Context, userID string) (*model.Operator, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepo 创建 UserRepository 实例
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) FindWebUsers(ctx context.Context, userID string, limit int) ([]model.WebUser, error) {
	var users []model.WebUser
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Limit(limit).
		Find(&users).Error
	return users, err
}

func (r *userRepo) CreateWebUser(ctx context.Context, user *model.WebUser) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) GetOperatorByUserID(ctx context.Context, userID string) (*model.Operator, error) {
	var op model.Operator
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&op).Error; err != nil {
		return nil, err
	}
	return &op, nil
}

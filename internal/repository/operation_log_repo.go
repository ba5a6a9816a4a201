package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/rensongqi/sanic-adminapi/internal/model"
	"github.com/rensongqi/sanic-adminapi/pkg/database"
)

// OperationLogFilter 操作日志条件
// Keyword 在账号、用户名、类型、内容四列上做 OR 包含匹配
type OperationLogFilter struct {
	Keyword   string
	LogStart  *time.Time
	LogEnd    *time.Time
	DataStart *time.Time
	DataEnd   *time.Time
}

// OperationLogRepository 操作日志数据访问接口（只追加）
type OperationLogRepository interface {
	Create(ctx context.Context, log *model.OperationLog) error
	List(ctx context.Context, f OperationLogFilter, offset, limit int) ([]model.OperationLog, int64, error)
}

type operationLogRepo struct {
	db *gorm.DB
}

// NewOperationLogRepo 创建 OperationLogRepository 实例
func NewOperationLogRepo(db *gorm.DB) OperationLogRepository {
	return &operationLogRepo{db: db}
}

func (r *operationLogRepo) Create(ctx context.Context, log *model.OperationLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *operationLogRepo) List(ctx context.Context, f OperationLogFilter, offset, limit int) ([]model.OperationLog, int64, error) {
	var logs []model.OperationLog
	var total int64

	db := r.db.WithContext(ctx).Model(&model.OperationLog{})
	if f.Keyword != "" {
		arg := database.ContainsArg(f.Keyword)
		cond := r.db.Where(database.ContainsExpr(db, "account"), arg).
			Or(database.ContainsExpr(db, "username"), arg).
			Or(database.ContainsExpr(db, "log_type"), arg).
			Or(database.ContainsExpr(db, "log_info"), arg)
		db = db.Where(cond)
	}
	if f.LogStart != nil {
		db = db.Where("log_time >= ?", *f.LogStart)
	}
	if f.LogEnd != nil {
		db = db.Where("log_time <= ?", *f.LogEnd)
	}
	if f.DataStart != nil {
		db = db.Where("data_time >= ?", *f.DataStart)
	}
	if f.DataEnd != nil {
		db = db.Where("data_time <= ?", *f.DataEnd)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := paginate(db, offset, limit).Order("log_time DESC, id DESC").Find(&logs).Error; err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

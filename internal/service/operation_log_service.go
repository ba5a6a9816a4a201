package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/rensongqi/sanic-adminapi/internal/dto"
	"github.com/rensongqi/sanic-adminapi/internal/model"
	"github.com/rensongqi/sanic-adminapi/internal/repository"
)

// TimeFieldError 某个时间字段格式错误
type TimeFieldError struct {
	Field string
}

func (e *TimeFieldError) Error() string { return e.Field + "传入时间格式错误" }

// OperationLogService 操作日志业务接口
type OperationLogService interface {
	// List 四个时间字段均须为 "2006-01-02 15:04:05"，否则返回 *TimeFieldError
	List(ctx context.Context, keyword string, q *dto.OperationLogQuery, page dto.PageQuery) ([]dto.OperationLogItem, int64, error)
	Record(ctx context.Context, entry *model.OperationLog) error
}

type operationLogService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewOperationLogService 创建 OperationLogService 实例
func NewOperationLogService(repo *repository.Repository, logger *zap.Logger) OperationLogService {
	return &operationLogService{repo: repo, logger: logger}
}

func (s *operationLogService) List(ctx context.Context, keyword string, q *dto.OperationLogQuery, page dto.PageQuery) ([]dto.OperationLogItem, int64, error) {
	times := make(map[string]*time.Time, 4)
	for _, kv := range q.Fields() {
		t, err := dto.ParseDateTime(kv[1])
		if err != nil {
			return nil, 0, &TimeFieldError{Field: kv[0]}
		}
		times[kv[0]] = &t
	}

	logs, total, err := s.repo.OperationLog.List(ctx, repository.OperationLogFilter{
		Keyword:   keyword,
		LogStart:  times["log_start_time"],
		LogEnd:    times["log_end_time"],
		DataStart: times["data_start_time"],
		DataEnd:   times["data_end_time"],
	}, page.Offset(), page.Length)
	if err != nil {
		s.logger.Error("查询操作日志失败", zap.Error(err))
		return nil, 0, err
	}

	items := make([]dto.OperationLogItem, 0, len(logs))
	for i := range logs {
		items = append(items, dto.NewOperationLogItem(&logs[i]))
	}
	return items, total, nil
}

func (s *operationLogService) Record(ctx context.Context, entry *model.OperationLog) error {
	if entry.LogTime.IsZero() {
		entry.LogTime = time.Now()
	}
	if err := s.repo.OperationLog.Create(ctx, entry); err != nil {
		s.logger.Error("写入操作日志失败", zap.Error(err))
		return err
	}
	return nil
}

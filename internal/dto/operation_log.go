package dto

import "github.com/rensongqi/sanic-adminapi/internal/model"

// OperationLogQuery 操作日志时间窗口，均为 "2006-01-02 15:04:05"
type OperationLogQuery struct {
	LogStartTime  string `json:"log_start_time"`
	LogEndTime    string `json:"log_end_time"`
	DataStartTime string `json:"data_start_time"`
	DataEndTime   string `json:"data_end_time"`
}

// Fields 按固定顺序返回 (key, value)，便于逐项校验
func (q *OperationLogQuery) Fields() [][2]string {
	return [][2]string{
		{"log_start_time", q.LogStartTime},
		{"log_end_time", q.LogEndTime},
		{"data_start_time", q.DataStartTime},
		{"data_end_time", q.DataEndTime},
	}
}

// OperationLogItem 操作日志展示结构
type OperationLogItem struct {
	ID       int64  `json:"id"`
	LogTime  string `json:"log_time"`
	DataTime string `json:"data_time"`
	Account  string `json:"account"`
	Username string `json:"username"`
	LogType  string `json:"log_type"`
	LogInfo  string `json:"log_info"`
}

// NewOperationLogItem 由模型构造
func NewOperationLogItem(l *model.OperationLog) OperationLogItem {
	return OperationLogItem{
		ID:       l.ID,
		LogTime:  FormatTime(&l.LogTime),
		DataTime: FormatTime(l.DataTime),
		Account:  l.Account,
		Username: l.Username,
		LogType:  l.LogType,
		LogInfo:  l.LogInfo,
	}
}

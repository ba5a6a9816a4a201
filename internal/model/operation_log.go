package model

import "time"

// OperationLog 操作日志，对应 operation_logs
// 只追加，不修改
type OperationLog struct {
	ID       int64      `gorm:"column:id;primaryKey;autoIncrement"  json:"id"`
	LogTime  time.Time  `gorm:"column:log_time;index"               json:"log_time"`
	DataTime *time.Time `gorm:"column:data_time"                    json:"data_time"`
	Account  string     `gorm:"column:account;type:varchar(20)"     json:"account"`
	Username string     `gorm:"column:username;type:varchar(20)"    json:"username"`
	LogType  string     `gorm:"column:log_type;type:varchar(50)"    json:"log_type"`
	LogInfo  string     `gorm:"column:log_info;type:varchar(255)"   json:"log_info"`
}

// TableName 指定表名
func (OperationLog) TableName() string { return "operation_logs" }

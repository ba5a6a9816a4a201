package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// GarbageType 垃圾（载质）类型，对应 garbage_type
type GarbageType struct {
	ID              int64           `gorm:"column:id;primaryKey;autoIncrement"             json:"id"`
	GarbageTypeNo   string          `gorm:"column:garbage_type_no;type:varchar(2)"         json:"garbage_type_no"`
	GarbageTypeName string          `gorm:"column:garbage_type_name;type:varchar(50)"      json:"garbage_type_name"`
	GarbagePrice    decimal.Decimal `gorm:"column:garbage_price;type:decimal(10,2)"        json:"garbage_price"`
	ModifyState     int             `gorm:"column:modify_state"                            json:"modify_state"`
	ModifyTime      *time.Time      `gorm:"column:modify_time"                             json:"modify_time"`
	GarbageTypeInfo string          `gorm:"column:garbage_type_info;type:varchar(100)"     json:"garbage_type_info"`
	UploadState     int             `gorm:"column:upload_state"                            json:"upload_state"`
}

// TableName 指定表名
func (GarbageType) TableName() string { return "garbage_type" }

// GarbageSource 垃圾来源地，对应 garbage_source
type GarbageSource struct {
	ID            int64  `gorm:"column:id;primaryKey;autoIncrement"    json:"id"`
	SourceName    string `gorm:"column:source_name;type:varchar(50)"   json:"source_name"`
	SourceFlag    int    `gorm:"column:source_flag"                    json:"source_flag"`
	Info          string `gorm:"column:info;type:varchar(100)"         json:"info"`
	UploadState   int    `gorm:"column:upload_state"                   json:"upload_state"`
	SourceID      int64  `gorm:"column:source_id"                      json:"source_id"`
	Code          int    `gorm:"column:code"                           json:"code"`
	RegionID      *int64 `gorm:"column:region_id;index"                json:"region_id"`
	VirtualSource int    `gorm:"column:virtual_source"                 json:"virtual_source"`

	// 关联
	Region *Region `gorm:"foreignKey:RegionID;references:ID" json:"-"`
}

// TableName 指定表名
func (GarbageSource) TableName() string { return "garbage_source" }

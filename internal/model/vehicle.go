package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vehicle 车辆，对应 vehicle
// modify_state=2 表示已报废，常规查询只取 modify_state=0
type Vehicle struct {
	ID              int64           `gorm:"column:id;primaryKey;autoIncrement"          json:"id"`
	VehicleNo       string          `gorm:"column:vehicle_no;type:varchar(20);index"    json:"vehicle_no"`
	VehicleDoorNo   string          `gorm:"column:vehicle_door_no;type:varchar(20)"     json:"vehicle_door_no"`
	DeptID          *int64          `gorm:"column:dept_id;index"                        json:"dept_id"`
	VehicleTypeID   *int64          `gorm:"column:vehicle_type_id"                      json:"vehicle_type_id"`
	TareWeight      decimal.Decimal `gorm:"column:tare_weight;type:decimal(10,2)"       json:"tare_weight"`
	MaxNetWeight    decimal.Decimal `gorm:"column:max_net_weight;type:decimal(10,2)"    json:"max_net_weight"`
	ModifyState     int             `gorm:"column:modify_state;index"                   json:"modify_state"`
	ModifyTime      *time.Time      `gorm:"column:modify_time"                          json:"modify_time"`
	VehicleInfo     string          `gorm:"column:vehicle_info;type:varchar(100)"       json:"vehicle_info"`
	CardID          *int64          `gorm:"column:card_id;index"                        json:"card_id"`
	UploadState     int             `gorm:"column:upload_state"                         json:"upload_state"`
	VehicleUse      string          `gorm:"column:vehicle_use;type:varchar(50)"         json:"vehicle_use"`
	Driver          string          `gorm:"column:driver;type:varchar(20)"              json:"driver"`
	BuyTime         *time.Time      `gorm:"column:buy_time;type:date"                   json:"buy_time"`
	BuyCost         decimal.Decimal `gorm:"column:buy_cost;type:decimal(10,2)"          json:"buy_cost"`
	GarbageTypeID   *int64          `gorm:"column:garbage_type_id"                      json:"garbage_type_id"`
	GarbageSourceID *int64          `gorm:"column:garbage_source_id"                    json:"garbage_source_id"`

	// 关联
	Dept          *Department    `gorm:"foreignKey:DeptID;references:ID"          json:"-"`
	VehicleType   *VehicleType   `gorm:"foreignKey:VehicleTypeID;references:ID"   json:"-"`
	Card          *Card          `gorm:"foreignKey:CardID;references:ID"          json:"-"`
	GarbageType   *GarbageType   `gorm:"foreignKey:GarbageTypeID;references:ID"   json:"-"`
	GarbageSource *GarbageSource `gorm:"foreignKey:GarbageSourceID;references:ID" json:"-"`
}

// TableName 指定表名
func (Vehicle) TableName() string { return "vehicle" }

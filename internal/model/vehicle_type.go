package model

import "time"

// VehicleType 车辆型号，对应 vehicle_type
type VehicleType struct {
	ID              int64      `gorm:"column:id;primaryKey;autoIncrement"           json:"id"`
	VehicleTypeNo   int        `gorm:"column:vehicle_type_no"                       json:"vehicle_type_no"`
	VehicleTypeName string     `gorm:"column:vehicle_type_name;type:varchar(50)"    json:"vehicle_type_name"`
	ModifyState     int        `gorm:"column:modify_state"                          json:"modify_state"`
	ModifyTime      *time.Time `gorm:"column:modify_time"                           json:"modify_time"`
	VehicleTypeInfo string     `gorm:"column:vehicle_type_info;type:varchar(100)"   json:"vehicle_type_info"`
	UploadState     int        `gorm:"column:upload_state"                          json:"upload_state"`
}

// TableName 指定表名
func (VehicleType) TableName() string { return "vehicle_type" }

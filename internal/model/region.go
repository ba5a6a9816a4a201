package model

// Region 区域，对应 region
type Region struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement"  json:"id"`
	RegionName  string `gorm:"column:region_name;type:varchar(50)" json:"region_name"`
	UploadState int    `gorm:"column:upload_state"                 json:"upload_state"`
	OrderNo     int    `gorm:"column:order_no"                     json:"order_no"`
}

// TableName 指定表名
func (Region) TableName() string { return "region" }

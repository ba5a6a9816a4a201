package model

// Driver 司机，对应 driver
type Driver struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement"   json:"id"`
	DriverNo    string `gorm:"column:driver_no;type:varchar(20)"    json:"driver_no"`
	DriverName  string `gorm:"column:driver_name;type:varchar(20)"  json:"driver_name"`
	DeptID      *int64 `gorm:"column:dept_id;index"                 json:"dept_id"`
	UploadState int    `gorm:"column:upload_state"                  json:"upload_state"`
	IsBind      int    `gorm:"column:is_bind"                       json:"is_bind"`

	// 关联
	Dept *Department `gorm:"foreignKey:DeptID;references:ID" json:"-"`
}

// TableName 指定表名
func (Driver) TableName() string { return "driver" }

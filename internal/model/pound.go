package model

import "time"

// Pound 地磅站，对应 pound
type Pound struct {
	ID          int64      `gorm:"column:id;primaryKey;autoIncrement"  json:"id"`
	CompName    string     `gorm:"column:comp_name;type:varchar(50)"   json:"comp_name"`
	PoundNo     string     `gorm:"column:pound_no;type:varchar(20)"    json:"pound_no"`
	Comments    string     `gorm:"column:comments;type:varchar(100)"   json:"comments"`
	ModifyTime  *time.Time `gorm:"column:modify_time"                  json:"modify_time"`
	ModifyState int        `gorm:"column:modify_state"                 json:"modify_state"`
	UploadState int        `gorm:"column:upload_state"                 json:"upload_state"`
	DeptID      *int64     `gorm:"column:dept_id;index"                json:"dept_id"`

	// 关联
	Dept *Department `gorm:"foreignKey:DeptID;references:ID" json:"-"`
}

// TableName 指定表名
func (Pound) TableName() string { return "pound" }

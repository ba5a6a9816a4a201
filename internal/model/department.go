package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Department 单位表，对应 department
// parent_dept_id 自关联构成单位树
type Department struct {
	ID             int64           `gorm:"column:id;primaryKey;autoIncrement"        json:"id"`
	DepartmentCode string          `gorm:"column:department_code;type:varchar(20)"   json:"department_code"`
	DepartmentName string          `gorm:"column:department_name;type:varchar(50)"   json:"department_name"`
	DepartmentInfo string          `gorm:"column:department_info;type:varchar(50)"   json:"department_info"`
	ParentDeptID   *int64          `gorm:"column:parent_dept_id;index"               json:"parent_dept_id"`
	Used           int             `gorm:"column:used"                               json:"used"`      // 使用状态 1 使用 0 暂停
	CreateTime     *time.Time      `gorm:"column:create_time"                        json:"create_time"`
	OrderID        int             `gorm:"column:order_id"                           json:"order_id"`
	UnitKind       int             `gorm:"column:unit_kind"                          json:"unit_kind"` // 1 设施 2 清运单位 3 其他单位
	UploadState    int             `gorm:"column:upload_state"                       json:"upload_state"`
	Stat           int             `gorm:"column:stat"                               json:"stat"` // 1 环卫中心 2 街乡 3 其他单位
	ConfirmSource  int             `gorm:"column:confirm_source"                     json:"confirm_source"`
	Type           int             `gorm:"column:type"                               json:"type"`
	SheshiType     int             `gorm:"column:sheshi_type"                        json:"sheshi_type"`
	MaxWeightDaily decimal.Decimal `gorm:"column:max_weight_daily;type:decimal(10,2)" json:"max_weight_daily"`

	// 关联
	Parent *Department `gorm:"foreignKey:ParentDeptID;references:ID" json:"-"`
}

// TableName 指定表名
func (Department) TableName() string { return "department" }

package dto

import (
	"github.com/rensongqi/sanic-adminapi/internal/model"
	"github.com/rensongqi/sanic-adminapi/pkg/forest"
)

// ── 单位模块 DTO ──

// DepartmentRecord 单位可写字段，nil 表示未提供
type DepartmentRecord struct {
	DepartmentName *string `json:"department_name"`
	DepartmentInfo *string `json:"department_info"`
	Used           *int    `json:"used"`
	UnitKind       *int    `json:"unit_kind"`
	Stat           *int    `json:"stat"`
}

// Updates 转为 gorm 更新字段
func (r *DepartmentRecord) Updates() map[string]interface{} {
	m := map[string]interface{}{}
	if r.DepartmentName != nil {
		m["department_name"] = *r.DepartmentName
	}
	if r.DepartmentInfo != nil {
		m["department_info"] = *r.DepartmentInfo
	}
	if r.Used != nil {
		m["used"] = *r.Used
	}
	if r.UnitKind != nil {
		m["unit_kind"] = *r.UnitKind
	}
	if r.Stat != nil {
		m["stat"] = *r.Stat
	}
	return m
}

// InsertDepartmentRequest 新增单位，old_record_id 为上级单位 id，0 表示根
type InsertDepartmentRequest struct {
	OldRecordID int64            `json:"old_record_id"`
	NewRecord   DepartmentRecord `json:"new_record"`
}

// UpdateDepartmentRequest 更新或删除单位
type UpdateDepartmentRequest struct {
	OldRecordID int64            `json:"old_record_id"`
	NewRecord   DepartmentRecord `json:"new_record"`
}

// DepartmentItem 单位展示结构
type DepartmentItem struct {
	ID             int64  `json:"id"`
	DepartmentCode string `json:"department_code"`
	DepartmentName string `json:"department_name"`
	DepartmentInfo string `json:"department_info"`
	Used           int    `json:"used"`
	UnitKind       int    `json:"unit_kind"`
	Stat           int    `json:"stat"`
}

// NewDepartmentItem 由模型构造
func NewDepartmentItem(d *model.Department) DepartmentItem {
	return DepartmentItem{
		ID:             d.ID,
		DepartmentCode: d.DepartmentCode,
		DepartmentName: d.DepartmentName,
		DepartmentInfo: d.DepartmentInfo,
		Used:           d.Used,
		UnitKind:       d.UnitKind,
		Stat:           d.Stat,
	}
}

// DepartmentTree 单位树响应
// DeptRelations 为第一棵树（兼容旧前端），DeptForest 为全部根节点
type DepartmentTree struct {
	DeptRelations interface{}      `json:"dept_relations"`
	DeptForest    []*forest.Node   `json:"dept_forest"`
	Departments   []DepartmentItem `json:"departments"`
}

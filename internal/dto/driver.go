package dto

import "github.com/rensongqi/sanic-adminapi/internal/model"

// ── 司机 DTO ──

// DriverFilter 司机查询条件
type DriverFilter struct {
	DeptID     int64  `json:"dept_id"`
	DriverName string `json:"driver_name"`
}

// DriverRecord 司机可写字段
type DriverRecord struct {
	DriverNo   *string `json:"driver_no"`
	DriverName *string `json:"driver_name"`
	DeptID     *int64  `json:"dept_id"`
}

// Updates 转为 gorm 更新字段
func (r *DriverRecord) Updates() map[string]interface{} {
	m := map[string]interface{}{}
	if r.DriverNo != nil {
		m["driver_no"] = *r.DriverNo
	}
	if r.DriverName != nil {
		m["driver_name"] = *r.DriverName
	}
	if r.DeptID != nil {
		m["dept_id"] = IDPtr(*r.DeptID)
	}
	return m
}

// InsertDriverRequest 新增司机
type InsertDriverRequest struct {
	NewRecord DriverRecord `json:"new_record"`
}

// UpdateDriverRequest 更新或删除司机
type UpdateDriverRequest struct {
	OldRecordID int64        `json:"old_record_id"`
	NewRecord   DriverRecord `json:"new_record"`
}

// DriverItem 司机展示结构
type DriverItem struct {
	ID          int64  `json:"id"`
	DriverNo    string `json:"driver_no"`
	DriverName  string `json:"driver_name"`
	DeptName    string `json:"dept_name"`
	UploadState int    `json:"upload_state"`
	IsBind      int    `json:"is_bind"`
}

// NewDriverItem 由预加载了单位的模型构造
func NewDriverItem(d *model.Driver) DriverItem {
	item := DriverItem{
		ID:          d.ID,
		DriverNo:    d.DriverNo,
		DriverName:  d.DriverName,
		UploadState: d.UploadState,
		IsBind:      d.IsBind,
	}
	if d.Dept != nil {
		item.DeptName = d.Dept.DepartmentName
	}
	return item
}

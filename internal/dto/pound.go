package dto

import "github.com/rensongqi/sanic-adminapi/internal/model"

// ── 地磅站 DTO ──

// CreatePoundRequest 新增地磅站
type CreatePoundRequest struct {
	PoundNo  string `json:"pound_no"`
	CompName string `json:"comp_name"`
	DeptID   int64  `json:"dept_id"`
	Comments string `json:"comments"`
}

// UpdatePoundRequest 更新地磅站
type UpdatePoundRequest struct {
	ID       int64  `json:"id"`
	PoundNo  string `json:"pound_no"`
	CompName string `json:"comp_name"`
	DeptID   int64  `json:"dept_id"`
	Comments string `json:"comments"`
}

// IDRequest 仅携带 id 的请求体
type IDRequest struct {
	ID int64 `json:"id"`
}

// PoundItem 地磅站展示结构
type PoundItem struct {
	ID             int64  `json:"id"`
	CompName       string `json:"comp_name"`
	PoundNo        string `json:"pound_no"`
	Comments       string `json:"comments"`
	DepartmentName string `json:"department_name"`
	ModifyTime     string `json:"modify_time"`
}

// NewPoundItem 由预加载了单位的模型构造
func NewPoundItem(p *model.Pound) PoundItem {
	item := PoundItem{
		ID:         p.ID,
		CompName:   p.CompName,
		PoundNo:    p.PoundNo,
		Comments:   p.Comments,
		ModifyTime: FormatTime(p.ModifyTime),
	}
	if p.Dept != nil {
		item.DepartmentName = p.Dept.DepartmentName
	}
	return item
}

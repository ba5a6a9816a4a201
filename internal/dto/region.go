package dto

import "github.com/rensongqi/sanic-adminapi/internal/model"

// RegionRecord 区域可写字段
type RegionRecord struct {
	RegionName *string `json:"region_name"`
	OrderNo    *int    `json:"order_no"`
}

// Updates 转为 gorm 更新字段
func (r *RegionRecord) Updates() map[string]interface{} {
	m := map[string]interface{}{}
	if r.RegionName != nil {
		m["region_name"] = *r.RegionName
	}
	if r.OrderNo != nil {
		m["order_no"] = *r.OrderNo
	}
	return m
}

// InsertRegionRequest 新增区域
type InsertRegionRequest struct {
	NewRecord RegionRecord `json:"new_record"`
}

// UpdateRegionRequest 更新或删除区域
type UpdateRegionRequest struct {
	OldRecordID int64        `json:"old_record_id"`
	NewRecord   RegionRecord `json:"new_record"`
}

// RegionItem 区域展示结构
type RegionItem struct {
	ID          int64  `json:"id"`
	RegionName  string `json:"region_name"`
	UploadState int    `json:"upload_state"`
	OrderNo     int    `json:"order_no"`
}

// NewRegionItem 由模型构造
func NewRegionItem(r *model.Region) RegionItem {
	return RegionItem{ID: r.ID, RegionName: r.RegionName, UploadState: r.UploadState, OrderNo: r.OrderNo}
}

package dto

import (
	"github.com/shopspring/decimal"

	"github.com/rensongqi/sanic-adminapi/internal/model"
)

// ── 垃圾类型 ──

// GarbageTypeRecord 垃圾类型可写字段
type GarbageTypeRecord struct {
	GarbageTypeName *string          `json:"garbage_type_name"`
	GarbagePrice    *decimal.Decimal `json:"garbage_price"`
	GarbageTypeInfo *string          `json:"garbage_type_info"`
}

// Updates 转为 gorm 更新字段
func (r *GarbageTypeRecord) Updates() map[string]interface{} {
	m := map[string]interface{}{}
	if r.GarbageTypeName != nil {
		m["garbage_type_name"] = *r.GarbageTypeName
	}
	if r.GarbagePrice != nil {
		m["garbage_price"] = *r.GarbagePrice
	}
	if r.GarbageTypeInfo != nil {
		m["garbage_type_info"] = *r.GarbageTypeInfo
	}
	return m
}

// InsertGarbageTypeRequest 新增垃圾类型
type InsertGarbageTypeRequest struct {
	NewRecord GarbageTypeRecord `json:"new_record"`
}

// UpdateGarbageTypeRequest 更新或删除垃圾类型
type UpdateGarbageTypeRequest struct {
	OldRecordID int64             `json:"old_record_id"`
	NewRecord   GarbageTypeRecord `json:"new_record"`
}

// GarbageTypeItem 垃圾类型展示结构
type GarbageTypeItem struct {
	ID              int64  `json:"id"`
	GarbageTypeNo   string `json:"garbage_type_no"`
	GarbageTypeName string `json:"garbage_type_name"`
	GarbagePrice    string `json:"garbage_price"`
	ModifyState     int    `json:"modify_state"`
	ModifyTime      string `json:"modify_time"`
	GarbageTypeInfo string `json:"garbage_type_info"`
	UploadState     int    `json:"upload_state"`
}

// NewGarbageTypeItem 由模型构造
func NewGarbageTypeItem(g *model.GarbageType) GarbageTypeItem {
	return GarbageTypeItem{
		ID:              g.ID,
		GarbageTypeNo:   g.GarbageTypeNo,
		GarbageTypeName: g.GarbageTypeName,
		GarbagePrice:    FormatDecimal(g.GarbagePrice),
		ModifyState:     g.ModifyState,
		ModifyTime:      FormatTime(g.ModifyTime),
		GarbageTypeInfo: g.GarbageTypeInfo,
		UploadState:     g.UploadState,
	}
}

// ── 垃圾来源 ──

// GarbageSourceRecord 垃圾来源可写字段
type GarbageSourceRecord struct {
	SourceFlag    *int    `json:"source_flag"`
	SourceName    *string `json:"source_name"`
	VirtualSource *int    `json:"virtual_source"`
	RegionID      *int64  `json:"region_id"`
	Info          *string `json:"info"`
}

// Updates 转为 gorm 更新字段
func (r *GarbageSourceRecord) Updates() map[string]interface{} {
	m := map[string]interface{}{}
	if r.SourceFlag != nil {
		m["source_flag"] = *r.SourceFlag
	}
	if r.SourceName != nil {
		m["source_name"] = *r.SourceName
	}
	if r.VirtualSource != nil {
		m["virtual_source"] = *r.VirtualSource
	}
	if r.RegionID != nil {
		m["region_id"] = IDPtr(*r.RegionID)
	}
	if r.Info != nil {
		m["info"] = *r.Info
	}
	return m
}

// InsertGarbageSourceRequest 新增垃圾来源
type InsertGarbageSourceRequest struct {
	NewRecord GarbageSourceRecord `json:"new_record"`
}

// UpdateGarbageSourceRequest 更新或删除垃圾来源
type UpdateGarbageSourceRequest struct {
	OldRecordID int64               `json:"old_record_id"`
	NewRecord   GarbageSourceRecord `json:"new_record"`
}

// GarbageSourceItem 垃圾来源展示结构
type GarbageSourceItem struct {
	ID            int64  `json:"id"`
	SourceName    string `json:"source_name"`
	SourceFlag    int    `json:"source_flag"`
	Info          string `json:"info"`
	UploadState   int    `json:"upload_state"`
	SourceID      int64  `json:"source_id"`
	Code          int    `json:"code"`
	RegionID      *int64 `json:"region_id"`
	RegionName    string `json:"region_name"`
	VirtualSource int    `json:"virtual_source"`
}

// NewGarbageSourceItem 由预加载了区域的模型构造
func NewGarbageSourceItem(g *model.GarbageSource) GarbageSourceItem {
	item := GarbageSourceItem{
		ID:            g.ID,
		SourceName:    g.SourceName,
		SourceFlag:    g.SourceFlag,
		Info:          g.Info,
		UploadState:   g.UploadState,
		SourceID:      g.SourceID,
		Code:          g.Code,
		RegionID:      g.RegionID,
		VirtualSource: g.VirtualSource,
	}
	if g.Region != nil {
		item.RegionName = g.Region.RegionName
	}
	return item
}

package dto

import "github.com/rensongqi/sanic-adminapi/internal/model"

// ── 车辆型号 DTO ──

// VehicleTypeRecord 车辆型号可写字段
type VehicleTypeRecord struct {
	VehicleTypeName *string `json:"vehicle_type_name"`
	VehicleTypeInfo *string `json:"vehicle_type_info"`
}

// Updates 转为 gorm 更新字段
func (r *VehicleTypeRecord) Updates() map[string]interface{} {
	m := map[string]interface{}{}
	if r.VehicleTypeName != nil {
		m["vehicle_type_name"] = *r.VehicleTypeName
	}
	if r.VehicleTypeInfo != nil {
		m["vehicle_type_info"] = *r.VehicleTypeInfo
	}
	return m
}

// InsertVehicleTypeRequest 新增车辆型号
type InsertVehicleTypeRequest struct {
	NewRecord VehicleTypeRecord `json:"new_record"`
}

// UpdateVehicleTypeRequest 更新或删除车辆型号
type UpdateVehicleTypeRequest struct {
	OldRecordID int64             `json:"old_record_id"`
	NewRecord   VehicleTypeRecord `json:"new_record"`
}

// VehicleTypeItem 车辆型号展示结构
type VehicleTypeItem struct {
	ID              int64  `json:"id"`
	VehicleTypeNo   int    `json:"vehicle_type_no"`
	VehicleTypeName string `json:"vehicle_type_name"`
	ModifyState     int    `json:"modify_state"`
	ModifyTime      string `json:"modify_time"`
	VehicleTypeInfo string `json:"vehicle_type_info"`
	UploadState     int    `json:"upload_state"`
}

// NewVehicleTypeItem 由模型构造
func NewVehicleTypeItem(t *model.VehicleType) VehicleTypeItem {
	return VehicleTypeItem{
		ID:              t.ID,
		VehicleTypeNo:   t.VehicleTypeNo,
		VehicleTypeName: t.VehicleTypeName,
		ModifyState:     t.ModifyState,
		ModifyTime:      FormatTime(t.ModifyTime),
		VehicleTypeInfo: t.VehicleTypeInfo,
		UploadState:     t.UploadState,
	}
}

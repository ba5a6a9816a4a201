package dto

import (
	"github.com/shopspring/decimal"

	"github.com/rensongqi/sanic-adminapi/internal/model"
)

// ── 车辆模块 DTO ──

// VehicleFilter 在用车辆查询条件
type VehicleFilter struct {
	VehicleNoContains     string `json:"vehicle_no__contains"`
	VehicleDoorNoContains string `json:"vehicle_door_no__contains"`
	VehicleTypeName       string `json:"vehicle_type_id__vehicle_type_name"`
	DepartmentName        string `json:"dept_id__department_name"`
	Driver                string `json:"driver"`
}

// ScrappedVehicleFilter 报废车辆查询条件（无司机条件）
type ScrappedVehicleFilter struct {
	VehicleNoContains     string `json:"vehicle_no__contains"`
	VehicleDoorNoContains string `json:"vehicle_door_no__contains"`
	VehicleTypeName       string `json:"vehicle_type_id__vehicle_type_name"`
	DepartmentName        string `json:"dept_id__department_name"`
}

// ToVehicleFilter 转为通用过滤条件
func (f ScrappedVehicleFilter) ToVehicleFilter() VehicleFilter {
	return VehicleFilter{
		VehicleNoContains:     f.VehicleNoContains,
		VehicleDoorNoContains: f.VehicleDoorNoContains,
		VehicleTypeName:       f.VehicleTypeName,
		DepartmentName:        f.DepartmentName,
	}
}

// VehicleRecord 车辆可写字段
type VehicleRecord struct {
	VehicleNo       *string          `json:"vehicle_no"`
	VehicleDoorNo   *string          `json:"vehicle_door_no"`
	DeptID          *int64           `json:"dept_id"`
	VehicleTypeID   *int64           `json:"vehicle_type_id"`
	GarbageSourceID *int64           `json:"garbage_source_id"`
	GarbageTypeID   *int64           `json:"garbage_type_id"`
	TareWeight      *decimal.Decimal `json:"tare_weight"`
	MaxNetWeight    *decimal.Decimal `json:"max_net_weight"`
	VehicleInfo     *string          `json:"vehicle_info"`
	Driver          *string          `json:"driver"`
}

// Updates 转为 gorm 更新字段
func (r *VehicleRecord) Updates() map[string]interface{} {
	m := map[string]interface{}{}
	if r.VehicleNo != nil {
		m["vehicle_no"] = *r.VehicleNo
	}
	if r.VehicleDoorNo != nil {
		m["vehicle_door_no"] = *r.VehicleDoorNo
	}
	if r.DeptID != nil {
		m["dept_id"] = IDPtr(*r.DeptID)
	}
	if r.VehicleTypeID != nil {
		m["vehicle_type_id"] = IDPtr(*r.VehicleTypeID)
	}
	if r.GarbageSourceID != nil {
		m["garbage_source_id"] = IDPtr(*r.GarbageSourceID)
	}
	if r.GarbageTypeID != nil {
		m["garbage_type_id"] = IDPtr(*r.GarbageTypeID)
	}
	if r.TareWeight != nil {
		m["tare_weight"] = *r.TareWeight
	}
	if r.MaxNetWeight != nil {
		m["max_net_weight"] = *r.MaxNetWeight
	}
	if r.VehicleInfo != nil {
		m["vehicle_info"] = *r.VehicleInfo
	}
	if r.Driver != nil {
		m["driver"] = *r.Driver
	}
	return m
}

// InsertVehicleRequest 新增车辆
type InsertVehicleRequest struct {
	NewRecord VehicleRecord `json:"new_record"`
}

// UpdateVehicleRequest 更新或报废车辆
type UpdateVehicleRequest struct {
	OldRecordID int64         `json:"old_record_id"`
	NewRecord   VehicleRecord `json:"new_record"`
}

// VehicleItem 车辆展示结构，关联字段展示为名称
type VehicleItem struct {
	ID                int64  `json:"id"`
	VehicleNo         string `json:"vehicle_no"`
	VehicleDoorNo     string `json:"vehicle_door_no"`
	DepartmentName    string `json:"department_name"`
	VehicleTypeName   string `json:"vehicle_type_name"`
	TareWeight        string `json:"tare_weight"`
	MaxNetWeight      string `json:"max_net_weight"`
	ModifyState       int    `json:"modify_state"`
	ModifyTime        string `json:"modify_time"`
	VehicleInfo       string `json:"vehicle_info"`
	CardNo            string `json:"card_no"`
	UploadState       int    `json:"upload_state"`
	VehicleUse        string `json:"vehicle_use"`
	Driver            string `json:"driver"`
	BuyCost           string `json:"buy_cost"`
	GarbageTypeName   string `json:"garbage_type_name"`
	GarbageSourceName string `json:"garbage_source_name"`
}

// NewVehicleItem 由预加载了关联的模型构造
func NewVehicleItem(v *model.Vehicle) VehicleItem {
	item := VehicleItem{
		ID:            v.ID,
		VehicleNo:     v.VehicleNo,
		VehicleDoorNo: v.VehicleDoorNo,
		TareWeight:    FormatDecimal(v.TareWeight),
		MaxNetWeight:  FormatDecimal(v.MaxNetWeight),
		ModifyState:   v.ModifyState,
		ModifyTime:    FormatTime(v.ModifyTime),
		VehicleInfo:   v.VehicleInfo,
		UploadState:   v.UploadState,
		VehicleUse:    v.VehicleUse,
		Driver:        v.Driver,
		BuyCost:       FormatDecimal(v.BuyCost),
	}
	if v.Dept != nil {
		item.DepartmentName = v.Dept.DepartmentName
	}
	if v.VehicleType != nil {
		item.VehicleTypeName = v.VehicleType.VehicleTypeName
	}
	if v.Card != nil {
		item.CardNo = v.Card.CardNo
	}
	if v.GarbageType != nil {
		item.GarbageTypeName = v.GarbageType.GarbageTypeName
	}
	if v.GarbageSource != nil {
		item.GarbageSourceName = v.GarbageSource.SourceName
	}
	return item
}

// VehicleQueryDropItems 车辆查询页下拉栏
type VehicleQueryDropItems struct {
	Depts        []string `json:"depts"`
	VehicleTypes []string `json:"vehicle_types"`
	Drivers      []string `json:"drivers"`
}

// VehicleTypeOption 下拉栏选项
type VehicleTypeOption struct {
	ID              int64  `json:"id"`
	VehicleTypeName string `json:"vehicle_type_name"`
}

type DepartmentOption struct {
	ID             int64  `json:"id"`
	DepartmentName string `json:"department_name"`
}

type GarbageSourceOption struct {
	ID         int64  `json:"id"`
	SourceName string `json:"source_name"`
	RegionName string `json:"region_id__region_name"`
}

type GarbageTypeOption struct {
	ID              int64  `json:"id"`
	GarbageTypeName string `json:"garbage_type_name"`
}

type DriverOption struct {
	ID         int64  `json:"id"`
	DriverName string `json:"driver_name"`
}

// VehicleInsertDropItems 车辆新增页下拉栏
type VehicleInsertDropItems struct {
	VehicleTypes []VehicleTypeOption   `json:"vehicle_types"`
	Depts        []DepartmentOption    `json:"depts"`
	Sources      []GarbageSourceOption `json:"sources"`
	GarbageTypes []GarbageTypeOption   `json:"garbage_types"`
	Drivers      []DriverOption        `json:"drivers"`
}

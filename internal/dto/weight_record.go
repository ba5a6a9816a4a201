package dto

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rensongqi/sanic-adminapi/internal/model"
)

// ── 称重记录 DTO ──

// WeightRecordFilter 称重记录查询条件
// TimeFiltered 为 true 时按 [start_time, end_time] 过滤称重时间
type WeightRecordFilter struct {
	VehicleNoContains     string `json:"vehicle_no__contains"`
	VehicleDoorNoContains string `json:"vehicle_door_no__contains"`
	VehicleType           string `json:"vehicle_type"`
	TransDept             string `json:"trans_dept"`
	GarbageType           string `json:"garbage_type"`
	GarbageSource         string `json:"garbage_source"`
	RegionNameContains    string `json:"garbage_source__region__region_name__contains"`
	Driver                string `json:"driver"`
	TimeFiltered          bool   `json:"time_filtered"`
	StartTime             string `json:"start_time"`
	EndTime               string `json:"end_time"`
}

// WeightRecordFilterQuery 导出接口的 query 参数形式
type WeightRecordFilterQuery struct {
	VehicleNoContains     string `form:"vehicle_no__contains"`
	VehicleDoorNoContains string `form:"vehicle_door_no__contains"`
	VehicleType           string `form:"vehicle_type"`
	TransDept             string `form:"trans_dept"`
	GarbageType           string `form:"garbage_type"`
	GarbageSource         string `form:"garbage_source"`
	RegionNameContains    string `form:"garbage_source__region__region_name__contains"`
	Driver                string `form:"driver"`
	StartTime             string `form:"start_time"`
	EndTime               string `form:"end_time"`
}

// ToFilter 转为 JSON 形式的过滤条件，给出起止时间即按时间过滤
func (q WeightRecordFilterQuery) ToFilter() WeightRecordFilter {
	return WeightRecordFilter{
		VehicleNoContains:     q.VehicleNoContains,
		VehicleDoorNoContains: q.VehicleDoorNoContains,
		VehicleType:           q.VehicleType,
		TransDept:             q.TransDept,
		GarbageType:           q.GarbageType,
		GarbageSource:         q.GarbageSource,
		RegionNameContains:    q.RegionNameContains,
		Driver:                q.Driver,
		TimeFiltered:          q.StartTime != "" && q.EndTime != "",
		StartTime:             q.StartTime,
		EndTime:               q.EndTime,
	}
}

// WeightRecordInput 手动补录称重记录
type WeightRecordInput struct {
	VehicleNo     string          `json:"vehicle_no"`
	VehicleDoorNo string          `json:"vehicle_door_no"`
	Driver        string          `json:"driver"`
	WeightGross   decimal.Decimal `json:"weight_gross"`
	WeightTare    decimal.Decimal `json:"weight_tare"`
	GarbageType   string          `json:"garbage_type"`
	GarbageSource string          `json:"garbage_source"`
	PoundID       int64           `json:"pound_id"`
	TimeWeight    string          `json:"time_weight"`
	Info          string          `json:"info"`
}

// InsertWeightRecordRequest 新增称重记录
type InsertWeightRecordRequest struct {
	NewRecord *WeightRecordInput `json:"new_record"`
}

// ClassifyRequest 称重分类统计
// 去掉空值与时间窗口后必须恰好剩一个分类字段，值为 all 表示不按该字段过滤
type ClassifyRequest struct {
	VehicleType             string `json:"vehicle_type"`
	TransDept               string `json:"trans_dept"`
	GarbageType             string `json:"garbage_type"`
	GarbageSourceName       string `json:"garbage_source__source_name"`
	GarbageSourceRegionName string `json:"garbage_source__region__region_name"`
	TimeFiltered            bool   `json:"time_filtered"`
	StartTime               string `json:"start_time"`
	EndTime                 string `json:"end_time"`
}

// Dimensions 返回非空的分类字段
func (r *ClassifyRequest) Dimensions() map[string]interface{} {
	return FilterEmpty(map[string]interface{}{
		"vehicle_type":                        r.VehicleType,
		"trans_dept":                          r.TransDept,
		"garbage_type":                        r.GarbageType,
		"garbage_source__source_name":         r.GarbageSourceName,
		"garbage_source__region__region_name": r.GarbageSourceRegionName,
	})
}

// ClassifiedItem 分类统计结果
type ClassifiedItem struct {
	ClassifiedName string `json:"classified_name"`
	WeightGrossSum string `json:"weight_gross_sum"`
	WeightTareSum  string `json:"weight_tare_sum"`
	WeightNetSum   string `json:"weight_net_sum"`
	VehicleNoCount int64  `json:"vehicle_no_count"`
}

// WeightRecordItem 称重记录展示结构
type WeightRecordItem struct {
	ID                int64  `json:"id"`
	IDCenter          int64  `json:"id_center"`
	VehicleNo         string `json:"vehicle_no"`
	DriverName        string `json:"driver_name"`
	VehicleDoorNo     string `json:"vehicle_door_no"`
	TimeWeight        string `json:"time_weight"`
	WeightGross       string `json:"weight_gross"`
	TimeLeave         string `json:"time_leave"`
	WeightTare        string `json:"weight_tare"`
	WeightNet         string `json:"weight_net"`
	LoadingRate       string `json:"loading_rate"`
	PoundName         string `json:"pound_name"`
	DeptName          string `json:"dept_name"`
	WeightChecker     string `json:"weight_checker"`
	GarbageSourceName string `json:"garbage_source_name"`
	GarbageTypeName   string `json:"garbage_type_name"`
	RegionName        string `json:"region_name"`
	DataType          string `json:"data_type"`
	ImageIn           string `json:"image_in"`
	ImageOut          string `json:"image_out"`
	TimeLoading       string `json:"time_loading"`
	LoadMeterPosID    string `json:"load_meter_pos_id"`
	Info              string `json:"info"`
	CheckTime         string `json:"check_time"`
}

const noImage = "无图片"

// NewWeightRecordItem 由预加载了关联的模型构造
func NewWeightRecordItem(w *model.WeightRecord) WeightRecordItem {
	net := w.NetWeight()
	item := WeightRecordItem{
		ID:             w.ID,
		IDCenter:       w.IDCenter,
		TimeWeight:     FormatTime(w.TimeWeight),
		WeightGross:    FormatDecimal(w.WeightGross),
		TimeLeave:      FormatTime(w.TimeLeave),
		WeightTare:     FormatDecimal(w.WeightTare),
		WeightNet:      FormatDecimal(net),
		LoadingRate:    "0.00%",
		WeightChecker:  w.UserID,
		DataType:       model.DataMarkLabel(w.DataMark),
		ImageIn:        noImage,
		ImageOut:       noImage,
		TimeLoading:    FormatTime(w.TimeLoading),
		LoadMeterPosID: w.LoadMeterPosID,
		Info:           w.Info,
		CheckTime:      FormatTime(w.CheckTime),
	}
	if v := w.Vehicle; v != nil {
		item.VehicleNo = v.VehicleNo
		item.VehicleDoorNo = v.VehicleDoorNo
		if v.Dept != nil {
			item.DeptName = v.Dept.DepartmentName
		}
		item.LoadingRate = LoadingRate(net, v.MaxNetWeight)
	}
	if w.Driver != nil {
		item.DriverName = w.Driver.DriverName
	}
	if w.Pound != nil {
		item.PoundName = w.Pound.CompName
	}
	if w.Operator != nil {
		item.WeightChecker = w.Operator.Username
	}
	if gs := w.GarbageSource; gs != nil {
		item.GarbageSourceName = gs.SourceName
		if gs.Region != nil {
			item.RegionName = gs.Region.RegionName
		}
	}
	if w.GarbageType != nil {
		item.GarbageTypeName = w.GarbageType.GarbageTypeName
	}
	return item
}

// LoadingRate 装载率 net/max，百分比保留两位
func LoadingRate(net, maxNet decimal.Decimal) string {
	if maxNet.IsZero() {
		return "0.00%"
	}
	return fmt.Sprintf("%s%%", net.Div(maxNet).Mul(decimal.NewFromInt(100)).StringFixed(2))
}

// WeightRecordFull 称重记录详情：全部落库字段加上关联名称
type WeightRecordFull struct {
	WeightRecordItem
	VehicleID       *int64 `json:"vehicle_id"`
	BoxID           string `json:"box_id"`
	GarbageSourceID *int64 `json:"garbage_source_id"`
	GarbageTypeID   *int64 `json:"garbage_type_id"`
	OperatorID      *int64 `json:"operator_id"`
	DriverID        *int64 `json:"driver_id"`
	DataMark        int    `json:"data_mark"`
	PoundID         *int64 `json:"pound_id"`
	UploadState     int    `json:"upload_state"`
	UserID          string `json:"user_id"`
	SourceManager   string `json:"source_manager"`
	CheckReason     string `json:"check_reason"`
	Memo            string `json:"memo"`
	VehicleTypeName string `json:"vehicle_type_name"`
	RawImageIn      string `json:"raw_image_in"`
	RawImageOut     string `json:"raw_image_out"`
}

// NewWeightRecordFull 由预加载了关联的模型构造
func NewWeightRecordFull(w *model.WeightRecord) WeightRecordFull {
	full := WeightRecordFull{
		WeightRecordItem: NewWeightRecordItem(w),
		VehicleID:        w.VehicleID,
		BoxID:            w.BoxID,
		GarbageSourceID:  w.GarbageSourceID,
		GarbageTypeID:    w.GarbageTypeID,
		OperatorID:       w.OperatorID,
		DriverID:         w.DriverID,
		DataMark:         w.DataMark,
		PoundID:          w.PoundID,
		UploadState:      w.UploadState,
		UserID:           w.UserID,
		SourceManager:    w.SourceManager,
		CheckReason:      w.CheckReason,
		Memo:             w.Memo,
		RawImageIn:       w.ImageIn,
		RawImageOut:      w.ImageOut,
	}
	if w.Vehicle != nil && w.Vehicle.VehicleType != nil {
		full.VehicleTypeName = w.Vehicle.VehicleType.VehicleTypeName
	}
	return full
}

// WeightRecordDropItems 称重查询页下拉栏
type WeightRecordDropItems struct {
	VehicleTypes   []string `json:"vehicle_types"`
	Depts          []string `json:"depts"`
	GarbageTypes   []string `json:"garbage_types"`
	GarbageSources []string `json:"garbage_sources"`
	Region         []string `json:"region"`
	Drivers        []string `json:"drivers"`
}

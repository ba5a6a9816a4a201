package dto

// ── 统计报表 DTO ──

// StatFilter 统计查询通用条件，各接口只使用其中一部分
type StatFilter struct {
	PoundID               int64  `json:"pound_id"`
	DeptID                int64  `json:"vehicle_id__dept_id"`
	VehicleDoorNoContains string `json:"vehicle_id__vehicle_door_no__contains"`
	VehicleNoContains     string `json:"vehicle_id__vehicle_no__contains"`
	Info                  string `json:"info"`
	RegionID              int64  `json:"garbage_source_id__region_id"`
	GarbageSourceID       int64  `json:"garbage_source_id"`
	GarbageTypeID         int64  `json:"garbage_type_id"`
	DriverID              int64  `json:"driver_id"`
	StartTime             string `json:"start_time"`
	EndTime               string `json:"end_time"`
}

// MonthStatFilter 按月统计条件
type MonthStatFilter struct {
	PoundID         int64  `json:"pound_id"`
	DeptID          int64  `json:"vehicle_id__dept_id"`
	RegionID        int64  `json:"garbage_source_id__region_id"`
	GarbageSourceID int64  `json:"garbage_source_id"`
	GarbageTypeID   int64  `json:"garbage_type_id"`
	Month           string `json:"month"`
}

// PoundGarbageFilter 地磅清运统计条件
// Type: 0 全部，1 仅统计单位，2 排除统计单位
type PoundGarbageFilter struct {
	PoundID int64  `json:"pound_id"`
	Type    int    `json:"type"`
	Month   string `json:"month"`
}

// PoundOption 地磅站下拉栏选项
type PoundOption struct {
	ID       int64  `json:"id"`
	CompName string `json:"comp_name"`
}

type RegionOption struct {
	ID         int64  `json:"id"`
	RegionName string `json:"region_name"`
}

type GarbageSourceNameOption struct {
	ID         int64  `json:"id"`
	SourceName string `json:"source_name"`
}

// StatisticTypeOption 地磅清运统计表类型
type StatisticTypeOption struct {
	ID         int    `json:"id"`
	DriverName string `json:"driver_name"`
}

// TransQueryDropItems 统计查询页下拉栏
type TransQueryDropItems struct {
	Pounds                    []PoundOption             `json:"pounds"`
	Depts                     []DepartmentOption        `json:"depts"`
	DataTypes                 []string                  `json:"data_types"`
	Regions                   []RegionOption            `json:"regions"`
	GarbageSources            []GarbageSourceNameOption `json:"garbage_sources"`
	GarbageTypes              []GarbageTypeOption       `json:"garbage_types"`
	Drivers                   []DriverOption            `json:"drivers"`
	PoundGarbageStatisticType []StatisticTypeOption     `json:"pound_garbage_statistic_type"`
}

// TransInfo 清运明细分页结果
type TransInfo struct {
	WeightRecords  []WeightRecordItem `json:"weight_records"`
	RecordCount    int64              `json:"record_count"`
	WeightGrossSum string             `json:"weight_gross_sum"`
	WeightTareSum  string             `json:"weight_tare_sum"`
	WeightNetSum   string             `json:"weight_net_sum"`
}

// RegionDeptGroup 区域 × 单位汇总
type RegionDeptGroup struct {
	RegionName     string `json:"garbage_source_id__region_id__region_name"`
	DepartmentName string `json:"vehicle_id__dept_id__department_name"`
	VehicleNum     int64  `json:"vehicle_num"`
	WeightGrossSum string `json:"weight_gross_sum"`
	WeightTareSum  string `json:"weight_tare_sum"`
	WeightNetSum   string `json:"weight_net_sum"`
}

// RegionWeightInfo 区域垃圾量汇总
type RegionWeightInfo struct {
	GroupWeightRecords           []RegionDeptGroup `json:"group_weight_records"`
	VehicleNumTotal              int64             `json:"vehicle_num_total"`
	WeightNetTotal               string            `json:"weight_net_total"`
	SanitationTotalVehicleNum    int64             `json:"sanitation_total_vehicle_num"`
	SanitationTotalGarbageWeight string            `json:"sanitation_total_garbage_weight"`
	TownsTotalVehicleNum         int64             `json:"towns_total_vehicle_num"`
	TownsTotalGarbageWeight      string            `json:"towns_total_garbage_weight"`
}

// SourceDateGroup 来源 × 日期汇总
type SourceDateGroup struct {
	SourceName     string `json:"garbage_source_id__source_name"`
	Date           string `json:"date"`
	VehicleNum     int64  `json:"vehicle_num"`
	WeightGrossSum string `json:"weight_gross_sum"`
	WeightTareSum  string `json:"weight_tare_sum"`
	WeightNetSum   string `json:"weight_net_sum"`
}

// DateGroup 按日期汇总
type DateGroup struct {
	Date           string `json:"date"`
	Month          string `json:"month,omitempty"`
	VehicleNum     int64  `json:"vehicle_num"`
	WeightGrossSum string `json:"weight_gross_sum"`
	WeightTareSum  string `json:"weight_tare_sum"`
	WeightNetSum   string `json:"weight_net_sum"`
}

// SourceGroup 按来源汇总
type SourceGroup struct {
	SourceName     string `json:"garbage_source_id__source_name"`
	VehicleNum     int64  `json:"vehicle_num"`
	WeightGrossSum string `json:"weight_gross_sum"`
	WeightTareSum  string `json:"weight_tare_sum"`
	WeightNetSum   string `json:"weight_net_sum"`
}

// GarbageSourceTransInfo 垃圾来源月度清运
type GarbageSourceTransInfo struct {
	GroupWeightRecords             []SourceDateGroup `json:"group_weight_records"`
	VehicleNumGroupByDate          []DateGroup       `json:"vehicle_num_groupBy_date"`
	VehicleNumGroupByGarbageSource []SourceGroup     `json:"vehicle_num_groupBy_garbage_source"`
}

// PoundGarbageInfo 地磅月度清运
type PoundGarbageInfo struct {
	WeightRecordsGroupByDate []DateGroup `json:"weight_records_group_by_date"`
	VehicleNumTotal          int64       `json:"vehicle_num_total"`
	WeightNetTotal           string      `json:"weight_net_total"`
	WeightGrossTotal         string      `json:"weight_gross_total"`
	WeightTareTotal          string      `json:"weight_tare_total"`
}

// TransGroupByDateInfo 按日期/来源汇总
type TransGroupByDateInfo struct {
	WeightRecordsGroupByDateSource []SourceDateGroup `json:"weight_records_group_by_date_source"`
	WeightRecordsGroupByDate       []DateGroup       `json:"weight_records_group_by_date"`
	WeightRecordsGroupBySource     []SourceGroup     `json:"weight_records_group_by_source"`
}

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// WeightRecord 称重记录，对应 weight_record
// 净重不落库，读取时由毛重减皮重得出
type WeightRecord struct {
	ID              int64           `gorm:"column:id;primaryKey;autoIncrement"          json:"id"`
	VehicleID       *int64          `gorm:"column:vehicle_id;index"                     json:"vehicle_id"`
	BoxID           string          `gorm:"column:box_id;type:varchar(20)"              json:"box_id"`
	TimeLoading     *time.Time      `gorm:"column:time_loading"                         json:"time_loading"`
	GarbageSourceID *int64          `gorm:"column:garbage_source_id;index"              json:"garbage_source_id"`
	GarbageTypeID   *int64          `gorm:"column:garbage_type_id"                      json:"garbage_type_id"`
	LoadMeterPosID  string          `gorm:"column:load_meter_pos_id;type:varchar(20)"   json:"load_meter_pos_id"`
	WeightGross     decimal.Decimal `gorm:"column:weight_gross;type:decimal(10,2)"      json:"weight_gross"`
	TimeWeight      *time.Time      `gorm:"column:time_weight;index"                    json:"time_weight"`
	TimeLeave       *time.Time      `gorm:"column:time_leave"                           json:"time_leave"`
	OperatorID      *int64          `gorm:"column:operator_id"                          json:"operator_id"`
	DriverID        *int64          `gorm:"column:driver_id"                            json:"driver_id"`
	DataMark        int             `gorm:"column:data_mark"                            json:"data_mark"`
	WeightTare      decimal.Decimal `gorm:"column:weight_tare;type:decimal(10,2)"       json:"weight_tare"`
	Info            string          `gorm:"column:info;type:varchar(100)"               json:"info"`
	ImageIn         string          `gorm:"column:image_in;type:varchar(255)"           json:"image_in"`
	ImageOut        string          `gorm:"column:image_out;type:varchar(255)"          json:"image_out"`
	CheckTime       *time.Time      `gorm:"column:check_time"                           json:"check_time"`
	IDCenter        int64           `gorm:"column:id_center"                            json:"id_center"`
	PoundID         *int64          `gorm:"column:pound_id;index"                       json:"pound_id"`
	UploadState     int             `gorm:"column:upload_state"                         json:"upload_state"`
	UserID          string          `gorm:"column:user_id;type:varchar(20)"             json:"user_id"`
	SourceManager   string          `gorm:"column:source_manager;type:varchar(20)"      json:"source_manager"`
	CheckReason     string          `gorm:"column:check_reason;type:varchar(100)"       json:"check_reason"`
	Memo            string          `gorm:"column:memo;type:varchar(100)"               json:"memo"`

	// 关联
	Vehicle       *Vehicle       `gorm:"foreignKey:VehicleID;references:ID"       json:"-"`
	GarbageSource *GarbageSource `gorm:"foreignKey:GarbageSourceID;references:ID" json:"-"`
	GarbageType   *GarbageType   `gorm:"foreignKey:GarbageTypeID;references:ID"   json:"-"`
	Driver        *Driver        `gorm:"foreignKey:DriverID;references:ID"        json:"-"`
	Pound         *Pound         `gorm:"foreignKey:PoundID;references:ID"         json:"-"`
	Operator      *Operator      `gorm:"foreignKey:UserID;references:UserID"      json:"-"`
}

// TableName 指定表名
func (WeightRecord) TableName() string { return "weight_record" }

// NetWeight 净重 = 毛重 - 皮重
func (w *WeightRecord) NetWeight() decimal.Decimal {
	return w.WeightGross.Sub(w.WeightTare)
}

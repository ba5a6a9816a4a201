package model

import "time"

// Card IC 卡，对应 card
// 一张卡最多绑定一辆在用车辆，由业务层保证
type Card struct {
	ID             int64      `gorm:"column:id;primaryKey;autoIncrement"     json:"id"`
	CardNo         string     `gorm:"column:card_no;type:varchar(30)"        json:"card_no"`
	CardStartTime  *time.Time `gorm:"column:card_start_time;type:date"       json:"card_start_time"`
	CardExpireTime *time.Time `gorm:"column:card_expire_time;type:date"      json:"card_expire_time"`
	NumCardInvalid int        `gorm:"column:num_card_invalid"                json:"num_card_invalid"`
	UploadState    int        `gorm:"column:upload_state"                    json:"upload_state"`
	ModifyState    int        `gorm:"column:modify_state"                    json:"modify_state"`
	ChangeReason   string     `gorm:"column:change_reason;type:varchar(50)"  json:"change_reason"`
	CardPrintNo    string     `gorm:"column:card_print_no;type:varchar(30)"  json:"card_print_no"`
}

// TableName 指定表名
func (Card) TableName() string { return "card" }

// CardPound 卡在某地磅站的签发记录，对应 card_pound
// (card_id, pound_id) 唯一
type CardPound struct {
	ID          int64 `gorm:"column:id;primaryKey;autoIncrement"                   json:"id"`
	CardID      int64 `gorm:"column:card_id;uniqueIndex:uk_card_pound,priority:1"  json:"card_id"`
	PoundID     int64 `gorm:"column:pound_id;uniqueIndex:uk_card_pound,priority:2" json:"pound_id"`
	UploadState int   `gorm:"column:upload_state"                                  json:"upload_state"`

	// 关联
	Pound *Pound `gorm:"foreignKey:PoundID;references:ID" json:"-"`
}

// TableName 指定表名
func (CardPound) TableName() string { return "card_pound" }

// CardChanged 换卡记录，对应 card_changed
// 每张旧卡至多一条，只新增或更新，不删除
type CardChanged struct {
	ID             int64      `gorm:"column:id;primaryKey;autoIncrement"       json:"id"`
	ChangeCardTime *time.Time `gorm:"column:change_card_time"                  json:"change_card_time"`
	ChangeReason   int        `gorm:"column:change_reason"                     json:"change_reason"`
	UserID         string     `gorm:"column:user_id;type:varchar(20)"          json:"user_id"`
	Info           string     `gorm:"column:info;type:varchar(100)"            json:"info"`
	VehicleNo      string     `gorm:"column:vehicle_no;type:varchar(20)"       json:"vehicle_no"`
	VehicleDoorNo  string     `gorm:"column:vehicle_door_no;type:varchar(20)"  json:"vehicle_door_no"`
	UploadState    int        `gorm:"column:upload_state"                      json:"upload_state"`
	CardID         int64      `gorm:"column:card_id;uniqueIndex:uk_card_changed_card" json:"card_id"`
	NewCardID      *int64     `gorm:"column:new_card_id"                       json:"new_card_id"`
	DeptID         *int64     `gorm:"column:dept_id"                           json:"dept_id"`

	// 关联
	Card    *Card       `gorm:"foreignKey:CardID;references:ID"    json:"-"`
	NewCard *Card       `gorm:"foreignKey:NewCardID;references:ID" json:"-"`
	Dept    *Department `gorm:"foreignKey:DeptID;references:ID"    json:"-"`
}

// TableName 指定表名
func (CardChanged) TableName() string { return "card_changed" }

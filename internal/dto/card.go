package dto

import "github.com/rensongqi/sanic-adminapi/internal/model"

// ── IC 卡 DTO ──

// CardQuery IC 卡列表查询条件（query 参数）
type CardQuery struct {
	VehicleNo     string `form:"vehicle_no"`
	VehicleDoorNo string `form:"vehicle_door_no"`
	ICCardNo      string `form:"ic_card_no"`
}

// CreateCardRequest 新增 IC 卡
type CreateCardRequest struct {
	CardNo         string `json:"card_no"`
	NumCardInvalid int    `json:"num_card_invalid"`
}

// UpdateCardRequest 更新 IC 卡
type UpdateCardRequest struct {
	ID             int64  `json:"id"`
	CardNo         string `json:"card_no"`
	NumCardInvalid int    `json:"num_card_invalid"`
}

// CheckCardRequest IC 卡年检，更新有效期
type CheckCardRequest struct {
	ID             int64  `json:"id"`
	CardStartTime  string `json:"card_start_time"`
	CardExpireTime string `json:"card_expire_time"`
}

// ChangeInfoQuery 换卡记录查询条件（query 参数）
type ChangeInfoQuery struct {
	VehicleNo string `form:"vehicle_no"`
	StartTime string `form:"start_time"`
	EndTime   string `form:"end_time"`
}

// ChangeCardRequest 换卡
type ChangeCardRequest struct {
	CardID         int64  `json:"card_id"`
	CardStartTime  string `json:"card_start_time"`
	CardExpireTime string `json:"card_expire_time"`
	ChangeCardTime string `json:"change_card_time"`
	ChangeReason   int    `json:"change_reason"`
	Operator       string `json:"operator"`
	Info           string `json:"info"`
	VehicleNo      string `json:"vehicle_no"`
	VehicleDoorNo  string `json:"vehicle_door_no"`
	DeptID         int64  `json:"dept_id"`
	NewCardID      int64  `json:"new_card_id"`
}

// SignedCardFilter 签发管理车辆查询条件
// PoundID 为 0 时列出所有地磅站的签发记录
type SignedCardFilter struct {
	VehicleNo     string `json:"vehicle_no"`
	VehicleDoorNo string `json:"vehicle_door_no"`
	VehicleTypeID int64  `json:"vehicle_type_id"`
	PoundID       int64  `json:"pound_id"`
	DeptID        int64  `json:"dept_id"`
}

// SignCardRequest 签发 IC 卡到地磅站
type SignCardRequest struct {
	ID             int64  `json:"id"`
	CardStartTime  string `json:"card_start_time"`
	CardExpireTime string `json:"card_expire_time"`
	PoundID        int64  `json:"pound_id"`
}

// RevokeCardRequest 撤销签发
type RevokeCardRequest struct {
	ID      int64 `json:"id"`
	PoundID int64 `json:"pound_id"`
}

// CardItem IC 卡展示结构，附带绑定车辆
type CardItem struct {
	ID             int64  `json:"id"`
	CardNo         string `json:"card_no"`
	CardStartTime  string `json:"card_start_time"`
	CardExpireTime string `json:"card_expire_time"`
	NumCardInvalid int    `json:"num_card_invalid"`
	UploadState    int    `json:"upload_state"`
	ModifyState    int    `json:"modify_state"`
	ChangeReason   string `json:"change_reason"`
	CardPrintNo    string `json:"card_print_no"`
	VehicleNo      string `json:"vehicle_no"`
	VehicleDoorNo  string `json:"vehicle_door_no"`
}

// NewCardItem 由模型与（可选）绑定车辆构造
func NewCardItem(c *model.Card, v *model.Vehicle) CardItem {
	item := CardItem{
		ID:             c.ID,
		CardNo:         c.CardNo,
		CardStartTime:  FormatDate(c.CardStartTime),
		CardExpireTime: FormatDate(c.CardExpireTime),
		NumCardInvalid: c.NumCardInvalid,
		UploadState:    c.UploadState,
		ModifyState:    c.ModifyState,
		ChangeReason:   c.ChangeReason,
		CardPrintNo:    c.CardPrintNo,
	}
	if v != nil {
		item.VehicleNo = v.VehicleNo
		item.VehicleDoorNo = v.VehicleDoorNo
	}
	return item
}

// CardChangeItem 换卡记录展示结构
type CardChangeItem struct {
	ID             int64  `json:"id"`
	ICCardNoOld    string `json:"ic_card_no_old"`
	ICCardNoNew    string `json:"ic_card_no_new"`
	ChangeCardTime string `json:"change_card_time"`
	ChangeReason   string `json:"change_reason"`
	Operator       string `json:"operator"`
	Remarks        string `json:"remarks"`
	VehicleNo      string `json:"vehicle_no"`
	VehicleDoorNo  string `json:"vehicle_door_no"`
	Department     string `json:"department"`
	UploadState    int    `json:"upload_state"`
}

// NewCardChangeItem 由预加载了新旧卡与单位的模型构造
func NewCardChangeItem(c *model.CardChanged) CardChangeItem {
	item := CardChangeItem{
		ID:             c.ID,
		ChangeCardTime: FormatTime(c.ChangeCardTime),
		ChangeReason:   model.ChangeReasonLabel(c.ChangeReason),
		Operator:       c.UserID,
		Remarks:        c.Info,
		VehicleNo:      c.VehicleNo,
		VehicleDoorNo:  c.VehicleDoorNo,
		UploadState:    c.UploadState,
	}
	if c.Card != nil {
		item.ICCardNoOld = c.Card.CardNo
	}
	if c.NewCard != nil {
		item.ICCardNoNew = c.NewCard.CardNo
	}
	if c.Dept != nil {
		item.Department = c.Dept.DepartmentName
	}
	return item
}

// SignedCardItem 签发管理列表行：车辆 × 签发地磅站
type SignedCardItem struct {
	ID                int64  `json:"id"`
	CardID            *int64 `json:"card_id"`
	VehicleNo         string `json:"vehicle_no"`
	VehicleDoorNo     string `json:"vehicle_door_no"`
	DeptName          string `json:"dept_name"`
	VehicleTypeName   string `json:"vehicle_type_name"`
	TareWeight        string `json:"tare_weight"`
	MaxNetWeight      string `json:"max_net_weight"`
	ModifyState       int    `json:"modify_state"`
	ModifyTime        string `json:"modify_time"`
	VehicleInfo       string `json:"vehicle_info"`
	CardNo            string `json:"card_no"`
	CardStartTime     string `json:"card_start_time_t"`
	CardExpireTime    string `json:"card_expire_time_t"`
	UploadState       int    `json:"upload_state"`
	VehicleUse        string `json:"vehicle_use"`
	Driver            string `json:"driver"`
	PoundID           *int64 `json:"pound_id"`
	PoundName         string `json:"pound_name"`
	GarbageTypeName   string `json:"garbage_type_name"`
	GarbageSourceName string `json:"garbage_source_name"`
}

// NewSignedCardItem 由预加载了关联的车辆与签发地磅站构造，pound 为 nil 表示未签发
func NewSignedCardItem(v *model.Vehicle, pound *model.Pound) SignedCardItem {
	base := NewVehicleItem(v)
	item := SignedCardItem{
		ID:                v.ID,
		CardID:            v.CardID,
		VehicleNo:         base.VehicleNo,
		VehicleDoorNo:     base.VehicleDoorNo,
		DeptName:          base.DepartmentName,
		VehicleTypeName:   base.VehicleTypeName,
		TareWeight:        base.TareWeight,
		MaxNetWeight:      base.MaxNetWeight,
		ModifyState:       base.ModifyState,
		ModifyTime:        base.ModifyTime,
		VehicleInfo:       base.VehicleInfo,
		CardNo:            base.CardNo,
		UploadState:       base.UploadState,
		VehicleUse:        base.VehicleUse,
		Driver:            base.Driver,
		GarbageTypeName:   base.GarbageTypeName,
		GarbageSourceName: base.GarbageSourceName,
	}
	if v.Card != nil {
		item.CardStartTime = FormatTime(v.Card.CardStartTime)
		item.CardExpireTime = FormatTime(v.Card.CardExpireTime)
	}
	if pound != nil {
		item.PoundID = &pound.ID
		item.PoundName = pound.CompName
	}
	return item
}

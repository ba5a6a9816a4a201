package model

// ── 状态常量 ──

// modify_state 取值：0 正常，2 报废/删除（单向，不可恢复）
const (
	ModifyStateActive   = 0
	ModifyStateScrapped = 2
)

// upload_state 为与上游系统同步的标记，本系统只写入默认值
const (
	UploadStatePending  = 0
	UploadStateUploaded = 1
	UploadStateLocal    = 2
)

// data_mark 称重数据来源
const (
	DataMarkAuto       = 0 // 自动读取
	DataMarkManual     = 1 // 手动补充
	DataMarkManualDoor = 2 // 读卡失败后手动输入车门号
)

// DataMarkLabel 返回 data_mark 的展示文案
func DataMarkLabel(mark int) string {
	switch mark {
	case DataMarkAuto:
		return "自动读取"
	case DataMarkManual:
		return "手动补充"
	case DataMarkManualDoor:
		return "读卡失败后手动输入车门号"
	default:
		return ""
	}
}

// ChangeReasonLabel 返回换卡原因的展示文案
// 1 正常损坏，2 人为损坏，其余按丢失处理
func ChangeReasonLabel(reason int) string {
	switch reason {
	case 1:
		return "正常损坏"
	case 2:
		return "人为损坏"
	default:
		return "丢失"
	}
}

// All 返回全部模型，供 AutoMigrate 使用（顺序按外键依赖排列）
func All() []interface{} {
	return []interface{}{
		&Department{},
		&Region{},
		&VehicleType{},
		&GarbageType{},
		&GarbageSource{},
		&Card{},
		&Pound{},
		&CardPound{},
		&CardChanged{},
		&Driver{},
		&Vehicle{},
		&Operator{},
		&WebUser{},
		&UserMenu{},
		&Dictionary{},
		&WeightRecord{},
		&OperationLog{},
	}
}

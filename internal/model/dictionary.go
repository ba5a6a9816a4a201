package model

// DictTypeDataType 称重数据类型字典分类
const DictTypeDataType = "DataType"

// Dictionary 数据字典，对应 dictionary
type Dictionary struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement"  json:"id"`
	DataType  string `gorm:"column:data_type;type:varchar(20)"   json:"data_type"`
	DataValue string `gorm:"column:data_value;type:varchar(50)"  json:"data_value"`
	OrderNo   int    `gorm:"column:order_no"                     json:"order_no"`
}

// TableName 指定表名
func (Dictionary) TableName() string { return "dictionary" }

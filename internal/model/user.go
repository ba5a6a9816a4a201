package model

// WebUser 后台登录账号，对应 web_user
// 登录时以 user_id 作为账号
type WebUser struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement"     json:"id"`
	UserID      string `gorm:"column:user_id;type:varchar(20);index"  json:"user_id"`
	Username    string `gorm:"column:username;type:varchar(20)"       json:"username"`
	Password    string `gorm:"column:password;type:varchar(100)"      json:"-"`
	DeptID      *int64 `gorm:"column:dept_id"                         json:"dept_id"`
	MenuAccess  string `gorm:"column:menu_access;type:varchar(255)"   json:"menu_access"`
	UserClass   int    `gorm:"column:user_class"                      json:"user_class"`
	MenuCtrl    string `gorm:"column:menu_ctrl;type:varchar(255)"     json:"menu_ctrl"`
	UploadState int    `gorm:"column:upload_state"                    json:"upload_state"`
	Menus       string `gorm:"column:menus;type:varchar(255)"         json:"menus"`
}

// TableName 指定表名
func (WebUser) TableName() string { return "web_user" }

// Operator 地磅操作员，对应 operator
// 称重记录通过 user_id 关联操作员
type Operator struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement"          json:"id"`
	UserID      string `gorm:"column:user_id;type:varchar(20);uniqueIndex" json:"user_id"`
	Username    string `gorm:"column:username;type:varchar(20)"            json:"username"`
	Password    string `gorm:"column:password;type:varchar(100)"           json:"-"`
	DeptID      *int64 `gorm:"column:dept_id"                              json:"dept_id"`
	UserClass   int    `gorm:"column:user_class"                           json:"user_class"`
	UploadState int    `gorm:"column:upload_state"                         json:"upload_state"`
}

// TableName 指定表名
func (Operator) TableName() string { return "operator" }

// UserMenu 前端菜单，对应 user_menu
type UserMenu struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	MenuName  string `gorm:"column:menu_name;type:varchar(50)"  json:"menu_name"`
	MenuURL   string `gorm:"column:menu_url;type:varchar(100)"  json:"menu_url"`
	MenuOrder int    `gorm:"column:menu_order"                  json:"menu_order"`
	Hidden    int    `gorm:"column:hidden"                      json:"hidden"`
	ParentID  *int64 `gorm:"column:parent_id"                   json:"parent_id"`
}

// TableName 指定表名
func (UserMenu) TableName() string { return "user_menu" }

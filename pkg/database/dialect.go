package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// 日期截断粒度
const (
	LayoutDay        = "day"        // 2006-01-02
	LayoutMonth      = "month"      // 2006-01
	LayoutDayOfMonth = "dayOfMonth" // 02
)

// DateFormatExpr 返回按方言截断时间列的 SQL 片段
// column 必须是受信任的列名，不得来自请求参数
func DateFormatExpr(db *gorm.DB, column, layout string) string {
	switch db.Dialector.Name() {
	case "postgres":
		return fmt.Sprintf("to_char(%s, '%s')", column, pgPattern(layout))
	case "sqlite":
		return fmt.Sprintf("strftime('%s', %s)", strftimePattern(layout), column)
	default:
		return fmt.Sprintf("DATE_FORMAT(%s, '%s')", column, strftimePattern(layout))
	}
}

func strftimePattern(layout string) string {
	switch layout {
	case LayoutMonth:
		return "%Y-%m"
	case LayoutDayOfMonth:
		return "%d"
	default:
		return "%Y-%m-%d"
	}
}

func pgPattern(layout string) string {
	switch layout {
	case LayoutMonth:
		return "YYYY-MM"
	case LayoutDayOfMonth:
		return "DD"
	default:
		return "YYYY-MM-DD"
	}
}

// ContainsOp 返回方言下不区分大小写的包含匹配运算符
func ContainsOp(db *gorm.DB) string {
	if db.Dialector.Name() == "postgres" {
		return "ILIKE"
	}
	return "LIKE"
}

// likeEscape 三种方言都接受的 LIKE 转义字符
const likeEscape = "!"

// ContainsExpr 返回 "column LIKE ? ESCAPE '!'" 形式的条件，参数用 ContainsArg 构造
func ContainsExpr(db *gorm.DB, column string) string {
	return fmt.Sprintf("%s %s ? ESCAPE '%s'", column, ContainsOp(db), likeEscape)
}

// ContainsArg 转义通配符并包上 %
func ContainsArg(s string) string {
	r := strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")
	return "%" + r.Replace(s) + "%"
}

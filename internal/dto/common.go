package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// ── 时间与数值格式 ──

const (
	DateTimeLayout = "2006-01-02 15:04:05"
	DateLayout     = "2006-01-02"
	MonthLayout    = "2006-01"
)

// ErrTimeFormat 时间字符串格式错误
var ErrTimeFormat = errors.New("时间格式错误")

// ParseDateTime 解析 "2006-01-02 15:04:05"（本地时区）
func ParseDateTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateTimeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrTimeFormat, s)
	}
	return t, nil
}

// ParseDate 解析日期，兼容 "2006-01-02" 与 "2006-01-02 15:04:05"
func ParseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(DateLayout, s, time.Local); err == nil {
		return t, nil
	}
	t, err := ParseDateTime(s)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local), nil
}

// ParseMonth 解析 "2006-01"，返回当月第一天与下月第一天
func ParseMonth(s string) (start, end time.Time, err error) {
	start, err = time.ParseInLocation(MonthLayout, s, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %s", ErrTimeFormat, s)
	}
	return start, start.AddDate(0, 1, 0), nil
}

// FormatTime 格式化时间，nil 返回空串
func FormatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(DateTimeLayout)
}

// FormatDate 格式化日期，nil 返回空串
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// FormatDecimal 两位小数字符串
func FormatDecimal(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// ── 分页 ──

// PageQuery 分页参数，page 从 0 开始
type PageQuery struct {
	Page   int
	Length int
}

// ParsePageQuery 从 query 字符串解析，非整数按 0 处理
func ParsePageQuery(page, length string) PageQuery {
	p, _ := strconv.Atoi(page)
	l, _ := strconv.Atoi(length)
	if p < 0 {
		p = 0
	}
	return PageQuery{Page: p, Length: l}
}

// Valid 页面长度须满足 0 < length <= maxLength
func (q PageQuery) Valid(maxLength int) bool {
	return q.Length > 0 && q.Length <= maxLength
}

// Offset 偏移量
func (q PageQuery) Offset() int {
	return q.Page * q.Length
}

// ── 请求体 ──

// DecodeStrict 解析 JSON 请求体，拒绝未知字段
// 空请求体视为 {}
func DecodeStrict(r io.Reader, v interface{}) error {
	body, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("请求体包含多余内容")
	}
	return nil
}

// FilterEmpty 去掉值为零值（"", 0, false, nil, 空集合）的键
func FilterEmpty(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		if isEmpty(v) {
			continue
		}
		out[k] = v
	}
	return out
}

func isEmpty(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.String:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	default:
		return rv.IsZero()
	}
}

// Ptr 返回值的指针
func Ptr[T any](v T) *T { return &v }

// IDPtr 0 视为未提供
func IDPtr(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}

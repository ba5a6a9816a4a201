package dto

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParsePageQuery(t *testing.T) {
	cases := []struct {
		page, length string
		want         PageQuery
	}{
		{"2", "20", PageQuery{Page: 2, Length: 20}},
		{"abc", "x", PageQuery{Page: 0, Length: 0}},
		{"", "", PageQuery{}},
		{"-3", "10", PageQuery{Page: 0, Length: 10}},
	}
	for _, tc := range cases {
		got := ParsePageQuery(tc.page, tc.length)
		if got != tc.want {
			t.Errorf("ParsePageQuery(%q,%q) 期望 %+v，实际 %+v", tc.page, tc.length, tc.want, got)
		}
	}
}

func TestPageQuery_Valid(t *testing.T) {
	for _, l := range []int{0, -1, 101} {
		if (PageQuery{Length: l}).Valid(100) {
			t.Errorf("length=%d 应无效", l)
		}
	}
	for _, l := range []int{1, 50, 100} {
		if !(PageQuery{Length: l}).Valid(100) {
			t.Errorf("length=%d 应有效", l)
		}
	}
	if off := (PageQuery{Page: 3, Length: 20}).Offset(); off != 60 {
		t.Errorf("期望 offset=60，实际=%d", off)
	}
}

func TestDecodeStrict(t *testing.T) {
	var f VehicleFilter
	if err := DecodeStrict(strings.NewReader(`{"vehicle_no__contains":"浙G"}`), &f); err != nil {
		t.Fatalf("合法请求体不应报错: %v", err)
	}
	if f.VehicleNoContains != "浙G" {
		t.Errorf("期望 vehicle_no__contains=浙G，实际=%s", f.VehicleNoContains)
	}

	if err := DecodeStrict(strings.NewReader(`{"unknown":1}`), &f); err == nil {
		t.Error("未知字段应被拒绝")
	}

	var empty VehicleFilter
	if err := DecodeStrict(strings.NewReader("  "), &empty); err != nil {
		t.Errorf("空请求体应视为 {}: %v", err)
	}
	if empty != (VehicleFilter{}) {
		t.Error("空请求体应得到零值过滤条件")
	}
}

func TestFilterEmpty(t *testing.T) {
	got := FilterEmpty(map[string]interface{}{
		"a": "",
		"b": 0,
		"c": nil,
		"d": false,
		"e": "x",
		"f": 1.5,
		"g": []int{},
		"h": true,
	})
	if len(got) != 3 {
		t.Fatalf("期望保留 3 个键，实际 %v", got)
	}
	for _, k := range []string{"e", "f", "h"} {
		if _, ok := got[k]; !ok {
			t.Errorf("期望保留键 %s", k)
		}
	}
	if len(FilterEmpty(map[string]interface{}{})) != 0 {
		t.Error("空 map 过滤后应为空")
	}
}

func TestParseDateAndTime(t *testing.T) {
	dt, err := ParseDateTime("2022-02-01 03:49:03")
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if dt.Hour() != 3 || dt.Second() != 3 {
		t.Errorf("解析结果错误: %v", dt)
	}

	if _, err := ParseDateTime("2022/02/01"); err == nil {
		t.Error("格式错误应返回错误")
	}

	d, err := ParseDate("2022-02-01 12:00:00")
	if err != nil {
		t.Fatalf("ParseDate 应兼容日期时间: %v", err)
	}
	if d.Hour() != 0 {
		t.Errorf("ParseDate 应截断到零点，实际 %v", d)
	}

	start, end, err := ParseMonth("2022-12")
	if err != nil {
		t.Fatalf("ParseMonth 失败: %v", err)
	}
	if start.Month() != time.December || end.Year() != 2023 || end.Month() != time.January {
		t.Errorf("月份区间错误: %v - %v", start, end)
	}
}

func TestFormatHelpers(t *testing.T) {
	if FormatTime(nil) != "" {
		t.Error("nil 时间应格式化为空串")
	}
	ts := time.Date(2022, 2, 1, 3, 49, 3, 0, time.Local)
	if got := FormatTime(&ts); got != "2022-02-01 03:49:03" {
		t.Errorf("FormatTime 结果错误: %s", got)
	}
	if got := FormatDate(&ts); got != "2022-02-01" {
		t.Errorf("FormatDate 结果错误: %s", got)
	}
	if got := FormatDecimal(decimal.RequireFromString("4.5")); got != "4.50" {
		t.Errorf("FormatDecimal 结果错误: %s", got)
	}
}

func TestLoadingRate(t *testing.T) {
	if got := LoadingRate(decimal.RequireFromString("4.05"), decimal.RequireFromString("6")); got != "67.50%" {
		t.Errorf("期望 67.50%%，实际 %s", got)
	}
	if got := LoadingRate(decimal.RequireFromString("4.05"), decimal.Zero); got != "0.00%" {
		t.Errorf("最大载重为 0 时期望 0.00%%，实际 %s", got)
	}
}

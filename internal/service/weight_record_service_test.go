package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rensongqi/sanic-adminapi/internal/dto"
	"github.com/rensongqi/sanic-adminapi/internal/model"
	"github.com/rensongqi/sanic-adminapi/internal/repository"
)

func setupTestWeightRecordService() (WeightRecordService, *mockRepos) {
	repo, mocks := newMockRepos()
	ctx := context.Background()
	_ = mocks.region.Create(ctx, &model.Region{ID: 1, RegionName: "城区"})
	_ = mocks.garbageSrc.Create(ctx, &model.GarbageSource{ID: 1, SourceName: "东城街道", RegionID: dto.Ptr(int64(1))})
	_ = mocks.garbageSrc.Create(ctx, &model.GarbageSource{ID: 2, SourceName: "重名来源"})
	_ = mocks.garbageSrc.Create(ctx, &model.GarbageSource{ID: 3, SourceName: "重名来源"})
	_ = mocks.vehicle.Create(ctx, &model.Vehicle{ID: 5, VehicleNo: "浙G12345"})
	_ = mocks.driver.Create(ctx, &model.Driver{ID: 7, DriverName: "张三"})
	return NewWeightRecordService(repo, zap.NewNop()), mocks
}

// ── Insert 测试 ──

func TestWeightRecordService_Insert_ManualMark(t *testing.T) {
	svc, mocks := setupTestWeightRecordService()

	item, err := svc.Insert(context.Background(), &dto.WeightRecordInput{
		VehicleNo:     "浙G12345",
		Driver:        "张三",
		WeightGross:   decimal.RequireFromString("15.50"),
		WeightTare:    decimal.RequireFromString("5.25"),
		GarbageType:   "不存在的类型",
		GarbageSource: "东城街道",
		PoundID:       2,
		TimeWeight:    "2024-03-01 08:30:00",
	}, "admin")
	if err != nil {
		t.Fatalf("Insert 应成功: %v", err)
	}
	if item.WeightNet != "10.25" {
		t.Errorf("净重应为 10.25，实际 %s", item.WeightNet)
	}
	if item.DataType != "手动补充" {
		t.Errorf("数据来源应为手动补充，实际 %s", item.DataType)
	}

	w := mocks.weight.records[item.ID]
	if w.DataMark != model.DataMarkManual || w.IDCenter != 0 || w.UserID != "admin" {
		t.Errorf("落库字段不正确: data_mark=%d id_center=%d user_id=%s", w.DataMark, w.IDCenter, w.UserID)
	}
	if w.VehicleID == nil || *w.VehicleID != 5 {
		t.Errorf("应关联车辆 5，实际 %v", w.VehicleID)
	}
	if w.DriverID == nil || *w.DriverID != 7 {
		t.Errorf("应关联司机 7，实际 %v", w.DriverID)
	}
	if w.GarbageTypeID != nil {
		t.Errorf("未找到的垃圾类型应为 NULL，实际 %v", *w.GarbageTypeID)
	}
	if w.GarbageSourceID == nil || *w.GarbageSourceID != 1 {
		t.Errorf("应关联垃圾来源 1，实际 %v", w.GarbageSourceID)
	}
	if w.TimeWeight == nil || w.TimeWeight.Hour() != 8 {
		t.Errorf("称重时间解析不正确: %v", w.TimeWeight)
	}
}

func TestWeightRecordService_Insert_Errors(t *testing.T) {
	svc, mocks := setupTestWeightRecordService()
	ctx := context.Background()

	tests := []struct {
		name  string
		input *dto.WeightRecordInput
		want  error
	}{
		{"缺少记录", nil, ErrWeightRecordMissing},
		{"来源不存在", &dto.WeightRecordInput{GarbageSource: "无"}, ErrGarbageSourceMismatch},
		{"来源重名", &dto.WeightRecordInput{GarbageSource: "重名来源"}, ErrGarbageSourceMismatch},
		{"时间格式错误", &dto.WeightRecordInput{GarbageSource: "东城街道", TimeWeight: "2024/03/01"}, ErrWeightTimeFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Insert(ctx, tt.input, "admin"); !errors.Is(err, tt.want) {
				t.Errorf("期望 %v，实际: %v", tt.want, err)
			}
		})
	}
	if len(mocks.weight.records) != 0 {
		t.Errorf("失败时不应写入记录，实际 %d 条", len(mocks.weight.records))
	}
}

// ── 查询测试 ──

func TestWeightRecordService_GetFull_NotFound(t *testing.T) {
	svc, _ := setupTestWeightRecordService()
	if _, err := svc.GetFull(context.Background(), 404); !errors.Is(err, ErrWeightRecordNotFound) {
		t.Errorf("期望 ErrWeightRecordNotFound，实际: %v", err)
	}
}

func TestWeightRecordService_List_TimeFiltered(t *testing.T) {
	svc, mocks := setupTestWeightRecordService()
	ctx := context.Background()
	page := dto.PageQuery{Page: 0, Length: 10}

	_, _, err := svc.List(ctx, &dto.WeightRecordFilter{StartTime: "bad", EndTime: "bad"}, page)
	if err != nil {
		t.Fatalf("time_filtered=false 时应忽略时间: %v", err)
	}
	if mocks.weight.lastFilter.Start != nil || mocks.weight.lastFilter.End != nil {
		t.Error("time_filtered=false 时不应带时间条件")
	}

	_, _, err = svc.List(ctx, &dto.WeightRecordFilter{TimeFiltered: true, StartTime: "bad"}, page)
	if !errors.Is(err, ErrWeightTimeFormat) {
		t.Errorf("期望 ErrWeightTimeFormat，实际: %v", err)
	}

	_, _, err = svc.List(ctx, &dto.WeightRecordFilter{
		TimeFiltered: true,
		StartTime:    "2024-03-01 00:00:00",
		EndTime:      "2024-03-31 23:59:59",
		TransDept:    "清运一队",
	}, page)
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	f := mocks.weight.lastFilter
	if f.Start == nil || f.End == nil || f.End.Day() != 31 {
		t.Errorf("时间窗口未正确传递: %v - %v", f.Start, f.End)
	}
	if f.DeptName != "清运一队" {
		t.Errorf("单位条件未传递，实际 %q", f.DeptName)
	}
}

// ── Classify 测试 ──

func TestWeightRecordService_Classify_FieldCount(t *testing.T) {
	svc, _ := setupTestWeightRecordService()
	ctx := context.Background()

	if _, err := svc.Classify(ctx, &dto.ClassifyRequest{}); !errors.Is(err, ErrClassifyField) {
		t.Errorf("无分类字段应返回 ErrClassifyField，实际: %v", err)
	}
	_, err := svc.Classify(ctx, &dto.ClassifyRequest{VehicleType: "all", TransDept: "all"})
	if !errors.Is(err, ErrClassifyField) {
		t.Errorf("两个分类字段应返回 ErrClassifyField，实际: %v", err)
	}
}

func TestWeightRecordService_Classify_AllMeansNoFilter(t *testing.T) {
	svc, mocks := setupTestWeightRecordService()
	mocks.weight.groups[groupKeyString([]repository.GroupKey{repository.GroupDept})] = []repository.GroupRow{
		{DeptName: "清运一队", VehicleNum: 3, WeightGrossSum: decimal.NewFromInt(30), WeightTareSum: decimal.NewFromInt(12)},
	}

	items, err := svc.Classify(context.Background(), &dto.ClassifyRequest{TransDept: "all"})
	if err != nil {
		t.Fatalf("Classify 应成功: %v", err)
	}
	if mocks.weight.lastFilter.DeptName != "" {
		t.Errorf("all 不应带单位过滤，实际 %q", mocks.weight.lastFilter.DeptName)
	}
	if len(items) != 1 {
		t.Fatalf("期望 1 条结果，实际 %d", len(items))
	}
	got := items[0]
	if got.ClassifiedName != "清运一队" || got.WeightNetSum != "18.00" || got.VehicleNoCount != 3 {
		t.Errorf("分类结果不正确: %+v", got)
	}
	q := mocks.weight.lastGroups[0]
	if q.CountColumn != repository.CountVehicles {
		t.Errorf("应按车辆计数，实际 %s", q.CountColumn)
	}
}

func TestWeightRecordService_Classify_ValueAndWindow(t *testing.T) {
	svc, mocks := setupTestWeightRecordService()
	ctx := context.Background()

	_, err := svc.Classify(ctx, &dto.ClassifyRequest{
		GarbageSourceRegionName: "城区",
		StartTime:               "2024-03-01 00:00:00",
	})
	if err != nil {
		t.Fatalf("Classify 应成功: %v", err)
	}
	f := mocks.weight.lastFilter
	if f.RegionName != "城区" {
		t.Errorf("应按区域过滤，实际 %q", f.RegionName)
	}
	if f.Start != nil {
		t.Error("只给出起始时间时不应按时间过滤")
	}

	_, err = svc.Classify(ctx, &dto.ClassifyRequest{
		GarbageType: "厨余垃圾",
		StartTime:   "2024-03-01",
		EndTime:     "2024-03-31",
	})
	if !errors.Is(err, ErrWeightTimeFormat) {
		t.Errorf("期望 ErrWeightTimeFormat，实际: %v", err)
	}
}

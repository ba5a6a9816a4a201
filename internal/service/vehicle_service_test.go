package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rensongqi/sanic-adminapi/config"
	"github.com/rensongqi/sanic-adminapi/internal/dto"
	"github.com/rensongqi/sanic-adminapi/internal/model"
)

func setupTestVehicleService() (VehicleService, *mockRepos) {
	repo, mocks := newMockRepos()
	ctx := context.Background()
	_ = mocks.dept.Create(ctx, &model.Department{ID: 1, DepartmentName: "隐藏单位"})
	_ = mocks.dept.Create(ctx, &model.Department{ID: 2, DepartmentName: "清运一队"})
	_ = mocks.vehicleType.Create(ctx, &model.VehicleType{ID: 1, VehicleTypeName: "压缩车"})
	_ = mocks.region.Create(ctx, &model.Region{ID: 1, RegionName: "东城"})
	_ = mocks.garbageSrc.Create(ctx, &model.GarbageSource{ID: 1, SourceName: "东城中转站", RegionID: dto.Ptr(int64(1))})
	_ = mocks.garbageType.Create(ctx, &model.GarbageType{ID: 1, GarbageTypeName: "生活垃圾"})

	cfg := &config.BusinessConfig{HiddenDeptID: 1, MaxPageLength: 100, MaxResultRows: 300}
	return NewVehicleService(cfg, repo, zap.NewNop()), mocks
}

func testVehicleRecord() *dto.VehicleRecord {
	return &dto.VehicleRecord{
		VehicleNo:       dto.Ptr("浙G12345"),
		VehicleDoorNo:   dto.Ptr("A01"),
		DeptID:          dto.Ptr(int64(2)),
		VehicleTypeID:   dto.Ptr(int64(1)),
		GarbageSourceID: dto.Ptr(int64(1)),
		GarbageTypeID:   dto.Ptr(int64(1)),
		TareWeight:      dto.Ptr(decimal.RequireFromString("5.50")),
		MaxNetWeight:    dto.Ptr(decimal.RequireFromString("8")),
		VehicleInfo:     dto.Ptr("新车"),
		Driver:          dto.Ptr("张三"),
	}
}

// ── Insert 测试 ──

func TestVehicleService_InsertThenGet_SameScalarsAndNames(t *testing.T) {
	svc, _ := setupTestVehicleService()
	ctx := context.Background()

	inserted, err := svc.Insert(ctx, testVehicleRecord())
	if err != nil {
		t.Fatalf("Insert 应成功: %v", err)
	}

	got, err := svc.Get(ctx, inserted.ID)
	// 新车未绑定 IC 卡，详情按信息缺失返回
	if !errors.Is(err, ErrVehicleIncomplete) {
		t.Fatalf("未绑卡车辆应返回 ErrVehicleIncomplete，实际: %v", err)
	}
	if got == nil {
		t.Fatal("信息缺失时仍应返回车辆")
	}
	if *got != *inserted {
		t.Errorf("详情与新增结果不一致:\n新增=%+v\n详情=%+v", inserted, got)
	}
	if got.DepartmentName != "清运一队" || got.VehicleTypeName != "压缩车" {
		t.Errorf("关联名称未解析: dept=%s type=%s", got.DepartmentName, got.VehicleTypeName)
	}
	if got.GarbageSourceName != "东城中转站" || got.GarbageTypeName != "生活垃圾" {
		t.Errorf("垃圾来源/类型名称未解析: %s / %s", got.GarbageSourceName, got.GarbageTypeName)
	}
	if got.TareWeight != "5.50" || got.MaxNetWeight != "8.00" || got.BuyCost != "0.00" {
		t.Errorf("数值格式不正确: tare=%s max=%s buy=%s", got.TareWeight, got.MaxNetWeight, got.BuyCost)
	}
}

func TestVehicleService_Insert_UnknownSourceStoredAsNull(t *testing.T) {
	svc, mocks := setupTestVehicleService()

	rec := testVehicleRecord()
	rec.GarbageSourceID = dto.Ptr(int64(404))
	item, err := svc.Insert(context.Background(), rec)
	if err != nil {
		t.Fatalf("Insert 应成功: %v", err)
	}
	if v := mocks.vehicle.vehicles[item.ID]; v.GarbageSourceID != nil {
		t.Errorf("不存在的垃圾来源应存为 NULL，实际 %d", *v.GarbageSourceID)
	}
}

func TestVehicleService_Insert_DeptRequired(t *testing.T) {
	svc, mocks := setupTestVehicleService()

	rec := testVehicleRecord()
	rec.DeptID = dto.Ptr(int64(404))
	_, err := svc.Insert(context.Background(), rec)
	if !errors.Is(err, ErrVehicleDeptNotFound) {
		t.Errorf("期望 ErrVehicleDeptNotFound，实际: %v", err)
	}
	if len(mocks.vehicle.vehicles) != 0 {
		t.Error("单位不存在时不应写入")
	}
}

// ── Get 测试 ──

func TestVehicleService_Get_NotFound(t *testing.T) {
	svc, _ := setupTestVehicleService()

	_, err := svc.Get(context.Background(), 404)
	if !errors.Is(err, ErrVehicleNotFound) {
		t.Errorf("期望 ErrVehicleNotFound，实际: %v", err)
	}
}

func TestVehicleService_Get_Complete(t *testing.T) {
	svc, mocks := setupTestVehicleService()
	ctx := context.Background()
	_ = mocks.card.Create(ctx, &model.Card{ID: 9, CardNo: "C009"})

	item, err := svc.Insert(ctx, testVehicleRecord())
	if err != nil {
		t.Fatalf("Insert 应成功: %v", err)
	}
	mocks.vehicle.vehicles[item.ID].CardID = dto.Ptr(int64(9))

	got, err := svc.Get(ctx, item.ID)
	if err != nil {
		t.Fatalf("关联完整时应成功: %v", err)
	}
	if got.CardNo != "C009" {
		t.Errorf("期望 card_no=C009，实际=%s", got.CardNo)
	}
}

// ── 下拉栏 / 列表测试 ──

func TestVehicleService_QueryDropItems_HidesDept(t *testing.T) {
	svc, _ := setupTestVehicleService()

	items, err := svc.QueryDropItems(context.Background())
	if err != nil {
		t.Fatalf("QueryDropItems 应成功: %v", err)
	}
	for _, name := range items.Depts {
		if name == "隐藏单位" {
			t.Error("下拉栏不应包含隐藏单位")
		}
	}
	if len(items.VehicleTypes) != 1 {
		t.Errorf("期望 1 个车辆型号，实际 %d", len(items.VehicleTypes))
	}
}

func TestVehicleService_ListScrapped_OnlyScrapped(t *testing.T) {
	svc, mocks := setupTestVehicleService()
	ctx := context.Background()

	a, _ := svc.Insert(ctx, testVehicleRecord())
	_, _ = svc.Insert(ctx, testVehicleRecord())
	if n, err := svc.Scrap(ctx, a.ID); err != nil || n != 1 {
		t.Fatalf("Scrap 应更新 1 条，实际 n=%d err=%v", n, err)
	}

	items, total, err := svc.ListScrapped(ctx, &dto.ScrappedVehicleFilter{}, dto.PageQuery{Page: 0, Length: 10})
	if err != nil {
		t.Fatalf("ListScrapped 应成功: %v", err)
	}
	if total != 1 || len(items) != 1 || items[0].ID != a.ID {
		t.Errorf("只应返回报废车辆，实际 total=%d items=%v", total, items)
	}
	if mocks.vehicle.lastFilter.ModifyState != model.ModifyStateScrapped {
		t.Errorf("查询条件应为 modify_state=2，实际 %d", mocks.vehicle.lastFilter.ModifyState)
	}
}

func TestVehicleService_Update_KeepsModifyState(t *testing.T) {
	svc, mocks := setupTestVehicleService()
	ctx := context.Background()
	item, _ := svc.Insert(ctx, testVehicleRecord())

	n, err := svc.Update(ctx, item.ID, &dto.VehicleRecord{VehicleInfo: dto.Ptr("改装")})
	if err != nil || n != 1 {
		t.Fatalf("Update 应更新 1 条，实际 n=%d err=%v", n, err)
	}
	updates := mocks.vehicle.lastUpdates
	if _, ok := updates["modify_state"]; ok {
		t.Error("更新不应写入 modify_state")
	}
	if _, ok := updates["modify_time"]; !ok {
		t.Error("更新应写入 modify_time")
	}
	if _, ok := updates["vehicle_no"]; ok {
		t.Error("未提供的字段不应更新")
	}
}

func TestVehicleService_Update_ScrappedStaysScrapped(t *testing.T) {
	svc, _ := setupTestVehicleService()
	ctx := context.Background()
	item, _ := svc.Insert(ctx, testVehicleRecord())
	if _, err := svc.Scrap(ctx, item.ID); err != nil {
		t.Fatalf("Scrap 应成功: %v", err)
	}

	n, err := svc.Update(ctx, item.ID, &dto.VehicleRecord{VehicleInfo: dto.Ptr("x")})
	if !errors.Is(err, ErrVehicleScrapped) || n != 0 {
		t.Errorf("报废车辆更新应返回 ErrVehicleScrapped，实际 n=%d err=%v", n, err)
	}

	page := dto.PageQuery{Page: 0, Length: 10}
	_, scrapped, _ := svc.ListScrapped(ctx, &dto.ScrappedVehicleFilter{}, page)
	_, active, _ := svc.List(ctx, &dto.VehicleFilter{}, page)
	if scrapped != 1 || active != 0 {
		t.Errorf("更新后车辆应仍为报废，实际 scrapped=%d active=%d", scrapped, active)
	}
}

func TestVehicleService_Update_Missing(t *testing.T) {
	svc, _ := setupTestVehicleService()

	n, err := svc.Update(context.Background(), 404, &dto.VehicleRecord{VehicleInfo: dto.Ptr("x")})
	if err != nil || n != 0 {
		t.Errorf("不存在的车辆应影响 0 行，实际 n=%d err=%v", n, err)
	}
}

func TestVehicleService_Update_ChecksRefs(t *testing.T) {
	svc, mocks := setupTestVehicleService()
	ctx := context.Background()
	item, _ := svc.Insert(ctx, testVehicleRecord())

	tests := []struct {
		name string
		rec  *dto.VehicleRecord
		want error
	}{
		{"单位不存在", &dto.VehicleRecord{DeptID: dto.Ptr(int64(999))}, ErrVehicleDeptNotFound},
		{"单位置空", &dto.VehicleRecord{DeptID: dto.Ptr(int64(0))}, ErrVehicleDeptNotFound},
		{"型号不存在", &dto.VehicleRecord{VehicleTypeID: dto.Ptr(int64(888))}, ErrVehicleTypeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks.vehicle.lastUpdates = nil
			n, err := svc.Update(ctx, item.ID, tt.rec)
			if !errors.Is(err, tt.want) || n != 0 {
				t.Errorf("期望 %v，实际 n=%d err=%v", tt.want, n, err)
			}
			if mocks.vehicle.lastUpdates != nil {
				t.Error("关联校验失败时不应写库")
			}
		})
	}

	n, err := svc.Update(ctx, item.ID, &dto.VehicleRecord{DeptID: dto.Ptr(int64(2)), VehicleTypeID: dto.Ptr(int64(1))})
	if err != nil || n != 1 {
		t.Errorf("关联存在时应更新成功，实际 n=%d err=%v", n, err)
	}
}


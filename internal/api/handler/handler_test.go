package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rensongqi/sanic-adminapi/config"
	"github.com/rensongqi/sanic-adminapi/internal/dto"
	"github.com/rensongqi/sanic-adminapi/internal/model"
	"github.com/rensongqi/sanic-adminapi/internal/service"
	"github.com/rensongqi/sanic-adminapi/internal/session"
	"github.com/rensongqi/sanic-adminapi/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testBizCfg = &config.BusinessConfig{
	SanitationDeptID: 35,
	PoundStatDeptID:  35,
	HiddenDeptID:     63,
	MaxPageLength:    100,
	MaxResultRows:    300,
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AuthService ──

type mockAuthService struct {
	img       string
	verifyErr error
	loginErr  error
	info      *dto.LoginInfo
	checkErr  error
	loggedOut bool
}

func (m *mockAuthService) NewCaptcha(sess *session.Session) (string, error) {
	sess.SetCode("1234")
	return m.img, nil
}
func (m *mockAuthService) VerifyCaptcha(_ *session.Session, _ string) error { return m.verifyErr }
func (m *mockAuthService) Login(_ context.Context, _ *session.Session, _ *dto.LoginRequest) error {
	return m.loginErr
}
func (m *mockAuthService) CheckSession(_ context.Context, _ *session.Session) (*dto.LoginInfo, error) {
	return m.info, m.checkErr
}
func (m *mockAuthService) Logout(sess *session.Session) {
	m.loggedOut = true
	sess.Clear()
}
func (m *mockAuthService) CreateUser(_ context.Context, _ *model.WebUser, _ string) error { return nil }

// ── Mock DepartmentService ──

type mockDepartmentService struct {
	tree      *dto.DepartmentTree
	n         int64
	err       error
	updatedID int64
	deletedID int64
}

func (m *mockDepartmentService) Tree(_ context.Context) (*dto.DepartmentTree, error) {
	return m.tree, m.err
}
func (m *mockDepartmentService) Insert(_ context.Context, _ *dto.InsertDepartmentRequest) (*dto.DepartmentItem, error) {
	return &dto.DepartmentItem{ID: 1}, m.err
}
func (m *mockDepartmentService) Update(_ context.Context, id int64, _ *dto.DepartmentRecord) (int64, error) {
	m.updatedID = id
	return m.n, m.err
}
func (m *mockDepartmentService) Delete(_ context.Context, id int64) (int64, error) {
	m.deletedID = id
	return m.n, m.err
}

// ── Mock VehicleService ──

type mockVehicleService struct {
	vehicles  []dto.VehicleItem
	total     int64
	listCalls int
	vehicle   *dto.VehicleItem
	getErr    error
	n         int64
	updateErr error
	scrapped  int64
}

func (m *mockVehicleService) QueryDropItems(_ context.Context) (*dto.VehicleQueryDropItems, error) {
	return &dto.VehicleQueryDropItems{}, nil
}
func (m *mockVehicleService) InsertDropItems(_ context.Context) (*dto.VehicleInsertDropItems, error) {
	return &dto.VehicleInsertDropItems{}, nil
}
func (m *mockVehicleService) List(_ context.Context, _ *dto.VehicleFilter, _ dto.PageQuery) ([]dto.VehicleItem, int64, error) {
	m.listCalls++
	return m.vehicles, m.total, nil
}
func (m *mockVehicleService) ListScrapped(_ context.Context, _ *dto.ScrappedVehicleFilter, _ dto.PageQuery) ([]dto.VehicleItem, int64, error) {
	m.listCalls++
	return m.vehicles, m.total, nil
}
func (m *mockVehicleService) Get(_ context.Context, _ int64) (*dto.VehicleItem, error) {
	return m.vehicle, m.getErr
}
func (m *mockVehicleService) Insert(_ context.Context, _ *dto.VehicleRecord) (*dto.VehicleItem, error) {
	return m.vehicle, nil
}
func (m *mockVehicleService) Update(_ context.Context, _ int64, _ *dto.VehicleRecord) (int64, error) {
	return m.n, m.updateErr
}
func (m *mockVehicleService) Scrap(_ context.Context, id int64) (int64, error) {
	m.scrapped = id
	return m.n, nil
}

// ── Mock WeightRecordService ──

type mockWeightRecordService struct {
	full        *dto.WeightRecordFull
	fullErr     error
	classified  []dto.ClassifiedItem
	classifyErr error
	account     string
}

func (m *mockWeightRecordService) DropItems(_ context.Context) (*dto.WeightRecordDropItems, error) {
	return &dto.WeightRecordDropItems{}, nil
}
func (m *mockWeightRecordService) GetFull(_ context.Context, _ int64) (*dto.WeightRecordFull, error) {
	return m.full, m.fullErr
}
func (m *mockWeightRecordService) List(_ context.Context, _ *dto.WeightRecordFilter, _ dto.PageQuery) ([]dto.WeightRecordItem, int64, error) {
	return nil, 0, nil
}
func (m *mockWeightRecordService) ListAll(_ context.Context, _ *dto.WeightRecordFilter) ([]dto.WeightRecordItem, error) {
	return nil, nil
}
func (m *mockWeightRecordService) Insert(_ context.Context, input *dto.WeightRecordInput, account string) (*dto.WeightRecordItem, error) {
	m.account = account
	return &dto.WeightRecordItem{ID: 9, VehicleNo: input.VehicleNo}, nil
}
func (m *mockWeightRecordService) Classify(_ context.Context, _ *dto.ClassifyRequest) ([]dto.ClassifiedItem, error) {
	return m.classified, m.classifyErr
}

// ── Mock OperationLogService ──

type mockOperationLogService struct {
	err     error
	keyword string
}

func (m *mockOperationLogService) List(_ context.Context, keyword string, _ *dto.OperationLogQuery, _ dto.PageQuery) ([]dto.OperationLogItem, int64, error) {
	m.keyword = keyword
	return []dto.OperationLogItem{}, 0, m.err
}
func (m *mockOperationLogService) Record(_ context.Context, _ *model.OperationLog) error { return nil }

// ── Mock StatisticsService ──

type mockStatisticsService struct {
	groupCalls int
}

func (m *mockStatisticsService) DropItems(_ context.Context) (*dto.TransQueryDropItems, error) {
	return &dto.TransQueryDropItems{}, nil
}
func (m *mockStatisticsService) TransInfo(_ context.Context, _ *dto.StatFilter, _ dto.PageQuery) (*dto.TransInfo, error) {
	return &dto.TransInfo{}, nil
}
func (m *mockStatisticsService) RegionWeightInfo(_ context.Context, _ *dto.StatFilter) (*dto.RegionWeightInfo, error) {
	return &dto.RegionWeightInfo{}, nil
}
func (m *mockStatisticsService) GarbageSourceTransInfo(_ context.Context, _ *dto.MonthStatFilter) (*dto.GarbageSourceTransInfo, error) {
	return nil, service.ErrStatMonthFormat
}
func (m *mockStatisticsService) PoundGarbageInfo(_ context.Context, _ *dto.PoundGarbageFilter) (*dto.PoundGarbageInfo, error) {
	return &dto.PoundGarbageInfo{}, nil
}
func (m *mockStatisticsService) TransGroupByDate(_ context.Context, _ *dto.StatFilter) (*dto.TransGroupByDateInfo, error) {
	m.groupCalls++
	return &dto.TransGroupByDateInfo{}, nil
}

// ── Mock ExportService ──

type mockExportService struct {
	buf      *bytes.Buffer
	filename string
	err      error
}

func (m *mockExportService) ExportWeightRecords(_ context.Context, _ *dto.WeightRecordFilter) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}
func (m *mockExportService) ExportTransGroupByDate(_ context.Context, _ *dto.StatFilter) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

// withSession 注入会话，模拟会话中间件
func withSession(sess *session.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(session.ContextKey, sess)
		c.Next()
	}
}

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func serve(r *gin.Engine, method, target string, body io.Reader) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func parseResponse(w *httptest.ResponseRecorder) response.Body {
	var resp response.Body
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

func dataMap(t *testing.T, resp response.Body) map[string]interface{} {
	t.Helper()
	m, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data 应为对象，实际 %T", resp.Data)
	}
	return m
}

// ═══════════════════════════════════════════════════════════
// AuthHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAuthHandler_GetCaptcha_StoresCode(t *testing.T) {
	mock := &mockAuthService{img: "data:image/png;base64,xx"}
	h := NewAuthHandler(mock, zap.NewNop())
	sess := session.New("sid", nil)

	r := gin.New()
	r.Use(withSession(sess))
	r.GET("/login/get_captcha", h.GetCaptcha)
	w := serve(r, "GET", "/login/get_captcha", nil)

	resp := parseResponse(w)
	if resp.Code != "0" {
		t.Fatalf("期望 code 0，实际 %s", resp.Code)
	}
	if dataMap(t, resp)["img"] != "data:image/png;base64,xx" {
		t.Errorf("img 不符: %v", resp.Data)
	}
	if sess.Code() != "1234" {
		t.Errorf("验证码应写入会话，实际 %q", sess.Code())
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{}, zap.NewNop())
	r := gin.New()
	r.Use(withSession(session.New("sid", nil)))
	r.POST("/login/", h.Login)

	w := serve(r, "POST", "/login/", jsonBody(dto.LoginRequest{Code: "1234", Username: "admin", Password: "pw"}))

	if w.Code != http.StatusOK {
		t.Errorf("期望 200，实际 %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != "0" || resp.Msg != "登录成功" {
		t.Errorf("期望登录成功，实际 %+v", resp)
	}
}

func TestAuthHandler_Login_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
		wantMsg  string
	}{
		{"验证码错误", service.ErrCaptchaMismatch, "40004", "验证码错误"},
		{"缺少参数", service.ErrLoginParamMissing, "40002", "参数无效"},
		{"重复账号", service.ErrDuplicateAccount, "40003", "存在重复用户id"},
		{"密码错误", service.ErrInvalidCredentials, "40003", "账户或密码错误"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&mockAuthService{loginErr: tt.err}, zap.NewNop())
			r := gin.New()
			r.Use(withSession(session.New("sid", nil)))
			r.POST("/login/", h.Login)

			resp := parseResponse(serve(r, "POST", "/login/", jsonBody(dto.LoginRequest{Code: "1"})))
			if resp.Code != tt.wantCode || resp.Msg != tt.wantMsg {
				t.Errorf("期望 %s/%s，实际 %s/%s", tt.wantCode, tt.wantMsg, resp.Code, resp.Msg)
			}
		})
	}
}

func TestAuthHandler_Login_UnknownField(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{}, zap.NewNop())
	r := gin.New()
	r.Use(withSession(session.New("sid", nil)))
	r.POST("/login/", h.Login)

	w := serve(r, "POST", "/login/", strings.NewReader(`{"username":"a","password":"b","role":"admin"}`))
	if resp := parseResponse(w); resp.Code != "40002" {
		t.Errorf("未知字段应返回 40002，实际 %s", resp.Code)
	}
}

func TestAuthHandler_Login_NoSession(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{}, zap.NewNop())
	r := gin.New()
	r.POST("/login/", h.Login)

	w := serve(r, "POST", "/login/", jsonBody(dto.LoginRequest{}))
	var fail response.FailBody
	json.Unmarshal(w.Body.Bytes(), &fail)
	if fail.Code != "500" || fail.Error != "ServerError" {
		t.Errorf("缺少会话应返回服务异常，实际 %+v", fail)
	}
}

func TestAuthHandler_Info_Expired(t *testing.T) {
	exp := time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local)
	mock := &mockAuthService{checkErr: &service.SessionExpiredError{ExpTime: exp}}
	h := NewAuthHandler(mock, zap.NewNop())
	r := gin.New()
	r.Use(withSession(session.New("sid", nil)))
	r.GET("/login/info", h.Info)

	resp := parseResponse(serve(r, "GET", "/login/info", nil))
	if resp.Code != "40013" {
		t.Fatalf("期望 40013，实际 %s", resp.Code)
	}
	if dataMap(t, resp)["exp_time"] != "2024-03-01 08:00:00" {
		t.Errorf("exp_time 不符: %v", resp.Data)
	}
}

func TestAuthHandler_Info_AccountMissing(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{checkErr: service.ErrAccountMissing}, zap.NewNop())
	r := gin.New()
	r.Use(withSession(session.New("sid", nil)))
	r.GET("/login/info", h.Info)

	resp := parseResponse(serve(r, "GET", "/login/info", nil))
	if resp.Code != "40002" || resp.Msg != "用户id丢失" {
		t.Errorf("期望 40002/用户id丢失，实际 %s/%s", resp.Code, resp.Msg)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	mock := &mockAuthService{}
	h := NewAuthHandler(mock, zap.NewNop())
	sess := session.New("sid", &session.Data{LoginAccount: "admin"})
	r := gin.New()
	r.Use(withSession(sess))
	r.POST("/login/logout", h.Logout)

	resp := parseResponse(serve(r, "POST", "/login/logout", nil))
	if resp.Data != "退出登录成功" {
		t.Errorf("data 不符: %v", resp.Data)
	}
	if !mock.loggedOut || !sess.Cleared() {
		t.Error("会话应被清除")
	}
}

// ═══════════════════════════════════════════════════════════
// DepartmentHandler Tests
// ═══════════════════════════════════════════════════════════

func TestDepartmentHandler_UpdateDept_Actions(t *testing.T) {
	mock := &mockDepartmentService{n: 1}
	h := NewDepartmentHandler(mock)
	r := gin.New()
	r.POST("/update_dept", h.UpdateDept)

	resp := parseResponse(serve(r, "POST", "/update_dept?action=delete", strings.NewReader(`{"old_record_id":7}`)))
	if resp.Code != "0" {
		t.Fatalf("期望 code 0，实际 %s", resp.Code)
	}
	if dataMap(t, resp)["department_update_num"] != float64(1) {
		t.Errorf("department_update_num 不符: %v", resp.Data)
	}
	if mock.deletedID != 7 {
		t.Errorf("应删除 id 7，实际 %d", mock.deletedID)
	}

	resp = parseResponse(serve(r, "POST", "/update_dept?action=drop", strings.NewReader(`{"old_record_id":7}`)))
	if resp.Code != "40002" {
		t.Errorf("未知 action 应返回 40002，实际 %s", resp.Code)
	}
}

func TestDepartmentHandler_InsertDept_ParentMissing(t *testing.T) {
	h := NewDepartmentHandler(&mockDepartmentService{err: service.ErrParentDeptNotFound})
	r := gin.New()
	r.POST("/insert_dept", h.InsertDept)

	resp := parseResponse(serve(r, "POST", "/insert_dept", strings.NewReader(`{"old_record_id":99,"new_record":{"department_name":"x"}}`)))
	if resp.Code != "-1" || resp.Msg != service.ErrParentDeptNotFound.Error() {
		t.Errorf("期望 -1/%s，实际 %s/%s", service.ErrParentDeptNotFound.Error(), resp.Code, resp.Msg)
	}
}

// ═══════════════════════════════════════════════════════════
// VehicleHandler Tests
// ═══════════════════════════════════════════════════════════

func TestVehicleHandler_GetVehicles_PageLengthInvalid(t *testing.T) {
	for _, length := range []string{"0", "101", "abc"} {
		mock := &mockVehicleService{}
		h := NewVehicleHandler(mock, testBizCfg)
		r := gin.New()
		r.POST("/get_vehicles", h.GetVehicles)

		resp := parseResponse(serve(r, "POST", "/get_vehicles?page=0&length="+length, strings.NewReader(`{}`)))
		if resp.Code != "-1" || resp.Msg != "请将页面长度设置为大于0小于100" {
			t.Errorf("length=%s 期望页面长度错误，实际 %s/%s", length, resp.Code, resp.Msg)
		}
		if mock.listCalls != 0 {
			t.Errorf("length=%s 不应查询数据库", length)
		}
	}
}

func TestPagedHandlers_PageLengthInvalid(t *testing.T) {
	// 服务传 nil：任何调用都会 panic 并被记录
	routes := []struct {
		name     string
		method   string
		register func(r *gin.Engine)
	}{
		{"get_all_drivers", "POST", func(r *gin.Engine) {
			r.POST("/get_all_drivers", NewDriverHandler(nil, testBizCfg).GetAllDrivers)
		}},
		{"get", "GET", func(r *gin.Engine) {
			r.GET("/get", NewPoundHandler(nil, testBizCfg).GetPounds)
		}},
		{"get_ic_card", "GET", func(r *gin.Engine) {
			r.GET("/get_ic_card", NewCardHandler(nil, testBizCfg).GetCards)
		}},
		{"get_change_info", "GET", func(r *gin.Engine) {
			r.GET("/get_change_info", NewCardHandler(nil, testBizCfg).GetChangeInfo)
		}},
		{"get_cards", "POST", func(r *gin.Engine) {
			r.POST("/get_cards", NewCardHandler(nil, testBizCfg).GetSignedCards)
		}},
		{"get_logs", "POST", func(r *gin.Engine) {
			r.POST("/get_logs", NewOperationLogHandler(nil, testBizCfg).GetLogs)
		}},
		{"read_weight_record", "POST", func(r *gin.Engine) {
			r.POST("/read_weight_record", NewWeightRecordHandler(nil, testBizCfg).ReadWeightRecords)
		}},
		{"get_trans_info", "POST", func(r *gin.Engine) {
			r.POST("/get_trans_info", NewStatisticsHandler(nil, testBizCfg).GetTransInfo)
		}},
	}

	for _, rt := range routes {
		for _, length := range []string{"0", "101", "-5", "abc"} {
			t.Run(rt.name+"/"+length, func(t *testing.T) {
				called := false
				r := gin.New()
				r.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
					called = true
					c.AbortWithStatus(http.StatusInternalServerError)
				}))
				rt.register(r)

				resp := parseResponse(serve(r, rt.method, "/"+rt.name+"?page=0&length="+length, strings.NewReader(`{}`)))
				if called {
					t.Fatal("页面长度无效时不应调用服务")
				}
				if resp.Code != "-1" || resp.Msg != "请将页面长度设置为大于0小于100" {
					t.Errorf("期望页面长度错误，实际 %s/%s", resp.Code, resp.Msg)
				}
			})
		}
	}
}

func TestVehicleHandler_GetVehicles_Success(t *testing.T) {
	mock := &mockVehicleService{vehicles: []dto.VehicleItem{{ID: 1}, {ID: 2}}, total: 12}
	h := NewVehicleHandler(mock, testBizCfg)
	r := gin.New()
	r.POST("/get_vehicles", h.GetVehicles)

	resp := parseResponse(serve(r, "POST", "/get_vehicles?page=1&length=2", strings.NewReader(`{"vehicle_no__contains":"浙A"}`)))
	if resp.Code != "0" {
		t.Fatalf("期望 code 0，实际 %s", resp.Code)
	}
	data := dataMap(t, resp)
	if data["record_count"] != float64(12) {
		t.Errorf("record_count 不符: %v", data["record_count"])
	}
	if vs, _ := data["vehicles"].([]interface{}); len(vs) != 2 {
		t.Errorf("应返回 2 辆车，实际 %v", data["vehicles"])
	}
}

func TestVehicleHandler_GetVehicles_UnknownFilterKey(t *testing.T) {
	mock := &mockVehicleService{}
	h := NewVehicleHandler(mock, testBizCfg)
	r := gin.New()
	r.POST("/get_vehicles", h.GetVehicles)

	resp := parseResponse(serve(r, "POST", "/get_vehicles?page=0&length=10", strings.NewReader(`{"id__gt":1}`)))
	if resp.Code != "40002" {
		t.Errorf("未知过滤字段应返回 40002，实际 %s", resp.Code)
	}
	if mock.listCalls != 0 {
		t.Error("参数无效时不应查询数据库")
	}
}

func TestVehicleHandler_GetVehicles_TooManyResults(t *testing.T) {
	cfg := *testBizCfg
	cfg.MaxResultRows = 1
	mock := &mockVehicleService{vehicles: []dto.VehicleItem{{ID: 1}, {ID: 2}}, total: 2}
	h := NewVehicleHandler(mock, &cfg)
	r := gin.New()
	r.POST("/get_vehicles", h.GetVehicles)

	resp := parseResponse(serve(r, "POST", "/get_vehicles?page=0&length=2", nil))
	if resp.Code != "-1" || resp.Msg != "结果数目过多" {
		t.Errorf("期望结果数目过多，实际 %s/%s", resp.Code, resp.Msg)
	}
}

func TestVehicleHandler_GetVehicleInfo_Incomplete(t *testing.T) {
	mock := &mockVehicleService{
		vehicle: &dto.VehicleItem{ID: 3, VehicleNo: "浙A00001"},
		getErr:  service.ErrVehicleIncomplete,
	}
	h := NewVehicleHandler(mock, testBizCfg)
	r := gin.New()
	r.POST("/get_vehicle_info", h.GetVehicleInfo)

	resp := parseResponse(serve(r, "POST", "/get_vehicle_info?id=3", nil))
	if resp.Code != "-1" || resp.Msg != "此车辆部分信息缺失" {
		t.Fatalf("期望 -1/此车辆部分信息缺失，实际 %s/%s", resp.Code, resp.Msg)
	}
	vehicle, _ := dataMap(t, resp)["vehicle"].(map[string]interface{})
	if vehicle["vehicle_no"] != "浙A00001" {
		t.Errorf("信息缺失时仍应返回车辆: %v", resp.Data)
	}
}

func TestVehicleHandler_GetVehicleInfo_NotFoundAndBadID(t *testing.T) {
	h := NewVehicleHandler(&mockVehicleService{getErr: service.ErrVehicleNotFound}, testBizCfg)
	r := gin.New()
	r.POST("/get_vehicle_info", h.GetVehicleInfo)

	resp := parseResponse(serve(r, "POST", "/get_vehicle_info?id=3", nil))
	if resp.Code != "-1" || resp.Msg != "数据库中车辆信息有误" {
		t.Errorf("期望 -1/数据库中车辆信息有误，实际 %s/%s", resp.Code, resp.Msg)
	}

	resp = parseResponse(serve(r, "POST", "/get_vehicle_info?id=x", nil))
	if resp.Code != "40002" {
		t.Errorf("非法 id 应返回 40002，实际 %s", resp.Code)
	}
}

func TestVehicleHandler_UpdateVehicle_Scrap(t *testing.T) {
	mock := &mockVehicleService{n: 1}
	h := NewVehicleHandler(mock, testBizCfg)
	r := gin.New()
	r.POST("/update_vehicle", h.UpdateVehicle)

	resp := parseResponse(serve(r, "POST", "/update_vehicle?action=scrap", strings.NewReader(`{"old_record_id":5,"new_record":{}}`)))
	if dataMap(t, resp)["vehicle_update_num"] != float64(1) {
		t.Errorf("vehicle_update_num 不符: %v", resp.Data)
	}
	if mock.scrapped != 5 {
		t.Errorf("应报废 id 5，实际 %d", mock.scrapped)
	}
}

func TestVehicleHandler_UpdateVehicle_ErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{service.ErrVehicleScrapped, "车辆已报废"},
		{service.ErrVehicleDeptNotFound, "车辆所属单位不存在"},
		{errors.New("db down"), "车辆信息记录更新失败"},
	}
	for _, tt := range tests {
		h := NewVehicleHandler(&mockVehicleService{updateErr: tt.err}, testBizCfg)
		r := gin.New()
		r.POST("/update_vehicle", h.UpdateVehicle)

		resp := parseResponse(serve(r, "POST", "/update_vehicle?action=update", strings.NewReader(`{"old_record_id":5,"new_record":{"vehicle_info":"x"}}`)))
		if resp.Code != "-1" || resp.Msg != tt.want {
			t.Errorf("err=%v 期望 -1/%s，实际 %s/%s", tt.err, tt.want, resp.Code, resp.Msg)
		}
	}
}

// ═══════════════════════════════════════════════════════════
// WeightRecordHandler Tests
// ═══════════════════════════════════════════════════════════

func TestWeightRecordHandler_Classify_FieldError(t *testing.T) {
	mock := &mockWeightRecordService{classifyErr: service.ErrClassifyField}
	h := NewWeightRecordHandler(mock, testBizCfg)
	r := gin.New()
	r.POST("/classify_weight_record", h.ClassifyWeightRecords)

	resp := parseResponse(serve(r, "POST", "/classify_weight_record", strings.NewReader(`{"vehicle_type":"all","trans_dept":"环卫处"}`)))
	if resp.Code != "40002" || resp.Msg != "过滤字段格式有误" {
		t.Fatalf("期望 40002/过滤字段格式有误，实际 %s/%s", resp.Code, resp.Msg)
	}
	qd, _ := dataMap(t, resp)["query_dict"].(map[string]interface{})
	if len(qd) != 2 || qd["trans_dept"] != "环卫处" {
		t.Errorf("query_dict 不符: %v", qd)
	}
}

func TestWeightRecordHandler_Classify_Success(t *testing.T) {
	mock := &mockWeightRecordService{classified: []dto.ClassifiedItem{{ClassifiedName: "厨余垃圾", VehicleNoCount: 3}}}
	h := NewWeightRecordHandler(mock, testBizCfg)
	r := gin.New()
	r.POST("/classify_weight_record", h.ClassifyWeightRecords)

	resp := parseResponse(serve(r, "POST", "/classify_weight_record", strings.NewReader(`{"garbage_type":"all"}`)))
	items, _ := dataMap(t, resp)["weight_records"].([]interface{})
	if len(items) != 1 {
		t.Errorf("应返回 1 个分组，实际 %v", resp.Data)
	}
}

func TestWeightRecordHandler_ReadFull_NotFound(t *testing.T) {
	h := NewWeightRecordHandler(&mockWeightRecordService{fullErr: service.ErrWeightRecordNotFound}, testBizCfg)
	r := gin.New()
	r.POST("/read_full_weight_record", h.ReadFullWeightRecord)

	resp := parseResponse(serve(r, "POST", "/read_full_weight_record?id=42", nil))
	if resp.Code != "40001" {
		t.Errorf("期望 40001，实际 %s", resp.Code)
	}
}

func TestWeightRecordHandler_Insert_UsesLoginAccount(t *testing.T) {
	mock := &mockWeightRecordService{}
	h := NewWeightRecordHandler(mock, testBizCfg)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(session.LoginAccountKey, "admin")
		c.Next()
	})
	r.POST("/insert_weight_record", h.InsertWeightRecord)

	resp := parseResponse(serve(r, "POST", "/insert_weight_record", strings.NewReader(`{"new_record":{"vehicle_no":"浙A1","garbage_source":"城东"}}`)))
	if resp.Code != "0" {
		t.Fatalf("期望 code 0，实际 %s/%s", resp.Code, resp.Msg)
	}
	if mock.account != "admin" {
		t.Errorf("记录人应为 admin，实际 %q", mock.account)
	}
	records, _ := dataMap(t, resp)["weight_records"].([]interface{})
	if len(records) != 1 {
		t.Errorf("weight_records 应为单元素列表: %v", resp.Data)
	}
}

// ═══════════════════════════════════════════════════════════
// OperationLogHandler Tests
// ═══════════════════════════════════════════════════════════

func TestOperationLogHandler_TimeFieldError(t *testing.T) {
	mock := &mockOperationLogService{err: &service.TimeFieldError{Field: "log_end_time"}}
	h := NewOperationLogHandler(mock, testBizCfg)
	r := gin.New()
	r.POST("/get_logs", h.GetLogs)

	body := `{"log_start_time":"2024-01-01 00:00:00","log_end_time":"bad","data_start_time":"","data_end_time":""}`
	resp := parseResponse(serve(r, "POST", "/get_logs?query_str=admin&page=0&length=10", strings.NewReader(body)))
	if resp.Code != "-1" || resp.Msg != "log_end_time传入时间格式错误" {
		t.Fatalf("期望 -1/log_end_time传入时间格式错误，实际 %s/%s", resp.Code, resp.Msg)
	}
	if dataMap(t, resp)["log_end_time"] != "bad" {
		t.Errorf("应回显请求体: %v", resp.Data)
	}
	if mock.keyword != "admin" {
		t.Errorf("query_str 应透传，实际 %q", mock.keyword)
	}
}

// ═══════════════════════════════════════════════════════════
// StatisticsHandler Tests
// ═══════════════════════════════════════════════════════════

func TestStatisticsHandler_TransGroupByDate_ValidatesPaging(t *testing.T) {
	mock := &mockStatisticsService{}
	h := NewStatisticsHandler(mock, testBizCfg)
	r := gin.New()
	r.POST("/get_trans_group_by_date_info", h.GetTransGroupByDateInfo)

	resp := parseResponse(serve(r, "POST", "/get_trans_group_by_date_info?page=0&length=0", nil))
	if resp.Code != "-1" || mock.groupCalls != 0 {
		t.Errorf("页面长度非法时不应查询，code=%s calls=%d", resp.Code, mock.groupCalls)
	}

	resp = parseResponse(serve(r, "POST", "/get_trans_group_by_date_info?page=0&length=10", nil))
	if resp.Code != "0" || mock.groupCalls != 1 {
		t.Errorf("期望查询一次，code=%s calls=%d", resp.Code, mock.groupCalls)
	}
}

func TestStatisticsHandler_MonthFormatError(t *testing.T) {
	h := NewStatisticsHandler(&mockStatisticsService{}, testBizCfg)
	r := gin.New()
	r.POST("/get_garbage_source_trans_info", h.GetGarbageSourceTransInfo)

	resp := parseResponse(serve(r, "POST", "/get_garbage_source_trans_info", strings.NewReader(`{"month":"2024/02"}`)))
	if resp.Code != "-1" || resp.Msg != service.ErrStatMonthFormat.Error() {
		t.Errorf("期望月份格式错误，实际 %s/%s", resp.Code, resp.Msg)
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler Tests
// ═══════════════════════════════════════════════════════════

func TestExportHandler_ExportWeightRecords(t *testing.T) {
	mock := &mockExportService{buf: bytes.NewBufferString("xlsx"), filename: "称重记录.xlsx"}
	h := NewExportHandler(mock, zap.NewNop())
	r := gin.New()
	r.GET("/export", h.ExportWeightRecords)

	w := serve(r, "GET", "/export?vehicle_no__contains=A&start_time=2024-01-01&end_time=2024-01-31", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际 %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Errorf("Content-Type 不符: %s", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.HasPrefix(cd, "attachment; filename*=UTF-8''") {
		t.Errorf("Content-Disposition 不符: %s", cd)
	}
	if w.Body.String() != "xlsx" {
		t.Errorf("文件内容不符: %q", w.Body.String())
	}
}

func TestExportHandler_Error(t *testing.T) {
	h := NewExportHandler(&mockExportService{err: errors.New("boom")}, zap.NewNop())
	r := gin.New()
	r.POST("/export_trans_group_by_date_info", h.ExportTransGroupByDate)

	resp := parseResponse(serve(r, "POST", "/export_trans_group_by_date_info", strings.NewReader(`{}`)))
	if resp.Code != "-1" || resp.Msg != "导出失败" {
		t.Errorf("期望 -1/导出失败，实际 %s/%s", resp.Code, resp.Msg)
	}
}

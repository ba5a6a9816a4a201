package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/rensongqi/sanic-adminapi/config"
	"github.com/rensongqi/sanic-adminapi/internal/dto"
	"github.com/rensongqi/sanic-adminapi/internal/service"
	apperrors "github.com/rensongqi/sanic-adminapi/pkg/errors"
	"github.com/rensongqi/sanic-adminapi/pkg/response"
)

// VehicleHandler 车辆模块 HTTP 处理器
type VehicleHandler struct {
	vehicleSvc service.VehicleService
	pager      pager
}

// NewVehicleHandler 创建 VehicleHandler
func NewVehicleHandler(vehicleSvc service.VehicleService, cfg *config.BusinessConfig) *VehicleHandler {
	return &VehicleHandler{vehicleSvc: vehicleSvc, pager: newPager(cfg)}
}

// GetQueryDropItems 查询页下拉栏
// GET /admin_api/vehicle/get_query_drop_items
func (h *VehicleHandler) GetQueryDropItems(c *gin.Context) {
	items, err := h.vehicleSvc.QueryDropItems(c.Request.Context())
	if err != nil {
		response.Failed(c, nil, "车辆信息获取失败")
		return
	}
	response.OK(c, items)
}

// GetInsertDropItems 新增页下拉栏
// GET /admin_api/vehicle/get_insert_drop_items
func (h *VehicleHandler) GetInsertDropItems(c *gin.Context) {
	items, err := h.vehicleSvc.InsertDropItems(c.Request.Context())
	if err != nil {
		response.Failed(c, nil, "车辆信息获取失败")
		return
	}
	response.OK(c, items)
}

// GetVehicles 在用车辆列表
// POST /admin_api/vehicle/get_vehicles?page=&length=
func (h *VehicleHandler) GetVehicles(c *gin.Context) {
	q, ok := h.pager.page(c)
	if !ok {
		return
	}
	var f dto.VehicleFilter
	if !bindJSON(c, &f) {
		return
	}

	vehicles, total, err := h.vehicleSvc.List(c.Request.Context(), &f, q)
	if err != nil {
		response.Failed(c, nil, "车辆信息获取失败")
		return
	}
	if h.pager.tooMany(c, len(vehicles), q) {
		return
	}
	response.OK(c, gin.H{"vehicles": vehicles, "record_count": total})
}

// GetScrappedVehicles 报废车辆列表
// POST /admin_api/vehicle/get_scrapped_vehicles?page=&length=
func (h *VehicleHandler) GetScrappedVehicles(c *gin.Context) {
	q, ok := h.pager.page(c)
	if !ok {
		return
	}
	var f dto.ScrappedVehicleFilter
	if !bindJSON(c, &f) {
		return
	}

	vehicles, total, err := h.vehicleSvc.ListScrapped(c.Request.Context(), &f, q)
	if err != nil {
		response.Failed(c, nil, "车辆信息获取失败")
		return
	}
	if h.pager.tooMany(c, len(vehicles), q) {
		return
	}
	response.OK(c, gin.H{"scrapped_vehicles": vehicles, "record_count": total})
}

// GetVehicleInfo 单辆车详情
// POST /admin_api/vehicle/get_vehicle_info?id=
func (h *VehicleHandler) GetVehicleInfo(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}

	vehicle, err := h.vehicleSvc.Get(c.Request.Context(), id)
	switch {
	case err == nil:
		response.OK(c, gin.H{"vehicle": vehicle})
	case errors.Is(err, service.ErrVehicleIncomplete):
		response.OKWithCode(c, apperrors.Fail, gin.H{"vehicle": vehicle}, err.Error())
	case errors.Is(err, service.ErrVehicleNotFound):
		response.Failed(c, nil, err.Error())
	default:
		response.Failed(c, nil, "车辆信息获取失败")
	}
}

// InsertVehicle 新增车辆
// POST /admin_api/vehicle/insert_vehicle
func (h *VehicleHandler) InsertVehicle(c *gin.Context) {
	var req dto.InsertVehicleRequest
	if !bindJSON(c, &req) {
		return
	}

	vehicle, err := h.vehicleSvc.Insert(c.Request.Context(), &req.NewRecord)
	if err != nil {
		if errors.Is(err, service.ErrVehicleDeptNotFound) || errors.Is(err, service.ErrVehicleTypeNotFound) {
			response.Failed(c, nil, err.Error())
			return
		}
		response.Failed(c, nil, "车辆信息记录创建失败")
		return
	}
	response.OK(c, gin.H{"vehicle": vehicle})
}

// UpdateVehicle 更新或报废车辆
// POST /admin_api/vehicle/update_vehicle?action=update|scrap
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	var req dto.UpdateVehicleRequest
	if !bindJSON(c, &req) {
		return
	}

	var (
		n   int64
		err error
	)
	switch action := c.Query("action"); action {
	case actionUpdate:
		n, err = h.vehicleSvc.Update(c.Request.Context(), req.OldRecordID, &req.NewRecord)
	case actionScrap:
		n, err = h.vehicleSvc.Scrap(c.Request.Context(), req.OldRecordID)
	default:
		response.InvalidParameter(c, gin.H{"action": action}, "")
		return
	}
	if err != nil {
		if errors.Is(err, service.ErrVehicleDeptNotFound) || errors.Is(err, service.ErrVehicleTypeNotFound) ||
			errors.Is(err, service.ErrVehicleScrapped) {
			response.Failed(c, nil, err.Error())
			return
		}
		response.Failed(c, nil, "车辆信息记录更新失败")
		return
	}
	response.OK(c, gin.H{"vehicle_update_num": n})
}

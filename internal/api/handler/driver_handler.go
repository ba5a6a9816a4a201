package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/rensongqi/sanic-adminapi/config"
	"github.com/rensongqi/sanic-adminapi/internal/dto"
	"github.com/rensongqi/sanic-adminapi/internal/service"
	"github.com/rensongqi/sanic-adminapi/pkg/response"
)

// DriverHandler 司机 HTTP 处理器
// 路由同时挂在 /admin_api/driver 与历史路径 /admin_api/region 下
type DriverHandler struct {
	driverSvc service.DriverService
	pager     pager
}

// NewDriverHandler 创建 DriverHandler
func NewDriverHandler(driverSvc service.DriverService, cfg *config.BusinessConfig) *DriverHandler {
	return &DriverHandler{driverSvc: driverSvc, pager: newPager(cfg)}
}

// GetAllDrivers POST /get_all_drivers?page=&length=
func (h *DriverHandler) GetAllDrivers(c *gin.Context) {
	q, ok := h.pager.page(c)
	if !ok {
		return
	}
	var f dto.DriverFilter
	if !bindJSON(c, &f) {
		return
	}

	drivers, total, err := h.driverSvc.List(c.Request.Context(), &f, q)
	if err != nil {
		response.Failed(c, nil, "司机信息获取失败")
		return
	}
	if h.pager.tooMany(c, len(drivers), q) {
		return
	}
	response.OK(c, gin.H{"drivers": drivers, "record_count": total})
}

// InsertDriver POST /insert_driver
func (h *DriverHandler) InsertDriver(c *gin.Context) {
	var req dto.InsertDriverRequest
	if !bindJSON(c, &req) {
		return
	}
	driver, err := h.driverSvc.Insert(c.Request.Context(), &req.NewRecord)
	if err != nil {
		response.Failed(c, nil, "司机记录创建失败")
		return
	}
	response.OK(c, gin.H{"driver": driver})
}

// UpdateDriver POST /update_driver?action=update|delete
func (h *DriverHandler) UpdateDriver(c *gin.Context) {
	var req dto.UpdateDriverRequest
	if !bindJSON(c, &req) {
		return
	}

	var (
		n   int64
		err error
	)
	switch action := c.Query("action"); action {
	case actionUpdate:
		n, err = h.driverSvc.Update(c.Request.Context(), req.OldRecordID, &req.NewRecord)
	case actionDelete:
		n, err = h.driverSvc.Delete(c.Request.Context(), req.OldRecordID)
	default:
		response.InvalidParameter(c, gin.H{"action": action}, "")
		return
	}
	if err != nil {
		response.Failed(c, nil, "司机记录更新失败")
		return
	}
	response.OK(c, gin.H{"driver_update_num": n})
}

package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/rensongqi/sanic-adminapi/config"
	"github.com/rensongqi/sanic-adminapi/internal/dto"
	"github.com/rensongqi/sanic-adminapi/internal/service"
	"github.com/rensongqi/sanic-adminapi/pkg/response"
)

// StatisticsHandler 清运统计 HTTP 处理器
type StatisticsHandler struct {
	statSvc service.StatisticsService
	pager   pager
}

// NewStatisticsHandler 创建 StatisticsHandler
func NewStatisticsHandler(statSvc service.StatisticsService, cfg *config.BusinessConfig) *StatisticsHandler {
	return &StatisticsHandler{statSvc: statSvc, pager: newPager(cfg)}
}

// GetTransQueryDropItems GET /web_api/statistics/get_trans_query_drop_items
func (h *StatisticsHandler) GetTransQueryDropItems(c *gin.Context) {
	items, err := h.statSvc.DropItems(c.Request.Context())
	if err != nil {
		response.Failed(c, nil, "统计下拉栏获取失败")
		return
	}
	response.OK(c, items)
}

// GetTransInfo POST /web_api/statistics/get_trans_info?page=&length=
func (h *StatisticsHandler) GetTransInfo(c *gin.Context) {
	q, ok := h.pager.page(c)
	if !ok {
		return
	}
	var f dto.StatFilter
	if !bindJSON(c, &f) {
		return
	}

	info, err := h.statSvc.TransInfo(c.Request.Context(), &f, q)
	if err != nil {
		h.handleStatError(c, err)
		return
	}
	if h.pager.tooMany(c, len(info.WeightRecords), q) {
		return
	}
	response.OK(c, info)
}

// GetRegionWeightInfo POST /web_api/statistics/get_region_weight_info
func (h *StatisticsHandler) GetRegionWeightInfo(c *gin.Context) {
	var f dto.StatFilter
	if !bindJSON(c, &f) {
		return
	}
	info, err := h.statSvc.RegionWeightInfo(c.Request.Context(), &f)
	if err != nil {
		h.handleStatError(c, err)
		return
	}
	response.OK(c, info)
}

// GetGarbageSourceTransInfo POST /web_api/statistics/get_garbage_source_trans_info
func (h *StatisticsHandler) GetGarbageSourceTransInfo(c *gin.Context) {
	var f dto.MonthStatFilter
	if !bindJSON(c, &f) {
		return
	}
	info, err := h.statSvc.GarbageSourceTransInfo(c.Request.Context(), &f)
	if err != nil {
		h.handleStatError(c, err)
		return
	}
	response.OK(c, info)
}

// GetPoundGarbageInfo POST /web_api/statistics/get_pound_garbage_info
func (h *StatisticsHandler) GetPoundGarbageInfo(c *gin.Context) {
	var f dto.PoundGarbageFilter
	if !bindJSON(c, &f) {
		return
	}
	info, err := h.statSvc.PoundGarbageInfo(c.Request.Context(), &f)
	if err != nil {
		h.handleStatError(c, err)
		return
	}
	response.OK(c, info)
}

// GetTransGroupByDateInfo 分页参数只做校验，结果不分页
// POST /web_api/statistics/get_trans_group_by_date_info?page=&length=
func (h *StatisticsHandler) GetTransGroupByDateInfo(c *gin.Context) {
	if _, ok := h.pager.page(c); !ok {
		return
	}
	var f dto.StatFilter
	if !bindJSON(c, &f) {
		return
	}
	info, err := h.statSvc.TransGroupByDate(c.Request.Context(), &f)
	if err != nil {
		h.handleStatError(c, err)
		return
	}
	response.OK(c, info)
}

func (h *StatisticsHandler) handleStatError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStatTimeFormat),
		errors.Is(err, service.ErrStatMonthFormat):
		response.Failed(c, nil, err.Error())
	default:
		response.Failed(c, nil, "统计信息获取失败")
	}
}

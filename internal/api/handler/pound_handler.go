package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/rensongqi/sanic-adminapi/config"
	"github.com/rensongqi/sanic-adminapi/internal/dto"
	"github.com/rensongqi/sanic-adminapi/internal/service"
	"github.com/rensongqi/sanic-adminapi/pkg/response"
)

// PoundHandler 地磅站 HTTP 处理器
type PoundHandler struct {
	poundSvc service.PoundService
	pager    pager
}

// NewPoundHandler 创建 PoundHandler
func NewPoundHandler(poundSvc service.PoundService, cfg *config.BusinessConfig) *PoundHandler {
	return &PoundHandler{poundSvc: poundSvc, pager: newPager(cfg)}
}

// GetPounds 地磅站分页列表，pounds_count 为总数
// GET /admin_api/pound/get?page=&length=
func (h *PoundHandler) GetPounds(c *gin.Context) {
	q, ok := h.pager.page(c)
	if !ok {
		return
	}
	pounds, total, err := h.poundSvc.List(c.Request.Context(), q)
	if err != nil {
		response.Failed(c, nil, "获取地磅站信息失败")
		return
	}
	if h.pager.tooMany(c, len(pounds), q) {
		return
	}
	response.OK(c, gin.H{"pounds": pounds, "pounds_count": total})
}

// CreatePound POST /admin_api/pound/create
func (h *PoundHandler) CreatePound(c *gin.Context) {
	var req dto.CreatePoundRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.poundSvc.Create(c.Request.Context(), &req); err != nil {
		response.Failed(c, nil, "新增地磅站信息失败")
		return
	}
	response.OK(c, "新增地磅站信息成功")
}

// UpdatePound POST /admin_api/pound/update
func (h *PoundHandler) UpdatePound(c *gin.Context) {
	var req dto.UpdatePoundRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.poundSvc.Update(c.Request.Context(), &req); err != nil {
		h.handlePoundError(c, err, "更新地磅站信息失败")
		return
	}
	response.OK(c, "更新地磅站信息成功")
}

// DeletePound DELETE /admin_api/pound/delete
func (h *PoundHandler) DeletePound(c *gin.Context) {
	var req dto.IDRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.poundSvc.Delete(c.Request.Context(), req.ID); err != nil {
		h.handlePoundError(c, err, "删除地磅站信息失败")
		return
	}
	response.OK(c, "删除地磅站信息成功")
}

func (h *PoundHandler) handlePoundError(c *gin.Context, err error, msg string) {
	if errors.Is(err, service.ErrPoundNotFound) {
		response.Failed(c, nil, err.Error())
		return
	}
	response.Failed(c, nil, msg)
}

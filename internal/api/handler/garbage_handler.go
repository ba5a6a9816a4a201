package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/rensongqi/sanic-adminapi/internal/dto"
	"github.com/rensongqi/sanic-adminapi/internal/service"
	"github.com/rensongqi/sanic-adminapi/pkg/response"
)

// GarbageHandler 垃圾类型与垃圾来源 HTTP 处理器
type GarbageHandler struct {
	garbageSvc service.GarbageService
}

// NewGarbageHandler 创建 GarbageHandler
func NewGarbageHandler(garbageSvc service.GarbageService) *GarbageHandler {
	return &GarbageHandler{garbageSvc: garbageSvc}
}

// ── 垃圾类型 ──

// GetGarbageTypes GET /admin_api/garbage/get_garbage_type
func (h *GarbageHandler) GetGarbageTypes(c *gin.Context) {
	types, err := h.garbageSvc.ListTypes(c.Request.Context())
	if err != nil {
		response.Failed(c, nil, "垃圾类型信息获取失败")
		return
	}
	response.OK(c, gin.H{"garbage_types": types})
}

// InsertGarbageType POST /admin_api/garbage/insert_garbage_type
func (h *GarbageHandler) InsertGarbageType(c *gin.Context) {
	var req dto.InsertGarbageTypeRequest
	if !bindJSON(c, &req) {
		return
	}
	gt, err := h.garbageSvc.InsertType(c.Request.Context(), &req.NewRecord)
	if err != nil {
		response.Failed(c, nil, "垃圾类型信息创建失败")
		return
	}
	response.OK(c, gin.H{"garbage_type": gt})
}

// UpdateGarbageType POST /admin_api/garbage/update_garbage_type?action=update|delete
func (h *GarbageHandler) UpdateGarbageType(c *gin.Context) {
	var req dto.UpdateGarbageTypeRequest
	if !bindJSON(c, &req) {
		return
	}

	var (
		n   int64
		err error
	)
	switch action := c.Query("action"); action {
	case actionUpdate:
		n, err = h.garbageSvc.UpdateType(c.Request.Context(), req.OldRecordID, &req.NewRecord)
	case actionDelete:
		n, err = h.garbageSvc.DeleteType(c.Request.Context(), req.OldRecordID)
	default:
		response.InvalidParameter(c, gin.H{"action": action}, "")
		return
	}
	if err != nil {
		response.Failed(c, nil, "垃圾类型信息更新失败")
		return
	}
	response.OK(c, gin.H{"garbage_type_update_num": n})
}

// ── 垃圾来源 ──

// GetGarbageSources GET /admin_api/garbage/get_garbage_source
func (h *GarbageHandler) GetGarbageSources(c *gin.Context) {
	sources, err := h.garbageSvc.ListSources(c.Request.Context())
	if err != nil {
		response.Failed(c, nil, "垃圾来源信息获取失败")
		return
	}
	response.OK(c, gin.H{"garbage_sources": sources})
}

// InsertGarbageSource POST /admin_api/garbage/insert_garbage_source
func (h *GarbageHandler) InsertGarbageSource(c *gin.Context) {
	var req dto.InsertGarbageSourceRequest
	if !bindJSON(c, &req) {
		return
	}
	src, err := h.garbageSvc.InsertSource(c.Request.Context(), &req.NewRecord)
	if err != nil {
		if errors.Is(err, service.ErrRegionNotFound) {
			response.Failed(c, nil, err.Error())
			return
		}
		response.Failed(c, nil, "垃圾来源信息创建失败")
		return
	}
	response.OK(c, gin.H{"garbage_source": src})
}

// UpdateGarbageSource POST /admin_api/garbage/update_garbage_source?action=update|delete
// delete 为硬删除
func (h *GarbageHandler) UpdateGarbageSource(c *gin.Context) {
	var req dto.UpdateGarbageSourceRequest
	if !bindJSON(c, &req) {
		return
	}

	var (
		n   int64
		err error
	)
	switch action := c.Query("action"); action {
	case actionUpdate:
		n, err = h.garbageSvc.UpdateSource(c.Request.Context(), req.OldRecordID, &req.NewRecord)
	case actionDelete:
		n, err = h.garbageSvc.DeleteSource(c.Request.Context(), req.OldRecordID)
	default:
		response.InvalidParameter(c, gin.H{"action": action}, "")
		return
	}
	if err != nil {
		if errors.Is(err, service.ErrRegionNotFound) {
			response.Failed(c, nil, err.Error())
			return
		}
		response.Failed(c, nil, "垃圾来源信息更新失败")
		return
	}
	response.OK(c, gin.H{"garbage_source_update_num": n})
}

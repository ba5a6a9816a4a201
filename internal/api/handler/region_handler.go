package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/rensongqi/sanic-adminapi/internal/dto"
	"github.com/rensongqi/sanic-adminapi/internal/service"
	"github.com/rensongqi/sanic-adminapi/pkg/response"
)

// RegionHandler 区域 HTTP 处理器
type RegionHandler struct {
	regionSvc service.RegionService
}

// NewRegionHandler 创建 RegionHandler
func NewRegionHandler(regionSvc service.RegionService) *RegionHandler {
	return &RegionHandler{regionSvc: regionSvc}
}

// GetAllRegions GET /admin_api/region/get_all_regions
func (h *RegionHandler) GetAllRegions(c *gin.Context) {
	regions, err := h.regionSvc.List(c.Request.Context())
	if err != nil {
		response.Failed(c, nil, "区域信息获取失败")
		return
	}
	response.OK(c, gin.H{"regions": regions})
}

// InsertRegion POST /admin_api/region/insert_region
func (h *RegionHandler) InsertRegion(c *gin.Context) {
	var req dto.InsertRegionRequest
	if !bindJSON(c, &req) {
		return
	}
	region, err := h.regionSvc.Insert(c.Request.Context(), &req.NewRecord)
	if err != nil {
		response.Failed(c, nil, "区域信息创建失败")
		return
	}
	response.OK(c, gin.H{"region": region})
}

// UpdateRegion POST /admin_api/region/delete_region?action=update|delete
func (h *RegionHandler) UpdateRegion(c *gin.Context) {
	var req dto.UpdateRegionRequest
	if !bindJSON(c, &req) {
		return
	}

	var (
		n   int64
		err error
	)
	switch action := c.Query("action"); action {
	case actionUpdate:
		n, err = h.regionSvc.Update(c.Request.Context(), req.OldRecordID, &req.NewRecord)
	case actionDelete:
		n, err = h.regionSvc.Delete(c.Request.Context(), req.OldRecordID)
	default:
		response.InvalidParameter(c, gin.H{"action": action}, "")
		return
	}
	if err != nil {
		response.Failed(c, nil, "区域信息更新失败")
		return
	}
	response.OK(c, gin.H{"region_update_num": n})
}

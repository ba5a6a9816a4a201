package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/rensongqi/sanic-adminapi/internal/dto"
	"github.com/rensongqi/sanic-adminapi/internal/service"
	"github.com/rensongqi/sanic-adminapi/pkg/response"
)

// VehicleTypeHandler 车辆型号 HTTP 处理器
type VehicleTypeHandler struct {
	typeSvc service.VehicleTypeService
}

// NewVehicleTypeHandler 创建 VehicleTypeHandler
func NewVehicleTypeHandler(typeSvc service.VehicleTypeService) *VehicleTypeHandler {
	return &VehicleTypeHandler{typeSvc: typeSvc}
}

// GetVehicleTypes GET /admin_api/vehicle_type/get_vehicle_type
func (h *VehicleTypeHandler) GetVehicleTypes(c *gin.Context) {
	types, err := h.typeSvc.List(c.Request.Context())
	if err != nil {
		response.Failed(c, nil, "车辆型号信息获取失败")
		return
	}
	response.OK(c, gin.H{"vehicle_types": types})
}

// InsertVehicleType POST /admin_api/vehicle_type/insert_vehicle_type
func (h *VehicleTypeHandler) InsertVehicleType(c *gin.Context) {
	var req dto.InsertVehicleTypeRequest
	if !bindJSON(c, &req) {
		return
	}
	vt, err := h.typeSvc.Insert(c.Request.Context(), &req.NewRecord)
	if err != nil {
		response.Failed(c, nil, "车辆型号信息创建失败")
		return
	}
	response.OK(c, gin.H{"vehicle_type": vt})
}

// UpdateVehicleType POST /admin_api/vehicle_type/update_vehicle_type?action=update|delete
// delete 为软删除
func (h *VehicleTypeHandler) UpdateVehicleType(c *gin.Context) {
	var req dto.UpdateVehicleTypeRequest
	if !bindJSON(c, &req) {
		return
	}

	var (
		n   int64
		err error
	)
	switch action := c.Query("action"); action {
	case actionUpdate:
		n, err = h.typeSvc.Update(c.Request.Context(), req.OldRecordID, &req.NewRecord)
	case actionDelete:
		n, err = h.typeSvc.Delete(c.Request.Context(), req.OldRecordID)
	default:
		response.InvalidParameter(c, gin.H{"action": action}, "")
		return
	}
	if err != nil {
		response.Failed(c, nil, "车辆型号信息更新失败")
		return
	}
	response.OK(c, gin.H{"vehicle_type_update_num": n})
}

package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/rensongqi/sanic-adminapi/internal/dto"
	"github.com/rensongqi/sanic-adminapi/internal/service"
	"github.com/rensongqi/sanic-adminapi/pkg/response"
)

// DepartmentHandler 单位模块 HTTP 处理器
type DepartmentHandler struct {
	deptSvc service.DepartmentService
}

// NewDepartmentHandler 创建 DepartmentHandler
func NewDepartmentHandler(deptSvc service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{deptSvc: deptSvc}
}

// GetAllDepts 单位树与单位列表
// GET /admin_api/department/get_all_depts
func (h *DepartmentHandler) GetAllDepts(c *gin.Context) {
	tree, err := h.deptSvc.Tree(c.Request.Context())
	if err != nil {
		response.Failed(c, nil, "单位信息获取失败")
		return
	}
	response.OK(c, tree)
}

// InsertDept 新增单位
// POST /admin_api/department/insert_dept
func (h *DepartmentHandler) InsertDept(c *gin.Context) {
	var req dto.InsertDepartmentRequest
	if !bindJSON(c, &req) {
		return
	}

	dept, err := h.deptSvc.Insert(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrParentDeptNotFound) {
			response.Failed(c, nil, err.Error())
			return
		}
		response.Failed(c, nil, "单位记录创建失败")
		return
	}
	response.OK(c, gin.H{"department": dept})
}

// UpdateDept 更新或删除单位
// POST /admin_api/department/update_dept?action=update|delete
func (h *DepartmentHandler) UpdateDept(c *gin.Context) {
	var req dto.UpdateDepartmentRequest
	if !bindJSON(c, &req) {
		return
	}

	var (
		n   int64
		err error
	)
	switch action := c.Query("action"); action {
	case actionUpdate:
		n, err = h.deptSvc.Update(c.Request.Context(), req.OldRecordID, &req.NewRecord)
	case actionDelete:
		n, err = h.deptSvc.Delete(c.Request.Context(), req.OldRecordID)
	default:
		response.InvalidParameter(c, gin.H{"action": action}, "")
		return
	}
	if err != nil {
		response.Failed(c, nil, "单位记录更新失败")
		return
	}
	response.OK(c, gin.H{"department_update_num": n})
}

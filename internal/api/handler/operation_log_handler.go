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

// OperationLogHandler 操作日志 HTTP 处理器
type OperationLogHandler struct {
	logSvc service.OperationLogService
	pager  pager
}

// NewOperationLogHandler 创建 OperationLogHandler
func NewOperationLogHandler(logSvc service.OperationLogService, cfg *config.BusinessConfig) *OperationLogHandler {
	return &OperationLogHandler{logSvc: logSvc, pager: newPager(cfg)}
}

// GetLogs 按关键字与时间窗口查询操作日志
// POST /admin_api/operation_logs/get_logs?query_str=&page=&length=
func (h *OperationLogHandler) GetLogs(c *gin.Context) {
	q, ok := h.pager.page(c)
	if !ok {
		return
	}
	var body dto.OperationLogQuery
	if !bindJSON(c, &body) {
		return
	}

	logs, total, err := h.logSvc.List(c.Request.Context(), c.Query("query_str"), &body, q)
	if err != nil {
		var tfe *service.TimeFieldError
		if errors.As(err, &tfe) {
			response.OKWithCode(c, apperrors.Fail, body, tfe.Error())
			return
		}
		response.Failed(c, nil, "操作日志获取失败")
		return
	}
	if h.pager.tooMany(c, len(logs), q) {
		return
	}
	response.OK(c, gin.H{"operation_logs": logs, "record_count": total})
}

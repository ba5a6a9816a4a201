package handler

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rensongqi/sanic-adminapi/internal/dto"
	"github.com/rensongqi/sanic-adminapi/internal/service"
	"github.com/rensongqi/sanic-adminapi/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler Excel 导出 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
	logger    *zap.Logger
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc, logger: logger}
}

// ExportWeightRecords 导出称重记录，条件同 read_weight_record，走 query 参数
// GET /admin_api/weight_record/export
func (h *ExportHandler) ExportWeightRecords(c *gin.Context) {
	var q dto.WeightRecordFilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.InvalidParameter(c, nil, "")
		return
	}
	f := q.ToFilter()

	buf, filename, err := h.exportSvc.ExportWeightRecords(c.Request.Context(), &f)
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	h.attach(c, buf, filename)
}

// ExportTransGroupByDate 导出按日期/来源汇总报表
// POST /web_api/statistics/export_trans_group_by_date_info
func (h *ExportHandler) ExportTransGroupByDate(c *gin.Context) {
	var f dto.StatFilter
	if !bindJSON(c, &f) {
		return
	}

	buf, filename, err := h.exportSvc.ExportTransGroupByDate(c.Request.Context(), &f)
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	h.attach(c, buf, filename)
}

// attach 写出附件下载响应
func (h *ExportHandler) attach(c *gin.Context, buf *bytes.Buffer, filename string) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStatTimeFormat),
		errors.Is(err, service.ErrWeightTimeFormat):
		response.Failed(c, nil, err.Error())
	case errors.Is(err, service.ErrExportGenerateFail):
		h.logger.Error("导出失败", zap.Error(err))
		response.Failed(c, nil, err.Error())
	default:
		response.Failed(c, nil, "导出失败")
	}
}

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

// WeightRecordHandler 称重记录 HTTP 处理器
type WeightRecordHandler struct {
	weightSvc service.WeightRecordService
	pager     pager
}

// NewWeightRecordHandler 创建 WeightRecordHandler
func NewWeightRecordHandler(weightSvc service.WeightRecordService, cfg *config.BusinessConfig) *WeightRecordHandler {
	return &WeightRecordHandler{weightSvc: weightSvc, pager: newPager(cfg)}
}

// GetDropItems GET /admin_api/weight_record/get_drop_items
func (h *WeightRecordHandler) GetDropItems(c *gin.Context) {
	items, err := h.weightSvc.DropItems(c.Request.Context())
	if err != nil {
		response.Failed(c, nil, "称重记录获取失败")
		return
	}
	response.OK(c, items)
}

// ReadFullWeightRecord 单条称重记录全部字段
// POST /admin_api/weight_record/read_full_weight_record?id=
func (h *WeightRecordHandler) ReadFullWeightRecord(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}

	record, err := h.weightSvc.GetFull(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrWeightRecordNotFound) {
			response.OKWithCode(c, apperrors.NoResourceFound, nil, "")
			return
		}
		response.Failed(c, nil, "称重记录获取失败")
		return
	}
	response.OK(c, gin.H{"weight_record": record})
}

// ReadWeightRecords POST /admin_api/weight_record/read_weight_record?page=&length=
func (h *WeightRecordHandler) ReadWeightRecords(c *gin.Context) {
	q, ok := h.pager.page(c)
	if !ok {
		return
	}
	var f dto.WeightRecordFilter
	if !bindJSON(c, &f) {
		return
	}

	records, total, err := h.weightSvc.List(c.Request.Context(), &f, q)
	if err != nil {
		h.handleWeightError(c, err, "称重记录获取失败")
		return
	}
	if h.pager.tooMany(c, len(records), q) {
		return
	}
	response.OK(c, gin.H{"weight_records": records, "record_count": total})
}

// InsertWeightRecord 手动补录，记录人为当前登录账号
// POST /admin_api/weight_record/insert_weight_record
func (h *WeightRecordHandler) InsertWeightRecord(c *gin.Context) {
	var req dto.InsertWeightRecordRequest
	if !bindJSON(c, &req) {
		return
	}

	record, err := h.weightSvc.Insert(c.Request.Context(), req.NewRecord, LoginAccount(c))
	if err != nil {
		if errors.Is(err, service.ErrWeightRecordMissing) {
			response.InvalidParameter(c, nil, "")
			return
		}
		h.handleWeightError(c, err, "称重记录创建失败")
		return
	}
	response.OK(c, gin.H{"weight_records": []dto.WeightRecordItem{*record}})
}

// ClassifyWeightRecords 按单一维度分组汇总
// POST /admin_api/weight_record/classify_weight_record
func (h *WeightRecordHandler) ClassifyWeightRecords(c *gin.Context) {
	var req dto.ClassifyRequest
	if !bindJSON(c, &req) {
		return
	}

	items, err := h.weightSvc.Classify(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrClassifyField) {
			response.OKWithCode(c, apperrors.InvalidParameter, gin.H{"query_dict": req.Dimensions()}, err.Error())
			return
		}
		h.handleWeightError(c, err, "称重记录分类失败")
		return
	}
	response.OK(c, gin.H{"weight_records": items})
}

func (h *WeightRecordHandler) handleWeightError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, service.ErrGarbageSourceMismatch),
		errors.Is(err, service.ErrWeightTimeFormat):
		response.Failed(c, nil, err.Error())
	default:
		response.Failed(c, nil, msg)
	}
}

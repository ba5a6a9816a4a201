package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/rensongqi/sanic-adminapi/config"
	"github.com/rensongqi/sanic-adminapi/internal/dto"
	"github.com/rensongqi/sanic-adminapi/internal/service"
	"github.com/rensongqi/sanic-adminapi/pkg/response"
)

// CardHandler IC 卡 HTTP 处理器，含建卡、年检、换卡与签发
type CardHandler struct {
	cardSvc service.CardService
	pager   pager
}

// NewCardHandler 创建 CardHandler
func NewCardHandler(cardSvc service.CardService, cfg *config.BusinessConfig) *CardHandler {
	return &CardHandler{cardSvc: cardSvc, pager: newPager(cfg)}
}

// ────────────────────── 建卡 ──────────────────────

// GetCards GET /admin_api/ic_card/create/get_ic_card
func (h *CardHandler) GetCards(c *gin.Context) {
	q, ok := h.pager.page(c)
	if !ok {
		return
	}
	var query dto.CardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.InvalidParameter(c, nil, "")
		return
	}

	cards, total, err := h.cardSvc.List(c.Request.Context(), &query, q)
	if err != nil {
		response.Failed(c, nil, "获取ic卡信息失败")
		return
	}
	if h.pager.tooMany(c, len(cards), q) {
		return
	}
	response.OK(c, gin.H{"ic_card": cards, "record_count": total})
}

// CreateCard POST /admin_api/ic_card/create/create_ic_card
func (h *CardHandler) CreateCard(c *gin.Context) {
	var req dto.CreateCardRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cardSvc.Create(c.Request.Context(), &req); err != nil {
		response.Failed(c, nil, "新增ic卡信息失败")
		return
	}
	response.OK(c, "新增ic卡信息成功")
}

// UpdateCard POST /admin_api/ic_card/create/update_ic_card
func (h *CardHandler) UpdateCard(c *gin.Context) {
	var req dto.UpdateCardRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cardSvc.Update(c.Request.Context(), &req); err != nil {
		h.handleCardError(c, err, "更新ic卡信息失败")
		return
	}
	response.OK(c, "更新ic卡信息成功")
}

// DeleteCard DELETE /admin_api/ic_card/create/delete_ic_card
func (h *CardHandler) DeleteCard(c *gin.Context) {
	var req dto.IDRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cardSvc.Delete(c.Request.Context(), req.ID); err != nil {
		h.handleCardError(c, err, "删除ic卡信息失败")
		return
	}
	response.OK(c, "删除ic卡信息成功")
}

// CheckCard POST /admin_api/ic_card/check_card
func (h *CardHandler) CheckCard(c *gin.Context) {
	var req dto.CheckCardRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cardSvc.Check(c.Request.Context(), &req); err != nil {
		h.handleCardError(c, err, "IC卡年检失败")
		return
	}
	response.OK(c, "IC卡年检成功")
}

// ────────────────────── 换卡 ──────────────────────

// GetChangeInfo GET /admin_api/ic_card/get_change_info
func (h *CardHandler) GetChangeInfo(c *gin.Context) {
	q, ok := h.pager.page(c)
	if !ok {
		return
	}
	var query dto.ChangeInfoQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.InvalidParameter(c, nil, "")
		return
	}

	changes, total, err := h.cardSvc.ListChanges(c.Request.Context(), &query, q)
	if err != nil {
		h.handleCardError(c, err, "获取换卡信息失败")
		return
	}
	if h.pager.tooMany(c, len(changes), q) {
		return
	}
	response.OK(c, gin.H{"ic_card": changes, "record_count": total})
}

// ChangeCard POST /admin_api/ic_card/change_card
func (h *CardHandler) ChangeCard(c *gin.Context) {
	var req dto.ChangeCardRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cardSvc.Change(c.Request.Context(), &req); err != nil {
		h.handleCardError(c, err, "IC卡换卡失败")
		return
	}
	response.OK(c, "IC卡换卡成功")
}

// ────────────────────── 签发 ──────────────────────

// GetSignedCards POST /admin_api/ic_card/signed/get_cards
func (h *CardHandler) GetSignedCards(c *gin.Context) {
	q, ok := h.pager.page(c)
	if !ok {
		return
	}
	var f dto.SignedCardFilter
	if !bindJSON(c, &f) {
		return
	}

	vehicles, total, err := h.cardSvc.ListSigned(c.Request.Context(), &f, q)
	if err != nil {
		response.Failed(c, nil, "获取签发信息失败")
		return
	}
	if h.pager.tooMany(c, len(vehicles), q) {
		return
	}
	response.OK(c, gin.H{"vehicles": vehicles, "vehicle_num": total})
}

// SignCard POST /admin_api/ic_card/signed/signed_card
func (h *CardHandler) SignCard(c *gin.Context) {
	var req dto.SignCardRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cardSvc.Sign(c.Request.Context(), &req); err != nil {
		h.handleCardError(c, err, "签发ic卡失败")
		return
	}
	response.OK(c, "签发ic卡成功")
}

// RevokeCard POST /admin_api/ic_card/signed/revoke_card
func (h *CardHandler) RevokeCard(c *gin.Context) {
	var req dto.RevokeCardRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cardSvc.Revoke(c.Request.Context(), &req); err != nil {
		h.handleCardError(c, err, "撤销ic卡签发失败")
		return
	}
	response.OK(c, "撤销ic卡签发成功")
}

func (h *CardHandler) handleCardError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, service.ErrCardNotFound),
		errors.Is(err, service.ErrCardTimeFormat),
		errors.Is(err, service.ErrGrantNotFound):
		response.Failed(c, nil, err.Error())
	default:
		response.Failed(c, nil, msg)
	}
}

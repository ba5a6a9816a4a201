package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/rensongqi/sanic-adminapi/internal/dto"
	"github.com/rensongqi/sanic-adminapi/internal/model"
	"github.com/rensongqi/sanic-adminapi/internal/repository"
)

// ── IC 卡模块业务错误 ──

var (
	ErrCardNotFound   = errors.New("IC卡不存在")
	ErrCardTimeFormat = errors.New("IC卡时间格式错误")
	ErrGrantNotFound  = errors.New("签发记录不存在")
)

// CardService IC 卡业务接口
type CardService interface {
	List(ctx context.Context, q *dto.CardQuery, page dto.PageQuery) ([]dto.CardItem, int64, error)
	Create(ctx context.Context, req *dto.CreateCardRequest) error
	Update(ctx context.Context, req *dto.UpdateCardRequest) error
	Delete(ctx context.Context, id int64) error
	// Check 年检，更新有效期
	Check(ctx context.Context, req *dto.CheckCardRequest) error

	ListChanges(ctx context.Context, q *dto.ChangeInfoQuery, page dto.PageQuery) ([]dto.CardChangeItem, int64, error)
	Change(ctx context.Context, req *dto.ChangeCardRequest) error

	// ListSigned 车辆 × 签发地磅站，按车辆分页，返回的总数为车辆数
	ListSigned(ctx context.Context, f *dto.SignedCardFilter, page dto.PageQuery) ([]dto.SignedCardItem, int64, error)
	Sign(ctx context.Context, req *dto.SignCardRequest) error
	Revoke(ctx context.Context, req *dto.RevokeCardRequest) error
}

type cardService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCardService 创建 CardService 实例
func NewCardService(repo *repository.Repository, logger *zap.Logger) CardService {
	return &cardService{repo: repo, logger: logger}
}

// parseValidity 起止日期均可为空
func parseValidity(start, expire string) (repository.CardValidity, error) {
	var v repository.CardValidity
	if start != "" {
		t, err := dto.ParseDate(start)
		if err != nil {
			return v, ErrCardTimeFormat
		}
		v.Start = &t
	}
	if expire != "" {
		t, err := dto.ParseDate(expire)
		if err != nil {
			return v, ErrCardTimeFormat
		}
		v.Expire = &t
	}
	return v, nil
}

// ────────────────────── 开卡记录 ──────────────────────

func (s *cardService) List(ctx context.Context, q *dto.CardQuery, page dto.PageQuery) ([]dto.CardItem, int64, error) {
	cards, total, err := s.repo.Card.List(ctx, repository.CardFilter{
		CardNo:        q.ICCardNo,
		VehicleNo:     q.VehicleNo,
		VehicleDoorNo: q.VehicleDoorNo,
	}, page.Offset(), page.Length)
	if err != nil {
		s.logger.Error("查询IC卡失败", zap.Error(err))
		return nil, 0, err
	}

	ids := make([]int64, 0, len(cards))
	for _, c := range cards {
		ids = append(ids, c.ID)
	}
	vehicles, err := s.repo.Vehicle.ListByCardIDs(ctx, ids, repository.VehicleFilter{
		ModifyState:   model.ModifyStateActive,
		VehicleNo:     q.VehicleNo,
		VehicleDoorNo: q.VehicleDoorNo,
	})
	if err != nil {
		s.logger.Error("查询IC卡绑定车辆失败", zap.Error(err))
		return nil, 0, err
	}
	// 每张卡取第一辆匹配的车辆
	bound := make(map[int64]*model.Vehicle, len(vehicles))
	for i := range vehicles {
		if cid := vehicles[i].CardID; cid != nil {
			if _, ok := bound[*cid]; !ok {
				bound[*cid] = &vehicles[i]
			}
		}
	}

	items := make([]dto.CardItem, 0, len(cards))
	for i := range cards {
		items = append(items, dto.NewCardItem(&cards[i], bound[cards[i].ID]))
	}
	return items, total, nil
}

func (s *cardService) Create(ctx context.Context, req *dto.CreateCardRequest) error {
	card := &model.Card{
		CardNo:         req.CardNo,
		NumCardInvalid: req.NumCardInvalid,
		CardPrintNo:    req.CardNo,
		UploadState:    model.UploadStateUploaded,
		ModifyState:    model.ModifyStateActive,
	}
	if err := s.repo.Card.Create(ctx, card); err != nil {
		s.logger.Error("创建IC卡失败", zap.Error(err))
		return err
	}
	return nil
}

func (s *cardService) Update(ctx context.Context, req *dto.UpdateCardRequest) error {
	n, err := s.repo.Card.Update(ctx, req.ID, map[string]interface{}{
		"card_no":          req.CardNo,
		"num_card_invalid": req.NumCardInvalid,
		"card_print_no":    req.CardNo,
	})
	if err != nil {
		s.logger.Error("更新IC卡失败", zap.Int64("id", req.ID), zap.Error(err))
		return err
	}
	if n == 0 {
		return ErrCardNotFound
	}
	return nil
}

func (s *cardService) Delete(ctx context.Context, id int64) error {
	n, err := s.repo.Card.Delete(ctx, id)
	if err != nil {
		s.logger.Error("删除IC卡失败", zap.Int64("id", id), zap.Error(err))
		return err
	}
	if n == 0 {
		return ErrCardNotFound
	}
	return nil
}

// ────────────────────── 年检 ──────────────────────

func (s *cardService) Check(ctx context.Context, req *dto.CheckCardRequest) error {
	validity, err := parseValidity(req.CardStartTime, req.CardExpireTime)
	if err != nil {
		return err
	}
	n, err := s.repo.Card.Update(ctx, req.ID, map[string]interface{}{
		"card_start_time":  validity.Start,
		"card_expire_time": validity.Expire,
	})
	if err != nil {
		s.logger.Error("IC卡年检失败", zap.Int64("id", req.ID), zap.Error(err))
		return err
	}
	if n == 0 {
		return ErrCardNotFound
	}
	return nil
}

// ────────────────────── 换卡 ──────────────────────

func (s *cardService) ListChanges(ctx context.Context, q *dto.ChangeInfoQuery, page dto.PageQuery) ([]dto.CardChangeItem, int64, error) {
	f := repository.CardChangeFilter{VehicleNo: q.VehicleNo}
	if q.StartTime != "" {
		t, err := dto.ParseDate(q.StartTime)
		if err != nil {
			return nil, 0, ErrCardTimeFormat
		}
		f.Start = &t
	}
	if q.EndTime != "" {
		t, err := dto.ParseDateTime(q.EndTime)
		if err != nil {
			// 只给日期时包含当天
			d, derr := dto.ParseDate(q.EndTime)
			if derr != nil {
				return nil, 0, ErrCardTimeFormat
			}
			t = d.Add(24*time.Hour - time.Second)
		}
		f.End = &t
	}

	changes, total, err := s.repo.Card.ListChanges(ctx, f, page.Offset(), page.Length)
	if err != nil {
		s.logger.Error("查询换卡记录失败", zap.Error(err))
		return nil, 0, err
	}
	items := make([]dto.CardChangeItem, 0, len(changes))
	for i := range changes {
		items = append(items, dto.NewCardChangeItem(&changes[i]))
	}
	return items, total, nil
}

func (s *cardService) Change(ctx context.Context, req *dto.ChangeCardRequest) error {
	validity, err := parseValidity(req.CardStartTime, req.CardExpireTime)
	if err != nil {
		return err
	}
	changeTime := time.Now()
	if req.ChangeCardTime != "" {
		t, err := dto.ParseDateTime(req.ChangeCardTime)
		if err != nil {
			return ErrCardTimeFormat
		}
		changeTime = t
	}

	err = s.repo.Card.Change(ctx, repository.CardChange{
		OldCardID: req.CardID,
		Validity:  validity,
		VehicleNo: req.VehicleNo,
		Record: &model.CardChanged{
			ChangeCardTime: &changeTime,
			ChangeReason:   req.ChangeReason,
			UserID:         req.Operator,
			Info:           req.Info,
			VehicleNo:      req.VehicleNo,
			VehicleDoorNo:  req.VehicleDoorNo,
			UploadState:    model.UploadStatePending,
			NewCardID:      dto.IDPtr(req.NewCardID),
			DeptID:         dto.IDPtr(req.DeptID),
		},
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCardNotFound
		}
		s.logger.Error("IC卡换卡失败", zap.Int64("card_id", req.CardID), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── 签发 ──────────────────────

func (s *cardService) ListSigned(ctx context.Context, f *dto.SignedCardFilter, page dto.PageQuery) ([]dto.SignedCardItem, int64, error) {
	vehicles, total, err := s.repo.Vehicle.List(ctx, repository.VehicleFilter{
		ModifyState:   model.ModifyStateActive,
		VehicleNo:     f.VehicleNo,
		VehicleDoorNo: f.VehicleDoorNo,
		VehicleTypeID: f.VehicleTypeID,
		DeptID:        f.DeptID,
	}, page.Offset(), page.Length)
	if err != nil {
		s.logger.Error("查询签发车辆失败", zap.Error(err))
		return nil, 0, err
	}

	cardIDs := make([]int64, 0, len(vehicles))
	for _, v := range vehicles {
		if v.CardID != nil {
			cardIDs = append(cardIDs, *v.CardID)
		}
	}
	grants, err := s.repo.Card.ListCardPounds(ctx, cardIDs, f.PoundID)
	if err != nil {
		s.logger.Error("查询签发记录失败", zap.Error(err))
		return nil, 0, err
	}
	byCard := make(map[int64][]model.CardPound, len(grants))
	for _, g := range grants {
		byCard[g.CardID] = append(byCard[g.CardID], g)
	}

	items := make([]dto.SignedCardItem, 0, len(vehicles))
	for i := range vehicles {
		v := &vehicles[i]
		var cardGrants []model.CardPound
		if v.CardID != nil {
			cardGrants = byCard[*v.CardID]
		}
		if len(cardGrants) == 0 {
			items = append(items, dto.NewSignedCardItem(v, nil))
			continue
		}
		for j := range cardGrants {
			pound := cardGrants[j].Pound
			if pound == nil {
				pound = &model.Pound{ID: cardGrants[j].PoundID}
			}
			items = append(items, dto.NewSignedCardItem(v, pound))
		}
	}
	return items, total, nil
}

func (s *cardService) Sign(ctx context.Context, req *dto.SignCardRequest) error {
	validity, err := parseValidity(req.CardStartTime, req.CardExpireTime)
	if err != nil {
		return err
	}
	if err := s.repo.Card.Sign(ctx, req.ID, req.PoundID, validity); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCardNotFound
		}
		s.logger.Error("签发IC卡失败", zap.Int64("card_id", req.ID), zap.Int64("pound_id", req.PoundID), zap.Error(err))
		return err
	}
	return nil
}

func (s *cardService) Revoke(ctx context.Context, req *dto.RevokeCardRequest) error {
	n, err := s.repo.Card.Revoke(ctx, req.ID, req.PoundID)
	if err != nil {
		s.logger.Error("撤销IC卡签发失败", zap.Int64("card_id", req.ID), zap.Int64("pound_id", req.PoundID), zap.Error(err))
		return err
	}
	if n == 0 {
		return ErrGrantNotFound
	}
	return nil
}

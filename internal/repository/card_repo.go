package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rensongqi/sanic-adminapi/internal/model"
)

// CardFilter IC 卡列表条件
// VehicleNo、VehicleDoorNo 非空时只保留绑定了匹配车辆的卡
type CardFilter struct {
	CardNo        string
	VehicleNo     string
	VehicleDoorNo string
}

// CardChangeFilter 换卡记录条件，时间窗口为闭区间
type CardChangeFilter struct {
	VehicleNo string
	Start     *time.Time
	End       *time.Time
}

// CardValidity 卡有效期
type CardValidity struct {
	Start  *time.Time
	Expire *time.Time
}

// CardChange 一次换卡操作
type CardChange struct {
	OldCardID int64
	Validity  CardValidity
	Record    *model.CardChanged
	VehicleNo string
}

// CardRepository IC 卡数据访问接口
type CardRepository interface {
	Create(ctx context.Context, card *model.Card) error
	GetByID(ctx context.Context, id int64) (*model.Card, error)
	List(ctx context.Context, f CardFilter, offset, limit int) ([]model.Card, int64, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) (int64, error)
	// Delete 删除卡及其签发记录，并解除车辆绑定
	Delete(ctx context.Context, id int64) (int64, error)

	// ListChanges 换卡记录，预加载新旧卡与单位
	ListChanges(ctx context.Context, f CardChangeFilter, offset, limit int) ([]model.CardChanged, int64, error)
	// Change 在一个事务中更新旧卡有效期、按 card_id 写入换卡记录、将车辆改绑到新卡
	Change(ctx context.Context, change CardChange) error

	// ListCardPounds 卡的签发记录，poundID 为 0 时不过滤地磅站
	ListCardPounds(ctx context.Context, cardIDs []int64, poundID int64) ([]model.CardPound, error)
	// Sign 更新有效期并写入 (card_id, pound_id) 签发记录，已存在则只更新 upload_state
	Sign(ctx context.Context, cardID, poundID int64, validity CardValidity) error
	Revoke(ctx context.Context, cardID, poundID int64) (int64, error)
}

type cardRepo struct {
	db *gorm.DB
}

// NewCardRepo 创建 CardRepository 实例
func NewCardRepo(db *gorm.DB) CardRepository {
	return &cardRepo{db: db}
}

func (v CardValidity) updates() map[string]interface{} {
	return map[string]interface{}{
		"card_start_time":  v.Start,
		"card_expire_time": v.Expire,
	}
}

func (r *cardRepo) Create(ctx context.Context, card *model.Card) error {
	return r.db.WithContext(ctx).Create(card).Error
}

func (r *cardRepo) GetByID(ctx context.Context, id int64) (*model.Card, error) {
	var card model.Card
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&card).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *cardRepo) List(ctx context.Context, f CardFilter, offset, limit int) ([]model.Card, int64, error) {
	var cards []model.Card
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Card{})
	db = whereContains(db, "card.card_no", f.CardNo)
	if f.VehicleNo != "" || f.VehicleDoorNo != "" {
		sub := r.db.Model(&model.Vehicle{}).
			Select("1").
			Where("vehicle.card_id = card.id AND vehicle.modify_state = ?", model.ModifyStateActive)
		sub = whereContains(sub, "vehicle.vehicle_no", f.VehicleNo)
		sub = whereContains(sub, "vehicle.vehicle_door_no", f.VehicleDoorNo)
		db = db.Where("EXISTS (?)", sub)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := paginate(db, offset, limit).Order("card.id ASC").Find(&cards).Error; err != nil {
		return nil, 0, err
	}
	return cards, total, nil
}

func (r *cardRepo) Update(ctx context.Context, id int64, updates map[string]interface{}) (int64, error) {
	return lockedUpdate(ctx, r.db, &model.Card{}, id, updates)
}

func (r *cardRepo) Delete(ctx context.Context, id int64) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("card_id = ?", id).Delete(&model.CardPound{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Vehicle{}).
			Where("card_id = ?", id).
			Update("card_id", nil).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.Card{})
		affected = res.RowsAffected
		return res.Error
	})
	return affected, err
}

func (r *cardRepo) ListChanges(ctx context.Context, f CardChangeFilter, offset, limit int) ([]model.CardChanged, int64, error) {
	var changes []model.CardChanged
	var total int64

	db := r.db.WithContext(ctx).Model(&model.CardChanged{})
	db = whereContains(db, "vehicle_no", f.VehicleNo)
	if f.Start != nil {
		db = db.Where("change_card_time >= ?", *f.Start)
	}
	if f.End != nil {
		db = db.Where("change_card_time <= ?", *f.End)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := paginate(db.Preload("Card").Preload("NewCard").Preload("Dept"), offset, limit).
		Order("change_card_time DESC, id DESC").
		Find(&changes).Error; err != nil {
		return nil, 0, err
	}
	return changes, total, nil
}

func (r *cardRepo) Change(ctx context.Context, change CardChange) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := lockRow(tx, &model.Card{}, change.OldCardID)
		if err != nil {
			return err
		}
		if !found {
			return ErrNotFound
		}
		if err := tx.Model(&model.Card{}).
			Where("id = ?", change.OldCardID).
			Updates(change.Validity.updates()).Error; err != nil {
			return err
		}

		rec := change.Record
		rec.CardID = change.OldCardID
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "card_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"change_card_time", "change_reason", "user_id", "info",
				"vehicle_no", "vehicle_door_no", "upload_state", "new_card_id", "dept_id",
			}),
		}).Create(rec).Error; err != nil {
			return err
		}

		return tx.Model(&model.Vehicle{}).
			Where("vehicle_no = ? AND card_id = ?", change.VehicleNo, change.OldCardID).
			Update("card_id", rec.NewCardID).Error
	})
}

func (r *cardRepo) ListCardPounds(ctx context.Context, cardIDs []int64, poundID int64) ([]model.CardPound, error) {
	var grants []model.CardPound
	if len(cardIDs) == 0 {
		return grants, nil
	}
	db := r.db.WithContext(ctx).Preload("Pound").Where("card_id IN ?", cardIDs)
	db = whereEq(db, "pound_id", poundID)
	err := db.Order("card_id ASC, pound_id ASC").Find(&grants).Error
	return grants, err
}

func (r *cardRepo) Sign(ctx context.Context, cardID, poundID int64, validity CardValidity) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := lockRow(tx, &model.Card{}, cardID)
		if err != nil {
			return err
		}
		if !found {
			return ErrNotFound
		}
		if err := tx.Model(&model.Card{}).
			Where("id = ?", cardID).
			Updates(validity.updates()).Error; err != nil {
			return err
		}

		grant := model.CardPound{CardID: cardID, PoundID: poundID, UploadState: model.UploadStateUploaded}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "card_id"}, {Name: "pound_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"upload_state"}),
		}).Create(&grant).Error
	})
}

func (r *cardRepo) Revoke(ctx context.Context, cardID, poundID int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("card_id = ? AND pound_id = ?", cardID, poundID).
		Delete(&model.CardPound{})
	return res.RowsAffected, res.Error
}

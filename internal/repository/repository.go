package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rensongqi/sanic-adminapi/pkg/database"
)

// ErrNotFound 记录不存在
var ErrNotFound = gorm.ErrRecordNotFound

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Department    DepartmentRepository
	Vehicle       VehicleRepository
	VehicleType   VehicleTypeRepository
	Region        RegionRepository
	Driver        DriverRepository
	GarbageType   GarbageTypeRepository
	GarbageSource GarbageSourceRepository
	Pound         PoundRepository
	Card          CardRepository
	OperationLog  OperationLogRepository
	WeightRecord  WeightRecordRepository
	User          UserRepository
	Dictionary    DictionaryRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Department:    NewDepartmentRepo(db),
		Vehicle:       NewVehicleRepo(db),
		VehicleType:   NewVehicleTypeRepo(db),
		Region:        NewRegionRepo(db),
		Driver:        NewDriverRepo(db),
		GarbageType:   NewGarbageTypeRepo(db),
		GarbageSource: NewGarbageSourceRepo(db),
		Pound:         NewPoundRepo(db),
		Card:          NewCardRepo(db),
		OperationLog:  NewOperationLogRepo(db),
		WeightRecord:  NewWeightRecordRepo(db),
		User:          NewUserRepo(db),
		Dictionary:    NewDictionaryRepo(db),
	}
}

// paginate limit <= 0 时不分页
func paginate(db *gorm.DB, offset, limit int) *gorm.DB {
	if limit <= 0 {
		return db
	}
	return db.Offset(offset).Limit(limit)
}

// lockedUpdate 在事务中锁定 id 对应的行后更新，返回匹配的行数
// 行不存在或不满足 scopes 时返回 0；updates 为空时只做存在性检查
func lockedUpdate(ctx context.Context, db *gorm.DB, m interface{}, id int64, updates map[string]interface{}, scopes ...func(*gorm.DB) *gorm.DB) (int64, error) {
	var matched int64
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := lockRow(tx, m, id, scopes...)
		if err != nil || !found {
			return err
		}
		matched = 1
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(m).Where("id = ?", id).Updates(updates).Error
	})
	return matched, err
}

// lockRow 在事务内锁定 id 对应的行，返回是否存在
func lockRow(tx *gorm.DB, m interface{}, id int64, scopes ...func(*gorm.DB) *gorm.DB) (bool, error) {
	var ids []int64
	if err := tx.Model(m).
		Scopes(scopes...).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		Pluck("id", &ids).Error; err != nil {
		return false, err
	}
	return len(ids) > 0, nil
}

// hardDelete 按 id 删除，返回删除行数
func hardDelete(ctx context.Context, db *gorm.DB, m interface{}, id int64) (int64, error) {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(m)
	return res.RowsAffected, res.Error
}

// whereContains 追加不区分大小写的包含条件，value 为空时不追加
func whereContains(db *gorm.DB, column, value string) *gorm.DB {
	if value == "" {
		return db
	}
	return db.Where(database.ContainsExpr(db, column), database.ContainsArg(value))
}

// whereEq 追加等值条件，value 为零值时不追加
func whereEq[T comparable](db *gorm.DB, column string, value T) *gorm.DB {
	var zero T
	if value == zero {
		return db
	}
	return db.Where(column+" = ?", value)
}

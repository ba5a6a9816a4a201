package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:embed migrations/mysql/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// ErrMigrationUnsupported sqlite 不走版本化迁移，由 AutoMigrate 建表
var ErrMigrationUnsupported = errors.New("当前数据库驱动不支持版本化迁移")

// 迁移方向
const (
	MigrateUp   = "up"
	MigrateDown = "down"
)

// RunMigrations 执行数据库迁移
// 自动检测当前版本并应用所有未执行的迁移；direction=down 时回滚一步
func RunMigrations(db *gorm.DB, direction string, logger *zap.Logger) error {
	m, err := newMigrate(db)
	if err != nil {
		return err
	}

	switch direction {
	case MigrateDown:
		err = m.Steps(-1)
	default:
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("执行迁移失败: %w", err)
	}

	version, dirty, _ := m.Version()
	if dirty {
		logger.Warn("数据库迁移处于 dirty 状态", zap.Uint("version", version))
	} else {
		logger.Info("数据库迁移完成", zap.String("direction", direction), zap.Uint("version", version))
	}

	return nil
}

func newMigrate(db *gorm.DB) (*migrate.Migrate, error) {
	name := db.Dialector.Name()
	if name != "mysql" && name != "postgres" {
		return nil, ErrMigrationUnsupported
	}

	source, err := iofs.New(migrationsFS, "migrations/"+name)
	if err != nil {
		return nil, fmt.Errorf("加载迁移文件失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取底层 sql.DB 失败: %w", err)
	}

	var driver database.Driver
	if name == "postgres" {
		driver, err = postgres.WithInstance(sqlDB, &postgres.Config{})
	} else {
		driver, err = mysql.WithInstance(sqlDB, &mysql.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("创建迁移驱动失败: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, name, driver)
	if err != nil {
		return nil, fmt.Errorf("初始化迁移实例失败: %w", err)
	}
	return m, nil
}

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rensongqi/sanic-adminapi/internal/model"
	"github.com/rensongqi/sanic-adminapi/pkg/database"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "执行数据库迁移",
		Long:      "up 应用全部未执行的迁移；down 回滚一步。sqlite 仅支持 up，按模型自动建表。",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{database.MigrateUp, database.MigrateDown},
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := database.MigrateUp
			if len(args) == 1 {
				direction = args[0]
			}

			_, logger, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()
			defer closeDB(db)

			return migrate(db, direction, logger)
		},
	}
}

// migrate 版本化迁移；驱动不支持时退回 AutoMigrate
func migrate(db *gorm.DB, direction string, logger *zap.Logger) error {
	err := database.RunMigrations(db, direction, logger)
	if !errors.Is(err, database.ErrMigrationUnsupported) {
		return err
	}
	if direction == database.MigrateDown {
		return fmt.Errorf("%s 不支持回滚", db.Dialector.Name())
	}
	if err := db.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("自动建表失败: %w", err)
	}
	logger.Info("自动建表完成", zap.String("driver", db.Dialector.Name()))
	return nil
}

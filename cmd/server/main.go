package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rensongqi/sanic-adminapi/config"
	"github.com/rensongqi/sanic-adminapi/pkg/database"
	applogger "github.com/rensongqi/sanic-adminapi/pkg/logger"
)

var cfgFile string

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sanic-adminapi",
		Short: "环卫清运管理后台服务",
		Long: `环卫清运管理后台：单位、车辆、司机、垃圾来源、地磅站、IC 卡、称重记录与统计报表。

配置优先级（高到低）：
  1. 环境变量 WASTE_*（db.host → WASTE_DB_HOST）
  2. 配置文件（默认 ./config/config.yaml）
  3. 内置默认值`,
		SilenceUsage: true,
		// 不带子命令时启动服务
		RunE: runServe,
	}
	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "配置文件路径")
	root.AddCommand(serveCmd(), migrateCmd(), createUserCmd())
	return root
}

// bootstrap 加载配置、初始化日志并连接数据库
func bootstrap() (*config.Config, *zap.Logger, *gorm.DB, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("加载配置失败: %w", err)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("初始化日志失败: %w", err)
	}

	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Sync()
		return nil, nil, nil, fmt.Errorf("数据库连接失败: %w", err)
	}
	logger.Info("数据库连接成功", zap.String("driver", cfg.Database.Driver))
	return cfg, logger, db, nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, _ := db.DB(); sqlDB != nil {
		sqlDB.Close()
	}
}

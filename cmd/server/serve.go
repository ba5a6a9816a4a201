package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rensongqi/sanic-adminapi/internal/api/handler"
	"github.com/rensongqi/sanic-adminapi/internal/api/router"
	"github.com/rensongqi/sanic-adminapi/internal/repository"
	"github.com/rensongqi/sanic-adminapi/internal/service"
	"github.com/rensongqi/sanic-adminapi/internal/session"
	"github.com/rensongqi/sanic-adminapi/pkg/database"
	"github.com/rensongqi/sanic-adminapi/pkg/jwt"
	"github.com/rensongqi/sanic-adminapi/pkg/redis"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "启动 HTTP 服务",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	// 1. 配置、日志、数据库
	cfg, logger, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer closeDB(db)

	logger.Info("应用启动中...",
		zap.String("app", cfg.App.Name),
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 2. 数据库迁移
	if cfg.Database.AutoMigrate {
		if err := migrate(db, database.MigrateUp, logger); err != nil {
			return fmt.Errorf("数据库迁移失败: %w", err)
		}
	}

	// 3. 连接 Redis（可选：连接失败时降级运行，会话改存内存，登录限流关闭）
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis 连接失败，降级运行", zap.Error(err))
		rdb = nil
	}
	if rdb != nil {
		defer rdb.Close()
	}

	// 4. 会话
	var store session.Store
	if cfg.Session.Store == "redis" && rdb != nil {
		store = session.NewRedisStore(rdb)
	} else {
		mem := session.NewMemoryStore(time.Minute)
		defer mem.Close()
		store = mem
		logger.Info("会话存储使用内存")
	}
	sessions := session.NewManager(store, jwt.NewManager(&cfg.Session), &cfg.Session, logger)

	// 5. 依赖注入: Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, logger)
	h := handler.NewHandler(cfg, svc, logger)

	// 6. 初始化路由
	engine := router.Setup(cfg, router.Deps{
		Handler:  h,
		Services: svc,
		Sessions: sessions,
		DB:       db,
		Redis:    rdb,
		Logger:   logger,
	})

	// 7. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// 8. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))
	case err := <-errCh:
		return fmt.Errorf("HTTP 服务器异常: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	logger.Info("服务器已关闭")
	return nil
}

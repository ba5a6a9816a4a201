package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rensongqi/sanic-adminapi/internal/model"
	"github.com/rensongqi/sanic-adminapi/internal/repository"
	"github.com/rensongqi/sanic-adminapi/internal/service"
)

func createUserCmd() *cobra.Command {
	var (
		user     model.WebUser
		deptID   int64
		password string
	)
	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "创建后台账号，密码以 bcrypt 存储",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()
			defer closeDB(db)

			if deptID > 0 {
				user.DeptID = &deptID
			}
			svc := service.NewService(cfg, repository.NewRepository(db), logger)
			if err := svc.Auth.CreateUser(context.Background(), &user, password); err != nil {
				return fmt.Errorf("创建账号失败: %w", err)
			}
			logger.Info("账号已创建", zap.String("user_id", user.UserID))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&user.UserID, "user-id", "", "登录账号")
	f.StringVar(&user.Username, "username", "", "显示名")
	f.StringVar(&password, "password", "", "登录密码")
	f.Int64Var(&deptID, "dept-id", 0, "所属单位 id")
	f.IntVar(&user.UserClass, "user-class", 0, "账号类别")
	cmd.MarkFlagRequired("user-id")
	cmd.MarkFlagRequired("password")
	return cmd
}

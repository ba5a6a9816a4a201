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

var ErrPoundNotFound = errors.New("地磅站不存在")

// PoundService 地磅站业务接口
type PoundService interface {
	List(ctx context.Context, page dto.PageQuery) ([]dto.PoundItem, int64, error)
	Create(ctx context.Context, req *dto.CreatePoundRequest) error
	Update(ctx context.Context, req *dto.UpdatePoundRequest) error
	Delete(ctx context.Context, id int64) error
}

type poundService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPoundService 创建 PoundService 实例
func NewPoundService(repo *repository.Repository, logger *zap.Logger) PoundService {
	return &poundService{repo: repo, logger: logger}
}

func (s *poundService) List(ctx context.Context, page dto.PageQuery) ([]dto.PoundItem, int64, error) {
	pounds, total, err := s.repo.Pound.List(ctx, page.Offset(), page.Length)
	if err != nil {
		s.logger.Error("查询地磅站失败", zap.Error(err))
		return nil, 0, err
	}
	items := make([]dto.PoundItem, 0, len(pounds))
	for i := range pounds {
		items = append(items, dto.NewPoundItem(&pounds[i]))
	}
	return items, total, nil
}

func (s *poundService) Create(ctx context.Context, req *dto.CreatePoundRequest) error {
	now := time.Now()
	p := &model.Pound{
		PoundNo:     req.PoundNo,
		CompName:    req.CompName,
		Comments:    req.Comments,
		DeptID:      dto.IDPtr(req.DeptID),
		ModifyTime:  &now,
		ModifyState: model.ModifyStateActive,
		UploadState: model.UploadStateUploaded,
	}
	if err := s.repo.Pound.Create(ctx, p); err != nil {
		s.logger.Error("创建地磅站失败", zap.Error(err))
		return err
	}
	return nil
}

func (s *poundService) Update(ctx context.Context, req *dto.UpdatePoundRequest) error {
	n, err := s.repo.Pound.Update(ctx, req.ID, map[string]interface{}{
		"pound_no":    req.PoundNo,
		"comp_name":   req.CompName,
		"comments":    req.Comments,
		"dept_id":     dto.IDPtr(req.DeptID),
		"modify_time": time.Now(),
	})
	if err != nil {
		s.logger.Error("更新地磅站失败", zap.Int64("id", req.ID), zap.Error(err))
		return err
	}
	if n == 0 {
		return ErrPoundNotFound
	}
	return nil
}

func (s *poundService) Delete(ctx context.Context, id int64) error {
	n, err := s.repo.Pound.Delete(ctx, id)
	if err != nil {
		s.logger.Error("删除地磅站失败", zap.Int64("id", id), zap.Error(err))
		return err
	}
	if n == 0 {
		return ErrPoundNotFound
	}
	return nil
}

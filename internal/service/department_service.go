package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/rensongqi/sanic-adminapi/internal/dto"
	"github.com/rensongqi/sanic-adminapi/internal/model"
	"github.com/rensongqi/sanic-adminapi/internal/repository"
	"github.com/rensongqi/sanic-adminapi/pkg/forest"
)

// ── 单位模块业务错误 ──

var (
	ErrParentDeptNotFound = errors.New("上级单位不存在")
)

const defaultDepartmentCode = "DefaultNo"

// DepartmentService 单位业务接口
type DepartmentService interface {
	// Tree 单位树，成环的单位不进入树
	Tree(ctx context.Context) (*dto.DepartmentTree, error)
	Insert(ctx context.Context, req *dto.InsertDepartmentRequest) (*dto.DepartmentItem, error)
	Update(ctx context.Context, id int64, rec *dto.DepartmentRecord) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type departmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDepartmentService 创建 DepartmentService 实例
func NewDepartmentService(repo *repository.Repository, logger *zap.Logger) DepartmentService {
	return &departmentService{repo: repo, logger: logger}
}

// ────────────────────── Tree ──────────────────────

func (s *departmentService) Tree(ctx context.Context) (*dto.DepartmentTree, error) {
	depts, err := s.repo.Department.List(ctx)
	if err != nil {
		s.logger.Error("查询单位列表失败", zap.Error(err))
		return nil, err
	}

	items := make([]forest.Item, 0, len(depts))
	list := make([]dto.DepartmentItem, 0, len(depts))
	for i := range depts {
		items = append(items, forest.Item{ID: depts[i].ID, ParentID: depts[i].ParentDeptID, Name: depts[i].DepartmentName})
		list = append(list, dto.NewDepartmentItem(&depts[i]))
	}

	roots, cycles := forest.Build(items)
	if len(cycles) > 0 {
		s.logger.Warn("单位上下级关系存在环", zap.Int64s("dept_ids", cycles))
	}

	tree := &dto.DepartmentTree{
		DeptRelations: map[string]interface{}{},
		DeptForest:    roots,
		Departments:   list,
	}
	if len(roots) > 0 {
		tree.DeptRelations = roots[0]
	}
	return tree, nil
}

// ────────────────────── Insert ──────────────────────

func (s *departmentService) Insert(ctx context.Context, req *dto.InsertDepartmentRequest) (*dto.DepartmentItem, error) {
	if req.OldRecordID != 0 {
		if _, err := s.repo.Department.GetByID(ctx, req.OldRecordID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrParentDeptNotFound
			}
			s.logger.Error("查询上级单位失败", zap.Int64("id", req.OldRecordID), zap.Error(err))
			return nil, err
		}
	}

	rec := req.NewRecord
	now := time.Now()
	dept := &model.Department{
		DepartmentCode: defaultDepartmentCode,
		ParentDeptID:   dto.IDPtr(req.OldRecordID),
		CreateTime:     &now,
		UploadState:    model.UploadStateUploaded,
	}
	if rec.DepartmentName != nil {
		dept.DepartmentName = *rec.DepartmentName
	}
	if rec.DepartmentInfo != nil {
		dept.DepartmentInfo = *rec.DepartmentInfo
	}
	if rec.Used != nil {
		dept.Used = *rec.Used
	}
	if rec.UnitKind != nil {
		dept.UnitKind = *rec.UnitKind
	}
	if rec.Stat != nil {
		dept.Stat = *rec.Stat
	}

	if err := s.repo.Department.Create(ctx, dept); err != nil {
		s.logger.Error("创建单位失败", zap.Error(err))
		return nil, err
	}
	item := dto.NewDepartmentItem(dept)
	return &item, nil
}

// ────────────────────── Update / Delete ──────────────────────

func (s *departmentService) Update(ctx context.Context, id int64, rec *dto.DepartmentRecord) (int64, error) {
	n, err := s.repo.Department.Update(ctx, id, rec.Updates())
	if err != nil {
		s.logger.Error("更新单位失败", zap.Int64("id", id), zap.Error(err))
		return 0, err
	}
	return n, nil
}

func (s *departmentService) Delete(ctx context.Context, id int64) (int64, error) {
	n, err := s.repo.Department.Delete(ctx, id)
	if err != nil {
		s.logger.Error("删除单位失败", zap.Int64("id", id), zap.Error(err))
		return 0, err
	}
	return n, nil
}

package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/rensongqi/sanic-adminapi/config"
	"github.com/rensongqi/sanic-adminapi/internal/dto"
	"github.com/rensongqi/sanic-adminapi/internal/model"
	"github.com/rensongqi/sanic-adminapi/internal/repository"
	"github.com/rensongqi/sanic-adminapi/internal/session"
	"github.com/rensongqi/sanic-adminapi/pkg/captcha"
)

// LoginValidity 登录有效期，每次校验通过后顺延
const LoginValidity = 24 * time.Hour

var (
	ErrCaptchaMismatch    = errors.New("验证码错误")
	ErrLoginParamMissing  = errors.New("账号或密码为空")
	ErrDuplicateAccount   = errors.New("存在重复用户id")
	ErrInvalidCredentials = errors.New("账户或密码错误")
	ErrAccountMissing     = errors.New("用户id丢失")
)

// SessionExpiredError 登录已过期
type SessionExpiredError struct {
	ExpTime time.Time
}

func (e *SessionExpiredError) Error() string {
	return "会话已过期: " + e.ExpTime.Format(dto.DateTimeLayout)
}

// AuthService 登录与会话校验
// 会话由中间件加载，业务层只读写 *session.Session，持久化由中间件完成
type AuthService interface {
	// NewCaptcha 生成验证码写入会话，返回图片 data URI
	NewCaptcha(sess *session.Session) (string, error)
	VerifyCaptcha(sess *session.Session, code string) error
	// Login 验证码每次尝试后即作废
	Login(ctx context.Context, sess *session.Session, req *dto.LoginRequest) error
	// CheckSession 校验登录状态，通过后顺延有效期
	CheckSession(ctx context.Context, sess *session.Session) (*dto.LoginInfo, error)
	Logout(sess *session.Session)
	// CreateUser 新建后台账号，密码以 bcrypt 存储
	CreateUser(ctx context.Context, user *model.WebUser, password string) error
}

type authService struct {
	cfg    *config.AuthConfig
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(cfg *config.AuthConfig, repo *repository.Repository, logger *zap.Logger) AuthService {
	return &authService{cfg: cfg, repo: repo, logger: logger, now: time.Now}
}

// ────────────────────── 验证码 ──────────────────────

func (s *authService) NewCaptcha(sess *session.Session) (string, error) {
	c, err := captcha.Generate()
	if err != nil {
		s.logger.Error("生成验证码失败", zap.Error(err))
		return "", err
	}
	sess.SetCode(c.Code)
	return c.Img, nil
}

func (s *authService) VerifyCaptcha(sess *session.Session, code string) error {
	if !codeMatches(code, sess.Code()) {
		return ErrCaptchaMismatch
	}
	return nil
}

func codeMatches(code, expected string) bool {
	if code == "" || expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(code), []byte(expected)) == 1
}

// ────────────────────── 登录 ──────────────────────

func (s *authService) Login(ctx context.Context, sess *session.Session, req *dto.LoginRequest) error {
	// 1. 验证码
	if !codeMatches(req.Code, sess.TakeCode()) {
		return ErrCaptchaMismatch
	}
	if req.Username == "" || req.Password == "" {
		return ErrLoginParamMissing
	}

	// 2. 查询账号
	user, err := s.findUser(ctx, req.Username)
	if err != nil {
		return err
	}

	// 3. 校验密码
	if !s.passwordMatches(user, req.Password) {
		return ErrInvalidCredentials
	}

	sess.Rotate()
	sess.SetLogin(user.UserID, s.now().Add(LoginValidity))
	s.logger.Info("用户登录", zap.String("account", user.UserID))
	return nil
}

// findUser 按账号查找唯一用户
func (s *authService) findUser(ctx context.Context, account string) (*model.WebUser, error) {
	users, err := s.repo.User.FindWebUsers(ctx, account, 2)
	if err != nil {
		s.logger.Error("查询用户失败", zap.String("account", account), zap.Error(err))
		return nil, err
	}
	switch len(users) {
	case 0:
		return nil, ErrInvalidCredentials
	case 1:
		return &users[0], nil
	default:
		return nil, ErrDuplicateAccount
	}
}

func (s *authService) passwordMatches(user *model.WebUser, password string) bool {
	if isBcryptHash(user.Password) {
		return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil
	}
	if !s.cfg.AllowLegacyPlaintext {
		return false
	}
	s.logger.Warn("账号仍使用明文密码", zap.String("account", user.UserID))
	return subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) == 1
}

func isBcryptHash(s string) bool {
	return len(s) == 60 && (strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$"))
}

// ────────────────────── 会话校验 ──────────────────────

func (s *authService) CheckSession(ctx context.Context, sess *session.Session) (*dto.LoginInfo, error) {
	account := sess.LoginAccount()
	if account == "" {
		return nil, ErrAccountMissing
	}
	if _, err := s.findUser(ctx, account); err != nil {
		return nil, err
	}

	now := s.now()
	exp := sess.ExpTime()
	if now.After(exp) {
		return nil, &SessionExpiredError{ExpTime: exp}
	}

	exp = now.Add(LoginValidity)
	sess.SetExpTime(exp)
	return &dto.LoginInfo{LoginAccount: account, ExpTime: exp.Format(dto.DateTimeLayout)}, nil
}

func (s *authService) Logout(sess *session.Session) {
	if account := sess.LoginAccount(); account != "" {
		s.logger.Info("用户退出登录", zap.String("account", account))
	}
	sess.Clear()
}

// ────────────────────── 账号 ──────────────────────

func (s *authService) CreateUser(ctx context.Context, user *model.WebUser, password string) error {
	if user.UserID == "" || password == "" {
		return ErrLoginParamMissing
	}
	existing, err := s.repo.User.FindWebUsers(ctx, user.UserID, 1)
	if err != nil {
		s.logger.Error("查询用户失败", zap.String("account", user.UserID), zap.Error(err))
		return err
	}
	if len(existing) > 0 {
		return ErrDuplicateAccount
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hash)
	if err := s.repo.User.CreateWebUser(ctx, user); err != nil {
		s.logger.Error("创建用户失败", zap.String("account", user.UserID), zap.Error(err))
		return err
	}
	return nil
}

// Package session 提供服务端会话：Cookie 中只携带签名令牌，数据存放在 Store
package session

import (
	"context"
	"errors"
	"time"

	"github.com/rensongqi/sanic-adminapi/pkg/jwt"
)

// ErrNotFound 会话不存在或已过期
var ErrNotFound = errors.New("会话不存在")

// Data 会话内容
// Code 为最近一次下发的验证码；ExpTime 为登录有效期（unix 秒）
type Data struct {
	Code         string  `json:"code,omitempty"`
	LoginAccount string  `json:"login_account,omitempty"`
	ExpTime      float64 `json:"exp_time,omitempty"`
}

// Store 会话存储
type Store interface {
	Load(ctx context.Context, sid string) (*Data, error)
	Save(ctx context.Context, sid string, data *Data, ttl time.Duration) error
	Delete(ctx context.Context, sid string) error
}

// 请求上下文中的键
const (
	ContextKey      = "session"
	InvalidTokenKey = "session_token_invalid"
	LoginAccountKey = "login_account"
)

// Session 单次请求持有的会话
type Session struct {
	ID       string
	prevID   string
	onRotate func(*Session)
	data     Data
	modified bool
	cleared  bool
	isNew    bool
}

// New 创建会话
func New(id string, data *Data) *Session {
	s := &Session{ID: id}
	if data != nil {
		s.data = *data
	}
	return s
}

// IsNew 会话是否为本次请求新建
func (s *Session) IsNew() bool { return s.isNew }

// Data 返回会话内容副本
func (s *Session) Data() Data { return s.data }

// Modified 本次请求是否修改过会话
func (s *Session) Modified() bool { return s.modified }

// Cleared 本次请求是否清空了会话
func (s *Session) Cleared() bool { return s.cleared }

// SetCode 写入验证码
func (s *Session) SetCode(code string) {
	s.data.Code = code
	s.modified = true
}

// Code 当前验证码
func (s *Session) Code() string { return s.data.Code }

// TakeCode 取出并作废验证码
func (s *Session) TakeCode() string {
	code := s.data.Code
	if code != "" {
		s.data.Code = ""
		s.modified = true
	}
	return code
}

// LoginAccount 登录账号，未登录为空
func (s *Session) LoginAccount() string { return s.data.LoginAccount }

// ExpTime 登录有效期
func (s *Session) ExpTime() time.Time {
	if s.data.ExpTime == 0 {
		return time.Time{}
	}
	sec := int64(s.data.ExpTime)
	nsec := int64((s.data.ExpTime - float64(sec)) * 1e9)
	return time.Unix(sec, nsec)
}

// SetLogin 记录登录账号与有效期
func (s *Session) SetLogin(account string, exp time.Time) {
	s.data.LoginAccount = account
	s.SetExpTime(exp)
}

// SetExpTime 更新登录有效期
func (s *Session) SetExpTime(exp time.Time) {
	s.data.ExpTime = float64(exp.UnixNano()) / 1e9
	s.modified = true
}

// Rotate 换发新的会话 id，保留会话内容；旧 id 的数据在保存时删除
// 登录成功后调用，避免登录前的 sid 被沿用
func (s *Session) Rotate() {
	if s.prevID == "" {
		s.prevID = s.ID
	}
	s.ID = jwt.NewSessionID()
	s.modified = true
	if s.onRotate != nil {
		s.onRotate(s)
	}
}

// PrevID 轮换前的会话 id，未轮换时为空
func (s *Session) PrevID() string { return s.prevID }

// OnRotate 注册 id 轮换回调，中间件据此重新签发 Cookie
func (s *Session) OnRotate(fn func(*Session)) { s.onRotate = fn }

// Clear 清空会话
func (s *Session) Clear() {
	s.data = Data{}
	s.modified = true
	s.cleared = true
}

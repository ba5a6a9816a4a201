package session

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rensongqi/sanic-adminapi/config"
	"github.com/rensongqi/sanic-adminapi/pkg/jwt"
)

// Manager 会话生命周期：令牌解析、存储读写、Cookie 构造
type Manager struct {
	store  Store
	tokens *jwt.Manager
	cfg    config.SessionConfig
	logger *zap.Logger
}

// NewManager 创建会话管理器
func NewManager(store Store, tokens *jwt.Manager, cfg *config.SessionConfig, logger *zap.Logger) *Manager {
	return &Manager{store: store, tokens: tokens, cfg: *cfg, logger: logger}
}

// CookieName Cookie 名
func (m *Manager) CookieName() string { return m.cfg.CookieName }

// TTL 会话存储有效期
func (m *Manager) TTL() time.Duration { return m.cfg.TTL }

// Load 由 Cookie 令牌恢复会话
// 令牌为空返回新会话；令牌无法通过校验时同样返回新会话，并将 invalid 置为 true
func (m *Manager) Load(ctx context.Context, token string) (s *Session, invalid bool) {
	if token == "" {
		return m.fresh(), false
	}

	sid, err := m.tokens.Parse(token)
	if err != nil {
		return m.fresh(), true
	}

	data, err := m.store.Load(ctx, sid)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			m.logger.Warn("读取会话失败", zap.String("sid", sid), zap.Error(err))
		}
		// 令牌合法但数据已过期，沿用原 sid
		return &Session{ID: sid}, false
	}
	return New(sid, data), false
}

func (m *Manager) fresh() *Session {
	return &Session{ID: jwt.NewSessionID(), isNew: true}
}

// Save 持久化本次请求对会话的修改
func (m *Manager) Save(ctx context.Context, s *Session) error {
	if !s.Modified() {
		return nil
	}
	if prev := s.PrevID(); prev != "" && prev != s.ID {
		if err := m.store.Delete(ctx, prev); err != nil {
			return err
		}
	}
	if s.Cleared() && s.data == (Data{}) {
		return m.store.Delete(ctx, s.ID)
	}
	d := s.Data()
	return m.store.Save(ctx, s.ID, &d, m.cfg.TTL)
}

// Cookie 为会话签发令牌并构造 Cookie
func (m *Manager) Cookie(s *Session) (*http.Cookie, error) {
	token, err := m.tokens.Generate(s.ID)
	if err != nil {
		return nil, err
	}
	return &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    token,
		Path:     "/",
		Domain:   m.cfg.Cookie.Domain,
		MaxAge:   int(m.cfg.TTL / time.Second),
		Secure:   m.cfg.Cookie.Secure,
		HttpOnly: m.cfg.Cookie.HTTPOnly,
		SameSite: sameSite(m.cfg.Cookie.SameSite),
	}, nil
}

func sameSite(v string) http.SameSite {
	switch strings.ToLower(v) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	case "lax":
		return http.SameSiteLaxMode
	default:
		return http.SameSiteDefaultMode
	}
}

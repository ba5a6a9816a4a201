package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rensongqi/sanic-adminapi/internal/session"
)

// Session 会话加载与持久化
// 令牌只编码 sid，在处理器写出响应前即可签发 Cookie；会话数据在处理结束后保存
func Session(mgr *session.Manager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(mgr.CookieName())
		s, invalid := mgr.Load(c.Request.Context(), token)
		c.Set(session.ContextKey, s)
		if invalid {
			c.Set(session.InvalidTokenKey, true)
		}

		issue := func(s *session.Session) {
			cookie, err := mgr.Cookie(s)
			if err != nil {
				logger.Error("签发会话令牌失败", zap.Error(err))
				return
			}
			replaceCookie(c.Writer.Header(), cookie)
		}
		issue(s)
		// sid 轮换发生在处理器写响应之前，覆盖已签发的 Cookie
		s.OnRotate(issue)

		c.Next()

		if err := mgr.Save(c.Request.Context(), s); err != nil {
			logger.Error("保存会话失败", zap.String("sid", s.ID), zap.Error(err))
		}
	}
}

// replaceCookie 去掉同名的 Set-Cookie 后写入新 Cookie
func replaceCookie(h http.Header, cookie *http.Cookie) {
	prefix := cookie.Name + "="
	var kept []string
	for _, v := range h.Values("Set-Cookie") {
		if !strings.HasPrefix(v, prefix) {
			kept = append(kept, v)
		}
	}
	h.Del("Set-Cookie")
	for _, v := range kept {
		h.Add("Set-Cookie", v)
	}
	if v := cookie.String(); v != "" {
		h.Add("Set-Cookie", v)
	}
}

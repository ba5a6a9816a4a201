package middleware

import (
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rensongqi/sanic-adminapi/internal/model"
	"github.com/rensongqi/sanic-adminapi/internal/service"
	"github.com/rensongqi/sanic-adminapi/internal/session"
	apperrors "github.com/rensongqi/sanic-adminapi/pkg/errors"
	"github.com/rensongqi/sanic-adminapi/pkg/response"
)

const (
	auditPrefix     = "/admin_api/"
	auditInfoMaxLen = 255
)

// 只读接口的路由名前缀，不记审计
var readOnlyActions = []string{"get", "read", "classify", "export"}

// Audit 管理接口写操作成功后追加一条操作日志
// 日志类型为路由分组名，日志内容为方法、路径与查询串
func Audit(logSvc service.OperationLogService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		group, action, ok := splitAdminPath(c.Request.URL.Path)
		if !ok || isReadOnly(action) {
			return
		}
		if c.GetString(response.CodeKey) != apperrors.Success.Code {
			return
		}

		info := c.Request.Method + " " + c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			info += "?" + q
		}
		entry := &model.OperationLog{
			Account: auditAccount(c),
			LogType: group,
			LogInfo: truncateRunes(info, auditInfoMaxLen),
		}
		if err := logSvc.Record(c.Request.Context(), entry); err != nil {
			logger.Warn("操作日志记录失败", zap.String("path", c.Request.URL.Path), zap.Error(err))
		}
	}
}

// splitAdminPath /admin_api/<group>/.../<action>
func splitAdminPath(path string) (group, action string, ok bool) {
	if !strings.HasPrefix(path, auditPrefix) {
		return "", "", false
	}
	parts := strings.Split(strings.Trim(strings.TrimPrefix(path, auditPrefix), "/"), "/")
	if len(parts) < 2 {
		return "", "", false
	}
	return parts[0], parts[len(parts)-1], true
}

func isReadOnly(action string) bool {
	for _, p := range readOnlyActions {
		if strings.HasPrefix(action, p) {
			return true
		}
	}
	return false
}

func auditAccount(c *gin.Context) string {
	if v := c.GetString(session.LoginAccountKey); v != "" {
		return v
	}
	if v, ok := c.Get(session.ContextKey); ok {
		if s, ok := v.(*session.Session); ok {
			return s.LoginAccount()
		}
	}
	return ""
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

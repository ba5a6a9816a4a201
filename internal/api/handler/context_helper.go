package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rensongqi/sanic-adminapi/config"
	"github.com/rensongqi/sanic-adminapi/internal/dto"
	"github.com/rensongqi/sanic-adminapi/internal/session"
	"github.com/rensongqi/sanic-adminapi/pkg/errors"
	"github.com/rensongqi/sanic-adminapi/pkg/response"
)

// 更新接口的 action 取值
const (
	actionUpdate = "update"
	actionDelete = "delete"
	actionScrap  = "scrap"
)

// MustGetSession 取出会话中间件注入的会话
// 未经过会话中间件时返回服务异常，调用方应在 ok=false 时直接 return
func MustGetSession(c *gin.Context) (*session.Session, bool) {
	v, exists := c.Get(session.ContextKey)
	if !exists {
		response.Fail(c, errors.ServerError, "")
		return nil, false
	}
	s, ok := v.(*session.Session)
	if !ok || s == nil {
		response.Fail(c, errors.ServerError, "")
		return nil, false
	}
	return s, true
}

// LoginAccount 当前登录账号，未登录时为空串
func LoginAccount(c *gin.Context) string {
	if v := c.GetString(session.LoginAccountKey); v != "" {
		return v
	}
	if s, ok := c.Get(session.ContextKey); ok {
		if sess, ok := s.(*session.Session); ok {
			return sess.LoginAccount()
		}
	}
	return ""
}

// bindJSON 严格解析请求体，未知字段按参数无效处理
func bindJSON(c *gin.Context, v interface{}) bool {
	if err := dto.DecodeStrict(c.Request.Body, v); err != nil {
		response.InvalidParameter(c, nil, "")
		return false
	}
	return true
}

// queryID 读取 ?id=，缺失或非法按参数无效处理
func queryID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil || id <= 0 {
		response.InvalidParameter(c, gin.H{"id": c.Query("id")}, "")
		return 0, false
	}
	return id, true
}

// ── 分页 ──

// pager 分页参数校验，列表接口共用
type pager struct {
	maxLength int
	maxRows   int
}

func newPager(cfg *config.BusinessConfig) pager {
	return pager{maxLength: cfg.MaxPageLength, maxRows: cfg.MaxResultRows}
}

// page 解析 page/length，越界时写出响应
func (p pager) page(c *gin.Context) (dto.PageQuery, bool) {
	q := dto.ParsePageQuery(c.Query("page"), c.Query("length"))
	if !q.Valid(p.maxLength) {
		response.PageLengthInvalid(c, q.Length)
		return q, false
	}
	return q, true
}

// tooMany 结果行数超限时写出响应
func (p pager) tooMany(c *gin.Context, rows int, q dto.PageQuery) bool {
	if rows > p.maxRows {
		response.TooManyResults(c, q.Length)
		return true
	}
	return false
}

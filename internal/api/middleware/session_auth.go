package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/rensongqi/sanic-adminapi/internal/dto"
	"github.com/rensongqi/sanic-adminapi/internal/service"
	"github.com/rensongqi/sanic-adminapi/internal/session"
	apperrors "github.com/rensongqi/sanic-adminapi/pkg/errors"
	"github.com/rensongqi/sanic-adminapi/pkg/response"
)

// SessionAuth 登录态校验，规则同 /login/info，成功时顺延有效期并放行
// 须挂在 Session 之后
func SessionAuth(authSvc service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetBool(session.InvalidTokenKey) {
			response.AbortFail(c, apperrors.FailToken, "")
			return
		}
		v, _ := c.Get(session.ContextKey)
		sess, ok := v.(*session.Session)
		if !ok || sess == nil {
			response.AbortFail(c, apperrors.ServerError, "")
			return
		}

		info, err := authSvc.CheckSession(c.Request.Context(), sess)
		if err != nil {
			abortAuth(c, err)
			return
		}

		c.Set(session.LoginAccountKey, info.LoginAccount)
		c.Next()
	}
}

func abortAuth(c *gin.Context, err error) {
	var expired *service.SessionExpiredError
	switch {
	case errors.Is(err, service.ErrAccountMissing):
		response.AbortWithCode(c, apperrors.InvalidParameter, gin.H{}, err.Error())
	case errors.Is(err, service.ErrDuplicateAccount):
		response.AbortWithCode(c, apperrors.AccountOrPassWordErr, nil, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		response.AbortWithCode(c, apperrors.AccountOrPassWordErr, nil, "")
	case errors.As(err, &expired):
		response.AbortWithCode(c, apperrors.SessionExpired, gin.H{"exp_time": expired.ExpTime.Format(dto.DateTimeLayout)}, "")
	default:
		response.AbortFail(c, apperrors.ServerError, "")
	}
}

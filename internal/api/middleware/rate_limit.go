package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rensongqi/sanic-adminapi/pkg/errors"
	"github.com/rensongqi/sanic-adminapi/pkg/redis"
	"github.com/rensongqi/sanic-adminapi/pkg/response"
)

// RateLimit 按客户端 IP 与路由的固定窗口限流
// rdb 为 nil、limit 不大于 0 或 Redis 出错时放行
func RateLimit(rdb *redis.Client, limit int, window time.Duration, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || limit <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("%s:%s", c.FullPath(), c.ClientIP())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			logger.Warn("限流检查失败，放行", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}
		if !allowed {
			response.FailStatus(c, http.StatusTooManyRequests, errors.Fail, "请求过于频繁，请稍后再试")
			c.Abort()
			return
		}

		c.Next()
	}
}

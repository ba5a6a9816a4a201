package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/rensongqi/sanic-adminapi/config"
)

// CORS 跨域中间件，前端携带会话 Cookie，需允许凭证
// 未配置来源时回显请求来源
func CORS(cfg *config.CORSConfig) gin.HandlerFunc {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Requested-With", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}
	if len(cfg.AllowHeaders) > 0 {
		c.AllowHeaders = cfg.AllowHeaders
	}
	for _, o := range cfg.AllowOrigins {
		c.AllowOrigins = append(c.AllowOrigins, strings.TrimRight(o, "/"))
	}
	if len(c.AllowOrigins) == 0 {
		c.AllowOriginFunc = func(string) bool { return true }
	}
	return cors.New(c)
}

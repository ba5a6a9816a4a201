package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// SecurityHeaders 安全响应头
// 静态资源目录放行内联脚本与 data: 图片，接口只返回 JSON 与附件
func SecurityHeaders(staticPrefix string) gin.HandlerFunc {
	const (
		apiCSP    = "default-src 'none'; frame-ancestors 'none'"
		staticCSP = "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data:"
	)
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		if staticPrefix != "" && strings.HasPrefix(c.Request.URL.Path, staticPrefix) {
			h.Set("Content-Security-Policy", staticCSP)
		} else {
			h.Set("Content-Security-Policy", apiCSP)
		}
		c.Next()
	}
}

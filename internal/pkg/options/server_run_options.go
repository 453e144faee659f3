package options

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maxiaolu1981/cretem/nexuscore/component-base/util/sets"
	"github.com/maxiaolu1981/cretem/nexuscore/component-base/validation/field"
	"github.com/spf13/pflag"
)

type ServerRunOptions struct {
	Mode            string        `json:"mode"            mapstructure:"mode"`
	Healthz         bool          `json:"healthz"         mapstructure:"healthz"`
	Middlewares     []string      `json:"middlewares"     mapstructure:"middlewares"`
	EnableProfiling bool          `json:"enableProfiling" mapstructure:"enableProfiling"`
	EnableMetrics   bool          `json:"enableMetrics"   mapstructure:"enableMetrics"`
	CtxTimeout      time.Duration `json:"ctxtimeout"      mapstructure:"ctxtimeout"`
	Env             string        `json:"env"             mapstructure:"env"`
	// 写操作限流阈值（次/秒），0 表示不限流
	WriteRateLimit    int  `json:"writeRateLimit"    mapstructure:"writeRateLimit"`
	EnableRateLimiter bool `json:"enableRateLimiter" mapstructure:"enableRateLimiter"`
}

func NewServerRunOptions() *ServerRunOptions {
	return &ServerRunOptions{
		Mode:              gin.ReleaseMode,
		Healthz:           true,
		Middlewares:       []string{},
		EnableProfiling:   true,
		EnableMetrics:     true,
		CtxTimeout:        30 * time.Second,
		Env:               "development",
		WriteRateLimit:    0,
		EnableRateLimiter: false,
	}
}

func (s *ServerRunOptions) Complete() {
	if s.Mode == "" {
		s.Mode = gin.ReleaseMode
	} else {
		set := sets.NewString(gin.DebugMode, gin.ReleaseMode, gin.TestMode)
		if !set.Has(s.Mode) {
			s.Mode = gin.ReleaseMode
		}
	}

	if s.Middlewares == nil {
		s.Middlewares = []string{}
	}

	if s.CtxTimeout <= 0 {
		s.CtxTimeout = 30 * time.Second
	}
	if s.Env == "" {
		s.Env = "development"
	}
	if s.WriteRateLimit < 0 {
		s.WriteRateLimit = 0
	}
}

func (s *ServerRunOptions) Validate() []error {
	var errs = field.ErrorList{}
	var path = field.NewPath("server")

	if s.Mode != "" {
		set := sets.NewString(gin.DebugMode, gin.ReleaseMode, gin.TestMode)
		if !set.Has(s.Mode) {
			errs = append(errs, field.Invalid(path.Child("mode"), s.Mode, "无效的mode模式"))
		}
	}
	if s.Env != "" {
		set := sets.NewString("development", "release", "test")
		if !set.Has(s.Env) {
			errs = append(errs, field.Invalid(path.Child("env"), s.Env, "无效的env模式"))
		}
	}
	if s.WriteRateLimit < 0 {
		errs = append(errs, field.Invalid(path.Child("writeRateLimit"), s.WriteRateLimit, "限流数不能小于0"))
	}

	agg := errs.ToAggregate()
	if agg == nil {
		return nil
	}
	return agg.Errors()
}

func (s *ServerRunOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&s.Mode, "server.mode", "M", s.Mode, ""+
		"指定服务器运行模式。支持的服务器模式：debug(调试)、test(测试)、release(发布)。")

	fs.BoolVarP(&s.Healthz, "server.healthz", "z", s.Healthz, ""+
		"启用健康检查并安装 /healthz 路由。")

	fs.StringSliceVarP(&s.Middlewares, "server.middlewares", "w", s.Middlewares, ""+
		"服务器允许的中间件列表，逗号分隔。如果列表为空，将使用默认中间件。")

	fs.BoolVar(&s.EnableProfiling, "server.enable-profiling", s.EnableProfiling, ""+
		"启用 /debug/pprof 性能分析路由。")

	fs.BoolVar(&s.EnableMetrics, "server.enable-metrics", s.EnableMetrics, ""+
		"启用 /metrics 指标路由。")

	fs.DurationVar(&s.CtxTimeout, "server.ctxtimeout", s.CtxTimeout, ""+
		"单个请求的处理超时时间。")

	fs.StringVar(&s.Env, "server.env", s.Env, ""+
		"环境模式包括:development,release,test")

	fs.IntVar(&s.WriteRateLimit, "server.write-rate-limit", s.WriteRateLimit, ""+
		"写操作限流阈值（次/秒），0 表示不限流")

	fs.BoolVar(&s.EnableRateLimiter, "server.enable-rate-limiter", s.EnableRateLimiter, ""+
		"是否启用写操作限流器")
}

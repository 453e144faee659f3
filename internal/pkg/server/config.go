package server

import (
	"net"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// InsecureServingInfo 非安全服务（HTTP）的监听配置。
type InsecureServingInfo struct {
	BindAddress string
	BindPort    int
}

// Address 返回 host:port 形式的监听地址。
func (i *InsecureServingInfo) Address() string {
	return net.JoinHostPort(i.BindAddress, strconv.Itoa(i.BindPort))
}

// Config 是 GenericAPIServer 的运行配置。
type Config struct {
	InsecureServingInfo *InsecureServingInfo
	Mode                string
	EnableProfiling     bool
	EnableMetrics       bool
	Middlewares         []string
	Healthz             bool
	ShutdownTimeout     time.Duration
}

func NewConfig() *Config {
	return &Config{
		Mode:            gin.ReleaseMode,
		Healthz:         true,
		EnableProfiling: true,
		EnableMetrics:   true,
		Middlewares:     []string{},
		ShutdownTimeout: 10 * time.Second,
	}
}

type CompleteConfig struct {
	*Config
}

// Complete 补全配置并返回可构建服务器的 CompleteConfig。
func (c *Config) Complete() *CompleteConfig {
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
	return &CompleteConfig{c}
}

// New 从完整配置构建 GenericAPIServer。
func (c *CompleteConfig) New() (*GenericAPIServer, error) {
	gin.SetMode(c.Mode)

	s := &GenericAPIServer{
		middlewares:         c.Middlewares,
		healthz:             c.Healthz,
		enableMetrics:       c.EnableMetrics,
		enableProfiling:     c.EnableProfiling,
		insecureServingInfo: c.InsecureServingInfo,
		shutdownTimeout:     c.ShutdownTimeout,
		Engine:              gin.New(),
	}

	initGenericAPIServer(s)

	return s, nil
}

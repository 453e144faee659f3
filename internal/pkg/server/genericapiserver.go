// Package server 实现基于 Gin 的通用 API 服务器：健康检查（/healthz）、
// 版本查询（/version）、pprof、Prometheus 指标，以及优雅启动与关闭。
package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/maxiaolu1981/cretem/nexuscore/component-base/version"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/core"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/middleware"
	"github.com/maxiaolu1981/cretem/shop-apiserver/pkg/log"
)

// GenericAPIServer 包含 API 服务器的核心状态，基于 Gin 框架扩展。
type GenericAPIServer struct {
	middlewares []string

	insecureServingInfo *InsecureServingInfo
	shutdownTimeout     time.Duration

	*gin.Engine
	healthz         bool
	enableMetrics   bool
	enableProfiling bool

	insecureServer *http.Server
}

func initGenericAPIServer(s *GenericAPIServer) {
	s.Setup()
	s.InstallMiddlewares()
	s.InstallAPIs()
}

// InstallAPIs 注册通用 API 接口（健康检查、版本、指标等）。
func (s *GenericAPIServer) InstallAPIs() {
	if s.healthz {
		s.GET("/healthz", func(c *gin.Context) {
			core.WriteResponse(c, nil, map[string]string{"status": "ok"})
		})
	}

	if s.enableMetrics {
		prometheus := ginprometheus.NewPrometheus("gin")
		prometheus.Use(s.Engine)
	}

	if s.enableProfiling {
		pprof.Register(s.Engine)
	}

	s.GET("/version", func(c *gin.Context) {
		core.WriteResponse(c, nil, version.Get())
	})
}

// Setup 配置 Gin 引擎的基础参数（如路由日志格式）。
func (s *GenericAPIServer) Setup() {
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
		log.Infof("%-6s %-s --> %s (%d handlers)", httpMethod, absolutePath, handlerName, nuHandlers)
	}
}

// InstallMiddlewares 安装中间件（基础中间件 + 配置指定的中间件）。
func (s *GenericAPIServer) InstallMiddlewares() {
	s.Use(middleware.RequestID())
	s.Use(middleware.Context())

	for _, m := range s.middlewares {
		mw, ok := middleware.Middlewares[m]
		if !ok {
			log.Warnf("未找到中间件: %s", m)
			continue
		}

		log.Infof("安装中间件: %s", m)
		s.Use(mw)
	}
}

// Run 启动 HTTP 服务器（阻塞方法，直到服务终止）。
func (s *GenericAPIServer) Run() error {
	s.insecureServer = &http.Server{
		Addr:           s.insecureServingInfo.Address(),
		Handler:        s,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	var eg errgroup.Group

	eg.Go(func() error {
		log.Infof("开始监听 HTTP 请求，地址: %s", s.insecureServingInfo.Address())

		if err := s.insecureServer.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return err
		}

		log.Infof("HTTP 服务器已停止，地址: %s", s.insecureServingInfo.Address())
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if s.healthz {
		if err := s.ping(ctx); err != nil {
			return err
		}
	}

	return eg.Wait()
}

// Close 优雅关闭服务器（等待正在处理的请求完成后终止）。
func (s *GenericAPIServer) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if s.insecureServer == nil {
		return
	}

	if err := s.insecureServer.Shutdown(ctx); err != nil {
		log.Warnf("关闭 HTTP 服务器失败: %s", err.Error())
	}
}

// ping 通过访问 /healthz 确认服务器已正常启动。
func (s *GenericAPIServer) ping(ctx context.Context) error {
	address := s.insecureServingInfo.Address()
	url := fmt.Sprintf("http://%s/healthz", address)
	if strings.Contains(address, "0.0.0.0") {
		port := strings.Split(address, ":")[1]
		url = fmt.Sprintf("http://127.0.0.1:%s/healthz", port)
	}

	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}

		resp, err := http.DefaultClient.Do(req)
		if err == nil && resp.StatusCode == http.StatusOK {
			log.Infof("路由已成功部署")
			resp.Body.Close()
			return nil
		}

		log.Infof("等待路由启动，1 秒后重试...")
		time.Sleep(1 * time.Second)

		select {
		case <-ctx.Done():
			return fmt.Errorf("在指定时间内无法连接到 HTTP 服务器")
		default:
		}
	}
}

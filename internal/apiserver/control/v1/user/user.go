// Package user 实现用户资源的 HTTP 控制层：参数解析与校验、调用业务层、
// 统一响应输出。
package user

import (
	"time"

	srvv1 "github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/service/v1"
)

// UserController 处理 /v1/users 下的请求。
type UserController struct {
	srv srvv1.Service

	// 请求级超时，来自 server.ctx-timeout 配置
	timeout time.Duration
}

// NewUserController 构建用户控制器。
func NewUserController(srv srvv1.Service, timeout time.Duration) *UserController {
	return &UserController{srv: srv, timeout: timeout}
}

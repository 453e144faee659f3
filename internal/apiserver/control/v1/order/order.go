// Package order 实现订单资源的 HTTP 控制层。
package order

import (
	"time"

	srvv1 "github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/service/v1"
)

// OrderController 处理 /v1/orders 下的请求。
type OrderController struct {
	srv     srvv1.Service
	timeout time.Duration
}

// NewOrderController 构建订单控制器。
func NewOrderController(srv srvv1.Service, timeout time.Duration) *OrderController {
	return &OrderController{srv: srv, timeout: timeout}
}

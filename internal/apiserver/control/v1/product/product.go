// Package product 实现商品资源的 HTTP 控制层。
package product

import (
	"time"

	srvv1 "github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/service/v1"
)

// ProductController 处理 /v1/products 下的请求。
type ProductController struct {
	srv     srvv1.Service
	timeout time.Duration
}

// NewProductController 构建商品控制器。
func NewProductController(srv srvv1.Service, timeout time.Duration) *ProductController {
	return &ProductController{srv: srv, timeout: timeout}
}

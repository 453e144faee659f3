// Package address 实现收货地址的 HTTP 控制层。地址嵌套在用户之下：
// /v1/users/:id/addresses[/:addressID]。
package address

import (
	"time"

	srvv1 "github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/service/v1"
)

// AddressController 处理用户收货地址请求。
type AddressController struct {
	srv     srvv1.Service
	timeout time.Duration
}

// NewAddressController 构建地址控制器。
func NewAddressController(srv srvv1.Service, timeout time.Duration) *AddressController {
	return &AddressController{srv: srv, timeout: timeout}
}

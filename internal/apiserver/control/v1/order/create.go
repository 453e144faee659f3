package order

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"

	v1 "github.com/maxiaolu1981/cretem/shop-apiserver/api/shop/v1"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/control/v1/request"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/code"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/core"
	"github.com/maxiaolu1981/cretem/shop-apiserver/pkg/log"
)

// Create 处理 POST /v1/orders：引用的用户/地址/商品不存在时返回冲突。
func (o *OrderController) Create(c *gin.Context) {
	var req v1.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		core.WriteResponse(c, errors.WithCode(code.ErrBind, "请求体解析失败: %s", err.Error()), nil)
		return
	}

	ctx, cancel := request.Context(c, o.timeout)
	defer cancel()

	order, err := o.srv.Orders().Create(ctx, &req)
	if err != nil {
		core.WriteResponse(c, err, nil)
		return
	}

	log.L(c).Infow("订单创建完成", "id", order.ID, "userID", order.UserID)
	core.WriteCreated(c, fmt.Sprintf("/v1/orders/%d", order.ID), order)
}

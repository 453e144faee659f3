package order

import (
	"github.com/gin-gonic/gin"

	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/control/v1/request"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/core"
)

// Get 处理 GET /v1/orders/:id：返回订单及其商品行。
func (o *OrderController) Get(c *gin.Context) {
	id, err := request.ParseID(c, "id")
	if err != nil {
		core.WriteResponse(c, err, nil)
		return
	}

	ctx, cancel := request.Context(c, o.timeout)
	defer cancel()

	order, err := o.srv.Orders().Get(ctx, id)
	if err != nil {
		core.WriteResponse(c, err, nil)
		return
	}

	core.WriteResponse(c, nil, order)
}

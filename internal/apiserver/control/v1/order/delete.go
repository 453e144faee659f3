package order

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/control/v1/request"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/core"
)

// Delete 处理 DELETE /v1/orders/:id：连同商品行一起删除。
func (o *OrderController) Delete(c *gin.Context) {
	id, err := request.ParseID(c, "id")
	if err != nil {
		core.WriteResponse(c, err, nil)
		return
	}

	ctx, cancel := request.Context(c, o.timeout)
	defer cancel()

	if err := o.srv.Orders().Delete(ctx, id); err != nil {
		core.WriteResponse(c, err, nil)
		return
	}

	core.WriteDeleted(c, fmt.Sprintf("订单 %d 已删除", id))
}

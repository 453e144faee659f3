package product

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/control/v1/request"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/core"
)

// Delete 处理 DELETE /v1/products/:id。
func (p *ProductController) Delete(c *gin.Context) {
	id, err := request.ParseID(c, "id")
	if err != nil {
		core.WriteResponse(c, err, nil)
		return
	}

	ctx, cancel := request.Context(c, p.timeout)
	defer cancel()

	if err := p.srv.Products().Delete(ctx, id); err != nil {
		core.WriteResponse(c, err, nil)
		return
	}

	core.WriteDeleted(c, fmt.Sprintf("商品 %d 已删除", id))
}

package product

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"

	v1 "github.com/maxiaolu1981/cretem/shop-apiserver/api/shop/v1"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/control/v1/request"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/code"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/core"
)

// Create 处理 POST /v1/products。
func (p *ProductController) Create(c *gin.Context) {
	var req v1.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		core.WriteResponse(c, errors.WithCode(code.ErrBind, "请求体解析失败: %s", err.Error()), nil)
		return
	}

	ctx, cancel := request.Context(c, p.timeout)
	defer cancel()

	product, err := p.srv.Products().Create(ctx, &req)
	if err != nil {
		core.WriteResponse(c, err, nil)
		return
	}

	core.WriteCreated(c, fmt.Sprintf("/v1/products/%d", product.ID), product)
}

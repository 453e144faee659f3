package product

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"

	v1 "github.com/maxiaolu1981/cretem/shop-apiserver/api/shop/v1"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/control/v1/request"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/code"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/core"
)

// Update 处理 PATCH /v1/products/:id：部分更新。
func (p *ProductController) Update(c *gin.Context) {
	id, err := request.ParseID(c, "id")
	if err != nil {
		core.WriteResponse(c, err, nil)
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		core.WriteResponse(c, errors.WithCode(code.ErrBind, "读取请求体失败: %s", err.Error()), nil)
		return
	}
	if err := request.ForbidFields(body, "id", "metadata"); err != nil {
		core.WriteResponse(c, err, nil)
		return
	}

	var req v1.UpdateProductRequest
	if err := binding.JSON.BindBody(body, &req); err != nil {
		core.WriteResponse(c, errors.WithCode(code.ErrBind, "请求体解析失败: %s", err.Error()), nil)
		return
	}

	ctx, cancel := request.Context(c, p.timeout)
	defer cancel()

	product, err := p.srv.Products().Update(ctx, id, &req)
	if err != nil {
		core.WriteResponse(c, err, nil)
		return
	}

	core.WriteResponse(c, nil, product)
}

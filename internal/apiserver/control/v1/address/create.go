package address

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"

	v1 "github.com/maxiaolu1981/cretem/shop-apiserver/api/shop/v1"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/control/v1/request"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/code"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/core"
)

// Create 处理 POST /v1/users/:id/addresses：归属用户不存在时返回 404。
func (a *AddressController) Create(c *gin.Context) {
	userID, err := request.ParseID(c, "id")
	if err != nil {
		core.WriteResponse(c, err, nil)
		return
	}

	var req v1.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		core.WriteResponse(c, errors.WithCode(code.ErrBind, "请求体解析失败: %s", err.Error()), nil)
		return
	}

	ctx, cancel := request.Context(c, a.timeout)
	defer cancel()

	address, err := a.srv.Addresses().Create(ctx, userID, &req)
	if err != nil {
		core.WriteResponse(c, err, nil)
		return
	}

	core.WriteCreated(c, fmt.Sprintf("/v1/users/%d/addresses/%d", userID, address.ID), address)
}

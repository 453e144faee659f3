package address

import (
	"github.com/gin-gonic/gin"

	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/control/v1/request"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/core"
)

// List 处理 GET /v1/users/:id/addresses：按归属用户分页列出。
func (a *AddressController) List(c *gin.Context) {
	userID, err := request.ParseID(c, "id")
	if err != nil {
		core.WriteResponse(c, err, nil)
		return
	}

	opts, err := request.Pagination(c)
	if err != nil {
		core.WriteResponse(c, err, nil)
		return
	}

	ctx, cancel := request.Context(c, a.timeout)
	defer cancel()

	addresses, err := a.srv.Addresses().List(ctx, userID, opts)
	if err != nil {
		core.WriteResponse(c, err, nil)
		return
	}

	core.WriteResponse(c, nil, addresses)
}

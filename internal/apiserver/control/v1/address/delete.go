package address

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/control/v1/request"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/core"
)

// Delete 处理 DELETE /v1/users/:id/addresses/:addressID。
func (a *AddressController) Delete(c *gin.Context) {
	userID, err := request.ParseID(c, "id")
	if err != nil {
		core.WriteResponse(c, err, nil)
		return
	}
	addressID, err := request.ParseID(c, "addressID")
	if err != nil {
		core.WriteResponse(c, err, nil)
		return
	}

	ctx, cancel := request.Context(c, a.timeout)
	defer cancel()

	if err := a.srv.Addresses().Delete(ctx, userID, addressID); err != nil {
		core.WriteResponse(c, err, nil)
		return
	}

	core.WriteDeleted(c, fmt.Sprintf("地址 %d 已删除", addressID))
}

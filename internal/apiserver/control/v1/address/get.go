package address

import (
	"github.com/gin-gonic/gin"

	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/control/v1/request"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/core"
)

// Get 处理 GET /v1/users/:id/addresses/:addressID。
func (a *AddressController) Get(c *gin.Context) {
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

	address, err := a.srv.Addresses().Get(ctx, userID, addressID)
	if err != nil {
		core.WriteResponse(c, err, nil)
		return
	}

	core.WriteResponse(c, nil, address)
}

package user

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/control/v1/request"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/core"
	"github.com/maxiaolu1981/cretem/shop-apiserver/pkg/log"
)

// Delete 处理 DELETE /v1/users/:id：成功返回 200 确认；重复删除返回 404。
// 该用户的地址一并删除，订单保留。
func (u *UserController) Delete(c *gin.Context) {
	id, err := request.ParseID(c, "id")
	if err != nil {
		core.WriteResponse(c, err, nil)
		return
	}

	ctx, cancel := request.Context(c, u.timeout)
	defer cancel()

	if err := u.srv.Users().Delete(ctx, id); err != nil {
		core.WriteResponse(c, err, nil)
		return
	}

	log.L(c).Infow("用户删除完成", "id", id)
	core.WriteDeleted(c, fmt.Sprintf("用户 %d 已删除", id))
}

package user

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"

	v1 "github.com/maxiaolu1981/cretem/shop-apiserver/api/shop/v1"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/control/v1/request"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/code"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/core"
	"github.com/maxiaolu1981/cretem/shop-apiserver/pkg/log"
)

// Create 处理 POST /v1/users：成功返回 201 和 Location 头。
func (u *UserController) Create(c *gin.Context) {
	var req v1.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		core.WriteResponse(c, errors.WithCode(code.ErrBind, "请求体解析失败: %s", err.Error()), nil)
		return
	}

	ctx, cancel := request.Context(c, u.timeout)
	defer cancel()

	user, err := u.srv.Users().Create(ctx, &req)
	if err != nil {
		core.WriteResponse(c, err, nil)
		return
	}

	log.L(c).Infow("用户创建完成", "id", user.ID, "name", user.Name)
	core.WriteCreated(c, fmt.Sprintf("/v1/users/%d", user.ID), user)
}

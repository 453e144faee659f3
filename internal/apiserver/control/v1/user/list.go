package user

import (
	"github.com/gin-gonic/gin"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"

	v1 "github.com/maxiaolu1981/cretem/shop-apiserver/api/shop/v1"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/control/v1/request"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/code"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/core"
)

// List 处理 GET /v1/users：支持 count/page 分页和 name/email 等值过滤。
// 过滤字段是封闭集合，未知查询参数会被绑定忽略。
func (u *UserController) List(c *gin.Context) {
	opts, err := request.Pagination(c)
	if err != nil {
		core.WriteResponse(c, err, nil)
		return
	}

	var filter v1.UserFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		core.WriteResponse(c, errors.WithCode(code.ErrBind, "查询参数解析失败: %s", err.Error()), nil)
		return
	}

	ctx, cancel := request.Context(c, u.timeout)
	defer cancel()

	users, err := u.srv.Users().List(ctx, &filter, opts)
	if err != nil {
		core.WriteResponse(c, err, nil)
		return
	}

	core.WriteResponse(c, nil, users)
}

package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/maxiaolu1981/cretem/shop-apiserver/pkg/log"
)

// UsernameKey 操作者在 gin 上下文里的键名。
const UsernameKey = "username"

// Context 把请求级字段写入 gin 上下文，供 log.L(c) 提取。
func Context() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(log.KeyRequestID, c.GetString(XRequestIDKey))
		c.Set(log.KeyUsername, c.GetString(UsernameKey))
		c.Next()
	}
}

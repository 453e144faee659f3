package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"
	"golang.org/x/time/rate"

	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/code"
)

// Limit 基于令牌桶的写操作限流：qps 为每秒放行数，超出直接返回 429。
func Limit(qps int) gin.HandlerFunc {
	if qps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiter := rate.NewLimiter(rate.Limit(qps), qps)

	return func(c *gin.Context) {
		// 只拦截写方法，读请求不计数
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
			if !limiter.Allow() {
				err := errors.WithCode(code.ErrRateLimitExceeded, "写请求超出限流阈值")
				coder := errors.ParseCoderByErr(err)
				c.AbortWithStatusJSON(coder.HTTPStatus(), gin.H{
					"code":    coder.Code(),
					"message": coder.String(),
				})
				return
			}
		}
		c.Next()
	}
}

// Package request 提供控制层公共的参数解析：路径 ID、分页、请求超时。
// 非法参数一律在控制层拦截，不会到达存储层。
package request

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	metav1 "github.com/maxiaolu1981/cretem/nexuscore/component-base/meta/v1"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"

	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/code"
)

const (
	defaultCount = 10
	maxCount     = 100
	defaultPage  = 1
)

// ParseID 解析路径里的资源 ID，必须是正整数。
func ParseID(c *gin.Context, param string) (uint64, error) {
	raw := c.Param(param)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.WithCode(code.ErrInvalidParameter, "路径参数 %s=%q 必须是正整数", param, raw)
	}
	return id, nil
}

// Pagination 解析 count/page 查询参数并换算成 Offset/Limit。
// count 限定在 [1,100]，缺省 10；page 至少为 1，缺省 1；越界直接报 400。
func Pagination(c *gin.Context) (metav1.ListOptions, error) {
	count, err := queryInt(c, "count", defaultCount)
	if err != nil {
		return metav1.ListOptions{}, err
	}
	page, err := queryInt(c, "page", defaultPage)
	if err != nil {
		return metav1.ListOptions{}, err
	}

	if count < 1 || count > maxCount {
		return metav1.ListOptions{}, errors.WithCode(code.ErrValidation,
			"查询参数 count=%d 超出范围 [1,%d]", count, maxCount)
	}
	if page < defaultPage {
		return metav1.ListOptions{}, errors.WithCode(code.ErrValidation,
			"查询参数 page=%d 必须不小于 %d", page, defaultPage)
	}

	offset := (page - 1) * count
	return metav1.ListOptions{Offset: &offset, Limit: &count}, nil
}

func queryInt(c *gin.Context, key string, fallback int64) (int64, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.WithCode(code.ErrValidation, "查询参数 %s=%q 必须是整数", key, raw)
	}
	return v, nil
}

// Context 给没有截止时间的请求补上服务级超时。
func Context(c *gin.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx := c.Request.Context()
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}

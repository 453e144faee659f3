package request

import (
	"strings"

	"github.com/buger/jsonparser"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"

	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/code"
)

// ForbidFields 检查 PATCH 请求体是否试图修改只读字段（如 id、metadata）。
// 字段路径用点号分隔，命中即报参数校验错误。
func ForbidFields(body []byte, fields ...string) error {
	for _, field := range fields {
		if _, _, _, err := jsonparser.Get(body, strings.Split(field, ".")...); err == nil {
			return errors.WithCode(code.ErrValidation, "字段 %s 不可修改", field)
		}
	}
	return nil
}

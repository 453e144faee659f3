// Package validation 用模型上的 validate 标签做入库前校验，
// 校验失败统一映射为参数校验错误（HTTP 400）。
package validation

import (
	stderrors "errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"

	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/code"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()

		// ObjectMeta.Name 使用自定义 name 标签：非空且不超过 64 字符
		_ = validate.RegisterValidation("name", func(fl validator.FieldLevel) bool {
			name := strings.TrimSpace(fl.Field().String())
			return name != "" && len(name) <= 64
		})
	})
	return validate
}

// Struct 按 validate 标签校验对象。
func Struct(obj interface{}) error {
	if err := instance().Struct(obj); err != nil {
		var invalid *validator.InvalidValidationError
		if stderrors.As(err, &invalid) {
			return errors.WithCode(code.ErrValidation, "无法校验的对象: %v", invalid)
		}
		return errors.WithCode(code.ErrValidation, "参数校验失败: %v", err)
	}
	return nil
}

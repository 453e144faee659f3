package core

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"

	"github.com/maxiaolu1981/cretem/shop-apiserver/pkg/log"
)

// ErrResponse 统一错误响应结构体。Reference 仅在错误码注册了参考文档时出现。
type ErrResponse struct {
	// 业务错误码（区别于 HTTP 状态码）
	Code int `json:"code"`

	// 面向用户的错误描述
	Message string `json:"message"`

	// 参考文档地址
	Reference string `json:"reference,omitempty"`
}

// SuccessResponse 统一成功响应结构体
type SuccessResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// WriteResponse 写入统一响应：错误经 ParseCoderByErr 解析为注册的业务码与
// HTTP 状态码，未注册错误落到默认 Coder（500）。成功时返回 200 包裹数据。
// 4xx 返回 WithCode 时手写的外部消息（带具体 ID/邮箱等），5xx 只返回注册的
// 通用文案，原始存储错误永远不出现在响应体里。
func WriteResponse(c *gin.Context, err error, data interface{}) {
	if err != nil {
		coder := errors.ParseCoderByErr(err)
		log.L(c).Errorw("请求处理失败", "code", coder.Code(), "message", coder.String(), "err", err.Error())

		message := coder.String()
		if coder.HTTPStatus() >= 400 && coder.HTTPStatus() < 500 {
			if detail := codedMessage(err); detail != "" {
				message = detail
			}
		}

		c.JSON(coder.HTTPStatus(), ErrResponse{
			Code:      coder.Code(),
			Message:   message,
			Reference: coder.Reference(),
		})

		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Code:    0,
		Message: "操作成功",
		Data:    data,
	})
}

// codedMessage 取 WithCode 错误当前层的格式化消息。withCode 的 Error()
// 形如 "[code: 110001] 用户 42 不存在"，且只打印当前层，不含底层 cause。
func codedMessage(err error) string {
	text := err.Error()
	if !strings.HasPrefix(text, "[code: ") {
		return ""
	}
	idx := strings.Index(text, "] ")
	if idx < 0 {
		return ""
	}
	return text[idx+2:]
}

// WriteCreated 处理资源创建成功的响应（201），并带上 Location 头。
func WriteCreated(c *gin.Context, location string, data interface{}) {
	if location != "" {
		c.Header("Location", location)
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Code:    0,
		Message: "创建成功",
		Data:    data,
	})
}

// WriteDeleted 处理删除成功的响应：200 + 确认消息。
func WriteDeleted(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessResponse{
		Code:    0,
		Message: message,
		Data:    nil,
	})
}

// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package code

//go:generate codegen -type=int

// 通用基本错误（1000xx）：服务10 + 模块00 + 序号
const (
	// ErrSuccess - 200: 成功
	ErrSuccess int = iota + 100001 // 100001

	// ErrUnknown - 500: 内部服务器错误
	ErrUnknown // 100002

	// ErrBind - 400: 请求体绑定结构体失败
	ErrBind // 100003

	// ErrValidation - 400: 数据验证失败
	ErrValidation // 100004

	// ErrPageNotFound - 404: 页面不存在
	ErrPageNotFound // 100005

	// ErrMethodNotAllowed - 405: 方法不存在
	ErrMethodNotAllowed // 100006

	// ErrUnsupportedMediaType - 415: 不支持的Content-Type，仅支持application/json
	ErrUnsupportedMediaType // 100007

	// ErrContextCanceled - 408: 请求上下文已取消或超时
	ErrContextCanceled // 100008
)

// 通用数据库错误（1001xx）：服务10 + 模块01 + 序号
const (
	// ErrDatabase - 500: 数据库操作错误
	ErrDatabase int = iota + 100101 // 100101

	// ErrDatabaseTimeout - 500: 数据库超时
	ErrDatabaseTimeout // 100102
)

// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package code

//go:generate codegen -type=int

// shop-apiserver用户模块错误（1100xx）：服务11 + 模块00 + 序号
const (
	// ErrUserNotFound - 404: 用户不存在
	ErrUserNotFound int = iota + 110001 // 110001

	// ErrUserAlreadyExist - 409: 用户已存在（邮箱冲突）
	ErrUserAlreadyExist // 110002

	// ErrInvalidParameter - 400: 用户参数无效
	ErrInvalidParameter // 110003

	// ErrResourceConflict - 409: 资源冲突
	ErrResourceConflict // 110004

	// ErrRateLimitExceeded - 429: 请求过多
	ErrRateLimitExceeded // 110005
)

// shop-apiserver地址模块错误（1101xx）：服务11 + 模块01 + 序号
const (
	// ErrAddressNotFound - 404: 地址不存在
	ErrAddressNotFound int = iota + 110101 // 110101
)

// shop-apiserver商品模块错误（1102xx）：服务11 + 模块02 + 序号
const (
	// ErrProductNotFound - 404: 商品不存在
	ErrProductNotFound int = iota + 110201 // 110201

	// ErrProductOutOfStock - 409: 商品库存不足
	ErrProductOutOfStock // 110202
)

// shop-apiserver订单模块错误（1103xx）：服务11 + 模块03 + 序号
const (
	// ErrOrderNotFound - 404: 订单不存在
	ErrOrderNotFound int = iota + 110301 // 110301

	// ErrInvalidReference - 409: 订单引用的用户/地址/商品不存在
	ErrInvalidReference // 110302
)

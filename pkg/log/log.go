// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package log 在 nexuscore/log 之上补充请求上下文日志：L(ctx) 返回携带
// requestID/username 字段的 Logger，供 control/service/store 各层透传。
package log

import (
	"context"

	"github.com/maxiaolu1981/cretem/nexuscore/log"
	"go.uber.org/zap"
)

const (
	// KeyRequestID 请求追踪 ID 在上下文里的键名。
	KeyRequestID = "requestID"

	// KeyUsername 操作者在上下文里的键名。
	KeyUsername = "username"
)

// Logger re-exports nexuscore 的 Logger 接口。
type Logger = log.Logger

// Options re-exports 日志配置项。
type Options = log.Options

// NewOptions 返回默认日志配置。
func NewOptions() *Options { return log.NewOptions() }

// Init 用给定配置初始化全局 logger。
func Init(opts *Options) { log.Init(opts) }

// Flush 落盘缓冲日志。
func Flush() { log.Flush() }

// ZapLogger 返回底层 *zap.Logger，供需要原生 zap API 的组件使用。
func ZapLogger() *zap.Logger { return log.ZapLogger() }

// CtxLogger 携带请求级字段的日志器。nexuscore 的 Logger 接口只有
// Info/Infof/Error 一族，W 风格方法是包级函数；CtxLogger 把两者拼起来：
// 结构化方法转发到包级函数并附加请求字段。
type CtxLogger struct {
	fields []interface{}
}

func (l *CtxLogger) with(keysAndValues []interface{}) []interface{} {
	if len(l.fields) == 0 {
		return keysAndValues
	}
	merged := make([]interface{}, 0, len(l.fields)+len(keysAndValues))
	merged = append(merged, l.fields...)
	return append(merged, keysAndValues...)
}

func (l *CtxLogger) Debugf(format string, v ...interface{}) { log.Debugf(format, v...) }

func (l *CtxLogger) Infof(format string, v ...interface{}) { log.Infof(format, v...) }

func (l *CtxLogger) Warnf(format string, v ...interface{}) { log.Warnf(format, v...) }

func (l *CtxLogger) Errorf(format string, v ...interface{}) { log.Errorf(format, v...) }

func (l *CtxLogger) Debugw(msg string, keysAndValues ...interface{}) {
	log.Debugw(msg, l.with(keysAndValues)...)
}

func (l *CtxLogger) Infow(msg string, keysAndValues ...interface{}) {
	log.Infow(msg, l.with(keysAndValues)...)
}

func (l *CtxLogger) Warnw(msg string, keysAndValues ...interface{}) {
	log.Warnw(msg, l.with(keysAndValues)...)
}

func (l *CtxLogger) Errorw(msg string, keysAndValues ...interface{}) {
	log.Errorw(msg, l.with(keysAndValues)...)
}

// L 从上下文提取请求级字段（requestID/username），返回带字段的 CtxLogger。
// gin.Context 实现了 context.Context，c.Set 写入的键可直接通过 Value 取到。
func L(ctx context.Context) *CtxLogger {
	l := &CtxLogger{}

	if requestID := ctx.Value(KeyRequestID); requestID != nil {
		l.fields = append(l.fields, KeyRequestID, requestID)
	}
	if username := ctx.Value(KeyUsername); username != nil {
		l.fields = append(l.fields, KeyUsername, username)
	}

	return l
}

// 包级便捷函数，转发到 nexuscore/log 的全局 logger。

func Debugf(format string, v ...interface{}) { log.Debugf(format, v...) }

func Debugw(msg string, keysAndValues ...interface{}) { log.Debugw(msg, keysAndValues...) }

func Infof(format string, v ...interface{}) { log.Infof(format, v...) }

func Infow(msg string, keysAndValues ...interface{}) { log.Infow(msg, keysAndValues...) }

func Warnf(format string, v ...interface{}) { log.Warnf(format, v...) }

func Warnw(msg string, keysAndValues ...interface{}) { log.Warnw(msg, keysAndValues...) }

func Errorf(format string, v ...interface{}) { log.Errorf(format, v...) }

func Errorw(msg string, keysAndValues ...interface{}) { log.Errorw(msg, keysAndValues...) }

func Fatalf(format string, v ...interface{}) { log.Fatalf(format, v...) }

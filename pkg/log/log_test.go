// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package log

import (
	"context"
	"testing"
)

type ctxKey string

func TestLExtractsRequestFields(t *testing.T) {
	ctx := context.WithValue(context.Background(), ctxKey(KeyRequestID), "ignored")

	// 只认字符串键（gin.Context.Set 写入的就是字符串键）
	if l := L(ctx); len(l.fields) != 0 {
		t.Fatalf("expected no fields for typed keys, got %v", l.fields)
	}

	ctx = contextWith(context.Background(), KeyRequestID, "req-42")
	ctx = contextWith(ctx, KeyUsername, "alice")

	l := L(ctx)
	if len(l.fields) != 4 {
		t.Fatalf("expected 4 field elements, got %v", l.fields)
	}
	if l.fields[0] != KeyRequestID || l.fields[1] != "req-42" {
		t.Fatalf("unexpected requestID field pair: %v", l.fields[:2])
	}
	if l.fields[2] != KeyUsername || l.fields[3] != "alice" {
		t.Fatalf("unexpected username field pair: %v", l.fields[2:])
	}
}

func TestCtxLoggerMergesFields(t *testing.T) {
	l := &CtxLogger{fields: []interface{}{KeyRequestID, "req-7"}}

	merged := l.with([]interface{}{"resource", "user"})
	if len(merged) != 4 {
		t.Fatalf("expected 4 merged elements, got %v", merged)
	}
	if merged[0] != KeyRequestID || merged[3] != "user" {
		t.Fatalf("unexpected merge order: %v", merged)
	}

	// 附带字段不得污染原有切片
	if len(l.fields) != 2 {
		t.Fatalf("fields mutated by with(): %v", l.fields)
	}

	// 结构化与格式化方法都走全局 logger，调用不应 panic
	l.Infow("用户查询完成", "id", 7)
	l.Warnw("缓存未命中", "id", 7)
	l.Errorw("数据库访问失败", "err", "timeout")
	l.Debugf("id=%d", 7)
}

func contextWith(ctx context.Context, key string, value string) context.Context {
	return context.WithValue(ctx, key, value) //nolint:staticcheck // 与 gin.Context 的字符串键保持一致
}

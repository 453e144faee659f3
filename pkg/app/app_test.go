// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package app

import "testing"

func TestRunCommandInvokesRunFunc(t *testing.T) {
	invoked := false
	a := NewApp("test-app", "test app",
		WithSilence(),
		WithNoVersion(),
		WithNoConfig(),
		WithRunFunc(func(basename string) error {
			invoked = basename == "test-app"
			return nil
		}),
	)

	// runCommand 打印标志、校验选项后回调 runFunc
	if err := a.runCommand(a.cmd, nil); err != nil {
		t.Fatalf("runCommand failed: %v", err)
	}
	if !invoked {
		t.Fatalf("expected runFunc to be invoked with basename")
	}
}

func TestFormatBaseName(t *testing.T) {
	if got := FormatBaseName("Shop-APIServer"); got != "shop-apiserver" {
		t.Fatalf("unexpected basename: %q", got)
	}
}

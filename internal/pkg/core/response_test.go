package core

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"

	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/code"
)

func writeErr(t *testing.T, err error) (*httptest.ResponseRecorder, ErrResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	WriteResponse(c, err, nil)

	var resp ErrResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error body %q: %v", w.Body.String(), err)
	}
	return w, resp
}

func TestWriteResponseSurfacesClientDetail(t *testing.T) {
	// 4xx 返回手写消息，带具体标识
	w, resp := writeErr(t, errors.WithCode(code.ErrUserNotFound, "用户 %d 不存在", 7))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if resp.Message != "用户 7 不存在" {
		t.Fatalf("expected formatted message, got %q", resp.Message)
	}

	w, resp = writeErr(t, errors.WithCode(code.ErrUserAlreadyExist, "邮箱 %s 已被占用", "a@x.com"))
	if w.Code != http.StatusConflict || !strings.Contains(resp.Message, "a@x.com") {
		t.Fatalf("expected conflict naming the email, got %d %q", w.Code, resp.Message)
	}
}

func TestWriteResponseHidesInternalDetail(t *testing.T) {
	// 5xx 只返回注册文案，存储层细节不出响应体
	w, resp := writeErr(t, errors.WithCode(code.ErrDatabase, "查询用户失败: %s", "dial tcp 127.0.0.1:3306: connection refused"))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if strings.Contains(resp.Message, "dial tcp") {
		t.Fatalf("internal detail leaked to client: %q", resp.Message)
	}
	if resp.Code != code.ErrDatabase {
		t.Fatalf("expected registered code %d, got %d", code.ErrDatabase, resp.Code)
	}
}

func TestCodedMessage(t *testing.T) {
	if got := codedMessage(errors.WithCode(code.ErrUserNotFound, "用户 %d 不存在", 42)); got != "用户 42 不存在" {
		t.Fatalf("unexpected coded message: %q", got)
	}
	if got := codedMessage(errors.New("plain")); got != "" {
		t.Fatalf("expected empty for uncoded error, got %q", got)
	}
}

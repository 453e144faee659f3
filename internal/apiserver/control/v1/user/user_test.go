package user

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/cache"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/events"
	srvv1 "github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/service/v1"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/store/mysql"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:ctl_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	if err := mysql.Migrate(db); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	srv := srvv1.NewService(mysql.NewDatastore(db), cache.NewUserCache(nil), events.NewNoopProducer())
	controller := NewUserController(srv, 5*time.Second)

	engine := gin.New()
	users := engine.Group("/v1/users")
	users.POST("", controller.Create)
	users.GET("", controller.List)
	users.GET(":id", controller.Get)
	users.PATCH(":id", controller.Update)
	users.DELETE(":id", controller.Delete)
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return w, env
}

func TestUserLifecycle(t *testing.T) {
	engine := setupRouter(t)

	// POST 201 + Location
	w, env := doJSON(t, engine, http.MethodPost, "/v1/users", map[string]string{
		"name": "alice", "email": "alice@example.com",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc == "" {
		t.Fatalf("expected Location header")
	}

	var created struct {
		Metadata struct {
			ID uint64 `json:"id"`
		} `json:"metadata"`
		Email       string `json:"email"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("failed to decode created user: %v", err)
	}
	if created.Metadata.ID == 0 {
		t.Fatalf("expected assigned id, got %s", env.Data)
	}
	if created.Description != "User alice" {
		t.Fatalf("expected default description, got %q", created.Description)
	}
	path := fmt.Sprintf("/v1/users/%d", created.Metadata.ID)

	// GET 200
	w, env = doJSON(t, engine, http.MethodGet, path, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	// PATCH 只带 email，name/description 不变
	w, env = doJSON(t, engine, http.MethodPatch, path, map[string]string{
		"email": "alice+new@example.com",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on patch, got %d body=%s", w.Code, w.Body.String())
	}
	var patched struct {
		Metadata struct {
			Name string `json:"name"`
		} `json:"metadata"`
		Email       string `json:"email"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(env.Data, &patched); err != nil {
		t.Fatalf("failed to decode patched user: %v", err)
	}
	if patched.Email != "alice+new@example.com" {
		t.Fatalf("expected updated email, got %q", patched.Email)
	}
	if patched.Metadata.Name != "alice" || patched.Description != "User alice" {
		t.Fatalf("expected absent fields untouched, got %s", env.Data)
	}

	// DELETE 200 确认
	w, _ = doJSON(t, engine, http.MethodDelete, path, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on delete, got %d", w.Code)
	}

	// 再查 404
	w, _ = doJSON(t, engine, http.MethodGet, path, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}

	// 再删 404
	w, _ = doJSON(t, engine, http.MethodDelete, path, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", w.Code)
	}
}

func TestUserCreateConflict(t *testing.T) {
	engine := setupRouter(t)

	w, _ := doJSON(t, engine, http.MethodPost, "/v1/users", map[string]string{
		"name": "alice", "email": "dup@example.com",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	w, env := doJSON(t, engine, http.MethodPost, "/v1/users", map[string]string{
		"name": "bob", "email": "dup@example.com",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate email, got %d body=%s", w.Code, w.Body.String())
	}
	if env.Code == 0 {
		t.Fatalf("expected business error code in body")
	}
	// 消息要点名冲突的邮箱，而不是通用文案
	if !strings.Contains(env.Message, "dup@example.com") {
		t.Fatalf("expected conflict message to name the email, got %q", env.Message)
	}
}

func TestUserNotFoundNamesID(t *testing.T) {
	engine := setupRouter(t)

	w, env := doJSON(t, engine, http.MethodGet, "/v1/users/424242", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(env.Message, "424242") {
		t.Fatalf("expected not-found message to name the id, got %q", env.Message)
	}

	w, env = doJSON(t, engine, http.MethodDelete, "/v1/users/424242", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on delete, got %d", w.Code)
	}
	if !strings.Contains(env.Message, "424242") {
		t.Fatalf("expected delete message to name the id, got %q", env.Message)
	}
}

func TestUserCreateValidation(t *testing.T) {
	engine := setupRouter(t)

	// email 缺失
	w, _ := doJSON(t, engine, http.MethodPost, "/v1/users", map[string]string{"name": "alice"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing email, got %d", w.Code)
	}

	// email 格式非法
	w, _ = doJSON(t, engine, http.MethodPost, "/v1/users", map[string]string{
		"name": "alice", "email": "not-an-email",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed email, got %d", w.Code)
	}
}

func TestUserGetInvalidID(t *testing.T) {
	engine := setupRouter(t)

	w, _ := doJSON(t, engine, http.MethodGet, "/v1/users/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", w.Code)
	}
}

func TestUserUpdateForbidsImmutableFields(t *testing.T) {
	engine := setupRouter(t)

	w, env := doJSON(t, engine, http.MethodPost, "/v1/users", map[string]string{
		"name": "alice", "email": "alice@example.com",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var created struct {
		Metadata struct {
			ID uint64 `json:"id"`
		} `json:"metadata"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("failed to decode created user: %v", err)
	}

	w, _ = doJSON(t, engine, http.MethodPatch, fmt.Sprintf("/v1/users/%d", created.Metadata.ID), map[string]interface{}{
		"id": 999,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 when patching id, got %d", w.Code)
	}
}

func TestUserListPaginationDefaults(t *testing.T) {
	engine := setupRouter(t)

	for i := 0; i < 15; i++ {
		w, _ := doJSON(t, engine, http.MethodPost, "/v1/users", map[string]string{
			"name":  fmt.Sprintf("user%d", i),
			"email": fmt.Sprintf("user%d@example.com", i),
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	}

	// 默认 count=10 page=1
	w, env := doJSON(t, engine, http.MethodGet, "/v1/users", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var page struct {
		TotalCount int64             `json:"totalCount"`
		Items      []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(env.Data, &page); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if page.TotalCount != 15 || len(page.Items) != 10 {
		t.Fatalf("expected total 15 with 10 items, got total=%d items=%d", page.TotalCount, len(page.Items))
	}

	// page=2 返回剩余 5 条
	w, env = doJSON(t, engine, http.MethodGet, "/v1/users?count=10&page=2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if err := json.Unmarshal(env.Data, &page); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if len(page.Items) != 5 {
		t.Fatalf("expected 5 items on page 2, got %d", len(page.Items))
	}

	// 非数字或越界的分页参数一律 400
	for _, query := range []string{"count=abc", "count=0", "count=101", "page=0"} {
		w, _ = doJSON(t, engine, http.MethodGet, "/v1/users?"+query, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", query, w.Code)
		}
	}
}

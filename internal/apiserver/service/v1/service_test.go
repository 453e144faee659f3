package v1

import (
	"context"
	"fmt"
	"testing"

	metav1 "github.com/maxiaolu1981/cretem/nexuscore/component-base/meta/v1"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	v1 "github.com/maxiaolu1981/cretem/shop-apiserver/api/shop/v1"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/cache"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/store/mysql"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/code"
)

type recordingProducer struct {
	events []string
}

func (r *recordingProducer) PublishOrderEvent(ctx context.Context, eventType string, order *v1.Order) error {
	r.events = append(r.events, eventType)
	return nil
}

func (r *recordingProducer) Close() error { return nil }

func setupService(t *testing.T) (Service, *recordingProducer) {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	if err := mysql.Migrate(db); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	producer := &recordingProducer{}
	return NewService(mysql.NewDatastore(db), cache.NewUserCache(nil), producer), producer
}

func TestUserCreateDefaultDescription(t *testing.T) {
	srv, _ := setupService(t)
	ctx := context.Background()

	user, err := srv.Users().Create(ctx, &v1.CreateUserRequest{Name: "alice", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if user.Description != "User alice" {
		t.Fatalf("expected generated description, got %q", user.Description)
	}

	explicit, err := srv.Users().Create(ctx, &v1.CreateUserRequest{
		Name: "bob", Email: "bob@example.com", Description: "vip",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if explicit.Description != "vip" {
		t.Fatalf("expected explicit description preserved, got %q", explicit.Description)
	}
}

func TestUserPartialUpdate(t *testing.T) {
	srv, _ := setupService(t)
	ctx := context.Background()

	user, err := srv.Users().Create(ctx, &v1.CreateUserRequest{
		Name: "alice", Email: "alice@example.com", Description: "original",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	email := "alice+new@example.com"
	updated, err := srv.Users().Update(ctx, user.ID, &v1.UpdateUserRequest{Email: &email})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if updated.Email != email {
		t.Fatalf("expected email updated, got %q", updated.Email)
	}
	if updated.Name != "alice" || updated.Description != "original" {
		t.Fatalf("expected absent fields untouched, got %+v", updated)
	}
}

func TestUserUpdateEmailConflict(t *testing.T) {
	srv, _ := setupService(t)
	ctx := context.Background()

	if _, err := srv.Users().Create(ctx, &v1.CreateUserRequest{Name: "alice", Email: "alice@example.com"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	bob, err := srv.Users().Create(ctx, &v1.CreateUserRequest{Name: "bob", Email: "bob@example.com"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	taken := "alice@example.com"
	_, err = srv.Users().Update(ctx, bob.ID, &v1.UpdateUserRequest{Email: &taken})
	if !errors.IsCode(err, code.ErrUserAlreadyExist) {
		t.Fatalf("expected ErrUserAlreadyExist, got %v", err)
	}
}

func TestAddressCreateRequiresUser(t *testing.T) {
	srv, _ := setupService(t)

	_, err := srv.Addresses().Create(context.Background(), 42, &v1.CreateAddressRequest{
		Street: "1 Main St", City: "Springfield", PostalCode: "12345",
	})
	if !errors.IsCode(err, code.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func seedUserWithAddress(t *testing.T, srv Service) (*v1.User, *v1.Address) {
	t.Helper()
	ctx := context.Background()

	user, err := srv.Users().Create(ctx, &v1.CreateUserRequest{Name: "alice", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("Create user returned error: %v", err)
	}
	address, err := srv.Addresses().Create(ctx, user.ID, &v1.CreateAddressRequest{
		Street: "1 Main St", City: "Springfield", PostalCode: "12345",
	})
	if err != nil {
		t.Fatalf("Create address returned error: %v", err)
	}
	return user, address
}

func TestOrderCreateDefaultsAndEvent(t *testing.T) {
	srv, producer := setupService(t)
	ctx := context.Background()

	user, address := seedUserWithAddress(t, srv)
	product, err := srv.Products().Create(ctx, &v1.CreateProductRequest{Name: "widget", Price: 3.5, StockQuantity: 10})
	if err != nil {
		t.Fatalf("Create product returned error: %v", err)
	}

	order, err := srv.Orders().Create(ctx, &v1.CreateOrderRequest{
		UserID:      user.ID,
		AddressID:   address.ID,
		TotalAmount: 7.0,
		Lines:       []v1.OrderLine{{ProductID: product.ID}},
	})
	if err != nil {
		t.Fatalf("Create order returned error: %v", err)
	}

	if order.Status != v1.OrderStatusPending {
		t.Fatalf("expected default status pending, got %q", order.Status)
	}
	if len(producer.events) != 1 || producer.events[0] != "order.created.v1" {
		t.Fatalf("expected order.created.v1 event, got %v", producer.events)
	}

	got, err := srv.Orders().Get(ctx, order.ID)
	if err != nil {
		t.Fatalf("Get order returned error: %v", err)
	}
	if len(got.Products) != 1 || got.Products[0].ID != product.ID {
		t.Fatalf("expected one product line, got %+v", got.Products)
	}
}

func TestOrderCreateInvalidReferences(t *testing.T) {
	srv, _ := setupService(t)
	ctx := context.Background()

	// 用户不存在
	_, err := srv.Orders().Create(ctx, &v1.CreateOrderRequest{
		UserID: 42, AddressID: 1, Lines: []v1.OrderLine{{ProductID: 1}},
	})
	if !errors.IsCode(err, code.ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference for missing user, got %v", err)
	}

	user, address := seedUserWithAddress(t, srv)

	// 商品不存在
	_, err = srv.Orders().Create(ctx, &v1.CreateOrderRequest{
		UserID: user.ID, AddressID: address.ID, Lines: []v1.OrderLine{{ProductID: 999}},
	})
	if !errors.IsCode(err, code.ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference for missing product, got %v", err)
	}

	// 地址属于别的用户
	other, err := srv.Users().Create(ctx, &v1.CreateUserRequest{Name: "bob", Email: "bob@example.com"})
	if err != nil {
		t.Fatalf("Create user returned error: %v", err)
	}
	product, err := srv.Products().Create(ctx, &v1.CreateProductRequest{Name: "widget", Price: 1})
	if err != nil {
		t.Fatalf("Create product returned error: %v", err)
	}
	_, err = srv.Orders().Create(ctx, &v1.CreateOrderRequest{
		UserID: other.ID, AddressID: address.ID, TotalAmount: 1,
		Lines: []v1.OrderLine{{ProductID: product.ID}},
	})
	if !errors.IsCode(err, code.ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference for foreign address, got %v", err)
	}
}

func TestOrderSurvivesUserDeletion(t *testing.T) {
	srv, _ := setupService(t)
	ctx := context.Background()

	user, address := seedUserWithAddress(t, srv)
	product, err := srv.Products().Create(ctx, &v1.CreateProductRequest{Name: "widget", Price: 2})
	if err != nil {
		t.Fatalf("Create product returned error: %v", err)
	}
	order, err := srv.Orders().Create(ctx, &v1.CreateOrderRequest{
		UserID: user.ID, AddressID: address.ID, TotalAmount: 2,
		Lines: []v1.OrderLine{{ProductID: product.ID}},
	})
	if err != nil {
		t.Fatalf("Create order returned error: %v", err)
	}

	if err := srv.Users().Delete(ctx, user.ID); err != nil {
		t.Fatalf("Delete user returned error: %v", err)
	}

	if _, err := srv.Addresses().Get(ctx, user.ID, address.ID); !errors.IsCode(err, code.ErrAddressNotFound) {
		t.Fatalf("expected address cascade-deleted, got %v", err)
	}
	if _, err := srv.Orders().Get(ctx, order.ID); err != nil {
		t.Fatalf("expected order kept after user deletion, got %v", err)
	}
}

func TestUserListPassesFilter(t *testing.T) {
	srv, _ := setupService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := srv.Users().Create(ctx, &v1.CreateUserRequest{
			Name:  fmt.Sprintf("user%d", i),
			Email: fmt.Sprintf("user%d@example.com", i),
		}); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	list, err := srv.Users().List(ctx, &v1.UserFilter{Name: "user1"}, metav1.ListOptions{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if list.TotalCount != 1 || len(list.Items) != 1 || list.Items[0].Name != "user1" {
		t.Fatalf("unexpected filtered list: %+v", list)
	}
}

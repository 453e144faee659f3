package mysql

import (
	"context"
	"fmt"
	"testing"

	metav1 "github.com/maxiaolu1981/cretem/nexuscore/component-base/meta/v1"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	v1 "github.com/maxiaolu1981/cretem/shop-apiserver/api/shop/v1"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/store"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/code"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}
	return db
}

func listPage(page, count int64) metav1.ListOptions {
	offset := (page - 1) * count
	return metav1.ListOptions{Offset: &offset, Limit: &count}
}

func TestSetClientRoundTrip(t *testing.T) {
	f := NewDatastore(setupTestDB(t))

	store.SetClient(f)
	if store.Client() != f {
		t.Fatalf("expected Client to return the injected factory")
	}
}

func TestUserCreateGet(t *testing.T) {
	f := NewDatastore(setupTestDB(t))
	ctx := context.Background()

	user := &v1.User{
		ObjectMeta:  metav1.ObjectMeta{Name: "alice"},
		Email:       "alice@example.com",
		Description: "User alice",
	}
	if err := f.Users().Create(ctx, user, metav1.CreateOptions{}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected auto-assigned id")
	}

	got, err := f.Users().Get(ctx, user.ID, metav1.GetOptions{})
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Name != "alice" || got.Email != "alice@example.com" || got.Description != "User alice" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestUserGetNotFound(t *testing.T) {
	f := NewDatastore(setupTestDB(t))

	_, err := f.Users().Get(context.Background(), 9999, metav1.GetOptions{})
	if !errors.IsCode(err, code.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	f := NewDatastore(setupTestDB(t))
	ctx := context.Background()

	first := &v1.User{ObjectMeta: metav1.ObjectMeta{Name: "alice"}, Email: "dup@example.com"}
	if err := f.Users().Create(ctx, first, metav1.CreateOptions{}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	second := &v1.User{ObjectMeta: metav1.ObjectMeta{Name: "bob"}, Email: "dup@example.com"}
	err := f.Users().Create(ctx, second, metav1.CreateOptions{})
	if !errors.IsCode(err, code.ErrUserAlreadyExist) {
		t.Fatalf("expected ErrUserAlreadyExist, got %v", err)
	}
}

func TestUserDeleteIdempotence(t *testing.T) {
	f := NewDatastore(setupTestDB(t))
	ctx := context.Background()

	user := &v1.User{ObjectMeta: metav1.ObjectMeta{Name: "alice"}, Email: "alice@example.com"}
	if err := f.Users().Create(ctx, user, metav1.CreateOptions{}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := f.Users().Delete(ctx, user.ID, metav1.DeleteOptions{}); err != nil {
		t.Fatalf("first Delete returned error: %v", err)
	}
	err := f.Users().Delete(ctx, user.ID, metav1.DeleteOptions{})
	if !errors.IsCode(err, code.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}

// 删除用户时地址级联删除，订单刻意保留。
func TestUserDeleteCascade(t *testing.T) {
	f := NewDatastore(setupTestDB(t))
	ctx := context.Background()

	user := &v1.User{ObjectMeta: metav1.ObjectMeta{Name: "alice"}, Email: "alice@example.com"}
	if err := f.Users().Create(ctx, user, metav1.CreateOptions{}); err != nil {
		t.Fatalf("Create user returned error: %v", err)
	}
	address := &v1.Address{UserID: user.ID, Street: "1 Main St", City: "Springfield", PostalCode: "12345"}
	if err := f.Addresses().Create(ctx, address, metav1.CreateOptions{}); err != nil {
		t.Fatalf("Create address returned error: %v", err)
	}
	order := &v1.Order{UserID: user.ID, AddressID: address.ID, TotalAmount: 9.99, Status: v1.OrderStatusPending}
	if err := f.Orders().Create(ctx, order, nil, metav1.CreateOptions{}); err != nil {
		t.Fatalf("Create order returned error: %v", err)
	}

	if err := f.Users().Delete(ctx, user.ID, metav1.DeleteOptions{}); err != nil {
		t.Fatalf("Delete user returned error: %v", err)
	}

	_, err := f.Addresses().Get(ctx, user.ID, address.ID, metav1.GetOptions{})
	if !errors.IsCode(err, code.ErrAddressNotFound) {
		t.Fatalf("expected address to be cascade-deleted, got %v", err)
	}
	kept, err := f.Orders().Get(ctx, order.ID, metav1.GetOptions{})
	if err != nil {
		t.Fatalf("expected order to survive user deletion, got %v", err)
	}
	if kept.UserID != user.ID {
		t.Fatalf("expected dangling user_id %d, got %d", user.ID, kept.UserID)
	}
}

func TestUserListPagination(t *testing.T) {
	f := NewDatastore(setupTestDB(t))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		user := &v1.User{
			ObjectMeta: metav1.ObjectMeta{Name: fmt.Sprintf("user%d", i)},
			Email:      fmt.Sprintf("user%d@example.com", i),
		}
		if err := f.Users().Create(ctx, user, metav1.CreateOptions{}); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	page1, err := f.Users().List(ctx, nil, listPage(1, 2))
	if err != nil {
		t.Fatalf("List page 1 returned error: %v", err)
	}
	page2, err := f.Users().List(ctx, nil, listPage(2, 2))
	if err != nil {
		t.Fatalf("List page 2 returned error: %v", err)
	}

	if page1.TotalCount != 5 || page2.TotalCount != 5 {
		t.Fatalf("expected total 5, got %d and %d", page1.TotalCount, page2.TotalCount)
	}
	if len(page1.Items) != 2 || len(page2.Items) != 2 {
		t.Fatalf("expected 2 items per page, got %d and %d", len(page1.Items), len(page2.Items))
	}

	seen := map[uint64]bool{}
	var last uint64
	for _, u := range append(page1.Items, page2.Items...) {
		if seen[u.ID] {
			t.Fatalf("pages overlap on id %d", u.ID)
		}
		seen[u.ID] = true
		if u.ID <= last {
			t.Fatalf("expected ascending id order, got %d after %d", u.ID, last)
		}
		last = u.ID
	}
}

func TestUserListFilter(t *testing.T) {
	f := NewDatastore(setupTestDB(t))
	ctx := context.Background()

	for _, spec := range []struct{ name, email string }{
		{"alice", "alice@example.com"},
		{"bob", "bob@example.com"},
	} {
		user := &v1.User{ObjectMeta: metav1.ObjectMeta{Name: spec.name}, Email: spec.email}
		if err := f.Users().Create(ctx, user, metav1.CreateOptions{}); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	list, err := f.Users().List(ctx, &v1.UserFilter{Email: "bob@example.com"}, metav1.ListOptions{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if list.TotalCount != 1 || len(list.Items) != 1 || list.Items[0].Name != "bob" {
		t.Fatalf("unexpected filtered list: %+v", list)
	}
}

func TestAddressScopedToUser(t *testing.T) {
	f := NewDatastore(setupTestDB(t))
	ctx := context.Background()

	user := &v1.User{ObjectMeta: metav1.ObjectMeta{Name: "alice"}, Email: "alice@example.com"}
	if err := f.Users().Create(ctx, user, metav1.CreateOptions{}); err != nil {
		t.Fatalf("Create user returned error: %v", err)
	}
	address := &v1.Address{UserID: user.ID, Street: "1 Main St", City: "Springfield", PostalCode: "12345"}
	if err := f.Addresses().Create(ctx, address, metav1.CreateOptions{}); err != nil {
		t.Fatalf("Create address returned error: %v", err)
	}

	if _, err := f.Addresses().Get(ctx, user.ID, address.ID, metav1.GetOptions{}); err != nil {
		t.Fatalf("Get with owning user returned error: %v", err)
	}
	_, err := f.Addresses().Get(ctx, user.ID+1, address.ID, metav1.GetOptions{})
	if !errors.IsCode(err, code.ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound for foreign user, got %v", err)
	}
}

func TestOrderCreateGetWithLines(t *testing.T) {
	f := NewDatastore(setupTestDB(t))
	ctx := context.Background()

	product := &v1.Product{ObjectMeta: metav1.ObjectMeta{Name: "widget"}, Price: 3.5, StockQuantity: 10}
	if err := f.Products().Create(ctx, product, metav1.CreateOptions{}); err != nil {
		t.Fatalf("Create product returned error: %v", err)
	}

	order := &v1.Order{UserID: 1, AddressID: 1, TotalAmount: 7.0, Status: v1.OrderStatusPending}
	lines := []v1.OrderProduct{{ProductID: product.ID, Quantity: 2}}
	if err := f.Orders().Create(ctx, order, lines, metav1.CreateOptions{}); err != nil {
		t.Fatalf("Create order returned error: %v", err)
	}

	got, err := f.Orders().Get(ctx, order.ID, metav1.GetOptions{})
	if err != nil {
		t.Fatalf("Get order returned error: %v", err)
	}
	if len(got.Products) != 1 || got.Products[0].ID != product.ID {
		t.Fatalf("expected preloaded product %d, got %+v", product.ID, got.Products)
	}
}

func TestOrderListFilter(t *testing.T) {
	f := NewDatastore(setupTestDB(t))
	ctx := context.Background()

	for _, spec := range []struct {
		userID uint64
		status string
	}{
		{1, "pending"},
		{1, "shipped"},
		{2, "pending"},
	} {
		order := &v1.Order{UserID: spec.userID, AddressID: 1, TotalAmount: 1, Status: spec.status}
		if err := f.Orders().Create(ctx, order, nil, metav1.CreateOptions{}); err != nil {
			t.Fatalf("Create order returned error: %v", err)
		}
	}

	list, err := f.Orders().List(ctx, &v1.OrderFilter{UserID: 1, Status: "pending"}, metav1.ListOptions{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if list.TotalCount != 1 || len(list.Items) != 1 {
		t.Fatalf("expected exactly one match, got %+v", list)
	}
	if list.Items[0].UserID != 1 || list.Items[0].Status != "pending" {
		t.Fatalf("unexpected order: %+v", list.Items[0])
	}
}

// Package store 定义数据访问层的抽象：每类资源一个 Store 接口，
// Factory 聚合所有资源的访问入口，由具体实现（mysql）注入。
package store

import (
	"context"

	metav1 "github.com/maxiaolu1981/cretem/nexuscore/component-base/meta/v1"

	v1 "github.com/maxiaolu1981/cretem/shop-apiserver/api/shop/v1"
)

var client Factory

// Factory 是仓储工厂接口。
type Factory interface {
	Users() UserStore
	Addresses() AddressStore
	Products() ProductStore
	Orders() OrderStore
	Close() error
}

// Client 返回已注入的仓储工厂。
func Client() Factory {
	return client
}

// SetClient 注入仓储工厂实现。
func SetClient(factory Factory) {
	client = factory
}

// UserStore 定义用户存储接口。
type UserStore interface {
	Create(ctx context.Context, user *v1.User, opts metav1.CreateOptions) error
	Update(ctx context.Context, user *v1.User, opts metav1.UpdateOptions) error
	// Delete 删除用户并级联删除其地址；订单保留。
	Delete(ctx context.Context, id uint64, opts metav1.DeleteOptions) error
	Get(ctx context.Context, id uint64, opts metav1.GetOptions) (*v1.User, error)
	List(ctx context.Context, filter *v1.UserFilter, opts metav1.ListOptions) (*v1.UserList, error)
}

// AddressStore 定义地址存储接口。地址从属于用户。
type AddressStore interface {
	Create(ctx context.Context, addr *v1.Address, opts metav1.CreateOptions) error
	Update(ctx context.Context, addr *v1.Address, opts metav1.UpdateOptions) error
	Delete(ctx context.Context, userID, addressID uint64, opts metav1.DeleteOptions) error
	Get(ctx context.Context, userID, addressID uint64, opts metav1.GetOptions) (*v1.Address, error)
	ListByUser(ctx context.Context, userID uint64, opts metav1.ListOptions) (*v1.AddressList, error)
}

// ProductStore 定义商品存储接口。
type ProductStore interface {
	Create(ctx context.Context, product *v1.Product, opts metav1.CreateOptions) error
	Update(ctx context.Context, product *v1.Product, opts metav1.UpdateOptions) error
	Delete(ctx context.Context, id uint64, opts metav1.DeleteOptions) error
	Get(ctx context.Context, id uint64, opts metav1.GetOptions) (*v1.Product, error)
	List(ctx context.Context, filter *v1.ProductFilter, opts metav1.ListOptions) (*v1.ProductList, error)
}

// OrderStore 定义订单存储接口。lines 为订单商品行（含数量）。
type OrderStore interface {
	Create(ctx context.Context, order *v1.Order, lines []v1.OrderProduct, opts metav1.CreateOptions) error
	Update(ctx context.Context, order *v1.Order, opts metav1.UpdateOptions) error
	Delete(ctx context.Context, id uint64, opts metav1.DeleteOptions) error
	Get(ctx context.Context, id uint64, opts metav1.GetOptions) (*v1.Order, error)
	List(ctx context.Context, filter *v1.OrderFilter, opts metav1.ListOptions) (*v1.OrderList, error)
}

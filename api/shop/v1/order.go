package v1

import (
	"time"

	metav1 "github.com/maxiaolu1981/cretem/nexuscore/component-base/meta/v1"
)

// 订单状态标签。自由文本，默认 pending；状态流转不在本服务内约束。
const (
	OrderStatusPending = "pending"
)

// Order 表示一笔订单：一个购买用户、一个收货地址、若干商品行。
// 订单引用的用户/地址只在创建时校验存在性；之后用户被删除时订单保留
// （user_id 悬空），与既有系统行为保持一致。
type Order struct {
	ID          uint64    `json:"id" gorm:"primary_key;AUTO_INCREMENT;column:id"`
	UserID      uint64    `json:"userID" gorm:"column:user_id;not null;index:idx_order_user"`
	AddressID   uint64    `json:"addressID" gorm:"column:address_id;not null"`
	TotalAmount float64   `json:"totalAmount" gorm:"column:total_amount;not null" validate:"gte=0"`
	Status      string    `json:"status" gorm:"column:status;type:varchar(32);default:pending"`
	CreatedAt   time.Time `json:"createdAt,omitempty" gorm:"column:createdAt"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty" gorm:"column:updatedAt"`

	// Products 订单包含的商品，经由 order_product 连接表关联。
	Products []*Product `json:"products,omitempty" gorm:"many2many:order_product;joinForeignKey:order_id;joinReferences:product_id"`
}

// OrderProduct 是订单与商品的连接表模型，额外携带行数量。
type OrderProduct struct {
	OrderID   uint64 `json:"orderID" gorm:"column:order_id;primaryKey"`
	ProductID uint64 `json:"productID" gorm:"column:product_id;primaryKey"`
	Quantity  int    `json:"quantity" gorm:"column:quantity;not null;default:1"`
}

// OrderList 表示一页订单数据。
type OrderList struct {
	metav1.ListMeta `json:",inline"`

	Items []*Order `json:"items"`
}

func (o *Order) TableName() string {
	return "orders"
}

func (op *OrderProduct) TableName() string {
	return "order_product"
}

// OrderLine 是创建订单时的一条商品行。
type OrderLine struct {
	ProductID uint64 `json:"productID" binding:"required,gt=0"`
	Quantity  int    `json:"quantity" binding:"omitempty,gt=0"`
}

// CreateOrderRequest 是创建订单的请求体。订单至少包含一条商品行。
type CreateOrderRequest struct {
	UserID      uint64      `json:"userID" binding:"required,gt=0"`
	AddressID   uint64      `json:"addressID" binding:"required,gt=0"`
	TotalAmount float64     `json:"totalAmount" binding:"gte=0"`
	Status      string      `json:"status" binding:"omitempty,max=32"`
	Lines       []OrderLine `json:"lines" binding:"required,min=1,dive"`
}

// UpdateOrderRequest 是订单部分更新（PATCH）的请求体。
type UpdateOrderRequest struct {
	AddressID   *uint64  `json:"addressID" binding:"omitempty,gt=0"`
	TotalAmount *float64 `json:"totalAmount" binding:"omitempty,gte=0"`
	Status      *string  `json:"status" binding:"omitempty,max=32"`
}

// OrderFilter 是订单列表查询支持的等值过滤字段（封闭集合）。
type OrderFilter struct {
	UserID uint64 `form:"userID"`
	Status string `form:"status"`
}

package v1

import (
	metav1 "github.com/maxiaolu1981/cretem/nexuscore/component-base/meta/v1"
	"github.com/maxiaolu1981/cretem/nexuscore/component-base/util/idutil"
	"gorm.io/gorm"
)

// Product 表示在售商品，商品名存放在 ObjectMeta.Name 中。
type Product struct {
	metav1.ObjectMeta `json:"metadata,omitempty"`

	// Required: true（必填，非负）
	Price float64 `json:"price" gorm:"column:price;not null" validate:"gte=0"`

	// 库存数量，非负整数。
	StockQuantity int `json:"stockQuantity" gorm:"column:stock_quantity;not null;default:0" validate:"gte=0"`

	Description string `json:"description" gorm:"column:description;type:varchar(500)" validate:"omitempty,max=500"`

	// Orders 包含该商品的订单，经由 order_product 连接表关联。
	Orders []*Order `json:"-" gorm:"many2many:order_product;joinForeignKey:product_id;joinReferences:order_id"`
}

// ProductList 表示一页商品数据。
type ProductList struct {
	metav1.ListMeta `json:",inline"`

	Items []*Product `json:"items"`
}

func (p *Product) TableName() string {
	return "products"
}

// AfterCreate 在记录创建后生成实例 ID。
func (p *Product) AfterCreate(tx *gorm.DB) error {
	p.InstanceID = idutil.GetInstanceID(p.ID, "prod-")

	return tx.Model(p).UpdateColumn("instanceID", p.InstanceID).Error
}

// CreateProductRequest 是创建商品的请求体。
type CreateProductRequest struct {
	Name          string  `json:"name" binding:"required,min=1,max=100"`
	Price         float64 `json:"price" binding:"gte=0"`
	StockQuantity int     `json:"stockQuantity" binding:"gte=0"`
	Description   string  `json:"description" binding:"omitempty,max=500"`
}

// UpdateProductRequest 是商品部分更新（PATCH）的请求体，指针为 nil 表示不修改。
type UpdateProductRequest struct {
	Name          *string  `json:"name" binding:"omitempty,min=1,max=100"`
	Price         *float64 `json:"price" binding:"omitempty,gte=0"`
	StockQuantity *int     `json:"stockQuantity" binding:"omitempty,gte=0"`
	Description   *string  `json:"description" binding:"omitempty,max=500"`
}

// ProductFilter 是商品列表查询支持的等值过滤字段（封闭集合）。
type ProductFilter struct {
	Name string `form:"name"`
}

package v1

import "time"

// Address 表示用户的一条收货地址，属于且仅属于一个用户。
type Address struct {
	ID         uint64    `json:"id" gorm:"primary_key;AUTO_INCREMENT;column:id"`
	UserID     uint64    `json:"userID" gorm:"column:user_id;not null;index:idx_address_user"`
	Street     string    `json:"street" gorm:"column:street;type:varchar(200);not null" validate:"required,max=200"`
	City       string    `json:"city" gorm:"column:city;type:varchar(100);not null" validate:"required,max=100"`
	PostalCode string    `json:"postalCode" gorm:"column:postal_code;type:varchar(20);not null" validate:"required,max=20"`
	CreatedAt  time.Time `json:"createdAt,omitempty" gorm:"column:createdAt"`
	UpdatedAt  time.Time `json:"updatedAt,omitempty" gorm:"column:updatedAt"`
}

// AddressList 表示一页地址数据。
type AddressList struct {
	TotalCount int64      `json:"totalCount,omitempty"`
	Items      []*Address `json:"items"`
}

func (a *Address) TableName() string {
	return "addresses"
}

// CreateAddressRequest 是为用户新增收货地址的请求体。
type CreateAddressRequest struct {
	Street     string `json:"street" binding:"required,max=200"`
	City       string `json:"city" binding:"required,max=100"`
	PostalCode string `json:"postalCode" binding:"required,max=20"`
}

// UpdateAddressRequest 是地址部分更新（PATCH）的请求体，指针为 nil 表示不修改。
type UpdateAddressRequest struct {
	Street     *string `json:"street" binding:"omitempty,max=200"`
	City       *string `json:"city" binding:"omitempty,max=100"`
	PostalCode *string `json:"postalCode" binding:"omitempty,max=20"`
}

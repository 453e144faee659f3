/*
v1 包定义商城（shop）的数据模型：用户、地址、商品、订单。
这些结构体既是 RESTful API 的数据交换格式，也是 GORM 的数据库映射模型，
做到 "API 层与存储层数据结构统一"。用户/商品复用 metav1.ObjectMeta
（主键ID、实例ID、名称、创建/更新时间、扩展字段），地址与订单按原始
关系模型定义自己的主键与外键。
*/
package v1

import (
	metav1 "github.com/maxiaolu1981/cretem/nexuscore/component-base/meta/v1"
	"github.com/maxiaolu1981/cretem/nexuscore/component-base/util/idutil"
	"gorm.io/gorm"
)

// User 表示商城用户资源，同时作为 GORM 数据库模型映射到 users 表。
// 用户名存放在 ObjectMeta.Name 中。
type User struct {
	// 标准对象元数据（ID、InstanceID、Name、创建/更新时间等）
	metav1.ObjectMeta `json:"metadata,omitempty"`

	// Required: true（必填，全局唯一）
	Email string `json:"email" gorm:"column:email;type:varchar(100);uniqueIndex:idx_user_email;not null" validate:"required,email,min=1,max=100"`

	// 可选描述。创建时若为空，由业务层根据用户名生成。
	Description string `json:"description" gorm:"column:description;type:varchar(500)" validate:"omitempty,max=500"`

	// Addresses 归属当前用户的收货地址。删除用户时随之删除（应用层级联）。
	Addresses []*Address `json:"addresses,omitempty" gorm:"foreignKey:UserID"`

	// Orders 当前用户的订单。删除用户时刻意不级联（与既有行为保持一致，
	// 见仓储层 Delete 的说明）。
	Orders []*Order `json:"orders,omitempty" gorm:"foreignKey:UserID"`
}

// UserList 表示一页用户数据，用于 API 分页返回。
type UserList struct {
	metav1.ListMeta `json:",inline"`

	Items []*User `json:"items"`
}

// TableName 指定当前模型映射的表名。
func (u *User) TableName() string {
	return "users"
}

// AfterCreate 在记录创建后生成实例 ID（格式如 "user-2b3c4d"）。
func (u *User) AfterCreate(tx *gorm.DB) error {
	u.InstanceID = idutil.GetInstanceID(u.ID, "user-")

	return tx.Model(u).UpdateColumn("instanceID", u.InstanceID).Error
}

// CreateUserRequest 是创建用户的请求体。
type CreateUserRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Email       string `json:"email" binding:"required,email,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

// UpdateUserRequest 是用户部分更新（PATCH）的请求体。
// 全部字段为指针：nil 表示请求中未携带该字段，不做修改；
// 这样区分了 "字段缺席" 与 "字段显式置空"。
type UpdateUserRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Email       *string `json:"email" binding:"omitempty,email,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// UserFilter 是用户列表查询支持的等值过滤字段（封闭集合）。
// 未列出的查询参数在绑定阶段被忽略，不会传给存储层。
type UserFilter struct {
	Name  string `form:"name"`
	Email string `form:"email"`
}

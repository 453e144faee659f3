package mysql

import (
	"context"

	stderrors "errors"

	metav1 "github.com/maxiaolu1981/cretem/nexuscore/component-base/meta/v1"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"
	"gorm.io/gorm"

	v1 "github.com/maxiaolu1981/cretem/shop-apiserver/api/shop/v1"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/code"
)

type orders struct {
	db *gorm.DB
}

func newOrders(ds *datastore) *orders {
	return &orders{ds.db}
}

// Create 在同一事务里写入订单头和 order_product 明细行。
func (o *orders) Create(ctx context.Context, order *v1.Order, lines []v1.OrderProduct, opts metav1.CreateOptions) error {
	return o.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Products").Create(order).Error; err != nil {
			return errors.WithCode(code.ErrDatabase, "创建订单失败: %s", err.Error())
		}

		for i := range lines {
			lines[i].OrderID = order.ID
		}
		if len(lines) > 0 {
			if err := tx.Create(&lines).Error; err != nil {
				return errors.WithCode(code.ErrDatabase, "创建订单明细失败: %s", err.Error())
			}
		}
		return nil
	})
}

func (o *orders) Update(ctx context.Context, order *v1.Order, opts metav1.UpdateOptions) error {
	if err := o.db.WithContext(ctx).Omit("Products").Save(order).Error; err != nil {
		return errors.WithCode(code.ErrDatabase, "更新订单失败: %s", err.Error())
	}
	return nil
}

// Delete 删除订单头及其明细行；商品本身不受影响。
func (o *orders) Delete(ctx context.Context, id uint64, opts metav1.DeleteOptions) error {
	return o.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&v1.OrderProduct{}).Error; err != nil {
			return errors.WithCode(code.ErrDatabase, "删除订单明细失败: %s", err.Error())
		}

		result := tx.Where("id = ?", id).Delete(&v1.Order{})
		if result.Error != nil {
			return errors.WithCode(code.ErrDatabase, "删除订单失败: %s", result.Error.Error())
		}
		if result.RowsAffected == 0 {
			return errors.WithCode(code.ErrOrderNotFound, "订单 %d 不存在", id)
		}
		return nil
	})
}

func (o *orders) Get(ctx context.Context, id uint64, opts metav1.GetOptions) (*v1.Order, error) {
	order := &v1.Order{}
	err := o.db.WithContext(ctx).Preload("Products").Where("id = ?", id).First(order).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithCode(code.ErrOrderNotFound, "订单 %d 不存在", id)
		}
		return nil, errors.WithCode(code.ErrDatabase, "查询订单失败: %s", err.Error())
	}
	return order, nil
}

func (o *orders) List(ctx context.Context, filter *v1.OrderFilter, opts metav1.ListOptions) (*v1.OrderList, error) {
	ret := &v1.OrderList{}

	tx := o.db.WithContext(ctx).Model(&v1.Order{})
	if filter != nil {
		if filter.UserID != 0 {
			tx = tx.Where("user_id = ?", filter.UserID)
		}
		if filter.Status != "" {
			tx = tx.Where("status = ?", filter.Status)
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, errors.WithCode(code.ErrDatabase, "统计订单失败: %s", err.Error())
	}

	if err := applyListOptions(tx, opts).Find(&ret.Items).Error; err != nil {
		return nil, errors.WithCode(code.ErrDatabase, "查询订单列表失败: %s", err.Error())
	}

	ret.TotalCount = total
	return ret, nil
}

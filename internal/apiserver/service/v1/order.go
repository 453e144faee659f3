package v1

import (
	"context"
	"time"

	metav1 "github.com/maxiaolu1981/cretem/nexuscore/component-base/meta/v1"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"

	v1 "github.com/maxiaolu1981/cretem/shop-apiserver/api/shop/v1"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/events"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/store"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/code"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/metrics"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/validation"
	"github.com/maxiaolu1981/cretem/shop-apiserver/pkg/log"
)

// OrderSrv 处理订单业务。订单引用的用户/地址/商品只在写入时校验存在性。
type OrderSrv interface {
	Create(ctx context.Context, req *v1.CreateOrderRequest) (*v1.Order, error)
	Update(ctx context.Context, id uint64, req *v1.UpdateOrderRequest) (*v1.Order, error)
	Delete(ctx context.Context, id uint64) error
	Get(ctx context.Context, id uint64) (*v1.Order, error)
	List(ctx context.Context, filter *v1.OrderFilter, opts metav1.ListOptions) (*v1.OrderList, error)
}

var _ OrderSrv = &orderService{}

type orderService struct {
	store    store.Factory
	producer events.MessageProducer
}

func newOrders(s *service) *orderService {
	return &orderService{store: s.store, producer: s.producer}
}

// checkReferences 校验订单引用的用户与地址。引用缺失按冲突处理而非 404：
// 资源本身(订单)的路径是有效的，是请求体里的引用无法满足。
func (o *orderService) checkReferences(ctx context.Context, userID, addressID uint64) error {
	if _, err := o.store.Users().Get(ctx, userID, metav1.GetOptions{}); err != nil {
		if errors.IsCode(err, code.ErrUserNotFound) {
			return errors.WithCode(code.ErrInvalidReference, "引用的用户 %d 不存在", userID)
		}
		return err
	}
	if _, err := o.store.Addresses().Get(ctx, userID, addressID, metav1.GetOptions{}); err != nil {
		if errors.IsCode(err, code.ErrAddressNotFound) {
			return errors.WithCode(code.ErrInvalidReference, "引用的地址 %d 不属于用户 %d", addressID, userID)
		}
		return err
	}
	return nil
}

func (o *orderService) Create(ctx context.Context, req *v1.CreateOrderRequest) (order *v1.Order, err error) {
	defer func(start time.Time) { metrics.RecordBusiness("order", "create", start, err) }(time.Now())

	if err = o.checkReferences(ctx, req.UserID, req.AddressID); err != nil {
		return nil, err
	}

	lines := make([]v1.OrderProduct, 0, len(req.Lines))
	for _, line := range req.Lines {
		if _, err = o.store.Products().Get(ctx, line.ProductID, metav1.GetOptions{}); err != nil {
			if errors.IsCode(err, code.ErrProductNotFound) {
				return nil, errors.WithCode(code.ErrInvalidReference, "引用的商品 %d 不存在", line.ProductID)
			}
			return nil, err
		}
		quantity := line.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		lines = append(lines, v1.OrderProduct{ProductID: line.ProductID, Quantity: quantity})
	}

	status := req.Status
	if status == "" {
		status = v1.OrderStatusPending
	}

	order = &v1.Order{
		UserID:      req.UserID,
		AddressID:   req.AddressID,
		TotalAmount: req.TotalAmount,
		Status:      status,
	}
	if err = validation.Struct(order); err != nil {
		return nil, err
	}
	if err = o.store.Orders().Create(ctx, order, lines, metav1.CreateOptions{}); err != nil {
		return nil, err
	}

	o.publish(ctx, events.OrderCreated, order)
	return order, nil
}

func (o *orderService) Update(ctx context.Context, id uint64, req *v1.UpdateOrderRequest) (order *v1.Order, err error) {
	defer func(start time.Time) { metrics.RecordBusiness("order", "update", start, err) }(time.Now())

	order, err = o.store.Orders().Get(ctx, id, metav1.GetOptions{})
	if err != nil {
		return nil, err
	}

	if req.AddressID != nil {
		// 新地址仍需属于下单用户
		if err = o.checkReferences(ctx, order.UserID, *req.AddressID); err != nil {
			return nil, err
		}
		order.AddressID = *req.AddressID
	}
	if req.TotalAmount != nil {
		order.TotalAmount = *req.TotalAmount
	}
	if req.Status != nil {
		order.Status = *req.Status
	}

	if err = validation.Struct(order); err != nil {
		return nil, err
	}
	if err = o.store.Orders().Update(ctx, order, metav1.UpdateOptions{}); err != nil {
		return nil, err
	}

	o.publish(ctx, events.OrderUpdated, order)
	return order, nil
}

func (o *orderService) Delete(ctx context.Context, id uint64) (err error) {
	defer func(start time.Time) { metrics.RecordBusiness("order", "delete", start, err) }(time.Now())

	order, err := o.store.Orders().Get(ctx, id, metav1.GetOptions{})
	if err != nil {
		return err
	}
	if err = o.store.Orders().Delete(ctx, id, metav1.DeleteOptions{}); err != nil {
		return err
	}

	o.publish(ctx, events.OrderDeleted, order)
	return nil
}

func (o *orderService) Get(ctx context.Context, id uint64) (order *v1.Order, err error) {
	defer func(start time.Time) { metrics.RecordBusiness("order", "get", start, err) }(time.Now())

	return o.store.Orders().Get(ctx, id, metav1.GetOptions{})
}

func (o *orderService) List(ctx context.Context, filter *v1.OrderFilter, opts metav1.ListOptions) (list *v1.OrderList, err error) {
	defer func(start time.Time) { metrics.RecordBusiness("order", "list", start, err) }(time.Now())

	return o.store.Orders().List(ctx, filter, opts)
}

// publish 发布订单事件。事件属于旁路，失败只记日志不回滚业务。
func (o *orderService) publish(ctx context.Context, eventType string, order *v1.Order) {
	if err := o.producer.PublishOrderEvent(ctx, eventType, order); err != nil {
		log.L(ctx).Warnw("订单事件发布失败", "type", eventType, "orderID", order.ID, "err", err)
	}
}

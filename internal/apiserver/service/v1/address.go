package v1

import (
	"context"
	"time"

	metav1 "github.com/maxiaolu1981/cretem/nexuscore/component-base/meta/v1"

	v1 "github.com/maxiaolu1981/cretem/shop-apiserver/api/shop/v1"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/store"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/metrics"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/validation"
)

// AddressSrv 处理收货地址业务，所有操作都以归属用户为前提。
type AddressSrv interface {
	Create(ctx context.Context, userID uint64, req *v1.CreateAddressRequest) (*v1.Address, error)
	Update(ctx context.Context, userID, addressID uint64, req *v1.UpdateAddressRequest) (*v1.Address, error)
	Delete(ctx context.Context, userID, addressID uint64) error
	Get(ctx context.Context, userID, addressID uint64) (*v1.Address, error)
	List(ctx context.Context, userID uint64, opts metav1.ListOptions) (*v1.AddressList, error)
}

var _ AddressSrv = &addressService{}

type addressService struct {
	store store.Factory
}

func newAddresses(s *service) *addressService {
	return &addressService{store: s.store}
}

// requireUser 校验归属用户存在，不存在时透传用户 404。
func (a *addressService) requireUser(ctx context.Context, userID uint64) error {
	_, err := a.store.Users().Get(ctx, userID, metav1.GetOptions{})
	return err
}

func (a *addressService) Create(ctx context.Context, userID uint64, req *v1.CreateAddressRequest) (address *v1.Address, err error) {
	defer func(start time.Time) { metrics.RecordBusiness("address", "create", start, err) }(time.Now())

	if err = a.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	address = &v1.Address{
		UserID:     userID,
		Street:     req.Street,
		City:       req.City,
		PostalCode: req.PostalCode,
	}
	if err = validation.Struct(address); err != nil {
		return nil, err
	}
	if err = a.store.Addresses().Create(ctx, address, metav1.CreateOptions{}); err != nil {
		return nil, err
	}
	return address, nil
}

func (a *addressService) Update(ctx context.Context, userID, addressID uint64, req *v1.UpdateAddressRequest) (address *v1.Address, err error) {
	defer func(start time.Time) { metrics.RecordBusiness("address", "update", start, err) }(time.Now())

	address, err = a.store.Addresses().Get(ctx, userID, addressID, metav1.GetOptions{})
	if err != nil {
		return nil, err
	}

	if req.Street != nil {
		address.Street = *req.Street
	}
	if req.City != nil {
		address.City = *req.City
	}
	if req.PostalCode != nil {
		address.PostalCode = *req.PostalCode
	}

	if err = validation.Struct(address); err != nil {
		return nil, err
	}
	if err = a.store.Addresses().Update(ctx, address, metav1.UpdateOptions{}); err != nil {
		return nil, err
	}
	return address, nil
}

func (a *addressService) Delete(ctx context.Context, userID, addressID uint64) (err error) {
	defer func(start time.Time) { metrics.RecordBusiness("address", "delete", start, err) }(time.Now())

	return a.store.Addresses().Delete(ctx, userID, addressID, metav1.DeleteOptions{})
}

func (a *addressService) Get(ctx context.Context, userID, addressID uint64) (address *v1.Address, err error) {
	defer func(start time.Time) { metrics.RecordBusiness("address", "get", start, err) }(time.Now())

	return a.store.Addresses().Get(ctx, userID, addressID, metav1.GetOptions{})
}

func (a *addressService) List(ctx context.Context, userID uint64, opts metav1.ListOptions) (list *v1.AddressList, err error) {
	defer func(start time.Time) { metrics.RecordBusiness("address", "list", start, err) }(time.Now())

	if err = a.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return a.store.Addresses().ListByUser(ctx, userID, opts)
}

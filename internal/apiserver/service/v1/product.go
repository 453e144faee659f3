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

// ProductSrv 处理商品业务。
type ProductSrv interface {
	Create(ctx context.Context, req *v1.CreateProductRequest) (*v1.Product, error)
	Update(ctx context.Context, id uint64, req *v1.UpdateProductRequest) (*v1.Product, error)
	Delete(ctx context.Context, id uint64) error
	Get(ctx context.Context, id uint64) (*v1.Product, error)
	List(ctx context.Context, filter *v1.ProductFilter, opts metav1.ListOptions) (*v1.ProductList, error)
}

var _ ProductSrv = &productService{}

type productService struct {
	store store.Factory
}

func newProducts(s *service) *productService {
	return &productService{store: s.store}
}

func (p *productService) Create(ctx context.Context, req *v1.CreateProductRequest) (product *v1.Product, err error) {
	defer func(start time.Time) { metrics.RecordBusiness("product", "create", start, err) }(time.Now())

	product = &v1.Product{
		ObjectMeta:    metav1.ObjectMeta{Name: req.Name},
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		Description:   req.Description,
	}
	if err = validation.Struct(product); err != nil {
		return nil, err
	}
	if err = p.store.Products().Create(ctx, product, metav1.CreateOptions{}); err != nil {
		return nil, err
	}
	return product, nil
}

func (p *productService) Update(ctx context.Context, id uint64, req *v1.UpdateProductRequest) (product *v1.Product, err error) {
	defer func(start time.Time) { metrics.RecordBusiness("product", "update", start, err) }(time.Now())

	product, err = p.store.Products().Get(ctx, id, metav1.GetOptions{})
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	if req.Description != nil {
		product.Description = *req.Description
	}

	if err = validation.Struct(product); err != nil {
		return nil, err
	}
	if err = p.store.Products().Update(ctx, product, metav1.UpdateOptions{}); err != nil {
		return nil, err
	}
	return product, nil
}

func (p *productService) Delete(ctx context.Context, id uint64) (err error) {
	defer func(start time.Time) { metrics.RecordBusiness("product", "delete", start, err) }(time.Now())

	return p.store.Products().Delete(ctx, id, metav1.DeleteOptions{})
}

func (p *productService) Get(ctx context.Context, id uint64) (product *v1.Product, err error) {
	defer func(start time.Time) { metrics.RecordBusiness("product", "get", start, err) }(time.Now())

	return p.store.Products().Get(ctx, id, metav1.GetOptions{})
}

func (p *productService) List(ctx context.Context, filter *v1.ProductFilter, opts metav1.ListOptions) (list *v1.ProductList, err error) {
	defer func(start time.Time) { metrics.RecordBusiness("product", "list", start, err) }(time.Now())

	return p.store.Products().List(ctx, filter, opts)
}

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

type products struct {
	db *gorm.DB
}

func newProducts(ds *datastore) *products {
	return &products{ds.db}
}

func (p *products) Create(ctx context.Context, product *v1.Product, opts metav1.CreateOptions) error {
	if err := p.db.WithContext(ctx).Create(product).Error; err != nil {
		return errors.WithCode(code.ErrDatabase, "创建商品失败: %s", err.Error())
	}
	return nil
}

func (p *products) Update(ctx context.Context, product *v1.Product, opts metav1.UpdateOptions) error {
	if err := p.db.WithContext(ctx).Save(product).Error; err != nil {
		return errors.WithCode(code.ErrDatabase, "更新商品失败: %s", err.Error())
	}
	return nil
}

func (p *products) Delete(ctx context.Context, id uint64, opts metav1.DeleteOptions) error {
	result := p.db.WithContext(ctx).Where("id = ?", id).Delete(&v1.Product{})
	if result.Error != nil {
		return errors.WithCode(code.ErrDatabase, "删除商品失败: %s", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errors.WithCode(code.ErrProductNotFound, "商品 %d 不存在", id)
	}
	return nil
}

func (p *products) Get(ctx context.Context, id uint64, opts metav1.GetOptions) (*v1.Product, error) {
	product := &v1.Product{}
	err := p.db.WithContext(ctx).Where("id = ?", id).First(product).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithCode(code.ErrProductNotFound, "商品 %d 不存在", id)
		}
		return nil, errors.WithCode(code.ErrDatabase, "查询商品失败: %s", err.Error())
	}
	return product, nil
}

func (p *products) List(ctx context.Context, filter *v1.ProductFilter, opts metav1.ListOptions) (*v1.ProductList, error) {
	ret := &v1.ProductList{}

	tx := p.db.WithContext(ctx).Model(&v1.Product{})
	if filter != nil && filter.Name != "" {
		tx = tx.Where("name = ?", filter.Name)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, errors.WithCode(code.ErrDatabase, "统计商品失败: %s", err.Error())
	}

	if err := applyListOptions(tx, opts).Find(&ret.Items).Error; err != nil {
		return nil, errors.WithCode(code.ErrDatabase, "查询商品列表失败: %s", err.Error())
	}

	ret.TotalCount = total
	return ret, nil
}

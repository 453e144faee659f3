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

type addresses struct {
	db *gorm.DB
}

func newAddresses(ds *datastore) *addresses {
	return &addresses{ds.db}
}

func (a *addresses) Create(ctx context.Context, address *v1.Address, opts metav1.CreateOptions) error {
	if err := a.db.WithContext(ctx).Create(address).Error; err != nil {
		return errors.WithCode(code.ErrDatabase, "创建地址失败: %s", err.Error())
	}
	return nil
}

func (a *addresses) Update(ctx context.Context, address *v1.Address, opts metav1.UpdateOptions) error {
	if err := a.db.WithContext(ctx).Save(address).Error; err != nil {
		return errors.WithCode(code.ErrDatabase, "更新地址失败: %s", err.Error())
	}
	return nil
}

func (a *addresses) Delete(ctx context.Context, userID, addressID uint64, opts metav1.DeleteOptions) error {
	result := a.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", addressID, userID).
		Delete(&v1.Address{})
	if result.Error != nil {
		return errors.WithCode(code.ErrDatabase, "删除地址失败: %s", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errors.WithCode(code.ErrAddressNotFound, "用户 %d 的地址 %d 不存在", userID, addressID)
	}
	return nil
}

func (a *addresses) Get(ctx context.Context, userID, addressID uint64, opts metav1.GetOptions) (*v1.Address, error) {
	address := &v1.Address{}
	err := a.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", addressID, userID).
		First(address).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithCode(code.ErrAddressNotFound, "用户 %d 的地址 %d 不存在", userID, addressID)
		}
		return nil, errors.WithCode(code.ErrDatabase, "查询地址失败: %s", err.Error())
	}
	return address, nil
}

func (a *addresses) ListByUser(ctx context.Context, userID uint64, opts metav1.ListOptions) (*v1.AddressList, error) {
	ret := &v1.AddressList{}

	tx := a.db.WithContext(ctx).Model(&v1.Address{}).Where("user_id = ?", userID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, errors.WithCode(code.ErrDatabase, "统计地址失败: %s", err.Error())
	}

	if err := applyListOptions(tx, opts).Find(&ret.Items).Error; err != nil {
		return nil, errors.WithCode(code.ErrDatabase, "查询地址列表失败: %s", err.Error())
	}

	ret.TotalCount = total
	return ret, nil
}

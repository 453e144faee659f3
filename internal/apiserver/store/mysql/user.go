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

type users struct {
	db *gorm.DB
}

func newUsers(ds *datastore) *users {
	return &users{ds.db}
}

func (u *users) Create(ctx context.Context, user *v1.User, opts metav1.CreateOptions) error {
	if err := u.db.WithContext(ctx).Create(user).Error; err != nil {
		if isDuplicateEntry(err) {
			return errors.WithCode(code.ErrUserAlreadyExist, "邮箱 %s 已被占用", user.Email)
		}
		return errors.WithCode(code.ErrDatabase, "创建用户失败: %s", err.Error())
	}
	return nil
}

func (u *users) Update(ctx context.Context, user *v1.User, opts metav1.UpdateOptions) error {
	// Save 全量落盘；部分更新语义由 service 层先读后改保证
	if err := u.db.WithContext(ctx).Omit("Addresses", "Orders").Save(user).Error; err != nil {
		if isDuplicateEntry(err) {
			return errors.WithCode(code.ErrUserAlreadyExist, "邮箱 %s 已被占用", user.Email)
		}
		return errors.WithCode(code.ErrDatabase, "更新用户失败: %s", err.Error())
	}
	return nil
}

// Delete 在同一事务里删除用户及其全部地址；订单有意保留（user_id 悬空）。
func (u *users) Delete(ctx context.Context, id uint64, opts metav1.DeleteOptions) error {
	tx := u.db.WithContext(ctx)
	if opts.Unscoped {
		tx = tx.Unscoped()
	}

	return tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&v1.Address{}).Error; err != nil {
			return errors.WithCode(code.ErrDatabase, "删除用户地址失败: %s", err.Error())
		}

		result := tx.Where("id = ?", id).Delete(&v1.User{})
		if result.Error != nil {
			return errors.WithCode(code.ErrDatabase, "删除用户失败: %s", result.Error.Error())
		}
		if result.RowsAffected == 0 {
			return errors.WithCode(code.ErrUserNotFound, "用户 %d 不存在", id)
		}
		return nil
	})
}

func (u *users) Get(ctx context.Context, id uint64, opts metav1.GetOptions) (*v1.User, error) {
	user := &v1.User{}
	err := u.db.WithContext(ctx).Preload("Addresses").Where("id = ?", id).First(user).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithCode(code.ErrUserNotFound, "用户 %d 不存在", id)
		}
		return nil, errors.WithCode(code.ErrDatabase, "查询用户失败: %s", err.Error())
	}
	return user, nil
}

func (u *users) List(ctx context.Context, filter *v1.UserFilter, opts metav1.ListOptions) (*v1.UserList, error) {
	ret := &v1.UserList{}

	tx := u.db.WithContext(ctx).Model(&v1.User{})
	if filter != nil {
		if filter.Name != "" {
			tx = tx.Where("name = ?", filter.Name)
		}
		if filter.Email != "" {
			tx = tx.Where("email = ?", filter.Email)
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, errors.WithCode(code.ErrDatabase, "统计用户失败: %s", err.Error())
	}

	if err := applyListOptions(tx, opts).Find(&ret.Items).Error; err != nil {
		return nil, errors.WithCode(code.ErrDatabase, "查询用户列表失败: %s", err.Error())
	}

	ret.TotalCount = total
	return ret, nil
}

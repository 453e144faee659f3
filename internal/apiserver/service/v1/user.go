package v1

import (
	"context"
	"fmt"
	"time"

	metav1 "github.com/maxiaolu1981/cretem/nexuscore/component-base/meta/v1"

	v1 "github.com/maxiaolu1981/cretem/shop-apiserver/api/shop/v1"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/cache"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/store"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/metrics"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/validation"
	"github.com/maxiaolu1981/cretem/shop-apiserver/pkg/log"
)

// UserSrv 处理用户相关业务。
type UserSrv interface {
	Create(ctx context.Context, req *v1.CreateUserRequest) (*v1.User, error)
	Update(ctx context.Context, id uint64, req *v1.UpdateUserRequest) (*v1.User, error)
	Delete(ctx context.Context, id uint64) error
	Get(ctx context.Context, id uint64) (*v1.User, error)
	List(ctx context.Context, filter *v1.UserFilter, opts metav1.ListOptions) (*v1.UserList, error)
}

var _ UserSrv = &userService{}

type userService struct {
	store store.Factory
	cache *cache.UserCache
}

func newUsers(s *service) *userService {
	return &userService{store: s.store, cache: s.userCache}
}

func (u *userService) Create(ctx context.Context, req *v1.CreateUserRequest) (user *v1.User, err error) {
	defer func(start time.Time) { metrics.RecordBusiness("user", "create", start, err) }(time.Now())

	description := req.Description
	if description == "" {
		description = fmt.Sprintf("User %s", req.Name)
	}

	user = &v1.User{
		ObjectMeta:  metav1.ObjectMeta{Name: req.Name},
		Email:       req.Email,
		Description: description,
	}
	if err = validation.Struct(user); err != nil {
		return nil, err
	}
	if err = u.store.Users().Create(ctx, user, metav1.CreateOptions{}); err != nil {
		return nil, err
	}

	log.L(ctx).Infow("用户创建成功", "id", user.ID, "name", user.Name)
	return user, nil
}

func (u *userService) Update(ctx context.Context, id uint64, req *v1.UpdateUserRequest) (user *v1.User, err error) {
	defer func(start time.Time) { metrics.RecordBusiness("user", "update", start, err) }(time.Now())

	user, err = u.store.Users().Get(ctx, id, metav1.GetOptions{})
	if err != nil {
		return nil, err
	}

	// nil 指针表示请求未携带该字段，保持原值
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Description != nil {
		user.Description = *req.Description
	}

	if err = validation.Struct(user); err != nil {
		return nil, err
	}
	if err = u.store.Users().Update(ctx, user, metav1.UpdateOptions{}); err != nil {
		return nil, err
	}

	u.cache.Delete(ctx, id)
	return user, nil
}

func (u *userService) Delete(ctx context.Context, id uint64) (err error) {
	defer func(start time.Time) { metrics.RecordBusiness("user", "delete", start, err) }(time.Now())

	if err = u.store.Users().Delete(ctx, id, metav1.DeleteOptions{}); err != nil {
		return err
	}

	u.cache.Delete(ctx, id)
	log.L(ctx).Infow("用户删除成功", "id", id)
	return nil
}

func (u *userService) Get(ctx context.Context, id uint64) (user *v1.User, err error) {
	defer func(start time.Time) { metrics.RecordBusiness("user", "get", start, err) }(time.Now())

	if cached := u.cache.Get(ctx, id); cached != nil {
		return cached, nil
	}

	user, err = u.store.Users().Get(ctx, id, metav1.GetOptions{})
	if err != nil {
		return nil, err
	}

	u.cache.Set(ctx, user)
	return user, nil
}

func (u *userService) List(ctx context.Context, filter *v1.UserFilter, opts metav1.ListOptions) (list *v1.UserList, err error) {
	defer func(start time.Time) { metrics.RecordBusiness("user", "list", start, err) }(time.Now())

	return u.store.Users().List(ctx, filter, opts)
}

// Package v1 实现商城的业务逻辑层：位于控制层与仓储层之间，
// 负责业务规则（默认值、引用校验、部分更新合并）、缓存协同与事件发布。
package v1

import (
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/cache"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/events"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/store"
)

// Service 是业务层入口，按资源划分子服务。
type Service interface {
	Users() UserSrv
	Addresses() AddressSrv
	Products() ProductSrv
	Orders() OrderSrv
}

type service struct {
	store     store.Factory
	userCache *cache.UserCache
	producer  events.MessageProducer
}

// NewService 组装业务层。userCache/producer 允许为 nil/noop，核心流程不依赖它们。
func NewService(storeIns store.Factory, userCache *cache.UserCache, producer events.MessageProducer) Service {
	if producer == nil {
		producer = events.NewNoopProducer()
	}
	return &service{
		store:     storeIns,
		userCache: userCache,
		producer:  producer,
	}
}

func (s *service) Users() UserSrv {
	return newUsers(s)
}

func (s *service) Addresses() AddressSrv {
	return newAddresses(s)
}

func (s *service) Products() ProductSrv {
	return newProducts(s)
}

func (s *service) Orders() OrderSrv {
	return newOrders(s)
}

// Package mysql 是 store.Factory 的 MySQL/GORM 实现。
package mysql

import (
	stderrors "errors"
	"fmt"
	"sync"

	driver "github.com/go-sql-driver/mysql"
	metav1 "github.com/maxiaolu1981/cretem/nexuscore/component-base/meta/v1"
	"gorm.io/gorm"

	v1 "github.com/maxiaolu1981/cretem/shop-apiserver/api/shop/v1"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/store"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/options"
	"github.com/maxiaolu1981/cretem/shop-apiserver/pkg/db"
	"github.com/maxiaolu1981/cretem/shop-apiserver/pkg/log"
)

var (
	mysqlFactory store.Factory
	once         sync.Once
)

type datastore struct {
	db *gorm.DB
}

func (ds *datastore) Users() store.UserStore {
	return newUsers(ds)
}

func (ds *datastore) Addresses() store.AddressStore {
	return newAddresses(ds)
}

func (ds *datastore) Products() store.ProductStore {
	return newProducts(ds)
}

func (ds *datastore) Orders() store.OrderStore {
	return newOrders(ds)
}

func (ds *datastore) Close() error {
	sqlDB, err := ds.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// NewDatastore 用已建立的 gorm 连接构建仓储工厂（测试和 seed 工具使用）。
func NewDatastore(dbIns *gorm.DB) store.Factory {
	return &datastore{db: dbIns}
}

// GetMySQLFactoryOr 返回单例仓储工厂，首次调用时建立连接并迁移表结构。
func GetMySQLFactoryOr(opts *options.MySQLOptions) (store.Factory, error) {
	if opts == nil && mysqlFactory == nil {
		return nil, fmt.Errorf("创建mysql工厂失败：未提供配置")
	}

	var err error
	once.Do(func() {
		dbOptions := &db.Options{
			Host:                  opts.Host,
			Username:              opts.Username,
			Password:              opts.Password,
			Database:              opts.Database,
			MaxIdleConnections:    opts.MaxIdleConnections,
			MaxOpenConnections:    opts.MaxOpenConnections,
			MaxConnectionLifeTime: opts.MaxConnectionLifeTime,
			LogLevel:              opts.LogLevel,
			SlowQueryThreshold:    opts.SlowQueryThreshold,
			Timeout:               opts.Timeout,
		}

		var dbIns *gorm.DB
		dbIns, err = db.New(dbOptions)
		if err != nil {
			return
		}

		if err = Migrate(dbIns); err != nil {
			return
		}

		mysqlFactory = &datastore{db: dbIns}
		log.Infof("mysql仓储工厂初始化成功: %s/%s", opts.Host, opts.Database)
	})

	if err != nil {
		return nil, err
	}
	if mysqlFactory == nil {
		return nil, fmt.Errorf("mysql仓储工厂尚未初始化")
	}

	return mysqlFactory, nil
}

// Migrate 注册连接表并迁移所有业务表。
func Migrate(dbIns *gorm.DB) error {
	if err := dbIns.SetupJoinTable(&v1.Order{}, "Products", &v1.OrderProduct{}); err != nil {
		return err
	}

	return dbIns.AutoMigrate(
		&v1.User{},
		&v1.Address{},
		&v1.Product{},
		&v1.Order{},
	)
}

// isDuplicateEntry 判断是否唯一键冲突：兼容 gorm 方言翻译和原生 MySQL 1062。
func isDuplicateEntry(err error) bool {
	if stderrors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var mysqlErr *driver.MySQLError
	return stderrors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

// applyListOptions 统一分页语义：按 id 稳定排序，Offset/Limit 来自上层换算。
func applyListOptions(tx *gorm.DB, opts metav1.ListOptions) *gorm.DB {
	if opts.Offset != nil {
		tx = tx.Offset(int(*opts.Offset))
	}
	if opts.Limit != nil {
		tx = tx.Limit(int(*opts.Limit))
	}
	return tx.Order("id")
}

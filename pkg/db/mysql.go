package db

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/maxiaolu1981/cretem/shop-apiserver/pkg/log"
)

type Options struct {
	Host                  string           // 数据库主机地址（如 "127.0.0.1:3306"）
	Username              string           // 数据库访问用户名
	Password              string           // 数据库访问密码
	Database              string           // 要连接的数据库名
	MaxIdleConnections    int              // 连接池中的最大空闲连接数
	MaxOpenConnections    int              // 与数据库的最大打开连接数
	MaxConnectionLifeTime time.Duration    // 连接的最大可重用时间
	LogLevel              int              // 日志级别（GORM 日志详细程度）
	SlowQueryThreshold    time.Duration    // 慢查询告警阈值
	Logger                logger.Interface // GORM 日志器实例（用于自定义日志输出）
	TablePrefix           string           // 表前缀
	Timeout               time.Duration    // 单条 SQL 超时
}

func New(opts *Options) (*gorm.DB, error) {
	setDefaultOptions(opts)

	dsn := fmt.Sprintf(`%s:%s@tcp(%s)/%s?charset=utf8mb4&parseTime=%t&loc=%s&timeout=10s&readTimeout=30s&writeTimeout=30s`,
		opts.Username,
		opts.Password,
		opts.Host,
		opts.Database,
		true,
		"Local")

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:                 opts.Logger,
		PrepareStmt:            true, // 预编译语句，提高性能
		SkipDefaultTransaction: true, // 禁用默认事务，提高性能
		// 迁移时禁用外键约束，引用完整性由 service 层校验
		DisableForeignKeyConstraintWhenMigrating: true,
		// 把驱动错误翻译成 gorm.ErrDuplicatedKey 等方言无关错误
		TranslateError: true,
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   opts.TablePrefix,
			SingularTable: true, // 使用单数表名
		},
	})
	if err != nil {
		log.Errorf("failed to open database: %v", err)
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Errorf("failed to get sql.DB: %v", err)
		return nil, fmt.Errorf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(opts.MaxOpenConnections)
	sqlDB.SetConnMaxLifetime(opts.MaxConnectionLifeTime)
	sqlDB.SetMaxIdleConns(opts.MaxIdleConnections)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database ping failed: %v", err)
	}

	// 全局 SQL 查询超时拦截器
	addQueryTimeoutCallbacks(db, opts.Timeout)

	log.Infof("Database connection pool initialized: "+
		"MaxOpenConns=%d, MaxIdleConns=%d, ConnMaxLifetime=%v",
		opts.MaxOpenConnections, opts.MaxIdleConnections, opts.MaxConnectionLifeTime)

	return db, nil
}

// 为增删改查注册超时回调，保证没带超时的语句也有兜底期限。
func addQueryTimeoutCallbacks(db *gorm.DB, timeout time.Duration) {
	db.Callback().Create().Before("gorm:create").Register("query_timeout:create", func(db *gorm.DB) {
		setQueryTimeout(db, timeout)
	})
	db.Callback().Create().After("gorm:create").Register("query_timeout:create_cleanup", cleanupTimeout)

	db.Callback().Query().Before("gorm:query").Register("query_timeout:query", func(db *gorm.DB) {
		setQueryTimeout(db, timeout)
	})
	db.Callback().Query().After("gorm:query").Register("query_timeout:query_cleanup", cleanupTimeout)

	db.Callback().Update().Before("gorm:update").Register("query_timeout:update", func(db *gorm.DB) {
		setQueryTimeout(db, timeout)
	})
	db.Callback().Update().After("gorm:update").Register("query_timeout:update_cleanup", cleanupTimeout)

	db.Callback().Delete().Before("gorm:delete").Register("query_timeout:delete", func(db *gorm.DB) {
		setQueryTimeout(db, timeout)
	})
	db.Callback().Delete().After("gorm:delete").Register("query_timeout:delete_cleanup", cleanupTimeout)
}

// 为当前SQL设置超时Context
func setQueryTimeout(db *gorm.DB, timeout time.Duration) {
	if db.Statement.Context == nil || db.Statement.Context.Done() == nil {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		db.Statement.Context = ctx
		db.InstanceSet("query_timeout_cancel", cancel)
	}
}

// 清理超时Context的cancel函数，避免资源泄漏
func cleanupTimeout(db *gorm.DB) {
	if cancel, ok := db.InstanceGet("query_timeout_cancel"); ok {
		if c, ok := cancel.(context.CancelFunc); ok {
			c()
		}
		db.InstanceSet("query_timeout_cancel", nil)
	}
}

// 为未配置的参数设置合理默认值
func setDefaultOptions(opts *Options) {
	if opts.MaxOpenConnections <= 0 {
		opts.MaxOpenConnections = 200
	}
	if opts.MaxIdleConnections <= 0 {
		opts.MaxIdleConnections = 50
	}
	if opts.MaxConnectionLifeTime <= 0 {
		opts.MaxConnectionLifeTime = 1 * time.Hour
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = newGormLogger(opts)
	}
}

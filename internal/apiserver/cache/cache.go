// Package cache 提供用户资源的 Redis 旁路缓存（cache-aside）。
// Redis 不可用或未配置时由上层直接读库，缓存只做加速不做真相。
package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	jsoniter "github.com/json-iterator/go"

	v1 "github.com/maxiaolu1981/cretem/shop-apiserver/api/shop/v1"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/metrics"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/options"
	"github.com/maxiaolu1981/cretem/shop-apiserver/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	userKeyPrefix = "shop:user:"
	defaultTTL    = 5 * time.Minute
)

// NewRedisClient 按配置建立 UniversalClient。集群与单机由 enable-cluster 区分。
func NewRedisClient(opts *options.RedisOptions) (redis.UniversalClient, error) {
	universalOpts := &redis.UniversalOptions{
		Addrs:        opts.Addrs,
		Username:     opts.Username,
		Password:     opts.Password,
		DB:           opts.Database,
		MasterName:   opts.MasterName,
		PoolSize:     opts.MaxActive,
		MinIdleConns: opts.MaxIdle,
		DialTimeout:  time.Duration(opts.Timeout) * time.Second,
	}

	var client redis.UniversalClient
	if opts.EnableCluster {
		client = redis.NewClusterClient(universalOpts.Cluster())
	} else {
		client = redis.NewUniversalClient(universalOpts)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	log.Infof("redis连接成功: %v", opts.Addrs)
	return client, nil
}

// UserCache 按用户 ID 缓存用户对象。
type UserCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewUserCache 构建用户缓存。client 为 nil 时所有操作都是 miss。
func NewUserCache(client redis.UniversalClient) *UserCache {
	return &UserCache{client: client, ttl: defaultTTL}
}

func userKey(id uint64) string {
	return userKeyPrefix + strconv.FormatUint(id, 10)
}

// Get 返回缓存中的用户；未命中或反序列化失败返回 nil。
func (c *UserCache) Get(ctx context.Context, id uint64) *v1.User {
	if c == nil || c.client == nil {
		return nil
	}

	data, err := c.client.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		metrics.CacheMisses.WithLabelValues("user").Inc()
		return nil
	}

	user := &v1.User{}
	if err := json.Unmarshal(data, user); err != nil {
		log.Warnf("用户缓存反序列化失败 id=%d: %v", id, err)
		metrics.CacheMisses.WithLabelValues("user").Inc()
		return nil
	}

	metrics.CacheHits.WithLabelValues("user").Inc()
	return user
}

// Set 写入缓存，失败只记日志不影响主流程。
func (c *UserCache) Set(ctx context.Context, user *v1.User) {
	if c == nil || c.client == nil || user == nil {
		return
	}

	data, err := json.Marshal(user)
	if err != nil {
		log.Warnf("用户缓存序列化失败 id=%d: %v", user.ID, err)
		return
	}
	if err := c.client.Set(ctx, userKey(user.ID), data, c.ttl).Err(); err != nil {
		log.Warnf("用户缓存写入失败 id=%d: %v", user.ID, err)
	}
}

// Delete 在用户变更或删除时失效缓存。
func (c *UserCache) Delete(ctx context.Context, id uint64) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, userKey(id)).Err(); err != nil {
		log.Warnf("用户缓存失效失败 id=%d: %v", id, err)
	}
}

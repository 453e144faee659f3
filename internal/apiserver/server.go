package apiserver

import (
	"github.com/go-redis/redis/v8"

	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/cache"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/config"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/events"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/store"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/store/mysql"
	genericapiserver "github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/server"
	"github.com/maxiaolu1981/cretem/shop-apiserver/pkg/log"
)

type apiServer struct {
	genericAPIServer *genericapiserver.GenericAPIServer
	cfg              *config.Config

	storeFactory store.Factory
	redisClient  redis.UniversalClient
	producer     events.MessageProducer
}

type preparedAPIServer struct {
	*apiServer
}

func createAPIServer(cfg *config.Config) (*apiServer, error) {
	genericConfig := buildGenericConfig(cfg)

	genericServer, err := genericConfig.Complete().New()
	if err != nil {
		return nil, err
	}

	storeFactory, err := mysql.GetMySQLFactoryOr(cfg.MySQLOptions)
	if err != nil {
		return nil, err
	}
	store.SetClient(storeFactory)

	// 缓存是旁路加速，Redis 连不上时降级为直读数据库
	redisClient, err := cache.NewRedisClient(cfg.RedisOptions)
	if err != nil {
		log.Warnf("redis不可用, 用户缓存降级: %v", err)
		redisClient = nil
	}

	producer := events.NewProducer(cfg.KafkaOptions)

	return &apiServer{
		genericAPIServer: genericServer,
		cfg:              cfg,
		storeFactory:     storeFactory,
		redisClient:      redisClient,
		producer:         producer,
	}, nil
}

func buildGenericConfig(cfg *config.Config) *genericapiserver.Config {
	genericConfig := genericapiserver.NewConfig()
	genericConfig.Mode = cfg.GenericServerRunOptions.Mode
	genericConfig.Healthz = cfg.GenericServerRunOptions.Healthz
	genericConfig.Middlewares = cfg.GenericServerRunOptions.Middlewares
	genericConfig.EnableProfiling = cfg.GenericServerRunOptions.EnableProfiling
	genericConfig.EnableMetrics = cfg.GenericServerRunOptions.EnableMetrics
	genericConfig.InsecureServingInfo = &genericapiserver.InsecureServingInfo{
		BindAddress: cfg.InsecureServing.BindAddress,
		BindPort:    cfg.InsecureServing.BindPort,
	}

	return genericConfig
}

// PrepareRun 注册业务路由并挂接资源回收。
func (s *apiServer) PrepareRun() preparedAPIServer {
	initRouter(s)

	return preparedAPIServer{s}
}

func (s preparedAPIServer) Run() error {
	defer s.close()

	return s.genericAPIServer.Run()
}

func (s *apiServer) close() {
	if err := s.producer.Close(); err != nil {
		log.Warnf("关闭kafka生产者失败: %v", err)
	}
	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Warnf("关闭redis连接失败: %v", err)
		}
	}
	if err := s.storeFactory.Close(); err != nil {
		log.Warnf("关闭数据库连接失败: %v", err)
	}
	log.Flush()
}

// Package apiserver 是 shop-apiserver 的装配入口：解析配置、
// 初始化存储/缓存/事件依赖、注册路由并启动 HTTP 服务。
package apiserver

import (
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/config"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/options"
	"github.com/maxiaolu1981/cretem/shop-apiserver/pkg/app"
	"github.com/maxiaolu1981/cretem/shop-apiserver/pkg/log"
)

const commandDesc = `shop-apiserver 提供商城核心资源(用户、收货地址、商品、订单)的
RESTful 管理接口, 数据落地 MySQL, 用户读走 Redis 旁路缓存, 订单变更事件
发布到 Kafka。`

// NewApp 构建 shop-apiserver 命令行应用。
func NewApp(basename string) *app.App {
	opts := options.NewOptions()
	application := app.NewApp(basename, "shop api server",
		app.WithOptions(opts),
		app.WithDescription(commandDesc),
		app.WithDefaultValidArgs(),
		app.WithRunFunc(run(opts)),
	)

	return application
}

func run(opts *options.Options) app.RunFunc {
	return func(basename string) error {
		log.Init(opts.Log)
		defer log.Flush()

		cfg, err := config.CreateConfigFromOptions(opts)
		if err != nil {
			return err
		}

		return Run(cfg)
	}
}

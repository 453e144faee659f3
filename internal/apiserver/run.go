package apiserver

import "github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/config"

// Run 按配置创建并运行 shop-apiserver，直到收到退出信号。
func Run(cfg *config.Config) error {
	server, err := createAPIServer(cfg)
	if err != nil {
		return err
	}

	return server.PrepareRun().Run()
}

// Package config 把命令行/配置文件解析出的 options 固化为运行期配置。
package config

import "github.com/maxiaolu1981/cretem/shop-apiserver/internal/apiserver/options"

// Config 是 shop-apiserver 的运行期配置，目前与 Options 同构。
type Config struct {
	*options.Options
}

// CreateConfigFromOptions 基于已完成校验的 options 构建配置。
func CreateConfigFromOptions(opts *options.Options) (*Config, error) {
	return &Config{opts}, nil
}

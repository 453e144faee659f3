package options

import (
	"net"
	"strconv"

	"github.com/maxiaolu1981/cretem/nexuscore/errors"
	"github.com/spf13/pflag"

	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/code"
)

type InsecureServingOptions struct {
	BindAddress string `json:"bind-address" mapstructure:"bind-address"`
	BindPort    int    `json:"bind-port"    mapstructure:"bind-port"`
}

func NewInsecureServingOptions() *InsecureServingOptions {
	return &InsecureServingOptions{
		BindAddress: "127.0.0.1",
		BindPort:    8080,
	}
}

func (i *InsecureServingOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&i.BindAddress, "insecure.bind-address", "b", i.BindAddress,
		"用于监听 --insecure.bind-port（不安全绑定端口）的 IP 地址（若需监听所有 IPv4 接口，设为 0.0.0.0）")
	fs.IntVarP(&i.BindPort, "insecure.bind-port", "p", i.BindPort,
		"用于提供未加密、未认证访问的端口。设为 0 可禁用该端口。")
}

func (i *InsecureServingOptions) Validate() []error {
	var errs = []error{}
	if i.BindAddress == "" {
		errs = append(errs, errors.WithCode(code.ErrValidation, "绑定的地址不能为空"))
	}
	if net.ParseIP(i.BindAddress) == nil {
		errs = append(errs, errors.WithCode(code.ErrValidation, "无效的ip地址%s", i.BindAddress))
	}
	if i.BindPort < 0 || i.BindPort > 65535 {
		errs = append(errs, errors.WithCode(code.ErrValidation, "端口必须在0-65535之间"))
	}
	if i.BindPort != 0 {
		address := net.JoinHostPort(i.BindAddress, strconv.Itoa(i.BindPort))
		if _, err := net.ResolveTCPAddr("tcp", address); err != nil {
			errs = append(errs, errors.WithCode(code.ErrValidation, "地址+端口组合无效%v", err))
		}
	}
	return errs
}

// Package options 聚合 shop-apiserver 的全部可配置项，
// 并实现 pkg/app 要求的 CliOptions/CompleteableOptions/PrintableOptions。
package options

import (
	jsoniter "github.com/json-iterator/go"
	cliFlag "github.com/maxiaolu1981/cretem/nexuscore/component-base/cli/flag"

	genericoptions "github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/options"
	"github.com/maxiaolu1981/cretem/shop-apiserver/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Options 是 shop-apiserver 的运行配置。
type Options struct {
	GenericServerRunOptions *genericoptions.ServerRunOptions       `json:"server"   mapstructure:"server"`
	InsecureServing         *genericoptions.InsecureServingOptions `json:"insecure" mapstructure:"insecure"`
	MySQLOptions            *genericoptions.MySQLOptions           `json:"mysql"    mapstructure:"mysql"`
	RedisOptions            *genericoptions.RedisOptions           `json:"redis"    mapstructure:"redis"`
	KafkaOptions            *genericoptions.KafkaOptions           `json:"kafka"    mapstructure:"kafka"`
	Log                     *log.Options                           `json:"log"      mapstructure:"log"`
}

// NewOptions 返回带默认值的配置。
func NewOptions() *Options {
	return &Options{
		GenericServerRunOptions: genericoptions.NewServerRunOptions(),
		InsecureServing:         genericoptions.NewInsecureServingOptions(),
		MySQLOptions:            genericoptions.NewMySQLOptions(),
		RedisOptions:            genericoptions.NewRedisOptions(),
		KafkaOptions:            genericoptions.NewKafkaOptions(),
		Log:                     log.NewOptions(),
	}
}

// Flags 按分组返回全部命令行标志。
func (o *Options) Flags() (fss cliFlag.NamedFlagSets) {
	o.GenericServerRunOptions.AddFlags(fss.FlagSet("generic"))
	o.InsecureServing.AddFlags(fss.FlagSet("insecure serving"))
	o.MySQLOptions.AddFlags(fss.FlagSet("mysql"))
	o.RedisOptions.AddFlags(fss.FlagSet("redis"))
	o.KafkaOptions.AddFlags(fss.FlagSet("kafka"))
	o.Log.AddFlags(fss.FlagSet("logs"))

	return fss
}

// Complete 填充依赖默认值的派生配置。
func (o *Options) Complete() error {
	o.GenericServerRunOptions.Complete()
	o.RedisOptions.Complete()
	o.KafkaOptions.Complete()

	return nil
}

// Validate 逐项校验配置。
func (o *Options) Validate() []error {
	var errs []error

	errs = append(errs, o.GenericServerRunOptions.Validate()...)
	errs = append(errs, o.InsecureServing.Validate()...)
	errs = append(errs, o.MySQLOptions.Validate()...)
	errs = append(errs, o.RedisOptions.Validate()...)
	errs = append(errs, o.KafkaOptions.Validate()...)
	errs = append(errs, o.Log.Validate()...)

	return errs
}

func (o *Options) String() string {
	data, _ := json.Marshal(o)

	return string(data)
}

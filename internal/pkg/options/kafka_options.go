package options

import (
	"time"

	"github.com/maxiaolu1981/cretem/nexuscore/component-base/validation/field"
	"github.com/spf13/pflag"
)

// KafkaOptions 定义订单事件投递的Kafka配置选项。
// Enabled 为 false 时服务退化为空实现生产者，不连接任何 broker。
type KafkaOptions struct {
	// 是否启用事件投递
	Enabled bool `json:"enabled" mapstructure:"enabled"`

	// Broker地址列表
	Brokers []string `json:"brokers" mapstructure:"brokers"`

	// Topic名称
	Topic string `json:"topic" mapstructure:"topic"`

	// 消息确认机制 (0:无需确认, 1:leader确认, -1:所有副本确认)
	RequiredAcks int `json:"requiredAcks" mapstructure:"requiredAcks"`

	// 是否启用异步模式
	Async bool `json:"async" mapstructure:"async"`

	// 批处理大小
	BatchSize int `json:"batchSize" mapstructure:"batchSize"`

	// 批处理超时时间
	BatchTimeout time.Duration `json:"batchTimeout" mapstructure:"batchTimeout"`

	// 最大重试次数
	MaxRetries int `json:"maxRetries" mapstructure:"maxRetries"`
}

// NewKafkaOptions 创建带有默认值的Kafka配置
func NewKafkaOptions() *KafkaOptions {
	return &KafkaOptions{
		Enabled:      false,
		Brokers:      []string{"127.0.0.1:9092"},
		Topic:        "shop-order-events",
		RequiredAcks: -1,
		Async:        true,
		BatchSize:    100,
		BatchTimeout: 100 * time.Millisecond,
		MaxRetries:   4,
	}
}

func (o *KafkaOptions) Complete() {
	if o.BatchSize <= 0 {
		o.BatchSize = 100
	}
	if o.BatchTimeout <= 0 {
		o.BatchTimeout = 100 * time.Millisecond
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	}
}

func (o *KafkaOptions) Validate() []error {
	errs := field.ErrorList{}
	path := field.NewPath("kafka")

	if o.Enabled && len(o.Brokers) == 0 {
		errs = append(errs, field.Invalid(path.Child("brokers"), o.Brokers, "启用事件投递时必须配置broker地址"))
	}
	if o.Enabled && o.Topic == "" {
		errs = append(errs, field.Invalid(path.Child("topic"), o.Topic, "启用事件投递时必须配置topic"))
	}
	if o.RequiredAcks < -1 || o.RequiredAcks > 1 {
		errs = append(errs, field.Invalid(path.Child("requiredAcks"), o.RequiredAcks, "取值只能是-1、0、1"))
	}

	agg := errs.ToAggregate()
	if agg == nil {
		return nil
	}
	return agg.Errors()
}

func (o *KafkaOptions) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&o.Enabled, "kafka.enabled", o.Enabled, "是否启用订单事件投递")
	fs.StringSliceVar(&o.Brokers, "kafka.brokers", o.Brokers, "Kafka broker地址列表")
	fs.StringVar(&o.Topic, "kafka.topic", o.Topic, "订单事件topic")
	fs.IntVar(&o.RequiredAcks, "kafka.required-acks", o.RequiredAcks, "消息确认机制(-1/0/1)")
	fs.BoolVar(&o.Async, "kafka.async", o.Async, "是否异步投递")
	fs.IntVar(&o.BatchSize, "kafka.batch-size", o.BatchSize, "批处理大小")
	fs.DurationVar(&o.BatchTimeout, "kafka.batch-timeout", o.BatchTimeout, "批处理超时时间")
	fs.IntVar(&o.MaxRetries, "kafka.max-retries", o.MaxRetries, "投递最大重试次数")
}

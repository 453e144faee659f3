// Package events 负责把订单领域事件发布到 Kafka。
// 未启用 Kafka 时退化为 noop 生产者，业务流程不受影响。
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/segmentio/kafka-go"

	v1 "github.com/maxiaolu1981/cretem/shop-apiserver/api/shop/v1"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/metrics"
	"github.com/maxiaolu1981/cretem/shop-apiserver/internal/pkg/options"
	"github.com/maxiaolu1981/cretem/shop-apiserver/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// 订单事件类型。
const (
	OrderCreated = "order.created.v1"
	OrderUpdated = "order.updated.v1"
	OrderDeleted = "order.deleted.v1"
)

// OrderEvent 是写入 Kafka 的订单事件载荷。
type OrderEvent struct {
	EventID     string    `json:"eventID"`
	Type        string    `json:"type"`
	OrderID     uint64    `json:"orderID"`
	UserID      uint64    `json:"userID"`
	TotalAmount float64   `json:"totalAmount"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// MessageProducer 是订单事件发布接口。
type MessageProducer interface {
	PublishOrderEvent(ctx context.Context, eventType string, order *v1.Order) error
	Close() error
}

type noopProducer struct{}

// NewNoopProducer 返回丢弃一切事件的生产者。
func NewNoopProducer() MessageProducer {
	return &noopProducer{}
}

func (n *noopProducer) PublishOrderEvent(ctx context.Context, eventType string, order *v1.Order) error {
	return nil
}

func (n *noopProducer) Close() error {
	return nil
}

type kafkaProducer struct {
	writer *kafka.Writer
	topic  string
}

// NewProducer 按配置构建订单事件生产者。Enabled=false 时返回 noop。
func NewProducer(opts *options.KafkaOptions) MessageProducer {
	if opts == nil || !opts.Enabled {
		log.Infof("kafka未启用, 订单事件将被丢弃")
		return NewNoopProducer()
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(opts.Brokers...),
		Topic:        opts.Topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequiredAcks(opts.RequiredAcks),
		Async:        opts.Async,
		BatchSize:    opts.BatchSize,
		BatchTimeout: opts.BatchTimeout,
		MaxAttempts:  opts.MaxRetries,
	}
	if opts.Async {
		// 异步模式下投递结果只能在回调里观测
		writer.Completion = func(messages []kafka.Message, err error) {
			for range messages {
				if err != nil {
					metrics.ProducerFailures.WithLabelValues(opts.Topic, "publish", "delivery").Inc()
				} else {
					metrics.ProducerSuccess.WithLabelValues(opts.Topic, "publish").Inc()
				}
			}
			if err != nil {
				log.Errorf("kafka投递失败: %v", err)
			}
		}
	}

	log.Infof("kafka生产者初始化成功: brokers=%v topic=%s", opts.Brokers, opts.Topic)
	return &kafkaProducer{writer: writer, topic: opts.Topic}
}

func (p *kafkaProducer) PublishOrderEvent(ctx context.Context, eventType string, order *v1.Order) error {
	event := &OrderEvent{
		EventID:     uuid.NewString(),
		Type:        eventType,
		OrderID:     order.ID,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
		OccurredAt:  time.Now(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		metrics.ProducerFailures.WithLabelValues(p.topic, "publish", "marshal").Inc()
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(eventType)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		metrics.ProducerFailures.WithLabelValues(p.topic, "publish", "write").Inc()
		return err
	}
	if !p.writer.Async {
		metrics.ProducerSuccess.WithLabelValues(p.topic, "publish").Inc()
	}
	return nil
}

func (p *kafkaProducer) Close() error {
	return p.writer.Close()
}

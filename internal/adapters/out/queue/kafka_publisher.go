// Package queue delivers post-commit domain events to Kafka.
package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
)

// KafkaEventPublisher implements ports.EventPublisher over one shared
// kafka.Writer. The topic travels per message so one writer serves every
// event stream.
type KafkaEventPublisher struct {
	writer *kafka.Writer
}

// NewKafkaEventPublisher creates a publisher for the given brokers.
func NewKafkaEventPublisher(brokers []string) *KafkaEventPublisher {
	return &KafkaEventPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		},
	}
}

// Publish sends one JSON-encoded event, keyed for partition affinity.
func (p *KafkaEventPublisher) Publish(ctx context.Context, topic, key string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event for %s: %w", topic, err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
	})
	if err != nil {
		return fmt.Errorf("write to %s: %w", topic, err)
	}

	return nil
}

// Close flushes pending messages and releases the connections.
func (p *KafkaEventPublisher) Close() error {
	return p.writer.Close()
}

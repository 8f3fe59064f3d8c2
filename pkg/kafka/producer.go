// Package kafka wraps segmentio/kafka-go with the message shape and producer
// behaviour shared by every event publisher in the service.
package kafka

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/compress"

	kafka_config "spalatorie/pkg/kafka/config"
	"spalatorie/pkg/logger"
)

// Producer publishes messages to a single topic.
type Producer interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

type producer struct {
	writer *kafka.Writer
	topic  string
	log    *logger.Logger

	mu     sync.RWMutex
	closed bool
}

// NewProducer creates a producer for the given topic.
func NewProducer(cfg *kafka_config.Config, topic string, log *logger.Logger) (Producer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if topic == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		MaxAttempts:  cfg.ProducerMaxAttempts,
		BatchTimeout: cfg.ProducerBatchTimeout,
		RequiredAcks: kafka.RequiredAcks(cfg.ProducerRequireAcks),
		Async:        cfg.ProducerAsync,
		Compression:  compressionCodec(cfg.ProducerCompression),
	}

	return &producer{
		writer: writer,
		topic:  topic,
		log:    log,
	}, nil
}

func (p *producer) Publish(ctx context.Context, msg Message) error {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return ErrProducerClosed
	}
	p.mu.RUnlock()

	if msg.Key == "" {
		return ErrEmptyKey
	}
	if len(msg.Value) == 0 {
		return ErrEmptyValue
	}

	headers := make([]kafka.Header, 0, len(msg.Headers))
	for k, v := range msg.Headers {
		headers = append(headers, kafka.Header{Key: k, Value: []byte(v)})
	}

	start := time.Now()
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(msg.Key),
		Value:   msg.Value,
		Headers: headers,
		Time:    msg.Timestamp,
	})
	if err != nil {
		p.log.Error("failed to publish message",
			"topic", p.topic,
			"key", msg.Key,
			"error", err)
		return fmt.Errorf("publish to %s: %w", p.topic, err)
	}

	p.log.Debug("message published",
		"topic", p.topic,
		"key", msg.Key,
		"duration_ms", time.Since(start).Milliseconds())
	return nil
}

func (p *producer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	return p.writer.Close()
}

func compressionCodec(name string) kafka.Compression {
	switch name {
	case "gzip":
		return kafka.Compression(compress.Gzip)
	case "snappy":
		return kafka.Compression(compress.Snappy)
	case "lz4":
		return kafka.Compression(compress.Lz4)
	case "zstd":
		return kafka.Compression(compress.Zstd)
	default:
		return kafka.Compression(compress.None)
	}
}

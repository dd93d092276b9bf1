package kafka

import (
	"context"

	"github.com/iwtcode/avGateway/internal/config"
	"github.com/iwtcode/avGateway/internal/interfaces"

	"github.com/segmentio/kafka-go"
)

type KafkaProducer struct {
	writer *kafka.Writer
}

// NewKafkaProducer создает продюсер для зеркалирования событий панели.
// Пустой адрес брокера означает, что зеркалирование выключено: возвращается
// заглушка, молча принимающая сообщения.
func NewKafkaProducer(cfg *config.AppConfig) (interfaces.KafkaService, error) {
	if cfg.KafkaBroker == "" {
		return &noopProducer{}, nil
	}
	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBroker),
		Topic:    cfg.KafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
	return &KafkaProducer{writer: writer}, nil
}

// Produce отправляет сообщение в Kafka
func (p *KafkaProducer) Produce(ctx context.Context, key, value []byte) error {
	return p.writer.WriteMessages(ctx,
		kafka.Message{
			Key:   key,
			Value: value,
		},
	)
}

// Close закрывает соединение с Kafka
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}

type noopProducer struct{}

func (n *noopProducer) Produce(ctx context.Context, key, value []byte) error { return nil }
func (n *noopProducer) Close() error                                         { return nil }

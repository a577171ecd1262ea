package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/IBM/sarama"

	"gw-fraud-scoring/internal/models"
)

type Producer interface {
	SendDecisionEvent(ctx context.Context, event models.DecisionEvent) error
	Close() error
}

type KafkaProducer struct {
	producer sarama.SyncProducer
	topic    string
	log      *slog.Logger
}

func NewKafkaProducer(brokers []string, topic string, log *slog.Logger) (*KafkaProducer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	log.Info("kafka producer создан", slog.String("topic", topic), slog.Any("brokers", brokers))

	return NewKafkaProducerWith(producer, topic, log), nil
}

// NewKafkaProducerWith оборачивает готовый sarama.SyncProducer
func NewKafkaProducerWith(producer sarama.SyncProducer, topic string, log *slog.Logger) *KafkaProducer {
	return &KafkaProducer{
		producer: producer,
		topic:    topic,
		log:      log,
	}
}

// SendDecisionEvent ключ сообщения - id транзакции, чтобы события одной транзакции шли в одну партицию
func (p *KafkaProducer) SendDecisionEvent(ctx context.Context, event models.DecisionEvent) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	key := strconv.FormatInt(event.TransactionID, 10)
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(eventData),
		Headers: []sarama.RecordHeader{
			{Key: []byte("decision"), Value: []byte(event.Decision)},
			{Key: []byte("mode"), Value: []byte(event.Mode)},
		},
	}

	type result struct {
		partition int32
		offset    int64
		err       error
	}

	resultCh := make(chan result, 1)

	go func() {
		partition, offset, err := p.producer.SendMessage(msg)
		resultCh <- result{partition, offset, err}
	}()

	select {
	case res := <-resultCh:
		if res.err != nil {
			p.log.Error("kafka send failed",
				slog.String("tx_id", key),
				slog.String("error", res.err.Error()))
			return res.err
		}
		p.log.Debug("kafka send success",
			slog.String("tx_id", key),
			slog.Int("partition", int(res.partition)),
			slog.Int64("offset", res.offset))
		return nil

	case <-ctx.Done():
		p.log.Warn("kafka send cancelled", slog.String("tx_id", key))
		return ctx.Err()
	}
}

func (p *KafkaProducer) Close() error {
	if p.producer == nil {
		return nil
	}
	p.log.Info("закрытие kafka producer")
	return p.producer.Close()
}

type NoOpProducer struct {
	log *slog.Logger
}

func NewNoOpProducer(log *slog.Logger) *NoOpProducer {
	return &NoOpProducer{log: log}
}

func (p *NoOpProducer) SendDecisionEvent(ctx context.Context, event models.DecisionEvent) error {
	p.log.Debug("kafka отключен, событие не отправлено",
		slog.Int64("transaction_id", event.TransactionID),
		slog.String("decision", string(event.Decision)))
	return nil
}

func (p *NoOpProducer) Close() error {
	return nil
}

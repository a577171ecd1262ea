package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/IBM/sarama"

	"gw-fraud-scoring/internal/metrics"
	"gw-fraud-scoring/internal/models"
)

// BehaviorStore куда складываются снимки поведения
type BehaviorStore interface {
	Insert(ctx context.Context, p *models.BehaviorPattern) (int64, error)
}

// Consumer читает снимки поведения клиентов из топика и сохраняет их
type Consumer struct {
	consumerGroup sarama.ConsumerGroup
	store         BehaviorStore
	topic         string
	workers       int
	log           *slog.Logger
	wg            sync.WaitGroup
}

func NewConsumer(brokers []string, groupID, topic string, workers int, store BehaviorStore, log *slog.Logger) (*Consumer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V3_0_0_0
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetOldest
	config.Consumer.Return.Errors = true

	consumerGroup, err := sarama.NewConsumerGroup(brokers, groupID, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	log.Info("kafka consumer создан",
		slog.String("group_id", groupID),
		slog.String("topic", topic),
		slog.Int("workers", workers))

	return &Consumer{
		consumerGroup: consumerGroup,
		store:         store,
		topic:         topic,
		workers:       max(workers, 1),
		log:           log,
	}, nil
}

func (c *Consumer) Start(ctx context.Context) {
	c.log.Info("запуск kafka consumer", slog.String("topic", c.topic))

	handler := &behaviorHandler{
		store: c.store,
		log:   c.log,
	}

	for i := 0; i < c.workers; i++ {
		c.wg.Add(1)
		go func(workerID int) {
			defer c.wg.Done()
			c.log.Info("воркер запущен", slog.Int("worker_id", workerID))

			for {
				if err := c.consumerGroup.Consume(ctx, []string{c.topic}, handler); err != nil {
					c.log.Error("ошибка consume",
						slog.Int("worker_id", workerID),
						slog.String("error", err.Error()))
					return
				}

				if ctx.Err() != nil {
					return
				}
			}
		}(i)
	}

	go func() {
		for err := range c.consumerGroup.Errors() {
			c.log.Error("ошибка consumer group", slog.String("error", err.Error()))
		}
	}()
}

func (c *Consumer) Close(ctx context.Context) error {
	c.log.Info("закрытие kafka consumer")

	done := make(chan struct{})
	go func() {
		if err := c.consumerGroup.Close(); err != nil {
			c.log.Error("failed to close consumer group", slog.String("error", err.Error()))
		}
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		c.log.Info("kafka consumer закрыт")
		return nil
	case <-ctx.Done():
		c.log.Warn("kafka consumer close timeout")
		return ctx.Err()
	}
}

type behaviorHandler struct {
	store BehaviorStore
	log   *slog.Logger
}

func (h *behaviorHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *behaviorHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim битые сообщения коммитятся и пропускаются, ошибки хранилища оставляют offset на месте
func (h *behaviorHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		if err := h.processMessage(session.Context(), message); err != nil {
			h.log.Error("failed to process message",
				slog.String("topic", message.Topic),
				slog.Int64("offset", message.Offset),
				slog.String("error", err.Error()))
			continue
		}
		session.MarkMessage(message, "")
	}
	return nil
}

func (h *behaviorHandler) processMessage(ctx context.Context, message *sarama.ConsumerMessage) error {
	h.log.Debug("получено сообщение из kafka",
		slog.String("topic", message.Topic),
		slog.Int("partition", int(message.Partition)),
		slog.Int64("offset", message.Offset))

	var msg models.BehaviorPatternMessage
	if err := json.Unmarshal(message.Value, &msg); err != nil {
		h.log.Error("ошибка десериализации сообщения",
			slog.String("error", err.Error()),
			slog.String("raw_message", string(message.Value)))
		metrics.BehaviorMessagesTotal.WithLabelValues("skipped").Inc()
		return nil
	}

	pattern, err := msg.ToPattern()
	if err != nil {
		h.log.Warn("некорректный снимок поведения пропущен",
			slog.String("customer_id", msg.CustomerID),
			slog.String("error", err.Error()))
		metrics.BehaviorMessagesTotal.WithLabelValues("skipped").Inc()
		return nil
	}

	id, err := h.store.Insert(ctx, pattern)
	if err != nil {
		metrics.BehaviorMessagesTotal.WithLabelValues("failed").Inc()
		return fmt.Errorf("failed to save behavior pattern: %w", err)
	}

	h.log.Info("снимок поведения сохранён",
		slog.Int64("id", id),
		slog.String("customer_id", pattern.CustomerID),
		slog.String("date", pattern.Date.Format("2006-01-02")))
	metrics.BehaviorMessagesTotal.WithLabelValues("stored").Inc()

	return nil
}

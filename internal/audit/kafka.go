package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kgo"
)

// Kafka publishes audit events to a Kafka topic. Produces are asynchronous;
// delivery failures are logged and otherwise ignored.
type Kafka struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

// NewKafka connects to the given brokers.
func NewKafka(brokers []string, topic string, logger *slog.Logger) (*Kafka, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return &Kafka{client: client, topic: topic, logger: logger}, nil
}

// Publish serializes the event and hands it to the async producer. Keying by
// user id keeps one user's events ordered within a partition.
func (k *Kafka) Publish(ctx context.Context, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		k.logger.ErrorContext(ctx, "marshal audit event", "error", err, "action", event.Action)
		return
	}

	record := &kgo.Record{Key: []byte(event.UserID), Value: payload}
	k.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if err != nil {
			k.logger.Error("produce audit event", "error", err, "action", event.Action)
		}
	})
}

// Close flushes outstanding produces and releases the client.
func (k *Kafka) Close() {
	k.client.Close()
}

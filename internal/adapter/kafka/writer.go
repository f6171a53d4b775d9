package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/air-quality-dashboard/internal/config"
	"github.com/couchcryptid/air-quality-dashboard/internal/dashboard"
	kafkago "github.com/segmentio/kafka-go"
)

// Publishes carry one message each on the request path and flush without
// waiting for a batch to fill.
const (
	publishBatchTimeout = 10 * time.Millisecond
	publishWriteTimeout = 2 * time.Second
)

// Writer produces dashboard snapshots to a Kafka topic.
// It implements dashboard.Publisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured snapshot topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaSnapshotTopic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
		BatchSize:              1,
		BatchTimeout:           publishBatchTimeout,
		WriteTimeout:           publishWriteTimeout,
	}
	return &Writer{writer: w, logger: logger}
}

// Publish serializes a snapshot and writes it keyed by its selection, so
// every snapshot for one selection lands on the same partition.
func (w *Writer) Publish(ctx context.Context, snap dashboard.Snapshot) error {
	msg, err := serializeSnapshot(snap)
	if err != nil {
		return err
	}
	if err := w.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	w.logger.Debug("snapshot published",
		"topic", w.writer.Topic,
		"selection", string(msg.Key),
		"bytes", len(msg.Value),
	)
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeSnapshot marshals a Snapshot into a Kafka message.
func serializeSnapshot(snap dashboard.Snapshot) (kafkago.Message, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize snapshot: %w", err)
	}
	key := snap.Selection.Key()
	return kafkago.Message{
		Key:   []byte(key),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "snapshot_id", Value: []byte(snap.ID)},
			{Key: "selection", Value: []byte(key)},
			{Key: "computed_at", Value: []byte(snap.ComputedAt.Format(time.RFC3339))},
		},
	}, nil
}

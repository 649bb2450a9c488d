package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/nws-alerts-viewer/internal/config"
	"github.com/couchcryptid/nws-alerts-viewer/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer produces normalized alert rows to a Kafka topic.
// It implements pipeline.Publisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured alerts topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// Publish writes every row of a fetch result in a single WriteMessages call.
func (w *Writer) Publish(ctx context.Context, result domain.Result) error {
	if len(result.Rows) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(result.Rows))
	for i := range result.Rows {
		msg, err := serializeToMessage(result.Rows[i], result.Region, result.FetchedAt)
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write alert rows: %w", err)
	}
	w.logger.Debug("alert rows published", "topic", w.writer.Topic, "count", len(msgs))
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals an AlertRow into a Kafka message keyed by alert ID.
func serializeToMessage(row domain.AlertRow, region domain.Region, fetchedAt time.Time) (kafkago.Message, error) {
	data, err := json.Marshal(row)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize alert row: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(row.AlertID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "event", Value: []byte(row.Event)},
			{Key: "area", Value: []byte(region.String())},
			{Key: "fetched_at", Value: []byte(fetchedAt.UTC().Format(time.RFC3339))},
		},
	}, nil
}

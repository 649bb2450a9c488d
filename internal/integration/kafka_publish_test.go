//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/couchcryptid/nws-alerts-viewer/internal/adapter/kafka"
	"github.com/couchcryptid/nws-alerts-viewer/internal/adapter/nws"
	"github.com/couchcryptid/nws-alerts-viewer/internal/config"
	"github.com/couchcryptid/nws-alerts-viewer/internal/domain"
	"github.com/couchcryptid/nws-alerts-viewer/internal/observability"
	"github.com/couchcryptid/nws-alerts-viewer/internal/pipeline"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"
)

const testTopic = "test-nws-active-alerts"

const twoFeatures = `{"features": [
	{"properties": {"id": "a1", "event": "Flood Watch", "areaDesc": "Sacramento Valley", "severity": "Moderate"}},
	{"properties": {"id": "a2", "event": "Wind Advisory", "areaDesc": "Mojave Desert", "severity": "Minor"}}
]}`

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startKafka runs a single-node broker and returns its address.
func startKafka(ctx context.Context, t *testing.T) string {
	t.Helper()
	container, err := tckafka.Run(ctx, "confluentinc/confluent-local:7.5.0", tckafka.WithClusterID("nws-viewer-test"))
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err, "start kafka container")

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)
	return brokers[0]
}

func createTopic(t *testing.T, broker, topic string) {
	t.Helper()
	conn, err := kafkago.Dial("tcp", broker)
	require.NoError(t, err)
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err)
	ctrl, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	require.NoError(t, err)
	defer ctrl.Close()

	require.NoError(t, ctrl.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}))
}

// TestPipelinePublishesRows runs a fetch against a fake NWS API and checks
// every normalized row lands on the alerts topic keyed by alert ID.
func TestPipelinePublishesRows(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testTopic)

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(twoFeatures))
	}))
	t.Cleanup(api.Close)

	cfg := &config.Config{KafkaBrokers: []string{broker}, KafkaTopic: testTopic}
	writer := kafka.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })

	metrics := observability.NewMetricsForTesting()
	client := nws.NewClient(api.URL, config.DefaultUserAgent, 10*time.Second, metrics, discardLogger())
	p := pipeline.New(client, writer, discardLogger(), metrics)

	result, err := p.Run(ctx, "ca")
	require.NoError(t, err)
	require.Len(t, result.Rows, 2)

	consumer := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:   []string{broker},
		Topic:     testTopic,
		Partition: 0,
		MinBytes:  1,
		MaxBytes:  1 << 20,
	})
	t.Cleanup(func() { _ = consumer.Close() })

	for _, want := range result.Rows {
		readCtx, readCancel := context.WithTimeout(ctx, 30*time.Second)
		msg, err := consumer.ReadMessage(readCtx)
		readCancel()
		require.NoError(t, err, "read from alerts topic")

		var got domain.AlertRow
		require.NoError(t, json.Unmarshal(msg.Value, &got))
		assert.Equal(t, want, got)
		assert.Equal(t, want.AlertID, string(msg.Key))

		headers := make(map[string]string, len(msg.Headers))
		for _, h := range msg.Headers {
			headers[h.Key] = string(h.Value)
		}
		assert.Equal(t, "CA", headers["area"])
		assert.Equal(t, want.Event, headers["event"])
	}
}

package kafka

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/couchcryptid/nws-alerts-viewer/internal/config"
	"github.com/couchcryptid/nws-alerts-viewer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeToMessage(t *testing.T) {
	fetchedAt := time.Date(2024, 1, 31, 13, 5, 0, 0, time.FixedZone("PST", -8*3600))
	row := domain.AlertRow{
		Event:    "Winter Storm Warning",
		Area:     "Lassen; Western Plumas County",
		Severity: "Severe",
		AlertID:  "urn:oid:2.49.0.1.840.0.abc",
	}

	msg, err := serializeToMessage(row, "CA", fetchedAt)
	require.NoError(t, err)

	assert.Equal(t, []byte("urn:oid:2.49.0.1.840.0.abc"), msg.Key)
	assert.Contains(t, string(msg.Value), `"event":"Winter Storm Warning"`)
	require.Len(t, msg.Headers, 3)
	assert.Equal(t, "event", msg.Headers[0].Key)
	assert.Equal(t, []byte("Winter Storm Warning"), msg.Headers[0].Value)
	assert.Equal(t, "area", msg.Headers[1].Key)
	assert.Equal(t, []byte("CA"), msg.Headers[1].Value)
	assert.Equal(t, "fetched_at", msg.Headers[2].Key)
	assert.Equal(t, []byte("2024-01-31T21:05:00Z"), msg.Headers[2].Value)

	var roundtrip domain.AlertRow
	require.NoError(t, json.Unmarshal(msg.Value, &roundtrip))
	assert.Equal(t, row, roundtrip)
}

func TestWriter_PublishEmptyIsNoop(t *testing.T) {
	cfg := &config.Config{KafkaBrokers: []string{"127.0.0.1:1"}, KafkaTopic: "unused"}
	w := NewWriter(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, w.Publish(context.Background(), domain.Result{}))
}

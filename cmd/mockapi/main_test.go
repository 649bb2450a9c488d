package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/couchcryptid/nws-alerts-viewer/internal/adapter/nws"
	"github.com/couchcryptid/nws-alerts-viewer/internal/config"
	"github.com/couchcryptid/nws-alerts-viewer/internal/domain"
	"github.com/couchcryptid/nws-alerts-viewer/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMockServer(t *testing.T, status int) *httptest.Server {
	t.Helper()
	h, err := newHandler(fixture, status)
	require.NoError(t, err)
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func TestFixture_NormalizesThroughClient(t *testing.T) {
	srv := newMockServer(t, 0)
	client := nws.NewClient(srv.URL, config.DefaultUserAgent, 0, observability.NewMetricsForTesting(), discardLogger())

	raw, err := client.FetchActiveAlerts(context.Background(), domain.ParseRegion(""))
	require.NoError(t, err)

	rows := domain.Normalize(raw)
	require.Len(t, rows, 3)
	assert.Equal(t, "Flood Watch", rows[0].Event)
	assert.Equal(t, "NWS San Francisco CA", rows[0].Office)
	assert.Empty(t, rows[1].Instruction)
	assert.Equal(t, "urn:oid:2.49.0.1.840.0.0003", rows[2].AlertID)
}

func TestAreaFilter(t *testing.T) {
	srv := newMockServer(t, 0)

	tests := []struct {
		area string
		want int
	}{
		{"", 3},
		{"CA", 2},
		{"tx", 1},
		{"NY", 0},
	}
	for _, tt := range tests {
		t.Run("area="+tt.area, func(t *testing.T) {
			resp, err := http.Get(srv.URL + "/alerts/active?area=" + tt.area)
			require.NoError(t, err)
			defer resp.Body.Close()

			var fc featureCollection
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&fc))
			assert.Len(t, fc.Features, tt.want)
			assert.NotNil(t, fc.Features)
		})
	}
}

func TestForcedStatus(t *testing.T) {
	srv := newMockServer(t, http.StatusServiceUnavailable)
	client := nws.NewClient(srv.URL, config.DefaultUserAgent, 0, observability.NewMetricsForTesting(), discardLogger())

	_, err := client.FetchActiveAlerts(context.Background(), domain.ParseRegion("CA"))
	require.Error(t, err)

	var fe *domain.FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, http.StatusServiceUnavailable, fe.StatusCode)
}

package nws

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/couchcryptid/nws-alerts-viewer/internal/domain"
	"github.com/couchcryptid/nws-alerts-viewer/internal/observability"
)

const activeAlertsPath = "/alerts/active"

// Client fetches active alerts from the NWS API.
// It implements pipeline.Fetcher.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates an NWS API client. A zero timeout leaves the request
// unbounded apart from the caller's context.
func NewClient(baseURL, userAgent string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// FetchActiveAlerts issues exactly one GET against the active alerts endpoint.
// A non-2xx response, transport failure, or undecodable body is returned as a
// *domain.FetchError. An empty feature collection is not an error.
func (c *Client) FetchActiveAlerts(ctx context.Context, region domain.Region) ([]domain.RawAlert, error) {
	u := c.baseURL + activeAlertsPath
	if region.IsSet() {
		u += "?" + url.Values{"area": {region.String()}}.Encode()
	}

	start := time.Now()
	alerts, outcome, err := c.doRequest(ctx, u)
	c.metrics.FetchDuration.Observe(time.Since(start).Seconds())
	c.metrics.FetchRequests.WithLabelValues(outcome).Inc()

	if err != nil {
		c.logger.Warn("nws fetch failed", "area", region.String(), "outcome", outcome, "error", err)
		return nil, err
	}

	c.metrics.AlertsReturned.Observe(float64(len(alerts)))
	c.logger.Debug("nws fetch complete", "area", region.String(), "alerts", len(alerts))
	return alerts, nil
}

func (c *Client) doRequest(ctx context.Context, fullURL string) ([]domain.RawAlert, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, observability.OutcomeTransportError, &domain.FetchError{Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/geo+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, observability.OutcomeTransportError, &domain.FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Debug("nws error body", "status", resp.StatusCode, "body", string(body))
		return nil, observability.OutcomeHTTPError, &domain.FetchError{StatusCode: resp.StatusCode}
	}

	var fc featureCollection
	if err := json.NewDecoder(resp.Body).Decode(&fc); err != nil {
		return nil, observability.OutcomeDecodeError, &domain.FetchError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("decode response: %w", err),
		}
	}

	if len(fc.Features) == 0 {
		return []domain.RawAlert{}, observability.OutcomeEmpty, nil
	}
	return fc.Features, observability.OutcomeSuccess, nil
}

// NWS API response types.

type featureCollection struct {
	Features []domain.RawAlert `json:"features"`
}

package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/couchcryptid/nws-alerts-viewer/internal/domain"
	"github.com/couchcryptid/nws-alerts-viewer/internal/observability"
)

// Fetcher retrieves the raw active alerts for a region.
type Fetcher interface {
	FetchActiveAlerts(ctx context.Context, region domain.Region) ([]domain.RawAlert, error)
}

// Publisher forwards normalized rows to a downstream sink.
type Publisher interface {
	Publish(ctx context.Context, result domain.Result) error
}

// Pipeline runs one collect-fetch-normalize pass per call. It holds no alert
// state between runs.
type Pipeline struct {
	fetcher   Fetcher
	publisher Publisher
	logger    *slog.Logger
	metrics   *observability.Metrics
	failing   atomic.Bool
}

// New creates a Pipeline. Pass a nil publisher to disable the sink.
func New(f Fetcher, pub Publisher, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		fetcher:   f,
		publisher: pub,
		logger:    logger,
		metrics:   metrics,
	}
}

// CheckReadiness returns an error while the most recent upstream fetch is failing.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if p.failing.Load() {
		return errors.New("last NWS fetch failed")
	}
	return nil
}

// Run turns raw region input into a Result with exactly one upstream request.
// On a fetch error no rows are returned.
func (p *Pipeline) Run(ctx context.Context, input string) (domain.Result, error) {
	region := domain.ParseRegion(input)

	raw, err := p.fetcher.FetchActiveAlerts(ctx, region)
	if err != nil {
		p.failing.Store(true)
		return domain.Result{}, err
	}
	p.failing.Store(false)

	result := domain.Result{
		Region:    region,
		Rows:      domain.Normalize(raw),
		FetchedAt: domain.Now(),
	}
	p.logger.Info("alerts fetched", "area", region.String(), "count", len(result.Rows))

	p.publish(ctx, result)
	return result, nil
}

// publish hands rows to the sink. Failures are logged and never affect the run.
func (p *Pipeline) publish(ctx context.Context, result domain.Result) {
	if p.publisher == nil || result.Empty() {
		return
	}
	if err := p.publisher.Publish(ctx, result); err != nil {
		p.logger.Warn("publish alerts failed", "error", err, "area", result.Region.String(), "count", len(result.Rows))
		p.metrics.PublishErrors.Inc()
		return
	}
	p.metrics.RowsPublished.Add(float64(len(result.Rows)))
}

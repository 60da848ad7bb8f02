package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/metrics"
	"github.com/MKhiriev/go-accounts/internal/service"
)

// defaultPingTimeout bounds a single probe when the interval is longer.
const defaultPingTimeout = 5 * time.Second

// HealthWorker pings storage on a fixed interval and reports the result to
// the gRPC health service and to metrics.
type HealthWorker struct {
	healthService service.HealthService
	reporter      StatusReporter
	metrics       metrics.MetricsCollector
	interval      time.Duration

	logger *logger.Logger
}

// NewHealthWorker returns a worker probing healthService every interval.
// reporter and collector may be nil.
func NewHealthWorker(healthService service.HealthService, reporter StatusReporter, collector metrics.MetricsCollector, interval time.Duration, logger *logger.Logger) *HealthWorker {
	if collector == nil {
		collector = metrics.Nop()
	}

	return &HealthWorker{
		healthService: healthService,
		reporter:      reporter,
		metrics:       collector,
		interval:      interval,
		logger:        logger,
	}
}

// Run probes once immediately, then on every tick until ctx is cancelled.
func (w *HealthWorker) Run(ctx context.Context) {
	if w.interval <= 0 {
		w.logger.Warn().Dur("interval", w.interval).Msg("health worker disabled")
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	last := w.probe(ctx, nil)
	for {
		select {
		case <-ctx.Done():
			w.logger.Debug().Msg("health worker stopped")
			return
		case <-ticker.C:
			last = w.probe(ctx, &last)
		}
	}
}

// probe runs one ping and reports it. Status changes are logged at info or
// error level; repeats are logged at debug.
func (w *HealthWorker) probe(ctx context.Context, previous *bool) bool {
	timeout := defaultPingTimeout
	if w.interval < timeout {
		timeout = w.interval
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err := w.healthService.Ping(pingCtx)
	serving := err == nil

	if w.reporter != nil {
		w.reporter.SetServingStatus(serving)
	}
	w.metrics.SetStorageUp(serving)

	changed := previous == nil || *previous != serving
	switch {
	case !serving && changed:
		w.logger.Error().Err(err).Msg("storage is unreachable")
	case serving && changed:
		w.logger.Info().Msg("storage is reachable")
	default:
		w.logger.Debug().Bool("serving", serving).Msg("storage health unchanged")
	}

	return serving
}

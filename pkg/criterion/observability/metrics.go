package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records criterion metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordQuery records a provider-backed query with its duration,
	// result count, and error status.
	RecordQuery(ctx context.Context, provider string, duration time.Duration, results int, err error)

	// RecordStoreOp records a store operation with its duration and
	// error status.
	RecordStoreOp(ctx context.Context, op string, duration time.Duration, err error)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	queryExecutions metric.Int64Counter
	queryLatency    metric.Float64Histogram
	queryResults    metric.Int64Histogram
	queryErrors     metric.Int64Counter
	storeOps        metric.Int64Counter
	storeLatency    metric.Float64Histogram
	storeErrors     metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("criterion")

	queryExecutions, err := meter.Int64Counter("criterion.query.executions",
		metric.WithDescription("Number of provider-backed query executions"),
	)
	if err != nil {
		return nil, err
	}

	queryLatency, err := meter.Float64Histogram("criterion.query.latency_ms",
		metric.WithDescription("Query execution latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	queryResults, err := meter.Int64Histogram("criterion.query.results",
		metric.WithDescription("Number of results returned per query"),
	)
	if err != nil {
		return nil, err
	}

	queryErrors, err := meter.Int64Counter("criterion.query.errors",
		metric.WithDescription("Number of failed query executions"),
	)
	if err != nil {
		return nil, err
	}

	storeOps, err := meter.Int64Counter("criterion.store.operations",
		metric.WithDescription("Number of store operations"),
	)
	if err != nil {
		return nil, err
	}

	storeLatency, err := meter.Float64Histogram("criterion.store.latency_ms",
		metric.WithDescription("Store operation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	storeErrors, err := meter.Int64Counter("criterion.store.errors",
		metric.WithDescription("Number of failed store operations"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		queryExecutions: queryExecutions,
		queryLatency:    queryLatency,
		queryResults:    queryResults,
		queryErrors:     queryErrors,
		storeOps:        storeOps,
		storeLatency:    storeLatency,
		storeErrors:     storeErrors,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordQuery records a provider-backed query execution.
func (m *otelMetrics) RecordQuery(ctx context.Context, provider string, duration time.Duration, results int, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("provider", provider),
	}

	m.queryExecutions.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.queryLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
	m.queryResults.Record(ctx, int64(results), metric.WithAttributes(attrs...))

	if err != nil {
		m.queryErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordStoreOp records a store operation.
func (m *otelMetrics) RecordStoreOp(ctx context.Context, op string, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("operation", op),
	}

	m.storeOps.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.storeLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))

	if err != nil {
		m.storeErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

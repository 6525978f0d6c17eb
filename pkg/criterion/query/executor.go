package query

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mwhitford/criterion/pkg/criterion"
	"github.com/mwhitford/criterion/pkg/criterion/ast"
	"github.com/mwhitford/criterion/pkg/criterion/observability"
)

// executorConfig holds the optional collaborators of an Executor.
type executorConfig struct {
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

// defaultExecutorConfig returns the default executor configuration:
// no logging, no-op metrics and spans.
func defaultExecutorConfig() executorConfig {
	return executorConfig{
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*executorConfig)

// WithLogger attaches a structured logger to the executor.
// A nil logger disables logging.
func WithLogger(logger *slog.Logger) ExecutorOption {
	return func(c *executorConfig) {
		c.logger = logger
	}
}

// WithMetrics attaches a metrics recorder to the executor.
func WithMetrics(m observability.MetricsRecorder) ExecutorOption {
	return func(c *executorConfig) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithSpans attaches a span manager to the executor.
func WithSpans(s observability.SpanManager) ExecutorOption {
	return func(c *executorConfig) {
		if s != nil {
			c.spans = s
		}
	}
}

// Executor mirrors the evaluator surface against a Provider. Each
// operation composes a Query from its predicate and options, hands it
// to the provider, and reports composition or execution errors through
// the usual error return.
//
// Every execution gets a fresh query ID and, when configured, a log
// line, a metric sample, and a trace span labeled with the provider
// name.
type Executor[T any] struct {
	name     string
	provider Provider[T]
	cfg      executorConfig
}

// NewExecutor binds a named provider. The name labels logs, metrics,
// and spans. Panics if provider is nil.
func NewExecutor[T any](name string, provider Provider[T], opts ...ExecutorOption) *Executor[T] {
	if provider == nil {
		panic("query: provider cannot be nil")
	}
	cfg := defaultExecutorConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Executor[T]{name: name, provider: provider, cfg: cfg}
}

// Name returns the provider name the executor was bound with.
func (e *Executor[T]) Name() string {
	return e.name
}

// Any reports whether at least one row matches the predicate.
func (e *Executor[T]) Any(ctx context.Context, pred criterion.Predicate[T], opts ...Option[T]) (bool, error) {
	q, err := From(pred, opts...)
	if err != nil {
		return false, err
	}
	if q.Limit == 0 {
		q.Limit = 1
	}
	items, err := e.selectOp(ctx, "Any", q)
	if err != nil {
		return false, err
	}
	return len(items) > 0, nil
}

// Count returns the number of rows matching the predicate.
func (e *Executor[T]) Count(ctx context.Context, pred criterion.Predicate[T], opts ...Option[T]) (int, error) {
	q, err := From(pred, opts...)
	if err != nil {
		return 0, err
	}

	queryID := uuid.NewString()
	ctx, span := e.cfg.spans.StartQuerySpan(ctx, queryID, e.name, "Count")
	observability.LogQueryStart(e.cfg.logger, queryID, "Count", whereString(q.Where))

	start := time.Now()
	n, err := e.provider.Count(ctx, q)
	duration := time.Since(start)
	durationMs := float64(duration.Milliseconds())

	e.cfg.metrics.RecordQuery(ctx, e.name, duration, n, err)
	e.cfg.spans.EndSpanWithError(span, err)
	if err != nil {
		observability.LogQueryError(e.cfg.logger, queryID, err, durationMs)
		return 0, err
	}
	observability.LogQueryComplete(e.cfg.logger, queryID, n, durationMs)
	return n, nil
}

// First returns the first matching row under the composed ordering.
// ok is false when nothing matches.
func (e *Executor[T]) First(ctx context.Context, pred criterion.Predicate[T], opts ...Option[T]) (first T, ok bool, err error) {
	var zero T
	q, err := From(pred, opts...)
	if err != nil {
		return zero, false, err
	}
	if q.Limit == 0 {
		q.Limit = 1
	}
	items, err := e.selectOp(ctx, "First", q)
	if err != nil {
		return zero, false, err
	}
	if len(items) == 0 {
		return zero, false, nil
	}
	return items[0], true, nil
}

// All returns every row matching the predicate.
func (e *Executor[T]) All(ctx context.Context, pred criterion.Predicate[T], opts ...Option[T]) ([]T, error) {
	q, err := From(pred, opts...)
	if err != nil {
		return nil, err
	}
	return e.selectOp(ctx, "All", q)
}

// Page returns one page of matching rows, pages starting at 1.
func (e *Executor[T]) Page(ctx context.Context, pred criterion.Predicate[T], page, pageSize int, opts ...Option[T]) ([]T, error) {
	q, err := From(pred, append(opts, WithPage[T](page, pageSize))...)
	if err != nil {
		return nil, err
	}
	return e.selectOp(ctx, "Page", q)
}

// Top returns at most the first count matching rows.
func (e *Executor[T]) Top(ctx context.Context, pred criterion.Predicate[T], count int, opts ...Option[T]) ([]T, error) {
	q, err := From(pred, append(opts, WithTop[T](count))...)
	if err != nil {
		return nil, err
	}
	return e.selectOp(ctx, "Top", q)
}

// selectOp runs one instrumented Select against the provider.
func (e *Executor[T]) selectOp(ctx context.Context, op string, q Query) ([]T, error) {
	queryID := uuid.NewString()
	ctx, span := e.cfg.spans.StartQuerySpan(ctx, queryID, e.name, op)
	observability.LogQueryStart(e.cfg.logger, queryID, op, whereString(q.Where))

	start := time.Now()
	items, err := e.provider.Select(ctx, q)
	duration := time.Since(start)
	durationMs := float64(duration.Milliseconds())

	e.cfg.metrics.RecordQuery(ctx, e.name, duration, len(items), err)
	e.cfg.spans.EndSpanWithError(span, err)
	if err != nil {
		observability.LogQueryError(e.cfg.logger, queryID, err, durationMs)
		return nil, err
	}
	observability.LogQueryComplete(e.cfg.logger, queryID, len(items), durationMs)
	return items, nil
}

// whereString renders a description tree for logs. A nil tree matches
// everything.
func whereString(n ast.Node) string {
	if n == nil {
		return "true"
	}
	return n.String()
}

// Package store provides typed document stores that consume built
// specifications.
//
// A Store holds documents of one entity type behind CRUD operations and
// transactional bulk insert. Two implementations ship with the package:
// MemoryStore for tests and ephemeral data, and SQLiteStore for
// single-process persistent use. FindBy evaluates a whole Specification
// against store contents with the in-memory evaluator, and NewProvider
// adapts any store into a query.Provider.
//
// Values are encoded with a pluggable Codec (JSON by default, msgpack
// available) where the backing medium needs bytes. Durability guarantees
// and storage-level concurrency control beyond the adapter contract are
// out of scope.
package store

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mwhitford/criterion/pkg/criterion/observability"
)

// Store holds documents of one entity type. Implementations must be
// safe for concurrent use.
type Store[T any] interface {
	// Insert stores the given documents in one transaction and returns
	// their IDs in argument order. Documents without an ID (no WithID
	// option, or an empty extracted ID) get a generated one. An ID that
	// already exists fails the whole batch with ErrDuplicateID.
	Insert(ctx context.Context, items ...T) ([]string, error)

	// Update replaces the document stored under id.
	// Returns ErrNotFound if no such document exists.
	Update(ctx context.Context, id string, item T) error

	// Delete removes the document stored under id.
	// Returns ErrNotFound if no such document exists.
	Delete(ctx context.Context, id string) error

	// Get retrieves the document stored under id.
	// Returns ErrNotFound if no such document exists.
	Get(ctx context.Context, id string) (T, error)

	// All returns every document in insertion order.
	All(ctx context.Context) ([]T, error)

	// Count returns the number of stored documents.
	Count(ctx context.Context) (int, error)

	// Close releases any resources (connections, files).
	Close() error
}

// Sentinel errors for store operations.
var (
	// ErrNotFound indicates no document exists under the given ID.
	ErrNotFound = errors.New("document not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("store closed")

	// ErrDuplicateID indicates an insert would reuse an existing ID.
	ErrDuplicateID = errors.New("duplicate document id")
)

// options holds the optional collaborators shared by the store
// implementations.
type options[T any] struct {
	id      func(T) string
	codec   Codec
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

func defaultStoreOptions[T any]() options[T] {
	return options[T]{
		codec:   JSONCodec{},
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
}

// Option configures a store implementation.
type Option[T any] func(*options[T])

// WithID supplies an ID extractor. Documents whose extracted ID is
// non-empty keep it; the rest get a generated one.
func WithID[T any](fn func(T) string) Option[T] {
	return func(o *options[T]) {
		o.id = fn
	}
}

// WithCodec selects the value encoding used where the backing medium
// stores bytes. The default is JSONCodec.
func WithCodec[T any](c Codec) Option[T] {
	return func(o *options[T]) {
		if c != nil {
			o.codec = c
		}
	}
}

// WithLogger attaches a structured logger to store operations.
// A nil logger disables logging.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(o *options[T]) {
		o.logger = logger
	}
}

// WithMetrics attaches a metrics recorder to store operations.
func WithMetrics[T any](m observability.MetricsRecorder) Option[T] {
	return func(o *options[T]) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithSpans attaches a span manager to store operations.
func WithSpans[T any](s observability.SpanManager) Option[T] {
	return func(o *options[T]) {
		if s != nil {
			o.spans = s
		}
	}
}

// instrument starts a span for one store operation and returns the
// context plus a completion function that records the metric sample and
// log line for it.
func (o *options[T]) instrument(ctx context.Context, op, id string) (context.Context, func(error)) {
	ctx, span := o.spans.StartStoreSpan(ctx, op)
	start := time.Now()
	return ctx, func(err error) {
		duration := time.Since(start)
		o.metrics.RecordStoreOp(ctx, op, duration, err)
		o.spans.EndSpanWithError(span, err)
		if err != nil {
			observability.LogStoreOpError(o.logger, op, id, err)
			return
		}
		observability.LogStoreOp(o.logger, op, id, float64(duration.Milliseconds()))
	}
}

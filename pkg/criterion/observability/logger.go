// Package observability provides structured logging, metrics, and
// distributed tracing for criterion query execution and store
// operations.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
// Every logging helper accepts a nil logger and does nothing with it.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds query context to a logger.
// Returns a new logger with query_id and provider fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "q-123", "memory")
//	enriched.Info("selecting") // includes query_id, provider
func EnrichLogger(logger *slog.Logger, queryID, provider string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("query_id", queryID),
		slog.String("provider", provider),
	)
}

// LogQueryStart logs the start of a provider-backed query.
func LogQueryStart(logger *slog.Logger, queryID, op, condition string) {
	if logger == nil {
		return
	}
	logger.Debug("query starting",
		slog.String("query_id", queryID),
		slog.String("operation", op),
		slog.String("condition", condition),
	)
}

// LogQueryComplete logs successful query completion.
func LogQueryComplete(logger *slog.Logger, queryID string, results int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Info("query completed",
		slog.String("query_id", queryID),
		slog.Int("results", results),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogQueryError logs query failure.
func LogQueryError(logger *slog.Logger, queryID string, err error, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Error("query failed",
		slog.String("query_id", queryID),
		slog.String("error", err.Error()),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogStoreOp logs a completed store operation.
func LogStoreOp(logger *slog.Logger, op, id string, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("store operation completed",
		slog.String("operation", op),
		slog.String("document_id", id),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogStoreOpError logs a failed store operation.
func LogStoreOpError(logger *slog.Logger, op, id string, err error) {
	if logger == nil {
		return
	}
	logger.Error("store operation failed",
		slog.String("operation", op),
		slog.String("document_id", id),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}

package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupTracingTest creates a test tracer provider with an in-memory span recorder.
func setupTracingTest(t *testing.T) (*tracetest.InMemoryExporter, func()) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
	)

	// Save the original provider
	originalProvider := otel.GetTracerProvider()

	// Set test provider
	otel.SetTracerProvider(tp)

	// Update the package-level tracer
	tracer = otel.Tracer("criterion")

	cleanup := func() {
		otel.SetTracerProvider(originalProvider)
		if err := tp.Shutdown(context.Background()); err != nil {
			t.Logf("Error shutting down tracer provider: %v", err)
		}
	}

	return exporter, cleanup
}

func TestStartQuerySpan(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	t.Run("creates span with correct name and attributes", func(t *testing.T) {
		ctx := context.Background()
		ctx, span := StartQuerySpan(ctx, "q-123", "memory", "All")
		require.NotNil(t, span)

		// End the span to flush it to the exporter
		span.End()

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)

		s := spans[0]
		assert.Equal(t, "criterion.query.All", s.Name)

		// Check attributes
		attrs := s.Attributes
		var queryID, provider string
		for _, attr := range attrs {
			switch attr.Key {
			case "query.id":
				queryID = attr.Value.AsString()
			case "query.provider":
				provider = attr.Value.AsString()
			}
		}
		assert.Equal(t, "q-123", queryID)
		assert.Equal(t, "memory", provider)
	})

	t.Run("returns context with span", func(t *testing.T) {
		exporter.Reset()

		ctx := context.Background()
		newCtx, span := StartQuerySpan(ctx, "q-456", "memory", "Count")

		// Context should be different
		assert.NotEqual(t, ctx, newCtx)

		span.End()

		// Should still have recorded the span
		spans := exporter.GetSpans()
		require.Len(t, spans, 1)
	})
}

func TestStartStoreSpan(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	t.Run("creates span with operation name suffix", func(t *testing.T) {
		ctx := context.Background()
		ctx, span := StartStoreSpan(ctx, "insert")
		require.NotNil(t, span)

		span.End()

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)

		s := spans[0]
		assert.Equal(t, "criterion.store.insert", s.Name)

		// Check store.op attribute
		var op string
		for _, attr := range s.Attributes {
			if attr.Key == "store.op" {
				op = attr.Value.AsString()
			}
		}
		assert.Equal(t, "insert", op)
	})

	t.Run("child spans have correct parent", func(t *testing.T) {
		exporter.Reset()

		ctx := context.Background()
		ctx, querySpan := StartQuerySpan(ctx, "q-1", "sqlite", "All")

		ctx, storeSpan := StartStoreSpan(ctx, "all")
		storeSpan.End()

		querySpan.End()

		spans := exporter.GetSpans()
		require.Len(t, spans, 2)

		// Find store span
		var storeSpanData *tracetest.SpanStub
		for i := range spans {
			if spans[i].Name == "criterion.store.all" {
				storeSpanData = &spans[i]
				break
			}
		}
		require.NotNil(t, storeSpanData)

		// Verify parent-child relationship
		assert.True(t, storeSpanData.Parent.IsValid())
	})
}

func TestEndSpanWithError(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	t.Run("sets OK status for nil error", func(t *testing.T) {
		ctx := context.Background()
		_, span := StartQuerySpan(ctx, "q-1", "memory", "Any")

		EndSpanWithError(span, nil)

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)

		assert.Equal(t, codes.Ok, spans[0].Status.Code)
		assert.Equal(t, "", spans[0].Status.Description)
	})

	t.Run("sets Error status and records error", func(t *testing.T) {
		exporter.Reset()

		ctx := context.Background()
		_, span := StartQuerySpan(ctx, "q-2", "memory", "All")
		testErr := errors.New("something went wrong")

		EndSpanWithError(span, testErr)

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)

		s := spans[0]
		assert.Equal(t, codes.Error, s.Status.Code)
		assert.Equal(t, "something went wrong", s.Status.Description)

		// Check that error was recorded as an event
		require.NotEmpty(t, s.Events)
		found := false
		for _, event := range s.Events {
			if event.Name == "exception" {
				found = true
			}
		}
		assert.True(t, found, "Expected exception event")
	})

	t.Run("nil span does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			EndSpanWithError(nil, nil)
		})
		assert.NotPanics(t, func() {
			EndSpanWithError(nil, errors.New("test"))
		})
	})
}

func TestAddSpanEvent(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	t.Run("adds event to current span", func(t *testing.T) {
		ctx := context.Background()
		ctx, span := StartQuerySpan(ctx, "q-1", "memory", "Page")

		AddSpanEvent(ctx, "page_window_applied",
			attribute.Int("page", 2),
			attribute.Int("page_size", 10),
		)

		span.End()

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)

		s := spans[0]
		require.NotEmpty(t, s.Events)

		// Find our event
		var found bool
		for _, event := range s.Events {
			if event.Name == "page_window_applied" {
				found = true
				// Check attributes
				var page, pageSize int64
				for _, attr := range event.Attributes {
					switch attr.Key {
					case "page":
						page = attr.Value.AsInt64()
					case "page_size":
						pageSize = attr.Value.AsInt64()
					}
				}
				assert.Equal(t, int64(2), page)
				assert.Equal(t, int64(10), pageSize)
			}
		}
		assert.True(t, found, "Expected to find page_window_applied event")
	})

	t.Run("no panic with no current span", func(t *testing.T) {
		ctx := context.Background()
		assert.NotPanics(t, func() {
			AddSpanEvent(ctx, "test_event")
		})
	})
}

func TestSpanManager_Interface(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	sm := NewSpanManager()
	require.NotNil(t, sm)

	t.Run("StartQuerySpan via interface", func(t *testing.T) {
		ctx := context.Background()
		ctx, span := sm.StartQuerySpan(ctx, "q-if", "memory", "First")
		require.NotNil(t, span)

		sm.EndSpanWithError(span, nil)

		spans := exporter.GetSpans()
		require.NotEmpty(t, spans)
	})

	t.Run("StartStoreSpan via interface", func(t *testing.T) {
		exporter.Reset()

		ctx := context.Background()
		ctx, span := sm.StartStoreSpan(ctx, "count")
		require.NotNil(t, span)

		sm.EndSpanWithError(span, nil)

		spans := exporter.GetSpans()
		require.NotEmpty(t, spans)
		assert.Equal(t, "criterion.store.count", spans[0].Name)
	})

	t.Run("AddSpanEvent via interface", func(t *testing.T) {
		exporter.Reset()

		ctx := context.Background()
		ctx, span := sm.StartQuerySpan(ctx, "q-1", "memory", "All")

		sm.AddSpanEvent(ctx, "custom_event", attribute.String("key", "value"))

		sm.EndSpanWithError(span, nil)

		spans := exporter.GetSpans()
		require.NotEmpty(t, spans)
		require.NotEmpty(t, spans[0].Events)
	})
}

func TestOtelSpanManager_EndSpanWithError_Scenarios(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	sm := &otelSpanManager{}

	t.Run("wrapped error message is preserved", func(t *testing.T) {
		ctx := context.Background()
		_, span := sm.StartQuerySpan(ctx, "q-1", "memory", "All")

		wrappedErr := errors.New("wrapped: inner error")
		sm.EndSpanWithError(span, wrappedErr)

		spans := exporter.GetSpans()
		require.NotEmpty(t, spans)
		assert.Contains(t, spans[0].Status.Description, "wrapped: inner error")
	})
}

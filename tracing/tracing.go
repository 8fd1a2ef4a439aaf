// Package tracing defines the client instrumentation surface for distributed
// tracing. The client emits spans through these interfaces; binding to a
// concrete backend happens through an adapter such as oteltracing.
package tracing

import "context"

// SpanKind classifies the role a span plays in a trace.
type SpanKind int

// Supported values of SpanKind.
const (
	SpanKindInternal SpanKind = iota
	SpanKindClient
	SpanKindServer
	SpanKindProducer
	SpanKindConsumer
)

// SpanStatus is the overall result of the operation a span covers.
type SpanStatus int

// Supported values of SpanStatus.
const (
	SpanStatusUnset SpanStatus = iota
	SpanStatusOK
	SpanStatusError
)

// SpanOption applies configuration to a span at start time.
type SpanOption func(*SpanOptions)

// SpanOptions configures a span at start time.
type SpanOptions struct {
	Kind SpanKind
}

// WithSpanKind sets the kind of the span being started.
func WithSpanKind(kind SpanKind) SpanOption {
	return func(o *SpanOptions) {
		o.Kind = kind
	}
}

// TracerProvider is the entry point for creating tracers.
type TracerProvider interface {
	Tracer(scope string) Tracer
}

// Tracer creates spans.
type Tracer interface {
	StartSpan(ctx context.Context, name string, optFns ...SpanOption) (context.Context, Span)
}

// Span records a single traced operation. Implementations must tolerate
// calls after End.
type Span interface {
	// SetProperty attaches a key-value pair to the span.
	SetProperty(k, v any)

	// SetStatus sets the span's final status.
	SetStatus(status SpanStatus)

	// End completes the span.
	End()
}

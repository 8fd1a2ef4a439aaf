package tracing

import "context"

// NopTracerProvider is a no-op TracerProvider. It is the default when a
// caller configures no tracing backend.
type NopTracerProvider struct{}

var _ TracerProvider = (*NopTracerProvider)(nil)

// Tracer returns a tracer whose spans record nothing.
func (NopTracerProvider) Tracer(scope string) Tracer {
	return nopTracer{}
}

type nopTracer struct{}

func (nopTracer) StartSpan(ctx context.Context, name string, optFns ...SpanOption) (context.Context, Span) {
	return ctx, nopSpan{}
}

type nopSpan struct{}

func (nopSpan) SetProperty(k, v any)        {}
func (nopSpan) SetStatus(status SpanStatus) {}
func (nopSpan) End()                        {}

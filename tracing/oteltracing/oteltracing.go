// Package oteltracing adapts an OpenTelemetry TracerProvider to the tracing
// interfaces this module's client emits through.
//
// Callers wrap a concrete OTEL SDK provider with Adapt and hand the result
// to the client options:
//
//	provider := trace.NewTracerProvider(trace.WithBatcher(exporter))
//	client, err := bedrock.New(bedrock.Options{
//		Region:         "us-east-1",
//		Credentials:    creds,
//		TracerProvider: oteltracing.Adapt(provider),
//	})
//
// Span properties propagate as OTEL attributes for the value types the OTEL
// attribute API supports (bool, int, int64, float64, string, and their slice
// forms); anything else is stringified.
package oteltracing

import (
	"context"

	"github.com/awslabs/bedrock-http-auth/tracing"
	otelcodes "go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Adapt wraps a concrete OTEL SDK TracerProvider.
func Adapt(provider oteltrace.TracerProvider) tracing.TracerProvider {
	return &tracerProvider{provider}
}

type tracerProvider struct {
	otel oteltrace.TracerProvider
}

var _ tracing.TracerProvider = (*tracerProvider)(nil)

func (p *tracerProvider) Tracer(scope string) tracing.Tracer {
	return &tracer{p.otel.Tracer(scope)}
}

type tracer struct {
	otel oteltrace.Tracer
}

var _ tracing.Tracer = (*tracer)(nil)

func (t *tracer) StartSpan(ctx context.Context, name string, optFns ...tracing.SpanOption) (context.Context, tracing.Span) {
	var options tracing.SpanOptions
	for _, fn := range optFns {
		fn(&options)
	}

	ctx, otelSpan := t.otel.Start(ctx, name,
		oteltrace.WithSpanKind(toOTELSpanKind(options.Kind)))
	return ctx, &span{otelSpan}
}

type span struct {
	otel oteltrace.Span
}

var _ tracing.Span = (*span)(nil)

func (s *span) SetProperty(k, v any) {
	s.otel.SetAttributes(toOTELKeyValue(k, v))
}

func (s *span) SetStatus(status tracing.SpanStatus) {
	s.otel.SetStatus(toOTELSpanStatus(status), "")
}

func (s *span) End() {
	s.otel.End()
}

func toOTELSpanKind(v tracing.SpanKind) oteltrace.SpanKind {
	switch v {
	case tracing.SpanKindClient:
		return oteltrace.SpanKindClient
	case tracing.SpanKindServer:
		return oteltrace.SpanKindServer
	case tracing.SpanKindProducer:
		return oteltrace.SpanKindProducer
	case tracing.SpanKindConsumer:
		return oteltrace.SpanKindConsumer
	default:
		return oteltrace.SpanKindInternal
	}
}

func toOTELSpanStatus(v tracing.SpanStatus) otelcodes.Code {
	switch v {
	case tracing.SpanStatusOK:
		return otelcodes.Ok
	case tracing.SpanStatusError:
		return otelcodes.Error
	default:
		return otelcodes.Unset
	}
}

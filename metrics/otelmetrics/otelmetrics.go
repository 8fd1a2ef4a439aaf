// Package otelmetrics adapts an OpenTelemetry MeterProvider to the metrics
// interfaces this module's client records through.
//
//	provider := metric.NewMeterProvider(metric.WithReader(reader))
//	client, err := bedrock.New(bedrock.Options{
//		Region:        "us-east-1",
//		Credentials:   creds,
//		MeterProvider: otelmetrics.Adapt(provider),
//	})
package otelmetrics

import (
	"context"
	"fmt"
	"sort"

	"github.com/awslabs/bedrock-http-auth/metrics"
	otelattribute "go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
)

// Adapt wraps a concrete OTEL SDK MeterProvider.
func Adapt(provider otelmetric.MeterProvider) metrics.MeterProvider {
	return &meterProvider{provider}
}

type meterProvider struct {
	otel otelmetric.MeterProvider
}

var _ metrics.MeterProvider = (*meterProvider)(nil)

func (p *meterProvider) Meter(scope string) metrics.Meter {
	return &meter{p.otel.Meter(scope)}
}

type meter struct {
	otel otelmetric.Meter
}

var _ metrics.Meter = (*meter)(nil)

func (m *meter) Int64Counter(name string, optFns ...metrics.InstrumentOption) (metrics.Int64Counter, error) {
	options := resolveInstrumentOptions(optFns)
	counter, err := m.otel.Int64Counter(name,
		otelmetric.WithUnit(options.UnitLabel),
		otelmetric.WithDescription(options.Description))
	if err != nil {
		return nil, err
	}
	return &int64Counter{counter}, nil
}

func (m *meter) Float64Histogram(name string, optFns ...metrics.InstrumentOption) (metrics.Float64Histogram, error) {
	options := resolveInstrumentOptions(optFns)
	histogram, err := m.otel.Float64Histogram(name,
		otelmetric.WithUnit(options.UnitLabel),
		otelmetric.WithDescription(options.Description))
	if err != nil {
		return nil, err
	}
	return &float64Histogram{histogram}, nil
}

func resolveInstrumentOptions(optFns []metrics.InstrumentOption) metrics.InstrumentOptions {
	var options metrics.InstrumentOptions
	for _, fn := range optFns {
		fn(&options)
	}
	return options
}

type int64Counter struct {
	otel otelmetric.Int64Counter
}

func (c *int64Counter) Add(ctx context.Context, value int64, optFns ...metrics.RecordMetricOption) {
	c.otel.Add(ctx, value, otelmetric.WithAttributes(toOTELAttributes(optFns)...))
}

type float64Histogram struct {
	otel otelmetric.Float64Histogram
}

func (h *float64Histogram) Record(ctx context.Context, value float64, optFns ...metrics.RecordMetricOption) {
	h.otel.Record(ctx, value, otelmetric.WithAttributes(toOTELAttributes(optFns)...))
}

// Properties are sorted by key so measurement attributes are deterministic.
func toOTELAttributes(optFns []metrics.RecordMetricOption) []otelattribute.KeyValue {
	var options metrics.RecordMetricOptions
	for _, fn := range optFns {
		fn(&options)
	}

	keys := make([]string, 0, len(options.Properties))
	for k := range options.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]otelattribute.KeyValue, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, toOTELKeyValue(k, options.Properties[k]))
	}
	return attrs
}

func toOTELKeyValue(k string, v any) otelattribute.KeyValue {
	switch vv := v.(type) {
	case bool:
		return otelattribute.Bool(k, vv)
	case int:
		return otelattribute.Int(k, vv)
	case int64:
		return otelattribute.Int64(k, vv)
	case float64:
		return otelattribute.Float64(k, vv)
	case string:
		return otelattribute.String(k, vv)
	default:
		return otelattribute.String(k, fmt.Sprintf("%v", vv))
	}
}

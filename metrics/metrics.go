// Package metrics defines the client instrumentation surface for metrics.
// The client records measurements through these interfaces; binding to a
// concrete backend happens through an adapter such as otelmetrics.
package metrics

import "context"

// InstrumentOption applies configuration to an instrument at creation.
type InstrumentOption func(*InstrumentOptions)

// InstrumentOptions configures an instrument at creation.
type InstrumentOptions struct {
	UnitLabel   string
	Description string
}

// WithUnit sets the unit label of the instrument, e.g. "s".
func WithUnit(unit string) InstrumentOption {
	return func(o *InstrumentOptions) {
		o.UnitLabel = unit
	}
}

// WithDescription sets the human-readable description of the instrument.
func WithDescription(description string) InstrumentOption {
	return func(o *InstrumentOptions) {
		o.Description = description
	}
}

// RecordMetricOption applies configuration to a single measurement.
type RecordMetricOption func(*RecordMetricOptions)

// RecordMetricOptions configures a single measurement.
type RecordMetricOptions struct {
	Properties map[string]any
}

// WithProperty attaches a key-value pair to the measurement.
func WithProperty(k string, v any) RecordMetricOption {
	return func(o *RecordMetricOptions) {
		if o.Properties == nil {
			o.Properties = map[string]any{}
		}
		o.Properties[k] = v
	}
}

// MeterProvider is the entry point for creating meters.
type MeterProvider interface {
	Meter(scope string) Meter
}

// Meter creates instruments.
type Meter interface {
	Int64Counter(name string, optFns ...InstrumentOption) (Int64Counter, error)
	Float64Histogram(name string, optFns ...InstrumentOption) (Float64Histogram, error)
}

// Int64Counter is a monotonically increasing integer instrument.
type Int64Counter interface {
	Add(ctx context.Context, value int64, optFns ...RecordMetricOption)
}

// Float64Histogram records a distribution of float values.
type Float64Histogram interface {
	Record(ctx context.Context, value float64, optFns ...RecordMetricOption)
}

package metrics

import "context"

// NopMeterProvider is a no-op MeterProvider. It is the default when a caller
// configures no metrics backend.
type NopMeterProvider struct{}

var _ MeterProvider = (*NopMeterProvider)(nil)

// Meter returns a meter whose instruments record nothing.
func (NopMeterProvider) Meter(scope string) Meter {
	return nopMeter{}
}

type nopMeter struct{}

func (nopMeter) Int64Counter(string, ...InstrumentOption) (Int64Counter, error) {
	return nopInt64Counter{}, nil
}

func (nopMeter) Float64Histogram(string, ...InstrumentOption) (Float64Histogram, error) {
	return nopFloat64Histogram{}, nil
}

type nopInt64Counter struct{}

func (nopInt64Counter) Add(context.Context, int64, ...RecordMetricOption) {}

type nopFloat64Histogram struct{}

func (nopFloat64Histogram) Record(context.Context, float64, ...RecordMetricOption) {}

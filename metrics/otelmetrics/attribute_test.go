package otelmetrics

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/awslabs/bedrock-http-auth/metrics"
	otelattribute "go.opentelemetry.io/otel/attribute"
)

func TestToOTELKeyValue(t *testing.T) {
	for _, tt := range []struct {
		V      any
		Expect otelattribute.KeyValue
	}{
		{true, otelattribute.Bool("key", true)},
		{int(1), otelattribute.Int("key", 1)},
		{int64(1), otelattribute.Int64("key", 1)},
		{float64(1), otelattribute.Float64("key", 1)},
		{"value", otelattribute.String("key", "value")},
		{struct{ A int }{1}, otelattribute.String("key", "{1}")}, // unsupported type
	} {
		name := fmt.Sprintf("%v -> %v", tt.V, tt.Expect)
		t.Run(name, func(t *testing.T) {
			actual := toOTELKeyValue("key", tt.V)
			if tt.Expect != actual {
				t.Errorf("%v != %v", tt.Expect, actual)
			}
		})
	}
}

func TestToOTELAttributes(t *testing.T) {
	attrs := toOTELAttributes([]metrics.RecordMetricOption{
		metrics.WithProperty("operation", "Converse"),
		metrics.WithProperty("error", true),
	})

	expect := []otelattribute.KeyValue{
		otelattribute.Bool("error", true),
		otelattribute.String("operation", "Converse"),
	}
	if !reflect.DeepEqual(expect, attrs) {
		t.Errorf("expect %v, got %v", expect, attrs)
	}
}

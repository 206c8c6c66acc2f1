package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/davidroman0O/tagmap"
)

// OTel is a tagmap.Observer recording OpenTelemetry instruments.
type OTel struct {
	operations metric.Int64Counter
	keys       metric.Int64Gauge
	tags       metric.Int64Gauge
}

var _ tagmap.Observer = (*OTel)(nil)

// NewOTel creates the instruments on meter.
func NewOTel(meter metric.Meter) (*OTel, error) {
	operations, err := meter.Int64Counter("tagmap.operations",
		metric.WithDescription("Number of mutations applied to the tagged map, by operation."),
		metric.WithUnit("{operation}"))
	if err != nil {
		return nil, err
	}

	keys, err := meter.Int64Gauge("tagmap.keys",
		metric.WithDescription("Number of live keys."),
		metric.WithUnit("{key}"))
	if err != nil {
		return nil, err
	}

	tags, err := meter.Int64Gauge("tagmap.tags",
		metric.WithDescription("Number of tags with at least one value."),
		metric.WithUnit("{tag}"))
	if err != nil {
		return nil, err
	}

	return &OTel{operations: operations, keys: keys, tags: tags}, nil
}

// Observe implements tagmap.Observer. Map operations never block, so the
// measurements are recorded without a caller context.
func (o *OTel) Observe(op tagmap.Op, stats tagmap.Stats) {
	ctx := context.Background()
	o.operations.Add(ctx, 1, metric.WithAttributes(attribute.String("op", string(op))))
	o.keys.Record(ctx, int64(stats.Keys))
	o.tags.Record(ctx, int64(stats.Tags))
}

// Package metrics provides tagmap observers that export operation counts and
// map sizes to Prometheus or OpenTelemetry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/davidroman0O/tagmap"
)

const subsystem = "tagmap"

// Prometheus is a tagmap.Observer backed by Prometheus collectors.
type Prometheus struct {
	operations *prometheus.CounterVec
	keys       prometheus.Gauge
	tags       prometheus.Gauge
}

var _ tagmap.Observer = (*Prometheus)(nil)

// NewPrometheus creates the collectors under namespace and registers them with
// reg. It fails if any of them is already registered.
func NewPrometheus(reg prometheus.Registerer, namespace string) (*Prometheus, error) {
	p := &Prometheus{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "operations_total",
			Help:      "Number of mutations applied to the tagged map, by operation.",
		}, []string{"op"}),
		keys: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "keys",
			Help:      "Number of live keys.",
		}),
		tags: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "tags",
			Help:      "Number of tags with at least one value.",
		}),
	}

	for _, c := range []prometheus.Collector{p.operations, p.keys, p.tags} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Observe implements tagmap.Observer.
func (p *Prometheus) Observe(op tagmap.Op, stats tagmap.Stats) {
	p.operations.WithLabelValues(string(op)).Inc()
	p.keys.Set(float64(stats.Keys))
	p.tags.Set(float64(stats.Tags))
}

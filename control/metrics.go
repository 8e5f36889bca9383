// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector for the ring benchmark.
// Backed by a private Prometheus registry; Snapshot flattens it for logs.

package control

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// MetricsRegistry holds the benchmark collectors.
type MetricsRegistry struct {
	reg       *prometheus.Registry
	pushTime  prometheus.Histogram
	popTime   prometheus.Histogram
	ops       *prometheus.CounterVec
	evictions prometheus.Counter
	size      prometheus.Gauge
}

// NewMetricsRegistry creates a registry with all collectors registered.
func NewMetricsRegistry() *MetricsRegistry {
	buckets := prometheus.ExponentialBuckets(0.0001, 4, 10)
	mr := &MetricsRegistry{
		reg: prometheus.NewRegistry(),
		pushTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ringbench_push_seconds",
			Help:    "Wall time of one bulk push pass.",
			Buckets: buckets,
		}),
		popTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ringbench_pop_seconds",
			Help:    "Wall time of one bulk pop pass.",
			Buckets: buckets,
		}),
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ringbench_ops_total",
			Help: "Ring operations performed, by operation.",
		}, []string{"op"}),
		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ringbench_evictions_total",
			Help: "Elements discarded by pushes into a full ring.",
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ringbench_store_size",
			Help: "Ring occupancy after the last push pass.",
		}),
	}
	mr.reg.MustRegister(mr.pushTime, mr.popTime, mr.ops, mr.evictions, mr.size)
	return mr
}

// ObservePush records a push pass of n elements.
func (mr *MetricsRegistry) ObservePush(d time.Duration, n int, evicted int, size int) {
	mr.pushTime.Observe(d.Seconds())
	mr.ops.WithLabelValues("push").Add(float64(n))
	mr.evictions.Add(float64(evicted))
	mr.size.Set(float64(size))
}

// ObservePop records a pop pass that attempted n pops.
func (mr *MetricsRegistry) ObservePop(d time.Duration, n int) {
	mr.popTime.Observe(d.Seconds())
	mr.ops.WithLabelValues("pop").Add(float64(n))
}

// Gatherer exposes the underlying registry for exposition.
func (mr *MetricsRegistry) Gatherer() prometheus.Gatherer {
	return mr.reg
}

// Snapshot returns the latest metrics as a flat name → value map.
// Histograms contribute <name>_count and <name>_sum; labelled series are
// keyed <name>{label=value}. When gathering fails the families that could
// be collected are still returned alongside the error.
func (mr *MetricsRegistry) Snapshot() (map[string]float64, error) {
	out := make(map[string]float64)
	families, err := mr.reg.Gather()
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			key := mf.GetName() + labelSuffix(m.GetLabel())
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				out[key] = m.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				out[key] = m.GetGauge().GetValue()
			case dto.MetricType_HISTOGRAM:
				out[key+"_count"] = float64(m.GetHistogram().GetSampleCount())
				out[key+"_sum"] = m.GetHistogram().GetSampleSum()
			}
		}
	}
	return out, errors.Wrap(err, "gather metrics")
}

func labelSuffix(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	s := "{"
	for i, lp := range pairs {
		if i > 0 {
			s += ","
		}
		s += lp.GetName() + "=" + lp.GetValue()
	}
	return s + "}"
}

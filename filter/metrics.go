package filter

import (
	"reflect"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/philipp01105/logfilter/core"
)

type metrics struct {
	// all metrics fields must be exported
	// to be able to return them by Metrics()
	// using reflection
	LinesEmitted      *prometheus.CounterVec
	HexBytesRendered  prometheus.Counter
	HexBytesTruncated prometheus.Counter

	emitted [core.DebugLevel + 1]prometheus.Counter
}

func newMetrics(service string) metrics {
	subsystem := "filter"
	labels := prometheus.Labels{"service": service}

	m := metrics{
		LinesEmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "logfilter",
			Subsystem:   subsystem,
			Name:        "lines_emitted_total",
			Help:        "Number of lines handed to the sink, by level.",
			ConstLabels: labels,
		}, []string{"level"}),
		HexBytesRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "logfilter",
			Subsystem:   subsystem,
			Name:        "hex_bytes_rendered_total",
			Help:        "Number of bytes rendered in hex blocks.",
			ConstLabels: labels,
		}),
		HexBytesTruncated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "logfilter",
			Subsystem:   subsystem,
			Name:        "hex_bytes_truncated_total",
			Help:        "Number of bytes left out of hex blocks by the hex limit.",
			ConstLabels: labels,
		}),
	}
	for l := core.ErrorLevel; l <= core.DebugLevel; l++ {
		m.emitted[l] = m.LinesEmitted.WithLabelValues(l.String())
	}
	return m
}

// Metrics returns the Prometheus collectors of the filter.
func (f *Filter) Metrics() (cs []prometheus.Collector) {
	v := reflect.Indirect(reflect.ValueOf(f.metrics))
	for i := 0; i < v.NumField(); i++ {
		if !v.Field(i).CanInterface() {
			continue
		}
		if u, ok := v.Field(i).Interface().(prometheus.Collector); ok {
			cs = append(cs, u)
		}
	}
	return cs
}

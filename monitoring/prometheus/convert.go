package prometheus

import (
	"strings"

	"github.com/ethereum/go-ethereum/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// convertToPrometheusMetric wraps an internal metric into a prometheus
// collector that reads the live value on every scrape.
func convertToPrometheusMetric(name string, metric interface{}) (prometheus.Collector, bool) {
	opts := prometheus.Opts{Name: sanitizeName(name)}

	switch m := metric.(type) {
	case *metrics.Counter:
		return prometheus.NewCounterFunc(prometheus.CounterOpts(opts), func() float64 {
			return float64(m.Snapshot().Count())
		}), true
	case *metrics.Gauge:
		return prometheus.NewGaugeFunc(prometheus.GaugeOpts(opts), func() float64 {
			return float64(m.Snapshot().Value())
		}), true
	case *metrics.GaugeFloat64:
		return prometheus.NewGaugeFunc(prometheus.GaugeOpts(opts), func() float64 {
			return m.Snapshot().Value()
		}), true
	case *metrics.Meter:
		return prometheus.NewGaugeFunc(prometheus.GaugeOpts(opts), func() float64 {
			return m.Snapshot().Rate1()
		}), true
	case *metrics.Timer:
		return prometheus.NewGaugeFunc(prometheus.GaugeOpts(opts), func() float64 {
			return m.Snapshot().Mean()
		}), true
	case metrics.Histogram:
		return prometheus.NewGaugeFunc(prometheus.GaugeOpts(opts), func() float64 {
			return m.Snapshot().Mean()
		}), true
	default:
		logger.Debug("Unsupported metric type", "name", name)
		return nil, false
	}
}

func sanitizeName(name string) string {
	r := strings.NewReplacer("/", "_", ".", "_", "-", "_")
	return r.Replace(name)
}

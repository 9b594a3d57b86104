package prometheus

import (
	"net/http"

	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var logger = log.New("module", "prometheus")

// PrometheusListener serves prometheus connections.
func PrometheusListener(endpoint string, reg metrics.Registry) {
	if reg == nil {
		reg = metrics.DefaultRegistry
	}
	reg.Each(collect)

	go func() {
		logger.Info("Metrics server starts", "endpoint", endpoint)
		defer logger.Info("Metrics server is stopped")

		http.HandleFunc(
			"/metrics", promhttp.Handler().ServeHTTP)
		err := http.ListenAndServe(endpoint, nil)
		if err != nil {
			logger.Info("metrics server", "err", err)
		}
	}()
}

func collect(name string, metric interface{}) {
	collector, ok := convertToPrometheusMetric(name, metric)
	if !ok {
		return
	}

	err := prometheus.Register(collector)
	if err != nil {
		switch err.(type) {
		case prometheus.AlreadyRegisteredError:
			return
		default:
			logger.Warn(err.Error())
		}
	}
}

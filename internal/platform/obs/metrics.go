package obs

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "parcel_costing"

var (
	registry = prometheus.NewRegistry()

	operationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of timed operations.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"op", "outcome"},
	)

	tariffsQuoted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tariffs_quoted_total",
			Help:      "Calculations completed, by chosen tariff and COD commission.",
		},
		[]string{"tariff", "cod"},
	)
)

func init() {
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		operationDuration,
		tariffsQuoted,
	)
}

// CountQuote records a finished calculation.
func CountQuote(tariff string, cod bool) {
	label := "false"
	if cod {
		label = "true"
	}
	tariffsQuoted.WithLabelValues(tariff, label).Inc()
}

// Handler serves the service metrics in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

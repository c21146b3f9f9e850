package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for LinesTotal besides the error kinds.
const (
	OutcomeResult  = "result"
	OutcomeSkipped = "skipped"
)

var (
	// Registry holds every ratebook collector; it is what /metrics serves.
	Registry = prometheus.NewRegistry()

	// LinesTotal counts record lines by outcome: "result", "skipped" or the
	// error kind name.
	LinesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ratebook",
		Name:      "lines_total",
		Help:      "Record lines processed, by outcome.",
	}, []string{"outcome"})

	// RateLoadsTotal counts reference data loads by status ("ok" or "failed").
	RateLoadsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ratebook",
		Name:      "rate_loads_total",
		Help:      "Reference data loads, by status.",
	}, []string{"status"})

	// RateEntries is the size of the most recently loaded rate table.
	RateEntries = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "ratebook",
		Name:      "rate_entries",
		Help:      "Distinct dates in the loaded rate table.",
	})
)

func init() {
	Registry.MustRegister(LinesTotal, RateLoadsTotal, RateEntries)
}

// ObserveLoad records the result of a rate table load.
func ObserveLoad(entries int, err error) {
	if err != nil {
		RateLoadsTotal.WithLabelValues("failed").Inc()
		return
	}
	RateLoadsTotal.WithLabelValues("ok").Inc()
	RateEntries.Set(float64(entries))
}

// Handler exposes Registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

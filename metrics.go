package seo

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the module.
type Metrics struct {
	HookCalls        *prometheus.CounterVec
	AnalyticsSkipped *prometheus.CounterVec
	ExportRows       prometheus.Counter
}

// NewMetrics creates the module collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HookCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "hook_calls_total",
				Help:      "Total number of hook invocations",
			},
			[]string{"hook"},
		),
		AnalyticsSkipped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "analytics_skipped_total",
				Help:      "Rendered pages left without the analytics snippet",
			},
			[]string{"reason"},
		),
		ExportRows: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "export_rows_total",
				Help:      "Registry rows merged into exported records",
			},
		),
	}
}

package bootstrap

import (
	"salon-booking/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

const metricsNamespace = "salon_booking"

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewMetricsCollector,
		func(c *metrics.Collector) metrics.Recorder { return c },
	),
)

func NewMetricsCollector() *metrics.Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return metrics.NewCollector(metricsNamespace, reg)
}

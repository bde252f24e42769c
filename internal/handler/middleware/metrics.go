package middleware

import (
	"strconv"
	"time"

	"salon-booking/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request count and latency per route template.
func MetricsMiddleware(col *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		col.InFlightGauge.Inc()
		start := time.Now()

		c.Next()

		col.InFlightGauge.Dec()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		col.RequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		col.RequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}

//go:build unit

package middleware_test

import (
	"net/http"
	"strings"
	"testing"

	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/pkg/metrics"
	"salon-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	col := metrics.NewCollector("test", prometheus.NewRegistry())
	r := gin.New()
	r.Use(middleware.MetricsMiddleware(col))
	r.GET("/appointments/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", gin.WrapH(col.Handler()))

	httptest.PerformRequest(t, r, http.MethodGet, "/appointments/123", nil, "")
	httptest.PerformRequest(t, r, http.MethodGet, "/nowhere", nil, "")

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/metrics", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	out := rec.Body.String()
	assert.True(t, strings.Contains(out, `test_http_requests_total{method="GET",path="/appointments/:id",status="204"} 1`), out)
	assert.Contains(t, out, `path="unmatched",status="404"`)
}

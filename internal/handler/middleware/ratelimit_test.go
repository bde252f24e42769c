//go:build unit

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"salon-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_PerClientBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(config.RateLimitConfig{AvailabilityPerSecond: 1, AvailabilityBurst: 2})
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	r := gin.New()
	r.POST("/availability", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	call := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/availability", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1"))
	assert.Equal(t, http.StatusOK, call("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1"))
	assert.Equal(t, http.StatusOK, call("10.0.0.2"), "buckets are per client")

	now = now.Add(time.Second)
	assert.Equal(t, http.StatusOK, call("10.0.0.1"), "one token refills per second")
}

func TestRateLimiter_EvictsIdleVisitors(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{AvailabilityPerSecond: 1, AvailabilityBurst: 1})
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.allow("a")
	now = now.Add(visitorIdleTTL + time.Minute)
	rl.allow("b")

	assert.NotContains(t, rl.visitors, "a")
	assert.Contains(t, rl.visitors, "b")
}

func TestRateLimiter_NewVisitorKeepsBucket(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{AvailabilityPerSecond: 1, AvailabilityBurst: 1})
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.allow("10.0.0.9"))
	assert.Contains(t, rl.visitors, "10.0.0.9")
	assert.False(t, rl.allow("10.0.0.9"), "second request in the same instant exceeds a burst of one")
}

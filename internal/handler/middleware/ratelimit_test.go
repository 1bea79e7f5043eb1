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

func newLimitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", rl.Limit(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func hit(r *gin.Engine, ip string) int {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = ip + ":4242"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter(t *testing.T) {
	now := time.Date(2025, time.June, 2, 8, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(config.RateLimitConfig{RequestsPerMinute: 60, Burst: 3})
	rl.now = func() time.Time { return now }
	r := newLimitedRouter(rl)

	t.Run("burst is served then rejected", func(t *testing.T) {
		for i := range 3 {
			assert.Equal(t, http.StatusNoContent, hit(r, "10.0.0.1"), "request %d", i)
		}
		assert.Equal(t, http.StatusTooManyRequests, hit(r, "10.0.0.1"))
	})

	t.Run("clients have separate buckets", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent, hit(r, "10.0.0.2"))
	})

	t.Run("tokens refill over time", func(t *testing.T) {
		now = now.Add(time.Second)
		assert.Equal(t, http.StatusNoContent, hit(r, "10.0.0.1"))
		assert.Equal(t, http.StatusTooManyRequests, hit(r, "10.0.0.1"))
	})

	t.Run("idle buckets are swept", func(t *testing.T) {
		now = now.Add(limiterIdleTTL + time.Minute)
		assert.Equal(t, http.StatusNoContent, hit(r, "10.0.0.3"))
		rl.mu.Lock()
		defer rl.mu.Unlock()
		assert.NotContains(t, rl.limiters, "10.0.0.1")
		assert.Contains(t, rl.limiters, "10.0.0.3")
	})
}

func TestNewRateLimiter_Defaults(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{})
	assert.Equal(t, 1, rl.burst)
}

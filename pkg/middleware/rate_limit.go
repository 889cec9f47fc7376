package middleware

import (
	"net/http"
	"sync"

	"github.com/adewale-dev/portfolio-api/pkg/metrics"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// per-key limiter store (simple in-memory token-bucket)
var limiterStore sync.Map // map[string]*rate.Limiter

// getLimiter returns (and lazily creates) a token-bucket limiter for the given key
func getLimiter(key string, rps float64, burst int) *rate.Limiter {
	v, ok := limiterStore.Load(key)
	if ok {
		return v.(*rate.Limiter)
	}
	lim := rate.NewLimiter(rate.Limit(rps), burst)
	limiterStore.Store(key, lim)
	return lim
}

// RateLimitMiddleware returns a Gin middleware enforcing a token-bucket per-key limit.
// Key selection: when the request carries a resolved identity that account id is
// used (per-admin limiting); otherwise the client IP from Gin is used.
// rps = allowed events per second, burst = maximum tokens in bucket.
func RateLimitMiddleware(rps float64, burst int) gin.HandlerFunc {
	return scopedRateLimit("", rps, burst)
}

// ScopedRateLimitMiddleware keys its buckets under scope so a route-specific
// limit does not share tokens with the global limiter.
func ScopedRateLimitMiddleware(scope string, rps float64, burst int) gin.HandlerFunc {
	return scopedRateLimit(scope+":", rps, burst)
}

func scopedRateLimit(prefix string, rps float64, burst int) gin.HandlerFunc {
	return func(c *gin.Context) {
		var key string
		if id, ok := Identity(c); ok && id.AccountID != "" {
			key = prefix + "acc:" + id.AccountID
		}
		if key == "" {
			ip := c.ClientIP()
			if ip == "" {
				ip = "unknown"
			}
			key = prefix + "ip:" + ip
		}

		lim := getLimiter(key, rps, burst)
		if !lim.Allow() {
			c.Header("Retry-After", "1")
			metrics.RateLimitRejected.WithLabelValues("memory").Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"success": false, "error": "Rate limit exceeded"})
			return
		}
		metrics.RateLimitAllowed.WithLabelValues("memory").Inc()
		c.Next()
	}
}

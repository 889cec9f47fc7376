package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/adewale-dev/portfolio-api/internal/tokens"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestRateLimitMiddleware_AllowsUnderLimit(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(10, 2)) // generous rate
	r.GET("/ok", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	req := httptest.NewRequest("GET", "/ok", nil)
	w := httptest.NewRecorder()

	// two quick requests should pass
	r.ServeHTTP(w, req)
	req2 := httptest.NewRequest("GET", "/ok", nil)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req2)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, http.StatusOK, w2.Code)
}

func TestRateLimitMiddleware_BlocksWhenExceeded(t *testing.T) {
	r := gin.New()
	// burst of 1 to force rejections; scoped so the bucket is not shared
	// with the other tests hitting the same client IP
	r.Use(ScopedRateLimitMiddleware("strict", 2, 1))
	r.GET("/limited", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// first request -> allowed
	rq1 := httptest.NewRequest("GET", "/limited", nil)
	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, rq1)
	require.Equal(t, http.StatusOK, w1.Code)

	// immediate second request -> should be rate-limited
	rq2 := httptest.NewRequest("GET", "/limited", nil)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, rq2)
	require.Equal(t, http.StatusTooManyRequests, w2.Code)

	// at 2 tokens/sec one token replenishes in 0.5s; wait a bit longer
	time.Sleep(600 * time.Millisecond)
	rq3 := httptest.NewRequest("GET", "/limited", nil)
	w3 := httptest.NewRecorder()
	r.ServeHTTP(w3, rq3)
	require.Equal(t, http.StatusOK, w3.Code)
}

func TestRateLimitMiddleware_UsesIdentityWhenPresent(t *testing.T) {
	r := gin.New()
	// middleware that injects a resolved identity before the rate limiter
	r.Use(func(c *gin.Context) {
		c.Set(identityKey, &tokens.Identity{AccountID: "acc-123"})
		c.Next()
	})
	r.Use(RateLimitMiddleware(0.5, 1))
	r.GET("/u", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// first request allowed
	rq1 := httptest.NewRequest("GET", "/u", nil)
	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, rq1)
	require.Equal(t, http.StatusOK, w1.Code)

	// immediate second request => rejected for same account
	rq2 := httptest.NewRequest("GET", "/u", nil)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, rq2)
	require.Equal(t, http.StatusTooManyRequests, w2.Code)
}

func TestScopedRateLimitMiddleware_IsolatedBuckets(t *testing.T) {
	r := gin.New()
	r.Use(ScopedRateLimitMiddleware("scope-a", 0.5, 1))
	r.GET("/a", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	r2 := gin.New()
	r2.Use(ScopedRateLimitMiddleware("scope-b", 0.5, 1))
	r2.GET("/b", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// exhaust scope-a for this client
	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, httptest.NewRequest("GET", "/a", nil))
	require.Equal(t, http.StatusOK, w1.Code)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest("GET", "/a", nil))
	require.Equal(t, http.StatusTooManyRequests, w2.Code)

	// scope-b still has its full bucket
	w3 := httptest.NewRecorder()
	r2.ServeHTTP(w3, httptest.NewRequest("GET", "/b", nil))
	require.Equal(t, http.StatusOK, w3.Code)
}

package middleware

import (
	"net/http" // HTTP status codes
	"sync"     // Guards the visitor map
	"time"     // Refill interval and idle expiry

	"github.com/gin-gonic/gin" // Gin web framework
	"golang.org/x/time/rate"   // Token bucket limiter
)

// RateLimiter hands out one token bucket per client IP
type RateLimiter struct {
	mu       sync.Mutex          // Guards visitors
	limit    rate.Limit          // Refill rate per client
	burst    int                 // Bucket size per client
	visitors map[string]*visitor // Buckets keyed by client IP
	ttl      time.Duration       // Idle time before a bucket is dropped
}

// visitor is the bucket of one client
type visitor struct {
	limiter  *rate.Limiter // Client bucket
	lastSeen time.Time     // Last request, drives expiry
}

// NewRateLimiter allows perMinute requests per client, with bursts of up to perMinute
func NewRateLimiter(perMinute int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 1
	}
	return &RateLimiter{
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
		visitors: make(map[string]*visitor),
		ttl:      10 * time.Minute, // Long enough for a bucket to refill completely
	}
}

// Allow reports whether key may make a request now
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = now // Keep the bucket alive

	// idle buckets are full again, dropping them loses nothing
	for k, other := range rl.visitors {
		if now.Sub(other.lastSeen) > rl.ttl {
			delete(rl.visitors, k)
		}
	}
	return v.limiter.AllowN(now, 1) // Take one token if available
}

// Middleware rejects requests over the limit with 429
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) { // Limit per client address
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests, try again later"})
			return
		}
		c.Next() // Under the limit, continue
	}
}

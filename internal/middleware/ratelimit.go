package middleware

import (
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// bucket tracks remaining tokens for one client IP
type bucket struct {
	tokens   int
	refillAt time.Time
}

// RateLimiter allows capacity requests per interval per client IP.
// Buckets refill whole at interval boundaries; stale buckets are
// pruned lazily on access.
type RateLimiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	capacity int
	interval time.Duration
	lastGC   time.Time
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(capacity int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		buckets:  make(map[string]*bucket),
		capacity: capacity,
		interval: interval,
		lastGC:   time.Now(),
	}
}

// Allow reports whether a request from ip should proceed, and how
// many tokens remain in its bucket.
func (rl *RateLimiter) Allow(ip string) (bool, int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	rl.maybePrune(now)

	b, ok := rl.buckets[ip]
	if !ok {
		b = &bucket{tokens: rl.capacity, refillAt: now.Add(rl.interval)}
		rl.buckets[ip] = b
	}

	if now.After(b.refillAt) {
		b.tokens = rl.capacity
		b.refillAt = now.Add(rl.interval)
	}

	if b.tokens > 0 {
		b.tokens--
		return true, b.tokens
	}
	return false, 0
}

// maybePrune drops buckets idle for over ten refill intervals. Runs
// at most once per five minutes; caller holds the lock.
func (rl *RateLimiter) maybePrune(now time.Time) {
	if now.Sub(rl.lastGC) < 5*time.Minute {
		return
	}
	rl.lastGC = now
	for ip, b := range rl.buckets {
		if now.Sub(b.refillAt) > 10*rl.interval {
			delete(rl.buckets, ip)
		}
	}
}

// RateLimitMiddleware creates a rate limiting middleware for specific paths
func RateLimitMiddleware(limiter *RateLimiter, paths ...string) gin.HandlerFunc {
	pathMap := make(map[string]bool)
	for _, path := range paths {
		pathMap[path] = true
	}

	return func(c *gin.Context) {
		// Check if this path requires rate limiting
		if !pathMap[c.Request.URL.Path] {
			c.Next()
			return
		}

		clientIP := getClientIP(c)
		allowed, remaining := limiter.Allow(clientIP)

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", limiter.capacity))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))

		if !allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", int(limiter.interval.Seconds())))
			c.AbortWithStatus(429)
			return
		}

		c.Next()
	}
}

// getClientIP extracts the client IP address
func getClientIP(c *gin.Context) string {
	// Check X-Forwarded-For header
	forwarded := c.GetHeader("X-Forwarded-For")
	if forwarded != "" {
		ips := strings.Split(forwarded, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	// Fall back to RemoteAddr
	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}

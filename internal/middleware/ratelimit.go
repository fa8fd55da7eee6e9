package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"onesat-market/internal/httpx"
	"onesat-market/internal/logger"
)

// RateLimiter hands out one token bucket per client IP.
type RateLimiter struct {
	limit rate.Limit
	burst int

	mu          sync.Mutex
	limiters    map[string]*rate.Limiter
	lastCleanup time.Time
}

// NewRateLimiter allows perMinute requests per IP, all available as a burst.
func NewRateLimiter(perMinute int) *RateLimiter {
	return &RateLimiter{
		limit:       rate.Limit(float64(perMinute) / 60),
		burst:       perMinute,
		limiters:    make(map[string]*rate.Limiter),
		lastCleanup: time.Now(),
	}
}

func (rl *RateLimiter) get(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if time.Since(rl.lastCleanup) > 5*time.Minute {
		// idle buckets are full again; dropping them loses nothing
		for k, l := range rl.limiters {
			if l.Tokens() >= float64(rl.burst) {
				delete(rl.limiters, k)
			}
		}
		rl.lastCleanup = time.Now()
	}

	l, ok := rl.limiters[key]
	if !ok {
		l = rate.NewLimiter(rl.limit, rl.burst)
		rl.limiters[key] = l
	}
	return l
}

// Allow reports whether key may proceed, and if not, how long to wait.
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	l := rl.get(key)
	if l.Allow() {
		return true, 0
	}

	res := l.Reserve()
	delay := res.Delay()
	res.Cancel()
	return false, delay
}

// Middleware limits by client IP.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, delay := rl.Allow(c.ClientIP())
		if ok {
			c.Next()
			return
		}

		retryAfter := max(int(delay.Seconds()), 1)
		logger.FromContext(c.Request.Context()).Warn("rate limit exceeded",
			"client_ip", c.ClientIP(),
			"retry_after", retryAfter,
		)

		c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
		httpx.Fail(c.Writer, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		c.Abort()
	}
}

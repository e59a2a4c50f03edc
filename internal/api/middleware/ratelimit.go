package middleware

import (
	"net/http"
	"sync"
	"time"

	"planet-weather/internal/api/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// DefaultLimiterIdle is how long an IP's bucket is kept without requests.
const DefaultLimiterIdle = 10 * time.Minute

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter hands out one token bucket per client IP. Buckets idle for
// longer than idle are swept on a later lookup, at most once per idle period.
type IPRateLimiter struct {
	mu        sync.Mutex
	ips       map[string]*ipLimiter
	r         rate.Limit
	b         int
	idle      time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips:       make(map[string]*ipLimiter),
		r:         r,
		b:         b,
		idle:      DefaultLimiterIdle,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

// GetLimiter returns the limiter for ip, creating it on first use.
func (l *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.idle {
		l.sweep(now)
	}

	entry, ok := l.ips[ip]
	if !ok {
		entry = &ipLimiter{limiter: rate.NewLimiter(l.r, l.b)}
		l.ips[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

// Len reports the number of tracked IPs.
func (l *IPRateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.ips)
}

func (l *IPRateLimiter) sweep(now time.Time) {
	for ip, entry := range l.ips {
		if now.Sub(entry.lastSeen) >= l.idle {
			delete(l.ips, ip)
		}
	}
	l.lastSweep = now
}

// RateLimit rejects requests over the per-IP budget with 429.
func RateLimit(l *IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.GetLimiter(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "RATE_LIMITED",
					Message: "Too many requests, slow down",
				},
			})
			return
		}
		c.Next()
	}
}

package mw

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"clipclic-storefront-backend/internal/model"
)

// ClientRateLimiter keeps one token bucket per client IP.
type ClientRateLimiter struct {
	clients map[string]*rate.Limiter
	mu      sync.RWMutex
	r       rate.Limit
	b       int
}

// NewClientRateLimiter creates a limiter allowing r requests per second
// with bursts of b for every client.
func NewClientRateLimiter(r rate.Limit, b int) *ClientRateLimiter {
	return &ClientRateLimiter{
		clients: make(map[string]*rate.Limiter),
		r:       r,
		b:       b,
	}
}

// Limiter returns the bucket for ip, creating it on first use.
func (l *ClientRateLimiter) Limiter(ip string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.clients[ip]
	l.mu.RUnlock()
	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	// Another request may have created it between the two locks.
	if limiter, exists = l.clients[ip]; exists {
		return limiter
	}
	limiter = rate.NewLimiter(l.r, l.b)
	l.clients[ip] = limiter
	return limiter
}

// Clients reports how many client buckets are tracked.
func (l *ClientRateLimiter) Clients() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.clients)
}

// RateLimiter is a middleware for IP-based rate limiting. Rejected
// requests get a 429 inside the usual response envelope.
func RateLimiter(limiter *ClientRateLimiter) gin.HandlerFunc {
	burst := strconv.Itoa(limiter.b)
	return func(c *gin.Context) {
		c.Header("X-RateLimit-Limit", burst)
		if !limiter.Limiter(c.ClientIP()).Allow() {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, model.NewApiResponse(gin.H{"error": "too many requests"}, http.StatusTooManyRequests))
			return
		}
		c.Next()
	}
}

// ABOUTME: Rate limiting middleware for API endpoints
// ABOUTME: Implements per-IP token buckets held in an expiring store

package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// RateLimiter hands out one token bucket per client key. Buckets for idle clients
// expire after two windows.
type RateLimiter struct {
	mu         sync.Mutex
	limiters   *gocache.Cache
	limit      int
	window     time.Duration
	trustProxy bool
}

// NewRateLimiter allows limit requests per window for each key, refilling evenly
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limiters: gocache.New(2*window, window),
		limit:    limit,
		window:   window,
	}
}

// TrustProxy keys buckets on X-Forwarded-For / X-Real-IP instead of the peer address.
// Only enable it behind a proxy that overwrites those headers; otherwise a client can
// pick a fresh key per request.
func (rl *RateLimiter) TrustProxy(trust bool) *RateLimiter {
	rl.trustProxy = trust
	return rl
}

// Allow checks if a request from the given key is allowed
func (rl *RateLimiter) Allow(key string) bool {
	return rl.limiterFor(key).Allow()
}

func (rl *RateLimiter) limiterFor(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if v, ok := rl.limiters.Get(key); ok {
		lim := v.(*rate.Limiter)
		rl.limiters.SetDefault(key, lim)
		return lim
	}

	lim := rate.NewLimiter(rate.Every(rl.window/time.Duration(rl.limit)), rl.limit)
	rl.limiters.SetDefault(key, lim)
	return lim
}

// clientKey picks the bucket key for a request
func (rl *RateLimiter) clientKey(r *http.Request) string {
	if rl.trustProxy {
		return extractIP(r)
	}
	return remoteIP(r)
}

// extractIP gets the client IP from the request, preferring proxy headers
func extractIP(r *http.Request) string {
	// First hop in X-Forwarded-For is the original client
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}

	return remoteIP(r)
}

// remoteIP is the host part of the connection's peer address
func remoteIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// RateLimitMiddleware creates a middleware that enforces rate limits
func RateLimitMiddleware(limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", limiter.limit))
			w.Header().Set("X-RateLimit-Window", limiter.window.String())

			if !limiter.Allow(limiter.clientKey(r)) {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(limiter.window.Seconds())))
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"error":"Too many requests","message":"Rate limit exceeded. Please try again later."}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

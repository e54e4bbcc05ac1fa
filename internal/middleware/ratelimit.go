package middleware

import (
	"net/http"
	"sync"
	"time"
)

// RefreshRateLimiter limits how often a client may bypass the snapshot cache.
// Every refresh=true request goes straight to the commerce backend, so an
// unthrottled client could turn the cache off for everyone.
type RefreshRateLimiter struct {
	requests    map[string][]time.Time
	mutex       sync.Mutex
	maxRequests int
	window      time.Duration
}

// NewRefreshRateLimiter creates a new refresh rate limiter
func NewRefreshRateLimiter(maxRequests int, window time.Duration) *RefreshRateLimiter {
	rl := &RefreshRateLimiter{
		requests:    make(map[string][]time.Time),
		maxRequests: maxRequests,
		window:      window,
	}

	go rl.cleanup()

	return rl
}

// Allow records a request from the given IP and reports whether it is within
// the limit.
func (rl *RefreshRateLimiter) Allow(ip string) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := time.Now()
	cutoff := now.Add(-rl.window)

	var valid []time.Time
	for _, at := range rl.requests[ip] {
		if at.After(cutoff) {
			valid = append(valid, at)
		}
	}

	if len(valid) >= rl.maxRequests {
		rl.requests[ip] = valid
		return false
	}

	rl.requests[ip] = append(valid, now)
	return true
}

// cleanup removes stale entries periodically
func (rl *RefreshRateLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mutex.Lock()
		cutoff := time.Now().Add(-rl.window)

		for ip, requests := range rl.requests {
			var valid []time.Time
			for _, at := range requests {
				if at.After(cutoff) {
					valid = append(valid, at)
				}
			}

			if len(valid) == 0 {
				delete(rl.requests, ip)
			} else {
				rl.requests[ip] = valid
			}
		}
		rl.mutex.Unlock()
	}
}

// RefreshRateLimit throttles requests that carry refresh=true. Requests that
// are happy with the cached snapshot pass through untouched.
func RefreshRateLimit(rateLimiter *RefreshRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("refresh") != "true" {
				next.ServeHTTP(w, r)
				return
			}

			if !rateLimiter.Allow(getClientIP(r)) {
				http.Error(w, "Too many refresh requests. Please try again later.", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getClientIP gets the real client IP address
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return r.RemoteAddr
}

package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

type windowEntry struct {
	mu       sync.Mutex
	requests []time.Time
}

// RateLimiter allows max requests per client within a sliding window.
// Idle clients expire from the store after one window.
type RateLimiter struct {
	max    int
	window time.Duration
	store  *cache.Cache
	mu     sync.Mutex
	now    func() time.Time
}

func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		max:    max,
		window: window,
		store:  cache.New(window, 2*window),
		now:    time.Now,
	}
}

func (rl *RateLimiter) entry(key string) *windowEntry {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if v, ok := rl.store.Get(key); ok {
		rl.store.SetDefault(key, v)
		return v.(*windowEntry)
	}
	e := &windowEntry{}
	rl.store.SetDefault(key, e)
	return e
}

func (rl *RateLimiter) Allow(key string) bool {
	now := rl.now()
	cutoff := now.Add(-rl.window)

	e := rl.entry(key)
	e.mu.Lock()
	defer e.mu.Unlock()

	filtered := e.requests[:0]
	for _, t := range e.requests {
		if t.After(cutoff) {
			filtered = append(filtered, t)
		}
	}
	e.requests = filtered

	if len(e.requests) >= rl.max {
		return false
	}

	e.requests = append(e.requests, now)
	return true
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.Allow(ClientIP(r)) {
			writeError(w, http.StatusTooManyRequests, "too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClientIP prefers the first X-Forwarded-For hop, then RemoteAddr without port.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

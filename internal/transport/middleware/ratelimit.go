package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimiter throttles requests per client host with a token bucket per
// host. Health probes and metrics scrapes bypass the limiter so a busy
// annotation frontend cannot starve orchestration traffic.
type RateLimiter struct {
	buckets sync.Map // client host -> *bucket
	stop    chan struct{}
}

type bucket struct {
	mu         sync.Mutex
	tokens     float64
	capacity   float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

// Paths exempt from rate limiting.
var unlimitedPaths = map[string]struct{}{
	"/live":    {},
	"/ready":   {},
	"/health":  {},
	"/metrics": {},
}

// NewRateLimiter creates a limiter whose idle buckets are reaped every
// cleanupInterval. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{})}
	go rl.reap(cleanupInterval)
	return rl
}

// Stop terminates the background reaper.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

// Limit returns middleware enforcing maxPerMinute requests per client host.
// The port is stripped from RemoteAddr so reconnects from the same host
// share one bucket.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, exempt := unlimitedPaths[r.URL.Path]; exempt {
				next.ServeHTTP(w, r)
				return
			}

			b := rl.bucketFor(clientHost(r), maxPerMinute)
			if !b.take() {
				retryAfter := 60.0 / float64(maxPerMinute)
				w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter)+1))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"error":"rate limit exceeded","retryable":true}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *RateLimiter) bucketFor(host string, maxPerMinute int) *bucket {
	capacity := float64(maxPerMinute)

	val, _ := rl.buckets.LoadOrStore(host, &bucket{
		tokens:     capacity,
		capacity:   capacity,
		refillRate: capacity / 60.0,
		lastRefill: time.Now(),
	})
	return val.(*bucket)
}

func (b *bucket) take() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens += now.Sub(b.lastRefill).Seconds() * b.refillRate
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.lastRefill = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) reap(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			now := time.Now()
			rl.buckets.Range(func(key, value any) bool {
				b := value.(*bucket)
				b.mu.Lock()
				idle := now.Sub(b.lastRefill)
				b.mu.Unlock()
				if idle > 10*time.Minute {
					rl.buckets.Delete(key)
				}
				return true
			})
		}
	}
}
